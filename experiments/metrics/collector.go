package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Sides     int
	Duration  time.Duration
	Nodes     int // States visited, root included
	Terminals int
	Passes    int // Forced passes expanded
	Pruned    int // Self-blocking successors skipped
	MaxDepth  int
}

type Collector interface {
	Start(sides int)
	AddNode(depth int)
	AddTerminal()
	AddPass()
	AddPruned(n int)
	Complete() SearchMetric
}

type collector struct {
	sides     int
	startTime time.Time
	nodes     atomic.Int64
	terminals atomic.Int64
	passes    atomic.Int64
	pruned    atomic.Int64
	maxDepth  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(sides int) {
	m.startTime = time.Now()
	m.sides = sides
	m.nodes.Store(0)
	m.terminals.Store(0)
	m.passes.Store(0)
	m.pruned.Store(0)
	m.maxDepth.Store(0)
}

func (m *collector) AddNode(depth int) {
	m.nodes.Add(1)
	for {
		current := m.maxDepth.Load()
		if int64(depth) <= current || m.maxDepth.CompareAndSwap(current, int64(depth)) {
			return
		}
	}
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddPass() {
	m.passes.Add(1)
}

func (m *collector) AddPruned(n int) {
	m.pruned.Add(int64(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Sides:     m.sides,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Terminals: int(m.terminals.Load()),
		Passes:    int(m.passes.Load()),
		Pruned:    int(m.pruned.Load()),
		MaxDepth:  int(m.maxDepth.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(sides int)        {}
func (m *dummyCollector) AddNode(depth int)      {}
func (m *dummyCollector) AddTerminal()           {}
func (m *dummyCollector) AddPass()               {}
func (m *dummyCollector) AddPruned(n int)        {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
