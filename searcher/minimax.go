package searcher

import (
	"fmt"

	"golang.org/x/exp/slices"

	"painters/experiments/metrics"
	"painters/game"
)

type Option func(m *Minimax)

// Minimax exhaustively searches the game tree. Board sizes are small enough
// that no transposition table is kept.
type Minimax struct {
	metrics metrics.Collector
}

func WithMetrics(collector metrics.Collector) Option {
	return func(m *Minimax) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Solve returns the score A can guarantee against a minimizing B.
func (m *Minimax) Solve(state *game.State) int {
	score, _ := m.SolveWithMetrics(state)
	return score
}

func (m *Minimax) SolveWithMetrics(state *game.State) (int, metrics.SearchMetric) {
	m.metrics.Start(state.Board().Sides)
	score := m.value(state, 0)
	return score, m.metrics.Complete()
}

// PrincipalVariation returns the states along one optimal line of play,
// starting after state and ending on a terminal state.
func (m *Minimax) PrincipalVariation(state *game.State) []*game.State {
	var line []*game.State
	for !state.IsTerminal() {
		children := m.expand(state)
		next := children[0]
		best := m.value(next, 1)
		for _, child := range children[1:] {
			if v := m.value(child, 1); better(state.Turn(), v, best) {
				best = v
				next = child
			}
		}
		line = append(line, next)
		state = next
	}
	return line
}

func (m *Minimax) value(state *game.State, depth int) int {
	m.metrics.AddNode(depth)
	if state.IsTerminal() {
		m.metrics.AddTerminal()
		return state.Score()
	}

	children := m.expand(state)
	best := m.value(children[0], depth+1)
	for _, child := range children[1:] {
		if v := m.value(child, depth+1); better(state.Turn(), v, best) {
			best = v
		}
	}
	return best
}

// expand returns the successors of a non-terminal state that survive pruning.
func (m *Minimax) expand(state *game.State) []*game.State {
	mover := state.Turn()
	if !state.CanMove(mover) {
		m.metrics.AddPass()
	}

	succs := state.Successors()
	children := retain(mover, succs)
	m.metrics.AddPruned(len(succs) - len(children))
	if len(children) == 0 {
		panic(fmt.Errorf("%w:\n%s", ErrNoRetainedSuccessor, state))
	}
	return children
}

// retain drops voluntary self-blocks: successors where the mover is stuck,
// the opponent is not, and another successor kept the mover free.
func retain(mover game.Player, succs []*game.State) []*game.State {
	escapable := slices.ContainsFunc(succs, func(s *game.State) bool {
		return s.CanMove(mover)
	})
	if !escapable {
		return succs
	}
	return slices.DeleteFunc(slices.Clone(succs), func(s *game.State) bool {
		return !s.CanMove(mover) && s.CanMove(mover.Opponent())
	})
}
