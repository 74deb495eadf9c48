package engine

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"painters/experiments/metrics"
	"painters/searcher"
)

type Option func(e *Engine)

// Engine solves batches of cases read from a stream.
type Engine struct {
	collector metrics.Collector
	record    func(metrics.CaseRecord)
}

// WithMetrics collects search statistics for every case.
func WithMetrics(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.collector = collector
		}
	}
}

// WithRecorder receives one record per solved case.
func WithRecorder(record func(metrics.CaseRecord)) Option {
	return func(e *Engine) {
		if record != nil {
			e.record = record
		}
	}
}

func New(options ...Option) *Engine {
	e := &Engine{
		collector: metrics.NewDummyCollector(),
		record:    func(metrics.CaseRecord) {},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Solve returns A's guaranteed score for a single case.
func (e *Engine) Solve(c Case) (int, metrics.SearchMetric, error) {
	state, err := c.State()
	if err != nil {
		return 0, metrics.SearchMetric{}, err
	}
	log.Trace().Msgf("initial board:\n%s", state)

	score, metric := searcher.NewMinimax(searcher.WithMetrics(e.collector)).SolveWithMetrics(state)
	return score, metric, nil
}

// Run reads every case from in and writes one "Case #n: score" line per case to out.
// All cases are validated before any output is written.
func (e *Engine) Run(in io.Reader, out io.Writer) error {
	cases, err := ReadCases(in)
	if err != nil {
		return err
	}
	for i, c := range cases {
		if _, err := c.State(); err != nil {
			return fmt.Errorf("case #%d: %w", i+1, err)
		}
	}

	log.Info().Msgf("solving %d cases", len(cases))

	w := bufio.NewWriter(out)
	for i, c := range cases {
		score, metric, err := e.Solve(c)
		if err != nil {
			return fmt.Errorf("case #%d: %w", i+1, err)
		}
		if _, err := fmt.Fprintf(w, "Case #%d: %d\n", i+1, score); err != nil {
			return fmt.Errorf("failed to write case #%d: %w", i+1, err)
		}

		log.Debug().
			Int("case", i+1).
			Int("sides", c.Sides).
			Int("score", score).
			Int("nodes", metric.Nodes).
			Dur("duration", metric.Duration).
			Msg("case solved")
		e.record(metrics.CaseRecord{Case: i + 1, Score: score, SearchMetric: metric})
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush results: %w", err)
	}
	return nil
}
