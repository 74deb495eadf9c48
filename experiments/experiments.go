package experiments

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"painters/config"
	"painters/engine"
	"painters/experiments/metrics"
	"painters/game"
)

// Generate draws random cases: side length, distinct player cells and
// a share of blocked cells taken from the remaining ones.
func Generate(rng *rand.Rand, cfg config.Experiment) []engine.Case {
	cases := make([]engine.Case, 0, cfg.Cases)
	for i := 0; i < cfg.Cases; i++ {
		sides := cfg.MinSides + rng.Intn(cfg.MaxSides-cfg.MinSides+1)
		cases = append(cases, generateCase(rng, sides, cfg.BlockedRatio))
	}
	return cases
}

func generateCase(rng *rand.Rand, sides int, blockedRatio float64) engine.Case {
	board := game.Board{Sides: sides}
	cells := rng.Perm(board.Cells())
	k := int(blockedRatio * float64(len(cells)-2))

	blocked := make([]game.Position, 0, k)
	for _, i := range cells[2 : 2+k] {
		blocked = append(blocked, board.PositionOf(i))
	}
	return engine.Case{
		Sides:   sides,
		A:       board.PositionOf(cells[0]),
		B:       board.PositionOf(cells[1]),
		Blocked: blocked,
	}
}

// Run generates random cases, solves them and writes cases.txt, results.txt
// and case_records.csv into a fresh timestamped directory.
func Run(cfg config.Experiment) (string, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	cases := Generate(rng, cfg)

	writer, err := metrics.NewWriter(cfg.OutputDir)
	if err != nil {
		return "", err
	}
	log.Info().Msgf("starting experiment with %d cases (seed %d) in %s...", len(cases), cfg.Seed, writer.Dir())

	casesPath := filepath.Join(writer.Dir(), "cases.txt")
	if err := writeCasesFile(casesPath, cases); err != nil {
		return "", err
	}

	in, err := os.Open(casesPath)
	if err != nil {
		return "", fmt.Errorf("failed to open cases file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(filepath.Join(writer.Dir(), "results.txt"))
	if err != nil {
		return "", fmt.Errorf("failed to create results file: %w", err)
	}
	defer out.Close()

	records := make([]metrics.CaseRecord, 0, len(cases))
	e := engine.New(
		engine.WithMetrics(metrics.NewCollector()),
		engine.WithRecorder(func(record metrics.CaseRecord) {
			log.Info().Msgf("case %d of %d solved: sides=%d score=%d nodes=%d pruned=%d in %s",
				record.Case, len(cases), record.Sides, record.Score, record.Nodes, record.Pruned, record.Duration)
			records = append(records, record)
		}),
	)
	if err := e.Run(in, out); err != nil {
		return "", err
	}

	if err := writer.WriteCaseRecords(records); err != nil {
		return "", err
	}
	log.Info().Msgf("finished experiment, results in %s", writer.Dir())
	return writer.Dir(), nil
}

func writeCasesFile(path string, cases []engine.Case) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create cases file: %w", err)
	}
	defer f.Close()
	return engine.WriteCases(f, cases)
}
