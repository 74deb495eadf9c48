package experiments

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"painters/config"
	"painters/engine"
)

func TestGenerate(t *testing.T) {
	cfg := config.Experiment{Seed: 3, Cases: 50, MinSides: 2, MaxSides: 5, BlockedRatio: 0.5}

	cases := Generate(rand.New(rand.NewSource(cfg.Seed)), cfg)

	require.Len(t, cases, 50)
	for i, c := range cases {
		require.GreaterOrEqual(t, c.Sides, 2)
		require.LessOrEqual(t, c.Sides, 5)
		require.Len(t, c.Blocked, int(0.5*float64(c.Sides*c.Sides-2)))
		_, err := c.State()
		require.NoError(t, err, "generated case %d should be valid", i)
	}

	again := Generate(rand.New(rand.NewSource(cfg.Seed)), cfg)
	require.Equal(t, cases, again, "Same seed should generate the same cases")
}

func TestRun(t *testing.T) {
	cfg := config.Experiment{Seed: 5, Cases: 4, MinSides: 2, MaxSides: 3, BlockedRatio: 0.2, OutputDir: t.TempDir()}

	dir, err := Run(cfg)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "cases.txt"))
	require.NoError(t, err)
	defer f.Close()
	cases, err := engine.ReadCases(f)
	require.NoError(t, err)
	require.Len(t, cases, 4)

	results, err := os.ReadFile(filepath.Join(dir, "results.txt"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(results)), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "Case #1: "))

	records, err := os.ReadFile(filepath.Join(dir, "case_records.csv"))
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(string(records)), "\n"), 5, "Header plus one row per case")
}
