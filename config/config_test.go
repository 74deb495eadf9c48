package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Run("defaults read stdin and write stdout", func(t *testing.T) {
		cfg, err := Setup("")

		require.NoError(t, err)
		require.Equal(t, ModeSolve, cfg.Mode)
		require.Equal(t, "-", cfg.Input)
		require.Equal(t, "-", cfg.Output)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, 20, cfg.Experiment.Cases)
		require.Equal(t, uint64(1), cfg.Experiment.Seed)
	})

	t.Run("reads a config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "painters.yaml")
		content := "mode: experiment\nlog_level: debug\nexperiment:\n  seed: 42\n  cases: 5\n  max_sides: 4\n  blocked_ratio: 0.5\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Setup(path)

		require.NoError(t, err)
		require.Equal(t, ModeExperiment, cfg.Mode)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, uint64(42), cfg.Experiment.Seed)
		require.Equal(t, 5, cfg.Experiment.Cases)
		require.Equal(t, 2, cfg.Experiment.MinSides, "Unset keys keep their default")
		require.Equal(t, 4, cfg.Experiment.MaxSides)
		require.Equal(t, 0.5, cfg.Experiment.BlockedRatio)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("PAINTERS_LOG_LEVEL", "warn")
		t.Setenv("PAINTERS_EXPERIMENT_CASES", "3")

		cfg, err := Setup("")

		require.NoError(t, err)
		require.Equal(t, "warn", cfg.LogLevel)
		require.Equal(t, 3, cfg.Experiment.Cases)
	})

	t.Run("missing config file fails", func(t *testing.T) {
		_, err := Setup(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "painters.yaml")
		require.NoError(t, os.WriteFile(path, []byte("experiment:\n  max_sides: 9\n"), 0644))

		_, err := Setup(path)
		require.ErrorContains(t, err, "experiment sides")
	})
}

func TestValidate(t *testing.T) {
	valid := Config{
		Mode:       ModeSolve,
		Experiment: Experiment{Cases: 1, MinSides: 2, MaxSides: 6, BlockedRatio: 0.3},
	}
	require.NoError(t, valid.Validate())

	badMode := valid
	badMode.Mode = "play"
	require.ErrorContains(t, badMode.Validate(), "unknown mode")

	badRatio := valid
	badRatio.Experiment.BlockedRatio = 0.95
	require.ErrorContains(t, badRatio.Validate(), "blocked ratio")

	badSides := valid
	badSides.Experiment.MinSides = 5
	badSides.Experiment.MaxSides = 4
	require.ErrorContains(t, badSides.Validate(), "experiment sides")
}
