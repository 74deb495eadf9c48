package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"painters/meta"
)

const (
	ModeSolve      = "solve"
	ModeExperiment = "experiment"
)

type Config struct {
	Mode       string     `mapstructure:"mode"`
	Input      string     `mapstructure:"input"`  // "-" reads stdin
	Output     string     `mapstructure:"output"` // "-" writes stdout
	LogLevel   string     `mapstructure:"log_level"`
	Experiment Experiment `mapstructure:"experiment"`
}

// Experiment configures random board generation.
type Experiment struct {
	Seed         uint64  `mapstructure:"seed"`
	Cases        int     `mapstructure:"cases"`
	MinSides     int     `mapstructure:"min_sides"`
	MaxSides     int     `mapstructure:"max_sides"`
	BlockedRatio float64 `mapstructure:"blocked_ratio"`
	OutputDir    string  `mapstructure:"output_dir"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", ModeSolve)
	v.SetDefault("input", "-")
	v.SetDefault("output", "-")
	v.SetDefault("log_level", "info")
	v.SetDefault("experiment.seed", 1)
	v.SetDefault("experiment.cases", 20)
	v.SetDefault("experiment.min_sides", 2)
	v.SetDefault("experiment.max_sides", 5)
	v.SetDefault("experiment.blocked_ratio", 0.2)
	v.SetDefault("experiment.output_dir", "experiments/runs")
}

// Setup loads defaults, the optional config file at cfgPath and PAINTERS_* environment overrides.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("painters")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Mode {
	case ModeSolve, ModeExperiment:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}

	e := c.Experiment
	if e.MinSides < 2 || e.MaxSides > meta.MAX_SIDES || e.MinSides > e.MaxSides {
		return fmt.Errorf("experiment sides [%d, %d] not within [2, %d]", e.MinSides, e.MaxSides, meta.MAX_SIDES)
	}
	if e.BlockedRatio < 0 || e.BlockedRatio > meta.MAX_BLOCKED_RATIO {
		return fmt.Errorf("experiment blocked ratio %.2f not within [0, %.2f]", e.BlockedRatio, meta.MAX_BLOCKED_RATIO)
	}
	if e.Cases < 0 {
		return fmt.Errorf("experiment cases %d is negative", e.Cases)
	}
	return nil
}
