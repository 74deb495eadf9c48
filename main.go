package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"painters/config"
	"painters/engine"
	"painters/experiments"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a config file (yaml, toml or json)")
	mode := flag.String("mode", "", "solve: read cases and print scores; experiment: solve random boards")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up configuration")
	}
	if *mode != "" {
		cfg.Mode = *mode
		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("invalid mode")
		}
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("invalid log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(level)

	switch cfg.Mode {
	case config.ModeExperiment:
		if _, err := experiments.Run(cfg.Experiment); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
	default:
		if err := solve(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to solve cases")
		}
	}
}

func solve(cfg *config.Config) error {
	var in io.Reader = os.Stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if cfg.Output != "-" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	return engine.New().Run(in, out)
}
