// SPDX-License-Identifier: MIT

// Package config loads the benchmark harness settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// ErrInvalid reports a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all harness configuration.
type Config struct {
	Bench   BenchConfig
	Logging LogConfig
}

// BenchConfig holds timing parameters.
type BenchConfig struct {
	Iterations int  `envconfig:"MATBENCH_ITERATIONS" default:"1000000"`
	Size       int  `envconfig:"MATBENCH_SIZE" default:"4"` // inner length of the loop workload
	Rounds     int  `envconfig:"MATBENCH_ROUNDS" default:"1"`
	Ops        bool `envconfig:"MATBENCH_OPS" default:"true"` // include per-shape matrix workloads
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Bench: BenchConfig{
			Iterations: 1_000_000,
			Size:       4,
			Rounds:     1,
			Ops:        true,
		},
		Logging: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that counts are positive.
func (c *Config) Validate() error {
	switch {
	case c.Bench.Iterations <= 0:
		return fmt.Errorf("MATBENCH_ITERATIONS=%d: %w", c.Bench.Iterations, ErrInvalid)
	case c.Bench.Size <= 0:
		return fmt.Errorf("MATBENCH_SIZE=%d: %w", c.Bench.Size, ErrInvalid)
	case c.Bench.Rounds <= 0:
		return fmt.Errorf("MATBENCH_ROUNDS=%d: %w", c.Bench.Rounds, ErrInvalid)
	}

	return nil
}
