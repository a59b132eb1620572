// SPDX-License-Identifier: MIT

// Command matbench times a counted inner loop against unrolled statements
// and, unless MATBENCH_OPS=false, every matrix operation per shape.
//
// Settings come from the environment; see internal/config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmat/internal/bench"
	"github.com/katalvlaran/lvmat/internal/config"
	"github.com/katalvlaran/lvmat/internal/logging"
)

func main() {
	if err := run(); err != nil {
		// run's own logger may not exist yet (bad config); fall back to defaults.
		log := logging.NewDefault()
		log.Error("matbench failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workloads := bench.LoopWorkloads(cfg.Bench.Size)
	if cfg.Bench.Ops {
		ops, err := bench.MatrixWorkloads()
		if err != nil {
			return fmt.Errorf("build workloads: %w", err)
		}
		workloads = append(workloads, ops...)
	}

	runner, err := bench.NewRunner(log, cfg.Bench.Iterations, cfg.Bench.Rounds)
	if err != nil {
		return err
	}

	log.Info("benchmark starting",
		zap.Int("workloads", len(workloads)),
		zap.Int("iterations", cfg.Bench.Iterations),
		zap.Int("rounds", cfg.Bench.Rounds),
	)
	results, err := runner.Run(ctx, workloads)
	if err != nil {
		return fmt.Errorf("run (%d results): %w", len(results), err)
	}
	log.Info("benchmark complete", zap.Int("results", len(results)))

	return nil
}
