// SPDX-License-Identifier: MIT

// Package bench is a small sequential timing harness. A Workload runs its
// body n times; the Runner times each workload per round and logs the result.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmat/internal/logging"
)

// ErrInvalidCount reports a non-positive iteration or round count.
var ErrInvalidCount = errors.New("bench: count must be positive")

// Workload is a named body executed n times per measurement.
type Workload struct {
	Name string
	Run  func(n int) error
}

// Result is one timed execution of a Workload.
type Result struct {
	Name       string
	Round      int
	Iterations int
	Elapsed    time.Duration
}

// PerOp returns the mean time per iteration.
func (r Result) PerOp() time.Duration {
	if r.Iterations == 0 {
		return 0
	}

	return r.Elapsed / time.Duration(r.Iterations)
}

// Time measures a single call of fn(iterations).
func Time(iterations int, fn func(n int) error) (time.Duration, error) {
	start := time.Now()
	err := fn(iterations)

	return time.Since(start), err
}

// Runner executes workloads sequentially.
type Runner struct {
	log        *logging.Logger
	iterations int
	rounds     int
}

// NewRunner validates the counts and returns a Runner logging to log
// (nil means no logging).
func NewRunner(log *logging.Logger, iterations, rounds int) (*Runner, error) {
	if iterations <= 0 || rounds <= 0 {
		return nil, fmt.Errorf("iterations=%d rounds=%d: %w", iterations, rounds, ErrInvalidCount)
	}
	if log == nil {
		log = logging.Nop()
	}

	return &Runner{log: log, iterations: iterations, rounds: rounds}, nil
}

// Run executes every workload once per round, in order. Cancellation is
// checked between measurements, never inside one; on cancellation or on a
// workload error the results gathered so far are returned with the error.
func (r *Runner) Run(ctx context.Context, workloads []Workload) ([]Result, error) {
	results := make([]Result, 0, len(workloads)*r.rounds)
	for round := 1; round <= r.rounds; round++ {
		for _, w := range workloads {
			if err := ctx.Err(); err != nil {
				r.log.Warn("benchmark interrupted", zap.Int("completed", len(results)))
				return results, fmt.Errorf("bench: %w", err)
			}

			elapsed, err := Time(r.iterations, w.Run)
			if err != nil {
				return results, fmt.Errorf("bench: workload %s: %w", w.Name, err)
			}
			res := Result{Name: w.Name, Round: round, Iterations: r.iterations, Elapsed: elapsed}
			results = append(results, res)

			r.log.Info("workload timed",
				zap.String("workload", res.Name),
				zap.Int("round", res.Round),
				zap.Int("iterations", res.Iterations),
				zap.Duration("elapsed", res.Elapsed),
				zap.Duration("per_op", res.PerOp()),
			)
		}
	}

	return results, nil
}
