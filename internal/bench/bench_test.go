// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/lvmat/internal/logging"
)

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()

	return &logging.Logger{Logger: zaptest.NewLogger(t)}
}

func TestNewRunner_InvalidCounts(t *testing.T) {
	t.Parallel()

	_, err := NewRunner(nil, 0, 1)
	require.ErrorIs(t, err, ErrInvalidCount)
	_, err = NewRunner(nil, 1, -1)
	require.ErrorIs(t, err, ErrInvalidCount)

	r, err := NewRunner(nil, 1, 1)
	require.NoError(t, err)
	require.NotNil(t, r.log)
	require.False(t, r.log.Core().Enabled(zapcore.ErrorLevel), "nil logger falls back to a no-op one")
}

func TestRunner_OneResultPerWorkloadAndRound(t *testing.T) {
	t.Parallel()

	calls := 0
	w := Workload{Name: "count", Run: func(n int) error {
		calls += n
		return nil
	}}

	r, err := NewRunner(testLogger(t), 5, 2)
	require.NoError(t, err)
	res, err := r.Run(context.Background(), append(LoopWorkloads(4), w))
	require.NoError(t, err)
	require.Len(t, res, 6)
	require.Equal(t, 10, calls)

	require.Equal(t, "loop/size=4", res[0].Name)
	require.Equal(t, 1, res[0].Round)
	require.Equal(t, 2, res[5].Round)
	for _, x := range res {
		require.Equal(t, 5, x.Iterations)
		require.GreaterOrEqual(t, x.Elapsed, x.PerOp())
	}
}

func TestRunner_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	first := Workload{Name: "first", Run: func(int) error {
		cancel()
		return nil
	}}
	never := Workload{Name: "never", Run: func(int) error {
		t.Error("ran after cancellation")
		return nil
	}}

	r, err := NewRunner(testLogger(t), 1, 3)
	require.NoError(t, err)
	res, err := r.Run(ctx, []Workload{first, never})
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, res, 1)
	require.Equal(t, "first", res[0].Name)
}

func TestRunner_WorkloadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r, err := NewRunner(testLogger(t), 1, 1)
	require.NoError(t, err)
	_, err = r.Run(context.Background(), []Workload{{Name: "bad", Run: func(int) error { return boom }}})
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "bad")
}

func TestMatrixWorkloads(t *testing.T) {
	t.Parallel()

	ws, err := MatrixWorkloads()
	require.NoError(t, err)

	kinds := map[string]int{}
	for _, w := range ws {
		kinds[strings.SplitN(w.Name, "/", 2)[0]]++
		require.NoError(t, w.Run(2), w.Name)
	}
	require.Equal(t, 9, kinds["mul"])
	require.Equal(t, 9, kinds["transpose"])
	require.Equal(t, 3, kinds["det"])
	require.Equal(t, 3, kinds["inverse"])
	// 2x2, 2x3, 3x2, 3x3.
	require.Equal(t, 4, kinds["mulvec"])
}

func TestResult_PerOp(t *testing.T) {
	t.Parallel()

	require.Zero(t, Result{}.PerOp())
	require.Equal(t, int64(25), int64(Result{Iterations: 4, Elapsed: 100}.PerOp()))
}
