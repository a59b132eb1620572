// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for every supported shape.
//   • Keep data integer-valued where exact equality is asserted, so results
//     do not depend on floating-point rounding order.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// closeTol is the tolerance for results that go through division.
const closeTol = 1e-9

// MustNew builds a matrix from grid or fails the test.
func MustNew(t testing.TB, grid [][]float64) matrix.Matrix {
	t.Helper()
	m, err := matrix.New(grid)
	require.NoError(t, err, "New(%v)", grid)

	return m
}

// SeqGrid returns an s-shaped grid filled row-major with start, start+1, ...
func SeqGrid(s matrix.Shape, start float64) [][]float64 {
	g := make([][]float64, s.Rows)
	for i := range g {
		g[i] = make([]float64, s.Cols)
		for j := range g[i] {
			g[i][j] = start + float64(i*s.Cols+j)
		}
	}

	return g
}

// IntGrid returns an s-shaped grid of small pseudo-random integers in
// [-5, 5], deterministic for a given seed.
func IntGrid(s matrix.Shape, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	g := make([][]float64, s.Rows)
	for i := range g {
		g[i] = make([]float64, s.Cols)
		for j := range g[i] {
			g[i][j] = float64(rng.Intn(11) - 5)
		}
	}

	return g
}

// RandomGrid returns an s-shaped grid of uniform values in [-1, 1).
func RandomGrid(rng *rand.Rand, s matrix.Shape) [][]float64 {
	g := make([][]float64, s.Rows)
	for i := range g {
		g[i] = make([]float64, s.Cols)
		for j := range g[i] {
			g[i][j] = 2*rng.Float64() - 1
		}
	}

	return g
}

// NaiveMul is the textbook triple loop, used as an independent reference.
func NaiveMul(a, b [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = make([]float64, len(b[0]))
		for j := range b[0] {
			for k := range b {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

// RequireGrid asserts m has exactly the elements of want.
func RequireGrid(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, want, m.Grid())
}

// RequireClose asserts identical shape and |a-b| ≤ closeTol elementwise.
func RequireClose(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, closeTol)
	require.NoError(t, err)
	require.Truef(t, ok, "not close:\nwant %v\ngot  %v", want, got)
}

// CompatiblePairs lists every (a, b) shape pair with a.Cols == b.Rows.
func CompatiblePairs() [][2]matrix.Shape {
	var out [][2]matrix.Shape
	for _, a := range matrix.Shapes() {
		for _, b := range matrix.Shapes() {
			if a.Cols == b.Rows {
				out = append(out, [2]matrix.Shape{a, b})
			}
		}
	}

	return out
}
