// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies that an empty option list
// resolves to the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()

	if o.Eps != matrix.DefaultEpsilon {
		t.Fatalf("eps default mismatch: got %v, want %v", o.Eps, matrix.DefaultEpsilon)
	}
	if o.ValidateNaNInf != matrix.DefaultValidateNaNInf {
		t.Fatalf("validateNaNInf default mismatch: got %v, want %v", o.ValidateNaNInf, matrix.DefaultValidateNaNInf)
	}
}

// 2) TestOptions_LastWins verifies application order and nil setters.
func TestOptions_LastWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithEpsilon(1e-3),
		nil,
		matrix.WithNoValidateNaNInf(),
		matrix.WithEpsilon(0),
	)
	require.Equal(t, 0.0, o.Eps)
	require.False(t, o.ValidateNaNInf)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf)
}

// 3) TestWithEpsilon_PanicsOnInvalid verifies the constructor-time guard.
func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	for _, eps := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { _ = matrix.WithEpsilon(eps) }, "eps=%v", eps)
	}
	require.NotPanics(t, func() { _ = matrix.WithEpsilon(0) })
}

// 4) TestApproxEqual_Epsilon verifies that the tolerance comes from options.
func TestApproxEqual_Epsilon(t *testing.T) {
	a := MustNew(t, [][]float64{{1, 0}, {0, 1}})
	b := MustNew(t, [][]float64{{1 + 1e-6, 0}, {0, 1}})

	require.False(t, matrix.ApproxEqual(a, b))
	require.True(t, matrix.ApproxEqual(a, b, matrix.WithEpsilon(1e-5)))
	require.False(t, matrix.ApproxEqual(a, b, matrix.WithEpsilon(0)))
	require.True(t, matrix.ApproxEqual(a, a, matrix.WithEpsilon(0)))

	// Nil and mismatched shapes are simply unequal.
	require.False(t, matrix.ApproxEqual(a, nil))
	require.False(t, matrix.ApproxEqual(a, MustNew(t, SeqGrid(matrix.Shape{Rows: 2, Cols: 3}, 0))))
}
