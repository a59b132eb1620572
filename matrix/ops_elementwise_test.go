// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// --- AllClose ----------------------------------------------------------------

func TestAllClose_Tolerances(t *testing.T) {
	t.Parallel()

	a := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := MustNew(t, [][]float64{{1, 2}, {3, 4.001}})

	tests := []struct {
		name       string
		rtol, atol float64
		want       bool
	}{
		{"exact", 0, 0, false},
		{"atol too small", 0, 1e-4, false},
		{"atol enough", 0, 1e-2, true},
		{"rtol enough", 1e-3, 0, true},
		{"negative normalized", -1e-3, 0, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ok, err := matrix.AllClose(a, b, tc.rtol, tc.atol)
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}
}

func TestAllClose_NonFinite(t *testing.T) {
	t.Parallel()

	mk := func(v float64) matrix.Matrix {
		return matrix.MustNew([][]float64{{v, 0}, {0, 1}}, matrix.WithNoValidateNaNInf())
	}
	inf, ninf, nan, one := mk(math.Inf(1)), mk(math.Inf(-1)), mk(math.NaN()), mk(1)

	ok, err := matrix.AllClose(inf, inf, 0, 0)
	require.NoError(t, err)
	require.True(t, ok, "+Inf is close to +Inf")

	for _, pair := range [][2]matrix.Matrix{{inf, ninf}, {inf, one}, {one, inf}, {nan, nan}, {nan, one}} {
		ok, err := matrix.AllClose(pair[0], pair[1], 1, 1e300)
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestAllClose_Errors(t *testing.T) {
	t.Parallel()

	a := MustNew(t, [][]float64{{1, 2}, {3, 4}})

	_, err := matrix.AllClose(a, a, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, a, 0, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, MustNew(t, SeqGrid(matrix.Shape{Rows: 2, Cols: 3}, 0)), 0, 0)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.AllClose(nil, a, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
