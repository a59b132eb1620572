// SPDX-License-Identifier: MIT
package vec_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/vec"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      []float64
		want    vec.Vector
		wantErr error
	}{
		{"two", []float64{1, 2}, vec.Vec2{1, 2}, nil},
		{"three", []float64{1, 2, 3}, vec.Vec3{1, 2, 3}, nil},
		{"none", nil, nil, vec.ErrDimension},
		{"one", []float64{1}, nil, vec.ErrDimension},
		{"four", []float64{1, 2, 3, 4}, nil, vec.ErrDimension},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := vec.New(tc.in...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestVec2_Arithmetic(t *testing.T) {
	t.Parallel()

	p := vec.Vec2{3, 4}
	q := vec.Vec2{1, -1}

	require.Equal(t, vec.Vec2{4, 3}, p.Add(q))
	require.Equal(t, vec.Vec2{2, 5}, p.Sub(q))
	require.Equal(t, vec.Vec2{6, 8}, p.Scale(2))
	require.Equal(t, -1.0, p.Dot(q))
	require.Equal(t, 2, p.Len())
	require.Equal(t, 3.0, p.X())
	require.Equal(t, 4.0, p.At(1))
	require.Equal(t, p.Y(), p.At(1))
	require.Equal(t, "(3, 4)", p.String())
	require.True(t, p.Equal(vec.Vec2{3, 4}))
	require.False(t, p.Equal(q))
}

func TestVec3_Arithmetic(t *testing.T) {
	t.Parallel()

	x := vec.Vec3{1, 0, 0}
	y := vec.Vec3{0, 1, 0}

	require.Equal(t, vec.Vec3{0, 0, 1}, x.Cross(y))
	require.Equal(t, vec.Vec3{0, 0, -1}, y.Cross(x))
	require.Equal(t, vec.Vec3{1, 1, 0}, x.Add(y))
	require.Equal(t, vec.Vec3{1, -1, 0}, x.Sub(y))
	require.Equal(t, vec.Vec3{0, 2.5, 0}, y.Scale(2.5))
	require.Zero(t, x.Dot(y))
	require.Equal(t, 3, x.Len())
	require.Equal(t, 0.0, x.Z())
	require.Equal(t, "(1, 0.5, -2)", vec.Vec3{1, 0.5, -2}.String())
	require.True(t, x.Equal(vec.Vec3{1, 0, 0}))
	require.False(t, x.Equal(y))
}
