// SPDX-License-Identifier: MIT
// Package matrix: interop with gonum.org/v1/gonum/mat.
//
// Fixed-shape values cover per-frame transforms; anything heavier (SVD,
// eigen-decomposition, solving larger systems) belongs to gonum. ToGonum and
// FromGonum copy across that boundary in both directions.

package matrix

import "gonum.org/v1/gonum/mat"

const opFromGonum = "FromGonum"

// ToGonum copies m into a new *mat.Dense of the same shape.
// A nil m yields nil.
func ToGonum(m Matrix) *mat.Dense {
	if isNil(m) {
		return nil
	}

	return mat.NewDense(m.Rows(), m.Cols(), m.flat())
}

// FromGonum copies any gonum matrix into the variant for its dimensions.
// Dimensions outside the table fail with ErrUnsupportedDimensions and an
// empty matrix with ErrInvalidShape, exactly as New.
func FromGonum(a mat.Matrix, opts ...Option) (Matrix, error) {
	if isNil(a) {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	g := make([][]float64, r)
	for i := 0; i < r; i++ {
		g[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			g[i][j] = a.At(i, j)
		}
	}

	m, err := New(g, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return m, nil
}
