// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file holds ONLY the public type surface: the Number constraint, the
// Shape dispatch key, the sealed Matrix interface and the nine variant types.
// Behavior lives in shapes.go (dispatch), impl_linear_algebra.go (kernels)
// and impl_mat{2,3,4}.go (per-variant method sets).
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmat/vec"
	"golang.org/x/exp/constraints"
)

// Number is any Go integer or floating-point kind accepted by From and
// ScalarMul. Values are widened to float64.
type Number interface {
	constraints.Integer | constraints.Float
}

// Shape is the (rows, cols) dispatch key of a matrix.
type Shape struct {
	Rows int // number of rows, 2..4 for supported shapes
	Cols int // number of columns, 2..4 for supported shapes
}

// Matrix is the common handle over the nine fixed-shape variants.
//
// Every method is pure: the receiver is never modified and results are
// freshly built values. The interface is sealed (unexported flat method),
// so the set of shapes is exactly the one enumerated in shapes.go.
// Pointers to the variants also satisfy Matrix; a nil one is reported as
// ErrNilMatrix wherever a nil Matrix would be.
type Matrix interface {
	// Shape returns (rows, cols). Complexity: O(1).
	Shape() Shape

	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Grid returns a freshly allocated row-major copy of the elements.
	Grid() [][]float64

	// Add returns the elementwise sum; ErrShapeMismatch unless shapes match.
	Add(b Matrix) (Matrix, error)

	// Sub returns Add(b.Scale(-1)); same shape contract as Add.
	Sub(b Matrix) (Matrix, error)

	// Scale returns k·m. It never fails.
	Scale(k float64) Matrix

	// Div returns Scale(1/k); ErrDivisionByZero when k == 0.
	Div(k float64) (Matrix, error)

	// Mul returns the matrix product m·b for b of shape (Cols(), k).
	Mul(b Matrix) (Matrix, error)

	// MulVec returns m·v for len(v) == Cols() and Rows() ∈ {2,3}.
	MulVec(v vec.Vector) (vec.Vector, error)

	// Multiply dispatches on the operand: number → Scale, Matrix → Mul,
	// vec.Vector → MulVec, anything else → ErrUnsupportedOperand.
	Multiply(operand any) (any, error)

	// Transpose returns the (Cols()×Rows()) transpose.
	Transpose() Matrix

	// Det returns the determinant of a square matrix, ErrNotSquare otherwise.
	Det() (float64, error)

	// Inverse returns the inverse of a square non-singular matrix.
	Inverse() (Matrix, error)

	// Equal reports identical shape and exactly equal elements.
	Equal(b Matrix) bool

	fmt.Stringer

	// flat returns a fresh row-major copy of the elements (len == Rows()*Cols()).
	flat() []float64
}

// Mat2x2 is a 2×2 matrix in row-major order: m[i][j] is row i, column j.
type Mat2x2 [2][2]float64

// Mat2x3 is a 2×3 matrix in row-major order.
type Mat2x3 [2][3]float64

// Mat2x4 is a 2×4 matrix in row-major order.
type Mat2x4 [2][4]float64

// Mat3x2 is a 3×2 matrix in row-major order.
type Mat3x2 [3][2]float64

// Mat3x3 is a 3×3 matrix in row-major order.
type Mat3x3 [3][3]float64

// Mat3x4 is a 3×4 matrix in row-major order.
type Mat3x4 [3][4]float64

// Mat4x2 is a 4×2 matrix in row-major order.
type Mat4x2 [4][2]float64

// Mat4x3 is a 4×3 matrix in row-major order.
type Mat4x3 [4][3]float64

// Mat4x4 is a 4×4 matrix in row-major order.
type Mat4x4 [4][4]float64

// Compile-time assertions: every variant implements Matrix.
var (
	_ Matrix = Mat2x2{}
	_ Matrix = Mat2x3{}
	_ Matrix = Mat2x4{}
	_ Matrix = Mat3x2{}
	_ Matrix = Mat3x3{}
	_ Matrix = Mat3x4{}
	_ Matrix = Mat4x2{}
	_ Matrix = Mat4x3{}
	_ Matrix = Mat4x4{}
)
