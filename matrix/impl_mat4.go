// SPDX-License-Identifier: MIT
// Package matrix: four-row variants (Mat4x2, Mat4x3, Mat4x4).
//
// MulVec on these shapes always reports ErrShapeMismatch: the vec package
// has no 4-component result type.

package matrix

import "github.com/katalvlaran/lvmat/vec"

// ---------- Mat4x2 ----------

// Shape returns 4x2.
func (m Mat4x2) Shape() Shape { return Shape{Rows: 4, Cols: 2} }

// Rows returns 4.
func (m Mat4x2) Rows() int { return len(m) }

// Cols returns 2.
func (m Mat4x2) Cols() int { return len(m[0]) }

// Grid returns a fresh [][]float64 copy of m.
func (m Mat4x2) Grid() [][]float64 { return grid(m) }

// Add returns m + b; b must be a Mat4x2.
func (m Mat4x2) Add(b Matrix) (Matrix, error) { return add(m, b) }

// Sub returns m − b; b must be a Mat4x2.
func (m Mat4x2) Sub(b Matrix) (Matrix, error) { return sub(m, b) }

// Scale returns k·m as a Mat4x2.
func (m Mat4x2) Scale(k float64) Matrix { return scale(m, k) }

// Div returns m/k as a Mat4x2, or ErrDivisionByZero.
func (m Mat4x2) Div(k float64) (Matrix, error) { return div(m, k) }

// Mul returns m·b for any b with 2 rows; the result has 4 rows.
func (m Mat4x2) Mul(b Matrix) (Matrix, error) { return mul(m, b) }

// MulVec always fails with ErrShapeMismatch: there is no 4-component vector type.
func (m Mat4x2) MulVec(v vec.Vector) (vec.Vector, error) { return mulVec(m, v) }

// Multiply dispatches on operand; see Matrix.Multiply.
func (m Mat4x2) Multiply(operand any) (any, error) { return multiply(m, operand) }

// Transpose returns mᵀ as a Mat2x4.
func (m Mat4x2) Transpose() Matrix { return transpose(m) }

// Det always fails with ErrNotSquare: 4x2 has no determinant.
func (m Mat4x2) Det() (float64, error) { return det(m) }

// Inverse always fails with ErrNotSquare.
func (m Mat4x2) Inverse() (Matrix, error) { return inverse(m) }

// Equal reports whether b is a Mat4x2 with exactly the same elements.
func (m Mat4x2) Equal(b Matrix) bool { return equal(m, b) }

// String renders m as "Mat4x2" followed by one bracketed line per row.
func (m Mat4x2) String() string { return format(m) }

func (m Mat4x2) flat() []float64 { return flatten(m[:]) }

// At returns m[i][j], or ErrOutOfRange for indices outside the grid.
func (m Mat4x2) At(i, j int) (float64, error) {
	if err := ValidateIndex(m.Shape(), i, j); err != nil {
		return 0, matrixErrorf(opAt, err)
	}

	return m[i][j], nil
}

// ---------- Mat4x3 ----------

// Shape returns 4x3.
func (m Mat4x3) Shape() Shape { return Shape{Rows: 4, Cols: 3} }

// Rows returns 4.
func (m Mat4x3) Rows() int { return len(m) }

// Cols returns 3.
func (m Mat4x3) Cols() int { return len(m[0]) }

// Grid returns a fresh [][]float64 copy of m.
func (m Mat4x3) Grid() [][]float64 { return grid(m) }

// Add returns m + b; b must be a Mat4x3.
func (m Mat4x3) Add(b Matrix) (Matrix, error) { return add(m, b) }

// Sub returns m − b; b must be a Mat4x3.
func (m Mat4x3) Sub(b Matrix) (Matrix, error) { return sub(m, b) }

// Scale returns k·m as a Mat4x3.
func (m Mat4x3) Scale(k float64) Matrix { return scale(m, k) }

// Div returns m/k as a Mat4x3, or ErrDivisionByZero.
func (m Mat4x3) Div(k float64) (Matrix, error) { return div(m, k) }

// Mul returns m·b for any b with 3 rows; the result has 4 rows.
func (m Mat4x3) Mul(b Matrix) (Matrix, error) { return mul(m, b) }

// MulVec always fails with ErrShapeMismatch: there is no 4-component vector type.
func (m Mat4x3) MulVec(v vec.Vector) (vec.Vector, error) { return mulVec(m, v) }

// Multiply dispatches on operand; see Matrix.Multiply.
func (m Mat4x3) Multiply(operand any) (any, error) { return multiply(m, operand) }

// Transpose returns mᵀ as a Mat3x4.
func (m Mat4x3) Transpose() Matrix { return transpose(m) }

// Det always fails with ErrNotSquare: 4x3 has no determinant.
func (m Mat4x3) Det() (float64, error) { return det(m) }

// Inverse always fails with ErrNotSquare.
func (m Mat4x3) Inverse() (Matrix, error) { return inverse(m) }

// Equal reports whether b is a Mat4x3 with exactly the same elements.
func (m Mat4x3) Equal(b Matrix) bool { return equal(m, b) }

// String renders m as "Mat4x3" followed by one bracketed line per row.
func (m Mat4x3) String() string { return format(m) }

func (m Mat4x3) flat() []float64 { return flatten(m[:]) }

// At returns m[i][j], or ErrOutOfRange for indices outside the grid.
func (m Mat4x3) At(i, j int) (float64, error) {
	if err := ValidateIndex(m.Shape(), i, j); err != nil {
		return 0, matrixErrorf(opAt, err)
	}

	return m[i][j], nil
}

// ---------- Mat4x4 ----------

// Shape returns 4x4.
func (m Mat4x4) Shape() Shape { return Shape{Rows: 4, Cols: 4} }

// Rows returns 4.
func (m Mat4x4) Rows() int { return len(m) }

// Cols returns 4.
func (m Mat4x4) Cols() int { return len(m[0]) }

// At returns m[i][j], or ErrOutOfRange for indices outside the 4x4 grid.
func (m Mat4x4) At(i, j int) (float64, error) {
	if err := ValidateIndex(m.Shape(), i, j); err != nil {
		return 0, matrixErrorf(opAt, err)
	}

	return m[i][j], nil
}

// Grid returns a fresh [][]float64 copy of m.
func (m Mat4x4) Grid() [][]float64 { return grid(m) }

// Add returns m + b; b must be a Mat4x4.
func (m Mat4x4) Add(b Matrix) (Matrix, error) { return add(m, b) }

// Sub returns m − b; b must be a Mat4x4.
func (m Mat4x4) Sub(b Matrix) (Matrix, error) { return sub(m, b) }

// Scale returns k·m as a Mat4x4.
func (m Mat4x4) Scale(k float64) Matrix { return scale(m, k) }

// Div returns m/k as a Mat4x4, or ErrDivisionByZero.
func (m Mat4x4) Div(k float64) (Matrix, error) { return div(m, k) }

// Mul returns m·b for any b with 4 rows; the result has 4 rows.
func (m Mat4x4) Mul(b Matrix) (Matrix, error) { return mul(m, b) }

// MulVec always fails with ErrShapeMismatch: there is no 4-component vector type.
func (m Mat4x4) MulVec(v vec.Vector) (vec.Vector, error) { return mulVec(m, v) }

// Multiply dispatches on operand; see Matrix.Multiply.
func (m Mat4x4) Multiply(operand any) (any, error) { return multiply(m, operand) }

// Transpose returns mᵀ as a Mat4x4.
func (m Mat4x4) Transpose() Matrix { return transpose(m) }

// Det returns the determinant of m.
func (m Mat4x4) Det() (float64, error) { return det(m) }

// Inverse returns m⁻¹, or ErrSingular when Det is zero.
func (m Mat4x4) Inverse() (Matrix, error) { return inverse(m) }

// Equal reports whether b is a Mat4x4 with exactly the same elements.
func (m Mat4x4) Equal(b Matrix) bool { return equal(m, b) }

// String renders m as "Mat4x4" followed by one bracketed line per row.
func (m Mat4x4) String() string { return format(m) }

func (m Mat4x4) flat() []float64 { return flatten(m[:]) }
