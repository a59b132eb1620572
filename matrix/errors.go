// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (possibly wrapped with an operation
// tag via matrixErrorf); tests and callers match them with errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ". Wrap with context at the
// detection site (fmt.Errorf("ctx: %w", ErrX)); never compare by string.
//
// ERROR PRIORITY (construction):
// nil/empty/ragged -> unsupported shape -> non-numeric -> NaN/Inf.

var (
	// ErrInvalidShape is returned when a construction grid is empty, ragged,
	// or holds a non-numeric element.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrUnsupportedDimensions is returned when the grid is rectangular but
	// its (rows, cols) is not one of the nine supported shapes.
	ErrUnsupportedDimensions = errors.New("matrix: unsupported dimensions")

	// ErrShapeMismatch indicates incompatible operand shapes: Add/Sub with
	// different shapes, Mul with a.Cols != b.Rows, MulVec with a wrong length.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNotSquare signals Det or Inverse on a rectangular shape.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrDivisionByZero is returned by Div(0).
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrUnsupportedOperand is returned by Multiply when the operand is
	// neither a number, a Matrix nor a vec.Vector.
	ErrUnsupportedOperand = errors.New("matrix: unsupported operand")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (construction, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix was passed to a facade.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
