// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for construction and
//    operand checks.
//  - Keep kernels minimal by delegating nil/shape/index/finiteness checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only ValidateGrid and
//    validateFinite are O(rows*cols), everything else is O(1).

package matrix

import (
	"fmt"
	"math"
	"reflect"

	"github.com/katalvlaran/lvmat/vec"
)

// zeroTol is the lower bound for user-provided tolerances.
const zeroTol = 0.0

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil. Pointers to the
// variants satisfy Matrix too, so a nil *Mat2x2 behind the interface counts
// as nil.
// Returns ErrNilMatrix. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// isNil reports an untyped nil or a nil pointer stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// ValidateGrid checks that grid is a non-empty sequence of non-empty rows
// of equal length. Element values are not inspected.
//
// Errors: ErrInvalidShape (empty grid, empty row, ragged row).
// Complexity: O(rows).
func ValidateGrid[T any](grid [][]T) error {
	if len(grid) == 0 {
		return validatorErrorf("ValidateGrid: empty grid", ErrInvalidShape)
	}
	cols := len(grid[0])
	if cols == 0 {
		return validatorErrorf("ValidateGrid: empty row 0", ErrInvalidShape)
	}
	for i := 1; i < len(grid); i++ {
		if len(grid[i]) != cols {
			return validatorErrorf(
				fmt.Sprintf("ValidateGrid: row %d has %d elements, want %d", i, len(grid[i]), cols),
				ErrInvalidShape,
			)
		}
	}

	return nil
}

// ValidateShape ensures s is one of the nine registered shapes.
// Errors: ErrUnsupportedDimensions. Complexity: O(1).
func ValidateShape(s Shape) error {
	if !s.Supported() {
		return validatorErrorf("ValidateShape: "+s.String(), ErrUnsupportedDimensions)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Inputs: two non-nil matrices (nil is reported as ErrNilMatrix).
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Shape() != b.Shape() {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: %s vs %s", a.Shape(), b.Shape()),
			ErrShapeMismatch,
		)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %s · %s", a.Shape(), b.Shape()),
			ErrShapeMismatch,
		)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNotSquare. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if !m.Shape().Square() {
		return validatorErrorf("ValidateSquare: "+m.Shape().String(), ErrNotSquare)
	}

	return nil
}

// ValidateVecLen ensures m·v is defined: v non-nil, v.Len() == m.Cols(), and
// m.Rows() ∈ {2,3} so that the result fits a vec.Vec2 or vec.Vec3.
//
// Errors: ErrNilMatrix (nil m), ErrShapeMismatch (nil v, wrong length, 4-row m).
// Complexity: O(1).
func ValidateVecLen(m Matrix, v vec.Vector) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateVecLen", err)
	}
	if isNil(v) {
		return validatorErrorf("ValidateVecLen: nil vector", ErrShapeMismatch)
	}
	if v.Len() != m.Cols() {
		return validatorErrorf(
			fmt.Sprintf("ValidateVecLen: %s · vec%d", m.Shape(), v.Len()),
			ErrShapeMismatch,
		)
	}
	if r := m.Rows(); r != 2 && r != 3 {
		return validatorErrorf(
			fmt.Sprintf("ValidateVecLen: no vector type for %d rows", r),
			ErrShapeMismatch,
		)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i < Rows and 0 ≤ j < Cols for shape s.
// Errors: ErrOutOfRange. Complexity: O(1).
func ValidateIndex(s Shape, i, j int) error {
	if i < 0 || i >= s.Rows || j < 0 || j >= s.Cols {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d,%d) on %s", i, j, s), ErrOutOfRange)
	}

	return nil
}

// validateFinite rejects NaN and ±Inf, reporting the first offending
// row-major position for shape s.
// Errors: ErrNaNInf. Complexity: O(len(data)).
func validateFinite(s Shape, data []float64) error {
	for idx, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(
				fmt.Sprintf("validateFinite(%d,%d)", idx/s.Cols, idx%s.Cols),
				ErrNaNInf,
			)
		}
	}

	return nil
}

// validateTol rejects non-finite tolerances and normalizes negative ones
// to their absolute value.
func validateTol(tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, validatorErrorf("validateTol", ErrNaNInf)
	}
	if tol < zeroTol {
		tol = -tol
	}

	return tol, nil
}
