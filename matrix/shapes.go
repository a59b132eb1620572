// SPDX-License-Identifier: MIT
// Package matrix: static shape table and variant dispatch.
//
// Purpose:
//   - Enumerate the closed set of supported shapes once, at compile time.
//   - Map a validated Shape plus row-major data to its concrete variant.
//
// Determinism:
//   - Shapes() is ordered row-major: 2x2, 2x3, 2x4, 3x2, ..., 4x4.
//   - No registration, no global mutable state.

package matrix

import "strconv"

// Dimension bounds shared by rows and cols.
const (
	MinDim = 2 // smallest supported row/column count
	MaxDim = 4 // largest supported row/column count
)

// supportedShapes is the registry: every (rows, cols) in [MinDim, MaxDim]².
// The set is closed under transposition, which is what makes Transpose total.
var supportedShapes = [...]Shape{
	{2, 2}, {2, 3}, {2, 4},
	{3, 2}, {3, 3}, {3, 4},
	{4, 2}, {4, 3}, {4, 4},
}

// Shapes returns the nine supported shapes in row-major order.
// The returned slice is a copy; callers may modify it.
func Shapes() []Shape {
	out := make([]Shape, len(supportedShapes))
	copy(out, supportedShapes[:])

	return out
}

// Supported reports whether s is one of the nine registered shapes.
// Complexity: O(1).
func (s Shape) Supported() bool {
	return s.Rows >= MinDim && s.Rows <= MaxDim && s.Cols >= MinDim && s.Cols <= MaxDim
}

// Square reports Rows == Cols.
func (s Shape) Square() bool { return s.Rows == s.Cols }

// T returns the transposed shape (Cols, Rows).
func (s Shape) T() Shape { return Shape{Rows: s.Cols, Cols: s.Rows} }

// Len returns Rows*Cols.
func (s Shape) Len() int { return s.Rows * s.Cols }

// String renders the shape as "RxC", e.g. "2x3".
func (s Shape) String() string {
	return strconv.Itoa(s.Rows) + "x" + strconv.Itoa(s.Cols)
}

// variantName returns the Go type name of the variant for s ("Mat2x3").
func variantName(s Shape) string { return "Mat" + s.String() }

// build returns the concrete variant for s filled from row-major data.
// Implementation:
//   - Stage 1: reject shapes outside the table with ErrUnsupportedDimensions
//     and data of the wrong length with ErrInvalidShape.
//   - Stage 2: switch on s and copy data into the fixed-size array.
//
// Complexity: O(rows*cols).
func build(s Shape, data []float64) (Matrix, error) {
	if err := ValidateShape(s); err != nil {
		return nil, err
	}
	if len(data) != s.Len() {
		return nil, validatorErrorf("build", ErrInvalidShape)
	}

	switch s {
	case Shape{2, 2}:
		var m Mat2x2
		for i := range m {
			copy(m[i][:], data[i*2:])
		}
		return m, nil
	case Shape{2, 3}:
		var m Mat2x3
		for i := range m {
			copy(m[i][:], data[i*3:])
		}
		return m, nil
	case Shape{2, 4}:
		var m Mat2x4
		for i := range m {
			copy(m[i][:], data[i*4:])
		}
		return m, nil
	case Shape{3, 2}:
		var m Mat3x2
		for i := range m {
			copy(m[i][:], data[i*2:])
		}
		return m, nil
	case Shape{3, 3}:
		var m Mat3x3
		for i := range m {
			copy(m[i][:], data[i*3:])
		}
		return m, nil
	case Shape{3, 4}:
		var m Mat3x4
		for i := range m {
			copy(m[i][:], data[i*4:])
		}
		return m, nil
	case Shape{4, 2}:
		var m Mat4x2
		for i := range m {
			copy(m[i][:], data[i*2:])
		}
		return m, nil
	case Shape{4, 3}:
		var m Mat4x3
		for i := range m {
			copy(m[i][:], data[i*3:])
		}
		return m, nil
	default: // Shape{4, 4}; ValidateShape above excludes anything else
		var m Mat4x4
		for i := range m {
			copy(m[i][:], data[i*4:])
		}
		return m, nil
	}
}

// mustBuild is build for kernels whose result shape is derived from valid
// operands. A failure here is a programmer error inside this package.
func mustBuild(s Shape, data []float64) Matrix {
	m, err := build(s, data)
	if err != nil {
		panic("matrix: internal: " + err.Error())
	}

	return m
}

// row is the set of fixed-size row arrays used by the variants.
type row interface {
	~[2]float64 | ~[3]float64 | ~[4]float64
}

// flatten copies rows into a fresh row-major slice.
// Complexity: O(rows*cols).
func flatten[R row](rows []R) []float64 {
	n := len(rows) * len(rows[0])
	out := make([]float64, 0, n)
	for i := 0; i < len(rows); i++ {
		for j := 0; j < len(rows[i]); j++ {
			out = append(out, rows[i][j])
		}
	}

	return out
}
