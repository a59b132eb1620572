// SPDX-License-Identifier: MIT
// Package matrix: constructors (the shape dispatcher).
//
// Purpose:
//   - Validate a caller-supplied grid and select the concrete variant once.
//   - Offer typed (New, From[T]) and dynamic (FromValues) entry points that
//     share one validation order:
//     empty/ragged → unsupported shape → non-numeric → NaN/Inf.
//
// Determinism:
//   - Pure: grids are copied, never retained.

package matrix

import (
	"fmt"
	"reflect"
)

// Operation tags used by constructors.
const (
	opNew        = "New"
	opFrom       = "From"
	opFromValues = "FromValues"
	opZeros      = "Zeros"
	opIdentity   = "Identity"
)

// New validates grid and returns the variant for its shape holding a copy.
// Implementation:
//   - Stage 1: ValidateGrid (non-empty, rectangular) → ErrInvalidShape.
//   - Stage 2: ValidateShape((len(grid), len(grid[0]))) → ErrUnsupportedDimensions.
//   - Stage 3: flatten row-major; under the default policy reject NaN/±Inf.
//   - Stage 4: dispatch through the static shape table.
//
// Errors:
//   - ErrInvalidShape, ErrUnsupportedDimensions, ErrNaNInf (all tagged "New").
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func New(grid [][]float64, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateGrid(grid); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	s := Shape{Rows: len(grid), Cols: len(grid[0])}
	if err := ValidateShape(s); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	data := make([]float64, 0, s.Len())
	for _, r := range grid {
		data = append(data, r...)
	}
	if o.validateNaNInf {
		if err := validateFinite(s, data); err != nil {
			return nil, matrixErrorf(opNew, err)
		}
	}

	m, err := build(s, data)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return m, nil
}

// From is New for grids of any integer or float kind; values are widened
// to float64. Validation order and errors are those of New.
func From[T Number](grid [][]T, opts ...Option) (Matrix, error) {
	if err := ValidateGrid(grid); err != nil {
		return nil, matrixErrorf(opFrom, err)
	}
	conv := make([][]float64, len(grid))
	for i, r := range grid {
		conv[i] = make([]float64, len(r))
		for j, v := range r {
			conv[i][j] = float64(v)
		}
	}

	return New(conv, opts...)
}

// FromValues builds a matrix from untyped elements, such as decoded input.
// Every element must have a Go numeric kind (signed, unsigned or float,
// including named types over them); anything else, nil included, fails
// with ErrInvalidShape naming the first offending position.
//
// Complexity: O(rows*cols).
func FromValues(grid [][]any, opts ...Option) (Matrix, error) {
	if err := ValidateGrid(grid); err != nil {
		return nil, matrixErrorf(opFromValues, err)
	}
	s := Shape{Rows: len(grid), Cols: len(grid[0])}
	if err := ValidateShape(s); err != nil {
		return nil, matrixErrorf(opFromValues, err)
	}

	conv := make([][]float64, len(grid))
	for i, r := range grid {
		conv[i] = make([]float64, len(r))
		for j, v := range r {
			f, ok := toFloat(v)
			if !ok {
				return nil, matrixErrorf(opFromValues,
					fmt.Errorf("element (%d,%d) of type %T: %w", i, j, v, ErrInvalidShape))
			}
			conv[i][j] = f
		}
	}

	return New(conv, opts...)
}

// MustNew is New that panics on error. Intended for literals in tests,
// examples and package-level variables.
func MustNew(grid [][]float64, opts ...Option) Matrix {
	m, err := New(grid, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Zeros returns the zero matrix of shape s.
// Errors: ErrUnsupportedDimensions.
func Zeros(s Shape) (Matrix, error) {
	if err := ValidateShape(s); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return mustBuild(s, make([]float64, s.Len())), nil
}

// Identity returns I_n for n ∈ {2,3,4}.
// Errors: ErrUnsupportedDimensions.
func Identity(n int) (Matrix, error) {
	s := Shape{Rows: n, Cols: n}
	if err := ValidateShape(s); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	data := make([]float64, s.Len())
	for i := 0; i < n; i++ {
		data[i*n+i] = 1.0
	}

	return mustBuild(s, data), nil
}

// toFloat widens any Go numeric kind to float64. Booleans, strings, nil and
// composite values report false.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
