// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide function-style entry points next to the method set, for callers
//     that hold Matrix values which may be nil or prefer prefix notation.
//   - Avoid any logic duplication: each facade delegates to the canonical
//     kernel or method.
//
// Determinism & Policy:
//   - Facades add a nil guard (ErrNilMatrix) and nothing else.

package matrix

import "github.com/katalvlaran/lvmat/vec"

// Sum returns a + b. Errors: ErrNilMatrix, ErrShapeMismatch.
func Sum(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return a.Add(b)
}

// Diff returns a − b. Errors: ErrNilMatrix, ErrShapeMismatch.
func Diff(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return a.Sub(b)
}

// Product returns a·b. Errors: ErrNilMatrix, ErrShapeMismatch.
func Product(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return a.Mul(b)
}

// ScalarMul returns k·m, the left-hand scalar product. It is identical to
// m.Scale(float64(k)); scalar multiplication commutes.
// A nil m yields nil.
func ScalarMul[T Number](k T, m Matrix) Matrix {
	if isNil(m) {
		return nil
	}

	return m.Scale(float64(k))
}

// Quotient returns m/k. Errors: ErrNilMatrix, ErrDivisionByZero.
func Quotient(m Matrix, k float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}

	return m.Div(k)
}

// T returns mᵀ, or ErrNilMatrix.
func T(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}

// Det returns det(m). Errors: ErrNilMatrix, ErrNotSquare.
func Det(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return m.Det()
}

// InverseOf returns m⁻¹. Errors: ErrNilMatrix, ErrNotSquare, ErrSingular.
func InverseOf(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return m.Inverse()
}

// MulVec returns m·v. Errors: ErrNilMatrix, ErrShapeMismatch.
func MulVec(m Matrix, v vec.Vector) (vec.Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	return m.MulVec(v)
}

// Multiply is the dispatching product m * operand; see Matrix.Multiply.
func Multiply(m Matrix, operand any) (any, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return m.Multiply(operand)
}

// Equal reports a == b. Two nil matrices are equal; nil and non-nil are not.
func Equal(a, b Matrix) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}

	return a.Equal(b)
}

// AllClose checks element-wise |a−b| ≤ atol + rtol·|b| for identical shapes.
// Returns (true, nil) if every element satisfies the relation.
//
// Policy:
//   - a and b must be non-nil with identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances → ErrNaNInf.
//
// Complexity: Time O(r*c), Space O(r*c) for the flat copies.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// ApproxEqual reports identical shapes and |a−b| ≤ eps elementwise, with eps
// from WithEpsilon (DefaultEpsilon otherwise). Nil or differently shaped
// operands are simply not equal.
//
// AI-Hints:
//   - Use for M·M⁻¹ ≈ I style checks, where exact Equal is too strict.
func ApproxEqual(a, b Matrix, opts ...Option) bool {
	o := gatherOptions(opts...)
	ok, err := ewAllClose(a, b, 0, o.eps)

	return err == nil && ok
}
