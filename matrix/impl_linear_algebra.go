// SPDX-License-Identifier: MIT
// Package matrix: shape-generic arithmetic kernels.
//
// Purpose:
//   - Implement the arithmetic contract once, over row-major flat copies,
//     so the nine variants in impl_mat{2,3,4}.go are thin delegations.
//   - Derive every result shape from the operands and rebuild the concrete
//     variant through the static table (shapes.go).
//
// Notes:
//   - Kernels validate with the central validators and wrap failures with
//     matrixErrorf(op*, err); they never mutate their inputs.

package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmat/vec"
)

// ZeroSum is the initial value of every dot-product accumulator.
const ZeroSum = 0.0

// ZeroDet is the determinant value that makes a matrix singular. The check
// is exact: no tolerance is applied.
const ZeroDet = 0.0

// Operation name constants for unified error wrapping.
const (
	opAt        = "At"
	opAdd       = "Add"
	opSub       = "Sub"
	opDiv       = "Div"
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opMultiply  = "Multiply"
	opDet       = "Det"
	opInverse   = "Inverse"
	opTranspose = "Transpose"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtNewline  = "\n"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// grid expands m into a freshly allocated [][]float64.
func grid(m Matrix) [][]float64 {
	rows, cols := m.Rows(), m.Cols()
	data := m.flat()
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = data[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return out
}

// add computes the elementwise sum a + b.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: single flat loop over both row-major copies.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (tagged opAdd).
// Complexity: Time O(r*c), Space O(r*c).
func add(a, b Matrix) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	x, y := a.flat(), b.flat()
	for idx := range x {
		x[idx] += y[idx]
	}

	return mustBuild(a.Shape(), x), nil
}

// sub computes a - b as a + (-1)·b, so Sub inherits Add's shape contract.
func sub(a, b Matrix) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return add(a, scale(b, -1))
}

// scale multiplies every element by k. Never fails.
// Complexity: Time O(r*c), Space O(r*c).
func scale(m Matrix, k float64) Matrix {
	x := m.flat()
	for idx := range x {
		x[idx] *= k
	}

	return mustBuild(m.Shape(), x)
}

// div returns m·(1/k); k == 0 yields ErrDivisionByZero.
func div(m Matrix, k float64) (Matrix, error) {
	if k == 0 {
		return nil, matrixErrorf(opDiv, ErrDivisionByZero)
	}

	return scale(m, 1/k), nil
}

// mul computes C = A·B with C[i][j] = Σ_k A[i][k]·B[k][j].
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: i→k→j accumulation over row-major copies (B read by rows).
//
// Behavior highlights:
//   - Result shape (A.Rows, B.Cols) is always in the table because both
//     dimensions come from supported operands.
//   - No zero-skipping: 0·Inf stays NaN as IEEE-754 dictates.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (tagged opMul).
// Complexity: Time O(r*n*c), Space O(r*c).
func mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	x, y := a.flat(), b.flat()
	out := make([]float64, rows*cols)

	var i, k, j int
	var av float64
	for i = 0; i < rows; i++ {
		for k = 0; k < inner; k++ {
			av = x[i*inner+k]
			for j = 0; j < cols; j++ {
				out[i*cols+j] += av * y[k*cols+j]
			}
		}
	}

	return mustBuild(Shape{Rows: rows, Cols: cols}, out), nil
}

// mulVec computes y = m·v, y[i] = Σ_k m[i][k]·v[k], returned as vec.Vec2
// (2 rows) or vec.Vec3 (3 rows).
//
// Errors: ErrNilMatrix, ErrShapeMismatch (tagged opMulVec).
// Complexity: Time O(r*c).
func mulVec(m Matrix, v vec.Vector) (vec.Vector, error) {
	if err := ValidateVecLen(m, v); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	x := m.flat()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		sum := ZeroSum
		for k := 0; k < cols; k++ {
			sum += x[i*cols+k] * v.At(k)
		}
		out[i] = sum
	}

	// ValidateVecLen admits only 2 or 3 rows.
	if rows == 2 {
		return vec.Vec2{out[0], out[1]}, nil
	}

	return vec.Vec3{out[0], out[1], out[2]}, nil
}

// multiply is the single-operator dispatch: number → scale, Matrix → mul,
// vec.Vector → mulVec. Numbers are recognised by kind, so named numeric
// types work too.
//
// Errors: those of mul/mulVec, or ErrUnsupportedOperand (tagged opMultiply).
func multiply(m Matrix, operand any) (any, error) {
	switch x := operand.(type) {
	case Matrix:
		p, err := mul(m, x)
		if err != nil {
			return nil, err
		}
		return p, nil
	case vec.Vector:
		p, err := mulVec(m, x)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	if k, ok := toFloat(operand); ok {
		return scale(m, k), nil
	}

	return nil, matrixErrorf(opMultiply, fmt.Errorf("%T: %w", operand, ErrUnsupportedOperand))
}

// transpose returns mᵀ with out[j][i] = m[i][j].
// Complexity: Time O(r*c), Space O(r*c).
func transpose(m Matrix) Matrix {
	rows, cols := m.Rows(), m.Cols()
	x := m.flat()
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = x[i*cols+j]
		}
	}

	return mustBuild(m.Shape().T(), out)
}

// det returns the determinant of a square m.
// Errors: ErrNotSquare (tagged opDet).
func det(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return laplace(m.flat(), m.Rows()), nil
}

// laplace computes the determinant of the n×n row-major block a by cofactor
// expansion along the first row.
//
// Expansion order:
//   - n == 1: a[0]; n == 2: a·d − b·c (closed form, the recursion base).
//   - n ≥ 3: Σ_{j=0..n-1} (−1)^j · a[0][j] · det(minor(0, j)), columns in
//     ascending order. Entries equal to zero still expand, so NaN/Inf in a
//     minor propagate.
//
// Complexity: Time O(n!) (24 2×2 bases for n = 4), Space O(n²) per level.
func laplace(a []float64, n int) float64 {
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	}

	sum := ZeroSum
	sign := 1.0
	for j := 0; j < n; j++ {
		sum += sign * a[j] * laplace(minor(a, n, 0, j), n-1)
		sign = -sign
	}

	return sum
}

// minor returns the (n−1)×(n−1) block of a with row r and column c removed.
func minor(a []float64, n, r, c int) []float64 {
	out := make([]float64, 0, (n-1)*(n-1))
	for i := 0; i < n; i++ {
		if i == r {
			continue
		}
		for j := 0; j < n; j++ {
			if j == c {
				continue
			}
			out = append(out, a[i*n+j])
		}
	}

	return out
}

// inverse computes A⁻¹ = adj(A) / det(A) (classical adjugate method).
// Implementation:
//   - Stage 1: ValidateSquare; det via laplace; det == 0 → ErrSingular.
//   - Stage 2: cofactor C[i][j] = (−1)^(i+j) · det(minor(i, j)) using the
//     same laplace routine, written transposed: inv[j][i] = C[i][j] / det.
//
// Errors: ErrNilMatrix, ErrNotSquare, ErrSingular (tagged opInverse).
// Complexity: Time O(n² · n!) for n ≤ 4, Space O(n²).
//
// Notes:
//   - No pivoting or conditioning: nearly singular inputs return large
//     values instead of an error.
func inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()
	a := m.flat()
	d := laplace(a, n)
	if d == ZeroDet {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c := laplace(minor(a, n, i, j), n-1)
			if (i+j)%2 == 1 {
				c = -c
			}
			out[j*n+i] = c / d
		}
	}

	return mustBuild(m.Shape(), out), nil
}

// equal reports identical shape and exactly equal elements.
// A nil b is never equal.
func equal(a, b Matrix) bool {
	if isNil(b) || a.Shape() != b.Shape() {
		return false
	}
	x, y := a.flat(), b.flat()
	for idx := range x {
		if x[idx] != y[idx] {
			return false
		}
	}

	return true
}

// format renders m as its variant name followed by one "[a, b, ...]" line
// per row, using the shortest %g representation of each element.
func format(m Matrix) string {
	rows, cols := m.Rows(), m.Cols()
	x := m.flat()

	var sb strings.Builder
	sb.WriteString(variantName(m.Shape()))
	for i := 0; i < rows; i++ {
		sb.WriteString(_fmtNewline)
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(x[i*cols+j], 'g', -1, 64))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
