// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison kernels behind AllClose/ApproxEqual.

package matrix

import "math"

const opAllClose = "AllClose"

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN is never close to anything; +Inf is close to +Inf only.
//
// Implementation:
//   - Stage 1: normalize tolerances (validateTol) and check shapes.
//   - Stage 2: single flat pass with early exit on the first violation.
//
// Complexity: Time O(r*c), Space O(r*c).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	var err error
	if rtol, err = validateTol(rtol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if atol, err = validateTol(atol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	x, y := a.flat(), b.flat()
	var xv, yv float64
	for idx := range x {
		xv, yv = x[idx], y[idx]
		if xv == yv {
			continue // covers equal infinities
		}
		if isNonFinite(xv) || isNonFinite(yv) {
			return false, nil
		}
		if math.Abs(xv-yv) > atol+rtol*math.Abs(yv) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
