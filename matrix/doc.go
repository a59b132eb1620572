// SPDX-License-Identifier: MIT

// Package matrix implements small fixed-shape matrices for 2D/3D transforms.
//
// 🚀 What is lvmat/matrix?
//
//	Nine concrete value types, one per supported shape:
//
//		Mat2x2  Mat2x3  Mat2x4
//		Mat3x2  Mat3x3  Mat3x4
//		Mat4x2  Mat4x3  Mat4x4
//
//	all behind the sealed Matrix interface. New inspects a rectangular grid,
//	validates it and returns the variant for its (rows, cols) shape; every
//	operation afterwards returns a fresh value of the correct result shape.
//
// ✨ Operations (identical contract on every shape):
//   - Add / Sub                  same shape only (ErrShapeMismatch)
//   - Scale / Div                scalar product and quotient (ErrDivisionByZero)
//   - Mul                        any (r×c)·(c×k) pair, result r×k
//   - MulVec                     against vec.Vec2 / vec.Vec3, rows ∈ {2,3}
//   - Multiply                   dispatching form over scalar | Matrix | vec.Vector
//   - Transpose                  always succeeds (the shape set is closed under it)
//   - Det / Inverse              square shapes; Laplace expansion and adjugate
//   - Equal / String             exact comparison and a stable rendering
//
// ⚙️ Usage:
//
//	m, err := matrix.New([][]float64{{1, 2}, {3, 4}})
//	if err != nil {
//		return err
//	}
//	d, _ := m.Det()                 // -2
//	p, _ := m.MulVec(vec.Vec2{1, 1}) // (3, 7)
//
// Errors are package sentinels (errors.go) wrapped with an operation tag;
// match them with errors.Is. Nothing in this package panics on user input
// except MustNew.
//
// Values are arrays copied on assignment, so a Matrix can be shared freely
// between goroutines.
package matrix
