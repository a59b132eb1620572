// SPDX-License-Identifier: MIT

// Package vec provides the 2- and 3-component vectors that fixed-shape
// matrices multiply against.
//
// Vec2 and Vec3 are plain arrays, so they are comparable with == and are
// copied on assignment. The package keeps to what a render or physics loop
// needs per frame: component access, Add/Sub, Scale and Dot.
//
// The Vector interface is the read contract the matrix package consumes:
//
//	type Vector interface {
//		Len() int
//		At(i int) float64
//	}
//
// Usage:
//
//	p := vec.Vec2{3, 4}
//	q := p.Scale(2).Add(vec.Vec2{1, 1}) // (7, 9)
package vec
