// SPDX-License-Identifier: MIT
// Package matrix: statically shaped transform helpers.
//
// The Matrix interface returns (vec.Vector, error) because the operand shape
// is only known at run time. Inside a render loop the shapes are fixed, so
// the variants whose rows and cols are both 2 or 3 also expose Transform,
// which cannot fail.

package matrix

import (
	"math"

	"github.com/katalvlaran/lvmat/vec"
)

// Transform returns m·v.
func (m Mat2x2) Transform(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}

// Transform returns m·v, projecting a 3-component v to 2 components.
func (m Mat2x3) Transform(v vec.Vec3) vec.Vec2 {
	return vec.Vec2{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
	}
}

// Transform returns m·v, lifting a 2-component v to 3 components.
func (m Mat3x2) Transform(v vec.Vec2) vec.Vec3 {
	return vec.Vec3{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
		m[2][0]*v[0] + m[2][1]*v[1],
	}
}

// Transform returns m·v.
func (m Mat3x3) Transform(v vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Rotation2 returns the counter-clockwise rotation by theta radians.
func Rotation2(theta float64) Mat2x2 {
	sin, cos := math.Sincos(theta)

	return Mat2x2{
		{cos, -sin},
		{sin, cos},
	}
}

// Scaling2 returns diag(sx, sy).
func Scaling2(sx, sy float64) Mat2x2 {
	return Mat2x2{
		{sx, 0},
		{0, sy},
	}
}

// RotationX returns the right-handed rotation by theta radians about the x axis.
func RotationX(theta float64) Mat3x3 {
	sin, cos := math.Sincos(theta)

	return Mat3x3{
		{1, 0, 0},
		{0, cos, -sin},
		{0, sin, cos},
	}
}

// RotationY returns the right-handed rotation by theta radians about the y axis.
func RotationY(theta float64) Mat3x3 {
	sin, cos := math.Sincos(theta)

	return Mat3x3{
		{cos, 0, sin},
		{0, 1, 0},
		{-sin, 0, cos},
	}
}

// RotationZ returns the right-handed rotation by theta radians about the z axis.
func RotationZ(theta float64) Mat3x3 {
	sin, cos := math.Sincos(theta)

	return Mat3x3{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}

// Scaling3 returns diag(sx, sy, sz).
func Scaling3(sx, sy, sz float64) Mat3x3 {
	return Mat3x3{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, sz},
	}
}

// Translation2 returns the homogeneous 3×3 transform that moves 2D points
// (x, y, 1) by (tx, ty).
func Translation2(tx, ty float64) Mat3x3 {
	return Mat3x3{
		{1, 0, tx},
		{0, 1, ty},
		{0, 0, 1},
	}
}
