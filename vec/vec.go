// SPDX-License-Identifier: MIT

package vec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrDimension is returned when a vector is requested with a component
// count other than 2 or 3.
var ErrDimension = errors.New("vec: unsupported dimension")

// Vector is the read-only view shared by Vec2 and Vec3.
// At panics on an index outside [0, Len()), like an array index.
type Vector interface {
	Len() int
	At(i int) float64
}

// Vec2 is a 2-component vector (x, y).
type Vec2 [2]float64

// Vec3 is a 3-component vector (x, y, z).
type Vec3 [3]float64

var (
	_ Vector       = Vec2{}
	_ Vector       = Vec3{}
	_ fmt.Stringer = Vec2{}
	_ fmt.Stringer = Vec3{}
)

// New returns a Vec2 or Vec3 holding components, or ErrDimension.
func New(components ...float64) (Vector, error) {
	switch len(components) {
	case 2:
		return Vec2{components[0], components[1]}, nil
	case 3:
		return Vec3{components[0], components[1], components[2]}, nil
	default:
		return nil, fmt.Errorf("New(%d components): %w", len(components), ErrDimension)
	}
}

// Len returns 2.
func (v Vec2) Len() int { return len(v) }

// At returns the i-th component.
func (v Vec2) At(i int) float64 { return v[i] }

// X returns the first component.
func (v Vec2) X() float64 { return v[0] }

// Y returns the second component.
func (v Vec2) Y() float64 { return v[1] }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v[0] + o[0], v[1] + o[1]} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v[0] - o[0], v[1] - o[1]} }

// Scale returns k*v.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{k * v[0], k * v[1]} }

// Dot returns the scalar product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v[0]*o[0] + v[1]*o[1] }

// Equal reports exact componentwise equality.
func (v Vec2) Equal(o Vec2) bool { return v == o }

// String renders v as "(x, y)".
func (v Vec2) String() string { return format(v[:]) }

// Len returns 3.
func (v Vec3) Len() int { return len(v) }

// At returns the i-th component.
func (v Vec3) At(i int) float64 { return v[i] }

// X returns the first component.
func (v Vec3) X() float64 { return v[0] }

// Y returns the second component.
func (v Vec3) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vec3) Z() float64 { return v[2] }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }

// Scale returns k*v.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{k * v[0], k * v[1], k * v[2]} }

// Dot returns the scalar product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }

// Cross returns the right-handed cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Equal reports exact componentwise equality.
func (v Vec3) Equal(o Vec3) bool { return v == o }

// String renders v as "(x, y, z)".
func (v Vec3) String() string { return format(v[:]) }

// format prints components with %g semantics, comma separated, in parentheses.
func format(c []float64) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteByte(')')

	return b.String()
}
