// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/vec"
)

// ExampleNew builds a 2x3 matrix and prints it.
func ExampleNew() {
	m, err := matrix.New([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%T %s\n", m, m.Shape())
	fmt.Println(m)
	// Output:
	// matrix.Mat2x3 2x3
	// Mat2x3
	// [1, 2, 3]
	// [4, 5, 6]
}

// ExampleNew_unsupported shows the error for a shape outside 2..4.
func ExampleNew_unsupported() {
	_, err := matrix.New([][]float64{{1, 2, 3, 4, 5}})
	fmt.Println(errors.Is(err, matrix.ErrUnsupportedDimensions))
	// Output:
	// true
}

// ExampleMat2x3_Mul multiplies a 2x3 by a 3x2 into a 2x2.
func ExampleMat2x3_Mul() {
	a := matrix.Mat2x3{{1, 2, 3}, {4, 5, 6}}
	b := matrix.Mat3x2{{1, 2}, {3, 4}, {5, 6}}
	p, _ := a.Mul(b)
	fmt.Println(p)
	// Output:
	// Mat2x2
	// [22, 28]
	// [49, 64]
}

// ExampleMat2x2_Det computes a determinant and an inverse.
func ExampleMat2x2_Det() {
	m := matrix.Mat2x2{{1, 2}, {3, 4}}
	d, _ := m.Det()
	inv, _ := m.Inverse()
	fmt.Println(d)
	fmt.Println(inv)
	// Output:
	// -2
	// Mat2x2
	// [-2, 1]
	// [1.5, -0.5]
}

// ExampleMultiply shows the single operator routing on its operand.
func ExampleMultiply() {
	m := matrix.Mat2x2{{1, 2}, {3, 4}}
	for _, x := range []any{2, vec.Vec2{1, 1}, "x"} {
		out, err := matrix.Multiply(m, x)
		if err != nil {
			fmt.Println(errors.Is(err, matrix.ErrUnsupportedOperand))
			continue
		}
		fmt.Printf("%v\n", out)
	}
	// Output:
	// Mat2x2
	// [2, 4]
	// [6, 8]
	// (3, 7)
	// true
}

// ExampleRotation2 rotates a point a quarter turn.
func ExampleRotation2() {
	p := matrix.Rotation2(math.Pi / 2).Transform(vec.Vec2{2, 0})
	fmt.Printf("(%.3f, %.3f)\n", p.X(), p.Y())
	// Output:
	// (0.000, 2.000)
}
