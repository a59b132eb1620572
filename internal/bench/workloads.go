// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/vec"
)

// sinks keep the compiler from eliding workload bodies.
var (
	sinkI int
	sinkF float64
	sinkM matrix.Matrix
	sinkV vec.Vector
)

// LoopWorkloads compares an inner counted loop of length size with four
// unrolled statements, per outer iteration.
func LoopWorkloads(size int) []Workload {
	return []Workload{
		{
			Name: fmt.Sprintf("loop/size=%d", size),
			Run: func(n int) error {
				acc := 0
				for it := 0; it < n; it++ {
					for i := 0; i < size; i++ {
						acc += i
					}
				}
				sinkI = acc
				return nil
			},
		},
		{
			Name: "hardcode/4",
			Run: func(n int) error {
				acc := 0
				for it := 0; it < n; it++ {
					acc += 1
					acc += 2
					acc += 3
					acc += 4
				}
				sinkI = acc
				return nil
			},
		},
	}
}

// fixture returns a deterministic, diagonally dominant matrix of shape s,
// so square fixtures are invertible.
func fixture(s matrix.Shape) (matrix.Matrix, error) {
	g := make([][]float64, s.Rows)
	for i := range g {
		g[i] = make([]float64, s.Cols)
		for j := range g[i] {
			g[i][j] = 1 / float64(1+i+j)
			if i == j {
				g[i][j] += float64(s.Cols)
			}
		}
	}

	return matrix.New(g)
}

// MatrixWorkloads returns per-shape workloads: Mul (M·Mᵀ) and Transpose for
// every shape, Det and Inverse for square shapes, MulVec where the result
// fits a vector type.
func MatrixWorkloads() ([]Workload, error) {
	var out []Workload
	for _, s := range matrix.Shapes() {
		m, err := fixture(s)
		if err != nil {
			return nil, fmt.Errorf("fixture %s: %w", s, err)
		}
		mt := m.Transpose()

		out = append(out,
			Workload{Name: "mul/" + s.String(), Run: func(n int) error {
				for i := 0; i < n; i++ {
					p, err := m.Mul(mt)
					if err != nil {
						return err
					}
					sinkM = p
				}
				return nil
			}},
			Workload{Name: "transpose/" + s.String(), Run: func(n int) error {
				for i := 0; i < n; i++ {
					sinkM = m.Transpose()
				}
				return nil
			}},
		)

		if s.Square() {
			out = append(out,
				Workload{Name: "det/" + s.String(), Run: func(n int) error {
					for i := 0; i < n; i++ {
						d, err := m.Det()
						if err != nil {
							return err
						}
						sinkF = d
					}
					return nil
				}},
				Workload{Name: "inverse/" + s.String(), Run: func(n int) error {
					for i := 0; i < n; i++ {
						inv, err := m.Inverse()
						if err != nil {
							return err
						}
						sinkM = inv
					}
					return nil
				}},
			)
		}

		if v, ok := probe(s); ok {
			out = append(out, Workload{Name: "mulvec/" + s.String(), Run: func(n int) error {
				for i := 0; i < n; i++ {
					r, err := m.MulVec(v)
					if err != nil {
						return err
					}
					sinkV = r
				}
				return nil
			}})
		}
	}

	return out, nil
}

// probe returns a vector operand for shape s when m·v is defined.
func probe(s matrix.Shape) (vec.Vector, bool) {
	if s.Rows > 3 {
		return nil, false
	}
	switch s.Cols {
	case 2:
		return vec.Vec2{1, 2}, true
	case 3:
		return vec.Vec3{1, 2, 3}, true
	}

	return nil, false
}
