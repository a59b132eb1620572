// Package lvmat is a small, value-typed linear algebra kit for 2D/3D
// transforms: the matrices a renderer multiplies every frame, and nothing
// bigger.
//
// 🚀 What is lvmat?
//
//	A library of nine fixed-shape matrices (rows and cols in 2..4) with
//	one shared contract:
//		• Construction: validate a rectangular grid and pick the variant
//		• Arithmetic: add, subtract, scale, divide, multiply
//		• Structure: transpose, determinant, inverse
//		• Interop: vec.Vec2 / vec.Vec3 operands, gonum mat.Dense copies
//
// ✨ Why choose lvmat?
//
//   - Values, not pointers – arrays copied on use, safe to share
//   - Static shapes – result variants follow from operand shapes
//   - Sentinel errors – every failure matches with errors.Is
//
// Everything is organized under these packages:
//
//	matrix/          Matrix interface, the nine variants, facades, gonum interop
//	vec/             Vec2, Vec3 and the Vector read contract
//	cmd/matbench/    timing harness (loop vs. unrolled, per-shape operations)
//	examples/        a sprite placed by a composed model transform
//
// Quick example:
//
//	r := matrix.Rotation2(math.Pi / 2)
//	p := r.Transform(vec.Vec2{1, 0}) // (0, 1)
//
// Anything heavier (decompositions, larger systems) belongs to gonum;
// see matrix.ToGonum.
//
//	go get github.com/katalvlaran/lvmat
package lvmat
