// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose unexported helpers to matrix_test only; the file compiles only
//     under `go test`, so the production API does not widen.

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

var (
	// ExportedLaplace exposes the cofactor-expansion determinant on flat data.
	ExportedLaplace = laplace
	// ExportedMinor exposes minor extraction.
	ExportedMinor = minor
	// ExportedValidateTol exposes tolerance normalization.
	ExportedValidateTol = validateTol
	// ExportedToFloat exposes numeric-kind widening.
	ExportedToFloat = toFloat
)

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// Flat_TestOnly returns the row-major copy of m.
func Flat_TestOnly(m Matrix) []float64 { return m.flat() }
