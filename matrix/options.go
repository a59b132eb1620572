// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and comparison.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options affect the call they are passed to (New, From, FromValues,
//     FromGonum, ApproxEqual). Matrices are plain arrays and carry no policy.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf rejects NaN/±Inf elements at construction.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the absolute tolerance used by ApproxEqual.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// AI-Hints:
//   - 1e-9 suits products of well-scaled transforms; loosen to ~1e-6 after
//     long chains of Mul/Inverse.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables rejection of NaN/±Inf elements (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN/±Inf elements through construction.
// Arithmetic then follows IEEE-754; Equal reports false for any NaN element.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
// Complexity: O(k) for k = len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
