// SPDX-License-Identifier: MIT

// Package vector: functional configuration for tolerance comparisons.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package vector

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAbsTol is the absolute tolerance used by AllClose.
	DefaultAbsTol = 1e-9

	// DefaultRelTol is the relative tolerance (scaled by |want|) used by AllClose.
	DefaultRelTol = 1e-9

	// DefaultNaNEqual controls whether two NaN components compare equal.
	DefaultNaNEqual = false
)

const (
	panicAbsTolInvalid = "vector: WithAbsTol: tol must be finite, non-negative"
	panicRelTolInvalid = "vector: WithRelTol: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	absTol   float64 // >= 0; DefaultAbsTol
	relTol   float64 // >= 0; DefaultRelTol
	nanEqual bool    // DefaultNaNEqual
}

// WithAbsTol sets the absolute tolerance atol in |got-want| ≤ atol + rtol*|want|.
//
// Panics with a stable message when tol is NaN, ±Inf or negative.
//
// AI-Hints:
//   - Use WithAbsTol(0) together with WithRelTol(0) for exact comparison.
func WithAbsTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.absTol = tol }
}

// WithRelTol sets the relative tolerance rtol in |got-want| ≤ atol + rtol*|want|.
//
// Panics with a stable message when tol is NaN, ±Inf or negative.
func WithRelTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.relTol = tol }
}

// WithNaNEqual makes a NaN component match a NaN component at the same index.
// Useful when comparing results of degenerate inputs (e.g., Unit of a zero vector).
func WithNaNEqual() Option {
	return func(o *Options) { o.nanEqual = true }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		absTol:   DefaultAbsTol,
		relTol:   DefaultRelTol,
		nanEqual: DefaultNaNEqual,
	}
}

// gatherOptions applies opts in order over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
