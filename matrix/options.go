// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public constructors consume ...Option.

package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by AllCloseDefault.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation in Set/Apply.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether the resolved policy rejects non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon sets the tolerance used by tolerance-driven helpers.
// Panics when eps is NaN, ±Inf or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables rejection of NaN/±Inf in Set and Apply.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-value guard. Use only in controlled
// pipelines where non-finite values are meaningful.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins. Complexity: O(k) for k options.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
