// SPDX-License-Identifier: MIT

// Functional configuration for New.
//
// Design goals:
//   - Deterministic on request: WithSeed/WithRand pin the initial weights,
//     WithWeights bypasses random initialization entirely.
//   - Safe by construction: option constructors panic only on nil arguments
//     (programmer error); shape problems surface as errors from New.

package network

import (
	"math/rand/v2"

	"github.com/katalvlaran/nnet/matrix"
)

const (
	panicNilSource     = "network: WithRand: nil source"
	panicNilDerivative = "network: WithDerivative: nil derivative"
	panicNilWeights    = "network: WithWeights: nil weight matrix"
)

// Option mutates the construction config. Last writer wins.
type Option func(*config)

// config is the resolved construction state.
type config struct {
	src        rand.Source    // nil ⇒ global generator
	wih, who   matrix.Matrix  // nil ⇒ draw with InitWeights
	derivative DerivativeFunc // SigmoidDerivative by default
}

// WithSeed draws the initial weights from a deterministic PCG stream.
// seed==0 maps to a fixed default seed.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.src = sourceFromSeed(seed) }
}

// WithRand draws the initial weights from src. Panics when src is nil.
func WithRand(src rand.Source) Option {
	if src == nil {
		panic(panicNilSource)
	}

	return func(c *config) { c.src = src }
}

// WithWeights injects the initial weight matrices instead of drawing them.
// wih must be hidden×inputs and who outputs×hidden; New copies both and reports
// matrix.ErrDimensionMismatch otherwise. Panics when either matrix is nil.
func WithWeights(wih, who matrix.Matrix) Option {
	if matrix.ValidateNotNil(wih) != nil || matrix.ValidateNotNil(who) != nil {
		panic(panicNilWeights)
	}

	return func(c *config) { c.wih, c.who = wih, who }
}

// WithDerivative sets the activation derivative used by Train, expressed in
// terms of the forward output (see DerivativeFunc). Required for any
// activation other than Sigmoid. Panics when d is nil.
func WithDerivative(d DerivativeFunc) Option {
	if d == nil {
		panic(panicNilDerivative)
	}

	return func(c *config) { c.derivative = d }
}

// gatherOptions applies user-provided setters on top of defaults.
func gatherOptions(user ...Option) config {
	c := config{derivative: SigmoidDerivative}
	for _, set := range user {
		if set != nil {
			set(&c)
		}
	}

	return c
}
