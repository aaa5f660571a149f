// SPDX-License-Identifier: MIT

package network

import "math"

// ActivationFunc is a scalar function applied element-wise after each layer's
// linear map.
type ActivationFunc func(x float64) float64

// DerivativeFunc expresses an activation's derivative in terms of the
// activation's own forward output y = f(x), not of x.
type DerivativeFunc func(y float64) float64

// Sigmoid is the logistic function 1/(1+e^-x). Range (0,1), Sigmoid(0) = 0.5.
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// SigmoidDerivative returns f'(x) for the logistic function given y = f(x).
func SigmoidDerivative(y float64) float64 {
	return y * (1 - y)
}
