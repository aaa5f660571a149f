// SPDX-License-Identifier: MIT

package matrix

// Test bridge for unexported kernels. Compiled only with the package tests.

// EwAllClose_TestOnly forwards to the private ewAllClose kernel.
func EwAllClose_TestOnly(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// PanicEpsilonInvalid_TestOnly exposes the WithEpsilon panic message.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
