// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points named after the algebraic operation they perform.
//   - Each facade delegates to the canonical kernel; no logic is duplicated here.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Algebra aliases ----------

// Sum is an alias of Add.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias of Sub.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias of Mul (C = A × B).
// Prefer *Dense inputs to hit the flat fast path.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T returns the transpose of m.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ---------- Numeric compare ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN is never close to anything. Deterministic.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// AllCloseDefault is AllClose with rtol = 0 and atol taken from the resolved
// options (DefaultEpsilon unless WithEpsilon is passed).
func AllCloseDefault(a, b Matrix, opts ...Option) (bool, error) {
	return ewAllClose(a, b, 0, NewMatrixOptions(opts...).Epsilon())
}
