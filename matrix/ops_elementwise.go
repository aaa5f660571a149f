// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Private element-wise comparison kernels (ew*) shared by the public
//     AllClose facades.
//   - Loops are deterministic (flat 0..n-1 on the Dense fast path, i→j otherwise).

package matrix

import (
	"fmt"
	"math"
)

const opAllClose = "AllClose"

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN or ±Inf tolerances fail with ErrNaNInf.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if !isFinite(rtol) || !isFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := r * c
			for idx := 0; idx < n; idx++ {
				if !withinTol(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if !withinTol(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// withinTol reports |a-b| ≤ atol + rtol*|b|. NaN never compares close.
func withinTol(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
