// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling, outer products and element-wise maps. All
// functions perform strict fail-fast validation and return wrapped sentinels
// on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh *Dense result; operands are never mutated.
//   - *Dense operands unlock flat-slice fast paths; any other Matrix goes
//     through the At/Set fallback with the same loop order.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial value of every dot-product accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opOuter     = "Outer"
	opMap       = "Map"
	opValues    = "VectorValues"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDenseZeroOK(rows, cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch in either dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch in either dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c). n == 0 yields the r×c zero matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDenseZeroOK(aRows, bCols)
	var (
		i, j, k         int
		av, bv, current float64
		err             error
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ),
// result[j][i] = m[i][j]. The input is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDenseZeroOK(cols, rows) // dims flipped

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDenseZeroOK(rows, cols)

	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Hadamard ≠ matrix multiplication; use Mul for A×B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDenseZeroOK(rows, cols)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ {
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av * bv
		}
	}

	return res, nil
}

// Outer computes the outer product result[i][j] = u[i] * v[j] of two vectors.
// Each operand may be a row or a column vector; only its length matters.
// The result has shape len(u) × len(v).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (operand is not a vector).
//
// Complexity:
//   - Time O(n*m), Space O(n*m).
func Outer(u, v Matrix) (Matrix, error) {
	uv, err := VectorValues(u)
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	vv, err := VectorValues(v)
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}

	n, m := len(uv), len(vv)
	res := newDenseZeroOK(n, m)
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * m
		for j = 0; j < m; j++ {
			res.data[base+j] = uv[i] * vv[j]
		}
	}

	return res, nil
}

// Map returns a fresh matrix with f applied to every element of m.
// The input is never mutated.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when f produces a non-finite value.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Map(m Matrix, f func(v float64) float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res := newDenseZeroOK(rows, cols)

	var i, j int
	var v float64
	var err error
	dm, dense := m.(*Dense)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if dense {
				v = dm.data[i*cols+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMap, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			v = f(v)
			if !isFinite(v) {
				return nil, matrixErrorf(opMap, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// VectorValues returns the elements of a row or column vector as a fresh slice.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m is not 1×N or N×1).
//
// Complexity:
//   - Time O(n), Space O(n).
func VectorValues(m Matrix) ([]float64, error) {
	if err := ValidateVector(m); err != nil {
		return nil, matrixErrorf(opValues, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Values(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, 0, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opValues, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out = append(out, v)
		}
	}

	return out, nil
}
