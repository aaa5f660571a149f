// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (wrapped with an operation tag)
// and tests check them via errors.Is. No kernel panics on a predictable shape
// or index violation.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." so log lines stay greppable.
// Kernels wrap with fmt.Errorf("<Op>: %w", ErrX); callers match with errors.Is.
//
// Shape family (recoverable, surfaced to the immediate caller):
//   - ErrDimensionMismatch: operands disagree (Mul inner dims, Add/Sub shapes,
//     ragged rows, vector length).
//   - ErrBadShape: a shape request that cannot describe a matrix at all
//     (empty row set). It wraps ErrDimensionMismatch, so one errors.Is check
//     against ErrDimensionMismatch catches every shape failure.
//
// Index family (programming-contract violation):
//   - ErrOutOfRange: At/Set outside bounds.

var (
	// ErrBadShape is returned when the requested shape cannot be built,
	// e.g. NewFromRows with no rows or with zero-length rows.
	ErrBadShape = fmt.Errorf("matrix: invalid shape: %w", ErrDimensionMismatch)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, Apply, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver, argument or vector) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested matrix dimensions are out of range
	// (negative for NewZeros, non-positive for NewDense).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrUnknownOrientation is returned by NewVector for an Orientation other
	// than RowVector or ColumnVector.
	ErrUnknownOrientation = errors.New("matrix: unknown vector orientation")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
// Kept as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange
