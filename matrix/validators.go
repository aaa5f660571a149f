// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing beyond the error value.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil pointer stored in the interface (e.g. (*Dense)(nil)).
//
// Returns ErrNilMatrix on violation.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Ptr && v.IsNil() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: Rows %d vs %d", a.Rows(), b.Rows()), ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: Columns %d vs %d", a.Cols(), b.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: inner %d vs %d", a.Cols(), b.Rows()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector has exactly n elements. A nil slice has
// length 0.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: got %d, want %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVector ensures m is non-nil and is a row or column vector
// (Rows()==1 or Cols()==1).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVector(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateVector", err)
	}
	if m.Rows() != 1 && m.Cols() != 1 {
		return validatorErrorf(
			fmt.Sprintf("ValidateVector: shape %dx%d", m.Rows(), m.Cols()), ErrDimensionMismatch)
	}

	return nil
}
