// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
)

// Shape and index failures come from the matrix package (matrix.ErrDimensionMismatch,
// matrix.ErrInvalidDimensions); the sentinels below cover construction arguments
// the matrix layer knows nothing about.
var (
	// ErrInvalidLearningRate is returned by New when the learning rate is not a
	// finite, strictly positive number.
	ErrInvalidLearningRate = errors.New("network: learning rate must be finite and > 0")

	// ErrNilActivation is returned by New when no activation function is supplied.
	ErrNilActivation = errors.New("network: nil activation function")
)

// Operation tags for error wrapping.
const (
	opNew        = "New"
	opQuery      = "Query"
	opTrain      = "Train"
	opPredict    = "Predict"
	opInit       = "InitWeights"
	opWithWeight = "WithWeights"
)

// networkErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func networkErrorf(tag string, err error) error {
	return fmt.Errorf("network.%s: %w", tag, err)
}
