// SPDX-License-Identifier: MIT

package network

import "github.com/katalvlaran/nnet/matrix"

// WeightDelta_TestOnly runs the private weightDelta kernel on plain slices.
func WeightDelta_TestOnly(n *Network, errs, out, prev []float64) (matrix.Matrix, error) {
	e, err := matrix.NewVector(errs, matrix.ColumnVector)
	if err != nil {
		return nil, err
	}
	o, err := matrix.NewVector(out, matrix.ColumnVector)
	if err != nil {
		return nil, err
	}
	p, err := matrix.NewVector(prev, matrix.ColumnVector)
	if err != nil {
		return nil, err
	}
	update, _, err := n.weightDelta(e, o, p)

	return update, err
}

// SourceFromSeed_TestOnly exposes the seeded PCG factory.
var SourceFromSeed_TestOnly = sourceFromSeed

// Panic message exports to avoid magic strings in tests.
const (
	PanicNilSource_TestOnly     = panicNilSource
	PanicNilDerivative_TestOnly = panicNilDerivative
	PanicNilWeights_TestOnly    = panicNilWeights
)
