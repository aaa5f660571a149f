// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/nnet/matrix"
)

// Train performs one online backpropagation step on a single example.
//
// Steps:
//  1. Forward pass keeping hidden activations h and outputs o.
//  2. eo = target − o; δo = eo ⊙ f'(o); Δwho = lr·(δo ⊗ h).
//  3. eh = whoᵀ·δo using who as it stood before this call.
//  4. δh = eh ⊙ f'(h); Δwih = lr·(δh ⊗ x).
//  5. who += Δwho, wih += Δwih.
//
// Both updated matrices are computed before either is stored, so a failing
// call leaves the network unchanged.
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(input) != Inputs() or len(target) != Outputs().
//   - matrix.ErrNaNInf for non-finite values.
//
// Complexity: O(inputs*hidden + hidden*outputs).
func (n *Network) Train(input, target []float64) error {
	_, err := n.train(input, target)

	return err
}

// TrainError is Train that also returns the squared error ½Σ(target−o)² of
// the forward pass before the update.
func (n *Network) TrainError(input, target []float64) (float64, error) {
	return n.train(input, target)
}

func (n *Network) train(input, target []float64) (float64, error) {
	if err := matrix.ValidateVecLen(target, n.outputs); err != nil {
		return 0, networkErrorf(opTrain, fmt.Errorf("target: %w", err))
	}
	x, h, o, err := n.forward(input)
	if err != nil {
		return 0, networkErrorf(opTrain, err)
	}
	t, err := matrix.NewVector(target, matrix.ColumnVector)
	if err != nil {
		return 0, networkErrorf(opTrain, fmt.Errorf("target: %w", err))
	}

	outErr, err := matrix.Sub(t, o)
	if err != nil {
		return 0, networkErrorf(opTrain, err)
	}
	ev, err := matrix.VectorValues(outErr)
	if err != nil {
		return 0, networkErrorf(opTrain, err)
	}
	loss := 0.5 * floats.Dot(ev, ev)

	dWho, outDelta, err := n.weightDelta(outErr, o, h)
	if err != nil {
		return 0, networkErrorf(opTrain, fmt.Errorf("output layer: %w", err))
	}

	// hidden error from the pre-update who
	whoT, err := matrix.Transpose(n.who)
	if err != nil {
		return 0, networkErrorf(opTrain, err)
	}
	hiddenErr, err := matrix.Mul(whoT, outDelta)
	if err != nil {
		return 0, networkErrorf(opTrain, err)
	}
	dWih, _, err := n.weightDelta(hiddenErr, h, x)
	if err != nil {
		return 0, networkErrorf(opTrain, fmt.Errorf("hidden layer: %w", err))
	}

	whoNext, err := matrix.Add(n.who, dWho)
	if err != nil {
		return 0, networkErrorf(opTrain, err)
	}
	wihNext, err := matrix.Add(n.wih, dWih)
	if err != nil {
		return 0, networkErrorf(opTrain, err)
	}
	n.who, n.wih = whoNext, wihNext

	return loss, nil
}

// weightDelta turns a layer's error column into its weight update.
// delta = errs ⊙ f'(out) and the update is lr·(delta ⊗ prev), where prev is
// the layer's input column. Returns the update and delta.
func (n *Network) weightDelta(errs, out, prev matrix.Matrix) (update, delta matrix.Matrix, err error) {
	grad, err := matrix.Map(out, n.derivative)
	if err != nil {
		return nil, nil, err
	}
	if delta, err = matrix.Hadamard(errs, grad); err != nil {
		return nil, nil, err
	}
	outer, err := matrix.Outer(delta, prev)
	if err != nil {
		return nil, nil, err
	}
	if update, err = matrix.Scale(outer, n.learningRate); err != nil {
		return nil, nil, err
	}

	return update, delta, nil
}
