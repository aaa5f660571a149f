// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/nnet/matrix"
)

// Network is a fully connected input→hidden→output network trained online
// with backpropagation.
//
// Invariants (established by New, preserved by Train):
//   - wih is hidden×inputs, who is outputs×hidden.
//
// A Network is not safe for concurrent use; Train mutates the weights.
type Network struct {
	inputs, hidden, outputs int
	learningRate            float64

	activation ActivationFunc
	derivative DerivativeFunc

	wih matrix.Matrix // input → hidden
	who matrix.Matrix // hidden → output
}

// New builds a network with the given node counts, learning rate and
// activation. Both weight matrices are drawn with InitWeights unless
// WithWeights supplies them.
//
// Train assumes the derivative of activation is SigmoidDerivative. Pass
// WithDerivative when activation is anything other than Sigmoid, otherwise
// the gradients are wrong.
//
// Errors:
//   - matrix.ErrInvalidDimensions when any node count is ≤ 0.
//   - ErrInvalidLearningRate, ErrNilActivation.
//   - matrix.ErrDimensionMismatch when injected weights disagree with the node counts.
func New(inputs, hidden, outputs int, learningRate float64, activation ActivationFunc, opts ...Option) (*Network, error) {
	if inputs <= 0 || hidden <= 0 || outputs <= 0 {
		return nil, networkErrorf(opNew, fmt.Errorf("nodes %d/%d/%d: %w",
			inputs, hidden, outputs, matrix.ErrInvalidDimensions))
	}
	if math.IsNaN(learningRate) || math.IsInf(learningRate, 0) || learningRate <= 0 {
		return nil, networkErrorf(opNew, fmt.Errorf("%g: %w", learningRate, ErrInvalidLearningRate))
	}
	if activation == nil {
		return nil, networkErrorf(opNew, ErrNilActivation)
	}

	cfg := gatherOptions(opts...)
	n := &Network{
		inputs:       inputs,
		hidden:       hidden,
		outputs:      outputs,
		learningRate: learningRate,
		activation:   activation,
		derivative:   cfg.derivative,
	}

	if cfg.wih != nil {
		if err := checkShape("wih", cfg.wih, hidden, inputs); err != nil {
			return nil, networkErrorf(opNew, err)
		}
		if err := checkShape("who", cfg.who, outputs, hidden); err != nil {
			return nil, networkErrorf(opNew, err)
		}
		n.wih, n.who = cfg.wih.Clone(), cfg.who.Clone()

		return n, nil
	}

	wih, err := InitWeights(inputs, hidden, cfg.src)
	if err != nil {
		return nil, networkErrorf(opNew, err)
	}
	who, err := InitWeights(hidden, outputs, cfg.src)
	if err != nil {
		return nil, networkErrorf(opNew, err)
	}
	n.wih, n.who = wih, who

	return n, nil
}

// checkShape reports matrix.ErrDimensionMismatch unless m is rows×cols.
func checkShape(name string, m matrix.Matrix, rows, cols int) error {
	if m.Rows() != rows || m.Cols() != cols {
		return fmt.Errorf("%s: %s is %dx%d, want %dx%d: %w",
			opWithWeight, name, m.Rows(), m.Cols(), rows, cols, matrix.ErrDimensionMismatch)
	}

	return nil
}

// Inputs returns the input node count.
func (n *Network) Inputs() int { return n.inputs }

// Hidden returns the hidden node count.
func (n *Network) Hidden() int { return n.hidden }

// Outputs returns the output node count.
func (n *Network) Outputs() int { return n.outputs }

// LearningRate returns the step size used by Train.
func (n *Network) LearningRate() float64 { return n.learningRate }

// Weights returns deep copies of the input→hidden and hidden→output matrices.
func (n *Network) Weights() (wih, who matrix.Matrix) {
	return n.wih.Clone(), n.who.Clone()
}

// Query runs the forward pass and returns the output layer activations.
// The network is not modified.
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(input) != Inputs().
//   - matrix.ErrNaNInf for non-finite input.
//
// Complexity: O(inputs*hidden + hidden*outputs).
func (n *Network) Query(input []float64) ([]float64, error) {
	_, _, o, err := n.forward(input)
	if err != nil {
		return nil, networkErrorf(opQuery, err)
	}
	out, err := matrix.VectorValues(o)
	if err != nil {
		return nil, networkErrorf(opQuery, err)
	}

	return out, nil
}

// Predict returns the index of the largest output, i.e. the predicted class
// for a one-hot encoded target layout. Ties resolve to the lowest index.
func (n *Network) Predict(input []float64) (int, error) {
	out, err := n.Query(input)
	if err != nil {
		return 0, networkErrorf(opPredict, err)
	}

	return floats.MaxIdx(out), nil
}

// forward returns the input column x, the hidden activations h = f(wih·x)
// and the output activations o = f(who·h).
func (n *Network) forward(input []float64) (x, h, o matrix.Matrix, err error) {
	if err = matrix.ValidateVecLen(input, n.inputs); err != nil {
		return nil, nil, nil, fmt.Errorf("input: %w", err)
	}
	if x, err = matrix.NewVector(input, matrix.ColumnVector); err != nil {
		return nil, nil, nil, fmt.Errorf("input: %w", err)
	}
	if h, err = n.layer(n.wih, x); err != nil {
		return nil, nil, nil, fmt.Errorf("hidden layer: %w", err)
	}
	if o, err = n.layer(n.who, h); err != nil {
		return nil, nil, nil, fmt.Errorf("output layer: %w", err)
	}

	return x, h, o, nil
}

// layer computes f(w·in) element-wise.
func (n *Network) layer(w, in matrix.Matrix) (matrix.Matrix, error) {
	net, err := matrix.Mul(w, in)
	if err != nil {
		return nil, err
	}

	return matrix.Map(net, n.activation)
}
