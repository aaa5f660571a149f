// Package network implements a two-layer feedforward neural network
// (input → hidden → output) trained one example at a time with
// backpropagation.
//
// The network provides:
//
//   - New, which draws both weight matrices from Uniform[-1/√fanIn, 1/√fanIn]
//     (InitWeights) or takes injected weights (WithWeights).
//   - Query, the read-only forward pass, and Predict, its argmax.
//   - Train and TrainError, one stochastic gradient step per example.
//
// The activation is a plain function value (Sigmoid by default). Train needs
// its derivative expressed through the forward output; SigmoidDerivative is
// used unless WithDerivative says otherwise.
//
// Shape errors from mismatched input or target lengths are the matrix
// package's sentinels, wrapped with the failing operation and matched with
// errors.Is.
package network
