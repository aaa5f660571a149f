// Package nnet is a small, dependency-light toolkit for training a
// fully-connected two-layer network (input → hidden → output) with online
// backpropagation.
//
// What is inside?
//
//	matrix/   dense row-major matrices: Mul, Add/Sub, Transpose, Scale,
//	          Hadamard, Outer, Map and tolerance comparisons
//	network/  the Network itself: construction, Query, Train, Predict,
//	          seeded fan-in weight initialization and the sigmoid activation
//	dataset/  "label,f1,f2,..." CSV records scaled into (0.01, 1.0] inputs
//	          and one-hot targets
//	trainer/  epoch loop with cancellation, progress logging, accuracy
//	          reports, confusion matrices and training-curve plots
//	cmd/nnet  command line front end tying the pieces together
//
// Quick example:
//
//	n, _ := network.New(784, 200, 10, 0.1, network.Sigmoid, network.WithSeed(7))
//	_ = n.Train(example.Input, example.Target)
//	digit, _ := n.Predict(example.Input)
//
// A Network is not safe for concurrent use; Query may run in parallel only
// while no Train call is in flight.
//
//	go get github.com/katalvlaran/nnet
package nnet
