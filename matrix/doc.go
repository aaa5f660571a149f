// Package matrix offers a dense row-major float64 matrix and the linear
// algebra kernels a small neural network needs.
//
// The matrix package provides:
//
//   - Dense, a flat row-major buffer with error-returning At/Set and an
//     optional NaN/±Inf guard configured through functional options.
//   - Constructors NewZeros, NewDense, NewFromRows and NewVector.
//   - Kernels Mul, Add, Sub, Transpose, Scale, Hadamard, Outer and Map.
//     Each returns a fresh matrix; operands are never mutated.
//   - Sentinel errors (ErrDimensionMismatch, ErrOutOfRange, ...) wrapped with
//     the failing operation's name and matched with errors.Is.
//
// Kernels accept any Matrix; *Dense operands take a flat-slice fast path.
//
// See the examples in this package and network for usage patterns.
package matrix
