// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernel tests.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/nnet/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the At/Set fallback path in code under test.
// Prefer wrapping only the operand you want to de-opt.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustColumn builds an N×1 column vector or fails the test.
func MustColumn(tb testing.TB, values ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewVector(values, matrix.ColumnVector)
	require.NoError(tb, err)

	return m
}

// MustSet writes v at (i,j) or fails the test.
func MustSet(tb testing.TB, m matrix.Matrix, i, j int, v float64) {
	tb.Helper()
	require.NoError(tb, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err, "At(%d,%d)", i, j)

	return v
}

// RandomFill writes values in [-1, 1) from a seeded PCG stream, row-major.
func RandomFill(tb testing.TB, m matrix.Matrix, seed uint64) {
	tb.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(tb, m, i, j, 2*rng.Float64()-1)
		}
	}
}

// RandFilledDense allocates an r×c *Dense and fills it with RandomFill.
func RandFilledDense(tb testing.TB, r, c int, seed uint64) *matrix.Dense {
	tb.Helper()
	m := MustDense(tb, r, c)
	RandomFill(tb, m, seed)

	return m
}

// ToRows reads any Matrix into a [][]float64 for literal comparisons.
func ToRows(tb testing.TB, m matrix.Matrix) [][]float64 {
	tb.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(tb, m, i, j)
		}
	}

	return out
}

// CompareExact fails unless m equals want bit for bit.
func CompareExact(tb testing.TB, want [][]float64, m matrix.Matrix) {
	tb.Helper()
	require.Equal(tb, want, ToRows(tb, m))
}

// CompareClose fails unless every cell of m is within tol of want.
func CompareClose(tb testing.TB, want [][]float64, m matrix.Matrix, tol float64) {
	tb.Helper()
	require.Equal(tb, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(tb, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.InDelta(tb, want[i][j], MustAt(tb, m, i, j), tol, "cell (%d,%d)", i, j)
		}
	}
}

// toGonum copies m into a gonum *mat.Dense used as a reference oracle.
func toGonum(tb testing.TB, m matrix.Matrix) *mat.Dense {
	tb.Helper()
	g := mat.NewDense(m.Rows(), m.Cols(), nil)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			g.Set(i, j, MustAt(tb, m, i, j))
		}
	}

	return g
}

// requireMatchesGonum fails unless m and the oracle g agree within tol.
func requireMatchesGonum(tb testing.TB, g mat.Matrix, m matrix.Matrix, tol float64) {
	tb.Helper()
	r, c := g.Dims()
	require.Equal(tb, r, m.Rows(), "rows")
	require.Equal(tb, c, m.Cols(), "cols")
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			got := MustAt(tb, m, i, j)
			require.False(tb, math.IsNaN(got), "NaN at (%d,%d)", i, j)
			require.InDelta(tb, g.At(i, j), got, tol, "cell (%d,%d)", i, j)
		}
	}
}
