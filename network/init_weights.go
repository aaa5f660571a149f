// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/nnet/matrix"
)

// InitWeights returns a fanOut×fanIn matrix whose cells are drawn i.i.d. from
// Uniform[-1/√fanIn, 1/√fanIn]. Row i holds the incoming weights of node i.
//
// Cells are filled in row-major order, so a seeded src yields reproducible
// weights. A nil src draws from the math/rand/v2 global generator.
//
// Errors:
//   - matrix.ErrInvalidDimensions when fanIn ≤ 0 or fanOut ≤ 0.
//
// Complexity: O(fanIn*fanOut).
func InitWeights(fanIn, fanOut int, src rand.Source) (*matrix.Dense, error) {
	w, err := matrix.NewDense(fanOut, fanIn)
	if err != nil {
		return nil, networkErrorf(opInit, fmt.Errorf("fanIn=%d fanOut=%d: %w", fanIn, fanOut, err))
	}

	bound := 1 / math.Sqrt(float64(fanIn))
	dist := distuv.Uniform{Min: -bound, Max: bound, Src: src}
	if err = w.Apply(func(_, _ int, _ float64) float64 { return dist.Rand() }); err != nil {
		return nil, networkErrorf(opInit, err)
	}

	return w, nil
}
