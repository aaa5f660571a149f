package network_test

import (
	"fmt"

	"github.com/katalvlaran/nnet/matrix"
	"github.com/katalvlaran/nnet/network"
)

// ExampleNetwork_Train trains a 2-2-2 network on one example with fixed
// starting weights and reports the error before and after.
func ExampleNetwork_Train() {
	wih, _ := matrix.NewFromRows([][]float64{{0.9, 0.3}, {0.2, 0.8}})
	who, _ := matrix.NewFromRows([][]float64{{0.3, 0.7}, {0.6, 0.5}})

	n, err := network.New(2, 2, 2, 0.5, network.Sigmoid, network.WithWeights(wih, who))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	input, target := []float64{1.0, 0.5}, []float64{0.9, 0.1}
	before, _ := n.TrainError(input, target)
	after, _ := n.TrainError(input, target)
	fmt.Printf("before=%.4f after=%.4f\n", before, after)

	// Output:
	// before=0.1981 after=0.1890
}

// ExampleNetwork_Query shows the shape error returned for a wrong input length.
func ExampleNetwork_Query() {
	n, _ := network.New(3, 4, 2, 0.1, network.Sigmoid, network.WithSeed(1))

	out, _ := n.Query([]float64{0.2, 0.5, 0.9})
	fmt.Println(len(out))

	_, err := n.Query([]float64{0.2})
	fmt.Println(err)

	// Output:
	// 2
	// network.Query: input: ValidateVecLen: got 1, want 3: matrix: dimension mismatch
}
