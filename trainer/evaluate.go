// SPDX-License-Identifier: MIT

package trainer

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/nnet/dataset"
)

// ClassStats counts predictions for one true class.
type ClassStats struct {
	Correct, Total int
}

// Report is the outcome of Evaluate.
type Report struct {
	Correct, Total int
	Accuracy       float64

	// PerClass is indexed by true label.
	PerClass []ClassStats
	// Confusion[actual][predicted] counts examples.
	Confusion [][]int
}

// Evaluate predicts every example and compares the predicted class with its
// label. The class count is the target width of the first example, or the
// largest label + 1 when examples carry no targets.
//
// Errors:
//   - ErrEmptyDataset, ErrPredictionOutOfRange, any Predict error.
func Evaluate(p Predictor, examples []dataset.Example) (Report, error) {
	if len(examples) == 0 {
		return Report{}, ErrEmptyDataset
	}
	classes := len(examples[0].Target)
	if classes == 0 {
		classes = max(int(floats.Max(labels(examples)))+1, 1)
	}

	rep := Report{
		Total:     len(examples),
		PerClass:  make([]ClassStats, classes),
		Confusion: make([][]int, classes),
	}
	for i := range rep.Confusion {
		rep.Confusion[i] = make([]int, classes)
	}

	for i, ex := range examples {
		pred, err := p.Predict(ex.Input)
		if err != nil {
			return Report{}, fmt.Errorf("trainer: example %d: %w", i, err)
		}
		if pred < 0 || pred >= classes || ex.Label < 0 || ex.Label >= classes {
			return Report{}, fmt.Errorf("trainer: example %d: label %d predicted %d of %d classes: %w",
				i, ex.Label, pred, classes, ErrPredictionOutOfRange)
		}
		rep.Confusion[ex.Label][pred]++
		rep.PerClass[ex.Label].Total++
		if pred == ex.Label {
			rep.PerClass[ex.Label].Correct++
			rep.Correct++
		}
	}
	rep.Accuracy = float64(rep.Correct) / float64(rep.Total)

	return rep, nil
}

// labels returns the example labels as floats.
func labels(examples []dataset.Example) []float64 {
	out := make([]float64, len(examples))
	for i, ex := range examples {
		out[i] = float64(ex.Label)
	}

	return out
}

// ClassAccuracy returns the share of correct predictions for class c, or 0 when
// the class never occurred.
func (r Report) ClassAccuracy(c int) float64 {
	if c < 0 || c >= len(r.PerClass) || r.PerClass[c].Total == 0 {
		return 0
	}

	return float64(r.PerClass[c].Correct) / float64(r.PerClass[c].Total)
}
