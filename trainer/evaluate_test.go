// SPDX-License-Identifier: MIT
package trainer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nnet/dataset"
	"github.com/katalvlaran/nnet/matrix"
	"github.com/katalvlaran/nnet/trainer"
)

// scripted predicts from a fixed list, one entry per call.
type scripted struct {
	preds []int
	next  int
}

func (s *scripted) Predict(_ []float64) (int, error) {
	p := s.preds[s.next]
	s.next++

	return p, nil
}

type failing struct{}

func (failing) Predict(_ []float64) (int, error) { return 0, matrix.ErrDimensionMismatch }

func examples(labels ...int) []dataset.Example {
	out := make([]dataset.Example, len(labels))
	for i, l := range labels {
		target, _ := dataset.OneHot(l, 3)
		out[i] = dataset.Example{Label: l, Input: []float64{0.5}, Target: target}
	}

	return out
}

func TestEvaluate_ConfusionAndAccuracy(t *testing.T) {
	rep, err := trainer.Evaluate(&scripted{preds: []int{0, 1, 1, 2, 1, 2}}, examples(0, 1, 2, 2, 0, 1))
	require.NoError(t, err)

	require.Equal(t, 6, rep.Total)
	require.Equal(t, 3, rep.Correct)
	require.Equal(t, 0.5, rep.Accuracy)
	require.Equal(t, [][]int{
		{1, 1, 0},
		{0, 1, 1},
		{0, 1, 1},
	}, rep.Confusion)
	require.Equal(t, []trainer.ClassStats{
		{Correct: 1, Total: 2},
		{Correct: 1, Total: 2},
		{Correct: 1, Total: 2},
	}, rep.PerClass)
	require.Equal(t, 0.5, rep.ClassAccuracy(0))
	require.Equal(t, 0.5, rep.ClassAccuracy(2))
	require.Zero(t, rep.ClassAccuracy(7))
}

func TestEvaluate_ClassesFromLabelsWithoutTargets(t *testing.T) {
	data := []dataset.Example{{Label: 0}, {Label: 3}}

	rep, err := trainer.Evaluate(&scripted{preds: []int{0, 3}}, data)
	require.NoError(t, err)
	require.Len(t, rep.PerClass, 4)
	require.Equal(t, 1.0, rep.Accuracy)
}

func TestEvaluate_Errors(t *testing.T) {
	_, err := trainer.Evaluate(failing{}, nil)
	require.ErrorIs(t, err, trainer.ErrEmptyDataset)

	_, err = trainer.Evaluate(failing{}, examples(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = trainer.Evaluate(&scripted{preds: []int{5}}, examples(1))
	require.ErrorIs(t, err, trainer.ErrPredictionOutOfRange)
}
