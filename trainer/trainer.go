// SPDX-License-Identifier: MIT

package trainer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/nnet/dataset"
)

var (
	// ErrEmptyDataset is returned when Train or Evaluate receive no examples.
	ErrEmptyDataset = errors.New("trainer: empty dataset")

	// ErrPredictionOutOfRange is returned when a predicted class index has no
	// matching slot in the example's target vector.
	ErrPredictionOutOfRange = errors.New("trainer: prediction outside target classes")

	// ErrEmptyHistory is returned by PlotHistory for a history without epochs.
	ErrEmptyHistory = errors.New("trainer: empty history")
)

// Learner is the part of a network the epoch loop drives.
// *network.Network satisfies it.
type Learner interface {
	Predictor
	TrainError(input, target []float64) (float64, error)
}

// Predictor returns the class index for an input.
type Predictor interface {
	Predict(input []float64) (int, error)
}

// Config controls Train.
type Config struct {
	// Epochs is the number of passes over the examples; 0 means 1.
	Epochs int
	// ProgressEvery logs an Info progress record after this many examples; 0 disables it.
	ProgressEvery int
	// Validation, when non-empty, is evaluated after every epoch.
	Validation []dataset.Example
	// Logger receives progress and epoch records; nil discards them.
	Logger *slog.Logger
}

// EpochStats summarizes one pass over the training set.
type EpochStats struct {
	Epoch    int           // 1-based
	MeanLoss float64       // mean of ½Σ(t−o)² over the epoch, measured before each update
	Accuracy float64       // validation accuracy; meaningful only when Validated
	Duration time.Duration // wall time of the pass (validation excluded)

	Validated bool
}

// History is the per-epoch record returned by Train.
type History struct {
	Epochs []EpochStats

	// Report is the validation report of the last completed epoch; zero when
	// Config.Validation is empty.
	Report Report
}

// Last returns the final epoch's stats and false for an empty history.
func (h History) Last() (EpochStats, bool) {
	if len(h.Epochs) == 0 {
		return EpochStats{}, false
	}

	return h.Epochs[len(h.Epochs)-1], true
}

// Train runs cfg.Epochs online passes over examples in order, calling
// TrainError once per example. ctx is checked between examples; on
// cancellation the epochs completed so far are returned with ctx.Err().
//
// Errors:
//   - ErrEmptyDataset, any error from TrainError or validation, ctx.Err().
func Train(ctx context.Context, l Learner, examples []dataset.Example, cfg Config) (History, error) {
	var h History
	if len(examples) == 0 {
		return h, ErrEmptyDataset
	}
	epochs := cfg.Epochs
	if epochs <= 0 {
		epochs = 1
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	losses := make([]float64, len(examples))
	for epoch := 1; epoch <= epochs; epoch++ {
		start := time.Now()
		for i, ex := range examples {
			if err := ctx.Err(); err != nil {
				return h, err
			}
			loss, err := l.TrainError(ex.Input, ex.Target)
			if err != nil {
				return h, fmt.Errorf("trainer: epoch %d example %d: %w", epoch, i, err)
			}
			losses[i] = loss

			if cfg.ProgressEvery > 0 && (i+1)%cfg.ProgressEvery == 0 {
				log.LogAttrs(ctx, slog.LevelInfo, "progress",
					slog.Int("epoch", epoch),
					slog.Int("seen", i+1),
					slog.Int("total", len(examples)),
					slog.Float64("percent", 100*float64(i+1)/float64(len(examples))),
				)
			}
		}

		st := EpochStats{
			Epoch:    epoch,
			MeanLoss: stat.Mean(losses, nil),
			Duration: time.Since(start),
		}
		if len(cfg.Validation) > 0 {
			rep, err := Evaluate(l, cfg.Validation)
			if err != nil {
				return h, fmt.Errorf("trainer: epoch %d validation: %w", epoch, err)
			}
			st.Accuracy, st.Validated = rep.Accuracy, true
			h.Report = rep
		}
		h.Epochs = append(h.Epochs, st)

		attrs := []slog.Attr{
			slog.Int("epoch", epoch),
			slog.Float64("loss", st.MeanLoss),
			slog.Duration("elapsed", st.Duration),
		}
		if st.Validated {
			attrs = append(attrs, slog.Float64("accuracy", st.Accuracy))
		}
		log.LogAttrs(ctx, slog.LevelInfo, "epoch done", attrs...)
	}

	return h, nil
}
