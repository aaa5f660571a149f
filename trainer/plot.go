// SPDX-License-Identifier: MIT

package trainer

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot canvas size.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// PlotHistory renders mean loss per epoch, and validation accuracy when it
// was measured, to path. The image format follows the file extension
// (.png, .svg, .pdf, ...).
//
// Errors:
//   - ErrEmptyHistory, or any error from building or saving the plot.
func PlotHistory(h History, path string) error {
	if len(h.Epochs) == 0 {
		return ErrEmptyHistory
	}

	p := plot.New()
	p.Title.Text = "Training"
	p.X.Label.Text = "epoch"
	p.Y.Label.Text = "value"
	p.Add(plotter.NewGrid())

	loss := make(plotter.XYs, 0, len(h.Epochs))
	acc := make(plotter.XYs, 0, len(h.Epochs))
	for _, e := range h.Epochs {
		loss = append(loss, plotter.XY{X: float64(e.Epoch), Y: e.MeanLoss})
		if e.Validated {
			acc = append(acc, plotter.XY{X: float64(e.Epoch), Y: e.Accuracy})
		}
	}

	if err := addLine(p, "mean loss", loss, 0); err != nil {
		return err
	}
	if len(acc) > 0 {
		if err := addLine(p, "accuracy", acc, 1); err != nil {
			return err
		}
	}

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("trainer: save plot %s: %w", path, err)
	}

	return nil
}

// addLine adds a line with points and a legend entry, coloured by index.
func addLine(p *plot.Plot, name string, xys plotter.XYs, colour int) error {
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("trainer: %s line: %w", name, err)
	}
	line.Color = plotutil.Color(colour)
	points.Color = plotutil.Color(colour)
	points.Shape = plotutil.Shape(colour)

	p.Add(line, points)
	p.Legend.Add(name, line, points)

	return nil
}
