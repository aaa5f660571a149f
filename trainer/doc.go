// Package trainer drives a network over a dataset: epoch loops with
// per-example online updates, accuracy evaluation with a confusion matrix,
// and training-curve plots.
//
// Train and Evaluate depend on the small Learner and Predictor interfaces,
// which *network.Network satisfies. Progress is reported through an injected
// *slog.Logger; the loop itself is single-threaded and honours context
// cancellation between examples.
package trainer
