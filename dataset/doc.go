// Package dataset turns labelled CSV records ("label,f1,f2,...") into
// network-ready examples: features scaled into [0.01, 1.0] and one-hot
// targets with soft 0.01/0.99 bounds.
//
// The layout matches the common MNIST CSV exports (one label followed by 784
// pixel intensities per line), but any feature count works as long as every
// record agrees.
package dataset
