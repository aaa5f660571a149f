// SPDX-License-Identifier: MIT

// Command nnet trains a two-layer network on a labelled CSV file
// ("label,f1,f2,...", features 0..255) and reports accuracy on a held-out file.
//
// Usage:
//
//	nnet -train mnist_train.csv -test mnist_test.csv -hidden 200 -lr 0.1 -epochs 1
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/nnet/dataset"
	"github.com/katalvlaran/nnet/network"
	"github.com/katalvlaran/nnet/trainer"
)

// config holds the parsed command line.
type config struct {
	trainPath, testPath string
	plotPath            string
	hidden              int
	classes             int
	lr                  float64
	epochs              int
	seed                uint64
	progress            int
	limit               int
	header              bool
	logLevel            slog.Level
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "nnet:", err)
		os.Exit(1)
	}
}

// parseFlags reads args into a config. Output for -h and usage errors goes to w.
func parseFlags(args []string, w io.Writer) (config, error) {
	var cfg config
	var level string

	fs := flag.NewFlagSet("nnet", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.StringVar(&cfg.trainPath, "train", "", "training CSV file (required)")
	fs.StringVar(&cfg.testPath, "test", "", "held-out CSV file for the final accuracy report")
	fs.StringVar(&cfg.plotPath, "plot", "", "write the training curve to this file (.png, .svg, .pdf)")
	fs.IntVar(&cfg.hidden, "hidden", 200, "hidden layer nodes")
	fs.IntVar(&cfg.classes, "classes", dataset.DefaultNumClasses, "number of output classes")
	fs.Float64Var(&cfg.lr, "lr", 0.1, "learning rate")
	fs.IntVar(&cfg.epochs, "epochs", 1, "passes over the training file")
	fs.Uint64Var(&cfg.seed, "seed", 0, "weight initialization seed (0 = random)")
	fs.IntVar(&cfg.progress, "progress", 600, "log progress every N examples at info level (0 = off)")
	fs.IntVar(&cfg.limit, "limit", 0, "max examples to load per file (0 = all)")
	fs.BoolVar(&cfg.header, "header", false, "CSV files start with a header row")
	fs.StringVar(&level, "log-level", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.trainPath == "" {
		return cfg, errors.New("-train is required")
	}
	if err := cfg.logLevel.UnmarshalText([]byte(level)); err != nil {
		return cfg, fmt.Errorf("-log-level: %w", err)
	}

	return cfg, nil
}

// run is main without the process exit, so it can be driven from tests.
func run(ctx context.Context, args []string, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.logLevel}))

	opts := dataset.Options{NumClasses: cfg.classes, SkipHeader: cfg.header, Limit: cfg.limit}
	start := time.Now()
	train, err := dataset.LoadFile(cfg.trainPath, opts)
	if err != nil {
		return err
	}
	if len(train) == 0 {
		return fmt.Errorf("%s: %w", cfg.trainPath, trainer.ErrEmptyDataset)
	}
	inputs := len(train[0].Input)
	log.Info("training data loaded",
		"path", cfg.trainPath, "examples", len(train), "inputs", inputs, "elapsed", time.Since(start))

	var test []dataset.Example
	if cfg.testPath != "" {
		opts.Features = inputs
		if test, err = dataset.LoadFile(cfg.testPath, opts); err != nil {
			return err
		}
		log.Info("test data loaded", "path", cfg.testPath, "examples", len(test))
	}

	var netOpts []network.Option
	if cfg.seed != 0 {
		netOpts = append(netOpts, network.WithSeed(cfg.seed))
	}
	net, err := network.New(inputs, cfg.hidden, cfg.classes, cfg.lr, network.Sigmoid, netOpts...)
	if err != nil {
		return err
	}
	log.Info("network ready",
		"inputs", inputs, "hidden", cfg.hidden, "outputs", cfg.classes, "lr", cfg.lr, "epochs", cfg.epochs)

	start = time.Now()
	history, err := trainer.Train(ctx, net, train, trainer.Config{
		Epochs:        cfg.epochs,
		ProgressEvery: cfg.progress,
		Validation:    test,
		Logger:        log,
	})
	if err != nil {
		return err
	}
	log.Info("training finished", "elapsed", time.Since(start))

	// the last epoch already evaluated the test set
	if len(test) > 0 {
		rep := history.Report
		for c := range rep.PerClass {
			log.Debug("class accuracy", "class", c,
				"correct", rep.PerClass[c].Correct, "total", rep.PerClass[c].Total,
				"accuracy", rep.ClassAccuracy(c))
		}
		log.Info("evaluation", "correct", rep.Correct, "total", rep.Total, "accuracy", rep.Accuracy)
	}

	if cfg.plotPath != "" {
		if err := trainer.PlotHistory(history, cfg.plotPath); err != nil {
			return err
		}
		log.Info("training curve written", "path", cfg.plotPath)
	}

	return nil
}
