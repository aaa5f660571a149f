// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultNumClasses is the class count of digit datasets.
	DefaultNumClasses = 10

	// MaxIntensity is the largest raw feature value (8-bit pixels).
	MaxIntensity = 255.0

	// OnValue and OffValue are the soft one-hot bounds; targets stay inside
	// the sigmoid's open range (0, 1).
	OnValue  = 0.99
	OffValue = 0.01
)

var (
	// ErrMalformedRecord is returned for records with a missing label, a
	// non-numeric field, a feature outside [0, MaxIntensity] or a feature count
	// that disagrees with the rest of the file.
	ErrMalformedRecord = errors.New("dataset: malformed record")

	// ErrLabelOutOfRange is returned when a label is not in [0, numClasses).
	ErrLabelOutOfRange = errors.New("dataset: label out of range")
)

// Example is one labelled record ready for the network.
type Example struct {
	Label  int       // class index
	Input  []float64 // scaled features in [0.01, 1.0]
	Target []float64 // one-hot with OffValue/OnValue
}

// Options controls Load and LoadFile.
type Options struct {
	// NumClasses sets the target width; 0 means DefaultNumClasses.
	NumClasses int
	// Features fixes the expected feature count; 0 takes it from the first record.
	Features int
	// SkipHeader discards the first CSV record.
	SkipHeader bool
	// Limit stops after this many examples; 0 reads everything.
	Limit int
}

// Scale maps a raw intensity in [0, 255] into [0.01, 1.0] as x/255*0.99 + 0.01.
func Scale(raw float64) float64 {
	return raw/MaxIntensity*OnValue + OffValue
}

// OneHot returns a numClasses-long target with OnValue at label and OffValue elsewhere.
//
// Errors:
//   - ErrLabelOutOfRange when label is outside [0, numClasses) or numClasses ≤ 0.
func OneHot(label, numClasses int) ([]float64, error) {
	if numClasses <= 0 || label < 0 || label >= numClasses {
		return nil, fmt.Errorf("label %d with %d classes: %w", label, numClasses, ErrLabelOutOfRange)
	}
	t := make([]float64, numClasses)
	floats.AddConst(OffValue, t)
	t[label] = OnValue

	return t, nil
}

// ParseRecord converts "label,f1,f2,..." fields into an Example. Fields are
// trimmed; features are scaled with Scale.
//
// Errors:
//   - ErrMalformedRecord for fewer than two fields or unparsable values.
//   - ErrLabelOutOfRange for a label outside [0, numClasses).
func ParseRecord(fields []string, numClasses int) (Example, error) {
	if len(fields) < 2 {
		return Example{}, fmt.Errorf("%d fields: %w", len(fields), ErrMalformedRecord)
	}

	label, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Example{}, fmt.Errorf("label %q: %w", fields[0], ErrMalformedRecord)
	}
	target, err := OneHot(label, numClasses)
	if err != nil {
		return Example{}, err
	}

	input := make([]float64, len(fields)-1)
	for j, f := range fields[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil || !(v >= 0 && v <= MaxIntensity) {
			return Example{}, fmt.Errorf("feature %d %q: %w", j+1, f, ErrMalformedRecord)
		}
		input[j] = Scale(v)
	}

	return Example{Label: label, Input: input, Target: target}, nil
}

// Load reads CSV records from r and parses each with ParseRecord. Every
// record must carry the same number of features. Errors name the 1-based
// CSV record.
func Load(r io.Reader, opts Options) ([]Example, error) {
	numClasses := opts.NumClasses
	if numClasses == 0 {
		numClasses = DefaultNumClasses
	}
	features := opts.Features

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // counts are checked per record below
	reader.ReuseRecord = true

	var out []Example
	for rec := 1; ; rec++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", rec, err)
		}
		if rec == 1 && opts.SkipHeader {
			continue
		}

		ex, err := ParseRecord(record, numClasses)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", rec, err)
		}
		if features == 0 {
			features = len(ex.Input)
		}
		if len(ex.Input) != features {
			return nil, fmt.Errorf("record %d: %d features, want %d: %w",
				rec, len(ex.Input), features, ErrMalformedRecord)
		}

		out = append(out, ex)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}

	return out, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts Options) ([]Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open: %w", err)
	}
	defer f.Close()

	examples, err := Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return examples, nil
}
