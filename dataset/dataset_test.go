// SPDX-License-Identifier: MIT
package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nnet/dataset"
)

func TestScale(t *testing.T) {
	require.Equal(t, 1.0, dataset.Scale(255))
	require.Equal(t, 0.07211764705882352, dataset.Scale(16))
	require.Equal(t, 0.3982352941176471, dataset.Scale(100))
	require.Equal(t, 0.01, dataset.Scale(0))
}

func TestParseRecord(t *testing.T) {
	ex, err := dataset.ParseRecord([]string{"1", "255", "16", "100"}, 10)
	require.NoError(t, err)

	require.Equal(t, 1, ex.Label)
	require.Equal(t, []float64{1.0, 0.07211764705882352, 0.3982352941176471}, ex.Input)
	require.Len(t, ex.Target, 10)
	require.Equal(t, 0.99, ex.Target[1])
	require.Equal(t, 0.01, ex.Target[0])
	require.Equal(t, 0.01, ex.Target[9])
}

func TestParseRecord_TrimsSpaces(t *testing.T) {
	ex, err := dataset.ParseRecord([]string{" 3", " 0 ", "255\r"}, 4)
	require.NoError(t, err)
	require.Equal(t, 3, ex.Label)
	require.Equal(t, []float64{0.01, 1.0}, ex.Input)
}

func TestParseRecord_Errors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		fields  []string
		classes int
		wantErr error
	}{
		{"no features", []string{"1"}, 10, dataset.ErrMalformedRecord},
		{"empty", nil, 10, dataset.ErrMalformedRecord},
		{"bad label", []string{"x", "1"}, 10, dataset.ErrMalformedRecord},
		{"fractional label", []string{"1.5", "1"}, 10, dataset.ErrMalformedRecord},
		{"bad feature", []string{"1", "abc"}, 10, dataset.ErrMalformedRecord},
		{"negative feature", []string{"1", "-1"}, 10, dataset.ErrMalformedRecord},
		{"feature above 255", []string{"1", "256"}, 10, dataset.ErrMalformedRecord},
		{"NaN feature", []string{"1", "NaN"}, 10, dataset.ErrMalformedRecord},
		{"label too large", []string{"10", "1"}, 10, dataset.ErrLabelOutOfRange},
		{"negative label", []string{"-1", "1"}, 10, dataset.ErrLabelOutOfRange},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := dataset.ParseRecord(tc.fields, tc.classes)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestOneHot(t *testing.T) {
	got, err := dataset.OneHot(2, 4)
	require.NoError(t, err)
	require.Equal(t, []float64{0.01, 0.01, 0.99, 0.01}, got)

	_, err = dataset.OneHot(4, 4)
	require.ErrorIs(t, err, dataset.ErrLabelOutOfRange)
	_, err = dataset.OneHot(0, 0)
	require.ErrorIs(t, err, dataset.ErrLabelOutOfRange)
}

func TestLoad(t *testing.T) {
	const data = "label,p0,p1\n" +
		"0,0,255\n" +
		"1,255,0\n" +
		"2,16,100\n"

	examples, err := dataset.Load(strings.NewReader(data), dataset.Options{NumClasses: 3, SkipHeader: true})
	require.NoError(t, err)
	require.Len(t, examples, 3)

	require.Equal(t, 0, examples[0].Label)
	require.Equal(t, []float64{0.01, 1.0}, examples[0].Input)
	require.Equal(t, []float64{0.01, 0.99, 0.01}, examples[1].Target)
	require.Equal(t, []float64{0.07211764705882352, 0.3982352941176471}, examples[2].Input)

	// records are independent copies even though the reader reuses its buffer
	require.NotSame(t, &examples[0].Input[0], &examples[1].Input[0])
}

func TestLoad_LimitAndDefaults(t *testing.T) {
	const data = "5,1,2\n7,3,4\n9,5,6\n"

	examples, err := dataset.Load(strings.NewReader(data), dataset.Options{Limit: 2})
	require.NoError(t, err)
	require.Len(t, examples, 2)
	require.Len(t, examples[0].Target, dataset.DefaultNumClasses)
	require.Equal(t, 7, examples[1].Label)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		data    string
		opts    dataset.Options
		wantErr error
		wantMsg string
	}{
		{"ragged", "0,1,2\n1,3\n", dataset.Options{}, dataset.ErrMalformedRecord, "record 2"},
		{"fixed features", "0,1,2\n", dataset.Options{Features: 3}, dataset.ErrMalformedRecord, "record 1"},
		{"header not skipped", "label,p0\n0,1\n", dataset.Options{}, dataset.ErrMalformedRecord, "record 1"},
		{"label range", "0,1\n12,1\n", dataset.Options{}, dataset.ErrLabelOutOfRange, "record 2"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := dataset.Load(strings.NewReader(tc.data), tc.opts)
			require.ErrorIs(t, err, tc.wantErr)
			require.ErrorContains(t, err, tc.wantMsg)
		})
	}
}

func TestLoad_Empty(t *testing.T) {
	examples, err := dataset.Load(strings.NewReader(""), dataset.Options{})
	require.NoError(t, err)
	require.Empty(t, examples)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.csv")
	require.NoError(t, os.WriteFile(path, []byte("3,0,0,255\n"), 0o600))

	examples, err := dataset.LoadFile(path, dataset.Options{})
	require.NoError(t, err)
	require.Len(t, examples, 1)
	require.Equal(t, 3, examples[0].Label)

	_, err = dataset.LoadFile(filepath.Join(t.TempDir(), "missing.csv"), dataset.Options{})
	require.ErrorIs(t, err, os.ErrNotExist)
}
