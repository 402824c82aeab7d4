// Package dataset loads tabular course data into gonum matrices and
// provides the split and synthetic-data helpers the demos use.
package dataset

import (
	"encoding/csv"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/Shibu778/iisc-ml-school/pkg/errors"
	mllog "github.com/Shibu778/iisc-ml-school/pkg/log"
)

// CSVOptions configures LoadCSV.
type CSVOptions struct {
	// HasHeader treats the first row as column names.
	HasHeader bool

	// TargetColumn is the index of the label column. A negative value
	// selects the last column.
	TargetColumn int

	// Comma overrides the field separator. Zero means ','.
	Comma rune
}

// Dataset is a feature matrix with its label vector and column names.
type Dataset struct {
	X            *mat.Dense
	Y            *mat.VecDense
	FeatureNames []string
	TargetName   string
}

// NumSamples returns the number of rows.
func (d *Dataset) NumSamples() int {
	r, _ := d.X.Dims()
	return r
}

// NumFeatures returns the number of feature columns.
func (d *Dataset) NumFeatures() int {
	_, c := d.X.Dims()
	return c
}

// LoadCSV reads a CSV file into a Dataset.
func LoadCSV(path string, opts CSVOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer f.Close()

	ds, err := LoadCSVReader(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}

	slog.Debug("dataset loaded",
		mllog.DatasetKey, path,
		mllog.SamplesKey, ds.NumSamples(),
		mllog.FeaturesKey, ds.NumFeatures(),
	)
	return ds, nil
}

// LoadCSVReader reads CSV data into a Dataset. Every non-target cell must
// parse as a float64; the error reports the offending row and column.
func LoadCSVReader(r io.Reader, opts CSVOptions) (*Dataset, error) {
	reader := csv.NewReader(r)
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse CSV")
	}
	if len(records) == 0 {
		return nil, errors.NewModelError("dataset.LoadCSV", "empty file", errors.ErrEmptyData)
	}

	var header []string
	if opts.HasHeader {
		header = records[0]
		records = records[1:]
		if len(records) == 0 {
			return nil, errors.NewModelError("dataset.LoadCSV", "no data rows", errors.ErrEmptyData)
		}
	}

	nCols := len(records[0])
	if nCols < 2 {
		return nil, errors.NewValidationError("columns", "need at least one feature and one target column", nCols)
	}

	target := opts.TargetColumn
	if target < 0 {
		target = nCols - 1
	}
	if target >= nCols {
		return nil, errors.NewValidationError("target_column", "outside the column range", opts.TargetColumn)
	}

	nRows := len(records)
	X := mat.NewDense(nRows, nCols-1, nil)
	y := mat.NewVecDense(nRows, nil)

	for i, record := range records {
		if len(record) != nCols {
			return nil, errors.NewDimensionError("dataset.LoadCSV", nCols, len(record), 1)
		}
		featureIdx := 0
		for j, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.Newf("dataset.LoadCSV: row %d, column %d: cannot parse %q as float", i+1, j+1, cell)
			}
			if j == target {
				y.SetVec(i, v)
			} else {
				X.Set(i, featureIdx, v)
				featureIdx++
			}
		}
	}

	ds := &Dataset{X: X, Y: y}
	if header != nil {
		for j, name := range header {
			if j == target {
				ds.TargetName = name
			} else {
				ds.FeatureNames = append(ds.FeatureNames, name)
			}
		}
	}
	return ds, nil
}

// TrainTestSplit shuffles the sample indices with the given seed and splits
// (X, y) into train and test partitions. testSize is the test fraction in
// (0, 1).
func TrainTestSplit(X, y mat.Matrix, testSize float64, seed int64) (XTrain, XTest, yTrain, yTest *mat.Dense, err error) {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 {
		return nil, nil, nil, nil, errors.NewModelError("dataset.TrainTestSplit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return nil, nil, nil, nil, errors.NewDimensionError("dataset.TrainTestSplit", r, ry, 0)
	}
	if cy != 1 {
		return nil, nil, nil, nil, errors.NewValueError("dataset.TrainTestSplit", "y must be a column vector")
	}
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, nil, nil, errors.NewValidationError("test_size", "must be in (0, 1)", testSize)
	}

	nTest := int(float64(r) * testSize)
	if nTest < 1 {
		nTest = 1
	}
	nTrain := r - nTest
	if nTrain < 1 {
		return nil, nil, nil, nil, errors.NewValidationError("test_size", "leaves no training samples", testSize)
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(r)

	XTrain = mat.NewDense(nTrain, c, nil)
	XTest = mat.NewDense(nTest, c, nil)
	yTrain = mat.NewDense(nTrain, 1, nil)
	yTest = mat.NewDense(nTest, 1, nil)

	for i, src := range perm {
		if i < nTrain {
			for j := 0; j < c; j++ {
				XTrain.Set(i, j, X.At(src, j))
			}
			yTrain.Set(i, 0, y.At(src, 0))
		} else {
			for j := 0; j < c; j++ {
				XTest.Set(i-nTrain, j, X.At(src, j))
			}
			yTest.Set(i-nTrain, 0, y.At(src, 0))
		}
	}

	return XTrain, XTest, yTrain, yTest, nil
}

// MakeRegression generates a deterministic synthetic linear regression
// problem: y = X*w + b + noise, with weights drawn from the seeded
// generator. The same seed always yields the same data.
func MakeRegression(nSamples, nFeatures int, noise float64, seed int64) (*mat.Dense, *mat.Dense) {
	rng := rand.New(rand.NewSource(seed))

	weights := make([]float64, nFeatures)
	for j := range weights {
		weights[j] = rng.Float64()*4 - 2
	}
	bias := rng.Float64()*2 - 1

	X := mat.NewDense(nSamples, nFeatures, nil)
	y := mat.NewDense(nSamples, 1, nil)

	for i := 0; i < nSamples; i++ {
		target := bias
		for j := 0; j < nFeatures; j++ {
			v := rng.NormFloat64()
			X.Set(i, j, v)
			target += weights[j] * v
		}
		y.Set(i, 0, target+noise*rng.NormFloat64())
	}

	return X, y
}
