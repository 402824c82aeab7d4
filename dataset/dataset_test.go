package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLoadCSVReader(t *testing.T) {
	data := "x1,x2,price\n1.0,2.0,10.0\n3.0,4.0,20.0\n5.0,6.0,30.0\n"

	ds, err := LoadCSVReader(strings.NewReader(data), CSVOptions{HasHeader: true, TargetColumn: -1})
	require.NoError(t, err)

	assert.Equal(t, 3, ds.NumSamples())
	assert.Equal(t, 2, ds.NumFeatures())
	assert.Equal(t, []string{"x1", "x2"}, ds.FeatureNames)
	assert.Equal(t, "price", ds.TargetName)

	assert.Equal(t, 1.0, ds.X.At(0, 0))
	assert.Equal(t, 6.0, ds.X.At(2, 1))
	assert.Equal(t, 10.0, ds.Y.AtVec(0))
	assert.Equal(t, 30.0, ds.Y.AtVec(2))
}

func TestLoadCSVReaderTargetColumn(t *testing.T) {
	data := "5.0,1.0,2.0\n6.0,3.0,4.0\n"

	ds, err := LoadCSVReader(strings.NewReader(data), CSVOptions{TargetColumn: 0})
	require.NoError(t, err)

	assert.Equal(t, 5.0, ds.Y.AtVec(0))
	assert.Equal(t, 6.0, ds.Y.AtVec(1))
	assert.Equal(t, 1.0, ds.X.At(0, 0))
	assert.Equal(t, 4.0, ds.X.At(1, 1))
	assert.Nil(t, ds.FeatureNames)
}

func TestLoadCSVReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		opts CSVOptions
	}{
		{name: "empty file", data: "", opts: CSVOptions{}},
		{name: "header only", data: "a,b\n", opts: CSVOptions{HasHeader: true}},
		{name: "single column", data: "1.0\n2.0\n", opts: CSVOptions{TargetColumn: -1}},
		{name: "non-numeric cell", data: "1.0,abc\n", opts: CSVOptions{TargetColumn: -1}},
		{name: "target out of range", data: "1.0,2.0\n", opts: CSVOptions{TargetColumn: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSVReader(strings.NewReader(tt.data), tt.opts)
			assert.Error(t, err)
		})
	}
}

func TestLoadCSVReaderParseErrorContext(t *testing.T) {
	data := "1.0,2.0\n3.0,oops\n"

	_, err := LoadCSVReader(strings.NewReader(data), CSVOptions{TargetColumn: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "column 2")
	assert.Contains(t, err.Error(), `"oops"`)
}

func TestLoadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("1.5,3.0\n2.5,5.0\n"), 0o644))

	ds, err := LoadCSV(path, CSVOptions{TargetColumn: -1})
	require.NoError(t, err)
	assert.Equal(t, 2, ds.NumSamples())
	assert.Equal(t, 3.0, ds.Y.AtVec(0))

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), CSVOptions{})
	assert.Error(t, err)
}

func TestTrainTestSplit(t *testing.T) {
	n := 10
	X := mat.NewDense(n, 2, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		X.Set(i, 1, float64(i)*10)
		y.Set(i, 0, float64(i)*100)
	}

	XTrain, XTest, yTrain, yTest, err := TrainTestSplit(X, y, 0.3, 42)
	require.NoError(t, err)

	rTrain, _ := XTrain.Dims()
	rTest, _ := XTest.Dims()
	assert.Equal(t, 7, rTrain)
	assert.Equal(t, 3, rTest)

	// Rows stay aligned with their labels after shuffling.
	seen := make(map[float64]bool)
	check := func(Xp, yp *mat.Dense) {
		r, _ := Xp.Dims()
		for i := 0; i < r; i++ {
			v := Xp.At(i, 0)
			assert.Equal(t, v*10, Xp.At(i, 1))
			assert.Equal(t, v*100, yp.At(i, 0))
			assert.False(t, seen[v], "sample %v appears twice", v)
			seen[v] = true
		}
	}
	check(XTrain, yTrain)
	check(XTest, yTest)
	assert.Len(t, seen, n)
}

func TestTrainTestSplitDeterministic(t *testing.T) {
	X, y := MakeRegression(20, 3, 0, 7)

	a1, _, _, _, err := TrainTestSplit(X, y, 0.25, 99)
	require.NoError(t, err)
	a2, _, _, _, err := TrainTestSplit(X, y, 0.25, 99)
	require.NoError(t, err)

	assert.True(t, mat.Equal(a1, a2))
}

func TestTrainTestSplitErrors(t *testing.T) {
	X := mat.NewDense(4, 2, nil)
	y := mat.NewDense(4, 1, nil)

	_, _, _, _, err := TrainTestSplit(X, y, 0, 1)
	assert.Error(t, err)

	_, _, _, _, err = TrainTestSplit(X, y, 1.0, 1)
	assert.Error(t, err)

	yBad := mat.NewDense(3, 1, nil)
	_, _, _, _, err = TrainTestSplit(X, yBad, 0.5, 1)
	assert.Error(t, err)

	yWide := mat.NewDense(4, 2, nil)
	_, _, _, _, err = TrainTestSplit(X, yWide, 0.5, 1)
	assert.Error(t, err)
}

func TestMakeRegression(t *testing.T) {
	X, y := MakeRegression(50, 4, 0.1, 123)

	r, c := X.Dims()
	assert.Equal(t, 50, r)
	assert.Equal(t, 4, c)
	ry, cy := y.Dims()
	assert.Equal(t, 50, ry)
	assert.Equal(t, 1, cy)

	X2, y2 := MakeRegression(50, 4, 0.1, 123)
	assert.True(t, mat.Equal(X, X2))
	assert.True(t, mat.Equal(y, y2))

	X3, _ := MakeRegression(50, 4, 0.1, 124)
	assert.False(t, mat.Equal(X, X3))
}
