package linear

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/Shibu778/iisc-ml-school/pkg/errors"
)

func TestLinearRegressionFit(t *testing.T) {
	tests := []struct {
		name          string
		X             *mat.Dense
		y             *mat.Dense
		wantWeights   []float64
		wantIntercept float64
		tolerance     float64
	}{
		{
			name:          "perfect line y = 2x",
			X:             mat.NewDense(4, 1, []float64{1, 2, 3, 4}),
			y:             mat.NewDense(4, 1, []float64{2, 4, 6, 8}),
			wantWeights:   []float64{2.0},
			wantIntercept: 0.0,
			tolerance:     1e-8,
		},
		{
			name:          "line with intercept y = 3x + 1",
			X:             mat.NewDense(4, 1, []float64{0, 1, 2, 3}),
			y:             mat.NewDense(4, 1, []float64{1, 4, 7, 10}),
			wantWeights:   []float64{3.0},
			wantIntercept: 1.0,
			tolerance:     1e-8,
		},
		{
			name:          "two features y = x1 + 2*x2 + 3",
			X:             mat.NewDense(5, 2, []float64{0, 0, 1, 0, 0, 1, 1, 1, 2, 2}),
			y:             mat.NewDense(5, 1, []float64{3, 4, 5, 6, 9}),
			wantWeights:   []float64{1.0, 2.0},
			wantIntercept: 3.0,
			tolerance:     1e-8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lr := NewLinearRegression()
			if err := lr.Fit(tt.X, tt.y); err != nil {
				t.Fatalf("Fit() error = %v", err)
			}

			weights := lr.Weights()
			if len(weights) != len(tt.wantWeights) {
				t.Fatalf("Weights() length = %d, want %d", len(weights), len(tt.wantWeights))
			}
			for i, w := range weights {
				if math.Abs(w-tt.wantWeights[i]) > tt.tolerance {
					t.Errorf("Weights()[%d] = %v, want %v", i, w, tt.wantWeights[i])
				}
			}

			if math.Abs(lr.InterceptValue()-tt.wantIntercept) > tt.tolerance {
				t.Errorf("InterceptValue() = %v, want %v", lr.InterceptValue(), tt.wantIntercept)
			}
		})
	}
}

func TestLinearRegressionPredict(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})

	lr := NewLinearRegression()
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	XTest := mat.NewDense(2, 1, []float64{5, 6})
	pred, err := lr.Predict(XTest)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}

	want := []float64{10, 12}
	for i, w := range want {
		if got := pred.At(i, 0); math.Abs(got-w) > 1e-8 {
			t.Errorf("Predict()[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestLinearRegressionScore(t *testing.T) {
	X := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})
	y := mat.NewDense(5, 1, []float64{2.1, 3.9, 6.2, 7.8, 10.1})

	lr := NewLinearRegression()
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	score, err := lr.Score(X, y)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	// ほぼ直線のデータなのでR²は1に近い
	if score < 0.99 {
		t.Errorf("Score() = %v, want > 0.99", score)
	}
}

func TestLinearRegressionWithoutIntercept(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewDense(3, 1, []float64{2, 4, 6})

	lr := NewLinearRegression(WithFitIntercept(false))
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	if lr.InterceptValue() != 0 {
		t.Errorf("InterceptValue() = %v, want 0", lr.InterceptValue())
	}
	if w := lr.Weights(); math.Abs(w[0]-2.0) > 1e-8 {
		t.Errorf("Weights()[0] = %v, want 2.0", w[0])
	}
}

func TestLinearRegressionErrors(t *testing.T) {
	lr := NewLinearRegression()

	// 未学習でのPredictはNotFittedError
	if _, err := lr.Predict(mat.NewDense(1, 1, []float64{1})); err == nil {
		t.Error("Predict() before Fit() should fail")
	} else {
		var notFitted *errors.NotFittedError
		if !errors.As(err, &notFitted) {
			t.Errorf("Predict() error = %v, want NotFittedError", err)
		}
	}

	// 行数が合わない入力はDimensionError
	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	yBad := mat.NewDense(2, 1, []float64{1, 2})
	if err := lr.Fit(X, yBad); err == nil {
		t.Error("Fit() with mismatched rows should fail")
	} else {
		var dim *errors.DimensionError
		if !errors.As(err, &dim) {
			t.Errorf("Fit() error = %v, want DimensionError", err)
		}
	}

	// yが列ベクトルでない場合はValueError
	yWide := mat.NewDense(3, 2, nil)
	if err := lr.Fit(X, yWide); err == nil {
		t.Error("Fit() with non-column y should fail")
	}
}
