package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Fit",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "mlschool: Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Predict",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "mlschool: Predict: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			// ModelError型にキャスト可能か確認
			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("LinearRegression", "Predict")

	wantMsg := "mlschool: LinearRegression: this model is not fitted yet. Call Fit() before using Predict()"
	if err.Error() != wantMsg {
		t.Errorf("Error() = %v, want %v", err.Error(), wantMsg)
	}

	var notFitted *NotFittedError
	if !As(err, &notFitted) {
		t.Fatal("Error should be castable to *NotFittedError")
	}
	if notFitted.ModelName != "LinearRegression" {
		t.Errorf("ModelName = %v, want LinearRegression", notFitted.ModelName)
	}
}

func TestConvolutionErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		target  interface{}
		wantSub string
	}{
		{
			name:    "invalid dimensions",
			err:     NewInvalidDimensionsError("Convolve", 4, 4, 1, 5, 0),
			target:  new(*InvalidDimensionsError),
			wantSub: "kernel of size 5 does not fit image 4x4x1 with padding 0",
		},
		{
			name:    "invalid kernel",
			err:     NewInvalidKernelError("Convolve", "not square", 2, 3),
			target:  new(*InvalidKernelError),
			wantSub: "invalid kernel (not square): 2x3",
		},
		{
			name:    "invalid stride",
			err:     NewInvalidStrideError("Convolve", 0),
			target:  new(*InvalidStrideError),
			wantSub: "stride must be >= 1, got 0",
		},
		{
			name:    "invalid padding",
			err:     NewInvalidPaddingError("Convolve", -1),
			target:  new(*InvalidPaddingError),
			wantSub: "padding must be >= 0, got -1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.err.Error(), tt.wantSub) {
				t.Errorf("Error() = %v, want substring %v", tt.err.Error(), tt.wantSub)
			}

			if !As(tt.err, tt.target) {
				t.Errorf("Error should be castable to %T", tt.target)
			}

			// 各エラー種別は他の種別と区別できること
			var modelErr *ModelError
			if As(tt.err, &modelErr) {
				t.Error("Convolution error should not be castable to *ModelError")
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", tt.err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}
		})
	}
}

func TestWarningHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) {
		captured = w
	})
	defer SetWarningHandler(nil)

	w := NewUndefinedMetricWarning("R2Score", "total sum of squares is zero", 0.0)
	Warn(w)

	if captured == nil {
		t.Fatal("Warning handler was not called")
	}
	if !strings.Contains(captured.Error(), "R2Score") {
		t.Errorf("Warning = %v, want mention of R2Score", captured)
	}
}
