// Package mlschool provides the Go course material for an introductory
// machine learning workshop: an image convolution engine plus the
// supporting estimators, metrics and plotting utilities the exercises
// build on.
//
// The API follows scikit-learn conventions so that students coming from
// the Python ecosystem can map each Go call back to the notebook they
// already know.
//
// # Features
//
// - Image Convolution: 2D convolution with zero padding and stride
// - Linear Models: LinearRegression via the normal equations
// - Tree Ensembles: Gradient boosting inference from pretrained models
// - Evaluation Metrics: MSE, RMSE, MAE, R², accuracy
// - Plotting: Scatter, fit-line and residual plots
//
// # Quick Start
//
// Blurring an image with a 3x3 box kernel:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/Shibu778/iisc-ml-school/convolution"
//	)
//
//	func main() {
//	    img := convolution.NewImage(8, 8, 1)
//	    img.Fill(1.0)
//
//	    out, err := convolution.Convolve(img, convolution.BoxBlur(3), 1, 1)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    r, c, ch := out.Dims()
//	    fmt.Printf("output: %dx%dx%d\n", r, c, ch)
//	}
//
// # Packages
//
// The module is organized into several packages:
//
//   - convolution: Images, kernels and the convolution engine
//   - linear: Linear models (LinearRegression)
//   - ensemble: Gradient boosting and decision tree inference
//   - metrics: Evaluation metrics (MSE, RMSE, MAE, R², accuracy)
//   - preprocessing: StandardScaler and MinMaxScaler
//   - dataset: CSV loading, train/test split, synthetic data
//   - visualize: gonum/plot charts and PNG export
//   - core/model: Core interfaces and base types
//   - core/parallel: Parallel processing utilities
//
// Runnable demos for each exercise live under examples/.
package mlschool
