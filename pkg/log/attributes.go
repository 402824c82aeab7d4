// Package log defines standard attribute keys for course library operations.
//
// Using these keys keeps log output consistent across packages, which makes
// filtering by model, operation, or data shape straightforward. The keys
// follow a hierarchical naming convention (e.g. "model.name", "data.samples",
// "conv.stride").

package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of model or transformer.
	// Examples: "LinearRegression", "GradientBoostingRegressor", "MinMaxScaler"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "score", "convolve"
	OperationKey = "ml.operation"
)

// Tabular data shape.
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// DatasetKey names the dataset file or generator in use.
	DatasetKey = "data.name"
)

// Image and convolution shape.
const (
	// ImageRowsKey indicates the spatial row count of an image.
	ImageRowsKey = "image.rows"

	// ImageColsKey indicates the spatial column count of an image.
	ImageColsKey = "image.cols"

	// ImageChannelsKey indicates the channel count of an image.
	ImageChannelsKey = "image.channels"

	// KernelSizeKey records the side length of a convolution kernel.
	KernelSizeKey = "conv.kernel_size"

	// PaddingKey records the zero-padding applied to each image border.
	PaddingKey = "conv.padding"

	// StrideKey records the step between successive kernel placements.
	StrideKey = "conv.stride"
)

// Metrics and performance.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// MSEKey records mean squared error for evaluation operations.
	MSEKey = "metrics.mse"

	// R2ScoreKey records the coefficient of determination for regression.
	R2ScoreKey = "metrics.r2_score"
)

// Standard attribute value constants for common operations.
const (
	OperationFit          = "fit"
	OperationPredict      = "predict"
	OperationTransform    = "transform"
	OperationFitTransform = "fit_transform"
	OperationScore        = "score"
	OperationConvolve     = "convolve"
)
