// Package convolution implements the strided, zero-padded 2D convolution
// (cross-correlation, no kernel flip) used in the CNN session of the course.
//
// A single square kernel is applied independently to every channel of a
// multi-channel image, and the result is clamped to the unit interval so it
// stays displayable. The routine is written for clarity, not throughput; the
// only optimization is row-parallel execution for large outputs, which does
// not change results because every output cell is independent and the
// accumulation order inside each window is fixed.
//
// # Basic Usage
//
//	img := convolution.FromImage(decoded)
//
//	out, err := convolution.Convolve(img, convolution.Sharpen(), 1, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	png.Encode(w, out.ToImage())
//
// # Output Shape
//
// With image rows R, columns C, padding p, kernel side k, and stride s, the
// output has (R+2p-k)/s + 1 rows and (C+2p-k)/s + 1 columns (integer
// division). A stride that does not evenly divide the padded extent silently
// drops the trailing partial placements; it is not an error.
package convolution
