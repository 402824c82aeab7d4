package convolution

import (
	"github.com/Shibu778/iisc-ml-school/core/parallel"
	"github.com/Shibu778/iisc-ml-school/pkg/errors"
)

// rowParallelThreshold is the output row count below which Convolve runs
// sequentially. Small outputs do not amortize goroutine startup.
const rowParallelThreshold = 32

// Convolve computes the strided, zero-padded cross-correlation of img with
// kernel, applying the kernel independently to every channel, and clamps the
// result to [0, 1].
//
// The image is conceptually padded with `padding` rows and columns of zeros
// on each border; the kernel then slides over the padded extent in steps of
// `stride`, producing output dimensions (R+2p-k)/s + 1 by (C+2p-k)/s + 1
// (integer division, trailing partial placements dropped). The padded array
// is never materialized: out-of-bounds accesses substitute 0.0, with the
// multiply-accumulate still performed for every kernel cell so results match
// the materialized form bit for bit. Within each window the accumulation
// runs in row-major kernel order regardless of parallelism, so identical
// inputs always produce identical outputs.
//
// The input is read-only; the returned image is freshly allocated and owned
// by the caller.
//
// Errors: InvalidKernelError for a ragged or empty kernel,
// InvalidPaddingError for padding < 0, InvalidStrideError for stride < 1,
// and InvalidDimensionsError when the kernel cannot fit even once in the
// padded extent (or the image itself is degenerate).
func Convolve(img *Image, kernel Kernel, padding, stride int) (*Image, error) {
	const op = "Convolve"

	side, ok := kernel.Side()
	if !ok {
		kRows := len(kernel)
		kCols := 0
		if kRows > 0 {
			kCols = len(kernel[0])
		}
		reason := "empty kernel"
		if kRows > 0 {
			reason = "not square"
		}
		return nil, errors.NewInvalidKernelError(op, reason, kRows, kCols)
	}
	if padding < 0 {
		return nil, errors.NewInvalidPaddingError(op, padding)
	}
	if stride < 1 {
		return nil, errors.NewInvalidStrideError(op, stride)
	}

	if img == nil {
		return nil, errors.NewInvalidDimensionsError(op, 0, 0, 0, side, padding)
	}
	rows, cols, channels := img.Dims()
	if rows < 1 || cols < 1 || channels < 1 {
		return nil, errors.NewInvalidDimensionsError(op, rows, cols, channels, side, padding)
	}
	if rows+2*padding-side < 0 || cols+2*padding-side < 0 {
		return nil, errors.NewInvalidDimensionsError(op, rows, cols, channels, side, padding)
	}

	rowsOut := (rows+2*padding-side)/stride + 1
	colsOut := (cols+2*padding-side)/stride + 1
	out := NewImage(rowsOut, colsOut, channels)

	// Each worker owns a disjoint range of output rows, so there is no
	// shared mutable state between goroutines.
	parallel.ParallelizeWithThreshold(rowsOut, rowParallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < colsOut; j++ {
				for ch := 0; ch < channels; ch++ {
					// Fixed row-major (a, b) accumulation order. Padding
					// cells contribute an explicit 0.0 term to keep the sum
					// bit-identical to a materialized padded image.
					var acc float64
					for a := 0; a < side; a++ {
						srcRow := i*stride + a - padding
						for b := 0; b < side; b++ {
							srcCol := j*stride + b - padding
							var v float64
							if srcRow >= 0 && srcRow < rows && srcCol >= 0 && srcCol < cols {
								v = img.At(srcRow, srcCol, ch)
							}
							acc += kernel[a][b] * v
						}
					}
					out.Set(i, j, ch, acc)
				}
			}
		}
	})

	// Clamp to the displayable unit interval in a separate pass, after all
	// channels of all pixels have been computed.
	data := out.Raw()
	for i, v := range data {
		if v < 0 {
			data[i] = 0
		} else if v > 1 {
			data[i] = 1
		}
	}

	return out, nil
}
