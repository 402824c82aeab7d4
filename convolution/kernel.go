package convolution

// Kernel is a square matrix of weights shared read-only across all channels
// of an image. Kernels are indexed [row][col].
type Kernel [][]float64

// NewKernel allocates a zero-filled side x side kernel.
func NewKernel(side int) Kernel {
	k := make(Kernel, side)
	for i := range k {
		k[i] = make([]float64, side)
	}
	return k
}

// Side returns the side length and whether the kernel is square with a
// positive side. A ragged or empty kernel reports ok == false.
func (k Kernel) Side() (side int, ok bool) {
	side = len(k)
	if side == 0 {
		return 0, false
	}
	for _, row := range k {
		if len(row) != side {
			return side, false
		}
	}
	return side, true
}

// Sum returns the sum of all weights.
func (k Kernel) Sum() float64 {
	var s float64
	for _, row := range k {
		for _, v := range row {
			s += v
		}
	}
	return s
}

// Identity returns a side x side kernel whose center weight is 1. With
// padding (side-1)/2 and stride 1 it reproduces the input. Side should be
// odd so the kernel has a center; an even side uses the upper-left of the
// two middle cells.
func Identity(side int) Kernel {
	k := NewKernel(side)
	k[(side-1)/2][(side-1)/2] = 1.0
	return k
}

// BoxBlur returns a side x side averaging kernel (all weights 1/side²).
func BoxBlur(side int) Kernel {
	k := NewKernel(side)
	w := 1.0 / float64(side*side)
	for i := range k {
		for j := range k[i] {
			k[i][j] = w
		}
	}
	return k
}

// Gaussian3 returns the standard 3x3 Gaussian smoothing kernel.
func Gaussian3() Kernel {
	return Kernel{
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
		{2.0 / 16, 4.0 / 16, 2.0 / 16},
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
	}
}

// Sharpen returns the 3x3 sharpening kernel.
func Sharpen() Kernel {
	return Kernel{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	}
}

// EdgeDetect returns the 3x3 Laplacian edge-detection kernel.
func EdgeDetect() Kernel {
	return Kernel{
		{-1, -1, -1},
		{-1, 8, -1},
		{-1, -1, -1},
	}
}

// SobelX returns the horizontal Sobel gradient kernel.
func SobelX() Kernel {
	return Kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
}

// SobelY returns the vertical Sobel gradient kernel.
func SobelY() Kernel {
	return Kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
}
