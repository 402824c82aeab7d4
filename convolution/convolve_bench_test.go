package convolution

import (
	"fmt"
	"testing"
)

func BenchmarkConvolve(b *testing.B) {
	sizes := []struct {
		rows, cols, channels int
	}{
		{32, 32, 1},
		{128, 128, 3},
		{512, 512, 3},
	}

	for _, size := range sizes {
		img := rampImage(size.rows, size.cols, size.channels)
		kernel := Gaussian3()

		name := fmt.Sprintf("%dx%dx%d", size.rows, size.cols, size.channels)
		b.Run(name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := Convolve(img, kernel, 1, 1)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkConvolveStride(b *testing.B) {
	img := rampImage(256, 256, 3)
	kernel := BoxBlur(5)

	for _, stride := range []int{1, 2, 4} {
		b.Run(fmt.Sprintf("stride%d", stride), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := Convolve(img, kernel, 2, stride)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
