package convolution

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKernelSide(t *testing.T) {
	tests := []struct {
		name     string
		kernel   Kernel
		wantSide int
		wantOK   bool
	}{
		{name: "1x1", kernel: Identity(1), wantSide: 1, wantOK: true},
		{name: "3x3", kernel: Gaussian3(), wantSide: 3, wantOK: true},
		{name: "empty", kernel: Kernel{}, wantSide: 0, wantOK: false},
		{name: "ragged", kernel: Kernel{{1, 2}, {3}}, wantSide: 2, wantOK: false},
		{name: "wide", kernel: Kernel{{1, 2, 3}}, wantSide: 1, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side, ok := tt.kernel.Side()
			require.Equal(t, tt.wantSide, side)
			require.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestNamedKernelSums(t *testing.T) {
	// Smoothing kernels preserve brightness (sum 1); gradient kernels are
	// brightness-neutral (sum 0).
	require.InDelta(t, 1.0, BoxBlur(3).Sum(), 1e-12)
	require.InDelta(t, 1.0, BoxBlur(5).Sum(), 1e-12)
	require.InDelta(t, 1.0, Gaussian3().Sum(), 1e-12)
	require.InDelta(t, 1.0, Sharpen().Sum(), 1e-12)
	require.InDelta(t, 0.0, EdgeDetect().Sum(), 1e-12)
	require.InDelta(t, 0.0, SobelX().Sum(), 1e-12)
	require.InDelta(t, 0.0, SobelY().Sum(), 1e-12)
	require.InDelta(t, 1.0, Identity(5).Sum(), 1e-12)
}

func TestIdentityCenter(t *testing.T) {
	k := Identity(3)
	for i := range k {
		for j := range k[i] {
			want := 0.0
			if i == 1 && j == 1 {
				want = 1.0
			}
			require.Equal(t, want, k[i][j])
		}
	}
}

func TestEdgeDetectOnFlatImage(t *testing.T) {
	// A zero-sum kernel over a constant region yields zero response.
	img := NewImage(5, 5, 1)
	img.Fill(0.8)

	out, err := Convolve(img, EdgeDetect(), 0, 1)
	require.NoError(t, err)
	for _, v := range out.Raw() {
		require.InDelta(t, 0.0, v, 1e-12)
	}
}
