package convolution

import (
	"image"
	"image/color"
)

// Image is a dense (row, column, channel) volume of float64 samples.
// All channels share the same spatial dimensions. Values are typically in
// [0, 1] when the image came from a decoded picture, but any finite value
// is allowed as input to Convolve.
type Image struct {
	rows     int
	cols     int
	channels int
	data     []float64 // row-major, channel-interleaved
}

// NewImage allocates a zero-filled image of the given shape.
// Shape arguments smaller than 1 are brought up in Convolve's validation,
// not here, so tests can build degenerate images on purpose.
func NewImage(rows, cols, channels int) *Image {
	size := rows * cols * channels
	if size < 0 {
		size = 0
	}
	return &Image{
		rows:     rows,
		cols:     cols,
		channels: channels,
		data:     make([]float64, size),
	}
}

// NewImageFrom builds an image from a row-major, channel-interleaved slice.
// The slice is copied; the caller keeps ownership of data.
func NewImageFrom(rows, cols, channels int, data []float64) *Image {
	img := NewImage(rows, cols, channels)
	copy(img.data, data)
	return img
}

// Dims returns (rows, cols, channels).
func (m *Image) Dims() (rows, cols, channels int) {
	return m.rows, m.cols, m.channels
}

// At returns the sample at (row i, column j, channel ch).
func (m *Image) At(i, j, ch int) float64 {
	return m.data[(i*m.cols+j)*m.channels+ch]
}

// Set stores v at (row i, column j, channel ch).
func (m *Image) Set(i, j, ch int, v float64) {
	m.data[(i*m.cols+j)*m.channels+ch] = v
}

// Fill sets every sample of every channel to v.
func (m *Image) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// FillChannel sets every sample of one channel to v.
func (m *Image) FillChannel(ch int, v float64) {
	for i := ch; i < len(m.data); i += m.channels {
		m.data[i] = v
	}
}

// Clone returns a deep copy sharing no storage with the receiver.
func (m *Image) Clone() *Image {
	return NewImageFrom(m.rows, m.cols, m.channels, m.data)
}

// Raw returns the backing slice (row-major, channel-interleaved).
// Mutating it mutates the image.
func (m *Image) Raw() []float64 {
	return m.data
}

// FromImage converts a decoded Go image into a float64 volume with samples
// scaled to [0, 1]. Grayscale sources become a single channel; everything
// else becomes three channels (R, G, B). Alpha is dropped.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	rows := bounds.Dy()
	cols := bounds.Dx()

	if gray, ok := src.(*image.Gray); ok {
		img := NewImage(rows, cols, 1)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				v := gray.GrayAt(bounds.Min.X+j, bounds.Min.Y+i).Y
				img.Set(i, j, 0, float64(v)/255.0)
			}
		}
		return img
	}

	img := NewImage(rows, cols, 3)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			r, g, b, _ := src.At(bounds.Min.X+j, bounds.Min.Y+i).RGBA()
			img.Set(i, j, 0, float64(r)/65535.0)
			img.Set(i, j, 1, float64(g)/65535.0)
			img.Set(i, j, 2, float64(b)/65535.0)
		}
	}
	return img
}

// ToImage renders the volume back into a Go image, mapping [0, 1] to the
// 8-bit range. A single channel renders as grayscale; with two or more
// channels the first three are taken as R, G, B (a missing blue channel
// renders as 0).
func (m *Image) ToImage() image.Image {
	if m.channels == 1 {
		out := image.NewGray(image.Rect(0, 0, m.cols, m.rows))
		for i := 0; i < m.rows; i++ {
			for j := 0; j < m.cols; j++ {
				out.SetGray(j, i, color.Gray{Y: toByte(m.At(i, j, 0))})
			}
		}
		return out
	}

	out := image.NewNRGBA(image.Rect(0, 0, m.cols, m.rows))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			var rgb [3]uint8
			for ch := 0; ch < 3 && ch < m.channels; ch++ {
				rgb[ch] = toByte(m.At(i, j, ch))
			}
			out.SetNRGBA(j, i, color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
		}
	}
	return out
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
