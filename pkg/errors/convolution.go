package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	畳み込み演算特有のエラー型
//
// ===========================================================================

// InvalidDimensionsError はパディング後の画像にカーネルが一度も収まらない場合のエラーです。
// R + 2p - k < 0 または C + 2p - k < 0 のとき、および画像自体が退化している
// （行数・列数・チャンネル数が1未満の）ときに発生します。
type InvalidDimensionsError struct {
	Op         string
	Rows       int
	Cols       int
	Channels   int
	KernelSize int
	Padding    int
}

func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("mlschool: %s: kernel of size %d does not fit image %dx%dx%d with padding %d",
		e.Op, e.KernelSize, e.Rows, e.Cols, e.Channels, e.Padding)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidDimensionsError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("image_rows", e.Rows).
		Int("image_cols", e.Cols).
		Int("image_channels", e.Channels).
		Int("kernel_size", e.KernelSize).
		Int("padding", e.Padding).
		Str("type", "InvalidDimensionsError")
}

// NewInvalidDimensionsError は新しいInvalidDimensionsErrorを作成し、スタックトレースを付与します。
func NewInvalidDimensionsError(op string, rows, cols, channels, kernelSize, padding int) error {
	err := &InvalidDimensionsError{Op: op, Rows: rows, Cols: cols, Channels: channels, KernelSize: kernelSize, Padding: padding}
	return errors.WithStack(err)
}

// InvalidKernelError はカーネルが正方でない、または辺の長さが0の場合のエラーです。
type InvalidKernelError struct {
	Op     string
	Reason string
	Rows   int
	Cols   int
}

func (e *InvalidKernelError) Error() string {
	return fmt.Sprintf("mlschool: %s: invalid kernel (%s): %dx%d", e.Op, e.Reason, e.Rows, e.Cols)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidKernelError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Int("kernel_rows", e.Rows).
		Int("kernel_cols", e.Cols).
		Str("type", "InvalidKernelError")
}

// NewInvalidKernelError は新しいInvalidKernelErrorを作成し、スタックトレースを付与します。
func NewInvalidKernelError(op, reason string, rows, cols int) error {
	err := &InvalidKernelError{Op: op, Reason: reason, Rows: rows, Cols: cols}
	return errors.WithStack(err)
}

// InvalidStrideError はストライドが1未満の場合のエラーです。
type InvalidStrideError struct {
	Op     string
	Stride int
}

func (e *InvalidStrideError) Error() string {
	return fmt.Sprintf("mlschool: %s: stride must be >= 1, got %d", e.Op, e.Stride)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidStrideError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("stride", e.Stride).
		Str("type", "InvalidStrideError")
}

// NewInvalidStrideError は新しいInvalidStrideErrorを作成し、スタックトレースを付与します。
func NewInvalidStrideError(op string, stride int) error {
	err := &InvalidStrideError{Op: op, Stride: stride}
	return errors.WithStack(err)
}

// InvalidPaddingError はパディングが負の場合のエラーです。
type InvalidPaddingError struct {
	Op      string
	Padding int
}

func (e *InvalidPaddingError) Error() string {
	return fmt.Sprintf("mlschool: %s: padding must be >= 0, got %d", e.Op, e.Padding)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidPaddingError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("padding", e.Padding).
		Str("type", "InvalidPaddingError")
}

// NewInvalidPaddingError は新しいInvalidPaddingErrorを作成し、スタックトレースを付与します。
func NewInvalidPaddingError(op string, padding int) error {
	err := &InvalidPaddingError{Op: op, Padding: padding}
	return errors.WithStack(err)
}
