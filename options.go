package qricon

import (
	"github.com/yeqown/go-qrcode/v2"
)

const (
	// _defaultCanvasSize is the pre-snap canvas side in pixels.
	_defaultCanvasSize = 400
	// _defaultIconDivisor bounds the icon to 1/5 of the rendered canvas.
	_defaultIconDivisor = 5
	// _defaultSafeMargin is the white clearance kept around the icon.
	_defaultSafeMargin = 5
)

type outputOptions struct {
	canvasSize   int
	iconDivisor  int
	safeMargin   int
	imageEncoder ImageEncoder
	encodeOpts   []qrcode.EncodeOption
}

func defaultOptions() *outputOptions {
	return &outputOptions{
		canvasSize:  _defaultCanvasSize,
		iconDivisor: _defaultIconDivisor,
		safeMargin:  _defaultSafeMargin,
		encodeOpts: []qrcode.EncodeOption{
			qrcode.WithEncodingMode(qrcode.EncModeByte),
			qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart),
		},
	}
}

// ImageOption modifies the rendering parameters of a Writer.
type ImageOption interface {
	apply(oo *outputOptions)
}

// funcOption wraps a function that modifies outputOptions into an
// implementation of the ImageOption interface.
type funcOption struct {
	f func(oo *outputOptions)
}

func (fo *funcOption) apply(oo *outputOptions) {
	fo.f(oo)
}

func newFuncOption(f func(oo *outputOptions)) *funcOption {
	return &funcOption{
		f: f,
	}
}

// WithCanvasSize sets the requested canvas side in pixels. The rendered
// image may come out slightly smaller: the side is rounded down to an exact
// multiple of the QR module count.
func WithCanvasSize(size int) ImageOption {
	return newFuncOption(func(oo *outputOptions) {
		if size < 1 {
			return
		}

		oo.canvasSize = size
	})
}

// WithIconDivisor bounds the icon to 1/divisor of the rendered canvas side.
func WithIconDivisor(divisor int) ImageOption {
	return newFuncOption(func(oo *outputOptions) {
		if divisor < 1 {
			return
		}

		oo.iconDivisor = divisor
	})
}

// WithSafeAreaMargin sets how many white pixels are kept on every side of
// the icon.
func WithSafeAreaMargin(margin int) ImageOption {
	return newFuncOption(func(oo *outputOptions) {
		if margin < 0 {
			return
		}

		oo.safeMargin = margin
	})
}

// WithImageEncoder overrides the encoder inferred from the output path's
// extension.
func WithImageEncoder(encoder ImageEncoder) ImageOption {
	return newFuncOption(func(oo *outputOptions) {
		if encoder == nil {
			return
		}

		oo.imageEncoder = encoder
	})
}

// WithEncodeOptions passes options through to the symbol encoder, e.g.
// qrcode.WithErrorCorrectionLevel. They are applied on top of the defaults
// (byte mode, quartile error correction).
func WithEncodeOptions(opts ...qrcode.EncodeOption) ImageOption {
	return newFuncOption(func(oo *outputOptions) {
		oo.encodeOpts = append(oo.encodeOpts, opts...)
	})
}
