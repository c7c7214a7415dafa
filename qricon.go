// Package qricon renders a QR symbol for a text payload and composites an
// icon over its center. A white safe area is painted behind the icon so that
// no partially covered module survives around it and the symbol stays
// decodable.
package qricon

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"github.com/yeqown/go-qrcode/v2"

	"github.com/Mictilt/go-qricon/imgkit"
)

// Writer receives QR matrices from the symbol encoder and renders each one
// with the icon at iconPath composited over its center, persisting the result
// at outputPath. It implements qrcode.Writer.
type Writer struct {
	iconPath   string
	outputPath string
	opt        *outputOptions
}

// New creates a Writer. Unless WithImageEncoder is given, the output format
// is inferred from outputPath's extension (png, jpg/jpeg or svg).
func New(iconPath, outputPath string, opts ...ImageOption) (*Writer, error) {
	oo := defaultOptions()
	for _, o := range opts {
		o.apply(oo)
	}

	if oo.imageEncoder == nil {
		enc, err := encoderForPath(outputPath)
		if err != nil {
			return nil, err
		}
		oo.imageEncoder = enc
	}

	return &Writer{
		iconPath:   iconPath,
		outputPath: outputPath,
		opt:        oo,
	}, nil
}

// Write runs the rendering pipeline for one matrix: rasterize the modules,
// load and prepare the icon, composite, encode. The encoded image is buffered
// and persisted with a single write, so a failing run never leaves a partial
// output file behind.
func (w *Writer) Write(mat qrcode.Matrix) error {
	canvas, err := Rasterize(fromMatrix(mat), w.opt.canvasSize)
	if err != nil {
		return err
	}

	src, err := imgkit.Read(w.iconPath)
	if err != nil {
		return errors.Wrapf(err, "load icon %s", w.iconPath)
	}

	// The icon bound tracks the snapped canvas side, not the requested size.
	bound := canvas.Bounds().Dx() / w.opt.iconDivisor
	icon, err := PrepareIcon(src, bound)
	if err != nil {
		return err
	}

	final, err := Composite(canvas, icon, w.opt.safeMargin)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = w.opt.imageEncoder.Encode(&buf, final); err != nil {
		return errors.Wrap(err, "encode output image")
	}
	if err = os.WriteFile(w.outputPath, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", w.outputPath)
	}

	return nil
}

// Close implements qrcode.Writer. The Writer holds no resources open between
// calls.
func (w *Writer) Close() error { return nil }

// Generate encodes payload as a QR symbol, overlays the icon at iconPath on
// its center and writes the result to outputPath.
func Generate(payload, iconPath, outputPath string, opts ...ImageOption) error {
	w, err := New(iconPath, outputPath, opts...)
	if err != nil {
		return err
	}

	qrc, err := qrcode.NewWith(payload, w.opt.encodeOpts...)
	if err != nil {
		return errors.Wrap(err, "encode payload")
	}

	return qrc.Save(w)
}
