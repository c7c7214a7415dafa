package qricon

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	svgo "github.com/ajstarks/svgo"
	"github.com/pkg/errors"
)

// ErrUnsupportedFormat means the output path's extension maps to no known
// image encoder.
var ErrUnsupportedFormat = errors.New("qricon: unsupported output format")

// ImageEncoder is an interface which describes the rule how to encode
// image.Image into io.Writer.
type ImageEncoder interface {
	Encode(w io.Writer, img image.Image) error
}

type jpegEncoder struct{}

func (jpegEncoder) Encode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, nil)
}

type pngEncoder struct{}

func (pngEncoder) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// svgEncoder wraps the composited raster in an SVG document, embedded as a
// base64 PNG image element.
type svgEncoder struct{}

func (svgEncoder) Encode(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	canvas := svgo.New(w)
	canvas.Start(width, height)
	href := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	canvas.Image(0, 0, width, height, href)
	canvas.End()

	return nil
}

// encoderForPath picks the encoder matching path's extension.
func encoderForPath(path string) (ImageEncoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpegEncoder{}, nil
	case ".png":
		return pngEncoder{}, nil
	case ".svg":
		return svgEncoder{}, nil
	}

	return nil, errors.Wrap(ErrUnsupportedFormat, path)
}
