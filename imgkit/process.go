// Package imgkit carries the image I/O and scaling helpers the rendering
// pipeline delegates to.
package imgkit

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
)

// Read decodes the image at path. PNG, JPEG and BMP sources are recognized.
func Read(path string) (image.Image, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	return img, err
}

// Save writes img to path, as JPEG when the extension says so and as PNG
// otherwise.
func Save(img image.Image, path string) error {
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fd.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(fd, img, nil)
	default:
		return png.Encode(fd, img)
	}
}

// Scale resizes src into rect with the given scaler, flattening transparent
// sources onto a white background so the result is fully opaque. A nil
// scaler falls back to ApproxBiLinear.
func Scale(src image.Image, rect image.Rectangle, scale draw.Scaler) image.Image {
	if scale == nil {
		scale = draw.ApproxBiLinear
	}

	dst := image.NewRGBA(rect)
	draw.Draw(dst, rect, image.NewUniform(color.White), image.Point{}, draw.Src)
	scale.Scale(dst, rect, src, src.Bounds(), draw.Over, nil)
	return dst
}
