package qricon

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// ErrInvalidDimension means the target size cannot give every module at
// least one whole pixel.
var ErrInvalidDimension = errors.New("qricon: target size smaller than module count")

// Rasterize draws bitmap onto a square white canvas of at most targetSize
// pixels. Each dark module becomes a modulePixels×modulePixels black block
// where modulePixels = targetSize/N; the canvas side is snapped down to
// modulePixels*N so no module ever straddles a fractional pixel boundary,
// which would leave gaps a scanner cannot tolerate.
func Rasterize(bitmap Bitmap, targetSize int) (*image.RGBA, error) {
	n := bitmap.Size()
	if n < 1 {
		return nil, errors.Wrap(ErrInvalidDimension, "empty module bitmap")
	}

	modulePixels := targetSize / n
	if modulePixels < 1 {
		return nil, errors.Wrapf(ErrInvalidDimension, "%d modules into %d pixels", n, targetSize)
	}
	actualSize := modulePixels * n

	dc := gg.NewContext(actualSize, actualSize)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetColor(color.Black)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !bitmap[y][x] {
				continue
			}
			// Integer-aligned rectangles cover whole pixels, so the fill
			// stays pure black with no anti-aliased edges; anything outside
			// the canvas is clipped by the raster.
			dc.DrawRectangle(float64(x*modulePixels), float64(y*modulePixels),
				float64(modulePixels), float64(modulePixels))
		}
	}
	dc.Fill()

	return dc.Image().(*image.RGBA), nil
}
