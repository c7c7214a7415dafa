package qricon

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// ErrIconTooLarge means the prepared icon does not fit on the canvas.
var ErrIconTooLarge = errors.New("qricon: icon exceeds canvas bounds")

// Composite centers icon on canvas with a white square painted behind it
// first, keeping margin pixels of white clearance on every side of the
// icon's bounding box. The icon is copied opaquely on top; the patch square
// uses the icon's larger dimension so rectangular icons keep full clearance
// in both directions.
func Composite(canvas *image.RGBA, icon image.Image, margin int) (image.Image, error) {
	canvasW, canvasH := canvas.Bounds().Dx(), canvas.Bounds().Dy()
	iconW, iconH := icon.Bounds().Dx(), icon.Bounds().Dy()
	if iconW > canvasW || iconH > canvasH {
		return nil, errors.Wrapf(ErrIconTooLarge, "icon %dx%d on canvas %dx%d",
			iconW, iconH, canvasW, canvasH)
	}
	if margin < 0 {
		margin = 0
	}

	xOffset := (canvasW - iconW) / 2
	yOffset := (canvasH - iconH) / 2

	side := iconW
	if iconH > side {
		side = iconH
	}
	side += 2 * margin

	// Anchor the patch on the icon center; clamp at the top-left so a large
	// icon near the edge never writes out of bounds, and let the raster clip
	// the far edges.
	bgX := xOffset + iconW/2 - side/2
	bgY := yOffset + iconH/2 - side/2
	if bgX < 0 {
		bgX = 0
	}
	if bgY < 0 {
		bgY = 0
	}

	dc := gg.NewContextForRGBA(canvas)
	dc.SetColor(color.White)
	dc.DrawRectangle(float64(bgX), float64(bgY), float64(side), float64(side))
	dc.Fill()

	dc.DrawImage(icon, xOffset, yOffset)

	return dc.Image(), nil
}
