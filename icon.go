package qricon

import (
	"image"

	"github.com/pkg/errors"
	drawpkg "golang.org/x/image/draw"

	"github.com/Mictilt/go-qricon/imgkit"
)

// PrepareIcon scales src to fit a maxSize×maxSize bounding box, keeping its
// aspect ratio; the larger dimension lands exactly on maxSize. CatmullRom
// keeps edges crisp at the small sizes icons end up with, and the result is
// flattened onto white so the compositor can copy it opaquely.
func PrepareIcon(src image.Image, maxSize int) (image.Image, error) {
	if maxSize < 1 {
		return nil, errors.Wrapf(ErrInvalidDimension, "icon bound %d", maxSize)
	}

	srcW := float64(src.Bounds().Dx())
	srcH := float64(src.Bounds().Dy())
	if srcW == 0 || srcH == 0 {
		return nil, errors.New("qricon: icon image is empty")
	}

	var width, height int
	if srcW > srcH {
		width = maxSize
		height = int(float64(maxSize) * srcH / srcW)
	} else {
		height = maxSize
		width = int(float64(maxSize) * srcW / srcH)
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	return imgkit.Scale(src, image.Rect(0, 0, width, height), drawpkg.CatmullRom), nil
}
