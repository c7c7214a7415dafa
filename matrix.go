package qricon

import (
	"github.com/yeqown/go-qrcode/v2"
)

// Bitmap is a square grid of QR modules indexed as bitmap[y][x], true for
// dark cells.
type Bitmap [][]bool

// Size returns the side length of the bitmap in modules.
func (b Bitmap) Size() int { return len(b) }

// fromMatrix materializes the encoder's matrix into a plain bitmap of module
// states.
func fromMatrix(mat qrcode.Matrix) Bitmap {
	n := mat.Width()
	bitmap := make(Bitmap, n)
	for i := range bitmap {
		bitmap[i] = make([]bool, n)
	}

	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		bitmap[y][x] = v.IsSet()
	})

	return bitmap
}
