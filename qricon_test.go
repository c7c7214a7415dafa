package qricon_test

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeqown/go-qrcode/v2"

	qricon "github.com/Mictilt/go-qricon"
	"github.com/Mictilt/go-qricon/imgkit"
)

func writeTestIcon(t *testing.T, path string, w, h int) {
	t.Helper()
	icon := solidRGBA(w, h, color.RGBA{R: 0xff, A: 0xff})
	require.NoError(t, imgkit.Save(icon, path))
}

// dimWriter captures the module count of the encoded symbol.
type dimWriter struct{ n int }

func (d *dimWriter) Write(mat qrcode.Matrix) error {
	d.n = mat.Width()
	return nil
}

func (d *dimWriter) Close() error { return nil }

func encoderDimension(t *testing.T, payload string) int {
	t.Helper()
	qrc, err := qrcode.NewWith(payload,
		qrcode.WithEncodingMode(qrcode.EncModeByte),
		qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart),
	)
	require.NoError(t, err)

	w := &dimWriter{}
	require.NoError(t, qrc.Save(w))
	return w.n
}

func TestGenerate_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	iconPath := filepath.Join(dir, "icon.png")
	outputPath := filepath.Join(dir, "out.png")
	writeTestIcon(t, iconPath, 100, 100)

	const payload = "https://example.com"
	require.NoError(t, qricon.Generate(payload, iconPath, outputPath))

	out, err := imgkit.Read(outputPath)
	require.NoError(t, err)

	side := out.Bounds().Dx()
	assert.Equal(t, side, out.Bounds().Dy(), "output must be square")
	assert.Zero(t, side%encoderDimension(t, payload), "side must be a module multiple")

	// Center region: icon bound plus margin must hold no pure black pixel.
	bound := side / 5
	x0 := (side - bound) / 2
	for y := x0 - 5; y < x0+bound+5; y++ {
		for x := x0 - 5; x < x0+bound+5; x++ {
			assert.False(t, isBlack(out.At(x, y)), "pixel (%d,%d) inside safe area", x, y)
		}
	}
	assert.True(t, isRed(out.At(side/2, side/2)), "icon pixel at the center")
}

func TestGenerate_Deterministic(t *testing.T) {
	dir := t.TempDir()
	iconPath := filepath.Join(dir, "icon.png")
	writeTestIcon(t, iconPath, 64, 64)

	first := filepath.Join(dir, "a.png")
	second := filepath.Join(dir, "b.png")
	require.NoError(t, qricon.Generate("https://example.com", iconPath, first))
	require.NoError(t, qricon.Generate("https://example.com", iconPath, second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_Options(t *testing.T) {
	dir := t.TempDir()
	iconPath := filepath.Join(dir, "icon.png")
	outputPath := filepath.Join(dir, "out.png")
	writeTestIcon(t, iconPath, 100, 100)

	const payload = "https://example.com"
	require.NoError(t, qricon.Generate(payload, iconPath, outputPath,
		qricon.WithCanvasSize(800),
		qricon.WithIconDivisor(4),
		qricon.WithSafeAreaMargin(2),
	))

	out, err := imgkit.Read(outputPath)
	require.NoError(t, err)

	dim := encoderDimension(t, payload)
	assert.Equal(t, 800/dim*dim, out.Bounds().Dx())
}

func TestGenerate_JPEGAndSVGOutputs(t *testing.T) {
	dir := t.TempDir()
	iconPath := filepath.Join(dir, "icon.png")
	writeTestIcon(t, iconPath, 50, 50)

	jpgPath := filepath.Join(dir, "out.jpg")
	require.NoError(t, qricon.Generate("https://example.com", iconPath, jpgPath))
	out, err := imgkit.Read(jpgPath)
	require.NoError(t, err)
	assert.Equal(t, out.Bounds().Dx(), out.Bounds().Dy())

	svgPath := filepath.Join(dir, "out.svg")
	require.NoError(t, qricon.Generate("https://example.com", iconPath, svgPath))
	raw, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<svg")
	assert.Contains(t, string(raw), "data:image/png;base64,")
}

func TestGenerate_MissingIconWritesNothing(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "out.png")

	err := qricon.Generate("https://example.com", filepath.Join(dir, "nope.png"), outputPath)
	require.Error(t, err)

	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr), "no output may be written on failure")
}

func TestGenerate_PayloadOverCapacityWritesNothing(t *testing.T) {
	dir := t.TempDir()
	iconPath := filepath.Join(dir, "icon.png")
	outputPath := filepath.Join(dir, "out.png")
	writeTestIcon(t, iconPath, 10, 10)

	err := qricon.Generate(strings.Repeat("A", 5000), iconPath, outputPath)
	require.Error(t, err)

	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerate_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	iconPath := filepath.Join(dir, "icon.png")
	writeTestIcon(t, iconPath, 10, 10)

	err := qricon.Generate("https://example.com", iconPath, filepath.Join(dir, "out.gif"))
	assert.ErrorIs(t, err, qricon.ErrUnsupportedFormat)
}
