package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 10, G: 120, B: 200, A: 255})
		}
	}
	return img
}

func TestFit_ShrinksKeepingAspectRatio(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, solid(400, 200), nil))

	res, err := NewProcessor(80).Fit(&buf, Square("thumbnail", 150))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", res.Format)
	assert.Equal(t, "image/jpeg", res.ContentType())
	assert.Equal(t, "jpg", res.Extension())
	assert.Equal(t, 150, res.Width)
	assert.Equal(t, 75, res.Height)

	decoded, _, err := image.Decode(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.Equal(t, 150, decoded.Bounds().Dx())
}

func TestFit_DoesNotUpscale(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(40, 30)))

	res, err := NewProcessor(0).Fit(&buf, SizeLarge)
	require.NoError(t, err)
	assert.Equal(t, "png", res.Format)
	assert.Equal(t, "image/png", res.ContentType())
	assert.Equal(t, 40, res.Width)
	assert.Equal(t, 30, res.Height)
}

func TestFit_RejectsNonImages(t *testing.T) {
	_, err := NewProcessor(85).Fit(strings.NewReader("definitely not an image"), Square("medium", 800))
	assert.ErrorContains(t, err, "failed to decode image")
}
