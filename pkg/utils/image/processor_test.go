package image

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	return img
}

func TestProcessImage_PNG(t *testing.T) {
	var src bytes.Buffer
	require.NoError(t, png.Encode(&src, sampleImage()))

	out, err := ProcessImage(&src)
	require.NoError(t, err)

	assert.Equal(t, "image/png", out.ContentType)
	assert.Equal(t, ".png", out.Extension)
	assert.Equal(t, 4, out.Width)
	assert.Equal(t, 3, out.Height)
	assert.NotZero(t, out.Body.Len())
}

func TestProcessImage_WEBP(t *testing.T) {
	var src bytes.Buffer
	require.NoError(t, webp.Encode(&src, sampleImage(), &webp.Options{Lossless: true}))

	out, err := ProcessImage(&src)
	require.NoError(t, err)
	assert.Equal(t, "image/webp", out.ContentType)
	assert.Equal(t, ".webp", out.Extension)
}

func TestProcessImage_RejectsGarbage(t *testing.T) {
	_, err := ProcessImage(strings.NewReader("definitely not an image"))
	assert.Error(t, err)
}

func TestProcessImage_RejectsOversizedDimensions(t *testing.T) {
	var src bytes.Buffer
	require.NoError(t, png.Encode(&src, image.NewGray(image.Rect(0, 0, MaxDimension+1, 1))))

	_, err := ProcessImage(&src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max side")
}

func TestProcessImage_RejectsOversizedInput(t *testing.T) {
	_, err := ProcessImage(bytes.NewReader(make([]byte, MaxInputBytes+1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "larger than")
}
