package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeWebpBounds(t *testing.T, data []byte) (int, int) {
	t.Helper()

	img, err := webp.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestThumbnailScalesLongestEdge(t *testing.T) {
	thumb, err := Thumbnail(encodePNG(t, 640, 480), 320)
	require.NoError(t, err)

	w, h := decodeWebpBounds(t, thumb)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestThumbnailPortraitOrientation(t *testing.T) {
	thumb, err := Thumbnail(encodePNG(t, 200, 800), 320)
	require.NoError(t, err)

	w, h := decodeWebpBounds(t, thumb)
	assert.Equal(t, 80, w)
	assert.Equal(t, 320, h)
}

func TestThumbnailKeepsSmallImages(t *testing.T) {
	thumb, err := Thumbnail(encodePNG(t, 100, 80), 320)
	require.NoError(t, err)

	w, h := decodeWebpBounds(t, thumb)
	assert.Equal(t, 100, w)
	assert.Equal(t, 80, h)
}

func TestThumbnailRejectsGarbage(t *testing.T) {
	_, err := Thumbnail([]byte("not an image"), 320)
	require.Error(t, err)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("image/png"))
	assert.True(t, IsSupported("image/jpeg"))
	assert.False(t, IsSupported("image/gif"))
	assert.False(t, IsSupported("application/pdf"))
}
