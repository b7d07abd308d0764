package images

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const thumbnailQuality = 80

// IsSupported reports whether an uploaded content type gets a thumbnail.
func IsSupported(contentType string) bool {
	return contentType == "image/png" || contentType == "image/jpeg"
}

// Thumbnail decodes a PNG or JPEG and re-encodes a webp preview whose
// longest edge is maxEdge pixels. Images already small enough keep their size.
func Thumbnail(data []byte, maxEdge int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxEdge || h > maxEdge {
		if w >= h {
			h = h * maxEdge / w
			w = maxEdge
		} else {
			w = w * maxEdge / h
			h = maxEdge
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	return webp.EncodeRGBA(dst, thumbnailQuality)
}
