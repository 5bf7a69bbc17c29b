// Package imaging downscales images before upload. The server stores
// images as JPEG data URLs, so the client shrinks anything larger than the
// bounding edge and re-encodes locally instead of shipping full-size
// originals.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"

	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/png"
)

const (
	// DefaultMaxEdge bounds the longer image edge after downscaling.
	DefaultMaxEdge = 800
	// DefaultQuality is the JPEG quality used for re-encoding.
	DefaultQuality = 80
)

// DataURL reads an image from r, scales it down so that neither edge
// exceeds maxEdge (images already small enough are only re-encoded, never
// upscaled) and returns it as a "data:image/jpeg;base64,..." string ready
// for the API.
func DataURL(r io.Reader, maxEdge, quality int) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return "", fmt.Errorf("empty image")
	}

	if w > maxEdge || h > maxEdge {
		ratio := float64(maxEdge) / float64(w)
		if h > w {
			ratio = float64(maxEdge) / float64(h)
		}
		dw := int(float64(w) * ratio)
		dh := int(float64(h) * ratio)
		if dw < 1 {
			dw = 1
		}
		if dh < 1 {
			dh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("encoding jpeg: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// FileDataURL is DataURL for a file on disk, with the default bounds.
func FileDataURL(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	return DataURL(f, DefaultMaxEdge, DefaultQuality)
}
