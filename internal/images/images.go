// Package images validates and normalizes uploaded product photos before
// they reach the asset store: JPEG/PNG/WebP in, a square WebP out.
package images

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	xwebp "golang.org/x/image/webp"
)

const (
	MaxUploadBytes = 5 * 1024 * 1024

	// Output geometry, matching what the catalog renders.
	outputSize = 800
)

var (
	ErrTooLarge        = errors.New("image exceeds the 5MB upload limit")
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrDecode          = errors.New("image data could not be decoded")
)

// Validate checks size and sniffed content type without decoding pixels.
func Validate(data []byte) error {
	if len(data) > MaxUploadBytes {
		return ErrTooLarge
	}

	switch http.DetectContentType(data) {
	case "image/jpeg", "image/png", "image/webp":
		return nil
	}
	return ErrUnsupportedType
}

// Process validates, decodes, center-crops to a square, scales to the
// catalog size and re-encodes as WebP. Returns the encoded bytes and the
// output content type.
func Process(data []byte) ([]byte, string, error) {
	if err := Validate(data); err != nil {
		return nil, "", err
	}

	var (
		src image.Image
		err error
	)
	switch http.DetectContentType(data) {
	case "image/jpeg":
		src, err = jpeg.Decode(bytes.NewReader(data))
	case "image/png":
		src, err = png.Decode(bytes.NewReader(data))
	case "image/webp":
		src, err = xwebp.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, "", ErrDecode
	}

	dst := image.NewRGBA(image.Rect(0, 0, outputSize, outputSize))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, centerSquare(src.Bounds()), xdraw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 85}); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), "image/webp", nil
}

// centerSquare picks the largest centered square inside bounds, so scaling
// behaves as a crop-fill rather than a distorting stretch.
func centerSquare(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	if w == h {
		return b
	}
	if w > h {
		off := (w - h) / 2
		return image.Rect(b.Min.X+off, b.Min.Y, b.Min.X+off+h, b.Max.Y)
	}
	off := (h - w) / 2
	return image.Rect(b.Min.X, b.Min.Y+off, b.Max.X, b.Min.Y+off+w)
}
