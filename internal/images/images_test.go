package images

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestValidate_AcceptsPNG(t *testing.T) {
	if err := Validate(pngBytes(t, 10, 10)); err != nil {
		t.Fatalf("expected valid png, got %v", err)
	}
}

func TestValidate_RejectsNonImage(t *testing.T) {
	err := Validate([]byte("%PDF-1.4 not an image"))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestValidate_RejectsOversized(t *testing.T) {
	big := make([]byte, MaxUploadBytes+1)
	if err := Validate(big); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestProcess_ProducesWebP(t *testing.T) {
	out, contentType, err := Process(pngBytes(t, 120, 60))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if contentType != "image/webp" {
		t.Fatalf("expected image/webp, got %q", contentType)
	}
	if len(out) == 0 {
		t.Fatalf("expected encoded output")
	}
}

func TestProcess_RejectsGarbageWithImageHeader(t *testing.T) {
	data := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x00}, 64)...)
	if _, _, err := Process(data); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestCenterSquare(t *testing.T) {
	got := centerSquare(image.Rect(0, 0, 100, 60))
	if got.Dx() != got.Dy() {
		t.Fatalf("expected square crop, got %v", got)
	}
	if got.Dx() != 60 {
		t.Fatalf("expected crop side 60, got %d", got.Dx())
	}
	if got.Min.X != 20 {
		t.Fatalf("expected centered crop, got %v", got)
	}
}
