package imaging

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"testing"
)

func TestEncodePNG(t *testing.T) {
	img := createPatternImage(20, 10)

	enc, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if enc.Width != 20 || enc.Height != 10 {
		t.Errorf("size: got %dx%d, want 20x10", enc.Width, enc.Height)
	}
	if enc.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", enc.MimeType)
	}

	data, err := base64.StdEncoding.DecodeString(enc.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}

	if decoded.Bounds().Dx() != 20 || decoded.Bounds().Dy() != 10 {
		t.Errorf("decoded size: got %v", decoded.Bounds())
	}
	got := color.RGBAModel.Convert(decoded.At(1, 1)).(color.RGBA)
	if got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("decoded pixel (1,1): got %v, want red", got)
	}
}
