package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestRasterize_Foreground(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want bool
	}{
		{"opaque white", color.RGBA{255, 255, 255, 255}, false},
		{"black", color.RGBA{0, 0, 0, 255}, true},
		{"near white", color.RGBA{254, 255, 255, 255}, true},
		{"anti-aliased gray", color.RGBA{200, 200, 200, 255}, true},
		{"purple", color.RGBA{128, 0, 128, 255}, true},
		{"16-bit white", color.RGBA64{0xffff, 0xffff, 0xffff, 0xffff}, false},
		{"gray16 white", color.Gray16{0xffff}, false},
		{"fully transparent", color.RGBA{0, 0, 0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Rasterize(createInMemoryImage(3, 3, tt.c), nil)
			if err != nil {
				t.Fatalf("Rasterize failed: %v", err)
			}
			if got := r.Foreground(1, 1); got != tt.want {
				t.Errorf("Foreground: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRasterize_TransparentWhite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 200})

	r, err := Rasterize(img, nil)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if !r.Foreground(1, 1) {
		t.Error("semi-transparent white should be foreground")
	}
	if r.Foreground(0, 0) {
		t.Error("opaque white should be background")
	}
}

func TestRasterize_Dimensions(t *testing.T) {
	r, err := Rasterize(createPatternImage(40, 30), nil)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if r.Width() != 40 || r.Height() != 30 {
		t.Errorf("size: got %dx%d, want 40x30", r.Width(), r.Height())
	}
	if !r.Foreground(5, 5) {
		t.Error("red quadrant should be foreground")
	}
	if r.Foreground(35, 25) {
		t.Error("white quadrant should be background")
	}
}

func TestRasterize_Region(t *testing.T) {
	img := createPatternImage(100, 100)

	r, err := Rasterize(img, &Region{X1: 40, Y1: 40, X2: 60, Y2: 60})
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if r.Width() != 20 || r.Height() != 20 {
		t.Fatalf("size: got %dx%d, want 20x20", r.Width(), r.Height())
	}

	// Region origin maps to (0,0); the white quadrant starts at (10,10).
	if !r.Foreground(0, 0) {
		t.Error("(0,0) should be red foreground")
	}
	if r.Foreground(15, 15) {
		t.Error("(15,15) should be white background")
	}
}

func TestRasterize_RegionErrors(t *testing.T) {
	img := createInMemoryImage(50, 50, color.White)

	tests := []struct {
		name   string
		region Region
	}{
		{"negative origin", Region{X1: -1, Y1: 0, X2: 10, Y2: 10}},
		{"past right edge", Region{X1: 0, Y1: 0, X2: 51, Y2: 10}},
		{"past bottom edge", Region{X1: 0, Y1: 0, X2: 10, Y2: 51}},
		{"inverted x", Region{X1: 20, Y1: 0, X2: 10, Y2: 10}},
		{"empty y", Region{X1: 0, Y1: 10, X2: 10, Y2: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region := tt.region
			if _, err := Rasterize(img, &region); err == nil {
				t.Errorf("Rasterize(%+v) should fail", tt.region)
			}
		})
	}
}

func TestRasterize_NilImage(t *testing.T) {
	r, err := Rasterize(nil, nil)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if r.Width() != 0 || r.Height() != 0 {
		t.Errorf("size: got %dx%d, want 0x0", r.Width(), r.Height())
	}
	if r.Foreground(0, 0) {
		t.Error("empty raster should read background")
	}
}

func TestRasterize_NonZeroOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 15, 25))
	for y := 20; y < 25; y++ {
		for x := 10; x < 15; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(10, 20, color.Black)

	r, err := Rasterize(img, nil)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if r.Width() != 5 || r.Height() != 5 {
		t.Fatalf("size: got %dx%d, want 5x5", r.Width(), r.Height())
	}
	if !r.Foreground(0, 0) {
		t.Error("source corner should map to (0,0)")
	}
	if r.Foreground(1, 1) {
		t.Error("(1,1) should be background")
	}
}

func TestRaster_OutOfBoundsIsBackground(t *testing.T) {
	r, err := Rasterize(createInMemoryImage(4, 4, color.Black), nil)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if r.Foreground(p.X, p.Y) {
			t.Errorf("Foreground(%d,%d) outside raster should be false", p.X, p.Y)
		}
	}
}

func TestRaster_IsSnapshot(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	r, err := Rasterize(img, nil)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}

	img.Set(1, 1, color.Black)
	if r.Foreground(1, 1) {
		t.Error("raster should not observe later writes to its source")
	}
}
