package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
//   - Width = X2 - X1, Height = Y2 - Y1
type Region struct {
	X1 int `json:"x1"` // Left edge X coordinate (inclusive)
	Y1 int `json:"y1"` // Top edge Y coordinate (inclusive)
	X2 int `json:"x2"` // Right edge X coordinate (exclusive)
	Y2 int `json:"y2"` // Bottom edge Y coordinate (exclusive)
}

// Raster is a non-premultiplied 8-bit snapshot of an image, ready for the
// window scanner.
//
// A pixel is background only when it is exactly opaque pure white
// (R=G=B=A=255). Every other value, including anti-aliased edges and
// partially transparent white, is foreground.
//
// Raster satisfies detection.Surface. The snapshot always has its origin at
// (0,0), whatever the bounds of the source image.
type Raster struct {
	img *image.NRGBA
}

// Rasterize snapshots img for scanning.
//
// Parameters:
//   - img: Source image of any color model. A nil image yields an empty raster.
//   - region: Optional sub-rectangle of img to keep. If nil, the whole image
//     is used.
//
// Returns:
//   - *Raster: The snapshot, with region's top-left corner at (0,0).
//   - error: Non-nil if region lies outside the image bounds or is inverted.
//
// Conversion to NRGBA goes through disintegration/imaging, which maps 16-bit
// and paletted images to 8-bit channels, so a 16-bit opaque white still
// counts as background.
func Rasterize(img image.Image, region *Region) (*Raster, error) {
	if img == nil {
		return &Raster{img: image.NewNRGBA(image.Rectangle{})}, nil
	}
	if region == nil {
		return &Raster{img: imaging.Clone(img)}, nil
	}

	bounds := img.Bounds()
	if region.X1 < bounds.Min.X || region.Y1 < bounds.Min.Y || region.X2 > bounds.Max.X || region.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("scan region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			region.X1, region.Y1, region.X2, region.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
		return nil, fmt.Errorf("invalid scan region: x1 must be < x2, y1 must be < y2")
	}

	return &Raster{img: imaging.Crop(img, image.Rect(region.X1, region.Y1, region.X2, region.Y2))}, nil
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int {
	return r.img.Bounds().Dx()
}

// Height returns the raster height in pixels.
func (r *Raster) Height() int {
	return r.img.Bounds().Dy()
}

// Foreground reports whether the pixel at (x, y) is anything other than
// opaque pure white. Coordinates outside the raster read as background.
func (r *Raster) Foreground(x, y int) bool {
	if !(image.Point{X: x, Y: y}.In(r.img.Rect)) {
		return false
	}
	i := r.img.PixOffset(x, y)
	p := r.img.Pix[i : i+4 : i+4]
	return p[0] != 0xff || p[1] != 0xff || p[2] != 0xff || p[3] != 0xff
}

// Image returns the underlying snapshot.
func (r *Raster) Image() *image.NRGBA {
	return r.img
}
