package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/ironsheep/segment-canvas-mcp/internal/imaging"
)

// Pen geometry used by Render.
const (
	pointRadius     = 3
	pointPenWidth   = 5
	linePenWidth    = 4
	markerPenWidth  = 1
	markerRectSize  = 5
	markerHalfWidth = markerRectSize / 2
)

// Palette holds the pen colors for each drawing element.
type Palette struct {
	Point  color.Color
	Line   color.Color
	Marker color.Color
}

// DefaultPalette returns blue points, red lines and purple segment markers.
func DefaultPalette() Palette {
	return Palette{
		Point:  imaging.MustParseColor("#0000ff"),
		Line:   imaging.MustParseColor("#ff0000"),
		Marker: imaging.MustParseColor("#800080"),
	}
}

// Render draws the canvas on a white background: points, pair lines when
// enabled, and a 5x5 outline around every detected segment center.
func (c *Canvas) Render() (image.Image, error) {
	return c.render(true)
}

func (c *Canvas) render(markers bool) (image.Image, error) {
	dc := gg.NewContext(c.width, c.height)
	defer dc.Close()

	dc.ClearWithColor(gg.White)

	dc.SetColor(c.palette.Point)
	dc.SetLineWidth(pointPenWidth)
	for i, p := range c.points {
		dc.DrawCircle(float64(p.X), float64(p.Y), pointRadius)
		if err := dc.FillPreserve(); err != nil {
			return nil, fmt.Errorf("failed to fill point %d: %w", i, err)
		}
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("failed to stroke point %d: %w", i, err)
		}
	}

	if c.paintLines {
		dc.SetColor(c.palette.Line)
		dc.SetLineWidth(linePenWidth)
		for i, line := range imaging.PairLines(c.points) {
			dc.DrawLine(float64(line.Start.X), float64(line.Start.Y), float64(line.End.X), float64(line.End.Y))
			if err := dc.Stroke(); err != nil {
				return nil, fmt.Errorf("failed to stroke line %d: %w", i, err)
			}
		}
	}

	if markers && len(c.segments) > 0 {
		dc.SetColor(c.palette.Marker)
		dc.SetLineWidth(markerPenWidth)
		for i, seg := range c.segments {
			dc.DrawRectangle(
				float64(seg.Center.X-markerHalfWidth),
				float64(seg.Center.Y-markerHalfWidth),
				markerRectSize, markerRectSize)
			if err := dc.Stroke(); err != nil {
				return nil, fmt.Errorf("failed to stroke marker %d: %w", i, err)
			}
		}
	}

	// Pixels drawn on a GPU accelerator are not in the pixmap until flushed.
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("failed to flush canvas: %w", err)
	}
	return dc.Image(), nil
}
