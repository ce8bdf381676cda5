package canvas

import (
	"fmt"

	"github.com/ironsheep/segment-canvas-mcp/internal/detection"
	"github.com/ironsheep/segment-canvas-mcp/internal/imaging"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 600
	DefaultHeight = 400
)

// Detector scans a rendered surface for segment patterns.
// *detection.Scanner satisfies it.
type Detector interface {
	Scan(surface detection.Surface) *detection.ScanResult
}

// Canvas holds the drawing state: user points, whether pair lines are shown
// and the segments found by the last detection run.
//
// A Canvas is not safe for concurrent use. The server owns a single Canvas
// and touches it only from its request loop.
type Canvas struct {
	width    int
	height   int
	palette  Palette
	detector Detector

	points     []imaging.Point
	paintLines bool
	segments   []detection.Segment
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithPalette overrides the pen colors used by Render.
func WithPalette(p Palette) Option {
	return func(c *Canvas) {
		c.palette = p
	}
}

// WithDetector sets the scanner used by DetectSegments.
func WithDetector(d Detector) Option {
	return func(c *Canvas) {
		if d != nil {
			c.detector = d
		}
	}
}

// State is a snapshot of the canvas for clients.
type State struct {
	Width        int                 `json:"width"`
	Height       int                 `json:"height"`
	Points       []imaging.Point     `json:"points"`
	LinesEnabled bool                `json:"lines_enabled"`
	Lines        []imaging.Line      `json:"lines,omitempty"`
	Segments     []detection.Segment `json:"segments"`
}

// New creates an empty canvas. Non-positive dimensions fall back to
// DefaultWidth and DefaultHeight.
func New(width, height int, opts ...Option) *Canvas {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	c := &Canvas{
		width:    width,
		height:   height,
		palette:  DefaultPalette(),
		detector: detection.NewScanner(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// AddPoint records a user point. Previously detected segments no longer
// describe the drawing and are discarded.
func (c *Canvas) AddPoint(p imaging.Point) {
	c.points = append(c.points, p)
	c.segments = nil
}

// Clear removes all points and detected segments and turns pair lines off.
func (c *Canvas) Clear() {
	c.points = nil
	c.segments = nil
	c.paintLines = false
}

// PaintLines turns on pair lines and returns the lines now drawn.
func (c *Canvas) PaintLines() []imaging.Line {
	c.paintLines = true
	return imaging.PairLines(c.points)
}

// Points returns a copy of the recorded points in insertion order.
func (c *Canvas) Points() []imaging.Point {
	return append([]imaging.Point(nil), c.points...)
}

// Segments returns a copy of the segments from the last detection run.
func (c *Canvas) Segments() []detection.Segment {
	return append([]detection.Segment(nil), c.segments...)
}

// DetectSegments renders the drawing without markers, scans it and keeps
// the matched segments for the next Render.
func (c *Canvas) DetectSegments() (*detection.ScanResult, error) {
	c.segments = nil

	img, err := c.render(false)
	if err != nil {
		return nil, err
	}

	raster, err := imaging.Rasterize(img, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize canvas: %w", err)
	}

	result := c.detector.Scan(raster)
	c.segments = append([]detection.Segment(nil), result.Segments...)
	return result, nil
}

// State returns a snapshot of the canvas.
func (c *Canvas) State() State {
	st := State{
		Width:        c.width,
		Height:       c.height,
		Points:       c.Points(),
		LinesEnabled: c.paintLines,
		Segments:     c.Segments(),
	}
	if st.Points == nil {
		st.Points = []imaging.Point{}
	}
	if st.Segments == nil {
		st.Segments = []detection.Segment{}
	}
	if c.paintLines {
		st.Lines = imaging.PairLines(c.points)
	}
	return st
}
