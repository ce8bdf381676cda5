package detection

import (
	"fmt"
	"io"
)

// Surface is a pixel grid reduced to foreground/background.
//
// Implementations must answer Foreground for every 0 <= x < Width() and
// 0 <= y < Height(). imaging.Raster adapts any image.Image.
type Surface interface {
	Width() int
	Height() int
	Foreground(x, y int) bool
}

// Point is a pixel coordinate on the scanned surface. It mirrors imaging.Point
// so this package depends only on Surface.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Segment is a window whose neighborhood exactly matched a catalog motif.
type Segment struct {
	// Center is the pixel the 3x3 window was centered on.
	Center Point `json:"center"`

	// Pattern is the matched template's name.
	Pattern string `json:"pattern"`
}

// ScanResult holds the matches and counters from one scan.
type ScanResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Policy is the match policy the scan ran with.
	Policy string `json:"policy"`

	// WindowsAnalyzed is (Width-2)*(Height-2) for surfaces at least 3x3
	// and 0 otherwise.
	WindowsAnalyzed int `json:"windows_analyzed"`

	// NonEmptyWindows counts windows with at least one foreground cell.
	NonEmptyWindows int `json:"non_empty_windows"`

	// Candidates is len(Segments).
	Candidates int `json:"candidates"`

	// Segments lists matches in scan order: x ascending, then y ascending.
	Segments []Segment `json:"segments"`
}

// Scanner walks every interior pixel of a surface, classifies its 3x3
// neighborhood and collects the matches.
//
// A Scanner holds no state between calls; Scan is a pure function of the
// surface apart from the optional report.
type Scanner struct {
	policy      MatchPolicy
	templates   []Template
	classifier  *Classifier
	report      io.Writer
	dumpWindows bool
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithPolicy sets the match policy. The default is FirstMatch.
func WithPolicy(p MatchPolicy) ScannerOption {
	return func(s *Scanner) {
		s.policy = p
	}
}

// WithTemplates replaces the catalog the scanner matches against.
func WithTemplates(templates []Template) ScannerOption {
	return func(s *Scanner) {
		s.templates = templates
	}
}

// WithReport writes a text report of every scan to w: one MATCH line per
// segment and the totals. When dumpWindows is set, each non-empty window is
// printed as well.
func WithReport(w io.Writer, dumpWindows bool) ScannerOption {
	return func(s *Scanner) {
		s.report = w
		s.dumpWindows = dumpWindows
	}
}

// NewScanner creates a scanner over the motif catalog.
func NewScanner(opts ...ScannerOption) *Scanner {
	s := &Scanner{
		policy:    FirstMatch,
		templates: catalog,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.classifier = NewClassifier(s.templates, s.policy)
	return s
}

// Policy returns the scanner's match policy.
func (s *Scanner) Policy() MatchPolicy {
	return s.policy
}

// Scan classifies the neighborhood of every interior pixel of surface.
//
// The outer loop runs over x in [1, W-2] and the inner loop over y in
// [1, H-2]; the one-pixel border is never a window center. Surfaces smaller
// than 3x3 produce an empty result without extracting any window.
func (s *Scanner) Scan(surface Surface) *ScanResult {
	w, h := surface.Width(), surface.Height()
	result := &ScanResult{
		Width:    w,
		Height:   h,
		Policy:   s.policy.String(),
		Segments: make([]Segment, 0),
	}

	s.reportf("\n--- Segment Detection Report ---\n")
	s.reportf("Image size: %dx%d\n", w, h)
	if s.dumpWindows {
		s.reportf("\n*** Non-Empty Window Dump ***\n")
	}

	if w >= 3 && h >= 3 {
		for x := 1; x < w-1; x++ {
			for y := 1; y < h-1; y++ {
				window := extractWindow(surface, x, y)
				result.WindowsAnalyzed++

				if !IsEmpty(window) {
					result.NonEmptyWindows++
					if s.dumpWindows {
						s.reportf("Window at (%d, %d):\n------\n%s------\n", x, y, window)
					}
				}

				if name, ok := s.classifier.Classify(window); ok {
					result.Segments = append(result.Segments, Segment{
						Center:  Point{X: x, Y: y},
						Pattern: name,
					})
					s.reportf("--- MATCH: %s\n", name)
				}
			}
		}
	}
	result.Candidates = len(result.Segments)

	s.reportf("****************************************\n")
	s.reportf("Total 3x3 windows analyzed: %d\n", result.WindowsAnalyzed)
	s.reportf("Total non-empty windows: %d\n", result.NonEmptyWindows)
	s.reportf("Total candidates detected: %d\n", result.Candidates)
	s.reportf("--------------------------------\n")

	return result
}

// extractWindow reads the 3x3 neighborhood centered on (x, y). Cell
// (dy+1, dx+1) holds pixel (x+dx, y+dy).
func extractWindow(surface Surface, x, y int) Matrix {
	var m Matrix
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			m.Set(dy+1, dx+1, surface.Foreground(x+dx, y+dy))
		}
	}
	return m
}

// reportf writes to the report sink. Write errors are ignored; the report is
// informational only.
func (s *Scanner) reportf(format string, args ...interface{}) {
	if s.report == nil {
		return
	}
	_, _ = fmt.Fprintf(s.report, format, args...)
}
