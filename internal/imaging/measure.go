package imaging

import (
	"math"
)

// Point represents a 2D point
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Line is a segment between two user points with its measurements.
type Line struct {
	Start        Point   `json:"start"`
	End          Point   `json:"end"`
	Length       float64 `json:"length"`
	DeltaX       int     `json:"delta_x"`
	DeltaY       int     `json:"delta_y"`
	AngleDegrees float64 `json:"angle_degrees"`
}

// MeasureLine calculates the length and direction of the segment from a to b.
// Angles follow image coordinates: 0 = rightward, 90 = downward.
func MeasureLine(a, b Point) Line {
	deltaX := b.X - a.X
	deltaY := b.Y - a.Y

	length := math.Sqrt(float64(deltaX*deltaX + deltaY*deltaY))
	angle := math.Atan2(float64(deltaY), float64(deltaX)) * 180 / math.Pi

	return Line{
		Start:        a,
		End:          b,
		Length:       math.Round(length*100) / 100,
		DeltaX:       deltaX,
		DeltaY:       deltaY,
		AngleDegrees: math.Round(angle*10) / 10,
	}
}

// PairLines connects consecutive pairs of points: 0-1, 2-3 and so on.
// A trailing unpaired point is left unconnected.
func PairLines(points []Point) []Line {
	lines := make([]Line, 0, len(points)/2)
	for i := 0; i+1 < len(points); i += 2 {
		lines = append(lines, MeasureLine(points[i], points[i+1]))
	}
	return lines
}
