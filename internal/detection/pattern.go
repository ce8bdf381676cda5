package detection

import (
	"fmt"
	"strings"
)

// Pattern names in catalog order.
const (
	HorizontalLine    = "Horizontal Line (Center)"
	VerticalLine      = "Vertical Line (Center)"
	DiagonalDown      = "Diagonal (Top-Left to Bottom-Right)"
	DiagonalUp        = "Diagonal (Top-Right to Bottom-Left)"
	LShapeTopLeft     = "L-Shape (Top-Left)"
	SinglePointCenter = "Single Point (Center)"
)

// Matrix is a 3x3 binary neighborhood stored row-major.
//
// Index (row*3 + col) holds the cell at the given row and column. Row follows
// the vertical offset from the window center and column the horizontal offset,
// so a horizontal line of pixels fills a row. A true cell is foreground.
//
// Matrix is a value type: two matrices are equal exactly when all nine cells
// are equal, which is what == on the array compares.
type Matrix [9]bool

// At reports the cell at the given row and column (0-2).
func (m Matrix) At(row, col int) bool {
	return m[row*3+col]
}

// Set assigns the cell at the given row and column (0-2).
func (m *Matrix) Set(row, col int, v bool) {
	m[row*3+col] = v
}

// Rows returns the matrix as three strings of '0' and '1', top row first.
func (m Matrix) Rows() [3]string {
	var rows [3]string
	for r := 0; r < 3; r++ {
		var b strings.Builder
		for c := 0; c < 3; c++ {
			if m.At(r, c) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		rows[r] = b.String()
	}
	return rows
}

// String renders the matrix as three space-separated lines, the format used
// by the scan report's window dump.
func (m Matrix) String() string {
	var b strings.Builder
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if m.At(r, c) {
				b.WriteString("1 ")
			} else {
				b.WriteString("0 ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseMatrix builds a Matrix from three rows of '0'/'1' characters.
func ParseMatrix(rows ...string) (Matrix, error) {
	var m Matrix
	if len(rows) != 3 {
		return m, fmt.Errorf("matrix needs 3 rows, got %d", len(rows))
	}
	for r, row := range rows {
		if len(row) != 3 {
			return m, fmt.Errorf("row %d: want 3 cells, got %q", r, row)
		}
		for c := 0; c < 3; c++ {
			switch row[c] {
			case '1':
				m.Set(r, c, true)
			case '0':
			default:
				return m, fmt.Errorf("row %d: invalid cell %q", r, row[c])
			}
		}
	}
	return m, nil
}

func mustMatrix(rows ...string) Matrix {
	m, err := ParseMatrix(rows...)
	if err != nil {
		panic(err)
	}
	return m
}

// Template pairs a human-readable motif name with its 3x3 shape.
type Template struct {
	Name   string `json:"name"`
	Matrix Matrix `json:"-"`
}

var catalog = []Template{
	{Name: HorizontalLine, Matrix: mustMatrix(
		"000",
		"111",
		"000",
	)},
	{Name: VerticalLine, Matrix: mustMatrix(
		"010",
		"010",
		"010",
	)},
	{Name: DiagonalDown, Matrix: mustMatrix(
		"100",
		"010",
		"001",
	)},
	{Name: DiagonalUp, Matrix: mustMatrix(
		"001",
		"010",
		"100",
	)},
	{Name: LShapeTopLeft, Matrix: mustMatrix(
		"110",
		"100",
		"000",
	)},
	{Name: SinglePointCenter, Matrix: mustMatrix(
		"000",
		"010",
		"000",
	)},
}

// Templates returns the fixed motif catalog in match order.
//
// The slice is a fresh copy on every call; the catalog itself never changes.
func Templates() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog template with the given name.
func Lookup(name string) (Template, bool) {
	for _, t := range catalog {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}
