// Package detection finds small geometric motifs in a rasterized drawing.
//
// The package holds a fixed catalog of six named 3x3 binary templates and a
// window scanner that compares the neighborhood of every interior pixel
// against that catalog.
//
// # Pattern Catalog
//
// Templates are returned by Templates() in match order:
//
//   - Horizontal Line (Center)
//   - Vertical Line (Center)
//   - Diagonal (Top-Left to Bottom-Right)
//   - Diagonal (Top-Right to Bottom-Left)
//   - L-Shape (Top-Left)
//   - Single Point (Center)
//
// A window matches a template only when all nine cells are equal. There is
// no rotation, reflection or tolerance.
//
// # Scanning
//
// Scanner.Scan takes a Surface (width, height and a per-pixel foreground
// test) and visits x in [1, W-2] in the outer loop and y in [1, H-2] in the
// inner loop. For each center it builds a Matrix where row follows the
// vertical offset and column the horizontal offset:
//
//	(x-1,y-1) (x,y-1) (x+1,y-1)     row 0
//	(x-1,y  ) (x,y  ) (x+1,y  )     row 1
//	(x-1,y+1) (x,y+1) (x+1,y+1)     row 2
//
// The result lists matches in that visiting order. Adjacent duplicates are
// kept.
//
// # Match Policy
//
// FirstMatch (the default) reports the first template in catalog order that
// matches. FirstTemplateOnly compares every window with the first template
// only, which is how the legacy canvas behaved; it exists for comparing
// output with that implementation and is never the default.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
package detection
