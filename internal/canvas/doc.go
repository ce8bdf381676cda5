// Package canvas keeps the state of the drawing surface and renders it.
//
// Users add points; pair lines join points 0-1, 2-3 and so on once enabled.
// DetectSegments renders the drawing without markers, hands the bitmap to the
// window scanner and stores what it finds. Render then outlines each found
// segment center with a small purple square.
package canvas
