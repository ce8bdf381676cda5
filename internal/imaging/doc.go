// Package imaging turns images into scannable surfaces and provides the
// pixel, color and geometry helpers shared by the canvas and the server.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Foreground Rule
//
// The window scanner sees a binary image. A pixel is background only when it
// is exactly opaque pure white; any other value, including anti-aliasing
// shades and partial transparency, is foreground. Raster and SamplePixel
// apply the same rule.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Raster is read-only after
// Rasterize returns and may be shared between goroutines.
//
// # Color Representation
//
// Pixel samples report:
//   - Hex: "#rrggbb" (alpha excluded)
//   - RGBA: 8-bit non-premultiplied components
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
package imaging
