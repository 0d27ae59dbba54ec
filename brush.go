package cvi

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: a single solid color
//   - *LinearGradientBrush: a two-point gradient in bounding-box units
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// ColorAt returns the color at (u, v), given in units of the painted
	// shape's bounding box: (0,0) is its top-left and (1,1) its bottom-right.
	ColorAt(u, v float64) RGBA
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color RGBA
}

// brushMarker implements the sealed Brush interface.
func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidHex creates a SolidBrush from a hex color string.
func SolidHex(hex string) SolidBrush {
	return SolidBrush{Color: Hex(hex)}
}
