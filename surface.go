package cvi

// Anchor is the horizontal alignment of text relative to its position.
type Anchor uint8

const (
	// AnchorStart places the text start at the position.
	AnchorStart Anchor = iota
	// AnchorMiddle centres the text on the position.
	AnchorMiddle
	// AnchorEnd places the text end at the position.
	AnchorEnd
)

// String returns the SVG text-anchor keyword.
func (a Anchor) String() string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

// Stroke is the style of a line segment.
type Stroke struct {
	Width float64
	Color RGBA
}

// TextStyle is the style of a text run. The position passed with it is the
// baseline origin.
type TextStyle struct {
	Family string
	Size   float64
	Anchor Anchor
	Color  RGBA
}

// Surface is the drawing target of the Engine.
//
// The engine depends on nothing but this capability set: layers stacked in
// creation order, and the handful of primitives in Layer. Implementations
// decide how primitives are stored or serialized (see package recording).
type Surface interface {
	// Width returns the surface width in surface units.
	Width() float64
	// Height returns the surface height in surface units.
	Height() float64
	// Clear removes every layer and primitive drawn so far.
	Clear()
	// Layer creates a top-level layer stacked above all existing ones.
	Layer(name string) Layer
}

// Layer is a group of primitives. Primitives added later draw on top.
type Layer interface {
	// Rect fills an axis-aligned rectangle. w and h are non-negative.
	Rect(x, y, w, h float64, fill Brush)
	// Polygon fills the closed polygon through pts.
	Polygon(pts []ScreenPoint, fill Brush)
	// Line strokes the segment from -> to.
	Line(from, to ScreenPoint, stroke Stroke)
	// Circle fills a circle.
	Circle(center ScreenPoint, radius float64, fill Brush)
	// Text draws s with its baseline origin at the given position.
	Text(s string, at ScreenPoint, style TextStyle)
	// Layer creates a sublayer stacked above everything in this layer so far.
	Layer(name string) Layer
}
