package cvi

import (
	"fmt"
	"math"
)

// Point is a coordinate in unprojected model space.
// Axis vertices, boundary lines and quadrant polygons all live in model space;
// a Point is only turned into surface coordinates by Project at draw time.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Copy returns a duplicate of the point.
func (p Point) Copy() Point {
	return Point{X: p.X, Y: p.Y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// IsFinite reports whether both coordinates are finite numbers.
// The y-intercept of a vertical Line is the common non-finite case.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String returns the point as "[x,y]".
func (p Point) String() string {
	return fmt.Sprintf("[%g,%g]", p.X, p.Y)
}

// ScreenPoint is a coordinate on a drawing surface.
// It is a distinct type from Point so projected values cannot be fed back
// into model-space geometry by accident.
type ScreenPoint struct {
	X, Y float64
}

// String returns the point as "(x,y)".
func (p ScreenPoint) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
