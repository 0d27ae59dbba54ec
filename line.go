package cvi

import (
	"fmt"
	"math"
)

// Line is the straight line through two model-space points.
//
// For a vertical pair (both points share X) the slope is undefined: Slope
// reports +Inf, Intercept reports NaN, the x-intercept is (x, 0) and the
// y-intercept is (0, NaN). Other degenerate inputs are not trapped; a
// horizontal line, for example, has an infinite x-intercept.
type Line struct {
	p1, p2   Point
	m, b     float64
	vertical bool
	xi, yi   Point
}

// NewLine creates the line through p1 and p2.
func NewLine(p1, p2 Point) Line {
	l := Line{p1: p1, p2: p2}

	if p2.X-p1.X == 0 {
		l.vertical = true
		l.m = math.Inf(1)
		l.b = math.NaN()
		l.xi = Point{X: p1.X, Y: 0}
		l.yi = Point{X: 0, Y: math.NaN()}
		return l
	}

	l.m = (p2.Y - p1.Y) / (p2.X - p1.X)
	l.b = p2.Y - l.m*p2.X
	l.xi = Point{X: -l.b / l.m, Y: 0}
	l.yi = Point{X: 0, Y: l.b}
	return l
}

// P1 returns the first defining point.
func (l Line) P1() Point { return l.p1 }

// P2 returns the second defining point.
func (l Line) P2() Point { return l.p2 }

// Slope returns m in y = m*x + b. It is +Inf for a vertical line.
func (l Line) Slope() float64 { return l.m }

// Intercept returns b in y = m*x + b. It is NaN for a vertical line.
func (l Line) Intercept() float64 { return l.b }

// Vertical reports whether both defining points share the same X.
func (l Line) Vertical() bool { return l.vertical }

// XIntercept returns the point where the line crosses y = 0.
func (l Line) XIntercept() Point { return l.xi.Copy() }

// YIntercept returns the point where the line crosses x = 0.
// Its Y is NaN when the line is vertical.
func (l Line) YIntercept() Point { return l.yi.Copy() }

// At evaluates the line at x. It returns NaN for a vertical line.
func (l Line) At(x float64) float64 {
	if l.vertical {
		return math.NaN()
	}
	return l.m*x + l.b
}

// String returns a human readable form of the line equation and intercepts.
func (l Line) String() string {
	if l.vertical {
		return fmt.Sprintf("x = %g  xi:%v  yi:%v", l.p1.X, l.xi, l.yi)
	}
	return fmt.Sprintf("y = %gx + %g  xi:%v  yi:%v", l.m, l.b, l.xi, l.yi)
}
