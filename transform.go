package cvi

import "math"

// Transform is a uniform scale followed by a translation.
// It represents the projection:
//
//	x' = Scale*x + TX
//	y' = Scale*y + TY
//
// Geometry is built in model space and projected once at draw time, so a
// Transform is a plain value passed around instead of state stored on points.
type Transform struct {
	Scale  float64
	TX, TY float64
}

// IdentityTransform returns the transform that leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{Scale: 1}
}

// NewTransform creates a transform with the given scale and translation.
func NewTransform(scale, tx, ty float64) Transform {
	return Transform{Scale: scale, TX: tx, TY: ty}
}

// FitTransform returns the transform that maps the model square
// [-maxScore, maxScore]² onto a width x height surface, centred, with the
// model origin at the surface centre.
func FitTransform(width, height, maxScore float64) Transform {
	half := math.Min(width, height) / 2
	return Transform{
		Scale: half / maxScore,
		TX:    width / 2,
		TY:    height / 2,
	}
}

// Project maps a model-space point to surface space under t.
func Project(p Point, t Transform) ScreenPoint {
	return ScreenPoint{
		X: p.X*t.Scale + t.TX,
		Y: p.Y*t.Scale + t.TY,
	}
}

// Project maps a model-space point to surface space.
func (t Transform) Project(p Point) ScreenPoint {
	return Project(p, t)
}

// ProjectAll maps every point of pts to surface space.
func (t Transform) ProjectAll(pts []Point) []ScreenPoint {
	out := make([]ScreenPoint, len(pts))
	for i, p := range pts {
		out[i] = Project(p, t)
	}
	return out
}

// Length scales a model-space distance to surface units.
func (t Transform) Length(d float64) float64 {
	return d * t.Scale
}

// Unproject maps a surface point back to model space.
// A zero scale yields the origin.
func (t Transform) Unproject(p ScreenPoint) Point {
	if t.Scale == 0 {
		return Point{}
	}
	return Point{
		X: (p.X - t.TX) / t.Scale,
		Y: (p.Y - t.TY) / t.Scale,
	}
}
