package cvi

import "sort"

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// LinearGradientBrush is a linear color transition between two points given
// in bounding-box units, the way SVG's objectBoundingBox gradients work.
// Colors beyond the first and last stop are padded.
//
// Example:
//
//	grad := cvi.NewLinearGradientBrush(0, 0, 1, 1).
//	    AddColorStop(0, cvi.Hex("#345AA3")).
//	    AddColorStop(1, cvi.Hex("#D5DDEC"))
type LinearGradientBrush struct {
	Start Point       // Start point, bounding-box units
	End   Point       // End point, bounding-box units
	Stops []ColorStop // Color stops defining the gradient
}

// NewLinearGradientBrush creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradientBrush(x0, y0, x1, y1 float64) *LinearGradientBrush {
	return &LinearGradientBrush{
		Start: Point{X: x0, Y: y0},
		End:   Point{X: x1, Y: y1},
	}
}

// AddColorStop adds a color stop at the specified offset, after any stop
// with the same offset, keeping Stops ordered.
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) AddColorStop(offset float64, c RGBA) *LinearGradientBrush {
	i := sort.Search(len(g.Stops), func(i int) bool { return g.Stops[i].Offset > offset })
	g.Stops = append(g.Stops, ColorStop{})
	copy(g.Stops[i+1:], g.Stops[i:])
	g.Stops[i] = ColorStop{Offset: offset, Color: c}
	return g
}

// brushMarker implements the Brush interface marker.
func (*LinearGradientBrush) brushMarker() {}

// ColorAt implements Brush.
// Stops assigned out of order are sorted on a copy for each call.
func (g *LinearGradientBrush) ColorAt(u, v float64) RGBA {
	stops := g.Stops
	if !stopsSorted(stops) {
		stops = sortStops(stops)
	}
	if len(stops) == 0 {
		return Transparent
	}

	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return stops[0].Color
	}

	// Project (u, v) onto the gradient vector.
	t := ((u-g.Start.X)*dx + (v-g.Start.Y)*dy) / lengthSq
	return colorAtOffset(stops, clamp01(t))
}

func stopsSorted(stops []ColorStop) bool {
	for i := 1; i < len(stops); i++ {
		if stops[i].Offset < stops[i-1].Offset {
			return false
		}
	}
	return true
}

// sortStops returns a copy of stops ordered by offset.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// colorAtOffset interpolates between the sorted stops surrounding t.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			lo, hi := stops[i-1], stops[i]
			span := hi.Offset - lo.Offset
			if span == 0 {
				return hi.Color
			}
			return lo.Color.Lerp(hi.Color, (t-lo.Offset)/span)
		}
	}
	return last.Color
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
