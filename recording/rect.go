package recording

import (
	"math"

	"github.com/gogpu/cvi"
)

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{
		MinX: x,
		MinY: y,
		MaxX: x + width,
		MaxY: y + height,
	}
}

// BoundsOf returns the smallest rectangle containing every point.
// Non-finite coordinates are skipped; no finite point yields the zero Rect.
func BoundsOf(pts []cvi.ScreenPoint) Rect {
	r := Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	found := false
	for _, p := range pts {
		if !finite(p.X) || !finite(p.Y) {
			continue
		}
		found = true
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	if !found {
		return Rect{}
	}
	return r
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Finite reports whether both coordinates of p are finite.
func Finite(p cvi.ScreenPoint) bool {
	return finite(p.X) && finite(p.Y)
}

// FinitePoints returns pts without the vertices that have a non-finite
// coordinate. pts itself is returned when every vertex is finite.
func FinitePoints(pts []cvi.ScreenPoint) []cvi.ScreenPoint {
	for i, p := range pts {
		if Finite(p) {
			continue
		}
		out := append(make([]cvi.ScreenPoint, 0, len(pts)-1), pts[:i]...)
		for _, q := range pts[i+1:] {
			if Finite(q) {
				out = append(out, q)
			}
		}
		return out
	}
	return pts
}

// X returns the left edge of the rectangle.
func (r Rect) X() float64 {
	return r.MinX
}

// Y returns the top edge of the rectangle.
func (r Rect) Y() float64 {
	return r.MinY
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Unit maps (x, y) into the rectangle's bounding-box units, where (0,0) is
// the top-left corner and (1,1) the bottom-right. A degenerate extent maps
// to 0 on that axis.
func (r Rect) Unit(x, y float64) (u, v float64) {
	if w := r.Width(); w > 0 {
		u = (x - r.MinX) / w
	}
	if h := r.Height(); h > 0 {
		v = (y - r.MinY) / h
	}
	return u, v
}
