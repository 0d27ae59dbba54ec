package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/cvi"
	"github.com/gogpu/cvi/recording"
	"golang.org/x/image/vector"
)

// kappa is the control-point distance for a quarter circle of radius 1.
const kappa = 0.5522847498

func newRasterizer(w, h int) *vector.Rasterizer {
	return vector.NewRasterizer(w, h)
}

func polygonPath(z *vector.Rasterizer, pts []cvi.ScreenPoint) {
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

func circlePath(z *vector.Rasterizer, c cvi.ScreenPoint, r float64) {
	k := r * kappa
	x, y := c.X, c.Y
	f := func(v float64) float32 { return float32(v) }

	z.MoveTo(f(x+r), f(y))
	z.CubeTo(f(x+r), f(y+k), f(x+k), f(y+r), f(x), f(y+r))
	z.CubeTo(f(x-k), f(y+r), f(x-r), f(y+k), f(x-r), f(y))
	z.CubeTo(f(x-r), f(y-k), f(x-k), f(y-r), f(x), f(y-r))
	z.CubeTo(f(x+k), f(y-r), f(x+r), f(y-k), f(x+r), f(y))
	z.ClosePath()
}

// lineQuad returns the outline of a butt-capped stroke from a to b, or nil
// for a zero-length or zero-width stroke.
func lineQuad(a, b cvi.ScreenPoint, width float64) []cvi.ScreenPoint {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return nil
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	return []cvi.ScreenPoint{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}
}

// source returns the image a shape with bounding box box is painted from.
func source(brush cvi.Brush, box recording.Rect) image.Image {
	switch br := brush.(type) {
	case nil:
		return image.Transparent
	case cvi.SolidBrush:
		return image.NewUniform(br.Color.Color())
	default:
		return &brushImage{brush: br, box: box}
	}
}

// brushImage samples a brush over a bounding box, the way SVG resolves
// objectBoundingBox gradients.
type brushImage struct {
	brush cvi.Brush
	box   recording.Rect
}

func (*brushImage) ColorModel() color.Model { return color.NRGBAModel }

func (*brushImage) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g *brushImage) At(x, y int) color.Color {
	// Sample at the pixel centre.
	u, v := g.box.Unit(float64(x)+0.5, float64(y)+0.5)
	return g.brush.ColorAt(u, v).Color()
}
