package cvi

import "errors"

// Layer names, bottom to top.
const (
	LayerBackgrounds = "backgrounds"
	LayerOverlays    = "overlays"
	LayerFrame       = "frame"
	LayerText        = "text"
	LayerAxes        = "axes"
)

// Engine composes Core Values Index diagrams onto a Surface.
//
// An Engine holds configuration only; it keeps no state between renders.
// A render runs synchronously to completion and assumes it is the only
// render in flight on its surface. Callers outside a single event loop must
// serialize access to a shared Surface themselves.
type Engine struct {
	opts engineOptions
}

// NewEngine creates an engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{opts: o}
}

// Theme returns the theme the engine draws with.
func (e *Engine) Theme() Theme {
	return e.opts.theme
}

// Render clears s and draws in onto it, bottom to top:
//
//  1. quadrant backgrounds
//  2. overlay polygons with markers, no borders
//  3. frame polygons with markers, bordered only if there were overlays
//  4. axis labels for the frame
//  5. axis lines
//
// It returns *UnsupportedInputError when in cannot be resolved.
func (e *Engine) Render(s Surface, in Input) error {
	if s == nil {
		return errors.New("cvi: render to nil surface")
	}
	s.Clear()

	if in == nil {
		return &UnsupportedInputError{Value: in, Reason: "nil input"}
	}
	frame, overlays, err := in.Resolve()
	if err != nil {
		return err
	}

	log := Logger()
	for _, p := range append([]Profile{frame}, overlays...) {
		if err := p.CheckRange(e.opts.maxScore); err != nil {
			log.Warn("cvi: geometry may leave the diagram", "err", err)
		}
	}

	t := FitTransform(s.Width(), s.Height(), e.opts.maxScore)

	e.renderBackgrounds(s.Layer(LayerBackgrounds), t)

	ol := s.Layer(LayerOverlays)
	for _, p := range overlays {
		e.renderProfile(ol, p, t, false)
	}

	e.renderProfile(s.Layer(LayerFrame), frame, t, len(overlays) != 0)

	if e.opts.labels {
		e.renderText(s.Layer(LayerText), s, frame, t)
	}

	e.renderAxes(s.Layer(LayerAxes), t)

	log.Info("cvi: rendered", "frame", frame.Name, "overlays", len(overlays))
	return nil
}

// RenderAny renders an untyped value; see InputOf for what it accepts.
func (e *Engine) RenderAny(s Surface, v any) error {
	in, err := InputOf(v)
	if err != nil {
		return err
	}
	return e.Render(s, in)
}

// renderBackgrounds tiles each quadrant with a MaxScore square.
func (e *Engine) renderBackgrounds(l Layer, t Transform) {
	side := e.opts.maxScore
	fill := Solid(e.opts.theme.Background)
	for _, a := range DrawOrder() {
		q := a.Quadrant()
		corner := Point{}
		if q.X < 0 {
			corner.X -= side
		}
		if q.Y < 0 {
			corner.Y -= side
		}
		p := t.Project(corner)
		l.Rect(p.X, p.Y, t.Length(side), t.Length(side), fill)
	}
}

// renderProfile fills the four quadrant polygons of p and marks their
// vertices. With border set, the two edges meeting at each axis vertex are
// stroked as well.
func (e *Engine) renderProfile(l Layer, p Profile, t Transform, border bool) {
	th := e.opts.theme
	edge := Stroke{Width: th.BorderWidth, Color: th.Border}
	marker := Solid(th.Marker)

	for _, q := range p.Quadrants() {
		l.Polygon(t.ProjectAll(q.Polygon.Closed()), QuadrantGradient(q.Axis, th.Colours(q.Axis)))

		v := t.ProjectAll(q.Polygon.Points())
		if border {
			l.Line(v[0], v[1], edge)
			l.Line(v[1], v[2], edge)
		}
		if e.opts.markers {
			for _, pt := range v {
				l.Circle(pt, th.MarkerRadius, marker)
			}
		}
	}
}

// renderText draws the two-line label of each quadrant.
func (e *Engine) renderText(l Layer, s Surface, frame Profile, t Transform) {
	th := e.opts.theme
	titleSize := t.Length(th.TitleSize)
	captionSize := t.Length(th.CaptionSize)

	for _, a := range DrawOrder() {
		at := labelAnchor(a, th.LabelAt[a], s.Width(), s.Height())

		l.Text(a.Title()+" "+frame.DisplayValue(a), at, TextStyle{
			Family: th.FontFamily,
			Size:   titleSize,
			Anchor: AnchorMiddle,
			Color:  th.Text,
		})
		l.Text("["+a.CoreValue()+"]", ScreenPoint{X: at.X, Y: at.Y + titleSize*4/3}, TextStyle{
			Family: th.FontFamily,
			Size:   captionSize,
			Anchor: AnchorMiddle,
			Color:  th.Text,
		})
	}
}

// labelAnchor places frac within the quadrant's half of a width x height
// surface, mirroring into the left or upper half for negative signs.
func labelAnchor(a Axis, frac Point, width, height float64) ScreenPoint {
	q := a.Quadrant()
	hw, hh := width/2, height/2
	x := frac.X * hw
	if q.X < 0 {
		x -= hw
	}
	y := frac.Y * hh
	if q.Y < 0 {
		y -= hh
	}
	return ScreenPoint{X: hw + x, Y: hh + y}
}

// renderAxes draws the vertical and horizontal axis through the origin.
func (e *Engine) renderAxes(l Layer, t Transform) {
	m := e.opts.maxScore
	st := Stroke{Width: e.opts.theme.AxisWidth, Color: e.opts.theme.AxisLine}
	l.Line(t.Project(Pt(0, -m)), t.Project(Pt(0, m)), st)
	l.Line(t.Project(Pt(m, 0)), t.Project(Pt(-m, 0)), st)
}
