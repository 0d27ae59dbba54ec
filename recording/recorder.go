package recording

import (
	"errors"

	"github.com/gogpu/cvi"
)

// Recorder captures drawing primitives as commands.
// It implements cvi.Surface, so an Engine can render into it directly; use
// FinishRecording to obtain an immutable Recording that can be replayed to
// different backends.
//
// Example:
//
//	rec := recording.NewRecorder(700, 700)
//	if err := cvi.NewEngine().Render(rec, cvi.Single(p)); err != nil {
//	    return err
//	}
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	top           []*layer
	resources     *ResourcePool
}

// layer is one node of the layer tree. Its items keep the order in which
// primitives and sublayers were added, which is also their z-order.
type layer struct {
	rec   *Recorder
	name  string
	items []item
}

// item holds either a drawing command or a nested layer.
type item struct {
	cmd Command
	sub *layer
}

// Compile-time interface checks.
var (
	_ cvi.Surface = (*Recorder)(nil)
	_ cvi.Layer   = (*layer)(nil)
)

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		resources: NewResourcePool(),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() float64 {
	return float64(r.width)
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() float64 {
	return float64(r.height)
}

// Clear drops every recorded layer, primitive and brush.
func (r *Recorder) Clear() {
	r.top = nil
	r.resources.Clear()
}

// Layer opens a new top-level layer stacked above all earlier ones.
func (r *Recorder) Layer(name string) cvi.Layer {
	l := &layer{rec: r, name: name}
	r.top = append(r.top, l)
	return l
}

// FinishRecording flattens the layer tree into an immutable Recording.
// Each layer becomes a BeginLayer/EndLayer pair around its contents.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	cmds := make([]Command, 0, 256)
	for _, l := range r.top {
		cmds = l.flatten(cmds)
	}
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  cmds,
		resources: r.resources,
	}
}

func (l *layer) flatten(dst []Command) []Command {
	dst = append(dst, BeginLayerCommand{Name: l.name})
	for _, it := range l.items {
		if it.sub != nil {
			dst = it.sub.flatten(dst)
			continue
		}
		dst = append(dst, it.cmd)
	}
	return append(dst, EndLayerCommand{})
}

func (l *layer) record(cmd Command) {
	l.items = append(l.items, item{cmd: cmd})
}

// Rect records a filled rectangle.
func (l *layer) Rect(x, y, w, h float64, fill cvi.Brush) {
	l.record(FillRectCommand{
		Rect:  NewRect(x, y, w, h),
		Brush: l.rec.resources.AddBrush(fill),
	})
}

// Polygon records a filled polygon. The points are copied.
func (l *layer) Polygon(pts []cvi.ScreenPoint, fill cvi.Brush) {
	l.record(FillPolygonCommand{
		Points: append([]cvi.ScreenPoint(nil), pts...),
		Brush:  l.rec.resources.AddBrush(fill),
	})
}

// Line records a stroked segment.
func (l *layer) Line(from, to cvi.ScreenPoint, stroke cvi.Stroke) {
	l.record(StrokeLineCommand{From: from, To: to, Stroke: stroke})
}

// Circle records a filled circle.
func (l *layer) Circle(center cvi.ScreenPoint, radius float64, fill cvi.Brush) {
	l.record(FillCircleCommand{
		Center: center,
		Radius: radius,
		Brush:  l.rec.resources.AddBrush(fill),
	})
}

// Text records a text run.
func (l *layer) Text(s string, at cvi.ScreenPoint, style cvi.TextStyle) {
	l.record(DrawTextCommand{Text: s, X: at.X, Y: at.Y, Style: style})
}

// Layer opens a sublayer stacked above everything in l so far.
func (l *layer) Layer(name string) cvi.Layer {
	sub := &layer{rec: l.rec, name: name}
	l.items = append(l.items, item{sub: sub})
	return sub
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands in z-order, bottom first.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Layers returns the names of the top-level layers, bottom first.
func (r *Recording) Layers() []string {
	var names []string
	depth := 0
	for _, c := range r.commands {
		switch c := c.(type) {
		case BeginLayerCommand:
			if depth == 0 {
				names = append(names, c.Name)
			}
			depth++
		case EndLayerCommand:
			depth--
		}
	}
	return names
}

// InLayer returns the drawing commands inside the first top-level layer
// called name, nested layers included. Structure commands are left out.
func (r *Recording) InLayer(name string) []Command {
	var out []Command
	depth, inside := 0, false
	for _, c := range r.commands {
		switch c := c.(type) {
		case BeginLayerCommand:
			if depth == 0 && c.Name == name {
				inside = true
			}
			depth++
			continue
		case EndLayerCommand:
			depth--
			if depth == 0 && inside {
				return out
			}
			continue
		}
		if inside {
			out = append(out, c)
		}
	}
	return out
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if backend == nil {
		return errors.New("recording: playback to nil backend")
	}
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginLayerCommand:
			backend.BeginLayer(c.Name)
		case EndLayerCommand:
			backend.EndLayer()
		case FillRectCommand:
			backend.FillRect(c.Rect, r.resources.GetBrush(c.Brush))
		case FillPolygonCommand:
			backend.FillPolygon(c.Points, r.resources.GetBrush(c.Brush))
		case StrokeLineCommand:
			backend.StrokeLine(c.From, c.To, c.Stroke)
		case FillCircleCommand:
			backend.FillCircle(c.Center, c.Radius, r.resources.GetBrush(c.Brush))
		case DrawTextCommand:
			backend.DrawText(c.Text, cvi.ScreenPoint{X: c.X, Y: c.Y}, c.Style)
		}
	}

	return backend.End()
}
