// Package svg provides an SVG backend for the recording system.
//
// Layers become <g> elements carrying the layer name as id, and gradient
// brushes become <linearGradient> definitions in objectBoundingBox units,
// so the output keeps the same structure a browser canvas library would
// produce for the same diagram.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/cvi/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	if err := r.Playback(backend); err != nil {
//	    return err
//	}
//	backend.(recording.FileBackend).SaveToFile("team.svg")
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/cvi"
	"github.com/gogpu/cvi/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	}, ".svg")
}

// Backend writes recordings as SVG documents.
// It implements recording.Backend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	width, height int

	defs    bytes.Buffer
	body    bytes.Buffer
	defsEnc *xml.Encoder
	bodyEnc *xml.Encoder

	gradients map[string]string // gradient key -> id
	ids       map[string]int    // layer name -> times used
	depth     int
	out       []byte
	err       error
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin resets the backend for a width x height document.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid size %dx%d", width, height)
	}
	b.width, b.height = width, height
	b.defs.Reset()
	b.body.Reset()
	b.defsEnc = xml.NewEncoder(&b.defs)
	b.bodyEnc = xml.NewEncoder(&b.body)
	b.gradients = make(map[string]string)
	b.ids = make(map[string]int)
	b.depth = 0
	b.out = nil
	b.err = nil
	return nil
}

// End closes any layers left open and assembles the document.
func (b *Backend) End() error {
	for b.depth > 0 {
		b.EndLayer()
	}
	b.setErr(b.defsEnc.Flush())
	b.setErr(b.bodyEnc.Flush())
	if b.err != nil {
		return b.err
	}

	var doc bytes.Buffer
	enc := xml.NewEncoder(&doc)
	root := xml.StartElement{Name: xml.Name{Local: "svg"}}
	addAttr(&root.Attr, "xmlns", "http://www.w3.org/2000/svg")
	addAttr(&root.Attr, "width", strconv.Itoa(b.width))
	addAttr(&root.Attr, "height", strconv.Itoa(b.height))
	addAttr(&root.Attr, "viewBox", fmt.Sprintf("0 0 %d %d", b.width, b.height))
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	if b.defs.Len() > 0 {
		doc.WriteString("<defs>")
		doc.Write(b.defs.Bytes())
		doc.WriteString("</defs>")
	}
	doc.Write(b.body.Bytes())
	doc.WriteString("</svg>\n")

	b.out = doc.Bytes()
	return nil
}

// BeginLayer opens a <g> element.
func (b *Backend) BeginLayer(name string) {
	se := xml.StartElement{Name: xml.Name{Local: "g"}}
	if name != "" {
		addAttr(&se.Attr, "id", b.uniqueID(name))
	}
	b.setErr(b.bodyEnc.EncodeToken(se))
	b.depth++
}

// EndLayer closes the innermost <g> element.
func (b *Backend) EndLayer() {
	if b.depth == 0 {
		return
	}
	b.setErr(b.bodyEnc.EncodeToken(xml.EndElement{Name: xml.Name{Local: "g"}}))
	b.depth--
}

// FillRect writes a <rect>.
func (b *Backend) FillRect(r recording.Rect, brush cvi.Brush) {
	var attr []xml.Attr
	addAttr(&attr, "x", num(r.X()))
	addAttr(&attr, "y", num(r.Y()))
	addAttr(&attr, "width", num(r.Width()))
	addAttr(&attr, "height", num(r.Height()))
	b.fill(&attr, brush)
	b.element("rect", attr, "")
}

// FillPolygon writes a <polygon>.
// Non-finite vertices are dropped; fewer than three remaining writes nothing.
func (b *Backend) FillPolygon(pts []cvi.ScreenPoint, brush cvi.Brush) {
	pts = recording.FinitePoints(pts)
	if len(pts) < 3 {
		return
	}
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(num(p.X))
		sb.WriteByte(',')
		sb.WriteString(num(p.Y))
	}
	var attr []xml.Attr
	addAttr(&attr, "points", sb.String())
	b.fill(&attr, brush)
	b.element("polygon", attr, "")
}

// StrokeLine writes a <line>, or nothing when an end point is not finite.
func (b *Backend) StrokeLine(from, to cvi.ScreenPoint, stroke cvi.Stroke) {
	if !recording.Finite(from) || !recording.Finite(to) {
		return
	}
	var attr []xml.Attr
	addAttr(&attr, "x1", num(from.X))
	addAttr(&attr, "y1", num(from.Y))
	addAttr(&attr, "x2", num(to.X))
	addAttr(&attr, "y2", num(to.Y))
	paint(&attr, "stroke", stroke.Color)
	addAttr(&attr, "stroke-width", num(stroke.Width))
	b.element("line", attr, "")
}

// FillCircle writes a <circle>, or nothing when the centre or radius is
// not finite.
func (b *Backend) FillCircle(center cvi.ScreenPoint, radius float64, brush cvi.Brush) {
	if !recording.Finite(center) || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return
	}
	var attr []xml.Attr
	addAttr(&attr, "cx", num(center.X))
	addAttr(&attr, "cy", num(center.Y))
	addAttr(&attr, "r", num(radius))
	b.fill(&attr, brush)
	b.element("circle", attr, "")
}

// DrawText writes a <text>.
func (b *Backend) DrawText(s string, at cvi.ScreenPoint, style cvi.TextStyle) {
	var attr []xml.Attr
	addAttr(&attr, "x", num(at.X))
	addAttr(&attr, "y", num(at.Y))
	if style.Family != "" {
		addAttr(&attr, "font-family", style.Family)
	}
	addAttr(&attr, "font-size", num(style.Size))
	if style.Anchor != cvi.AnchorStart {
		addAttr(&attr, "text-anchor", style.Anchor.String())
	}
	paint(&attr, "fill", style.Color)
	b.element("text", attr, s)
}

// Bytes returns the finished document. It is nil before End.
func (b *Backend) Bytes() []byte {
	return b.out
}

// WriteTo writes the finished document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.out == nil {
		return 0, errors.New("svg: WriteTo before End")
	}
	n, err := w.Write(b.out)
	return int64(n), err
}

// SaveToFile writes the finished document to path.
func (b *Backend) SaveToFile(path string) error {
	if b.out == nil {
		return errors.New("svg: SaveToFile before End")
	}
	return os.WriteFile(path, b.out, 0o644) //nolint:gosec // exported images are world-readable
}

func (b *Backend) element(name string, attr []xml.Attr, content string) {
	se := xml.StartElement{Name: xml.Name{Local: name}, Attr: attr}
	b.setErr(b.bodyEnc.EncodeToken(se))
	if content != "" {
		b.setErr(b.bodyEnc.EncodeToken(xml.CharData(content)))
	}
	b.setErr(b.bodyEnc.EncodeToken(se.End()))
}

// fill adds the fill attributes for brush, defining a gradient if needed.
func (b *Backend) fill(attr *[]xml.Attr, brush cvi.Brush) {
	switch br := brush.(type) {
	case cvi.SolidBrush:
		paint(attr, "fill", br.Color)
	case *cvi.LinearGradientBrush:
		addAttr(attr, "fill", "url(#"+b.gradient(br)+")")
	case nil:
		addAttr(attr, "fill", "none")
	default:
		paint(attr, "fill", brush.ColorAt(0.5, 0.5))
	}
}

// gradient returns the id of a <linearGradient> matching g, writing the
// definition the first time it is seen.
func (b *Backend) gradient(g *cvi.LinearGradientBrush) string {
	key := gradientKey(g)
	if id, ok := b.gradients[key]; ok {
		return id
	}
	id := "grad" + strconv.Itoa(len(b.gradients))
	b.gradients[key] = id

	se := xml.StartElement{Name: xml.Name{Local: "linearGradient"}}
	addAttr(&se.Attr, "id", id)
	addAttr(&se.Attr, "gradientUnits", "objectBoundingBox")
	addAttr(&se.Attr, "x1", num(g.Start.X))
	addAttr(&se.Attr, "y1", num(g.Start.Y))
	addAttr(&se.Attr, "x2", num(g.End.X))
	addAttr(&se.Attr, "y2", num(g.End.Y))
	b.setErr(b.defsEnc.EncodeToken(se))
	for _, s := range g.Stops {
		stop := xml.StartElement{Name: xml.Name{Local: "stop"}}
		addAttr(&stop.Attr, "offset", num(s.Offset))
		paint(&stop.Attr, "stop-color", s.Color)
		b.setErr(b.defsEnc.EncodeToken(stop))
		b.setErr(b.defsEnc.EncodeToken(stop.End()))
	}
	b.setErr(b.defsEnc.EncodeToken(se.End()))
	return id
}

func gradientKey(g *cvi.LinearGradientBrush) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%g,%g,%g,%g", g.Start.X, g.Start.Y, g.End.X, g.End.Y)
	for _, s := range g.Stops {
		fmt.Fprintf(&sb, ";%g:%s", s.Offset, s.Color.HexString())
	}
	return sb.String()
}

func (b *Backend) uniqueID(name string) string {
	n := b.ids[name]
	b.ids[name] = n + 1
	if n == 0 {
		return name
	}
	return name + "-" + strconv.Itoa(n+1)
}

func (b *Backend) setErr(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

// paint sets a colour attribute, adding "<name>-opacity" for translucent
// colours. stop-color pairs with stop-opacity.
func paint(attr *[]xml.Attr, name string, c cvi.RGBA) {
	opaque := c
	opaque.A = 1
	addAttr(attr, name, opaque.HexString())
	if c.A < 1 {
		prefix := name
		if name == "stop-color" {
			prefix = "stop"
		}
		addAttr(attr, prefix+"-opacity", num(c.A))
	}
}

func addAttr(attr *[]xml.Attr, name, val string) {
	*attr = append(*attr, xml.Attr{Name: xml.Name{Local: name}, Value: val})
}

// num formats a coordinate with at most 3 decimals and no trailing zeros.
func num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return "0" // also folds -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
