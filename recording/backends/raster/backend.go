// Package raster provides PNG and JPEG backends for the recording system.
// It renders recordings to an *image.RGBA with the anti-aliasing
// rasterizer from golang.org/x/image/vector.
//
// # Supported Features
//
//   - Solid and linear gradient fills in bounding-box units
//   - Butt-capped line strokes
//   - Circles built from cubic Bézier arcs
//   - Text shaped with go-text/typesetting and drawn with x/image/font
//   - PNG and JPEG output
//
// JPEG has no alpha channel, so the jpeg backend starts from a white canvas.
//
// # Example
//
//	// Import to register the backends
//	import _ "github.com/gogpu/cvi/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.BackendFor("team.png")
//
//	// Or create directly
//	backend := raster.NewBackend(raster.PNG)
//
//	rec.Playback(backend)
//	backend.SaveToFile("team.png")
//	img := backend.Image()
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"
	"os"

	"github.com/gogpu/cvi"
	"github.com/gogpu/cvi/recording"
	"github.com/gogpu/cvi/text"
)

// Format is an encoded image format.
type Format uint8

const (
	PNG Format = iota
	JPEG
)

// String returns the registry name of the format.
func (f Format) String() string {
	if f == JPEG {
		return "jpeg"
	}
	return "png"
}

func init() {
	recording.Register("png", func() recording.Backend {
		return NewBackend(PNG)
	}, ".png")
	recording.Register("jpeg", func() recording.Backend {
		return NewBackend(JPEG)
	}, ".jpg", ".jpeg")
}

// Backend renders recordings to a pixel image.
// It implements recording.Backend, recording.WriterBackend,
// recording.FileBackend, and recording.ImageBackend interfaces.
type Backend struct {
	format  Format
	quality int
	img     *image.RGBA
	width   int
	height  int
	err     error
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend encoding to format.
// The backend must be initialized with Begin before use.
func NewBackend(format Format) *Backend {
	return &Backend{format: format, quality: DefaultJPEGQuality}
}

// SetQuality sets the JPEG quality, 1 to 100. Values outside the range are
// clamped. PNG output ignores it.
func (b *Backend) SetQuality(q int) {
	b.quality = min(max(q, 1), 100)
}

// Begin initializes the backend for rendering at the given dimensions.
// This must be called before any drawing operations.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	b.width = width
	b.height = height
	b.err = nil
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	if b.format == JPEG {
		draw.Draw(b.img, b.img.Bounds(), image.White, image.Point{}, draw.Src)
	}
	return nil
}

// End finalizes the rendering. It reports the first text drawing error.
// After End is called, output methods (WriteTo, SaveToFile) can be used.
func (b *Backend) End() error {
	return b.err
}

// BeginLayer is a no-op: painting order already encodes the z-order.
func (b *Backend) BeginLayer(string) {}

// EndLayer is a no-op.
func (b *Backend) EndLayer() {}

// FillRect fills an axis-aligned rectangle.
func (b *Backend) FillRect(r recording.Rect, brush cvi.Brush) {
	b.fill([]cvi.ScreenPoint{
		{X: r.MinX, Y: r.MinY},
		{X: r.MaxX, Y: r.MinY},
		{X: r.MaxX, Y: r.MaxY},
		{X: r.MinX, Y: r.MaxY},
	}, brush)
}

// FillPolygon fills a closed polygon.
func (b *Backend) FillPolygon(pts []cvi.ScreenPoint, brush cvi.Brush) {
	b.fill(pts, brush)
}

// StrokeLine strokes a segment as a quad of the stroke width.
func (b *Backend) StrokeLine(from, to cvi.ScreenPoint, stroke cvi.Stroke) {
	if !recording.Finite(from) || !recording.Finite(to) {
		return
	}
	quad := lineQuad(from, to, stroke.Width)
	if quad == nil {
		return
	}
	b.fill(quad, cvi.Solid(stroke.Color))
}

// FillCircle fills a circle.
func (b *Backend) FillCircle(center cvi.ScreenPoint, radius float64, brush cvi.Brush) {
	if !(radius > 0) || math.IsInf(radius, 1) || !recording.Finite(center) || b.img == nil {
		return
	}
	z := newRasterizer(b.width, b.height)
	circlePath(z, center, radius)
	src := source(brush, recording.NewRect(center.X-radius, center.Y-radius, 2*radius, 2*radius))
	z.Draw(b.img, b.img.Bounds(), src, image.Point{})
}

// DrawText draws text anchored at the given baseline point.
func (b *Backend) DrawText(s string, at cvi.ScreenPoint, style cvi.TextStyle) {
	if b.img == nil {
		return
	}
	err := text.Draw(b.img, text.Lookup(style.Family), s, at.X, at.Y, style.Size, style.Anchor, style.Color.Color())
	if err != nil && b.err == nil {
		b.err = err
	}
}

// fill paints the polygon through the finite vertices of pts. The
// rasterizer does not accept NaN or infinite coordinates.
func (b *Backend) fill(pts []cvi.ScreenPoint, brush cvi.Brush) {
	pts = recording.FinitePoints(pts)
	if len(pts) < 3 || b.img == nil {
		return
	}
	z := newRasterizer(b.width, b.height)
	polygonPath(z, pts)
	z.Draw(b.img, b.img.Bounds(), source(brush, recording.BoundsOf(pts)), image.Point{})
}

// WriteTo encodes the rendered image to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, errors.New("raster: WriteTo before Begin")
	}
	cw := &countingWriter{w: w}
	err := encode(cw, b.img, b.format, b.quality)
	return cw.n, err
}

// SaveToFile encodes the rendered image to a file.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Image returns the rendered image.
func (b *Backend) Image() image.Image {
	if b.img == nil {
		return nil
	}
	return b.img
}

// Format returns the output format.
func (b *Backend) Format() Format {
	return b.format
}

// Width returns the backend width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the backend height.
func (b *Backend) Height() int {
	return b.height
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
