package recording

import (
	"image"
	"io"

	"github.com/gogpu/cvi"
)

// Backend is the interface that all export backends must implement.
// Backends receive high-level drawing commands and translate them to
// their output format (SVG elements, raster pixels, etc.).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Paint commands in the order received; later commands cover earlier ones
//
// # Example Backend Registration
//
//	func init() {
//	    recording.Register("pdf", func() recording.Backend {
//	        return NewPDFBackend()
//	    }, ".pdf")
//	}
type Backend interface {
	// Lifecycle methods

	// Begin initializes the backend for rendering at the given dimensions.
	// This must be called before any drawing operations.
	Begin(width, height int) error

	// End finalizes the rendering and prepares the output.
	// After End is called, output methods (WriteTo, SaveToFile) can be used.
	End() error

	// Layer methods

	// BeginLayer opens a named group. Layers nest.
	BeginLayer(name string)

	// EndLayer closes the innermost open group.
	EndLayer()

	// Drawing methods

	// FillRect fills an axis-aligned rectangle.
	FillRect(rect Rect, brush cvi.Brush)

	// FillPolygon fills a closed polygon. Gradient brushes are expressed
	// in the polygon's bounding-box units.
	FillPolygon(pts []cvi.ScreenPoint, brush cvi.Brush)

	// StrokeLine strokes a segment with the given width and colour.
	StrokeLine(from, to cvi.ScreenPoint, stroke cvi.Stroke)

	// FillCircle fills a circle.
	FillCircle(center cvi.ScreenPoint, radius float64, brush cvi.Brush)

	// DrawText draws text at the given position.
	// The position is the baseline point selected by style.Anchor.
	DrawText(s string, at cvi.ScreenPoint, style cvi.TextStyle)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
// This is useful for streaming output or writing to network connections.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	// Returns the number of bytes written and any error.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rasterized result.
// This is implemented by the raster backend and allows direct pixel access.
type ImageBackend interface {
	Backend

	// Image returns the rendered image.
	// This should only be called after End().
	// Returns nil if no image is available.
	Image() image.Image
}
