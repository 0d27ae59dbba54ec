package recording

import "github.com/gogpu/cvi"

// CommandType identifies the type of a command.
// Each command type corresponds to a specific drawing operation.
type CommandType uint8

const (
	// Structure commands
	CmdBeginLayer CommandType = iota // Open a layer
	CmdEndLayer                      // Close the innermost open layer

	// Drawing commands
	CmdFillRect    // Fill an axis-aligned rectangle
	CmdFillPolygon // Fill a closed polygon
	CmdStrokeLine  // Stroke a line segment
	CmdFillCircle  // Fill a circle
	CmdDrawText    // Draw a text run
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginLayer:  "BeginLayer",
	CmdEndLayer:    "EndLayer",
	CmdFillRect:    "FillRect",
	CmdFillPolygon: "FillPolygon",
	CmdStrokeLine:  "StrokeLine",
	CmdFillCircle:  "FillCircle",
	CmdDrawText:    "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// BrushRef is a reference to a brush in the resource pool.
// The zero value is a valid reference to the first brush (if any).
type BrushRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid brush.
func (r BrushRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// --------------------------------------------------------------------------
// Structure Commands
// --------------------------------------------------------------------------

// BeginLayerCommand opens a named layer. Everything up to the matching
// EndLayerCommand belongs to it.
type BeginLayerCommand struct {
	// Name is the layer name given by the caller.
	Name string
}

// Type implements Command.
func (BeginLayerCommand) Type() CommandType { return CmdBeginLayer }

// EndLayerCommand closes the innermost open layer.
type EndLayerCommand struct{}

// Type implements Command.
func (EndLayerCommand) Type() CommandType { return CmdEndLayer }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// FillRectCommand fills a rectangle with a brush.
type FillRectCommand struct {
	// Rect is the rectangle to fill.
	Rect Rect
	// Brush references the fill brush in the resource pool.
	Brush BrushRef
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// FillPolygonCommand fills a closed polygon with a brush.
type FillPolygonCommand struct {
	// Points are the polygon vertices; the last joins back to the first.
	Points []cvi.ScreenPoint
	// Brush references the fill brush in the resource pool.
	Brush BrushRef
}

// Type implements Command.
func (FillPolygonCommand) Type() CommandType { return CmdFillPolygon }

// Bounds returns the bounding box of the polygon.
func (c FillPolygonCommand) Bounds() Rect {
	return BoundsOf(c.Points)
}

// StrokeLineCommand strokes a line segment.
type StrokeLineCommand struct {
	From, To cvi.ScreenPoint
	// Stroke holds the line width and colour.
	Stroke cvi.Stroke
}

// Type implements Command.
func (StrokeLineCommand) Type() CommandType { return CmdStrokeLine }

// FillCircleCommand fills a circle with a brush.
type FillCircleCommand struct {
	Center cvi.ScreenPoint
	Radius float64
	// Brush references the fill brush in the resource pool.
	Brush BrushRef
}

// Type implements Command.
func (FillCircleCommand) Type() CommandType { return CmdFillCircle }

// DrawTextCommand draws text with its baseline origin at (X, Y).
type DrawTextCommand struct {
	// Text is the string to render.
	Text string
	X, Y float64
	// Style holds the font family, size, anchor and colour.
	Style cvi.TextStyle
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
