package cvi

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Axis identifies one of the four Core Values Index scores.
type Axis uint8

// Axes in canonical order: the order of the fields in a row tuple.
const (
	Merchant Axis = iota
	Innovator
	Banker
	Builder
)

var axisNames = [...]string{
	Merchant:  "merchant",
	Innovator: "innovator",
	Banker:    "banker",
	Builder:   "builder",
}

var coreValues = [...]string{
	Merchant:  "Love",
	Innovator: "Wisdom",
	Banker:    "Knowledge",
	Builder:   "Power",
}

// Sign is the sign pair of the coordinate-plane quadrant an axis occupies.
// Y grows downwards on the drawing surface, so (+,+) is bottom right.
type Sign struct {
	X, Y int
}

var quadrantSigns = [...]Sign{
	Merchant:  {X: 1, Y: -1},
	Innovator: {X: 1, Y: 1},
	Banker:    {X: -1, Y: 1},
	Builder:   {X: -1, Y: -1},
}

// Axes returns all four axes in canonical order.
func Axes() []Axis {
	return []Axis{Merchant, Innovator, Banker, Builder}
}

// DrawOrder returns the axes in the order their quadrants are drawn.
func DrawOrder() []Axis {
	return []Axis{Builder, Merchant, Innovator, Banker}
}

// String returns the lower-case axis name.
func (a Axis) String() string {
	if int(a) < len(axisNames) {
		return axisNames[a]
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// Title returns the axis name as shown on the diagram, e.g. "Merchant".
func (a Axis) Title() string {
	return cases.Title(language.English).String(a.String())
}

// CoreValue returns the core value caption of the axis.
func (a Axis) CoreValue() string {
	if int(a) < len(coreValues) {
		return coreValues[a]
	}
	return ""
}

// Quadrant returns the sign pair of the quadrant the axis occupies.
func (a Axis) Quadrant() Sign {
	if int(a) < len(quadrantSigns) {
		return quadrantSigns[a]
	}
	return Sign{}
}

// ParseAxis returns the axis with the given name, ignoring case and
// surrounding space.
func ParseAxis(s string) (Axis, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range axisNames {
		if n == name {
			return Axis(i), nil
		}
	}
	return 0, fmt.Errorf("cvi: unknown axis %q", s)
}
