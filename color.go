package cvi

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#'.
// Anything else yields opaque black.
func Hex(hex string) RGBA {
	c, ok := parseHexColor(hex)
	if !ok {
		return Black
	}
	return c
}

// ParseHex is like Hex but reports malformed input as an error.
func ParseHex(hex string) (RGBA, error) {
	c, ok := parseHexColor(hex)
	if !ok {
		return RGBA{}, fmt.Errorf("cvi: invalid hex color %q", hex)
	}
	return c, nil
}

func parseHexColor(hex string) (RGBA, bool) {
	hex = strings.TrimPrefix(hex, "#")
	switch len(hex) {
	case 3, 4:
		// "f80" is shorthand for "ff8800".
		long := make([]byte, 0, 2*len(hex))
		for i := range len(hex) {
			long = append(long, hex[i], hex[i])
		}
		hex = string(long)
	case 6, 8:
	default:
		return RGBA{}, false
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, false
	}
	return RGBA{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, true
}

// HexString returns the color as "#rrggbb", or "#rrggbbaa" when translucent.
func (c RGBA) HexString() string {
	r := uint8(math.Round(clamp255(c.R * 255)))
	g := uint8(math.Round(clamp255(c.G * 255)))
	b := uint8(math.Round(clamp255(c.B * 255)))
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	a := uint8(math.Round(clamp255(c.A * 255)))
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
