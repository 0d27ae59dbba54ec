package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/cvi"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Align returns the x coordinate at which a run of the given width starts
// so that x is its anchor point.
func Align(x, width float64, anchor cvi.Anchor) float64 {
	switch anchor {
	case cvi.AnchorMiddle:
		return x - width/2
	case cvi.AnchorEnd:
		return x - width
	default:
		return x
	}
}

// Draw renders s onto dst in src at size pixels.
// (x, y) is the baseline point selected by anchor.
func Draw(dst draw.Image, src *FontSource, s string, x, y, size float64, anchor cvi.Anchor, col color.Color) error {
	if s == "" || src == nil || size <= 0 {
		return nil
	}

	otFace, err := opentype.NewFace(src.glyphs, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return fmt.Errorf("text: face at %vpx: %w", size, err)
	}
	defer func() {
		_ = otFace.Close()
	}()

	x = Align(x, Advance(src, s, size), anchor)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: otFace,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
	return nil
}
