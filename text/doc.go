// Package text measures and draws diagram labels.
//
// Widths come from HarfBuzz shaping via go-text/typesetting, so anchored
// labels line up with what browsers produce for the same font. Glyphs are
// rasterized with golang.org/x/image.
//
// Family names resolve through RegisterFamily and Lookup. Families that
// were never registered fall back to the bundled Go Regular font, so a
// theme asking for "Arial" still renders on a machine without it.
//
//	w := text.Advance(text.Lookup("Arial"), "Merchant 25", 24)
//	x := text.Align(350, w, cvi.AnchorMiddle)
package text
