package cvi

// ColourPair is the light and dark end of an axis gradient.
type ColourPair struct {
	Light RGBA
	Dark  RGBA
}

// Theme holds every colour, size and font the engine draws with.
// Sizes marked "model units" scale with the diagram; pixel sizes do not.
type Theme struct {
	Background RGBA
	Border     RGBA
	AxisLine   RGBA
	Text       RGBA
	Marker     RGBA

	Axes [4]ColourPair // indexed by Axis

	FontFamily  string
	TitleSize   float64 // model units
	CaptionSize float64 // model units

	BorderWidth  float64 // pixels
	AxisWidth    float64 // pixels
	MarkerRadius float64 // pixels

	// LabelAt is the label anchor of each axis as a fraction of the
	// quadrant's half of the surface, measured from the surface edge the
	// quadrant touches on the negative side.
	LabelAt [4]Point
}

// DefaultTheme returns the standard Core Values Index palette.
func DefaultTheme() Theme {
	var t Theme
	t.Background = Hex("#E6E6E6")
	t.Border = Hex("#afafaf")
	t.AxisLine = White
	t.Text = Black
	t.Marker = Black

	t.Axes[Merchant] = ColourPair{Light: Hex("#D5DDEC"), Dark: Hex("#345AA3")}
	t.Axes[Innovator] = ColourPair{Light: Hex("#F6DCFB"), Dark: Hex("#D55EEA")}
	t.Axes[Banker] = ColourPair{Light: Hex("#C1DCBF"), Dark: Hex("#32842D")}
	t.Axes[Builder] = ColourPair{Light: Hex("#FBC9C8"), Dark: Hex("#F03230")}

	t.FontFamily = "Arial"
	t.TitleSize = 2
	t.CaptionSize = 1.5

	t.BorderWidth = 3
	t.AxisWidth = 6
	t.MarkerRadius = 2

	t.LabelAt[Merchant] = Pt(0.8, 0.3)
	t.LabelAt[Innovator] = Pt(0.8, 0.7)
	t.LabelAt[Banker] = Pt(0.2, 0.7)
	t.LabelAt[Builder] = Pt(0.2, 0.3)
	return t
}

// Colours returns the gradient pair of an axis.
func (t Theme) Colours(a Axis) ColourPair {
	if int(a) < len(t.Axes) {
		return t.Axes[a]
	}
	return ColourPair{Light: White, Dark: Black}
}

// QuadrantGradient builds the fill of an axis quadrant polygon.
//
// The direction depends only on the quadrant sign pair:
//
//	(+,+)  (0,0) -> (1,1)
//	(+,-)  (0,1) -> (1,0)
//	(-,+)  (1,0) -> (0,1)
//	(-,-)  (1,1) -> (0,0)
//
// The start is always the bounding-box corner touching the origin, so the
// dark colour sits at the origin and the light colour at the far corner.
func QuadrantGradient(a Axis, pair ColourPair) *LinearGradientBrush {
	var g *LinearGradientBrush
	s := a.Quadrant()
	switch {
	case s.X > 0 && s.Y > 0:
		g = NewLinearGradientBrush(0, 0, 1, 1)
	case s.X > 0 && s.Y < 0:
		g = NewLinearGradientBrush(0, 1, 1, 0)
	case s.X < 0 && s.Y > 0:
		g = NewLinearGradientBrush(1, 0, 0, 1)
	default:
		g = NewLinearGradientBrush(1, 1, 0, 0)
	}
	return g.AddColorStop(0, pair.Dark).AddColorStop(1, pair.Light)
}
