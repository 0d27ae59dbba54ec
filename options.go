package cvi

// Option configures an Engine during creation.
//
// Example:
//
//	// Default theme, labels and markers
//	eng := cvi.NewEngine()
//
//	// Custom palette, no reference markers
//	eng := cvi.NewEngine(cvi.WithTheme(theme), cvi.WithMarkers(false))
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	theme    Theme
	maxScore float64
	labels   bool
	markers  bool
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		theme:    DefaultTheme(),
		maxScore: MaxScore,
		labels:   true,
		markers:  true,
	}
}

// WithTheme sets the colours, fonts and sizes used for drawing.
func WithTheme(t Theme) Option {
	return func(o *engineOptions) {
		o.theme = t
	}
}

// WithMaxScore sets the score that maps to the surface edge.
// Non-positive values are ignored.
func WithMaxScore(score float64) Option {
	return func(o *engineOptions) {
		if score > 0 {
			o.maxScore = score
		}
	}
}

// WithLabels enables or disables the text layer.
func WithLabels(on bool) Option {
	return func(o *engineOptions) {
		o.labels = on
	}
}

// WithMarkers enables or disables the reference markers on polygon vertices.
func WithMarkers(on bool) Option {
	return func(o *engineOptions) {
		o.markers = on
	}
}
