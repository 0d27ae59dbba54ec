// Package config provides configuration loading, defaults, and validation
// for the cvi command.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/cvi"
)

// Config is the full command configuration.
type Config struct {
	Render RenderConfig `mapstructure:"render"`
	Theme  ThemeConfig  `mapstructure:"theme"`
	Log    LogConfig    `mapstructure:"log"`
}

// RenderConfig controls the diagram and its export.
type RenderConfig struct {
	Width     int     `mapstructure:"width"`
	Height    int     `mapstructure:"height"`
	Format    string  `mapstructure:"format"` // used when the output path has no extension
	Group     string  `mapstructure:"group"`
	MaxScore  float64 `mapstructure:"max_score"`
	NoLabels  bool    `mapstructure:"no_labels"`
	NoMarkers bool    `mapstructure:"no_markers"`
	Quality   int     `mapstructure:"quality"` // JPEG only
}

// PairConfig overrides one axis gradient. Empty fields keep the default.
type PairConfig struct {
	Light string `mapstructure:"light"`
	Dark  string `mapstructure:"dark"`
}

// AxesConfig holds the per-axis gradient overrides.
type AxesConfig struct {
	Merchant  PairConfig `mapstructure:"merchant"`
	Innovator PairConfig `mapstructure:"innovator"`
	Banker    PairConfig `mapstructure:"banker"`
	Builder   PairConfig `mapstructure:"builder"`
}

// ThemeConfig overrides parts of cvi.DefaultTheme. Zero values keep the
// default.
type ThemeConfig struct {
	Background   string     `mapstructure:"background"`
	Border       string     `mapstructure:"border"`
	AxisLine     string     `mapstructure:"axis_line"`
	Text         string     `mapstructure:"text"`
	Marker       string     `mapstructure:"marker"`
	FontFamily   string     `mapstructure:"font_family"`
	FontFile     string     `mapstructure:"font_file"` // TTF or OTF used to draw FontFamily in raster output
	TitleSize    float64    `mapstructure:"title_size"`
	CaptionSize  float64    `mapstructure:"caption_size"`
	BorderWidth  float64    `mapstructure:"border_width"`
	AxisWidth    float64    `mapstructure:"axis_width"`
	MarkerRadius float64    `mapstructure:"marker_radius"`
	Axes         AxesConfig `mapstructure:"axes"`
}

// LogConfig controls the command's structured logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "text" | "json"
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Render.Width < 1 || c.Render.Width > MaxDimension {
		return fmt.Errorf("config: render.width %d is out of range [1, %d]", c.Render.Width, MaxDimension)
	}
	if c.Render.Height < 1 || c.Render.Height > MaxDimension {
		return fmt.Errorf("config: render.height %d is out of range [1, %d]", c.Render.Height, MaxDimension)
	}
	switch c.Render.Format {
	case "svg", "png", "jpeg":
	default:
		return fmt.Errorf("config: render.format %q is invalid; expected svg|png|jpeg", c.Render.Format)
	}
	if strings.TrimSpace(c.Render.Group) == "" {
		return fmt.Errorf("config: render.group is required")
	}
	if c.Render.MaxScore <= 0 {
		return fmt.Errorf("config: render.max_score must be > 0, got %g", c.Render.MaxScore)
	}
	if c.Render.Quality < 1 || c.Render.Quality > 100 {
		return fmt.Errorf("config: render.quality %d is out of range [1, 100]", c.Render.Quality)
	}

	if _, err := c.Theme.Apply(cvi.DefaultTheme()); err != nil {
		return err
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected text|json", c.Log.Format)
	}
	return nil
}

type colourField struct {
	key string
	val string
	dst *cvi.RGBA
}

// Apply returns base with every non-zero override applied.
func (t ThemeConfig) Apply(base cvi.Theme) (cvi.Theme, error) {
	colours := []colourField{
		{"background", t.Background, &base.Background},
		{"border", t.Border, &base.Border},
		{"axis_line", t.AxisLine, &base.AxisLine},
		{"text", t.Text, &base.Text},
		{"marker", t.Marker, &base.Marker},
	}
	pairs := [4]PairConfig{
		cvi.Merchant:  t.Axes.Merchant,
		cvi.Innovator: t.Axes.Innovator,
		cvi.Banker:    t.Axes.Banker,
		cvi.Builder:   t.Axes.Builder,
	}
	for _, a := range cvi.Axes() {
		prefix := "axes." + a.String()
		colours = append(colours,
			colourField{prefix + ".light", pairs[a].Light, &base.Axes[a].Light},
			colourField{prefix + ".dark", pairs[a].Dark, &base.Axes[a].Dark},
		)
	}
	for _, c := range colours {
		if c.val == "" {
			continue
		}
		rgba, err := cvi.ParseHex(c.val)
		if err != nil {
			return base, fmt.Errorf("config: theme.%s: %w", c.key, err)
		}
		*c.dst = rgba
	}

	if t.FontFamily != "" {
		base.FontFamily = t.FontFamily
	}
	sizes := []struct {
		key string
		val float64
		dst *float64
	}{
		{"title_size", t.TitleSize, &base.TitleSize},
		{"caption_size", t.CaptionSize, &base.CaptionSize},
		{"border_width", t.BorderWidth, &base.BorderWidth},
		{"axis_width", t.AxisWidth, &base.AxisWidth},
		{"marker_radius", t.MarkerRadius, &base.MarkerRadius},
	}
	for _, s := range sizes {
		if s.val < 0 {
			return base, fmt.Errorf("config: theme.%s must be ≥ 0, got %g", s.key, s.val)
		}
		if s.val > 0 {
			*s.dst = s.val
		}
	}
	return base, nil
}

// SlogLevel parses the configured level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", l.Level)
	}
}

// EngineOptions returns the engine options the configuration describes.
func (c *Config) EngineOptions() ([]cvi.Option, error) {
	theme, err := c.Theme.Apply(cvi.DefaultTheme())
	if err != nil {
		return nil, err
	}
	return []cvi.Option{
		cvi.WithTheme(theme),
		cvi.WithMaxScore(c.Render.MaxScore),
		cvi.WithLabels(!c.Render.NoLabels),
		cvi.WithMarkers(!c.Render.NoMarkers),
	}, nil
}
