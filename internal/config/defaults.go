package config

import "github.com/gogpu/cvi"

// Default value constants.
const (
	DefaultWidth    = 800
	DefaultHeight   = 800
	DefaultFormat   = "svg"
	DefaultGroup    = "Meeting"
	DefaultMaxScore = cvi.MaxScore
	DefaultQuality  = 92

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"

	// MaxDimension bounds the surface size in pixels.
	MaxDimension = 16384
)

// ApplyDefaults fills every zero-value field in cfg with its default.
// Fields that have already been set are left unchanged.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Render.Width == 0 {
		cfg.Render.Width = DefaultWidth
	}
	if cfg.Render.Height == 0 {
		cfg.Render.Height = DefaultHeight
	}
	if cfg.Render.Format == "" {
		cfg.Render.Format = DefaultFormat
	}
	if cfg.Render.Group == "" {
		cfg.Render.Group = DefaultGroup
	}
	if cfg.Render.MaxScore == 0 {
		cfg.Render.MaxScore = DefaultMaxScore
	}
	if cfg.Render.Quality == 0 {
		cfg.Render.Quality = DefaultQuality
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
