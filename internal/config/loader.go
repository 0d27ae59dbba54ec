package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix of every setting.
const envPrefix = "CVI"

// keys lists every setting with its default. Viper only resolves
// environment overrides for keys it knows about, so each one is
// registered even when its default is the zero value.
var keys = map[string]any{
	"render.width":      DefaultWidth,
	"render.height":     DefaultHeight,
	"render.format":     DefaultFormat,
	"render.group":      DefaultGroup,
	"render.max_score":  DefaultMaxScore,
	"render.no_labels":  false,
	"render.no_markers": false,
	"render.quality":    DefaultQuality,

	"theme.background":    "",
	"theme.border":        "",
	"theme.axis_line":     "",
	"theme.text":          "",
	"theme.marker":        "",
	"theme.font_family":   "",
	"theme.font_file":     "",
	"theme.title_size":    0.0,
	"theme.caption_size":  0.0,
	"theme.border_width":  0.0,
	"theme.axis_width":    0.0,
	"theme.marker_radius": 0.0,

	"log.level":  DefaultLogLevel,
	"log.format": DefaultLogFormat,
}

func init() {
	for _, axis := range []string{"merchant", "innovator", "banker", "builder"} {
		keys["theme.axes."+axis+".light"] = ""
		keys["theme.axes."+axis+".dark"] = ""
	}
}

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"width":      "render.width",
	"height":     "render.height",
	"format":     "render.format",
	"group":      "render.group",
	"max-score":  "render.max_score",
	"no-labels":  "render.no_labels",
	"no-markers": "render.no_markers",
	"quality":    "render.quality",
	"font":       "theme.font_family",
	"font-file":  "theme.font_file",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// newViper builds a Viper instance with YAML file type, the CVI_ env
// prefix, automatic env binding, and a key replacer that maps "." to "_"
// so that "render.width" resolves to CVI_RENDER_WIDTH.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for k, def := range keys {
		v.SetDefault(k, def)
	}
	return v
}

// Load reads the YAML file at configPath, merges CVI_* environment
// overrides, applies defaults, and validates the result. An empty path
// builds the configuration from the environment and defaults alone.
func Load(configPath string) (*Config, error) {
	return LoadWithFlags(configPath, nil)
}

// LoadWithFlags is Load with the flags in fs layered on top. Only flags
// named in FlagKeys are bound, and only flags set on the command line
// override the file and environment.
func LoadWithFlags(configPath string, fs *pflag.FlagSet) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
		}
	}
	if fs != nil {
		for name, key := range FlagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %q: %w", name, err)
			}
		}
	}
	return unmarshalAndFinalize(v)
}

// unmarshalAndFinalize unmarshals viper state into a Config, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	cfg.Render.Format = strings.ToLower(cfg.Render.Format)
	if cfg.Render.Format == "jpg" {
		cfg.Render.Format = "jpeg"
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load that panics on any error.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
