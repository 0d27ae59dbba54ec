package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/gogpu/cvi"
	"github.com/gogpu/cvi/internal/config"
)

// setupLogger installs the library logger. debug overrides the configured
// level and adds source locations.
func setupLogger(w io.Writer, lc config.LogConfig, debug bool) error {
	level, err := lc.SlogLevel()
	if err != nil {
		return err
	}
	addSource := false
	if debug {
		level = slog.LevelDebug
		addSource = true
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}

	var h slog.Handler
	if lc.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	cvi.SetLogger(slog.New(h))
	return nil
}
