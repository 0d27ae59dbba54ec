package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gogpu/cvi"
	"github.com/gogpu/cvi/internal/config"
	"github.com/gogpu/cvi/internal/rows"
	"github.com/gogpu/cvi/recording"
	"github.com/gogpu/cvi/text"

	// Registered export backends.
	_ "github.com/gogpu/cvi/recording/backends/raster"
	_ "github.com/gogpu/cvi/recording/backends/svg"
)

type renderOpts struct {
	inputFormat string
	output      string
	only        []string
	frameFirst  bool
}

func renderCmd(a *app) *cobra.Command {
	var o renderOpts

	c := &cobra.Command{
		Use:   "render <rows-file|->",
		Short: "Render a diagram from a score table",
		Long: "Render one row as a single profile, or several rows as a group whose\n" +
			"averaged profile is framed over the individual overlays.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := selectRows(cmd.InOrStdin(), args[0], o.inputFormat, o.only)
			if err != nil {
				return err
			}
			return renderRows(cmd.OutOrStdout(), a.cfg, rs, o)
		},
	}

	f := c.Flags()
	f.StringVarP(&o.output, "output", "o", "", `output file, or "-" for stdout (default "cvi" + format extension)`)
	f.StringVar(&o.inputFormat, "input-format", "", "input format: json|csv|yaml (default from extension; json for stdin)")
	f.StringSliceVar(&o.only, "only", nil, "render only the named rows")
	f.BoolVar(&o.frameFirst, "frame-first", false, "frame the first row and overlay the rest instead of averaging")

	f.Int("width", config.DefaultWidth, "surface width in pixels")
	f.Int("height", config.DefaultHeight, "surface height in pixels")
	f.String("format", config.DefaultFormat, "output format when the output has no extension: svg|png|jpeg")
	f.String("group", config.DefaultGroup, "name of the averaged group profile")
	f.Float64("max-score", config.DefaultMaxScore, "score that reaches the surface edge")
	f.Bool("no-labels", false, "omit axis labels")
	f.Bool("no-markers", false, "omit vertex markers")
	f.Int("quality", config.DefaultQuality, "JPEG quality 1-100")
	f.String("font", "", "font family for labels")
	f.String("font-file", "", "TTF or OTF file drawing the label font in png and jpeg output")
	return c
}

// inputOf picks how rows are drawn: one row alone, several as a group, or
// the first framing the rest.
func inputOf(cfg *config.Config, rs []rows.Row, frameFirst bool) cvi.Input {
	ps := rows.Profiles(rs)
	switch {
	case len(ps) == 1:
		return cvi.Single(ps[0])
	case frameFirst:
		return cvi.FrameFirst(ps)
	default:
		return cvi.Group(cvi.NewGroupProfile(cfg.Render.Group, ps))
	}
}

func renderRows(stdout io.Writer, cfg *config.Config, rs []rows.Row, o renderOpts) error {
	opts, err := cfg.EngineOptions()
	if err != nil {
		return err
	}
	if opts, err = loadFont(cfg, opts); err != nil {
		return err
	}

	rec := recording.NewRecorder(cfg.Render.Width, cfg.Render.Height)
	if err := cvi.NewEngine(opts...).Render(rec, inputOf(cfg, rs, o.frameFirst)); err != nil {
		return err
	}

	output := o.output
	if output == "" {
		output = "cvi" + defaultExt(cfg.Render.Format)
	}
	b, err := backendFor(output, cfg.Render.Format)
	if err != nil {
		return err
	}
	if q, ok := b.(interface{ SetQuality(int) }); ok {
		q.SetQuality(cfg.Render.Quality)
	}

	if err := rec.FinishRecording().Playback(b); err != nil {
		return err
	}

	if output == stdio {
		if cfg.Render.Format != "svg" && isTerminal(stdout) {
			return fmt.Errorf("refusing to write %s data to a terminal; use -o <file>", cfg.Render.Format)
		}
		wb, ok := b.(recording.WriterBackend)
		if !ok {
			return fmt.Errorf("%s backend cannot stream to stdout", cfg.Render.Format)
		}
		_, err := wb.WriteTo(stdout)
		return err
	}

	fb, ok := b.(recording.FileBackend)
	if !ok {
		return errors.New("backend cannot write files")
	}
	if err := fb.SaveToFile(output); err != nil {
		return err
	}
	cvi.Logger().Info("cli: wrote diagram", "path", output, "rows", len(rs))
	return nil
}

// loadFont registers the configured font file under the label family and
// returns opts with that family applied. Without a configured family the
// name stored in the font is used.
func loadFont(cfg *config.Config, opts []cvi.Option) ([]cvi.Option, error) {
	path := cfg.Theme.FontFile
	if path == "" {
		return opts, nil
	}
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, err
	}
	th := cvi.NewEngine(opts...).Theme()
	if cfg.Theme.FontFamily == "" && src.Name() != "" {
		th.FontFamily = src.Name()
	}
	text.RegisterFamily(th.FontFamily, src)
	cvi.Logger().Debug("cli: registered font", "family", th.FontFamily, "file", path, "name", src.Name())
	return append(opts, cvi.WithTheme(th)), nil
}

// backendFor picks a backend from the output extension, falling back to
// format when there is none.
func backendFor(output, format string) (recording.Backend, error) {
	if output != stdio && filepath.Ext(output) != "" {
		return recording.BackendFor(output)
	}
	return recording.NewBackend(format)
}

func defaultExt(format string) string {
	if exts := recording.Extensions(format); len(exts) > 0 {
		return exts[0]
	}
	return "." + format
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
