package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/gogpu/cvi"
	"github.com/gogpu/cvi/internal/config"
	"github.com/gogpu/cvi/internal/rows"
	"github.com/gogpu/cvi/text"
)

const nicholsonsJSON = `[["Mark",21,29,8,14],["Karen",29,14,13,16]]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the command tree with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { cvi.SetLogger(nil) })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender_SVGFile(t *testing.T) {
	in := writeFile(t, "team.json", nicholsonsJSON)
	out := filepath.Join(t.TempDir(), "team.svg")

	_, err := run(t, "", "render", in, "-o", out, "--group", "Nicholsons")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	svg := string(data)
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Equal(t, 4, strings.Count(svg, "<linearGradient"))
	assert.Contains(t, svg, ">Merchant 25</text>")
}

func TestRender_PNGFromCSV(t *testing.T) {
	in := writeFile(t, "team.csv", "name,merchant,innovator,banker,builder\nMark,21,29,8,14\n")
	out := filepath.Join(t.TempDir(), "mark.png")

	_, err := run(t, "", "render", in, "-o", out, "--width", "200", "--height", "120")
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
}

func TestRender_Stdout(t *testing.T) {
	out, err := run(t, nicholsonsJSON, "render", "-", "-o", "-", "--no-labels")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.NotContains(t, out, "<text")

	out, err = run(t, nicholsonsJSON, "render", "-", "-o", "-", "--format", "png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\x89PNG"))
}

func TestRender_Only(t *testing.T) {
	in := writeFile(t, "team.json", nicholsonsJSON)

	out, err := run(t, "", "render", in, "-o", "-", "--only", "Karen")
	require.NoError(t, err)
	assert.Contains(t, out, ">Merchant 29</text>")

	_, err = run(t, "", "render", in, "-o", "-", "--only", "Nobody")
	assert.ErrorContains(t, err, "no rows match")
}

func TestRender_FrameFirst(t *testing.T) {
	in := writeFile(t, "team.json", nicholsonsJSON)
	out, err := run(t, "", "render", in, "-o", "-", "--frame-first")
	require.NoError(t, err)
	assert.Contains(t, out, ">Merchant 21</text>")
}

func TestRender_Errors(t *testing.T) {
	in := writeFile(t, "team.json", nicholsonsJSON)

	_, err := run(t, "", "render", in, "-o", filepath.Join(t.TempDir(), "team.gif"))
	assert.ErrorContains(t, err, "no backend writes .gif files")

	_, err = run(t, "", "render", writeFile(t, "bad.json", `[["Mark",1,2]]`))
	var pe *rows.ParseError
	assert.ErrorAs(t, err, &pe)

	_, err = run(t, "", "render", in, "--width", "0")
	assert.Error(t, err)

	_, err = run(t, "", "render")
	assert.Error(t, err)
}

func TestRender_FontFile(t *testing.T) {
	mono, err := text.NewFontSource(gomono.TTF)
	require.NoError(t, err)
	family := mono.Name()
	require.NotEmpty(t, family)
	t.Cleanup(func() { text.RegisterFamily(family, nil) })

	fontPath := writeFile(t, "mono.ttf", string(gomono.TTF))
	in := writeFile(t, "team.json", nicholsonsJSON)

	out, err := run(t, "", "render", in, "-o", "-", "--font-file", fontPath)
	require.NoError(t, err)
	assert.Contains(t, out, `font-family="`+family+`"`)
	assert.NotSame(t, text.Default(), text.Lookup(family))

	pngPath := filepath.Join(t.TempDir(), "team.png")
	_, err = run(t, "", "render", in, "-o", pngPath, "--font", "Labels", "--font-file", fontPath)
	require.NoError(t, err)
	t.Cleanup(func() { text.RegisterFamily("Labels", nil) })
	assert.Equal(t, family, text.Lookup("labels").Name())

	_, err = run(t, "", "render", in, "-o", "-", "--font-file", filepath.Join(t.TempDir(), "absent.ttf"))
	assert.ErrorContains(t, err, "failed to read font file")
}

func TestConvert(t *testing.T) {
	in := writeFile(t, "cvi-data.js", nicholsonsJSON)
	out := filepath.Join(t.TempDir(), "team.csv")

	_, err := run(t, "", "convert", in, out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "name,merchant,innovator,banker,builder\nMark,21,29,8,14\nKaren,29,14,13,16\n", string(data))

	stdout, err := run(t, "", "convert", out, "-", "--to", "yaml", "--only", "Mark")
	require.NoError(t, err)
	got, err := rows.DecodeYAML([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, []rows.Row{{Name: "Mark", Merchant: 21, Innovator: 29, Banker: 8, Builder: 14}}, got)
}

func TestConvert_NonIntegerCSV(t *testing.T) {
	in := writeFile(t, "team.json", `[["Avg",25,21.5,10.5,15]]`)
	out := filepath.Join(t.TempDir(), "team.csv")

	_, err := run(t, "", "convert", in, out)
	assert.ErrorIs(t, err, rows.ErrNotInteger)
	assert.NoFileExists(t, out)
}

func TestSummary(t *testing.T) {
	in := writeFile(t, "team.json", nicholsonsJSON)
	out, err := run(t, "", "summary", in, "--group", "Nicholsons")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "Merchant")
	assert.Contains(t, out, "Mark")
	assert.Contains(t, out, "Types of Nicholsons")
	assert.Regexp(t, `Nicholsons\s+25\s+21.50\s+10.50\s+15`, out)
	assert.Regexp(t, `Intuitive\s+40\n`, out)
	assert.Regexp(t, `Creative\s+46.50\n`, out)
	assert.Regexp(t, `Cognitive\s+32\n`, out)
	assert.NotContains(t, out, "warning")
}

func TestSummary_Single(t *testing.T) {
	out, err := run(t, `[["Mark",21,29,8,40]]`, "summary", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Types of Mark")
	assert.NotContains(t, out, config.DefaultGroup)
	assert.Contains(t, out, "warning: ")

	t.Setenv("CVI_RENDER_MAX_SCORE", "50")
	out, err = run(t, `[["Mark",21,29,8,40]]`, "summary", "-")
	require.NoError(t, err)
	assert.NotContains(t, out, "warning")
}

func TestBackends(t *testing.T) {
	out, err := run(t, "", "backends")
	require.NoError(t, err)
	assert.Contains(t, out, "jpeg   .jpeg .jpg\n")
	assert.Contains(t, out, "png    .png\n")
	assert.Contains(t, out, "svg    .svg\n")
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "cvi.yaml", "render:\n  group: Council\n")
	in := writeFile(t, "team.json", nicholsonsJSON)

	out, err := run(t, "", "summary", in, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Types of Council")

	_, err = run(t, "", "summary", in, "--config", writeFile(t, "bad.yaml", "log:\n  level: loud\n"))
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() { cvi.SetLogger(nil) })

	var buf bytes.Buffer
	require.NoError(t, setupLogger(&buf, config.LogConfig{Level: "info", Format: "json"}, false))
	cvi.Logger().Debug("hidden")
	cvi.Logger().Info("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	require.NoError(t, setupLogger(&buf, config.LogConfig{Level: "error", Format: "text"}, true))
	cvi.Logger().Debug("debug wins")
	assert.Contains(t, buf.String(), "msg=\"debug wins\"")
	assert.Contains(t, buf.String(), "source=")

	assert.Error(t, setupLogger(&buf, config.LogConfig{Level: "loud"}, false))
}
