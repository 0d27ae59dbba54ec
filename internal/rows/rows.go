// Package rows reads and writes Core Values Index score tables.
//
// A row is the 5-field tuple (name, merchant, innovator, banker, builder)
// in canonical axis order. JSON files hold an array of such tuples, CSV
// files one tuple per line with an optional header, and YAML files a list
// of mappings keyed by axis name.
package rows

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/cvi"
)

// Row is one person's scores in canonical axis order.
type Row struct {
	Name      string  `yaml:"name"`
	Merchant  float64 `yaml:"merchant"`
	Innovator float64 `yaml:"innovator"`
	Banker    float64 `yaml:"banker"`
	Builder   float64 `yaml:"builder"`
}

// Profile converts r into a cvi.Profile.
func (r Row) Profile() cvi.Profile {
	return cvi.NewProfile(r.Name, r.Merchant, r.Innovator, r.Banker, r.Builder)
}

// FromProfile converts p into a Row.
func FromProfile(p cvi.Profile) Row {
	return Row{
		Name:      p.Name,
		Merchant:  p.Merchant,
		Innovator: p.Innovator,
		Banker:    p.Banker,
		Builder:   p.Builder,
	}
}

// Profiles converts every row into a cvi.Profile.
func Profiles(rs []Row) []cvi.Profile {
	out := make([]cvi.Profile, len(rs))
	for i, r := range rs {
		out[i] = r.Profile()
	}
	return out
}

// Select keeps the rows whose name is in names, in their original order.
// An empty names list keeps every row.
func Select(rs []Row, names []string) []Row {
	if len(names) == 0 {
		return rs
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[strings.TrimSpace(n)] = true
	}
	var out []Row
	for _, r := range rs {
		if want[r.Name] {
			out = append(out, r)
		}
	}
	return out
}

// ParseError reports a malformed row.
type ParseError struct {
	Line  int    // 1-based line or array index
	Field string // offending field; empty for arity errors
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("rows: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("rows: line %d: %s: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrArity is wrapped by ParseError when a row does not have five fields.
var ErrArity = errors.New("want 5 fields: name, merchant, innovator, banker, builder")

// Format is a row file encoding.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	YAML Format = "yaml"
)

// FormatOf picks the format from a file extension. The ".js" extension is
// JSON, matching the cvi-data.js export of the browser table tool.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".js":
		return JSON, nil
	case ".csv":
		return CSV, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("rows: unknown file type %q", filepath.Ext(path))
	}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case JSON, CSV, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("rows: unknown format %q", s)
	}
}

// Decode parses data in format f.
func Decode(data []byte, f Format) ([]Row, error) {
	switch f {
	case JSON:
		return DecodeJSON(data)
	case CSV:
		return DecodeCSV(data)
	case YAML:
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("rows: unknown format %q", f)
	}
}

// Encode serializes rs in format f.
func Encode(rs []Row, f Format) ([]byte, error) {
	switch f {
	case JSON:
		return EncodeJSON(rs)
	case CSV:
		return EncodeCSV(rs)
	case YAML:
		return EncodeYAML(rs)
	default:
		return nil, fmt.Errorf("rows: unknown format %q", f)
	}
}

// Load reads a row file, picking the format from its extension.
func Load(path string) ([]Row, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	rs, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cvi.Logger().Debug("rows: loaded", "path", path, "format", f, "rows", len(rs))
	return rs, nil
}

// Save writes rs to path, picking the format from its extension.
func Save(path string, rs []Row) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Encode(rs, f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644) //nolint:gosec // score tables are not secret
}
