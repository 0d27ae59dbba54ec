package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/cvi/internal/rows"
)

// stdio is the path meaning stdin or stdout.
const stdio = "-"

// readRows loads rows from path, or from in when path is "-". An explicit
// format overrides the one implied by the extension.
func readRows(in io.Reader, path, format string) ([]rows.Row, error) {
	if path != stdio && format == "" {
		return rows.Load(path)
	}
	f, err := resolveFormat(path, format)
	if err != nil {
		return nil, err
	}

	var data []byte
	if path == stdio {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // path is user-provided
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows.Decode(data, f)
}

// writeRows saves rs to path, or to out when path is "-".
func writeRows(out io.Writer, path, format string, rs []rows.Row) error {
	if path != stdio && format == "" {
		return rows.Save(path, rs)
	}
	f, err := resolveFormat(path, format)
	if err != nil {
		return err
	}
	data, err := rows.Encode(rs, f)
	if err != nil {
		return err
	}
	if path == stdio {
		_, err = out.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644) //nolint:gosec // score tables are not secret
}

func resolveFormat(path, format string) (rows.Format, error) {
	if format != "" {
		return rows.ParseFormat(format)
	}
	if path == stdio {
		return rows.JSON, nil
	}
	return rows.FormatOf(path)
}

// selectRows loads rows and keeps only the named ones.
func selectRows(in io.Reader, path, format string, only []string) ([]rows.Row, error) {
	rs, err := readRows(in, path, format)
	if err != nil {
		return nil, err
	}
	rs = rows.Select(rs, only)
	if len(rs) == 0 {
		if len(only) > 0 {
			return nil, fmt.Errorf("%s: no rows match %v", path, only)
		}
		return nil, fmt.Errorf("%s: no rows", path)
	}
	return rs, nil
}
