package rows

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// columns is the canonical column order.
var columns = [5]string{"name", "merchant", "innovator", "banker", "builder"}

// isHeader reports whether a record names all four axes.
func isHeader(rec []string) bool {
	line := strings.ToLower(strings.Join(rec, ","))
	for _, axis := range columns[1:] {
		if !strings.Contains(line, axis) {
			return false
		}
	}
	return true
}

// DecodeCSV parses comma-separated rows. Double quotes are stripped, a row
// naming all four axes is treated as a header and skipped, blank lines are
// ignored, and the four scores must be integers.
func DecodeCSV(data []byte) ([]Row, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	var rs []Row
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			pe := &ParseError{Err: err}
			var ce *csv.ParseError
			if errors.As(err, &ce) {
				pe.Line = ce.Line
			}
			return nil, pe
		}
		line, _ := r.FieldPos(0)
		for i := range rec {
			rec[i] = strings.TrimSpace(strings.ReplaceAll(rec[i], `"`, ""))
		}
		if isHeader(rec) {
			continue
		}
		if len(rec) != 5 {
			return nil, &ParseError{Line: line, Err: ErrArity}
		}

		row := Row{Name: rec[0]}
		for i, dst := range row.scores() {
			n, err := strconv.Atoi(rec[i+1])
			if err != nil {
				return nil, &ParseError{Line: line, Field: columns[i+1], Err: err}
			}
			*dst = float64(n)
		}
		rs = append(rs, row)
	}
	return rs, nil
}

// ErrNotInteger is wrapped by ParseError when EncodeCSV meets a score that
// DecodeCSV could not read back.
var ErrNotInteger = errors.New("csv scores must be integers")

// EncodeCSV writes a header followed by one line per row. Scores must be
// integers; the error for any other score names the line it would have
// been written to.
func EncodeCSV(rs []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns[:]); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	for i, r := range rs {
		rec := []string{r.Name}
		for j, v := range r.scores() {
			if *v != math.Trunc(*v) || math.IsInf(*v, 0) {
				return nil, &ParseError{Line: i + 2, Field: columns[j+1], Err: ErrNotInteger}
			}
			rec = append(rec, strconv.FormatFloat(*v, 'f', -1, 64))
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("rows: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return buf.Bytes(), nil
}
