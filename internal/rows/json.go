package rows

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// MarshalJSON encodes r as a 5-element array.
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{r.Name, r.Merchant, r.Innovator, r.Banker, r.Builder})
}

// UnmarshalJSON decodes a 5-element array.
func (r *Row) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if len(fields) != 5 {
		return ErrArity
	}
	if err := json.Unmarshal(fields[0], &r.Name); err != nil {
		return fieldError{"name", err}
	}
	for i, dst := range r.scores() {
		if err := json.Unmarshal(fields[i+1], dst); err != nil {
			return fieldError{columns[i+1], err}
		}
	}
	return nil
}

// scores returns pointers to the four scores in canonical order.
func (r *Row) scores() [4]*float64 {
	return [4]*float64{&r.Merchant, &r.Innovator, &r.Banker, &r.Builder}
}

type fieldError struct {
	field string
	err   error
}

func (e fieldError) Error() string { return e.field + ": " + e.err.Error() }

// DecodeJSON parses an array of 5-tuples.
func DecodeJSON(data []byte) ([]Row, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	rs := make([]Row, len(raw))
	for i, m := range raw {
		if err := json.Unmarshal(m, &rs[i]); err != nil {
			pe := &ParseError{Line: i + 1, Err: err}
			var fe fieldError
			if errors.As(err, &fe) {
				pe.Field, pe.Err = fe.field, fe.err
			}
			return nil, pe
		}
	}
	return rs, nil
}

// EncodeJSON writes rs as a JSON array of 5-tuples, one row per line.
func EncodeJSON(rs []Row) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, r := range rs {
		if i > 0 {
			buf.WriteString(",")
		}
		b, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("rows: %w", err)
		}
		buf.WriteString("\n  ")
		buf.Write(b)
	}
	if len(rs) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")
	return buf.Bytes(), nil
}
