package rows

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a list of mappings keyed by column name.
func DecodeYAML(data []byte) ([]Row, error) {
	var doc []yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	rs := make([]Row, len(doc))
	for i := range doc {
		if err := doc[i].Decode(&rs[i]); err != nil {
			return nil, &ParseError{Line: doc[i].Line, Err: err}
		}
		if rs[i].Name == "" {
			return nil, &ParseError{Line: doc[i].Line, Field: "name", Err: errors.New("missing")}
		}
	}
	return rs, nil
}

// EncodeYAML writes rs as a YAML list.
func EncodeYAML(rs []Row) ([]byte, error) {
	if rs == nil {
		rs = []Row{}
	}
	out, err := yaml.Marshal(rs)
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
