package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RenderJSON serializes the diagram as indented JSON: positioned seats,
// party assignment, and candidate bindings, everything an external
// drawing layer needs.
func RenderJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return buf.Bytes(), nil
}
