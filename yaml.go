package model

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a YAML document and decodes the parsed value
// against t. YAML scalars arrive natively typed, integers as ints and
// timestamp-shaped scalars as time.Time, so the tree is renormalized
// into the JSON-shaped value space first.
func DecodeYAML(t Type, data []byte, opts ...DecodeOptions) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, DecodeErrors{{Expected: "valid YAML document", Got: string(data), Path: Root()}}
	}
	return Decode(t, normalizeYAML(raw), opts...)
}

// EncodeYAML encodes v against t and marshals the wire shape to YAML.
func EncodeYAML(t Type, v any) ([]byte, error) {
	return yaml.Marshal(Encode(t, v))
}

func normalizeYAML(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		// Non-string keys survive yaml decoding; stringify them the way
		// JSON would have spelled them.
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = normalizeYAML(el)
		}
		return out
	case time.Time:
		return x.UTC().Format(time.RFC3339Nano)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32:
		f, _ := asNumber(x)
		return f
	default:
		return v
	}
}
