package model

import (
	"io"

	json "github.com/goccy/go-json"
)

// DecodeJSON parses a JSON document and decodes the parsed value
// against t. Malformed documents report as a DecodeErrors at the root
// rather than a bare parse error, so callers handle both failure modes
// the same way.
func DecodeJSON(t Type, data []byte, opts ...DecodeOptions) (any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, DecodeErrors{{Expected: "valid JSON document", Got: string(data), Path: Root()}}
	}
	return Decode(t, raw, opts...)
}

// DecodeJSONReader is DecodeJSON over a stream.
func DecodeJSONReader(t Type, r io.Reader, opts ...DecodeOptions) (any, error) {
	var raw any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, DecodeErrors{{Expected: "valid JSON document", Got: err.Error(), Path: Root()}}
	}
	return Decode(t, raw, opts...)
}

// EncodeJSON encodes v against t and marshals the wire shape to JSON.
func EncodeJSON(t Type, v any) ([]byte, error) {
	return json.Marshal(Encode(t, v))
}
