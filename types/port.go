package types

import (
	"math"
	"math/rand"
	"strconv"

	model "github.com/mondrian-framework/model-go"
	"github.com/mondrian-framework/model-go/jsonschema"
	"github.com/mondrian-framework/model-go/result"
)

type portOptions struct{}

func (portOptions) JSONSchema() *jsonschema.Schema {
	lo, hi := 1.0, 65535.0
	return &jsonschema.Schema{Type: "integer", Minimum: &lo, Maximum: &hi}
}

// Port returns a descriptor for TCP/UDP port numbers. Decoded values
// are uint16 in 1..65535; the wire shape is a number.
func Port() *model.CustomType {
	return model.Must(model.NewCustom("port", model.CustomFuncs{
		Encode: func(value any, _ any) any {
			p, ok := value.(uint16)
			if !ok {
				return value
			}
			return float64(p)
		},
		Decode: func(raw any, opts model.DecodeOptions, _ any) result.Result[any, model.DecodeErrors] {
			if p, ok := raw.(uint16); ok && p != 0 {
				return okDecode(p)
			}
			f, ok := toFloat(raw)
			if !ok && opts.Casting == model.TryCasting {
				if s, isStr := raw.(string); isStr {
					if parsed, err := strconv.ParseFloat(s, 64); err == nil {
						f, ok = parsed, true
					}
				}
			}
			if ok && f == math.Trunc(f) && f >= 1 && f <= 65535 {
				return okDecode(uint16(f))
			}
			return failDecode("port number in 1..65535", raw)
		},
		Validate: func(value any, _ model.ValidateOptions, _ any) result.Result[bool, model.ValidationErrors] {
			p, ok := value.(uint16)
			if !ok || p == 0 {
				return failValidate("value must be a port in 1..65535", value)
			}
			return okValidate()
		},
		Arbitrary: func(_ int, _ any) (*model.Generator, error) {
			return model.NewGenerator(func(r *rand.Rand) any {
				return uint16(1 + r.Intn(65535))
			}), nil
		},
	}, portOptions{}))
}
