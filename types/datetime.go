package types

import (
	"errors"
	"math"
	"math/rand"
	"time"

	model "github.com/mondrian-framework/model-go"
	"github.com/mondrian-framework/model-go/jsonschema"
	"github.com/mondrian-framework/model-go/result"
)

var errTimeRange = errors.New("datetime: minimum is after maximum")

// DateTimeOptions bound the instants a DateTime descriptor admits.
type DateTimeOptions struct {
	Minimum *time.Time
	Maximum *time.Time
}

// JSONSchema projects the descriptor as an RFC3339 string.
func (DateTimeOptions) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Format: "date-time"}
}

// DateTime returns a descriptor for RFC3339 timestamps. Decoded values
// are time.Time; the wire shape is the canonical UTC string with
// trailing zeros trimmed. With casting enabled, numbers decode as Unix
// milliseconds.
func DateTime(opts ...DateTimeOptions) *model.CustomType {
	var o DateTimeOptions
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	return model.Must(model.NewCustom("datetime", model.CustomFuncs{
		Encode: func(value any, _ any) any {
			t, ok := value.(time.Time)
			if !ok {
				return value
			}
			return formatRFC3339Canonical(t)
		},
		Decode: func(raw any, opts model.DecodeOptions, _ any) result.Result[any, model.DecodeErrors] {
			switch x := raw.(type) {
			case time.Time:
				return okDecode(x)
			case string:
				if t, err := parseRFC3339(x); err == nil {
					return okDecode(t)
				}
			default:
				if opts.Casting == model.TryCasting {
					if f, ok := toFloat(raw); ok && f == math.Trunc(f) {
						return okDecode(time.UnixMilli(int64(f)).UTC())
					}
				}
			}
			return failDecode("RFC3339 timestamp", raw)
		},
		Validate: func(value any, _ model.ValidateOptions, options any) result.Result[bool, model.ValidationErrors] {
			t, ok := value.(time.Time)
			if !ok {
				return failValidate("value must be a timestamp", value)
			}
			o, _ := options.(DateTimeOptions)
			if o.Minimum != nil && t.Before(*o.Minimum) {
				return failValidate("timestamp must not be before "+formatRFC3339Canonical(*o.Minimum), value)
			}
			if o.Maximum != nil && t.After(*o.Maximum) {
				return failValidate("timestamp must not be after "+formatRFC3339Canonical(*o.Maximum), value)
			}
			return okValidate()
		},
		Arbitrary: func(_ int, options any) (*model.Generator, error) {
			o, _ := options.(DateTimeOptions)
			lo := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
			hi := time.Date(2070, 1, 1, 0, 0, 0, 0, time.UTC)
			if o.Minimum != nil {
				lo = *o.Minimum
			}
			if o.Maximum != nil {
				hi = *o.Maximum
			}
			span := hi.UnixMilli() - lo.UnixMilli()
			if span < 0 {
				return nil, errTimeRange
			}
			base := lo.UnixMilli()
			return model.NewGenerator(func(r *rand.Rand) any {
				return time.UnixMilli(base + r.Int63n(span+1)).UTC()
			}), nil
		},
	}, o))
}

func parseRFC3339(s string) (time.Time, error) {
	// The Nano layout treats the fraction as optional, so it covers
	// plain RFC3339 too.
	return time.Parse(time.RFC3339Nano, s)
}

func formatRFC3339Canonical(t time.Time) string {
	// RFC3339Nano trims trailing fraction zeros; with UTC normalization
	// that makes the rendering canonical.
	return t.UTC().Format(time.RFC3339Nano)
}
