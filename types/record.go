package types

import (
	"math/rand"
	"sort"
	"strings"

	model "github.com/mondrian-framework/model-go"
	"github.com/mondrian-framework/model-go/jsonschema"
	"github.com/mondrian-framework/model-go/result"
)

// RecordOptions carry the homogeneous value descriptor of a Record.
type RecordOptions struct {
	Value model.Type
}

// JSONSchema projects the descriptor as an object with free-form keys.
func (o RecordOptions) JSONSchema() *jsonschema.Schema {
	s := &jsonschema.Schema{Type: "object"}
	if inner, err := jsonschema.Export(o.Value); err == nil {
		s.AdditionalProperties = inner
	}
	return s
}

// Record returns a descriptor for string-keyed maps whose values all
// conform to the given descriptor. Keys are free-form; values go
// through the regular walkers with the key prepended to error paths,
// visited in sorted order so error reporting is deterministic.
func Record(value model.Type) *model.CustomType {
	return model.Must(model.NewCustom("record", model.CustomFuncs{
		Encode: func(v any, options any) any {
			o := options.(RecordOptions)
			m, ok := v.(map[string]any)
			if !ok {
				return v
			}
			out := make(map[string]any, len(m))
			for k, val := range m {
				out[k] = model.Encode(o.Value, val)
			}
			return out
		},
		Decode: func(raw any, opts model.DecodeOptions, options any) result.Result[any, model.DecodeErrors] {
			o := options.(RecordOptions)
			m, ok := raw.(map[string]any)
			if !ok {
				return failDecode("record object", raw)
			}
			out := make(map[string]any, len(m))
			var errs model.DecodeErrors
			for _, k := range sortedKeys(m) {
				r := model.DecodeResult(o.Value, m[k], opts)
				if r.IsOk() {
					out[k] = r.Value()
					continue
				}
				errs = append(errs, prependKey(r.Err(), k)...)
				if opts.Reporting == model.StopAtFirstError {
					break
				}
			}
			if len(errs) > 0 {
				return result.Fail[any, model.DecodeErrors](errs)
			}
			return okDecode(out)
		},
		Validate: func(value any, opts model.ValidateOptions, options any) result.Result[bool, model.ValidationErrors] {
			o := options.(RecordOptions)
			m, ok := value.(map[string]any)
			if !ok {
				return failValidate("value must be a record object", value)
			}
			var errs model.ValidationErrors
			for _, k := range sortedKeys(m) {
				vr := model.ValidateResult(o.Value, m[k], opts)
				if vr.IsOk() {
					continue
				}
				errs = append(errs, prependKeyValidation(vr.Err(), k)...)
				if opts.Reporting == model.StopAtFirstError {
					break
				}
			}
			if len(errs) > 0 {
				return result.Fail[bool, model.ValidationErrors](errs)
			}
			return okValidate()
		},
		Arbitrary: func(maxDepth int, options any) (*model.Generator, error) {
			o := options.(RecordOptions)
			if maxDepth <= 0 {
				return model.NewGenerator(func(*rand.Rand) any { return map[string]any{} }), nil
			}
			elem, err := model.Arbitrary(o.Value, maxDepth)
			if err != nil {
				return nil, err
			}
			return model.NewGenerator(func(r *rand.Rand) any {
				out := map[string]any{}
				n := r.Intn(4)
				for i := 0; i < n; i++ {
					out[randomKey(r)] = elem.Sample(r)
				}
				return out
			}), nil
		},
	}, RecordOptions{Value: value}))
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func prependKey(errs model.DecodeErrors, key string) model.DecodeErrors {
	out := make(model.DecodeErrors, len(errs))
	for i, e := range errs {
		e.Path = e.Path.PrependField(key)
		out[i] = e
	}
	return out
}

func prependKeyValidation(errs model.ValidationErrors, key string) model.ValidationErrors {
	out := make(model.ValidationErrors, len(errs))
	for i, e := range errs {
		e.Path = e.Path.PrependField(key)
		out[i] = e
	}
	return out
}

func randomKey(r *rand.Rand) string {
	var b strings.Builder
	for i := 0; i < 1+r.Intn(8); i++ {
		b.WriteByte(byte('a' + r.Intn(26)))
	}
	return b.String()
}
