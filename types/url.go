package types

import (
	"math/rand"
	"net/url"
	"strings"

	model "github.com/mondrian-framework/model-go"
	"github.com/mondrian-framework/model-go/jsonschema"
	"github.com/mondrian-framework/model-go/result"
)

type urlOptions struct{}

func (urlOptions) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Format: "uri"}
}

// URL returns a descriptor for absolute URLs. Decoded values are
// *url.URL; relative references are rejected.
func URL() *model.CustomType {
	return model.Must(model.NewCustom("URL", model.CustomFuncs{
		Encode: func(value any, _ any) any {
			u, ok := value.(*url.URL)
			if !ok {
				return value
			}
			return u.String()
		},
		Decode: func(raw any, _ model.DecodeOptions, _ any) result.Result[any, model.DecodeErrors] {
			switch x := raw.(type) {
			case *url.URL:
				if x.IsAbs() {
					return okDecode(x)
				}
			case string:
				if u, err := url.Parse(x); err == nil && u.IsAbs() {
					return okDecode(u)
				}
			}
			return failDecode("absolute URL", raw)
		},
		Validate: func(value any, _ model.ValidateOptions, _ any) result.Result[bool, model.ValidationErrors] {
			u, ok := value.(*url.URL)
			if !ok || !u.IsAbs() {
				return failValidate("value must be an absolute URL", value)
			}
			return okValidate()
		},
		Arbitrary: func(_ int, _ any) (*model.Generator, error) {
			schemes := []string{"http", "https"}
			tlds := []string{"com", "org", "net", "io"}
			return model.NewGenerator(func(r *rand.Rand) any {
				var host strings.Builder
				for i := 0; i < 3+r.Intn(8); i++ {
					host.WriteByte(byte('a' + r.Intn(26)))
				}
				u := &url.URL{
					Scheme: schemes[r.Intn(len(schemes))],
					Host:   host.String() + "." + tlds[r.Intn(len(tlds))],
				}
				return u
			}), nil
		},
	}, urlOptions{}))
}
