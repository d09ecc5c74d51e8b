package types

import (
	"math/rand"

	"github.com/google/uuid"
	model "github.com/mondrian-framework/model-go"
	"github.com/mondrian-framework/model-go/jsonschema"
	"github.com/mondrian-framework/model-go/result"
)

type uuidOptions struct{}

func (uuidOptions) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Format: "uuid"}
}

// UUID returns a descriptor for RFC 4122 identifiers. Decoded values
// are uuid.UUID; the wire shape is the canonical hyphenated string.
func UUID() *model.CustomType {
	return model.Must(model.NewCustom("UUID", model.CustomFuncs{
		Encode: func(value any, _ any) any {
			u, ok := value.(uuid.UUID)
			if !ok {
				return value
			}
			return u.String()
		},
		Decode: func(raw any, _ model.DecodeOptions, _ any) result.Result[any, model.DecodeErrors] {
			switch x := raw.(type) {
			case uuid.UUID:
				return okDecode(x)
			case string:
				if u, err := uuid.Parse(x); err == nil {
					return okDecode(u)
				}
			}
			return failDecode("UUID string", raw)
		},
		Validate: func(value any, _ model.ValidateOptions, _ any) result.Result[bool, model.ValidationErrors] {
			if _, ok := value.(uuid.UUID); !ok {
				return failValidate("value must be a UUID", value)
			}
			return okValidate()
		},
		Arbitrary: func(_ int, _ any) (*model.Generator, error) {
			return model.NewGenerator(func(r *rand.Rand) any {
				u, err := uuid.NewRandomFromReader(r)
				if err != nil {
					return uuid.Nil
				}
				return u
			}), nil
		},
	}, uuidOptions{}))
}
