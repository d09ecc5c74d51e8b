package types

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"strconv"
	"strings"

	model "github.com/mondrian-framework/model-go"
	"github.com/mondrian-framework/model-go/jsonschema"
	"github.com/mondrian-framework/model-go/result"
)

// DecimalValue is an exact decimal: Unscaled * 10^-Scale. The scale is
// part of the value, so "1.50" round-trips with both fraction digits
// and no float drift.
type DecimalValue struct {
	Unscaled *big.Int
	Scale    int
}

func (d DecimalValue) String() string {
	digits := new(big.Int).Abs(d.Unscaled).String()
	if d.Scale > 0 {
		for len(digits) <= d.Scale {
			digits = "0" + digits
		}
		digits = digits[:len(digits)-d.Scale] + "." + digits[len(digits)-d.Scale:]
	}
	if d.Unscaled.Sign() < 0 {
		digits = "-" + digits
	}
	return digits
}

// DecimalOptions bound the fractional precision a Decimal admits.
type DecimalOptions struct {
	MaxScale *int
}

// JSONSchema projects the descriptor as a decimal-formatted string.
func (DecimalOptions) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Format: "decimal"}
}

// Decimal returns a descriptor for exact decimal numbers carried as
// strings on the wire. With casting enabled, numbers decode through
// their shortest decimal rendering.
func Decimal(opts ...DecimalOptions) *model.CustomType {
	var o DecimalOptions
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	return model.Must(model.NewCustom("decimal", model.CustomFuncs{
		Encode: func(value any, _ any) any {
			d, ok := value.(DecimalValue)
			if !ok {
				return value
			}
			return d.String()
		},
		Decode: func(raw any, opts model.DecodeOptions, _ any) result.Result[any, model.DecodeErrors] {
			switch x := raw.(type) {
			case DecimalValue:
				if x.Unscaled != nil {
					return okDecode(x)
				}
			case string:
				if d, ok := parseDecimal(x); ok {
					return okDecode(d)
				}
			default:
				if opts.Casting == model.TryCasting {
					if f, ok := toFloat(raw); ok {
						if d, ok := parseDecimal(strconv.FormatFloat(f, 'f', -1, 64)); ok {
							return okDecode(d)
						}
					}
				}
			}
			return failDecode("decimal string", raw)
		},
		Validate: func(value any, _ model.ValidateOptions, options any) result.Result[bool, model.ValidationErrors] {
			d, ok := value.(DecimalValue)
			if !ok || d.Unscaled == nil {
				return failValidate("value must be a decimal", value)
			}
			o, _ := options.(DecimalOptions)
			if o.MaxScale != nil && d.Scale > *o.MaxScale {
				return failValidate(fmt.Sprintf("decimal scale must be at most %d", *o.MaxScale), value)
			}
			return okValidate()
		},
		Arbitrary: func(_ int, options any) (*model.Generator, error) {
			o, _ := options.(DecimalOptions)
			maxScale := 4
			if o.MaxScale != nil && *o.MaxScale < maxScale {
				maxScale = *o.MaxScale
			}
			if maxScale < 0 {
				return nil, errors.New("decimal: max scale must not be negative")
			}
			return model.NewGenerator(func(r *rand.Rand) any {
				unscaled := big.NewInt(r.Int63n(1e12))
				if r.Intn(2) == 0 {
					unscaled.Neg(unscaled)
				}
				return DecimalValue{Unscaled: unscaled, Scale: r.Intn(maxScale + 1)}
			}), nil
		},
	}, o))
}

func parseDecimal(s string) (DecimalValue, bool) {
	rest := s
	neg := false
	if strings.HasPrefix(rest, "-") {
		neg, rest = true, rest[1:]
	} else if strings.HasPrefix(rest, "+") {
		rest = rest[1:]
	}
	intPart, fracPart, hasDot := strings.Cut(rest, ".")
	if intPart == "" || (hasDot && fracPart == "") {
		return DecimalValue{}, false
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return DecimalValue{}, false
	}
	unscaled, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return DecimalValue{}, false
	}
	if neg {
		unscaled.Neg(unscaled)
	}
	return DecimalValue{Unscaled: unscaled, Scale: len(fracPart)}, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
