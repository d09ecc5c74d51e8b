package model_test

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"testing"

	model "github.com/mondrian-framework/model-go"
	"github.com/mondrian-framework/model-go/result"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// colorType is a minimal custom scalar: a hex color kept canonically
// lowercase in the typed space.
func colorType(t *testing.T) *model.CustomType {
	t.Helper()
	funcs := model.CustomFuncs{
		Encode: func(value any, options any) any { return value },
		Decode: func(raw any, opts model.DecodeOptions, options any) result.Result[any, model.DecodeErrors] {
			s, ok := raw.(string)
			if !ok || !colorPattern.MatchString(s) {
				return result.Fail[any, model.DecodeErrors](
					model.DecodeErrors{{Expected: "hex color", Got: raw, Path: model.Root()}})
			}
			return result.Ok[any, model.DecodeErrors](strings.ToLower(s))
		},
		Validate: func(value any, opts model.ValidateOptions, options any) result.Result[bool, model.ValidationErrors] {
			s, ok := value.(string)
			if !ok || !colorPattern.MatchString(s) {
				return result.Fail[bool, model.ValidationErrors](nil)
			}
			return result.Ok[bool, model.ValidationErrors](true)
		},
		Arbitrary: func(maxDepth int, options any) (*model.Generator, error) {
			return model.NewGenerator(func(r *rand.Rand) any {
				return fmt.Sprintf("#%06x", r.Intn(1<<24))
			}), nil
		},
	}
	return model.Must(model.NewCustom("color", funcs, nil))
}

func TestCustom_DecodesThroughWalkers(t *testing.T) {
	desc := model.Object().Field("color", colorType(t)).MustBuild()
	v, err := model.Decode(desc, map[string]any{"color": "#A1B2C3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := v.(map[string]any)["color"]; got != "#a1b2c3" {
		t.Fatalf("expected the canonical color, got: %#v", got)
	}
	_, err = model.Decode(desc, map[string]any{"color": 5.0})
	errs, ok := model.AsDecodeErrors(err)
	if !ok || len(errs) != 1 {
		t.Fatalf("expected one decode error, got: %v", err)
	}
	if errs[0].Expected != "hex color" || errs[0].Path.String() != "$.color" {
		t.Fatalf("unexpected error: %+v", errs[0])
	}
}

func TestCustom_EmptyValidationFailureIsNamed(t *testing.T) {
	err := model.Validate(colorType(t), "nope")
	verrs, ok := model.AsValidationErrors(err)
	if !ok || len(verrs) != 1 {
		t.Fatalf("expected one validation error, got: %v", err)
	}
	if verrs[0].Assertion != "value must be a valid color" {
		t.Fatalf("unexpected assertion: %s", verrs[0].Assertion)
	}
}

func TestCustom_ArbitrarySamplesConform(t *testing.T) {
	c := colorType(t)
	gen, err := model.Arbitrary(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 20; i++ {
		v := gen.Sample(r)
		if verr := model.Validate(c, v); verr != nil {
			t.Fatalf("sample %d does not conform: %v (%#v)", i, verr, v)
		}
	}
}

func TestCustom_SensitiveRedacts(t *testing.T) {
	secret := colorType(t).WithBase(model.BaseOptions{Sensitive: true})
	if got := model.Encode(secret, "#a1b2c3"); got != nil {
		t.Fatalf("expected the sensitive value to redact to null, got: %#v", got)
	}
}
