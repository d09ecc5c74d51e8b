package model_test

import (
	"strings"
	"testing"

	model "github.com/mondrian-framework/model-go"
)

func assertionOf(t *testing.T, err error) string {
	t.Helper()
	errs, ok := model.AsValidationErrors(err)
	if !ok || len(errs) == 0 {
		t.Fatalf("expected validation errors, got: %v", err)
	}
	return errs[0].Assertion
}

func TestValidate_NumberBounds(t *testing.T) {
	n := model.Must(model.NewNumber(model.NumberOptions{
		Minimum:          model.Ptr(10.0),
		ExclusiveMaximum: model.Ptr(100.0),
	}))
	if err := model.Validate(n, 10.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := assertionOf(t, model.Validate(n, 5.0)); got != "value must be at least 10" {
		t.Fatalf("unexpected assertion: %s", got)
	}
	if got := assertionOf(t, model.Validate(n, 100.0)); got != "value must be less than 100" {
		t.Fatalf("unexpected assertion: %s", got)
	}
}

func TestValidate_NumberMultipleOf(t *testing.T) {
	n := model.Must(model.NewNumber(model.NumberOptions{MultipleOf: model.Ptr(0.5)}))
	if err := model.Validate(n, 2.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := assertionOf(t, model.Validate(n, 0.75)); got != "value must be a multiple of 0.5" {
		t.Fatalf("unexpected assertion: %s", got)
	}
}

func TestValidate_IntegerRejectsFraction(t *testing.T) {
	n := model.Must(model.NewInteger(model.NumberOptions{}))
	if err := model.Validate(n, 3.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := assertionOf(t, model.Validate(n, 1.5)); got != "value must be an integer" {
		t.Fatalf("unexpected assertion: %s", got)
	}
}

func TestValidate_StringLengthCountsRunes(t *testing.T) {
	s := model.Must(model.NewString(model.StringOptions{
		MinLength: model.Ptr(5),
		MaxLength: model.Ptr(5),
	}))
	// Five runes even though the encoding is longer than five bytes.
	if err := model.Validate(s, "héllo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := assertionOf(t, model.Validate(s, "hi")); got != "length must be at least 5" {
		t.Fatalf("unexpected assertion: %s", got)
	}
	if got := assertionOf(t, model.Validate(s, "toolong")); got != "length must be at most 5" {
		t.Fatalf("unexpected assertion: %s", got)
	}
}

func TestValidate_StringPattern(t *testing.T) {
	s := model.Must(model.NewString(model.StringOptions{Pattern: "^[a-z]+$"}))
	if err := model.Validate(s, "lower"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := assertionOf(t, model.Validate(s, "Ab1")); got != "value must match ^[a-z]+$" {
		t.Fatalf("unexpected assertion: %s", got)
	}
}

func TestValidate_EnumAndLiteral(t *testing.T) {
	e := model.Must(model.NewEnum("red", "green"))
	if err := model.Validate(e, "green"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := assertionOf(t, model.Validate(e, "blue")); got != "value must be one of [red, green]" {
		t.Fatalf("unexpected assertion: %s", got)
	}
	l := model.Literal(3)
	if err := model.Validate(l, 3.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := assertionOf(t, model.Validate(l, 4.0)); got != "value must equal literal 3" {
		t.Fatalf("unexpected assertion: %s", got)
	}
}

func TestValidate_ArrayBoundsAndElementPaths(t *testing.T) {
	a := model.Must(model.NewArray(
		model.Must(model.NewNumber(model.NumberOptions{Minimum: model.Ptr(0.0)})),
		model.ArrayOptions{MinItems: model.Ptr(2)},
	))
	err := model.Validate(a, []any{-1.0}, model.ValidateOptions{Reporting: model.AllErrors})
	errs, ok := model.AsValidationErrors(err)
	if !ok || len(errs) != 2 {
		t.Fatalf("expected 2 errors, got: %v", err)
	}
	if errs[0].Assertion != "array must have at least 2 items" || !errs[0].Path.IsRoot() {
		t.Fatalf("unexpected first error: %+v", errs[0])
	}
	if got := errs[1].Path.String(); got != "$[0]" {
		t.Fatalf("expected the element error under $[0], got: %s", got)
	}
}

func TestValidate_ReportingModes(t *testing.T) {
	bounded := model.Must(model.NewNumber(model.NumberOptions{Minimum: model.Ptr(10.0)}))
	obj := model.Object().
		Field("a", bounded).
		Field("b", bounded).
		MustBuild()
	v := map[string]any{"a": 1.0, "b": 1.0}

	errs, _ := model.AsValidationErrors(model.Validate(obj, v))
	if len(errs) != 1 {
		t.Fatalf("expected the default mode to stop at the first error, got: %v", errs)
	}
	errs, _ = model.AsValidationErrors(model.Validate(obj, v, model.ValidateOptions{Reporting: model.AllErrors}))
	if len(errs) != 2 {
		t.Fatalf("expected both errors, got: %v", errs)
	}
	paths := []string{errs[0].Path.String(), errs[1].Path.String()}
	if paths[0] != "$.a" || paths[1] != "$.b" {
		t.Fatalf("unexpected error paths: %v", paths)
	}
}

func TestValidate_IgnoresUndeclaredFields(t *testing.T) {
	// Strictness about extra fields belongs to the decoder; a typed
	// value may carry keys the descriptor does not declare.
	obj := model.Object().Field("name", model.String()).MustBuild()
	if err := model.Validate(obj, map[string]any{"name": "x", "extra": true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DepthGuard(t *testing.T) {
	desc := model.Type(model.Number())
	v := any(1.0)
	for i := 0; i < 5; i++ {
		desc = model.Must(model.NewArray(desc, model.ArrayOptions{}))
		v = []any{v}
	}
	if err := model.Validate(desc, v, model.ValidateOptions{MaxDepth: 3}); err == nil {
		t.Fatalf("expected the depth guard to trip")
	} else if got := assertionOf(t, err); !strings.Contains(got, "nest no deeper than 3") {
		t.Fatalf("unexpected assertion: %s", got)
	}
	if err := model.Validate(desc, v, model.ValidateOptions{MaxDepth: 20}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_OptionalAndNullable(t *testing.T) {
	bounded := model.Must(model.NewNumber(model.NumberOptions{Minimum: model.Ptr(10.0)}))
	opt := model.Optional(bounded)
	if err := model.Validate(opt, model.Absent); err != nil {
		t.Fatalf("unexpected error for an absent value: %v", err)
	}
	if err := model.Validate(opt, 5.0); err == nil {
		t.Fatalf("expected a present value to hit the inner bound")
	}
	nul := model.Nullable(model.String())
	if err := model.Validate(nul, nil); err != nil {
		t.Fatalf("unexpected error for null: %v", err)
	}
	if got := assertionOf(t, model.Validate(nul, 5.0)); got != "value must be a string" {
		t.Fatalf("unexpected assertion: %s", got)
	}
}

func TestValidate_WrongShape(t *testing.T) {
	if got := assertionOf(t, model.Validate(model.Number(), "x")); got != "value must be a number" {
		t.Fatalf("unexpected assertion: %s", got)
	}
	if got := assertionOf(t, model.Validate(model.Boolean(), 1.0)); got != "value must be a boolean" {
		t.Fatalf("unexpected assertion: %s", got)
	}
	obj := model.Object().MustBuild()
	if got := assertionOf(t, model.Validate(obj, []any{})); got != "value must be an object" {
		t.Fatalf("unexpected assertion: %s", got)
	}
}
