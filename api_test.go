package model_test

import (
	"strings"
	"testing"

	model "github.com/mondrian-framework/model-go"
	"github.com/mondrian-framework/model-go/result"
)

func TestDecode_CastsThenValidates(t *testing.T) {
	bounded := model.Must(model.NewNumber(model.NumberOptions{Minimum: model.Ptr(10.0)}))
	// "5" casts into a number fine; the failure comes from the
	// refinement pass and must be typed accordingly.
	_, err := model.Decode(bounded, "5", model.DecodeOptions{Casting: model.TryCasting})
	if _, ok := model.AsDecodeErrors(err); ok {
		t.Fatalf("expected no decode error, got: %v", err)
	}
	verrs, ok := model.AsValidationErrors(err)
	if !ok || len(verrs) != 1 {
		t.Fatalf("expected one validation error, got: %v", err)
	}
	if verrs[0].Assertion != "value must be at least 10" {
		t.Fatalf("unexpected assertion: %s", verrs[0].Assertion)
	}
}

func TestDecodeWithoutValidation_KeepsNonConformingValue(t *testing.T) {
	bounded := model.Must(model.NewNumber(model.NumberOptions{Minimum: model.Ptr(10.0)}))
	v, err := model.DecodeWithoutValidation(bounded, 5.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 5.0 {
		t.Fatalf("expected 5, got: %#v", v)
	}
	if model.Validate(bounded, v) == nil {
		t.Fatalf("expected the kept value to still fail validation")
	}
}

func TestConforms(t *testing.T) {
	bounded := model.Must(model.NewNumber(model.NumberOptions{Minimum: model.Ptr(10.0)}))
	if !model.Conforms(bounded, 15.0) {
		t.Fatalf("expected 15 to conform")
	}
	if model.Conforms(bounded, 5.0) {
		t.Fatalf("expected 5 to fail the refinement")
	}
	if model.Conforms(bounded, "x") {
		t.Fatalf("expected a string to fail structurally")
	}
}

func TestDecodeResult_ComposesWithCombinators(t *testing.T) {
	r := model.DecodeResult(model.Number(), 21.0)
	doubled := result.Map(r, func(v any) any { return v.(float64) * 2 })
	if !doubled.IsOk() || doubled.Value() != 42.0 {
		t.Fatalf("expected 42, got: %v", doubled.Value())
	}
	r = model.DecodeResult(model.Number(), "x")
	if r.IsOk() {
		t.Fatalf("expected a failure")
	}
	if errs := r.Err(); len(errs) != 1 || errs[0].Expected != "number" {
		t.Fatalf("unexpected payload: %+v", r.Err())
	}
}

func TestValidateResult_Forms(t *testing.T) {
	bounded := model.Must(model.NewNumber(model.NumberOptions{Minimum: model.Ptr(10.0)}))
	if r := model.ValidateResult(bounded, 15.0); !r.IsOk() {
		t.Fatalf("unexpected failure: %v", r.Err())
	}
	r := model.ValidateResult(bounded, 5.0)
	if r.IsOk() || len(r.Err()) != 1 {
		t.Fatalf("expected one validation error, got: %v", r.Err())
	}
}

func TestErrorSummary_TruncatesAfterThree(t *testing.T) {
	b := model.Object()
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		b = b.Field(name, model.String())
	}
	obj := b.MustBuild()
	raw := map[string]any{"a": 1.0, "b": 1.0, "c": 1.0, "d": 1.0, "e": 1.0}
	_, err := model.Decode(obj, raw, model.DecodeOptions{Reporting: model.AllErrors})
	if err == nil {
		t.Fatalf("expected a failure")
	}
	msg := err.Error()
	if !strings.Contains(msg, "expected string") || !strings.Contains(msg, "... (total 5)") {
		t.Fatalf("unexpected summary: %s", msg)
	}
}

func TestAbsentSentinel(t *testing.T) {
	if !model.IsAbsent(model.Absent) {
		t.Fatalf("expected the sentinel to report absent")
	}
	if model.IsAbsent(nil) {
		t.Fatalf("expected null to be distinct from absence")
	}
	if model.IsAbsent("") {
		t.Fatalf("expected the empty string to be distinct from absence")
	}
}
