package model_test

import (
	"reflect"
	"testing"

	model "github.com/mondrian-framework/model-go"
)

func TestDecodeYAML_NormalizesScalars(t *testing.T) {
	desc := model.Object().
		Field("name", model.String()).
		Field("age", model.Number()).
		Field("score", model.Number()).
		MustBuild()
	doc := []byte("name: Ada\nage: 36\nscore: 2.5\n")
	v, err := model.DecodeYAML(desc, doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(map[string]any)
	// YAML integers arrive as ints and must land in the number space.
	if m["age"] != 36.0 || m["score"] != 2.5 {
		t.Fatalf("unexpected numbers: %#v", m)
	}
}

func TestDecodeYAML_TimestampsBecomeStrings(t *testing.T) {
	desc := model.Object().Field("joined", model.String()).MustBuild()
	v, err := model.DecodeYAML(desc, []byte("joined: 2020-05-01T10:30:00Z\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := v.(map[string]any)["joined"]; got != "2020-05-01T10:30:00Z" {
		t.Fatalf("unexpected timestamp: %#v", got)
	}
}

func TestDecodeYAML_StringifiesNonStringKeys(t *testing.T) {
	desc := model.Object().
		Field("1", model.String()).
		Field("2", model.String()).
		MustBuild()
	v, err := model.DecodeYAML(desc, []byte("1: one\n2: two\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := v.(map[string]any)["2"]; got != "two" {
		t.Fatalf("unexpected value: %#v", v)
	}
}

func TestDecodeYAML_Malformed(t *testing.T) {
	_, err := model.DecodeYAML(model.Number(), []byte("a: [unclosed\n"))
	errs, ok := model.AsDecodeErrors(err)
	if !ok || errs[0].Expected != "valid YAML document" {
		t.Fatalf("expected a root decode error, got: %v", err)
	}
}

func TestEncodeYAML_RoundTrips(t *testing.T) {
	desc := model.Object().
		Field("name", model.String()).
		Field("tags", model.Array(model.String())).
		MustBuild()
	typed := map[string]any{"name": "Ada", "tags": []any{"a", "b"}}
	doc, err := model.EncodeYAML(desc, typed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := model.DecodeYAML(desc, doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(again, typed) {
		t.Fatalf("expected the value to survive the yaml round trip, got: %#v", again)
	}
}
