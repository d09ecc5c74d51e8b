package model_test

import (
	"strings"
	"testing"

	model "github.com/mondrian-framework/model-go"
)

func TestDecodeJSON_Document(t *testing.T) {
	desc := model.Object().
		Field("name", model.String()).
		Field("age", model.Number()).
		Field("tags", model.Array(model.String())).
		MustBuild()
	v, err := model.DecodeJSON(desc, []byte(`{"name":"Ada","age":36,"tags":["math"]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(map[string]any)
	if m["name"] != "Ada" || m["age"] != 36.0 {
		t.Fatalf("unexpected value: %#v", m)
	}
	if tags := m["tags"].([]any); len(tags) != 1 || tags[0] != "math" {
		t.Fatalf("unexpected tags: %#v", m["tags"])
	}
}

func TestDecodeJSON_MalformedReportsAtRoot(t *testing.T) {
	_, err := model.DecodeJSON(model.Number(), []byte(`{oops`))
	errs, ok := model.AsDecodeErrors(err)
	if !ok || len(errs) != 1 {
		t.Fatalf("expected one decode error, got: %v", err)
	}
	if errs[0].Expected != "valid JSON document" || !errs[0].Path.IsRoot() {
		t.Fatalf("unexpected error: %+v", errs[0])
	}
}

func TestDecodeJSON_ValidationApplies(t *testing.T) {
	bounded := model.Must(model.NewNumber(model.NumberOptions{Minimum: model.Ptr(10.0)}))
	_, err := model.DecodeJSON(bounded, []byte(`5`))
	if _, ok := model.AsValidationErrors(err); !ok {
		t.Fatalf("expected a validation error, got: %v", err)
	}
}

func TestDecodeJSONReader_Stream(t *testing.T) {
	v, err := model.DecodeJSONReader(model.Array(model.Number()), strings.NewReader(`[1,2,3]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if arr := v.([]any); len(arr) != 3 || arr[2] != 3.0 {
		t.Fatalf("unexpected value: %#v", v)
	}
	_, err = model.DecodeJSONReader(model.Number(), strings.NewReader(`}`))
	if _, ok := model.AsDecodeErrors(err); !ok {
		t.Fatalf("expected a decode error, got: %v", err)
	}
}

func TestEncodeJSON(t *testing.T) {
	desc := model.Object().
		Field("n", model.Number()).
		Field("nick", model.Optional(model.String())).
		MustBuild()
	data, err := model.EncodeJSON(desc, map[string]any{"n": 1.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(data); got != `{"n":1.5}` {
		t.Fatalf("unexpected document: %s", got)
	}
}
