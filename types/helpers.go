package types

import (
	model "github.com/mondrian-framework/model-go"
	"github.com/mondrian-framework/model-go/result"
)

func okDecode(v any) result.Result[any, model.DecodeErrors] {
	return result.Ok[any, model.DecodeErrors](v)
}

func failDecode(expected string, got any) result.Result[any, model.DecodeErrors] {
	return result.Fail[any, model.DecodeErrors](model.DecodeErrors{
		{Expected: expected, Got: got, Path: model.Root()},
	})
}

func okValidate() result.Result[bool, model.ValidationErrors] {
	return result.Ok[bool, model.ValidationErrors](true)
}

func failValidate(assertion string, got any) result.Result[bool, model.ValidationErrors] {
	return result.Fail[bool, model.ValidationErrors](model.ValidationErrors{
		{Assertion: assertion, Got: got, Path: model.Root()},
	})
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}
