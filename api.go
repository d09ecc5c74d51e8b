package model

import (
	"github.com/mondrian-framework/model-go/result"
)

// Decode casts the raw value into the typed shape described by t and
// then validates it (Coerce -> Validate). The returned error is a
// DecodeErrors when the shape did not match and a ValidationErrors when
// the shape matched but a refinement failed; use AsDecodeErrors and
// AsValidationErrors to tell them apart.
func Decode(t Type, raw any, opts ...DecodeOptions) (any, error) {
	o := mergeDecodeOptions(opts)
	r := decodeValue(t, raw, o, o.MaxDepth)
	if !r.IsOk() {
		return nil, r.Err()
	}
	verrs := validateValue(t, r.Value(), ValidateOptions{Reporting: o.Reporting, MaxDepth: o.MaxDepth}, o.MaxDepth)
	if len(verrs) > 0 {
		return nil, verrs
	}
	return r.Value(), nil
}

// DecodeWithoutValidation casts the raw value into the typed shape
// described by t, skipping refinement checks. The result conforms
// structurally but may still fail Validate; use it when partially valid
// data must be inspected.
func DecodeWithoutValidation(t Type, raw any, opts ...DecodeOptions) (any, error) {
	r := DecodeResult(t, raw, opts...)
	if !r.IsOk() {
		return nil, r.Err()
	}
	return r.Value(), nil
}

// Validate checks the refinements of t against an already-decoded
// value. A nil return means the value conforms; otherwise the error is
// a ValidationErrors.
func Validate(t Type, v any, opts ...ValidateOptions) error {
	o := mergeValidateOptions(opts)
	if errs := validateValue(t, v, o, o.MaxDepth); len(errs) > 0 {
		return errs
	}
	return nil
}

// Encode projects a decoded value back onto the wire shape, without
// validating it first. Sensitive descriptors encode as nil. Encode
// trusts its input: values that do not conform structurally panic with
// *InternalError, so validate first when the value's provenance is
// uncertain.
func Encode(t Type, v any) any {
	return encodeValue(t, v)
}

// ValidateAndEncode validates v against t and, when it conforms,
// encodes it. This is the safe path for values that did not come out of
// Decode.
func ValidateAndEncode(t Type, v any, opts ...ValidateOptions) (any, error) {
	if err := Validate(t, v, opts...); err != nil {
		return nil, err
	}
	return Encode(t, v), nil
}

// ---- Result-typed entry points ----

// DecodeResult is DecodeWithoutValidation in Result form, for callers
// composing decode steps with the result package combinators.
func DecodeResult(t Type, raw any, opts ...DecodeOptions) result.Result[any, DecodeErrors] {
	o := mergeDecodeOptions(opts)
	return decodeValue(t, raw, o, o.MaxDepth)
}

// ValidateResult is Validate in Result form.
func ValidateResult(t Type, v any, opts ...ValidateOptions) result.Result[bool, ValidationErrors] {
	o := mergeValidateOptions(opts)
	if errs := validateValue(t, v, o, o.MaxDepth); len(errs) > 0 {
		return result.Fail[bool, ValidationErrors](errs)
	}
	return result.Ok[bool, ValidationErrors](true)
}

// Conforms reports whether the raw value decodes and validates against
// t, discarding the decoded value.
func Conforms(t Type, raw any, opts ...DecodeOptions) bool {
	_, err := Decode(t, raw, opts...)
	return err == nil
}
