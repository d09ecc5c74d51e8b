package model

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// validateValue is the refinement walker: it checks kind-specific
// constraints on an already-typed value and reports failures with the
// same path-prefixing convention as the decoder. A nil return means the
// value passed.
func validateValue(t Type, v any, opts ValidateOptions, depth int) ValidationErrors {
	if depth <= 0 {
		return validateFail(fmt.Sprintf("value must nest no deeper than %d levels", opts.MaxDepth), v)
	}
	switch n := Concretise(t).(type) {
	case *BooleanType:
		if _, ok := v.(bool); !ok {
			return validateFail("value must be a boolean", v)
		}
		return nil
	case *NumberType:
		return validateNumber(n, v, opts)
	case *StringType:
		return validateString(n, v, opts)
	case *LiteralType:
		if !literalMatches(n.value, v) {
			return validateFail("value must equal literal "+formatValue(n.value), v)
		}
		return nil
	case *EnumType:
		s, ok := v.(string)
		if !ok || !n.has(s) {
			return validateFail(fmt.Sprintf("value must be one of [%s]", strings.Join(n.variants, ", ")), v)
		}
		return nil
	case *ObjectType:
		return validateObject(n, v, opts, depth)
	case *ArrayType:
		return validateArray(n, v, opts, depth)
	case *UnionType:
		return validateUnion(n, v, opts, depth)
	case *OptionalType:
		if IsAbsent(v) || v == nil {
			return nil
		}
		return validateValue(n.wrapped, v, opts, depth-1)
	case *NullableType:
		if v == nil {
			return nil
		}
		return validateValue(n.wrapped, v, opts, depth-1)
	case *ReferenceType:
		return validateValue(n.wrapped, v, opts, depth-1)
	case *CustomType:
		r := n.funcs.Validate(v, opts, n.options)
		if r.IsOk() {
			return nil
		}
		errs := r.Err()
		if len(errs) == 0 {
			errs = validateFail("value must be a valid "+n.name, v)
		}
		return errs
	}
	panic(internal("validate", "unhandled descriptor kind"))
}

func validateNumber(n *NumberType, v any, opts ValidateOptions) ValidationErrors {
	f, ok := asNumber(v)
	if !ok {
		return validateFail("value must be a number", v)
	}
	var errs ValidationErrors
	add := func(assertion string) bool {
		errs = append(errs, ValidationError{Assertion: assertion, Got: v, Path: Root()})
		return opts.Reporting == StopAtFirstError
	}
	o := n.opts
	if o.IsInteger && f != math.Trunc(f) {
		if add("value must be an integer") {
			return errs
		}
	}
	if o.Minimum != nil && f < *o.Minimum {
		if add("value must be at least " + formatNumber(*o.Minimum)) {
			return errs
		}
	}
	if o.ExclusiveMinimum != nil && f <= *o.ExclusiveMinimum {
		if add("value must be greater than " + formatNumber(*o.ExclusiveMinimum)) {
			return errs
		}
	}
	if o.Maximum != nil && f > *o.Maximum {
		if add("value must be at most " + formatNumber(*o.Maximum)) {
			return errs
		}
	}
	if o.ExclusiveMaximum != nil && f >= *o.ExclusiveMaximum {
		if add("value must be less than " + formatNumber(*o.ExclusiveMaximum)) {
			return errs
		}
	}
	if o.MultipleOf != nil && math.Mod(f, *o.MultipleOf) != 0 {
		if add("value must be a multiple of " + formatNumber(*o.MultipleOf)) {
			return errs
		}
	}
	return errs
}

func validateString(n *StringType, v any, opts ValidateOptions) ValidationErrors {
	s, ok := v.(string)
	if !ok {
		return validateFail("value must be a string", v)
	}
	var errs ValidationErrors
	add := func(assertion string) bool {
		errs = append(errs, ValidationError{Assertion: assertion, Got: v, Path: Root()})
		return opts.Reporting == StopAtFirstError
	}
	length := utf8.RuneCountInString(s)
	if n.minLen != nil && length < *n.minLen {
		if add(fmt.Sprintf("length must be at least %d", *n.minLen)) {
			return errs
		}
	}
	if n.maxLen != nil && length > *n.maxLen {
		if add(fmt.Sprintf("length must be at most %d", *n.maxLen)) {
			return errs
		}
	}
	if n.pattern != nil && !n.pattern.MatchString(s) {
		if add("value must match " + n.pattern.String()) {
			return errs
		}
	}
	return errs
}

func validateObject(n *ObjectType, v any, opts ValidateOptions, depth int) ValidationErrors {
	m, ok := v.(map[string]any)
	if !ok {
		return validateFail("value must be an object", v)
	}
	var errs ValidationErrors
	for _, f := range n.fields {
		fv, present := m[f.Name]
		if !present {
			fv = Absent
		}
		sub := validateValue(f.Type, fv, opts, depth-1)
		if len(sub) == 0 {
			continue
		}
		errs = append(errs, sub.prependField(f.Name)...)
		if opts.Reporting == StopAtFirstError {
			return errs
		}
	}
	return errs
}

func validateArray(n *ArrayType, v any, opts ValidateOptions, depth int) ValidationErrors {
	arr, ok := v.([]any)
	if !ok {
		return validateFail("value must be an array", v)
	}
	var errs ValidationErrors
	if n.minItems != nil && len(arr) < *n.minItems {
		errs = append(errs, ValidationError{
			Assertion: fmt.Sprintf("array must have at least %d items", *n.minItems),
			Got:       v,
			Path:      Root(),
		})
		if opts.Reporting == StopAtFirstError {
			return errs
		}
	}
	if n.maxItems != nil && len(arr) > *n.maxItems {
		errs = append(errs, ValidationError{
			Assertion: fmt.Sprintf("array must have at most %d items", *n.maxItems),
			Got:       v,
			Path:      Root(),
		})
		if opts.Reporting == StopAtFirstError {
			return errs
		}
	}
	for i, el := range arr {
		sub := validateValue(n.wrapped, el, opts, depth-1)
		if len(sub) == 0 {
			continue
		}
		errs = append(errs, sub.prependIndex(i)...)
		if opts.Reporting == StopAtFirstError {
			return errs
		}
	}
	return errs
}

func validateUnion(n *UnionType, v any, opts ValidateOptions, depth int) ValidationErrors {
	vr, inner, matches := n.variantOf(v)
	if matches != 1 {
		return validateFail(
			fmt.Sprintf("value must match exactly one of variants [%s]", strings.Join(n.variantNames(), ", ")), v)
	}
	sub := validateValue(vr.typ, inner, opts, depth-1)
	if len(sub) == 0 {
		return nil
	}
	return sub.prependVariant(vr.name)
}
