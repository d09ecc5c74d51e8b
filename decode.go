package model

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mondrian-framework/model-go/result"
)

func okDecode(v any) result.Result[any, DecodeErrors] {
	return result.Ok[any, DecodeErrors](v)
}

func failDecode(errs DecodeErrors) result.Result[any, DecodeErrors] {
	return result.Fail[any, DecodeErrors](errs)
}

// decodeValue is the structural decoder: one exhaustive walk over the
// descriptor kinds. Refinement checks live in validateValue; the two
// compose in Decode.
func decodeValue(t Type, raw any, opts DecodeOptions, depth int) result.Result[any, DecodeErrors] {
	if depth <= 0 {
		return failDecode(decodeFail(fmt.Sprintf("nesting no deeper than %d levels", opts.MaxDepth), raw))
	}
	switch n := Concretise(t).(type) {
	case *BooleanType:
		return decodeBoolean(raw, opts)
	case *NumberType:
		return decodeNumber(raw, opts)
	case *StringType:
		return decodeString(raw, opts)
	case *LiteralType:
		return decodeLiteral(n, raw, opts)
	case *EnumType:
		return decodeEnum(n, raw, opts)
	case *ObjectType:
		return decodeObject(n, raw, opts, depth)
	case *ArrayType:
		return decodeArray(n, raw, opts, depth)
	case *UnionType:
		return decodeUnion(n, raw, opts, depth)
	case *OptionalType:
		// Missing decodes to absent. Null does too: absent optionals
		// are lossily encoded as null, and re-decoding must bring them
		// back to absent for round-tripping to hold.
		if IsAbsent(raw) || raw == nil {
			return okDecode(Absent)
		}
		return decodeValue(n.wrapped, raw, opts, depth-1)
	case *NullableType:
		if raw == nil {
			return okDecode(nil)
		}
		if IsAbsent(raw) && opts.Casting == TryCasting {
			return okDecode(nil)
		}
		return decodeValue(n.wrapped, raw, opts, depth-1)
	case *ReferenceType:
		return decodeValue(n.wrapped, raw, opts, depth-1)
	case *CustomType:
		return n.funcs.Decode(raw, opts, n.options)
	}
	panic(internal("decode", "unhandled descriptor kind"))
}

func decodeBoolean(raw any, opts DecodeOptions) result.Result[any, DecodeErrors] {
	if b, ok := raw.(bool); ok {
		return okDecode(b)
	}
	if opts.Casting == TryCasting {
		if b, ok := castBoolean(raw); ok {
			return okDecode(b)
		}
	}
	return failDecode(decodeFail("boolean", raw))
}

func decodeNumber(raw any, opts DecodeOptions) result.Result[any, DecodeErrors] {
	if f, ok := asNumber(raw); ok {
		return okDecode(f)
	}
	if opts.Casting == TryCasting {
		if f, ok := castNumber(raw); ok {
			return okDecode(f)
		}
	}
	return failDecode(decodeFail("number", raw))
}

func decodeString(raw any, opts DecodeOptions) result.Result[any, DecodeErrors] {
	if s, ok := raw.(string); ok {
		return okDecode(s)
	}
	if opts.Casting == TryCasting {
		if s, ok := castString(raw); ok {
			return okDecode(s)
		}
	}
	return failDecode(decodeFail("string", raw))
}

func decodeLiteral(n *LiteralType, raw any, opts DecodeOptions) result.Result[any, DecodeErrors] {
	if literalMatches(n.value, raw) {
		return okDecode(n.value)
	}
	if opts.Casting == TryCasting && literalCasts(n.value, raw) {
		return okDecode(n.value)
	}
	return failDecode(decodeFail("literal "+formatValue(n.value), raw))
}

func decodeEnum(n *EnumType, raw any, opts DecodeOptions) result.Result[any, DecodeErrors] {
	s, ok := raw.(string)
	if !ok && opts.Casting == TryCasting {
		s, ok = castString(raw)
	}
	if ok && n.has(s) {
		return okDecode(s)
	}
	return failDecode(decodeFail(fmt.Sprintf("one of [%s]", strings.Join(n.variants, ", ")), raw))
}

func decodeObject(n *ObjectType, raw any, opts DecodeOptions, depth int) result.Result[any, DecodeErrors] {
	m, ok := raw.(map[string]any)
	if !ok {
		return failDecode(decodeFail("object", raw))
	}
	out := make(map[string]any, len(n.fields))
	var errs DecodeErrors
	for _, f := range n.fields {
		fieldRaw, present := m[f.Name]
		if !present {
			fieldRaw = Absent
		}
		r := decodeValue(f.Type, fieldRaw, opts, depth-1)
		if !r.IsOk() {
			errs = append(errs, r.Err().prependField(f.Name)...)
			if opts.Reporting == StopAtFirstError {
				return failDecode(errs)
			}
			continue
		}
		if v := r.Value(); !IsAbsent(v) {
			out[f.Name] = v
		}
	}
	if opts.Strictness == ExpectExactFields {
		for _, k := range sortedUnknownKeys(m, n.index) {
			if IsAbsent(m[k]) {
				continue
			}
			errs = append(errs, DecodeError{
				Expected: "no additional field",
				Got:      m[k],
				Path:     Root().PrependField(k),
			})
			if opts.Reporting == StopAtFirstError {
				return failDecode(errs)
			}
		}
	}
	if len(errs) > 0 {
		return failDecode(errs)
	}
	return okDecode(out)
}

func sortedUnknownKeys(m map[string]any, declared map[string]int) []string {
	var unknown []string
	for k := range m {
		if _, ok := declared[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func decodeArray(n *ArrayType, raw any, opts DecodeOptions, depth int) result.Result[any, DecodeErrors] {
	arr, ok := raw.([]any)
	if !ok && opts.Casting == TryCasting {
		arr, ok = arrayFromIndexKeyed(raw)
	}
	if !ok {
		return failDecode(decodeFail("array", raw))
	}
	out := make([]any, 0, len(arr))
	var errs DecodeErrors
	for i, el := range arr {
		r := decodeValue(n.wrapped, el, opts, depth-1)
		if !r.IsOk() {
			errs = append(errs, r.Err().prependIndex(i)...)
			if opts.Reporting == StopAtFirstError {
				return failDecode(errs)
			}
			continue
		}
		out = append(out, r.Value())
	}
	if len(errs) > 0 {
		return failDecode(errs)
	}
	return okDecode(out)
}

// decodeUnion attempts variants in declaration order with a two-pass
// strategy: the first pass always runs without casting so that a casted
// match on an early variant cannot shadow an exact match on a later
// one; casting-enabled decoding runs only when no variant matched
// exactly. Within a pass, the first variant whose decode and validate
// both succeed wins immediately; failing that, the first variant that
// decoded structurally wins with its validation deferred to the next
// Validate call.
func decodeUnion(n *UnionType, raw any, opts DecodeOptions, depth int) result.Result[any, DecodeErrors] {
	strict := opts
	strict.Casting = ExpectExactTypes
	if r, matched := decodeUnionPass(n, raw, strict, depth); matched {
		return r
	}
	if opts.Casting == TryCasting {
		if r, matched := decodeUnionPass(n, raw, opts, depth); matched {
			return r
		}
	}
	expected := fmt.Sprintf("a value matching one of variants [%s]", strings.Join(n.variantNames(), ", "))
	return failDecode(decodeFail(expected, raw))
}

func decodeUnionPass(n *UnionType, raw any, opts DecodeOptions, depth int) (result.Result[any, DecodeErrors], bool) {
	var best result.Result[any, DecodeErrors]
	bestSet := false
	for _, v := range n.variants {
		r := decodeValue(v.typ, raw, opts, depth-1)
		if !r.IsOk() {
			continue
		}
		tagged := map[string]any{v.name: r.Value()}
		vopts := ValidateOptions{Reporting: StopAtFirstError, MaxDepth: opts.MaxDepth}
		if len(validateValue(v.typ, r.Value(), vopts, opts.MaxDepth)) == 0 {
			return okDecode(tagged), true
		}
		if !bestSet {
			best = okDecode(tagged)
			bestSet = true
		}
	}
	if bestSet {
		return best, true
	}
	return result.Result[any, DecodeErrors]{}, false
}

// castBoolean applies the fixed boolean coercions: the strings "true"
// and "false", and the numbers 1 and 0. Nothing else.
func castBoolean(raw any) (bool, bool) {
	switch v := raw.(type) {
	case string:
		if v == "true" {
			return true, true
		}
		if v == "false" {
			return false, true
		}
	default:
		if f, ok := asNumber(raw); ok {
			if f == 1 {
				return true, true
			}
			if f == 0 {
				return false, true
			}
		}
	}
	return false, false
}

// castNumber applies the fixed numeric coercions: strictly parsed
// finite numeric strings, and the booleans as 1 and 0.
func castNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// castString formats numbers and booleans; no other kind casts into a
// string.
func castString(raw any) (string, bool) {
	if f, ok := asNumber(raw); ok {
		return formatNumber(f), true
	}
	if b, ok := raw.(bool); ok {
		return strconv.FormatBool(b), true
	}
	return "", false
}

// arrayFromIndexKeyed converts an object whose keys are exactly
// "0".."n-1", with no gaps and in canonical decimal form, into the
// equivalent sequence.
func arrayFromIndexKeyed(raw any) ([]any, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}
	out := make([]any, len(m))
	for k, v := range m {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 || i >= len(m) || strconv.Itoa(i) != k {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func literalMatches(lit, v any) bool {
	switch l := lit.(type) {
	case nil:
		return v == nil
	case string:
		s, ok := v.(string)
		return ok && s == l
	case bool:
		b, ok := v.(bool)
		return ok && b == l
	case float64:
		f, ok := asNumber(v)
		return ok && f == l
	}
	return false
}

func literalCasts(lit, raw any) bool {
	switch l := lit.(type) {
	case string:
		s, ok := castString(raw)
		return ok && s == l
	case bool:
		b, ok := castBoolean(raw)
		return ok && b == l
	case float64:
		f, ok := castNumber(raw)
		return ok && f == l
	}
	return false
}
