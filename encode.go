package model

import "strings"

// encodeValue projects an already-decoded value back onto the wire
// shape. It trusts the value to conform to the descriptor: kind
// mismatches on composite shapes are programmer errors and panic with
// *InternalError rather than returning a result.
func encodeValue(t Type, v any) any {
	c := Concretise(t)
	if c.Base().Sensitive {
		return nil
	}
	if IsAbsent(v) {
		return nil
	}
	switch n := c.(type) {
	case *BooleanType, *StringType, *EnumType:
		return v
	case *NumberType:
		if f, ok := asNumber(v); ok {
			return f
		}
		return v
	case *LiteralType:
		return n.value
	case *ObjectType:
		return encodeObject(n, v)
	case *ArrayType:
		return encodeArray(n, v)
	case *UnionType:
		return encodeUnion(n, v)
	case *OptionalType:
		if v == nil {
			return nil
		}
		return encodeValue(n.wrapped, v)
	case *NullableType:
		if v == nil {
			return nil
		}
		return encodeValue(n.wrapped, v)
	case *ReferenceType:
		return encodeValue(n.wrapped, v)
	case *CustomType:
		return n.funcs.Encode(v, n.options)
	}
	panic(internal("encode", "unhandled descriptor kind"))
}

func encodeObject(n *ObjectType, v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		panic(internal("encode", "object value is %T, want map[string]any", v))
	}
	out := make(map[string]any, len(n.fields))
	for _, f := range n.fields {
		fv, present := m[f.Name]
		if !present || IsAbsent(fv) {
			if isOptional(f.Type) {
				continue
			}
			out[f.Name] = nil
			continue
		}
		out[f.Name] = encodeValue(f.Type, fv)
	}
	return out
}

func encodeArray(n *ArrayType, v any) any {
	arr, ok := v.([]any)
	if !ok {
		panic(internal("encode", "array value is %T, want []any", v))
	}
	out := make([]any, len(arr))
	for i, el := range arr {
		out[i] = encodeValue(n.wrapped, el)
	}
	return out
}

func encodeUnion(n *UnionType, v any) any {
	vr, inner, matches := n.variantOf(v)
	if matches != 1 {
		panic(internal("encode", "union value matches %d of variants [%s]",
			matches, strings.Join(n.variantNames(), ", ")))
	}
	return encodeValue(vr.typ, inner)
}

// isOptional reports whether the descriptor admits absence, looking
// through references and thunks but not through nullability.
func isOptional(t Type) bool {
	switch n := Concretise(t).(type) {
	case *OptionalType:
		return true
	case *ReferenceType:
		return isOptional(n.wrapped)
	}
	return false
}
