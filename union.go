package model

import "fmt"

// UnionVariant declares one branch of a union: a name, a child
// descriptor, and optional dispatch hints.
type UnionVariant struct {
	name         string
	typ          Type
	is           func(value any) bool
	discriminant string
}

// Variant declares a union branch.
func Variant(name string, t Type) UnionVariant {
	return UnionVariant{name: name, typ: t}
}

// WithIs attaches a membership predicate. When set, the predicate is
// the authority on whether a variant value belongs to this branch; it
// receives the inner value, not the tagged wrapper.
func (v UnionVariant) WithIs(is func(value any) bool) UnionVariant {
	v.is = is
	return v
}

// WithDiscriminant names a field of the variant's object value whose
// content equals the variant name, used to disambiguate dispatch when
// several branches structurally match.
func (v UnionVariant) WithDiscriminant(field string) UnionVariant {
	v.discriminant = field
	return v
}

// Name returns the variant name.
func (v UnionVariant) Name() string { return v.name }

// Type returns the variant's child descriptor.
func (v UnionVariant) Type() Type { return v.typ }

// UnionType describes a value belonging to exactly one of several named
// variants. A typed union value is a one-key map from the variant name
// to the variant's value; the encoded form is untagged.
type UnionType struct {
	base     BaseOptions
	variants []UnionVariant
	index    map[string]int
}

// NewUnion builds a union descriptor. At least one variant is required;
// names must be nonempty and unique, and every variant needs a type.
func NewUnion(variants ...UnionVariant) (*UnionType, error) {
	if len(variants) == 0 {
		return nil, fmt.Errorf("model: union: at least one variant is required")
	}
	index := make(map[string]int, len(variants))
	for i, v := range variants {
		if v.name == "" {
			return nil, fmt.Errorf("model: union: empty variant name")
		}
		if v.typ == nil {
			return nil, fmt.Errorf("model: union: variant %q has no type", v.name)
		}
		if _, dup := index[v.name]; dup {
			return nil, fmt.Errorf("model: union: duplicate variant %q", v.name)
		}
		index[v.name] = i
	}
	vs := make([]UnionVariant, len(variants))
	copy(vs, variants)
	return &UnionType{variants: vs, index: index}, nil
}

func (t *UnionType) Kind() Kind        { return KindUnion }
func (t *UnionType) Base() BaseOptions { return t.base }
func (*UnionType) sealed()             {}

// Variants returns the declared variants in declaration order.
func (t *UnionType) Variants() []UnionVariant {
	out := make([]UnionVariant, len(t.variants))
	copy(out, t.variants)
	return out
}

// WithBase returns a copy of t carrying the given base options.
func (t *UnionType) WithBase(base BaseOptions) *UnionType {
	c := *t
	c.base = base
	return &c
}

func (t *UnionType) variantNames() []string {
	names := make([]string, len(t.variants))
	for i, v := range t.variants {
		names[i] = v.name
	}
	return names
}

// variantOf resolves which declared variant the typed value v belongs
// to. Tagged one-key values dispatch on their key; Is predicates and
// discriminant fields narrow multi-key values; a structural trial
// decode of v itself is the last resort for untagged values. matches
// reports how many variants claimed v (0, 1, or more).
func (t *UnionType) variantOf(v any) (variant UnionVariant, inner any, matches int) {
	if m, ok := v.(map[string]any); ok {
		var hits []int
		for i, vr := range t.variants {
			value, present := m[vr.name]
			if !present {
				continue
			}
			if vr.is != nil && !vr.is(value) {
				continue
			}
			hits = append(hits, i)
		}
		if len(hits) > 1 {
			hits = t.narrowByDiscriminant(m, hits)
		}
		if len(hits) == 1 {
			vr := t.variants[hits[0]]
			return vr, m[vr.name], 1
		}
		if len(hits) > 1 {
			return UnionVariant{}, nil, len(hits)
		}
	}
	// Untagged fallback: does v structurally match a variant directly?
	for _, vr := range t.variants {
		if vr.is != nil {
			if vr.is(v) {
				return vr, v, 1
			}
			continue
		}
		opts := DecodeOptions{MaxDepth: DefaultMaxDepth}
		if r := decodeValue(vr.typ, v, opts, opts.MaxDepth); r.IsOk() {
			return vr, v, 1
		}
	}
	return UnionVariant{}, nil, 0
}

func (t *UnionType) narrowByDiscriminant(m map[string]any, hits []int) []int {
	narrowed := make([]int, 0, len(hits))
	for _, i := range hits {
		vr := t.variants[i]
		if vr.discriminant == "" {
			narrowed = append(narrowed, i)
			continue
		}
		obj, ok := m[vr.name].(map[string]any)
		if !ok {
			continue
		}
		if tag, ok := obj[vr.discriminant].(string); ok && tag == vr.name {
			narrowed = append(narrowed, i)
		}
	}
	return narrowed
}
