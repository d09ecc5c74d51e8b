package model

import "fmt"

// EnumType describes a string drawn from a fixed non-empty variant set.
type EnumType struct {
	base     BaseOptions
	variants []string
	index    map[string]struct{}
}

// NewEnum builds an enum descriptor over the given variants. At least
// one variant is required and variants must be unique.
func NewEnum(variants ...string) (*EnumType, error) {
	if len(variants) == 0 {
		return nil, fmt.Errorf("model: enum: at least one variant is required")
	}
	index := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		if _, dup := index[v]; dup {
			return nil, fmt.Errorf("model: enum: duplicate variant %q", v)
		}
		index[v] = struct{}{}
	}
	vs := make([]string, len(variants))
	copy(vs, variants)
	return &EnumType{variants: vs, index: index}, nil
}

func (t *EnumType) Kind() Kind        { return KindEnum }
func (t *EnumType) Base() BaseOptions { return t.base }
func (*EnumType) sealed()             {}

// Variants returns the declared variants in declaration order.
func (t *EnumType) Variants() []string {
	out := make([]string, len(t.variants))
	copy(out, t.variants)
	return out
}

func (t *EnumType) has(v string) bool {
	_, ok := t.index[v]
	return ok
}

// WithBase returns a copy of t carrying the given base options.
func (t *EnumType) WithBase(base BaseOptions) *EnumType {
	c := *t
	c.base = base
	return &c
}
