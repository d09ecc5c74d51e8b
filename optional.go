package model

// OptionalType wraps one child descriptor and adds "missing" as a valid
// state. A missing or null input decodes to the Absent sentinel; an
// absent value encodes to null (the wire format has no way to express
// absence outside object fields, where the key is simply dropped).
type OptionalType struct {
	base    BaseOptions
	wrapped Type
}

// Optional wraps t so that absence becomes a valid state.
func Optional(t Type, base ...BaseOptions) *OptionalType {
	return &OptionalType{base: baseOf(base), wrapped: t}
}

func (t *OptionalType) Kind() Kind        { return KindOptional }
func (t *OptionalType) Base() BaseOptions { return t.base }
func (*OptionalType) sealed()             {}

// Wrapped returns the child descriptor.
func (t *OptionalType) Wrapped() Type { return t.wrapped }

// WithBase returns a copy of t carrying the given base options.
func (t *OptionalType) WithBase(base BaseOptions) *OptionalType {
	c := *t
	c.base = base
	return &c
}
