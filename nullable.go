package model

// NullableType wraps one child descriptor and adds null as a valid
// state.
type NullableType struct {
	base    BaseOptions
	wrapped Type
}

// Nullable wraps t so that null becomes a valid state.
func Nullable(t Type, base ...BaseOptions) *NullableType {
	return &NullableType{base: baseOf(base), wrapped: t}
}

func (t *NullableType) Kind() Kind        { return KindNullable }
func (t *NullableType) Base() BaseOptions { return t.base }
func (*NullableType) sealed()             {}

// Wrapped returns the child descriptor.
func (t *NullableType) Wrapped() Type { return t.wrapped }

// WithBase returns a copy of t carrying the given base options.
func (t *NullableType) WithBase(base BaseOptions) *NullableType {
	c := *t
	c.base = base
	return &c
}
