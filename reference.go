package model

// ReferenceType is a semantically transparent wrapper marking a
// relation boundary for external consumers. The walkers pass straight
// through it.
type ReferenceType struct {
	base    BaseOptions
	wrapped Type
}

// Reference wraps t as a relation boundary marker.
func Reference(t Type, base ...BaseOptions) *ReferenceType {
	return &ReferenceType{base: baseOf(base), wrapped: t}
}

func (t *ReferenceType) Kind() Kind        { return KindReference }
func (t *ReferenceType) Base() BaseOptions { return t.base }
func (*ReferenceType) sealed()             {}

// Wrapped returns the child descriptor.
func (t *ReferenceType) Wrapped() Type { return t.wrapped }

// WithBase returns a copy of t carrying the given base options.
func (t *ReferenceType) WithBase(base BaseOptions) *ReferenceType {
	c := *t
	c.base = base
	return &c
}
