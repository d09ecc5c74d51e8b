package model

// BooleanType describes a JSON boolean.
type BooleanType struct {
	base BaseOptions
}

// Boolean returns a boolean descriptor.
func Boolean(base ...BaseOptions) *BooleanType {
	return &BooleanType{base: baseOf(base)}
}

func (t *BooleanType) Kind() Kind        { return KindBoolean }
func (t *BooleanType) Base() BaseOptions { return t.base }
func (*BooleanType) sealed()             {}

// WithBase returns a copy of t carrying the given base options.
func (t *BooleanType) WithBase(base BaseOptions) *BooleanType {
	c := *t
	c.base = base
	return &c
}
