package model

// LiteralScalar constrains the value kinds a Literal may fix. Numeric
// literals are stored as float64, matching the wire format's double
// semantics.
type LiteralScalar interface {
	string | bool | int | int64 | float64
}

// LiteralType describes exactly one fixed scalar value (or null, via
// Null).
type LiteralType struct {
	base  BaseOptions
	value any
}

// Literal fixes one exact scalar value.
func Literal[V LiteralScalar](v V, base ...BaseOptions) *LiteralType {
	var value any
	switch n := any(v).(type) {
	case int:
		value = float64(n)
	case int64:
		value = float64(n)
	default:
		value = n
	}
	return &LiteralType{base: baseOf(base), value: value}
}

// Null is the literal null descriptor.
func Null(base ...BaseOptions) *LiteralType {
	return &LiteralType{base: baseOf(base)}
}

func (t *LiteralType) Kind() Kind        { return KindLiteral }
func (t *LiteralType) Base() BaseOptions { return t.base }
func (*LiteralType) sealed()             {}

// Value returns the fixed value: a string, bool, float64, or nil for
// the null literal.
func (t *LiteralType) Value() any { return t.value }

// WithBase returns a copy of t carrying the given base options.
func (t *LiteralType) WithBase(base BaseOptions) *LiteralType {
	c := *t
	c.base = base
	return &c
}
