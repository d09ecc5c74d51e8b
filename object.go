package model

import "fmt"

// ObjectField is one declared field of an Object descriptor. Field
// order is declaration order; every walker visits fields in it.
type ObjectField struct {
	Name string
	Type Type
}

// ObjectType describes a string-keyed record with a fixed declared
// field set.
type ObjectType struct {
	base    BaseOptions
	fields  []ObjectField
	index   map[string]int
	mutable bool
}

// reservedFieldNames are rejected at construction. They shadow
// prototype-chain members in JavaScript consumers of the encoded form.
var reservedFieldNames = map[string]struct{}{
	"__proto__":   {},
	"constructor": {},
	"prototype":   {},
}

// ObjectBuilder accumulates an object declaration. Configuration
// errors surface from Build, after all fields are declared.
type ObjectBuilder struct {
	base    BaseOptions
	fields  []ObjectField
	mutable bool
}

// Object starts an object declaration:
//
//	user, err := model.Object().
//		Field("id", model.String()).
//		Field("age", model.Optional(model.Number())).
//		Build()
func Object() *ObjectBuilder { return &ObjectBuilder{} }

// Field declares one field. Declaration order is preserved.
func (b *ObjectBuilder) Field(name string, t Type) *ObjectBuilder {
	b.fields = append(b.fields, ObjectField{Name: name, Type: t})
	return b
}

// Mutable tags the object as mutable. The tag is metadata for
// consumers; the walkers treat mutable and immutable objects alike.
func (b *ObjectBuilder) Mutable() *ObjectBuilder {
	b.mutable = true
	return b
}

// Name sets the descriptor name.
func (b *ObjectBuilder) Name(name string) *ObjectBuilder {
	b.base.Name = name
	return b
}

// Describe sets the descriptor description.
func (b *ObjectBuilder) Describe(description string) *ObjectBuilder {
	b.base.Description = description
	return b
}

// Sensitive marks the whole object sensitive; it encodes as a redacted
// null.
func (b *ObjectBuilder) Sensitive() *ObjectBuilder {
	b.base.Sensitive = true
	return b
}

// Build validates the declaration and returns the descriptor. Field
// names must be nonempty, unique and outside the reserved blacklist,
// and every field needs a type.
func (b *ObjectBuilder) Build() (*ObjectType, error) {
	index := make(map[string]int, len(b.fields))
	for i, f := range b.fields {
		if f.Name == "" {
			return nil, fmt.Errorf("model: object: empty field name")
		}
		if _, reserved := reservedFieldNames[f.Name]; reserved {
			return nil, fmt.Errorf("model: object: field name %q is reserved", f.Name)
		}
		if f.Type == nil {
			return nil, fmt.Errorf("model: object: field %q has no type", f.Name)
		}
		if _, dup := index[f.Name]; dup {
			return nil, fmt.Errorf("model: object: duplicate field %q", f.Name)
		}
		index[f.Name] = i
	}
	fields := make([]ObjectField, len(b.fields))
	copy(fields, b.fields)
	return &ObjectType{base: b.base, fields: fields, index: index, mutable: b.mutable}, nil
}

// MustBuild is Build panicking on error, for descriptors declared at
// package initialization.
func (b *ObjectBuilder) MustBuild() *ObjectType {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

func (t *ObjectType) Kind() Kind        { return KindObject }
func (t *ObjectType) Base() BaseOptions { return t.base }
func (*ObjectType) sealed()             {}

// Fields returns the declared fields in declaration order.
func (t *ObjectType) Fields() []ObjectField {
	out := make([]ObjectField, len(t.fields))
	copy(out, t.fields)
	return out
}

// Mutable reports the mutability tag.
func (t *ObjectType) Mutable() bool { return t.mutable }

// WithBase returns a copy of t carrying the given base options.
func (t *ObjectType) WithBase(base BaseOptions) *ObjectType {
	c := *t
	c.base = base
	return &c
}
