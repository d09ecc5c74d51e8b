package model

// Kind discriminates the closed set of descriptor node kinds. The four
// walkers switch exhaustively over the concrete node types; adding a
// kind means touching every walker, which is deliberate.
type Kind uint8

const (
	KindBoolean Kind = iota
	KindNumber
	KindString
	KindLiteral
	KindEnum
	KindObject
	KindArray
	KindUnion
	KindOptional
	KindNullable
	KindReference
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindLiteral:
		return "literal"
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindUnion:
		return "union"
	case KindOptional:
		return "optional"
	case KindNullable:
		return "nullable"
	case KindReference:
		return "reference"
	case KindCustom:
		return "custom"
	}
	return "unknown"
}

// BaseOptions attach to every node kind uniformly. Sensitive marks a
// value that must never leave the process through Encode: encoding a
// sensitive node always emits a redacted null, whatever the value.
type BaseOptions struct {
	Name        string
	Description string
	Sensitive   bool
}

// Type is one node of a descriptor graph: a scalar leaf, a composite, a
// decorator, a custom extension leaf, or a lazy thunk. The set of
// implementations is closed; new scalar kinds plug in through Custom
// nodes rather than new implementations of this interface.
//
// Descriptors are immutable after construction and safe for concurrent
// use by any number of decode/validate/encode/generate calls.
type Type interface {
	Kind() Kind
	Base() BaseOptions

	sealed()
}

func baseOf(base []BaseOptions) BaseOptions {
	if len(base) > 0 {
		return base[len(base)-1]
	}
	return BaseOptions{}
}

// Must panics when err is non-nil, otherwise returns t. It wraps the
// fallible constructors in the style of template.Must for descriptors
// built at package initialization:
//
//	var Age = model.Must(model.NewInteger(model.NumberOptions{Minimum: model.Ptr(0.0)}))
func Must[T Type](t T, err error) T {
	if err != nil {
		panic(err)
	}
	return t
}

// Ptr returns a pointer to v, a convenience for the pointer-typed
// option fields on NumberOptions, StringOptions and ArrayOptions.
func Ptr[V any](v V) *V { return &v }
