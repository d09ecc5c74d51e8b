package model

// CastingStrategy controls decoder-side coercion between JSON scalar
// kinds.
type CastingStrategy uint8

const (
	// ExpectExactTypes rejects any raw value whose JSON kind differs
	// from the descriptor's.
	ExpectExactTypes CastingStrategy = iota
	// TryCasting additionally accepts a fixed, enumerable set of
	// coercions: numeric strings into Number, "true"/"false" and 0/1
	// into Boolean, numbers and booleans into String, objects keyed
	// "0".."n-1" into Array, and absence into Nullable null. Nothing
	// else; in particular no host-language truthiness.
	TryCasting
)

// FieldStrictness controls how unknown object keys are treated.
type FieldStrictness uint8

const (
	// ExpectExactFields makes any raw key outside the declared field
	// set a decode error.
	ExpectExactFields FieldStrictness = iota
	// AllowAdditionalFields silently drops unknown keys.
	AllowAdditionalFields
)

// ErrorReporting selects between a minimal fast diagnostic and a
// complete one.
type ErrorReporting uint8

const (
	// StopAtFirstError stops traversal at the first failing branch; no
	// further sibling fields or elements are visited.
	StopAtFirstError ErrorReporting = iota
	// AllErrors visits every sibling and concatenates sub-errors in
	// declaration/index order, for callers that need every problem at
	// once.
	AllErrors
)

// DefaultMaxDepth bounds traversal when an options struct leaves
// MaxDepth zero. Deeper input fails closed with a decode or validation
// error instead of exhausting the stack.
const DefaultMaxDepth = 256

// DecodeOptions configure one decode call. Options are explicit per
// call and never ambient; the zero value is the strict default: exact
// types, exact fields, stop at the first error.
type DecodeOptions struct {
	Casting    CastingStrategy
	Strictness FieldStrictness
	Reporting  ErrorReporting
	// MaxDepth caps traversal depth; 0 means DefaultMaxDepth.
	MaxDepth int
}

// ValidateOptions configure one validation call. The zero value stops
// at the first error.
type ValidateOptions struct {
	Reporting ErrorReporting
	// MaxDepth caps traversal depth; 0 means DefaultMaxDepth.
	MaxDepth int
}

func mergeDecodeOptions(opts []DecodeOptions) DecodeOptions {
	var o DecodeOptions
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

func mergeValidateOptions(opts []ValidateOptions) ValidateOptions {
	var o ValidateOptions
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}
