package model

import "fmt"

// ArrayOptions refine an Array descriptor.
type ArrayOptions struct {
	BaseOptions
	MinItems *int
	MaxItems *int
	Mutable  bool
}

// ArrayType describes a sequence of one wrapped element descriptor.
type ArrayType struct {
	base     BaseOptions
	wrapped  Type
	minItems *int
	maxItems *int
	mutable  bool
}

// Array returns an unconstrained array of the given element descriptor.
func Array(of Type, base ...BaseOptions) *ArrayType {
	return &ArrayType{base: baseOf(base), wrapped: of}
}

// NewArray builds an array descriptor, rejecting negative or inverted
// item counts.
func NewArray(of Type, opts ArrayOptions) (*ArrayType, error) {
	if of == nil {
		return nil, fmt.Errorf("model: array: element type is required")
	}
	if opts.MinItems != nil && *opts.MinItems < 0 {
		return nil, fmt.Errorf("model: array: minItems must be >= 0, got %d", *opts.MinItems)
	}
	if opts.MaxItems != nil && *opts.MaxItems < 0 {
		return nil, fmt.Errorf("model: array: maxItems must be >= 0, got %d", *opts.MaxItems)
	}
	if opts.MinItems != nil && opts.MaxItems != nil && *opts.MinItems > *opts.MaxItems {
		return nil, fmt.Errorf("model: array: minItems %d exceeds maxItems %d", *opts.MinItems, *opts.MaxItems)
	}
	return &ArrayType{
		base:     opts.BaseOptions,
		wrapped:  of,
		minItems: opts.MinItems,
		maxItems: opts.MaxItems,
		mutable:  opts.Mutable,
	}, nil
}

func (t *ArrayType) Kind() Kind        { return KindArray }
func (t *ArrayType) Base() BaseOptions { return t.base }
func (*ArrayType) sealed()             {}

// Wrapped returns the element descriptor.
func (t *ArrayType) Wrapped() Type { return t.wrapped }

// Options returns the descriptor's refinement options.
func (t *ArrayType) Options() ArrayOptions {
	return ArrayOptions{BaseOptions: t.base, MinItems: t.minItems, MaxItems: t.maxItems, Mutable: t.mutable}
}

// WithBase returns a copy of t carrying the given base options.
func (t *ArrayType) WithBase(base BaseOptions) *ArrayType {
	c := *t
	c.base = base
	return &c
}
