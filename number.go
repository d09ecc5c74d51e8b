package model

import (
	"fmt"
	"math"
)

// NumberOptions refine a Number descriptor. Inclusive and exclusive
// bounds may both be given; construction keeps the tighter one.
// Integer descriptors require every bound to be integral.
type NumberOptions struct {
	BaseOptions
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	// MultipleOf must be > 0 when set.
	MultipleOf *float64
	IsInteger  bool
}

// NumberType describes a JSON number with IEEE-754 double semantics,
// optionally integer-only.
type NumberType struct {
	base BaseOptions
	opts NumberOptions
}

// Number returns an unconstrained number descriptor.
func Number(base ...BaseOptions) *NumberType {
	return &NumberType{base: baseOf(base)}
}

// Integer returns an unconstrained integer-only number descriptor.
func Integer(base ...BaseOptions) *NumberType {
	b := baseOf(base)
	return &NumberType{base: b, opts: NumberOptions{BaseOptions: b, IsInteger: true}}
}

// NewNumber builds a number descriptor, rejecting inconsistent options
// at construction time.
func NewNumber(opts NumberOptions) (*NumberType, error) {
	normalized, err := normalizeNumberOptions(opts)
	if err != nil {
		return nil, err
	}
	return &NumberType{base: opts.BaseOptions, opts: normalized}, nil
}

// NewInteger is NewNumber with the integer flag forced on.
func NewInteger(opts NumberOptions) (*NumberType, error) {
	opts.IsInteger = true
	return NewNumber(opts)
}

func (t *NumberType) Kind() Kind        { return KindNumber }
func (t *NumberType) Base() BaseOptions { return t.base }
func (*NumberType) sealed()             {}

// Options returns the normalized options: when both an inclusive and an
// exclusive bound were given on the same side, only the tighter one
// survives.
func (t *NumberType) Options() NumberOptions { return t.opts }

// WithBase returns a copy of t carrying the given base options.
func (t *NumberType) WithBase(base BaseOptions) *NumberType {
	c := *t
	c.base = base
	c.opts.BaseOptions = base
	return &c
}

func normalizeNumberOptions(opts NumberOptions) (NumberOptions, error) {
	if opts.MultipleOf != nil && *opts.MultipleOf <= 0 {
		return opts, fmt.Errorf("model: number: multipleOf must be > 0, got %v", *opts.MultipleOf)
	}
	// Tighter bound wins when both forms are present on one side.
	if opts.Minimum != nil && opts.ExclusiveMinimum != nil {
		if *opts.ExclusiveMinimum >= *opts.Minimum {
			opts.Minimum = nil
		} else {
			opts.ExclusiveMinimum = nil
		}
	}
	if opts.Maximum != nil && opts.ExclusiveMaximum != nil {
		if *opts.ExclusiveMaximum <= *opts.Maximum {
			opts.Maximum = nil
		} else {
			opts.ExclusiveMaximum = nil
		}
	}
	if opts.IsInteger {
		for _, b := range []struct {
			name  string
			value *float64
		}{
			{"minimum", opts.Minimum},
			{"maximum", opts.Maximum},
			{"exclusiveMinimum", opts.ExclusiveMinimum},
			{"exclusiveMaximum", opts.ExclusiveMaximum},
		} {
			if b.value != nil && *b.value != math.Trunc(*b.value) {
				return opts, fmt.Errorf("model: integer: %s must be integral, got %v", b.name, *b.value)
			}
		}
	}
	return opts, nil
}
