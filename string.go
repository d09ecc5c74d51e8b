package model

import (
	"fmt"
	"regexp"
)

// StringOptions refine a String descriptor. Lengths count Unicode code
// points. Pattern is RE2 source, compiled at construction.
type StringOptions struct {
	BaseOptions
	MinLength *int
	MaxLength *int
	Pattern   string
}

// StringType describes a JSON string.
type StringType struct {
	base    BaseOptions
	minLen  *int
	maxLen  *int
	pattern *regexp.Regexp
}

// String returns an unconstrained string descriptor.
func String(base ...BaseOptions) *StringType {
	return &StringType{base: baseOf(base)}
}

// NewString builds a string descriptor, rejecting negative or inverted
// lengths and patterns that do not compile.
func NewString(opts StringOptions) (*StringType, error) {
	if opts.MinLength != nil && *opts.MinLength < 0 {
		return nil, fmt.Errorf("model: string: minLength must be >= 0, got %d", *opts.MinLength)
	}
	if opts.MaxLength != nil && *opts.MaxLength < 0 {
		return nil, fmt.Errorf("model: string: maxLength must be >= 0, got %d", *opts.MaxLength)
	}
	if opts.MinLength != nil && opts.MaxLength != nil && *opts.MinLength > *opts.MaxLength {
		return nil, fmt.Errorf("model: string: minLength %d exceeds maxLength %d", *opts.MinLength, *opts.MaxLength)
	}
	t := &StringType{base: opts.BaseOptions, minLen: opts.MinLength, maxLen: opts.MaxLength}
	if opts.Pattern != "" {
		re, err := regexp.Compile(opts.Pattern)
		if err != nil {
			return nil, fmt.Errorf("model: string: invalid pattern: %w", err)
		}
		t.pattern = re
	}
	return t, nil
}

func (t *StringType) Kind() Kind        { return KindString }
func (t *StringType) Base() BaseOptions { return t.base }
func (*StringType) sealed()             {}

// Options returns the descriptor's refinement options.
func (t *StringType) Options() StringOptions {
	o := StringOptions{BaseOptions: t.base, MinLength: t.minLen, MaxLength: t.maxLen}
	if t.pattern != nil {
		o.Pattern = t.pattern.String()
	}
	return o
}

// WithBase returns a copy of t carrying the given base options.
func (t *StringType) WithBase(base BaseOptions) *StringType {
	c := *t
	c.base = base
	return &c
}
