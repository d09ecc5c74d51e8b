package model

import (
	"fmt"

	"github.com/mondrian-framework/model-go/result"
)

// CustomFuncs is the four-function record through which scalar kinds
// outside the closed node set integrate with every walker. All four
// functions are required. options is the bag given to NewCustom,
// passed back verbatim on every call; the walkers never inspect the
// plugin's value representation.
//
// A failed Decode or Validate result must carry at least one error.
// Decode may recurse into the walkers for composite raw encodings (a
// record type decoding each key, say); Arbitrary receives the residual
// depth budget and must honor it the way the built-in kinds do.
type CustomFuncs struct {
	Encode    func(value any, options any) any
	Decode    func(raw any, opts DecodeOptions, options any) result.Result[any, DecodeErrors]
	Validate  func(value any, opts ValidateOptions, options any) result.Result[bool, ValidationErrors]
	Arbitrary func(maxDepth int, options any) (*Generator, error)
}

// CustomType is a named extension leaf carrying an options bag and the
// four plugin functions.
type CustomType struct {
	base    BaseOptions
	name    string
	funcs   CustomFuncs
	options any
}

// NewCustom registers a named custom scalar kind. The name must be
// nonempty and all four functions must be set.
func NewCustom(name string, funcs CustomFuncs, options any, base ...BaseOptions) (*CustomType, error) {
	if name == "" {
		return nil, fmt.Errorf("model: custom: name is required")
	}
	if funcs.Encode == nil || funcs.Decode == nil || funcs.Validate == nil || funcs.Arbitrary == nil {
		return nil, fmt.Errorf("model: custom %q: encode, decode, validate and arbitrary are all required", name)
	}
	return &CustomType{base: baseOf(base), name: name, funcs: funcs, options: options}, nil
}

func (t *CustomType) Kind() Kind        { return KindCustom }
func (t *CustomType) Base() BaseOptions { return t.base }
func (*CustomType) sealed()             {}

// Name returns the registered type name.
func (t *CustomType) Name() string { return t.name }

// TypeOptions returns the options bag given at construction.
func (t *CustomType) TypeOptions() any { return t.options }

// WithBase returns a copy of t carrying the given base options.
func (t *CustomType) WithBase(base BaseOptions) *CustomType {
	c := *t
	c.base = base
	return &c
}
