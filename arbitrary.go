package model

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// DefaultMaxArbitraryDepth bounds example generation when Arbitrary is
// called without an explicit depth.
const DefaultMaxArbitraryDepth = 8

// Generator produces example values conforming to a descriptor. It is
// built once and may be sampled any number of times; every failure mode
// is surfaced at construction, so sampling itself never fails.
type Generator struct {
	sample func(r *rand.Rand) any
}

// NewGenerator wraps a sampling function. Custom descriptors use it to
// supply their own example values.
func NewGenerator(sample func(r *rand.Rand) any) *Generator {
	return &Generator{sample: sample}
}

// Sample draws one example value using the given random source.
func (g *Generator) Sample(r *rand.Rand) any {
	return g.sample(r)
}

// errDepthExhausted marks a generator that could not be built within the
// remaining depth. Collapsible wrappers (an optional, a nullable, an
// array without a minimum) absorb it; anything else passes it up, so a
// recursive descriptor with no way to bottom out fails as a whole.
var errDepthExhausted = errors.New("arbitrary: depth limit exhausted")

// Arbitrary builds a generator of values conforming to t. Generation is
// depth-bounded: near the limit the generator collapses to the cheapest
// conforming shape, and descriptors that cannot produce any value at
// all (a pattern combined with length bounds, a multiple-of with no
// admissible value in range, a recursive shape with no escape) are
// rejected here rather than at sampling time.
func Arbitrary(t Type, maxDepth ...int) (*Generator, error) {
	depth := DefaultMaxArbitraryDepth
	if len(maxDepth) > 0 {
		depth = maxDepth[len(maxDepth)-1]
	}
	if depth <= 0 {
		return nil, fmt.Errorf("arbitrary: max depth must be positive, got %d", depth)
	}
	g, err := newGenerator(t, depth)
	if errors.Is(err, errDepthExhausted) {
		return nil, fmt.Errorf("arbitrary: cannot generate a %s value within depth %d: %w", t.Kind(), depth, err)
	}
	return g, err
}

func newGenerator(t Type, depth int) (*Generator, error) {
	if depth <= 0 {
		return nil, errDepthExhausted
	}
	switch n := Concretise(t).(type) {
	case *BooleanType:
		return NewGenerator(func(r *rand.Rand) any { return r.Intn(2) == 0 }), nil
	case *NumberType:
		return numberGenerator(n)
	case *StringType:
		return stringGenerator(n)
	case *LiteralType:
		v := n.value
		return NewGenerator(func(*rand.Rand) any { return v }), nil
	case *EnumType:
		variants := n.variants
		return NewGenerator(func(r *rand.Rand) any { return variants[r.Intn(len(variants))] }), nil
	case *ObjectType:
		return objectGenerator(n, depth)
	case *ArrayType:
		return arrayGenerator(n, depth)
	case *UnionType:
		return unionGenerator(n, depth)
	case *OptionalType:
		child, err := newGenerator(n.wrapped, depth-1)
		if errors.Is(err, errDepthExhausted) {
			return NewGenerator(func(*rand.Rand) any { return Absent }), nil
		}
		if err != nil {
			return nil, err
		}
		return NewGenerator(func(r *rand.Rand) any {
			if r.Intn(4) == 0 {
				return Absent
			}
			return child.sample(r)
		}), nil
	case *NullableType:
		child, err := newGenerator(n.wrapped, depth-1)
		if errors.Is(err, errDepthExhausted) {
			return NewGenerator(func(*rand.Rand) any { return nil }), nil
		}
		if err != nil {
			return nil, err
		}
		return NewGenerator(func(r *rand.Rand) any {
			if r.Intn(4) == 0 {
				return nil
			}
			return child.sample(r)
		}), nil
	case *ReferenceType:
		return newGenerator(n.wrapped, depth-1)
	case *CustomType:
		g, err := n.funcs.Arbitrary(depth-1, n.options)
		if err != nil {
			return nil, fmt.Errorf("arbitrary: %s: %w", n.name, err)
		}
		if g == nil {
			return nil, fmt.Errorf("arbitrary: %s returned no generator", n.name)
		}
		return g, nil
	}
	panic(internal("arbitrary", "unhandled descriptor kind"))
}

func numberGenerator(n *NumberType) (*Generator, error) {
	o := n.opts
	lo, hi := -1e6, 1e6
	loExcl, hiExcl := false, false
	if o.Minimum != nil {
		lo = *o.Minimum
	}
	if o.ExclusiveMinimum != nil {
		lo, loExcl = *o.ExclusiveMinimum, true
	}
	if o.Maximum != nil {
		hi = *o.Maximum
	}
	if o.ExclusiveMaximum != nil {
		hi, hiExcl = *o.ExclusiveMaximum, true
	}
	if lo > hi || (lo == hi && (loExcl || hiExcl)) {
		return nil, fmt.Errorf("arbitrary: number: empty range between %v and %v", lo, hi)
	}
	if o.IsInteger {
		// Bounds are integral by construction, so exclusivity shifts by
		// exactly one.
		if loExcl {
			lo++
		}
		if hiExcl {
			hi--
		}
		step := 1.0
		if o.MultipleOf != nil {
			step = *o.MultipleOf
			if step != math.Trunc(step) {
				return nil, fmt.Errorf("arbitrary: integer: multipleOf %v is not integral", step)
			}
		}
		kLo, kHi := math.Ceil(lo/step), math.Floor(hi/step)
		if kLo > kHi {
			return nil, fmt.Errorf("arbitrary: number: no multiple of %v between %v and %v", step, lo, hi)
		}
		span := kHi - kLo
		if span > 1e9 {
			span = 1e9
		}
		return NewGenerator(func(r *rand.Rand) any {
			return (kLo + float64(r.Int63n(int64(span)+1))) * step
		}), nil
	}
	if o.MultipleOf != nil {
		step := *o.MultipleOf
		kLo, kHi := math.Ceil(lo/step), math.Floor(hi/step)
		if kLo*step < lo || (loExcl && kLo*step == lo) {
			kLo++
		}
		if kHi*step > hi || (hiExcl && kHi*step == hi) {
			kHi--
		}
		if kLo > kHi {
			return nil, fmt.Errorf("arbitrary: number: no multiple of %v between %v and %v", step, lo, hi)
		}
		span := kHi - kLo
		if span > 1e9 {
			span = 1e9
		}
		return NewGenerator(func(r *rand.Rand) any {
			return (kLo + float64(r.Int63n(int64(span)+1))) * step
		}), nil
	}
	if lo == hi {
		return NewGenerator(func(*rand.Rand) any { return lo }), nil
	}
	return NewGenerator(func(r *rand.Rand) any {
		for attempt := 0; attempt < 16; attempt++ {
			f := lo + r.Float64()*(hi-lo)
			if (loExcl && f <= lo) || (hiExcl && f >= hi) {
				continue
			}
			return f
		}
		return lo + (hi-lo)/2
	}), nil
}

const sampleAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func stringGenerator(n *StringType) (*Generator, error) {
	if n.pattern != nil {
		if n.minLen != nil || n.maxLen != nil {
			return nil, errors.New("arbitrary: string: pattern cannot be combined with length bounds")
		}
		return regexGenerator(n.pattern.String())
	}
	lo := 0
	if n.minLen != nil {
		lo = *n.minLen
	}
	hi := lo + 12
	if n.maxLen != nil && *n.maxLen < hi {
		hi = *n.maxLen
	}
	return NewGenerator(func(r *rand.Rand) any {
		var b strings.Builder
		length := lo + r.Intn(hi-lo+1)
		for i := 0; i < length; i++ {
			b.WriteByte(sampleAlphabet[r.Intn(len(sampleAlphabet))])
		}
		return b.String()
	}), nil
}

func objectGenerator(n *ObjectType, depth int) (*Generator, error) {
	type fieldGen struct {
		name string
		gen  *Generator
	}
	gens := make([]fieldGen, 0, len(n.fields))
	for _, f := range n.fields {
		g, err := newGenerator(f.Type, depth-1)
		if err != nil {
			if errors.Is(err, errDepthExhausted) {
				return nil, err
			}
			return nil, fmt.Errorf("arbitrary: field %q: %w", f.Name, err)
		}
		gens = append(gens, fieldGen{name: f.Name, gen: g})
	}
	return NewGenerator(func(r *rand.Rand) any {
		out := make(map[string]any, len(gens))
		for _, fg := range gens {
			v := fg.gen.sample(r)
			if IsAbsent(v) {
				continue
			}
			out[fg.name] = v
		}
		return out
	}), nil
}

func arrayGenerator(n *ArrayType, depth int) (*Generator, error) {
	lo := 0
	if n.minItems != nil {
		lo = *n.minItems
	}
	elem, err := newGenerator(n.wrapped, depth-1)
	if err != nil {
		if errors.Is(err, errDepthExhausted) && lo == 0 {
			return NewGenerator(func(*rand.Rand) any { return []any{} }), nil
		}
		return nil, err
	}
	hi := lo + 3
	if n.maxItems != nil && *n.maxItems < hi {
		hi = *n.maxItems
	}
	return NewGenerator(func(r *rand.Rand) any {
		count := lo + r.Intn(hi-lo+1)
		out := make([]any, count)
		for i := range out {
			out[i] = elem.sample(r)
		}
		return out
	}), nil
}

func unionGenerator(n *UnionType, depth int) (*Generator, error) {
	type variantGen struct {
		name string
		gen  *Generator
	}
	var gens []variantGen
	var failure error
	for _, v := range n.variants {
		g, err := newGenerator(v.typ, depth-1)
		if err != nil {
			if !errors.Is(err, errDepthExhausted) && failure == nil {
				failure = fmt.Errorf("arbitrary: variant %q: %w", v.name, err)
			}
			continue
		}
		gens = append(gens, variantGen{name: v.name, gen: g})
	}
	if len(gens) == 0 {
		if failure != nil {
			return nil, failure
		}
		return nil, errDepthExhausted
	}
	return NewGenerator(func(r *rand.Rand) any {
		vg := gens[r.Intn(len(gens))]
		return map[string]any{vg.name: vg.gen.sample(r)}
	}), nil
}
