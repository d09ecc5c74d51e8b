package model

import (
	"strconv"
	"strings"
)

type fragmentKind uint8

const (
	fragField fragmentKind = iota
	fragIndex
	fragVariant
)

type fragment struct {
	kind  fragmentKind
	name  string
	index int
}

// Path locates a position inside a nested value as a root-to-leaf
// sequence of field, index and variant fragments. Paths are immutable:
// every operation returns a new Path and never mutates the receiver, so
// a Path captured inside an error stays stable while errors bubble
// outward.
type Path struct {
	frags []fragment
}

// Root returns the empty path, rendered as "$".
func Root() Path { return Path{} }

// PrependField returns p with a field access prepended.
func (p Path) PrependField(name string) Path {
	return p.prepend(fragment{kind: fragField, name: name})
}

// PrependIndex returns p with an array index access prepended.
func (p Path) PrependIndex(i int) Path {
	return p.prepend(fragment{kind: fragIndex, index: i})
}

// PrependVariant returns p with a union variant access prepended.
func (p Path) PrependVariant(name string) Path {
	return p.prepend(fragment{kind: fragVariant, name: name})
}

// AppendField returns p with a field access appended.
func (p Path) AppendField(name string) Path {
	return p.append(fragment{kind: fragField, name: name})
}

// AppendIndex returns p with an array index access appended.
func (p Path) AppendIndex(i int) Path {
	return p.append(fragment{kind: fragIndex, index: i})
}

// AppendVariant returns p with a union variant access appended.
func (p Path) AppendVariant(name string) Path {
	return p.append(fragment{kind: fragVariant, name: name})
}

func (p Path) prepend(f fragment) Path {
	out := make([]fragment, 0, len(p.frags)+1)
	out = append(out, f)
	out = append(out, p.frags...)
	return Path{frags: out}
}

func (p Path) append(f fragment) Path {
	out := make([]fragment, len(p.frags), len(p.frags)+1)
	copy(out, p.frags)
	out = append(out, f)
	return Path{frags: out}
}

// Format renders the path in JSONPath-like notation: the root is "$",
// field and variant access are ".name", index access is "[n]". A path
// built by appending variant "bar", index 0 and field "foo" renders as
// "$.bar[0].foo".
func (p Path) Format() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, f := range p.frags {
		if f.kind == fragIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(f.index))
			b.WriteByte(']')
			continue
		}
		b.WriteByte('.')
		b.WriteString(f.name)
	}
	return b.String()
}

// String implements fmt.Stringer as an alias for Format.
func (p Path) String() string { return p.Format() }

// IsRoot reports whether p has no fragments.
func (p Path) IsRoot() bool { return len(p.frags) == 0 }

// Equals reports structural fragment-by-fragment equality, with a
// shared-backing fast path.
func (p Path) Equals(other Path) bool {
	if len(p.frags) != len(other.frags) {
		return false
	}
	if len(p.frags) == 0 {
		return true
	}
	if &p.frags[0] == &other.frags[0] {
		return true
	}
	for i := range p.frags {
		if p.frags[i] != other.frags[i] {
			return false
		}
	}
	return true
}
