package model

import "sync"

// LazyType defers a descriptor to a zero-argument thunk, enabling
// self-referential graphs without eager infinite expansion. The thunk
// runs at most once, on first concretisation, and the resolution is
// memoized on the node; concurrent first use is safe.
type LazyType struct {
	once     sync.Once
	thunk    func() Type
	resolved Type
}

// Lazy wraps a thunk producing a descriptor. The thunk may refer back
// to the value being defined:
//
//	var tree model.Type
//	tree = model.Object().
//		Field("value", model.Number()).
//		Field("children", model.Array(model.Lazy(func() model.Type { return tree }))).
//		MustBuild()
func Lazy(thunk func() Type) *LazyType {
	return &LazyType{thunk: thunk}
}

func (t *LazyType) Kind() Kind        { return Concretise(t).Kind() }
func (t *LazyType) Base() BaseOptions { return Concretise(t).Base() }
func (*LazyType) sealed()             {}

func (t *LazyType) resolve() Type {
	t.once.Do(func() { t.resolved = t.thunk() })
	return t.resolved
}

// Concretise follows lazy thunks until a concrete node is reached.
// Calling it repeatedly on the same descriptor is cheap: each thunk
// resolves once and the result is memoized, which is also what lets
// cyclic graphs terminate on first concretisation. A thunk chain that
// never reaches a concrete node panics with *InternalError.
func Concretise(t Type) Type {
	l, ok := t.(*LazyType)
	if !ok {
		return t
	}
	var seen map[*LazyType]struct{}
	for {
		if _, dup := seen[l]; dup {
			panic(internal("concretise", "lazy descriptor never reaches a concrete node"))
		}
		if seen == nil {
			seen = make(map[*LazyType]struct{}, 2)
		}
		seen[l] = struct{}{}
		next := l.resolve()
		if next == nil {
			panic(internal("concretise", "lazy thunk returned nil"))
		}
		if l, ok = next.(*LazyType); !ok {
			return next
		}
	}
}
