// Package result provides the two-branch outcome type threaded through
// decoding and validation: a Result is either Ok with a value or a
// failure carrying an error payload. The payload is typically a list of
// structured errors so that collect-everything reporting stays cheap.
//
// Same-type transforms (MapErr, Or, LazyOr) are methods. Cross-type
// transforms (Map, Then, Match) are package functions because Go
// methods cannot introduce new type parameters. Combinators never
// panic; invariant violations inside the library surface through a
// dedicated internal-error path instead.
package result

// Result is a success-or-failure outcome. The zero value is a failure
// with E's zero payload; construct through Ok and Fail.
type Result[A, E any] struct {
	value A
	err   E
	ok    bool
}

// Ok returns a successful Result carrying v.
func Ok[A, E any](v A) Result[A, E] {
	return Result[A, E]{value: v, ok: true}
}

// Fail returns a failed Result carrying e.
func Fail[A, E any](e E) Result[A, E] {
	var r Result[A, E]
	r.err = e
	return r
}

// IsOk reports whether r is a success.
func (r Result[A, E]) IsOk() bool { return r.ok }

// Value returns the success value, or A's zero value on failure.
func (r Result[A, E]) Value() A { return r.value }

// Err returns the failure payload, or E's zero value on success.
func (r Result[A, E]) Err() E { return r.err }

// MapErr transforms the failure payload, e.g. to prepend a path
// fragment onto every contained error. Successes pass through.
func (r Result[A, E]) MapErr(f func(E) E) Result[A, E] {
	if r.ok {
		return r
	}
	return Fail[A, E](f(r.err))
}

// Or returns r when it is a success, alt otherwise.
func (r Result[A, E]) Or(alt Result[A, E]) Result[A, E] {
	if r.ok {
		return r
	}
	return alt
}

// LazyOr is Or with the alternative computed only on failure, for
// multi-strategy attempts where building the fallback is itself work.
func (r Result[A, E]) LazyOr(f func() Result[A, E]) Result[A, E] {
	if r.ok {
		return r
	}
	return f()
}

// Map transforms the success value. Failures pass through.
func Map[A, B, E any](r Result[A, E], f func(A) B) Result[B, E] {
	if !r.ok {
		return Fail[B, E](r.err)
	}
	return Ok[B, E](f(r.value))
}

// Then sequences a dependent fallible step, short-circuiting on failure.
func Then[A, B, E any](r Result[A, E], f func(A) Result[B, E]) Result[B, E] {
	if !r.ok {
		return Fail[B, E](r.err)
	}
	return f(r.value)
}

// Match folds the Result to a plain value.
func Match[A, E, O any](r Result[A, E], onOk func(A) O, onFail func(E) O) O {
	if r.ok {
		return onOk(r.value)
	}
	return onFail(r.err)
}

// Unwrap adapts a Result to Go's (value, error) convention. The error
// is nil exactly when r is a success.
func Unwrap[A any, E error](r Result[A, E]) (A, error) {
	if r.ok {
		return r.value, nil
	}
	return r.value, r.err
}
