package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DecodeError reports one structural mismatch between a raw input and a
// descriptor: what was expected, the offending raw value, and where.
type DecodeError struct {
	Expected string // Description of the wanted kind or shape.
	Got      any    // The offending raw value.
	Path     Path   // Root-to-leaf location of the mismatch.
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("expected %s, got %s at %s", e.Expected, formatValue(e.Got), e.Path.Format())
}

// DecodeErrors is the failure payload of every decoding Result. A
// failed decode always carries at least one entry, even under
// StopAtFirstError.
type DecodeErrors []DecodeError

// Error summarizes the first few errors.
func (es DecodeErrors) Error() string {
	return summarize(len(es), func(i int) string { return es[i].Error() })
}

// AsDecodeErrors extracts DecodeErrors from an error using errors.As.
func AsDecodeErrors(err error) (DecodeErrors, bool) {
	if err == nil {
		return nil, false
	}
	var es DecodeErrors
	if errors.As(err, &es) {
		return es, true
	}
	return nil, false
}

func (es DecodeErrors) prependField(name string) DecodeErrors {
	out := make(DecodeErrors, len(es))
	for i, e := range es {
		e.Path = e.Path.PrependField(name)
		out[i] = e
	}
	return out
}

func (es DecodeErrors) prependIndex(idx int) DecodeErrors {
	out := make(DecodeErrors, len(es))
	for i, e := range es {
		e.Path = e.Path.PrependIndex(idx)
		out[i] = e
	}
	return out
}

// ValidationError reports one failed refinement check on an
// already-typed value.
type ValidationError struct {
	Assertion string // Description of the failed check.
	Got       any    // The value that failed it.
	Path      Path   // Root-to-leaf location of the value.
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s, got %s at %s", e.Assertion, formatValue(e.Got), e.Path.Format())
}

// ValidationErrors is the failure payload of every validation Result.
type ValidationErrors []ValidationError

// Error summarizes the first few errors.
func (es ValidationErrors) Error() string {
	return summarize(len(es), func(i int) string { return es[i].Error() })
}

// AsValidationErrors extracts ValidationErrors from an error using
// errors.As.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	if err == nil {
		return nil, false
	}
	var es ValidationErrors
	if errors.As(err, &es) {
		return es, true
	}
	return nil, false
}

func (es ValidationErrors) prependField(name string) ValidationErrors {
	out := make(ValidationErrors, len(es))
	for i, e := range es {
		e.Path = e.Path.PrependField(name)
		out[i] = e
	}
	return out
}

func (es ValidationErrors) prependIndex(idx int) ValidationErrors {
	out := make(ValidationErrors, len(es))
	for i, e := range es {
		e.Path = e.Path.PrependIndex(idx)
		out[i] = e
	}
	return out
}

func (es ValidationErrors) prependVariant(name string) ValidationErrors {
	out := make(ValidationErrors, len(es))
	for i, e := range es {
		e.Path = e.Path.PrependVariant(name)
		out[i] = e
	}
	return out
}

func summarize(n int, render func(int) string) string {
	if n == 0 {
		return ""
	}
	const maxShown = 3
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	b := &strings.Builder{}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(render(i))
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// InternalError reports a broken invariant the type system itself was
// supposed to uphold: a bug in calling code or in the library, never a
// data-quality problem. Walkers panic with *InternalError for this
// class; recover at a boundary and inspect it when crashing is not
// acceptable.
type InternalError struct {
	Op     string // The operation that detected the breach.
	Reason string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("model: internal error in %s: %s", e.Op, e.Reason)
}

func internal(op, format string, args ...any) *InternalError {
	return &InternalError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// decodeFail builds the single-error failure used by scalar decoders.
func decodeFail(expected string, got any) DecodeErrors {
	return DecodeErrors{{Expected: expected, Got: got, Path: Root()}}
}

func validateFail(assertion string, got any) ValidationErrors {
	return ValidationErrors{{Assertion: assertion, Got: got, Path: Root()}}
}

// formatValue renders an offending value compactly for error messages.
func formatValue(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		return "null"
	case absentValue:
		return "absent"
	case string:
		s = strconv.Quote(t)
	case float64:
		s = formatNumber(t)
	default:
		s = fmt.Sprintf("%v", t)
	}
	if len(s) > 64 {
		s = s[:61] + "..."
	}
	return s
}
