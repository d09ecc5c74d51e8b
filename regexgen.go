package model

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp/syntax"
	"strings"
	"unicode/utf8"
)

// regexRepeatCap bounds unbounded quantifiers (*, +, {n,}) when
// generating strings from a pattern.
const regexRepeatCap = 8

// regexGenerator builds a sampler that emits strings matching the given
// pattern. Constructs the generator cannot honor, a \b assertion or an
// empty character class, are rejected up front.
func regexGenerator(pattern string) (*Generator, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, fmt.Errorf("arbitrary: string: %w", err)
	}
	re = re.Simplify()
	if err := checkGeneratable(re); err != nil {
		return nil, err
	}
	return NewGenerator(func(r *rand.Rand) any {
		var b strings.Builder
		emitRegexp(&b, re, r)
		return b.String()
	}), nil
}

func checkGeneratable(re *syntax.Regexp) error {
	switch re.Op {
	case syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return errors.New(`arbitrary: string: pattern uses \b which cannot be generated`)
	case syntax.OpNoMatch:
		return errors.New("arbitrary: string: pattern matches nothing")
	case syntax.OpCharClass:
		if firstClassRune(re.Rune) < 0 {
			return errors.New("arbitrary: string: pattern contains an empty character class")
		}
	}
	for _, sub := range re.Sub {
		if err := checkGeneratable(sub); err != nil {
			return err
		}
	}
	return nil
}

func emitRegexp(b *strings.Builder, re *syntax.Regexp, r *rand.Rand) {
	switch re.Op {
	case syntax.OpEmptyMatch, syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText:
	case syntax.OpLiteral:
		for _, c := range re.Rune {
			b.WriteRune(c)
		}
	case syntax.OpCharClass:
		b.WriteRune(pickRune(re.Rune, r))
	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		b.WriteRune(printableASCII(r))
	case syntax.OpCapture:
		emitRegexp(b, re.Sub[0], r)
	case syntax.OpStar:
		emitRepeat(b, re.Sub[0], 0, regexRepeatCap, r)
	case syntax.OpPlus:
		emitRepeat(b, re.Sub[0], 1, 1+regexRepeatCap, r)
	case syntax.OpQuest:
		emitRepeat(b, re.Sub[0], 0, 1, r)
	case syntax.OpRepeat:
		hi := re.Max
		if hi < 0 {
			hi = re.Min + regexRepeatCap
		}
		emitRepeat(b, re.Sub[0], re.Min, hi, r)
	case syntax.OpConcat:
		for _, sub := range re.Sub {
			emitRegexp(b, sub, r)
		}
	case syntax.OpAlternate:
		emitRegexp(b, re.Sub[r.Intn(len(re.Sub))], r)
	}
}

func emitRepeat(b *strings.Builder, sub *syntax.Regexp, lo, hi int, r *rand.Rand) {
	n := lo
	if hi > lo {
		n += r.Intn(hi - lo + 1)
	}
	for i := 0; i < n; i++ {
		emitRegexp(b, sub, r)
	}
}

// pickRune draws from a character class given as inclusive rune pairs,
// weighting each range by its size. Surrogate halves parse as class
// members but are not valid runes, so those draws are retried.
func pickRune(pairs []rune, r *rand.Rand) rune {
	var total int64
	for i := 0; i < len(pairs); i += 2 {
		total += int64(pairs[i+1]-pairs[i]) + 1
	}
	for attempt := 0; attempt < 16; attempt++ {
		k := r.Int63n(total)
		for i := 0; i < len(pairs); i += 2 {
			span := int64(pairs[i+1]-pairs[i]) + 1
			if k < span {
				c := pairs[i] + rune(k)
				if utf8.ValidRune(c) {
					return c
				}
				break
			}
			k -= span
		}
	}
	return firstClassRune(pairs)
}

func firstClassRune(pairs []rune) rune {
	for i := 0; i < len(pairs); i += 2 {
		for c := pairs[i]; c <= pairs[i+1]; c++ {
			if utf8.ValidRune(c) {
				return c
			}
		}
	}
	return -1
}

func printableASCII(r *rand.Rand) rune {
	return rune(' ' + r.Intn('~'-' '+1))
}
