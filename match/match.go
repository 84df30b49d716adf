// Package match is a small pattern-matching engine built from composable
// components. A component consumes input from a given offset and either
// reports where it stopped or declines.
//
// The tokenizer in the root package is itself a Component, so a token tree
// can be matched as one part of a larger pattern:
//
//	tok, _ := jsontok.New()
//	p := match.Seq(match.Literal("Hello"), match.Spaces(), tok, match.Spaces(), match.Literal("World"))
//	res, ok := match.Match(p, `Hello {"a": "b"} World`)
package match

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Range is a half-open byte range [Start, End) of the input.
type Range struct {
	Start int
	End   int
}

// Component is one unit of a pattern.
//
// Consume tries to match at start, which lies within bounds. On success it
// returns the offset where the match ends and an optional output value.
// A component that cannot match returns ok == false; it never reports why.
type Component interface {
	Consume(input string, start int, bounds Range) (end int, output any, ok bool)
}

// Func adapts an ordinary function to a Component.
type Func func(input string, start int, bounds Range) (int, any, bool)

func (f Func) Consume(input string, start int, bounds Range) (int, any, bool) {
	return f(input, start, bounds)
}

// Result is a successful match.
type Result struct {
	Range   Range
	Outputs []any
}

// Literal matches s exactly. It produces no output.
func Literal(s string) Component {
	return Func(func(input string, start int, bounds Range) (int, any, bool) {
		if !strings.HasPrefix(input[start:bounds.End], s) {
			return 0, nil, false
		}
		return start + len(s), nil, true
	})
}

// Regexp matches re anchored at the start offset. Its output is the
// matched text.
func Regexp(re *regexp.Regexp) Component {
	return Func(func(input string, start int, bounds Range) (int, any, bool) {
		loc := re.FindStringIndex(input[start:bounds.End])
		if loc == nil || loc[0] != 0 {
			return 0, nil, false
		}
		return start + loc[1], input[start : start+loc[1]], true
	})
}

var (
	whitespaceRe = regexp.MustCompile(`^\s*`)
	spacesRe     = regexp.MustCompile(`^\s+`)
)

// Whitespace matches zero or more whitespace characters.
func Whitespace() Component {
	return silent(Regexp(whitespaceRe))
}

// Spaces matches one or more whitespace characters.
func Spaces() Component {
	return silent(Regexp(spacesRe))
}

func silent(c Component) Component {
	return Func(func(input string, start int, bounds Range) (int, any, bool) {
		end, _, ok := c.Consume(input, start, bounds)
		return end, nil, ok
	})
}

// Seq matches each component in turn. Its output is the []any of the
// non-nil outputs of its parts.
func Seq(cs ...Component) Component {
	return Func(func(input string, start int, bounds Range) (int, any, bool) {
		var outputs []any
		pos := start
		for _, c := range cs {
			end, out, ok := c.Consume(input, pos, bounds)
			if !ok || end < pos || end > bounds.End {
				return 0, nil, false
			}
			if out != nil {
				outputs = append(outputs, out)
			}
			pos = end
		}
		if len(outputs) == 0 {
			return pos, nil, true
		}
		return pos, outputs, true
	})
}

// Alt matches the first component that matches.
func Alt(cs ...Component) Component {
	return Func(func(input string, start int, bounds Range) (int, any, bool) {
		for _, c := range cs {
			if end, out, ok := c.Consume(input, start, bounds); ok && end >= start && end <= bounds.End {
				return end, out, true
			}
		}
		return 0, nil, false
	})
}

// Match reports whether c matches the whole of input.
func Match(c Component, input string) (Result, bool) {
	bounds := Range{Start: 0, End: len(input)}
	end, out, ok := c.Consume(input, 0, bounds)
	if !ok || end != len(input) {
		return Result{}, false
	}
	return Result{Range: bounds, Outputs: flatten(out)}, true
}

// Find returns the leftmost match of c in input.
func Find(c Component, input string) (Result, bool) {
	bounds := Range{Start: 0, End: len(input)}
	for start := 0; start <= len(input); {
		end, out, ok := c.Consume(input, start, bounds)
		if ok && end >= start && end <= len(input) {
			return Result{Range: Range{Start: start, End: end}, Outputs: flatten(out)}, true
		}
		if start == len(input) {
			break
		}
		_, size := utf8.DecodeRuneInString(input[start:])
		start += size
	}
	return Result{}, false
}

func flatten(out any) []any {
	switch v := out.(type) {
	case nil:
		return nil
	case []any:
		return v
	default:
		return []any{v}
	}
}
