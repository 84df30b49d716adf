// Package lexer splits tokenizer input into lexemes.
package lexer

import (
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/KimNorgaard/go-jsontok/errors"
)

// Lexer scans a string from a moving offset. It never looks behind the
// offset and never modifies the input.
type Lexer struct {
	input  string
	offset int
}

// New returns a Lexer that starts scanning input at offset.
func New(input string, offset int) *Lexer {
	return &Lexer{input: input, offset: offset}
}

// Offset returns the position just past the last lexeme returned by Next.
func (l *Lexer) Offset() int {
	return l.offset
}

// Next returns the first lexeme at or after the current offset and moves
// the offset past it. Characters that cannot start a lexeme, whitespace
// among them, are skipped.
//
// If expected is not empty, the literal of the lexeme must be one of
// expected; otherwise Next returns *errors.UnexpectedTokenError and the
// offset stays where it was.
func (l *Lexer) Next(expected ...string) (Lexeme, error) {
	if l.offset > len(l.input) {
		return Lexeme{}, &errors.UnexpectedEndOfInputError{Offset: l.offset}
	}
	lx, ok := l.scan()
	if !ok {
		return Lexeme{}, &errors.UnexpectedEndOfInputError{Offset: l.offset}
	}
	if len(expected) > 0 && !slices.Contains(expected, lx.Literal) {
		return Lexeme{}, &errors.UnexpectedTokenError{
			Expected: slices.Clone(expected),
			Actual:   lx.Literal,
			Range:    lx.Range,
		}
	}
	l.offset = lx.Range.End
	return lx, nil
}

func (l *Lexer) scan() (Lexeme, bool) {
	for i := l.offset; i < len(l.input); {
		r, size := utf8.DecodeRuneInString(l.input[i:])
		switch {
		case isStructural(r):
			return l.lexeme(Kind(l.input[i:i+size]), i, i+size), true
		case r == '"':
			if end, ok := scanString(l.input, i); ok {
				return l.lexeme(STRING, i, end), true
			}
		case !unicode.IsSpace(r):
			return l.lexeme(BAREWORD, i, l.barewordEnd(i)), true
		}
		i += size
	}
	return Lexeme{}, false
}

func (l *Lexer) lexeme(kind Kind, start, end int) Lexeme {
	return Lexeme{
		Kind:    kind,
		Literal: l.input[start:end],
		Range:   errors.Range{Start: start, End: end},
	}
}

func (l *Lexer) barewordEnd(i int) int {
	for i < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[i:])
		if unicode.IsSpace(r) || isStructural(r) || r == '"' {
			break
		}
		i += size
	}
	return i
}

// scanString matches a quoted string starting at the quote s[start] and
// returns the offset just past the closing quote.
//
// The body is a run of escape pairs (a backslash and any character) or
// single characters other than a quote. When the greedy reading of the
// body runs off the end, earlier escape pairs are re-read as a plain
// backslash followed by a separate character, so `"a\"` is a complete
// string whose body is `a\`. Positions already shown to lead nowhere are
// remembered, which keeps the search linear.
func scanString(s string, start int) (int, bool) {
	type frame struct {
		pos int
		alt int
	}
	var dead map[int]bool
	stack := []frame{{pos: start + 1}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		p := f.pos
		switch f.alt {
		case 0: // backslash and any character
			f.alt++
			if p+1 < len(s) && s[p] == '\\' {
				_, size := utf8.DecodeRuneInString(s[p+1:])
				if next := p + 1 + size; !dead[next] {
					stack = append(stack, frame{pos: next})
				}
			}
		case 1: // any character but a quote
			f.alt++
			if p < len(s) && s[p] != '"' {
				_, size := utf8.DecodeRuneInString(s[p:])
				if next := p + size; !dead[next] {
					stack = append(stack, frame{pos: next})
				}
			}
		default: // closing quote
			if p < len(s) && s[p] == '"' {
				return p + 1, true
			}
			if dead == nil {
				dead = make(map[int]bool)
			}
			dead[p] = true
			stack = stack[:len(stack)-1]
		}
	}
	return 0, false
}
