// Package errors defines the errors reported by the tokenizer and renders
// them as source diagnostics.
package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a half-open byte range [Start, End) into the tokenized input.
type Range struct {
	Start int
	End   int
}

// Shift returns r moved n bytes to the right.
func (r Range) Shift(n int) Range {
	return Range{Start: r.Start + n, End: r.End + n}
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Error is implemented by every error the tokenizer returns. Span reports
// the part of the input the error refers to.
type Error interface {
	error
	Span() Range
}

// UnexpectedEndOfInputError reports that the input ran out, or held nothing
// but skippable characters, where a token was required.
type UnexpectedEndOfInputError struct {
	Offset int
}

func (e *UnexpectedEndOfInputError) Error() string {
	return fmt.Sprintf("jsontok: unexpected end of input at offset %d", e.Offset)
}

func (e *UnexpectedEndOfInputError) Span() Range { return Range{Start: e.Offset, End: e.Offset} }

// UnexpectedTokenError reports a token that is not one of the tokens the
// grammar accepts at that point.
type UnexpectedTokenError struct {
	Expected []string
	Actual   string
	Range    Range
}

func (e *UnexpectedTokenError) Error() string {
	quoted := make([]string, len(e.Expected))
	for i, s := range e.Expected {
		quoted[i] = strconv.Quote(s)
	}
	return fmt.Sprintf("jsontok: unexpected token %q at offset %s, expected one of %s",
		e.Actual, e.Range, strings.Join(quoted, ", "))
}

func (e *UnexpectedTokenError) Span() Range { return e.Range }

// RemainingTokensError reports input left over after a complete top-level value.
type RemainingTokensError struct {
	Offset int
}

func (e *RemainingTokensError) Error() string {
	return fmt.Sprintf("jsontok: remaining input after value at offset %d", e.Offset)
}

func (e *RemainingTokensError) Span() Range { return Range{Start: e.Offset, End: e.Offset} }

// UnhandledStringTokenError reports an escape sequence the string decoder
// does not support. Raw holds the whole matched sequence; of the three
// captures, an empty string means the capture did not participate.
type UnhandledStringTokenError struct {
	Raw       string
	Unicode   string
	Escaped   string
	Character string
	Range     Range
}

func (e *UnhandledStringTokenError) Error() string {
	return fmt.Sprintf("jsontok: unhandled string escape %q at offset %s", e.Raw, e.Range)
}

func (e *UnhandledStringTokenError) Span() Range { return e.Range }

// MaxDepthError reports nesting deeper than the configured ceiling.
type MaxDepthError struct {
	Depth  int
	Offset int
}

func (e *MaxDepthError) Error() string {
	return fmt.Sprintf("jsontok: nesting exceeds max depth %d at offset %d", e.Depth, e.Offset)
}

func (e *MaxDepthError) Span() Range { return Range{Start: e.Offset, End: e.Offset} }
