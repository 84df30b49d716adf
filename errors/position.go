package errors

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position is a human-facing location in the input. Line and Column are
// 1-based; Column counts runes, not bytes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionFor converts a byte offset into a Position. Offsets outside the
// input are clamped to its bounds.
func PositionFor(input string, offset int) Position {
	offset = max(0, min(offset, len(input)))
	before := input[:offset]
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return Position{
		Offset: offset,
		Line:   strings.Count(before, "\n") + 1,
		Column: utf8.RuneCountInString(before[lineStart:]) + 1,
	}
}

// lineAt returns the bounds of the line containing offset, excluding the
// line terminator.
func lineAt(input string, offset int) (start, end int) {
	offset = max(0, min(offset, len(input)))
	start = strings.LastIndexByte(input[:offset], '\n') + 1
	end = len(input)
	if i := strings.IndexByte(input[offset:], '\n'); i >= 0 {
		end = offset + i
	}
	if end > start && input[end-1] == '\r' {
		end--
	}
	return start, end
}
