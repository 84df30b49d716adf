package lexer

import "github.com/KimNorgaard/go-jsontok/errors"

// Kind is the kind of a lexeme.
type Kind string

const (
	// Delimiters
	LBRACE Kind = "{"
	RBRACE Kind = "}"
	LBRACK Kind = "["
	RBRACK Kind = "]"
	COMMA  Kind = ","
	COLON  Kind = ":"

	// Literals
	STRING   Kind = "STRING"   // "hello world", quotes included
	BAREWORD Kind = "BAREWORD" // 10e-30, true, anything unquoted
)

// Lexeme is a single token of source text.
type Lexeme struct {
	Kind    Kind
	Literal string
	Range   errors.Range
}

func isStructural(r rune) bool {
	switch r {
	case '{', '}', '[', ']', ':', ',':
		return true
	}
	return false
}
