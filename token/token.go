// Package token defines the tree produced by the tokenizer.
//
// A Token is one of four shapes: Bareword, String, Array or Object. Trees
// are built bottom-up by a single parse and are not modified afterwards.
package token

import (
	"strings"

	"github.com/KimNorgaard/go-jsontok/internal/escape"
)

// Kind identifies the shape of a Token.
type Kind string

const (
	KindBareword Kind = "BAREWORD"
	KindString   Kind = "STRING"
	KindArray    Kind = "ARRAY"
	KindObject   Kind = "OBJECT"
)

// Token is a node of the parsed tree. The set of implementations is closed.
type Token interface {
	// Kind returns the shape of the token.
	Kind() Kind
	// Equal reports whether the token and other are the same shape with
	// equal contents.
	Equal(other Token) bool
	// String returns a compact rendering of the token for debugging.
	String() string

	tokenNode()
}

// Bareword is an unquoted run of characters, kept exactly as written.
// Numbers and the literals true, false and null are barewords.
type Bareword string

// String is a quoted string with its escape sequences decoded.
type String string

// Array is an ordered list of tokens.
type Array []Token

// Object is an ordered list of key/value pairs. Keys may be any token and
// may repeat.
type Object []Pair

// Pair is a single key/value entry of an Object.
type Pair struct {
	Key   Token
	Value Token
}

func (Bareword) tokenNode() {}
func (String) tokenNode()   {}
func (Array) tokenNode()    {}
func (Object) tokenNode()   {}

func (Bareword) Kind() Kind { return KindBareword }
func (String) Kind() Kind   { return KindString }
func (Array) Kind() Kind    { return KindArray }
func (Object) Kind() Kind   { return KindObject }

func (b Bareword) Equal(other Token) bool {
	o, ok := other.(Bareword)
	return ok && b == o
}

func (s String) Equal(other Token) bool {
	o, ok := other.(String)
	return ok && s == o
}

func (a Array) Equal(other Token) bool {
	o, ok := other.(Array)
	if !ok || len(a) != len(o) {
		return false
	}
	for i := range a {
		if !Equal(a[i], o[i]) {
			return false
		}
	}
	return true
}

func (obj Object) Equal(other Token) bool {
	o, ok := other.(Object)
	if !ok || len(obj) != len(o) {
		return false
	}
	for i := range obj {
		if !Equal(obj[i].Key, o[i].Key) || !Equal(obj[i].Value, o[i].Value) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b are structurally equal. Two nil tokens are
// equal; a nil token equals nothing else.
func Equal(a, b Token) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func (b Bareword) String() string { return string(b) }

func (s String) String() string { return escape.Quote(string(s)) }

func (a Array) String() string {
	elements := make([]string, 0, len(a))
	for _, el := range a {
		elements = append(elements, str(el))
	}
	return "[" + strings.Join(elements, ", ") + "]"
}

func (obj Object) String() string {
	pairs := make([]string, 0, len(obj))
	for _, p := range obj {
		pairs = append(pairs, p.String())
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

func (p Pair) String() string {
	return str(p.Key) + ": " + str(p.Value)
}

func str(t Token) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
