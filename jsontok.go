package jsontok

import (
	"github.com/KimNorgaard/go-jsontok/internal/parser"
	"github.com/KimNorgaard/go-jsontok/match"
	"github.com/KimNorgaard/go-jsontok/token"
)

// Tokenizer parses input into token trees. A Tokenizer is immutable and
// safe for concurrent use.
type Tokenizer struct {
	cfg parser.Config
}

// New returns a Tokenizer configured by opts.
func New(opts ...Option) (*Tokenizer, error) {
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	return &Tokenizer{cfg: parser.Config{MaxDepth: o.maxDepth}}, nil
}

// Tokenize parses input as exactly one value. The value must run to the
// end of input; trailing content, including whitespace, is an error.
//
// Errors are one of the types in the errors package.
func (t *Tokenizer) Tokenize(input string) (token.Token, error) {
	return parser.New(input, 0, t.cfg).Parse()
}

// ConsumeToken parses one value starting at start and returns the offset
// just past it. Any failure is reported as ok == false.
func (t *Tokenizer) ConsumeToken(input string, start int) (end int, tok token.Token, ok bool) {
	if start < 0 || start > len(input) {
		return 0, nil, false
	}
	p := parser.New(input, start, t.cfg)
	tok, err := p.ParseValue()
	if err != nil {
		return 0, nil, false
	}
	return p.Offset(), tok, true
}

// Consume implements match.Component. The output is the parsed
// token.Token. The tokenizer reads past bounds if the value does; hosts
// decide whether such a match is acceptable.
func (t *Tokenizer) Consume(input string, start int, _ match.Range) (int, any, bool) {
	end, tok, ok := t.ConsumeToken(input, start)
	if !ok {
		return 0, nil, false
	}
	return end, tok, true
}

var (
	defaultTokenizer = &Tokenizer{}

	_ match.Component = (*Tokenizer)(nil)
)

// Tokenize parses input as exactly one value using a Tokenizer configured
// by opts.
func Tokenize(input string, opts ...Option) (token.Token, error) {
	t := defaultTokenizer
	if len(opts) > 0 {
		var err error
		if t, err = New(opts...); err != nil {
			return nil, err
		}
	}
	return t.Tokenize(input)
}

// Consume parses one value starting at start with the default settings
// and returns the offset just past it. It never returns an error: input
// that Tokenize would reject yields ok == false.
func Consume(input string, start int) (end int, tok token.Token, ok bool) {
	return defaultTokenizer.ConsumeToken(input, start)
}
