// Package parser builds token trees from lexemes.
package parser

import (
	"github.com/KimNorgaard/go-jsontok/errors"
	"github.com/KimNorgaard/go-jsontok/internal/escape"
	"github.com/KimNorgaard/go-jsontok/internal/lexer"
	"github.com/KimNorgaard/go-jsontok/token"
)

// Config holds parser settings.
type Config struct {
	// MaxDepth limits how deeply values may nest. Zero means no limit.
	MaxDepth int
}

// Parser holds the state of a single parse. It is not safe for concurrent
// use; create one per input.
type Parser struct {
	l     *lexer.Lexer
	input string
	cfg   Config
	depth int
}

// New creates a parser that reads input from offset.
func New(input string, offset int, cfg Config) *Parser {
	return &Parser{
		l:     lexer.New(input, offset),
		input: input,
		cfg:   cfg,
	}
}

// Offset returns the position just past the last consumed lexeme.
func (p *Parser) Offset() int {
	return p.l.Offset()
}

// Parse parses exactly one value, which must extend to the end of the
// input. Anything after it, whitespace included, is reported as
// *errors.RemainingTokensError.
func (p *Parser) Parse() (token.Token, error) {
	value, err := p.ParseValue()
	if err != nil {
		return nil, err
	}
	if off := p.l.Offset(); off != len(p.input) {
		return nil, &errors.RemainingTokensError{Offset: off}
	}
	return value, nil
}

// ParseValue parses one value and leaves the offset just past it.
func (p *Parser) ParseValue() (token.Token, error) {
	if p.cfg.MaxDepth > 0 {
		p.depth++
		defer func() { p.depth-- }()
		if p.depth > p.cfg.MaxDepth {
			return nil, &errors.MaxDepthError{Depth: p.cfg.MaxDepth, Offset: p.l.Offset()}
		}
	}

	lx, err := p.l.Next()
	if err != nil {
		return nil, err
	}
	switch lx.Kind {
	case lexer.LBRACK:
		return p.parseArray()
	case lexer.LBRACE:
		return p.parseObject()
	case lexer.STRING:
		return p.parseString(lx)
	default:
		// Barewords, and delimiters found where a value should start.
		return token.Bareword(lx.Literal), nil
	}
}

// The array and object loops read at least one element before looking for
// the closing delimiter, so "[]" and "{}" do not parse.

func (p *Parser) parseArray() (token.Token, error) {
	var elements token.Array
	for {
		el, err := p.ParseValue()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)

		next, err := p.l.Next(string(lexer.RBRACK), string(lexer.COMMA))
		if err != nil {
			return nil, err
		}
		if next.Kind == lexer.RBRACK {
			return elements, nil
		}
	}
}

func (p *Parser) parseObject() (token.Token, error) {
	var pairs token.Object
	for {
		key, err := p.ParseValue()
		if err != nil {
			return nil, err
		}
		if _, err := p.l.Next(string(lexer.COLON)); err != nil {
			return nil, err
		}
		value, err := p.ParseValue()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, token.Pair{Key: key, Value: value})

		next, err := p.l.Next(string(lexer.RBRACE), string(lexer.COMMA))
		if err != nil {
			return nil, err
		}
		if next.Kind == lexer.RBRACE {
			return pairs, nil
		}
	}
}

func (p *Parser) parseString(lx lexer.Lexeme) (token.Token, error) {
	body := lx.Literal[1 : len(lx.Literal)-1]
	s, err := escape.Decode(body)
	if err != nil {
		if e, ok := err.(*errors.UnhandledStringTokenError); ok {
			e.Range = e.Range.Shift(lx.Range.Start + 1)
		}
		return nil, err
	}
	return token.String(s), nil
}
