// Package escape decodes and encodes the body of quoted strings.
package escape

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"

	"github.com/KimNorgaard/go-jsontok/errors"
)

// Decode resolves the escape sequences of body, the text strictly between
// the quotes of a string token.
//
// Recognised escapes are \uXXXX (four hex digits naming a Unicode scalar
// value) and the short escapes \b, \f, \n, \r and \t. Any other escape,
// including \", \\ and \/, fails with *errors.UnhandledStringTokenError
// whose Range is relative to body. A lone trailing backslash is kept as is.
func Decode(body string) (string, error) {
	if strings.IndexByte(body, '\\') < 0 {
		return body, nil
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); {
		if body[i] != '\\' || i+1 == len(body) {
			_, size := utf8.DecodeRuneInString(body[i:])
			b.WriteString(body[i : i+size])
			i += size
			continue
		}

		if hex, ok := unicodeEscape(body[i:]); ok {
			r, ok := scalar(hex)
			if !ok {
				return "", &errors.UnhandledStringTokenError{
					Raw:     body[i : i+6],
					Unicode: hex,
					Range:   errors.Range{Start: i, End: i + 6},
				}
			}
			b.WriteRune(r)
			i += 6
			continue
		}

		_, size := utf8.DecodeRuneInString(body[i+1:])
		escaped := body[i+1 : i+1+size]
		r, ok := unescape(escaped)
		if !ok {
			return "", &errors.UnhandledStringTokenError{
				Raw:     body[i : i+1+size],
				Escaped: escaped,
				Range:   errors.Range{Start: i, End: i + 1 + size},
			}
		}
		b.WriteByte(r)
		i += 1 + size
	}
	return b.String(), nil
}

// unicodeEscape reports whether s starts with \u and four hex digits, and
// returns the digits.
func unicodeEscape(s string) (string, bool) {
	if len(s) < 6 || s[1] != 'u' {
		return "", false
	}
	for i := 2; i < 6; i++ {
		if !isHex(s[i]) {
			return "", false
		}
	}
	return s[2:6], true
}

func scalar(hex string) (rune, bool) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	r, err := safecast.Conv[rune](v)
	if err != nil || !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}

func unescape(s string) (byte, bool) {
	switch s {
	case "b":
		return '\b', true
	case "f":
		return '\f', true
	case "n":
		return '\n', true
	case "r":
		return '\r', true
	case "t":
		return '\t', true
	}
	return 0, false
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// Quote returns s as a quoted string token that Decode maps back to s.
//
// Only the escapes Decode understands are used: the five short escapes, and
// \u00XX for the quote, the backslash and the remaining control characters.
// Everything else, including invalid UTF-8, is copied verbatim.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '"', '\\', 0x7f:
			fmt.Fprintf(&b, `\u%04x`, c)
		default:
			if c < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, c)
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
