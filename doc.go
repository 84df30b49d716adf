/*
Package jsontok is a lenient tokenizer for a superset of JSON. It accepts
standard JSON and relaxes two of its rules: object keys may be any value,
not only strings, and unquoted atoms are kept exactly as written instead of
being decoded.

The result of a parse is a tree of token.Token values with four shapes:

  - token.Bareword: an unquoted run such as 10e-30, true, null or foo
  - token.String: a quoted string with its escapes decoded
  - token.Array: an ordered list of tokens
  - token.Object: an ordered list of key/value pairs; keys may repeat

Example:

	tok, err := jsontok.Tokenize(`{["Hello"]: "World", n: 0.0}`)
	if err != nil {
		// handle error
	}
	// tok is token.Object{
	//	{Key: token.Array{token.String("Hello")}, Value: token.String("World")},
	//	{Key: token.Bareword("n"), Value: token.Bareword("0.0")},
	// }

Whitespace between tokens is skipped, but the top-level value must end the
input: trailing content, a newline included, is reported as
*errors.RemainingTokensError. String escapes are limited to \uXXXX, \b, \f,
\n, \r and \t; any other escape is reported as
*errors.UnhandledStringTokenError. Empty arrays and objects are not part of
the grammar.

1. Embedding in larger patterns

A Tokenizer implements match.Component, so a value can be matched as one
part of a bigger pattern. Consume parses a single value at an offset and
declines, rather than failing, on input it cannot parse:

	tok, _ := jsontok.New()
	p := match.Seq(
		match.Literal("Hello"), match.Spaces(),
		tok,
		match.Spaces(), match.Literal("World"),
	)
	res, ok := match.Match(p, `Hello [1, 2] World`)
	// ok is true and res.Outputs[0] is token.Array{token.Bareword("1"), token.Bareword("2")}

2. Diagnostics

Every error carries the byte range it refers to. errors.Render prints the
message together with the offending line of input and a caret under the
range:

	if _, err := jsontok.Tokenize(src); err != nil {
		_ = errors.Render(os.Stderr, src, err, errors.RenderOptions{Color: errors.AutoColor(os.Stderr)})
	}

Deeply nested input can be bounded with the MaxDepth option.
*/
package jsontok
