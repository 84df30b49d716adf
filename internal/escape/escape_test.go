package escape

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-jsontok/errors"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"short escapes", `a\bb\fc\nd\re\tf`, "a\bb\fc\nd\re\tf"},
		{"unicode escapes", `\u0041\u00e9\u4E2D`, "Aé中"},
		{"uppercase hex", `\u00C9`, "É"},
		{"multibyte characters", "héllo, 世界", "héllo, 世界"},
		{"raw newline", "a\nb", "a\nb"},
		{"trailing backslash", `abc\`, `abc\`},
		{"escape then plain", `\tx`, "\tx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := Decode(tt.body)
			require.NoError(t, err)
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestDecode_Unhandled(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected *errors.UnhandledStringTokenError
	}{
		{
			name:     "escaped quote",
			body:     `\"`,
			expected: &errors.UnhandledStringTokenError{Raw: `\"`, Escaped: `"`, Range: errors.Range{Start: 0, End: 2}},
		},
		{
			name:     "escaped backslash",
			body:     `ab\\`,
			expected: &errors.UnhandledStringTokenError{Raw: `\\`, Escaped: `\`, Range: errors.Range{Start: 2, End: 4}},
		},
		{
			name:     "escaped solidus",
			body:     `\/`,
			expected: &errors.UnhandledStringTokenError{Raw: `\/`, Escaped: "/", Range: errors.Range{Start: 0, End: 2}},
		},
		{
			name:     "short unicode escape",
			body:     `x\u12`,
			expected: &errors.UnhandledStringTokenError{Raw: `\u`, Escaped: "u", Range: errors.Range{Start: 1, End: 3}},
		},
		{
			name:     "non-hex unicode escape",
			body:     `\u12g4`,
			expected: &errors.UnhandledStringTokenError{Raw: `\u`, Escaped: "u", Range: errors.Range{Start: 0, End: 2}},
		},
		{
			name:     "surrogate code point",
			body:     `\uD800`,
			expected: &errors.UnhandledStringTokenError{Raw: `\uD800`, Unicode: "D800", Range: errors.Range{Start: 0, End: 6}},
		},
		{
			name:     "escaped multibyte character",
			body:     `\é`,
			expected: &errors.UnhandledStringTokenError{Raw: `\é`, Escaped: "é", Range: errors.Range{Start: 0, End: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.body)
			require.Error(t, err)
			require.Equal(t, tt.expected, err)
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", `""`},
		{"hi", `"hi"`},
		{`a"b`, `"a\u0022b"`},
		{`a\b`, `"a\u005cb"`},
		{"\t\n\r\b\f", `"\t\n\r\b\f"`},
		{"\x01", `"\u0001"`},
		{"\x7f", `"\u007f"`},
		{"日本", `"日本"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, Quote(tt.input))
		})
	}
}

func TestQuote_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		`quote " and backslash \`,
		`\u0041 is not decoded here`,
		"controls \x00\x1f\x7f",
		"tab\tnewline\n",
		"emoji 😀 and accents é",
		"invalid \xff utf-8",
		`trailing \`,
	}

	for _, s := range inputs {
		q := Quote(s)
		actual, err := Decode(q[1 : len(q)-1])
		require.NoError(t, err, "decoding %s", q)
		require.Equal(t, s, actual)
	}
}

func FuzzQuote(f *testing.F) {
	f.Add("hello")
	f.Add(`"\`)
	f.Add("\x00\n\xff")

	f.Fuzz(func(t *testing.T, s string) {
		q := Quote(s)
		actual, err := Decode(q[1 : len(q)-1])
		require.NoError(t, err)
		require.Equal(t, s, actual)
	})
}
