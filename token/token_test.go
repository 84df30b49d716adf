package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Token
		expected bool
	}{
		{"same bareword", Bareword("x"), Bareword("x"), true},
		{"different bareword", Bareword("x"), Bareword("y"), false},
		{"bareword is not string", Bareword("x"), String("x"), false},
		{"string is not bareword", String("x"), Bareword("x"), false},
		{"same array", Array{Bareword("1"), String("2")}, Array{Bareword("1"), String("2")}, true},
		{"array order matters", Array{Bareword("1"), Bareword("2")}, Array{Bareword("2"), Bareword("1")}, false},
		{"array length matters", Array{Bareword("1")}, Array{Bareword("1"), Bareword("1")}, false},
		{"array is not object", Array{}, Object{}, false},
		{
			"same object",
			Object{{Key: Array{String("k")}, Value: Bareword("v")}},
			Object{{Key: Array{String("k")}, Value: Bareword("v")}},
			true,
		},
		{
			"object order matters",
			Object{{Key: String("a"), Value: Bareword("1")}, {Key: String("b"), Value: Bareword("2")}},
			Object{{Key: String("b"), Value: Bareword("2")}, {Key: String("a"), Value: Bareword("1")}},
			false,
		},
		{
			"object key variant matters",
			Object{{Key: String("a"), Value: Bareword("1")}},
			Object{{Key: Bareword("a"), Value: Bareword("1")}},
			false,
		},
		{"both nil", nil, nil, true},
		{"nil and bareword", nil, Bareword(""), false},
		{"bareword and nil", Bareword(""), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Equal(tt.a, tt.b))
		})
	}
}

func TestKind(t *testing.T) {
	require.Equal(t, KindBareword, Bareword("x").Kind())
	require.Equal(t, KindString, String("x").Kind())
	require.Equal(t, KindArray, Array{}.Kind())
	require.Equal(t, KindObject, Object{}.Kind())
}

func TestString(t *testing.T) {
	tests := []struct {
		tok      Token
		expected string
	}{
		{Bareword("10e-30"), "10e-30"},
		{String("World"), `"World"`},
		{String("tab\there"), `"tab\there"`},
		{String(`say "hi"`), "\"say \\u0022hi\\u0022\""},
		{Array{Bareword("null"), String("a")}, `[null, "a"]`},
		{Object{{Key: Array{String("Hello")}, Value: String("World")}}, `{["Hello"]: "World"}`},
		{
			Object{{Key: Bareword("a"), Value: Array{}}, {Key: Bareword("a"), Value: Object{}}},
			`{a: [], a: {}}`,
		},
		{Array{nil}, `[<nil>]`},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.tok.String())
		})
	}
}
