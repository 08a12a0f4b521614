package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-sqlfront/sqlfront/token"
)

func TestLookupKeyword(t *testing.T) {
	require.Equal(t, token.SELECT, token.Lookup("SELECT"))
	require.Equal(t, token.WHERE, token.Lookup("WHERE"))
	require.Equal(t, token.AUTO_INCREMENT, token.Lookup("AUTO_INCREMENT"))
}

func TestLookupNonKeywordIsIdent(t *testing.T) {
	require.Equal(t, token.IDENT, token.Lookup("FOOBAR"))
	require.Equal(t, token.IDENT, token.Lookup(""))
}

func TestIsKeyword(t *testing.T) {
	require.True(t, token.SELECT.IsKeyword())
	require.True(t, token.WITH.IsKeyword())
	require.False(t, token.IDENT.IsKeyword())
	require.False(t, token.PLUS.IsKeyword())
	require.False(t, token.EOF.IsKeyword())
}

func TestTokenClass(t *testing.T) {
	require.Equal(t, token.Keyword, token.SELECT.Class())
	require.Equal(t, token.Identifier, token.IDENT.Class())
	require.Equal(t, token.Number, token.NUMBER.Class())
	require.Equal(t, token.StringLiteral, token.STRING.Class())
	require.Equal(t, token.EndOfInput, token.EOF.Class())
	require.Equal(t, token.Undefined, token.ILLEGAL.Class())
	require.Equal(t, token.Operator, token.PLUS.Class())
}

func TestTokenString(t *testing.T) {
	require.Equal(t, "SELECT", token.SELECT.String())
	require.Equal(t, "+", token.PLUS.String())
	require.Equal(t, "", token.Token(99999).String())
}

func TestClassString(t *testing.T) {
	require.Equal(t, "KEYWORD", token.Keyword.String())
	require.Equal(t, "UNDEFINED", token.Class(99999).String())
}

func TestKeywordsMapRoundTrips(t *testing.T) {
	for text, tok := range token.Keywords {
		require.Equal(t, text, tok.String())
		require.True(t, tok.IsKeyword())
	}
}
