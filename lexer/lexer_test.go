package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-sqlfront/sqlfront/lexer"
	"github.com/go-sqlfront/sqlfront/token"
)

func scanAll(t *testing.T, sql string) []lexer.Lexeme {
	t.Helper()
	lx := lexer.New(sql)
	var out []lexer.Lexeme
	for {
		lm, err := lx.Next()
		require.NoError(t, err)
		out = append(out, lm)
		if lm.Class == token.EndOfInput {
			break
		}
	}
	return out
}

func TestLexKeywordAndIdent(t *testing.T) {
	lexemes := scanAll(t, "SELECT foo")
	require.Equal(t, token.SELECT, lexemes[0].Tok)
	require.Equal(t, token.Keyword, lexemes[0].Class)
	require.Equal(t, token.IDENT, lexemes[1].Tok)
	require.Equal(t, "foo", lexemes[1].Text)
}

func TestLexKeywordIsCaseInsensitive(t *testing.T) {
	lexemes := scanAll(t, "select Select SELECT")
	for _, lm := range lexemes[:3] {
		require.Equal(t, token.SELECT, lm.Tok)
		require.Equal(t, token.Keyword, lm.Class)
	}
	require.Equal(t, "select", lexemes[0].Text)
}

func TestLexInteger(t *testing.T) {
	lexemes := scanAll(t, "42")
	require.Equal(t, token.NUMBER, lexemes[0].Tok)
	require.Equal(t, "42", lexemes[0].Text)
}

func TestLexDecimal(t *testing.T) {
	lexemes := scanAll(t, "3.14")
	require.Equal(t, token.NUMBER, lexemes[0].Tok)
	require.Equal(t, "3.14", lexemes[0].Text)
}

func TestLexTrailingDotIsNotConsumed(t *testing.T) {
	lexemes := scanAll(t, "42.")
	require.Equal(t, "42", lexemes[0].Text)
	require.Equal(t, token.DOT, lexemes[1].Tok)
}

func TestLexStringLiteral(t *testing.T) {
	lexemes := scanAll(t, "'hello world'")
	require.Equal(t, token.STRING, lexemes[0].Tok)
	require.Equal(t, "hello world", lexemes[0].Text)
}

func TestLexStringWithDoubledQuoteEscape(t *testing.T) {
	lexemes := scanAll(t, "'it''s'")
	require.Equal(t, "it's", lexemes[0].Text)
}

func TestLexStringWithBackslashEscape(t *testing.T) {
	lexemes := scanAll(t, `'a\nb'`)
	require.Equal(t, "a\nb", lexemes[0].Text)
}

func TestLexUnterminatedStringIsLexicalError(t *testing.T) {
	lx := lexer.New("'unterminated")
	_, err := lx.Next()
	require.Error(t, err)
}

func TestLexTwoCharacterOperators(t *testing.T) {
	lexemes := scanAll(t, "<= >= <> !=")
	require.Equal(t, token.LTE, lexemes[0].Tok)
	require.Equal(t, token.GTE, lexemes[1].Tok)
	require.Equal(t, token.NEQ, lexemes[2].Tok)
	require.Equal(t, token.NEQ, lexemes[3].Tok)
}

func TestLexSingleCharacterOperatorsAndPunctuation(t *testing.T) {
	lexemes := scanAll(t, "+ - * / % = < > ( ) , . ;")
	wantToks := []token.Token{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT,
		token.EQ, token.LT, token.GT, token.LPAREN, token.RPAREN,
		token.COMMA, token.DOT, token.SEMICOLON,
	}
	for i, want := range wantToks {
		require.Equal(t, want, lexemes[i].Tok)
	}
}

func TestLexPositionsTrackLinesAndColumns(t *testing.T) {
	lexemes := scanAll(t, "SELECT 1\nFROM t")
	require.Equal(t, 1, lexemes[0].Line)
	require.Equal(t, 1, lexemes[0].Column)

	var fromLex lexer.Lexeme
	for _, lm := range lexemes {
		if lm.Tok == token.FROM {
			fromLex = lm
		}
	}
	require.Equal(t, 2, fromLex.Line)
	require.Equal(t, 1, fromLex.Column)
}

func TestLexEndOfInputRepeats(t *testing.T) {
	lx := lexer.New("")
	first, err := lx.Next()
	require.NoError(t, err)
	require.Equal(t, token.EndOfInput, first.Class)

	second, err := lx.Next()
	require.NoError(t, err)
	require.Equal(t, token.EndOfInput, second.Class)
}

func TestLexIllegalCharacterIsStillEmitted(t *testing.T) {
	lexemes := scanAll(t, "@")
	require.Equal(t, token.ILLEGAL, lexemes[0].Tok)
	require.Equal(t, "@", lexemes[0].Text)
}
