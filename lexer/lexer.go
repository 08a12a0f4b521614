// Package lexer turns a SQL character stream into a stream of classified
// Lexeme values with precise source coordinates.
package lexer

import (
	"strings"

	"github.com/go-sqlfront/sqlfront/diagnostic"
	"github.com/go-sqlfront/sqlfront/token"
)

// Lexeme is an immutable classified token with its source coordinates.
//
// Class is one of the coarse categories from token.Class; Tok additionally
// identifies which keyword or operator this lexeme is, for lexemes where
// that distinction matters (KEYWORD and OPERATOR). Text holds the raw
// character content, except for STRING_LITERAL lexemes where it holds the
// decoded contents with escapes resolved and no surrounding quotes.
type Lexeme struct {
	Class  token.Class
	Tok    token.Token
	Text   string
	Line   int
	Column int
}

// Lexer scans SQL source text into a stream of Lexeme values. It borrows the
// input for its entire lifetime and never mutates it.
type Lexer struct {
	src    []rune
	length int
	pos    int // index of the next unread rune in src
	line   int
	column int
	done   bool // true once EOF has been produced at least once
}

// New constructs a Lexer over sql. The input is borrowed; the Lexer must
// not outlive it.
func New(sql string) *Lexer {
	return &Lexer{
		src:    []rune(sql),
		length: len(sql),
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) peekRune(offset int) (rune, bool) {
	i := l.pos + offset
	if i >= l.length {
		return 0, false
	}
	return l.src[i], true
}

func (l *Lexer) advanceRune() (rune, bool) {
	ch, ok := l.peekRune(0)
	if !ok {
		return 0, false
	}
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch, true
}

func (l *Lexer) skipWhitespace() {
	for {
		ch, ok := l.peekRune(0)
		if !ok || !isASCIIWhitespace(ch) {
			return
		}
		l.advanceRune()
	}
}

func isASCIIWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentChar(ch rune) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// Next pulls the next Lexeme from the stream. Once input is exhausted it
// returns the END_OF_INPUT sentinel on every subsequent call.
func (l *Lexer) Next() (Lexeme, error) {
	if l.done {
		return Lexeme{Class: token.EndOfInput, Tok: token.EOF, Line: l.line, Column: l.column}, nil
	}

	l.skipWhitespace()

	startLine, startCol := l.line, l.column
	ch, ok := l.peekRune(0)
	if !ok {
		l.done = true
		return Lexeme{Class: token.EndOfInput, Tok: token.EOF, Line: startLine, Column: startCol}, nil
	}

	switch {
	case isIdentStart(ch):
		return l.scanIdentifier(startLine, startCol), nil
	case isDigit(ch):
		return l.scanNumber(startLine, startCol), nil
	case ch == '\'':
		return l.scanString(startLine, startCol)
	default:
		return l.scanOperator(startLine, startCol), nil
	}
}

func (l *Lexer) scanIdentifier(line, col int) Lexeme {
	var sb strings.Builder
	for {
		ch, ok := l.peekRune(0)
		if !ok || !isIdentChar(ch) {
			break
		}
		sb.WriteRune(ch)
		l.advanceRune()
	}
	text := sb.String()
	tok := token.Lookup(strings.ToUpper(text))
	if tok == token.IDENT {
		return Lexeme{Class: token.Identifier, Tok: token.IDENT, Text: text, Line: line, Column: col}
	}
	return Lexeme{Class: token.Keyword, Tok: tok, Text: text, Line: line, Column: col}
}

// scanNumber implements §4.1 rule 2: one or more digits, optionally
// followed by a single '.' and one or more further digits. No exponent,
// no sign.
func (l *Lexer) scanNumber(line, col int) Lexeme {
	var sb strings.Builder
	for {
		ch, ok := l.peekRune(0)
		if !ok || !isDigit(ch) {
			break
		}
		sb.WriteRune(ch)
		l.advanceRune()
	}
	if ch, ok := l.peekRune(0); ok && ch == '.' {
		if next, ok2 := l.peekRune(1); ok2 && isDigit(next) {
			sb.WriteRune(ch)
			l.advanceRune()
			for {
				ch, ok := l.peekRune(0)
				if !ok || !isDigit(ch) {
					break
				}
				sb.WriteRune(ch)
				l.advanceRune()
			}
		}
	}
	return Lexeme{Class: token.Number, Tok: token.NUMBER, Text: sb.String(), Line: line, Column: col}
}

// scanString implements §4.1 rule 3: copy characters until a terminating
// quote; doubled quotes decode to one quote, backslash escapes the next
// character literally. An unterminated literal is a LexicalError.
func (l *Lexer) scanString(line, col int) (Lexeme, error) {
	l.advanceRune() // opening quote
	var sb strings.Builder
	for {
		ch, ok := l.peekRune(0)
		if !ok {
			return Lexeme{}, &diagnostic.Diagnostic{Kind: diagnostic.Lexical, Line: line, Column: col, Message: "unterminated string literal"}
		}
		if ch == '\'' {
			if next, ok2 := l.peekRune(1); ok2 && next == '\'' {
				sb.WriteRune('\'')
				l.advanceRune()
				l.advanceRune()
				continue
			}
			l.advanceRune()
			break
		}
		if ch == '\\' {
			l.advanceRune()
			escaped, ok := l.peekRune(0)
			if !ok {
				return Lexeme{}, &diagnostic.Diagnostic{Kind: diagnostic.Lexical, Line: line, Column: col, Message: "unterminated string literal"}
			}
			sb.WriteRune(escaped)
			l.advanceRune()
			continue
		}
		sb.WriteRune(ch)
		l.advanceRune()
	}
	return Lexeme{Class: token.StringLiteral, Tok: token.STRING, Text: sb.String(), Line: line, Column: col}, nil
}

// scanOperator implements §4.1 rule 4: two-character operators are tried
// first, then a single-character lexeme is emitted (including punctuation,
// which this core classifies as OPERATOR). An unrecognized single
// character is still emitted as a one-character OPERATOR lexeme; the
// lexer never fails on it.
func (l *Lexer) scanOperator(line, col int) Lexeme {
	ch, _ := l.advanceRune()
	next, hasNext := l.peekRune(0)

	two := func(t token.Token, text string) Lexeme {
		l.advanceRune()
		return Lexeme{Class: token.Operator, Tok: t, Text: text, Line: line, Column: col}
	}

	switch ch {
	case '<':
		if hasNext && next == '=' {
			return two(token.LTE, "<=")
		}
		if hasNext && next == '>' {
			return two(token.NEQ, "<>")
		}
		return Lexeme{Class: token.Operator, Tok: token.LT, Text: "<", Line: line, Column: col}
	case '>':
		if hasNext && next == '=' {
			return two(token.GTE, ">=")
		}
		return Lexeme{Class: token.Operator, Tok: token.GT, Text: ">", Line: line, Column: col}
	case '!':
		if hasNext && next == '=' {
			return two(token.NEQ, "!=")
		}
		return Lexeme{Class: token.Operator, Tok: token.ILLEGAL, Text: "!", Line: line, Column: col}
	case '=':
		return Lexeme{Class: token.Operator, Tok: token.EQ, Text: "=", Line: line, Column: col}
	case '+':
		return Lexeme{Class: token.Operator, Tok: token.PLUS, Text: "+", Line: line, Column: col}
	case '-':
		return Lexeme{Class: token.Operator, Tok: token.MINUS, Text: "-", Line: line, Column: col}
	case '*':
		return Lexeme{Class: token.Operator, Tok: token.ASTERISK, Text: "*", Line: line, Column: col}
	case '/':
		return Lexeme{Class: token.Operator, Tok: token.SLASH, Text: "/", Line: line, Column: col}
	case '%':
		return Lexeme{Class: token.Operator, Tok: token.PERCENT, Text: "%", Line: line, Column: col}
	case '(':
		return Lexeme{Class: token.Operator, Tok: token.LPAREN, Text: "(", Line: line, Column: col}
	case ')':
		return Lexeme{Class: token.Operator, Tok: token.RPAREN, Text: ")", Line: line, Column: col}
	case ',':
		return Lexeme{Class: token.Operator, Tok: token.COMMA, Text: ",", Line: line, Column: col}
	case '.':
		return Lexeme{Class: token.Operator, Tok: token.DOT, Text: ".", Line: line, Column: col}
	case ';':
		return Lexeme{Class: token.Operator, Tok: token.SEMICOLON, Text: ";", Line: line, Column: col}
	default:
		return Lexeme{Class: token.Operator, Tok: token.ILLEGAL, Text: string(ch), Line: line, Column: col}
	}
}
