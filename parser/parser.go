// Package parser implements a predictive recursive-descent parser that
// turns a lexeme stream into a typed ast.Statement.
package parser

import (
	"github.com/go-sqlfront/sqlfront/ast"
	"github.com/go-sqlfront/sqlfront/diagnostic"
	"github.com/go-sqlfront/sqlfront/lexer"
	"github.com/go-sqlfront/sqlfront/token"
)

// Position mirrors ast.Position; productions build it from the lexeme
// they're about to consume, then hand it to the ast.Node literal they
// construct.
type Position = ast.Position

// Parser holds a buffered lexeme stream plus enough state to support
// bounded backtracking: a save/restore pair built on an index into an
// already-scanned lexeme buffer, rather than re-lexing.
type Parser struct {
	lex    *lexer.Lexer
	buf    []lexer.Lexeme
	pos    int // index into buf of the current lexeme
	lexErr error
}

// New constructs a Parser over sql.
func New(sql string) *Parser {
	return &Parser{lex: lexer.New(sql)}
}

// Parse scans sql end to end and returns the single resulting statement.
// An empty or all-whitespace input, or any lexical or grammar error,
// terminates the parse immediately with no partial ast.Statement
// returned.
func Parse(sql string) (ast.Statement, error) {
	p := New(sql)
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if p.match(token.SEMICOLON) {
		p.advance()
	}
	if !p.atEnd() {
		cur := p.current()
		return nil, diagnostic.Unexpected(cur.Line, cur.Column, "end of input", tokenDescription(cur))
	}
	return stmt, nil
}

// fill ensures buf holds at least index upto, pulling from the lexer as
// needed. Once the underlying lexer reports a lexical error, that error
// is cached and replayed on every further fill.
func (p *Parser) fill(upto int) error {
	if p.lexErr != nil {
		return p.lexErr
	}
	for len(p.buf) <= upto {
		if n := len(p.buf); n > 0 && p.buf[n-1].Class == token.EndOfInput {
			break
		}
		lx, err := p.lex.Next()
		if err != nil {
			p.lexErr = err
			return err
		}
		p.buf = append(p.buf, lx)
	}
	return nil
}

func (p *Parser) current() lexer.Lexeme {
	return p.peek(0)
}

func (p *Parser) peek(offset int) lexer.Lexeme {
	idx := p.pos + offset
	p.fill(idx)
	if idx < len(p.buf) {
		return p.buf[idx]
	}
	if len(p.buf) > 0 {
		return p.buf[len(p.buf)-1]
	}
	return lexer.Lexeme{Class: token.EndOfInput, Tok: token.EOF}
}

func (p *Parser) atEnd() bool {
	return p.current().Class == token.EndOfInput
}

// advance consumes and returns the current lexeme.
func (p *Parser) advance() lexer.Lexeme {
	cur := p.current()
	if cur.Class != token.EndOfInput {
		p.pos++
	}
	return cur
}

// match reports whether the current lexeme carries tok, without
// consuming it.
func (p *Parser) match(tok token.Token) bool {
	return p.current().Tok == tok
}

// matchAny reports whether the current lexeme carries any of toks.
func (p *Parser) matchAny(toks ...token.Token) bool {
	cur := p.current().Tok
	for _, t := range toks {
		if cur == t {
			return true
		}
	}
	return false
}

// expect consumes the current lexeme if it carries tok, else returns an
// UnexpectedToken diagnostic naming what was expected.
func (p *Parser) expect(tok token.Token, description string) (lexer.Lexeme, error) {
	if p.lexErr != nil {
		return lexer.Lexeme{}, p.lexErr
	}
	cur := p.current()
	if cur.Tok != tok {
		return lexer.Lexeme{}, diagnostic.Unexpected(cur.Line, cur.Column, description, tokenDescription(cur))
	}
	return p.advance(), nil
}

// savepoint is an opaque mark returned by save and consumed by restore,
// for trying a grammar alternative and backing out. No production in
// this package calls save or restore at present.
type savepoint struct {
	pos int
}

func (p *Parser) save() savepoint {
	return savepoint{pos: p.pos}
}

func (p *Parser) restore(sp savepoint) {
	p.pos = sp.pos
}

func (p *Parser) here() Position {
	cur := p.current()
	return Position{Line: cur.Line, Column: cur.Column}
}

func (p *Parser) err() error {
	return p.lexErr
}

// parseStatement dispatches on the leading token to the grammar's
// statement-level productions.
func (p *Parser) parseStatement() (ast.Statement, error) {
	if p.lexErr != nil {
		return nil, p.lexErr
	}
	if p.atEnd() {
		cur := p.current()
		return nil, diagnostic.New(cur.Line, cur.Column, "empty statement")
	}
	switch p.current().Tok {
	case token.SELECT, token.WITH:
		return p.parseSelect()
	case token.INSERT:
		return p.parseInsert()
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	case token.CREATE:
		return p.parseCreate()
	case token.ALTER:
		return p.parseAlter()
	case token.DROP:
		return p.parseDrop()
	case token.TRUNCATE:
		return p.parseTruncate()
	case token.MERGE:
		return p.parseMerge()
	case token.GRANT, token.REVOKE:
		return p.parseGrantRevoke()
	default:
		cur := p.current()
		return nil, diagnostic.Unexpected(cur.Line, cur.Column, "a statement", tokenDescription(cur))
	}
}

func tokenDescription(lx lexer.Lexeme) string {
	if lx.Class == token.EndOfInput {
		return "end of input"
	}
	if lx.Text != "" {
		return lx.Text
	}
	return lx.Tok.String()
}
