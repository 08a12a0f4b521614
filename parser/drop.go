package parser

import (
	"github.com/go-sqlfront/sqlfront/ast"
	"github.com/go-sqlfront/sqlfront/diagnostic"
	"github.com/go-sqlfront/sqlfront/token"
)

// parseDrop parses DROP {TABLE|INDEX|VIEW|TRIGGER} [IF EXISTS] name
// [, name]* [ON table] [CASCADE|RESTRICT].
func (p *Parser) parseDrop() (ast.Statement, error) {
	pos := p.here()
	p.advance() // DROP

	var kind ast.DropKind
	switch {
	case p.match(token.TABLE):
		kind = ast.DropTableKind
		p.advance()
	case p.match(token.INDEX):
		kind = ast.DropIndexKind
		p.advance()
	case p.match(token.VIEW):
		kind = ast.DropViewKind
		p.advance()
	case p.match(token.TRIGGER):
		kind = ast.DropTriggerKind
		p.advance()
	default:
		cur := p.current()
		return nil, diagnostic.Unexpected(cur.Line, cur.Column, "TABLE, INDEX, VIEW, or TRIGGER", tokenDescription(cur))
	}

	ifExists := false
	if p.match(token.IF) {
		p.advance()
		if _, err := p.expect(token.EXISTS, "EXISTS"); err != nil {
			return nil, err
		}
		ifExists = true
	}

	names, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	drop := &ast.Drop{Position: pos, Kind: kind, IfExists: ifExists, Names: names}

	if kind == ast.DropIndexKind && p.match(token.ON) {
		p.advance()
		table, err := p.expect(token.IDENT, "a table name")
		if err != nil {
			return nil, err
		}
		drop.Table = table.Text
	}

	if p.match(token.CASCADE) {
		drop.Cascade = true
		p.advance()
	} else if p.match(token.RESTRICT) {
		drop.Restrict = true
		p.advance()
	}

	return drop, nil
}
