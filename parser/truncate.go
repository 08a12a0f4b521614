package parser

import (
	"github.com/go-sqlfront/sqlfront/ast"
	"github.com/go-sqlfront/sqlfront/token"
)

// parseTruncate parses TRUNCATE [TABLE] name.
func (p *Parser) parseTruncate() (ast.Statement, error) {
	pos := p.here()
	p.advance() // TRUNCATE
	if p.match(token.TABLE) {
		p.advance()
	}
	table, err := p.expect(token.IDENT, "a table name")
	if err != nil {
		return nil, err
	}
	return &ast.Truncate{Position: pos, Table: table.Text}, nil
}
