package parser

import (
	"github.com/go-sqlfront/sqlfront/ast"
	"github.com/go-sqlfront/sqlfront/token"
)

// parseUpdate parses UPDATE table SET col = expr, ... [WHERE ...]
// [ORDER BY ...] [LIMIT ...].
func (p *Parser) parseUpdate() (ast.Statement, error) {
	pos := p.here()
	p.advance() // UPDATE

	table, err := p.parseTableRefPrimary()
	if err != nil {
		return nil, err
	}
	upd := &ast.Update{Position: pos, Table: table}

	if _, err := p.expect(token.SET, "SET"); err != nil {
		return nil, err
	}
	assigns, err := p.parseAssignmentList()
	if err != nil {
		return nil, err
	}
	upd.Assignments = assigns

	if p.match(token.WHERE) {
		w, err := p.parseWhere()
		if err != nil {
			return nil, err
		}
		upd.Where = w
	}

	if p.match(token.ORDER) {
		items, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		upd.OrderBy = items
	}

	limit, _, err := p.parseLimitOffset()
	if err != nil {
		return nil, err
	}
	upd.Limit = limit

	return upd, nil
}
