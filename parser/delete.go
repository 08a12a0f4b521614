package parser

import (
	"github.com/go-sqlfront/sqlfront/ast"
	"github.com/go-sqlfront/sqlfront/token"
)

// parseDelete parses DELETE FROM table [USING other_tables] [WHERE ...]
// [ORDER BY ...] [LIMIT ...].
func (p *Parser) parseDelete() (ast.Statement, error) {
	pos := p.here()
	p.advance() // DELETE
	if _, err := p.expect(token.FROM, "FROM"); err != nil {
		return nil, err
	}

	table, err := p.parseTableRefPrimary()
	if err != nil {
		return nil, err
	}
	del := &ast.Delete{Position: pos, Table: table}

	if p.match(token.USING) {
		p.advance()
		var using []ast.TableRef
		for {
			ref, err := p.parseTableRefPrimary()
			if err != nil {
				return nil, err
			}
			using = append(using, ref)
			if !p.match(token.COMMA) {
				break
			}
			p.advance()
		}
		del.Using = using
	}

	if p.match(token.WHERE) {
		w, err := p.parseWhere()
		if err != nil {
			return nil, err
		}
		del.Where = w
	}

	if p.match(token.ORDER) {
		items, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		del.OrderBy = items
	}

	limit, _, err := p.parseLimitOffset()
	if err != nil {
		return nil, err
	}
	del.Limit = limit

	return del, nil
}
