package parser

import (
	"github.com/go-sqlfront/sqlfront/ast"
	"github.com/go-sqlfront/sqlfront/diagnostic"
	"github.com/go-sqlfront/sqlfront/token"
)

// parseSelect parses a SELECT statement, including its optional leading
// WITH clause. It returns ast.Statement so callers that need it as a
// subquery body can type-assert to *ast.Select.
func (p *Parser) parseSelect() (ast.Statement, error) {
	pos := p.here()
	var with []*ast.CommonTableExpr

	if p.match(token.WITH) {
		w, err := p.parseWithClause()
		if err != nil {
			return nil, err
		}
		with = w
	}

	if _, err := p.expect(token.SELECT, "SELECT"); err != nil {
		return nil, err
	}

	sel := &ast.Select{Position: pos, With: with}

	if p.match(token.DISTINCT) {
		sel.Distinct = true
		p.advance()
	}

	items, err := p.parseSelectItemList()
	if err != nil {
		return nil, err
	}
	sel.Columns = items

	if _, err := p.expect(token.FROM, "FROM"); err != nil {
		return nil, err
	}
	refs, err := p.parseFromClauseTail()
	if err != nil {
		return nil, err
	}
	sel.From = refs

	if p.match(token.WHERE) {
		w, err := p.parseWhere()
		if err != nil {
			return nil, err
		}
		sel.Where = w
	}

	if p.match(token.GROUP) {
		gb, err := p.parseGroupBy()
		if err != nil {
			return nil, err
		}
		sel.GroupBy = gb
	}

	if p.match(token.ORDER) {
		items, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		sel.OrderBy = items
	}

	limit, offset, err := p.parseLimitOffset()
	if err != nil {
		return nil, err
	}
	sel.Limit = limit
	sel.Offset = offset

	return sel, nil
}

func (p *Parser) parseWithClause() ([]*ast.CommonTableExpr, error) {
	p.advance() // WITH
	var ctes []*ast.CommonTableExpr
	for {
		pos := p.here()
		name, err := p.expect(token.IDENT, "a common table expression name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.AS, "AS"); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.LPAREN, "("); err != nil {
			return nil, err
		}
		query, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		ctes = append(ctes, &ast.CommonTableExpr{Position: pos, Name: name.Text, Query: query.(*ast.Select)})
		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	return ctes, nil
}

func (p *Parser) parseSelectItemList() ([]ast.SelectItem, error) {
	var items []ast.SelectItem
	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	return items, nil
}

// parseSelectItem parses one column-list entry. Per invariant I: an
// alias is representable only when the expression is a *ast.ColumnRef —
// aliasing any other expression kind is a grammar error.
func (p *Parser) parseSelectItem() (ast.SelectItem, error) {
	pos := p.here()
	expr, err := p.parseExpression()
	if err != nil {
		return ast.SelectItem{}, err
	}

	var alias string
	hasAlias := false
	if p.match(token.AS) {
		p.advance()
		name, err := p.expect(token.IDENT, "an alias")
		if err != nil {
			return ast.SelectItem{}, err
		}
		alias, hasAlias = name.Text, true
	} else if p.match(token.IDENT) {
		name := p.current()
		p.advance()
		alias, hasAlias = name.Text, true
	}

	if hasAlias {
		if _, ok := expr.(*ast.ColumnRef); !ok {
			cur := p.current()
			return ast.SelectItem{}, diagnostic.New(cur.Line, cur.Column, "an alias may only follow a column reference")
		}
	}

	return ast.SelectItem{Position: pos, Expr: expr, Alias: alias}, nil
}
