package parser

import (
	"github.com/go-sqlfront/sqlfront/ast"
	"github.com/go-sqlfront/sqlfront/diagnostic"
	"github.com/go-sqlfront/sqlfront/token"
)

// parseColumnRef parses a single (possibly qualified) column reference,
// rejecting anything else — used where the grammar requires a bare
// column name rather than a general expression (GROUP BY, PARTITION BY,
// ORDER BY).
func (p *Parser) parseColumnRef() (*ast.ColumnRef, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	col, ok := expr.(*ast.ColumnRef)
	if !ok {
		cur := p.current()
		return nil, diagnostic.Unexpected(cur.Line, cur.Column, "a column name", tokenDescription(cur))
	}
	return col, nil
}

func (p *Parser) parseColumnRefList() ([]*ast.ColumnRef, error) {
	var list []*ast.ColumnRef
	for {
		col, err := p.parseColumnRef()
		if err != nil {
			return nil, err
		}
		list = append(list, col)
		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	return list, nil
}

func (p *Parser) parseWhere() (*ast.Where, error) {
	pos := p.here()
	p.advance() // WHERE
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Where{Position: pos, Condition: cond}, nil
}

func (p *Parser) parseGroupBy() (*ast.GroupBy, error) {
	pos := p.here()
	p.advance() // GROUP
	if _, err := p.expect(token.BY, "BY"); err != nil {
		return nil, err
	}
	cols, err := p.parseColumnRefList()
	if err != nil {
		return nil, err
	}
	gb := &ast.GroupBy{Position: pos, Columns: cols}
	if p.match(token.HAVING) {
		p.advance()
		having, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		gb.Having = having
	}
	return gb, nil
}

func (p *Parser) parseOrderByList() ([]*ast.OrderByItem, error) {
	p.advance() // ORDER
	if _, err := p.expect(token.BY, "BY"); err != nil {
		return nil, err
	}
	var items []*ast.OrderByItem
	for {
		item, err := p.parseOrderByItem()
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

func (p *Parser) parseOrderByItem() (*ast.OrderByItem, error) {
	pos := p.here()
	col, err := p.parseColumnRef()
	if err != nil {
		return nil, err
	}
	item := &ast.OrderByItem{Position: pos, Column: col}
	if p.match(token.ASC) {
		p.advance()
	} else if p.match(token.DESC) {
		item.Descending = true
		p.advance()
	}
	if p.match(token.NULLS) {
		p.advance()
		if p.match(token.FIRST) {
			item.Nulls = ast.NullsFirst
			p.advance()
		} else if p.match(token.LAST) {
			item.Nulls = ast.NullsLast
			p.advance()
		} else {
			cur := p.current()
			return nil, diagnostic.Unexpected(cur.Line, cur.Column, "FIRST or LAST", tokenDescription(cur))
		}
	}
	return item, nil
}

// parseLimitOffset parses a trailing LIMIT [OFFSET] / LIMIT n, m /
// FETCH FIRST n ROWS ONLY pair. It returns (limit, offset), either of
// which may be nil.
func (p *Parser) parseLimitOffset() (ast.Expression, ast.Expression, error) {
	var limit, offset ast.Expression

	if p.match(token.LIMIT) {
		p.advance()
		first, err := p.parseExpression()
		if err != nil {
			return nil, nil, err
		}
		if p.match(token.COMMA) {
			p.advance()
			second, err := p.parseExpression()
			if err != nil {
				return nil, nil, err
			}
			offset, limit = first, second
		} else {
			limit = first
		}
	}

	if p.match(token.OFFSET) {
		p.advance()
		o, err := p.parseExpression()
		if err != nil {
			return nil, nil, err
		}
		offset = o
	}

	if p.match(token.FETCH) {
		p.advance()
		if _, err := p.expect(token.FIRST, "FIRST"); err != nil {
			return nil, nil, err
		}
		n, err := p.parseExpression()
		if err != nil {
			return nil, nil, err
		}
		limit = n
		if _, err := p.expect(token.ROWS, "ROWS"); err != nil {
			return nil, nil, err
		}
		if _, err := p.expect(token.ONLY, "ONLY"); err != nil {
			return nil, nil, err
		}
	}

	return limit, offset, nil
}

func (p *Parser) parseWindowSpec() (*ast.WindowSpec, error) {
	pos := p.here()
	p.advance() // OVER

	if p.match(token.IDENT) {
		name := p.current()
		p.advance()
		return &ast.WindowSpec{Position: pos, Name: name.Text}, nil
	}

	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}
	spec := &ast.WindowSpec{Position: pos}

	if p.match(token.PARTITION) {
		p.advance()
		if _, err := p.expect(token.BY, "BY"); err != nil {
			return nil, err
		}
		cols, err := p.parseColumnRefList()
		if err != nil {
			return nil, err
		}
		spec.PartitionBy = cols
	}

	if p.match(token.ORDER) {
		items, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		spec.OrderBy = items
	}

	if p.matchAny(token.ROWS, token.RANGE, token.GROUPS) {
		frame, err := p.parseFrame()
		if err != nil {
			return nil, err
		}
		spec.Frame = frame
	}

	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	return spec, nil
}

func (p *Parser) parseFrame() (*ast.Frame, error) {
	pos := p.here()
	frame := &ast.Frame{Position: pos}
	switch p.current().Tok {
	case token.ROWS:
		frame.Type = ast.FrameRows
	case token.RANGE:
		frame.Type = ast.FrameRange
	case token.GROUPS:
		frame.Type = ast.FrameGroups
	}
	p.advance()

	if p.match(token.BETWEEN) {
		p.advance()
		start, err := p.parseBound()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.AND, "AND"); err != nil {
			return nil, err
		}
		end, err := p.parseBound()
		if err != nil {
			return nil, err
		}
		frame.Start, frame.End = start, end
	} else {
		start, err := p.parseBound()
		if err != nil {
			return nil, err
		}
		frame.Start = start
	}

	if p.match(token.EXCLUDE) {
		p.advance()
		switch {
		case p.match(token.CURRENT):
			p.advance()
			if _, err := p.expect(token.ROW, "ROW"); err != nil {
				return nil, err
			}
			frame.Exclude = ast.ExcludeCurrentRow
		case p.match(token.GROUP):
			p.advance()
			frame.Exclude = ast.ExcludeGroup
		case p.match(token.TIES):
			p.advance()
			frame.Exclude = ast.ExcludeTies
		case p.match(token.NO):
			p.advance()
			if _, err := p.expect(token.OTHERS, "OTHERS"); err != nil {
				return nil, err
			}
			frame.Exclude = ast.ExcludeNoOthers
		default:
			cur := p.current()
			return nil, diagnostic.Unexpected(cur.Line, cur.Column, "CURRENT ROW, GROUP, TIES, or NO OTHERS", tokenDescription(cur))
		}
	}

	return frame, nil
}

func (p *Parser) parseBound() (*ast.Bound, error) {
	pos := p.here()
	if p.match(token.CURRENT) {
		p.advance()
		if _, err := p.expect(token.ROW, "ROW"); err != nil {
			return nil, err
		}
		return &ast.Bound{Position: pos, Type: ast.BoundCurrentRow}, nil
	}
	if p.match(token.UNBOUNDED) {
		p.advance()
		if p.match(token.PRECEDING) {
			p.advance()
			return &ast.Bound{Position: pos, Type: ast.BoundUnboundedPreceding}, nil
		}
		if p.match(token.FOLLOWING) {
			p.advance()
			return &ast.Bound{Position: pos, Type: ast.BoundUnboundedFollowing}, nil
		}
		cur := p.current()
		return nil, diagnostic.Unexpected(cur.Line, cur.Column, "PRECEDING or FOLLOWING", tokenDescription(cur))
	}
	offset, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if p.match(token.PRECEDING) {
		p.advance()
		return &ast.Bound{Position: pos, Type: ast.BoundPreceding, Offset: offset}, nil
	}
	if p.match(token.FOLLOWING) {
		p.advance()
		return &ast.Bound{Position: pos, Type: ast.BoundFollowing, Offset: offset}, nil
	}
	cur := p.current()
	return nil, diagnostic.Unexpected(cur.Line, cur.Column, "PRECEDING or FOLLOWING", tokenDescription(cur))
}
