package parser

import (
	"github.com/go-sqlfront/sqlfront/ast"
	"github.com/go-sqlfront/sqlfront/diagnostic"
	"github.com/go-sqlfront/sqlfront/token"
)

// parseInsert parses INSERT INTO table [(cols)] VALUES (...), ... and the
// INSERT INTO table [(cols)] SELECT ... forms, plus an optional trailing
// MySQL-flavored ON DUPLICATE KEY UPDATE clause.
func (p *Parser) parseInsert() (ast.Statement, error) {
	pos := p.here()
	p.advance() // INSERT
	if _, err := p.expect(token.INTO, "INTO"); err != nil {
		return nil, err
	}
	table, err := p.expect(token.IDENT, "a table name")
	if err != nil {
		return nil, err
	}
	ins := &ast.Insert{Position: pos, TableName: table.Text}

	if p.match(token.LPAREN) {
		p.advance()
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		ins.Columns = cols
	}

	switch {
	case p.match(token.VALUES):
		p.advance()
		rows, err := p.parseValuesRows()
		if err != nil {
			return nil, err
		}
		ins.Values = rows
	case p.match(token.SELECT) || p.match(token.WITH):
		sel, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		ins.Select = sel.(*ast.Select)
	default:
		cur := p.current()
		return nil, diagnostic.Unexpected(cur.Line, cur.Column, "VALUES or SELECT", tokenDescription(cur))
	}

	if p.match(token.ON) {
		p.advance()
		if _, err := p.expect(token.DUPLICATE, "DUPLICATE"); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.KEY, "KEY"); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.UPDATE, "UPDATE"); err != nil {
			return nil, err
		}
		assigns, err := p.parseAssignmentList()
		if err != nil {
			return nil, err
		}
		ins.OnDuplicate = assigns
	}

	return ins, nil
}

func (p *Parser) parseValuesRows() ([][]ast.Expression, error) {
	var rows [][]ast.Expression
	for {
		row, err := p.parseValuesRow()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	return rows, nil
}

func (p *Parser) parseValuesRow() ([]ast.Expression, error) {
	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}
	var row []ast.Expression
	for {
		v, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		row = append(row, v)
		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	return row, nil
}

func (p *Parser) parseAssignmentList() ([]*ast.Assignment, error) {
	var assigns []*ast.Assignment
	for {
		pos := p.here()
		name, err := p.expect(token.IDENT, "a column name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.EQ, "="); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, &ast.Assignment{Position: pos, Column: name.Text, Value: value})
		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	return assigns, nil
}
