package parser

import (
	"github.com/go-sqlfront/sqlfront/ast"
	"github.com/go-sqlfront/sqlfront/diagnostic"
	"github.com/go-sqlfront/sqlfront/token"
)

// parseMerge parses MERGE INTO target USING source ON condition,
// followed by one or more WHEN [NOT] MATCHED [AND cond] THEN action
// clauses.
func (p *Parser) parseMerge() (ast.Statement, error) {
	pos := p.here()
	p.advance() // MERGE
	if _, err := p.expect(token.INTO, "INTO"); err != nil {
		return nil, err
	}
	target, err := p.parseTableRefPrimary()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.USING, "USING"); err != nil {
		return nil, err
	}
	source, err := p.parseTableRefPrimary()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ON, "ON"); err != nil {
		return nil, err
	}
	on, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	merge := &ast.Merge{Position: pos, Target: target, Source: source, On: on}

	for p.match(token.WHEN) {
		action, err := p.parseMergeAction()
		if err != nil {
			return nil, err
		}
		merge.Actions = append(merge.Actions, action)
	}
	if len(merge.Actions) == 0 {
		cur := p.current()
		return nil, diagnostic.Unexpected(cur.Line, cur.Column, "WHEN", tokenDescription(cur))
	}
	return merge, nil
}

func (p *Parser) parseMergeAction() (*ast.MergeAction, error) {
	pos := p.here()
	p.advance() // WHEN

	matched := true
	if p.match(token.NOT) {
		matched = false
		p.advance()
	}
	if _, err := p.expect(token.MATCHED, "MATCHED"); err != nil {
		return nil, err
	}

	action := &ast.MergeAction{Position: pos, Matched: matched}

	if p.match(token.BY) {
		p.advance()
		switch {
		case p.match(token.TARGET):
			action.ByTarget = true
			p.advance()
		case p.match(token.SOURCE):
			action.BySource = true
			p.advance()
		default:
			cur := p.current()
			return nil, diagnostic.Unexpected(cur.Line, cur.Column, "TARGET or SOURCE", tokenDescription(cur))
		}
	}

	if p.match(token.AND) {
		p.advance()
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		action.Condition = cond
	}

	if _, err := p.expect(token.THEN, "THEN"); err != nil {
		return nil, err
	}

	switch {
	case p.match(token.UPDATE):
		p.advance()
		if _, err := p.expect(token.SET, "SET"); err != nil {
			return nil, err
		}
		assigns, err := p.parseAssignmentList()
		if err != nil {
			return nil, err
		}
		action.UpdateSet = assigns
	case p.match(token.DELETE):
		p.advance()
		action.Delete = true
	case p.match(token.INSERT):
		p.advance()
		if p.match(token.LPAREN) {
			p.advance()
			cols, err := p.parseIdentList()
			if err != nil {
				return nil, err
			}
			action.InsertCols = cols
			if _, err := p.expect(token.RPAREN, ")"); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(token.VALUES, "VALUES"); err != nil {
			return nil, err
		}
		row, err := p.parseValuesRow()
		if err != nil {
			return nil, err
		}
		action.InsertVals = row
	default:
		cur := p.current()
		return nil, diagnostic.Unexpected(cur.Line, cur.Column, "UPDATE, DELETE, or INSERT", tokenDescription(cur))
	}

	return action, nil
}
