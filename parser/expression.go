package parser

import (
	"strings"

	"github.com/go-sqlfront/sqlfront/ast"
	"github.com/go-sqlfront/sqlfront/diagnostic"
	"github.com/go-sqlfront/sqlfront/token"
)

// The expression grammar is a precedence-climbing ladder, from loosest to
// tightest: OR, AND, NOT, comparison (=, <>, <, >, <=, >=, LIKE, IN,
// BETWEEN, IS [NOT] NULL), additive (+, -), multiplicative (*, /, %),
// unary, primary. Each level's parse function calls straight through to
// the next-tighter level and only handles its own operators.

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.match(token.OR) {
		pos := p.here()
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Position: pos, Op: ast.OpOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expression, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.match(token.AND) {
		pos := p.here()
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Position: pos, Op: ast.OpAnd, Left: left, Right: right}
	}
	return left, nil
}

// parseNot handles the prefix NOT operator. NOT LIKE / NOT IN / NOT
// BETWEEN are recognized at the comparison level instead, via the Not
// flag on ast.BinaryOp, so that `a NOT LIKE b` parses as one comparison
// rather than NOT applied to `a LIKE b`.
func (p *Parser) parseNot() (ast.Expression, error) {
	if p.match(token.NOT) {
		pos := p.here()
		p.advance()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Position: pos, Op: ast.OpNot, Operand: operand}, nil
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	negate := false
	if p.match(token.NOT) && p.peekIsComparisonAfterNot() {
		negate = true
		p.advance()
	}

	switch {
	case p.match(token.EQ):
		return p.parseSimpleComparison(left, ast.OpEq, negate)
	case p.match(token.NEQ):
		return p.parseSimpleComparison(left, ast.OpNeq, negate)
	case p.match(token.LT):
		return p.parseSimpleComparison(left, ast.OpLt, negate)
	case p.match(token.GT):
		return p.parseSimpleComparison(left, ast.OpGt, negate)
	case p.match(token.LTE):
		return p.parseSimpleComparison(left, ast.OpLte, negate)
	case p.match(token.GTE):
		return p.parseSimpleComparison(left, ast.OpGte, negate)
	case p.match(token.LIKE):
		return p.parseSimpleComparison(left, ast.OpLike, negate)
	case p.match(token.IN):
		return p.parseInExpression(left, negate)
	case p.match(token.BETWEEN):
		return p.parseBetweenExpression(left, negate)
	case p.match(token.IS):
		return p.parseIsExpression(left)
	}

	if negate {
		cur := p.current()
		return nil, diagnostic.Unexpected(cur.Line, cur.Column, "LIKE, IN, or BETWEEN after NOT", tokenDescription(cur))
	}
	return left, nil
}

// peekIsComparisonAfterNot reports whether the current NOT introduces
// NOT LIKE / NOT IN / NOT BETWEEN, as opposed to a standalone prefix NOT
// that belongs to a higher grammar level (and so must not be consumed
// here).
func (p *Parser) peekIsComparisonAfterNot() bool {
	return p.peek(1).Tok == token.LIKE || p.peek(1).Tok == token.IN || p.peek(1).Tok == token.BETWEEN
}

func (p *Parser) parseSimpleComparison(left ast.Expression, op ast.BinaryOperator, negate bool) (ast.Expression, error) {
	pos := p.here()
	p.advance()
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Position: pos, Op: op, Left: left, Right: right, Not: negate}, nil
}

func (p *Parser) parseInExpression(left ast.Expression, negate bool) (ast.Expression, error) {
	pos := p.here()
	p.advance()
	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}
	var items []ast.Expression
	if !p.match(token.RPAREN) {
		if p.match(token.SELECT) || p.match(token.WITH) {
			sub, err := p.parseSelect()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RPAREN, ")"); err != nil {
				return nil, err
			}
			return &ast.BinaryOp{Position: pos, Op: ast.OpIn, Left: left, Right: &ast.Subquery{Position: pos, Query: sub.(*ast.Select)}, Not: negate}, nil
		}
		for {
			item, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			if !p.match(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Position: pos, Op: ast.OpIn, Left: left, Right: &ast.ExprList{Position: pos, Items: items}, Not: negate}, nil
}

func (p *Parser) parseBetweenExpression(left ast.Expression, negate bool) (ast.Expression, error) {
	pos := p.here()
	p.advance()
	low, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.AND, "AND"); err != nil {
		return nil, err
	}
	high, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Position: pos, Op: ast.OpBetween, Left: left, Right: low, High: high, Not: negate}, nil
}

func (p *Parser) parseIsExpression(left ast.Expression) (ast.Expression, error) {
	pos := p.here()
	p.advance()
	notNull := false
	if p.match(token.NOT) {
		notNull = true
		p.advance()
	}
	if _, err := p.expect(token.NULL, "NULL"); err != nil {
		return nil, err
	}
	op := ast.OpIsNull
	if notNull {
		op = ast.OpIsNotNull
	}
	return &ast.UnaryOp{Position: pos, Op: op, Operand: left}, nil
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.match(token.PLUS) || p.match(token.MINUS) {
		pos := p.here()
		op := ast.OpAdd
		if p.current().Tok == token.MINUS {
			op = ast.OpSub
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Position: pos, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.match(token.ASTERISK) || p.match(token.SLASH) || p.match(token.PERCENT) {
		pos := p.here()
		var op ast.BinaryOperator
		switch p.current().Tok {
		case token.ASTERISK:
			op = ast.OpMul
		case token.SLASH:
			op = ast.OpDiv
		default:
			op = ast.OpMod
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Position: pos, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.match(token.MINUS) {
		pos := p.here()
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Position: pos, Op: ast.OpNeg, Operand: operand}, nil
	}
	if p.match(token.EXISTS) {
		pos := p.here()
		p.advance()
		if _, err := p.expect(token.LPAREN, "("); err != nil {
			return nil, err
		}
		sub, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Position: pos, Op: ast.OpExists, Operand: &ast.Subquery{Position: pos, Query: sub.(*ast.Select)}}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	cur := p.current()
	pos := p.here()

	switch {
	case cur.Tok == token.LPAREN:
		p.advance()
		if p.match(token.SELECT) || p.match(token.WITH) {
			sub, err := p.parseSelect()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RPAREN, ")"); err != nil {
				return nil, err
			}
			return &ast.Subquery{Position: pos, Query: sub.(*ast.Select)}, nil
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.match(token.COMMA) {
			items := []ast.Expression{inner}
			for p.match(token.COMMA) {
				p.advance()
				item, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := p.expect(token.RPAREN, ")"); err != nil {
				return nil, err
			}
			return &ast.ExprList{Position: pos, Items: items}, nil
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		return inner, nil

	case cur.Tok == token.NUMBER:
		p.advance()
		kind := ast.LiteralInteger
		if strings.Contains(cur.Text, ".") {
			kind = ast.LiteralFloating
		}
		return &ast.Literal{Position: pos, Kind: kind, Text: cur.Text}, nil

	case cur.Tok == token.STRING:
		p.advance()
		return &ast.Literal{Position: pos, Kind: ast.LiteralString, Text: cur.Text}, nil

	case cur.Tok == token.TRUE || cur.Tok == token.FALSE:
		p.advance()
		return &ast.Literal{Position: pos, Kind: ast.LiteralBoolean, Text: cur.Text}, nil

	case cur.Tok == token.NULL:
		p.advance()
		return &ast.Literal{Position: pos, Kind: ast.LiteralNull, Text: cur.Text}, nil

	case cur.Tok == token.CASE:
		return p.parseCaseExpression()

	case cur.Tok == token.ASTERISK:
		p.advance()
		return &ast.ColumnRef{Position: pos, Column: "*"}, nil

	case cur.Tok == token.IDENT:
		return p.parseIdentifierExpression()

	default:
		return nil, diagnostic.Unexpected(cur.Line, cur.Column, "an expression", tokenDescription(cur))
	}
}

// parseIdentifierExpression disambiguates a bare identifier's role
// (column reference, qualified column reference, or function call) by
// looking one or two lexemes ahead.
func (p *Parser) parseIdentifierExpression() (ast.Expression, error) {
	pos := p.here()
	name, err := p.expect(token.IDENT, "an identifier")
	if err != nil {
		return nil, err
	}

	if p.match(token.DOT) {
		p.advance()
		if p.match(token.ASTERISK) {
			p.advance()
			return &ast.ColumnRef{Position: pos, Table: name.Text, Column: "*"}, nil
		}
		col, err := p.expect(token.IDENT, "a column name")
		if err != nil {
			return nil, err
		}
		return &ast.ColumnRef{Position: pos, Table: name.Text, Column: col.Text}, nil
	}

	if p.match(token.LPAREN) {
		return p.parseFunctionCall(name.Text, pos)
	}

	return &ast.ColumnRef{Position: pos, Column: name.Text}, nil
}

func (p *Parser) parseFunctionCall(name string, pos Position) (ast.Expression, error) {
	p.advance() // (
	call := &ast.FunctionCall{Position: pos, Name: name}

	if p.match(token.ASTERISK) {
		if !strings.EqualFold(name, "COUNT") {
			cur := p.current()
			return nil, diagnostic.New(cur.Line, cur.Column, "the bare * argument is only valid for COUNT(*)")
		}
		p.advance()
		call.Star = true
	} else if !p.match(token.RPAREN) {
		if p.match(token.DISTINCT) {
			call.Distinct = true
			p.advance()
		}
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			call.Arguments = append(call.Arguments, arg)
			if !p.match(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}

	if p.match(token.OVER) {
		over, err := p.parseWindowSpec()
		if err != nil {
			return nil, err
		}
		call.Over = over
	}

	return call, nil
}

func (p *Parser) parseCaseExpression() (ast.Expression, error) {
	pos := p.here()
	p.advance() // CASE

	expr := &ast.CaseExpr{Position: pos}
	if !p.match(token.WHEN) {
		scrutinee, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		expr.Scrutinee = scrutinee
	}

	for p.match(token.WHEN) {
		wtPos := p.here()
		p.advance()
		when, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.THEN, "THEN"); err != nil {
			return nil, err
		}
		then, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		expr.WhenThens = append(expr.WhenThens, &ast.WhenThen{Position: wtPos, When: when, Then: then})
	}
	if len(expr.WhenThens) == 0 {
		cur := p.current()
		return nil, diagnostic.Unexpected(cur.Line, cur.Column, "WHEN", tokenDescription(cur))
	}

	if p.match(token.ELSE) {
		p.advance()
		elseExpr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		expr.Else = elseExpr
	}

	if _, err := p.expect(token.END, "END"); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseExpressionList parses a comma-separated list of expressions with
// no enclosing parentheses. GROUP BY and PARTITION BY do not use it; they
// take column references only, via parseColumnRefList.
func (p *Parser) parseExpressionList() ([]ast.Expression, error) {
	var list []ast.Expression
	for {
		item, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		list = append(list, item)
		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	return list, nil
}
