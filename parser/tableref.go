package parser

import (
	"github.com/go-sqlfront/sqlfront/ast"
	"github.com/go-sqlfront/sqlfront/diagnostic"
	"github.com/go-sqlfront/sqlfront/token"
)

// parseFromClauseTail parses the comma-separated, JOIN-chained table
// reference list following FROM (the FROM keyword itself has already been
// consumed by the caller). Each comma-separated entry folds any trailing
// JOINs into a single left-associative TableRef tree before the next comma
// is considered. Per invariant I1, this list always has at least one entry.
func (p *Parser) parseFromClauseTail() ([]ast.TableRef, error) {
	var refs []ast.TableRef
	for {
		ref, err := p.parseJoinChain()
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	return refs, nil
}

func (p *Parser) parseJoinChain() (ast.TableRef, error) {
	left, err := p.parseTableRefPrimary()
	if err != nil {
		return nil, err
	}
	for {
		join, ok, err := p.tryParseJoin(left)
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		left = &ast.JoinRef{Position: join.Position, Join: join}
	}
}

func (p *Parser) tryParseJoin(left ast.TableRef) (*ast.Join, bool, error) {
	pos := p.here()
	natural := false
	if p.match(token.NATURAL) {
		natural = true
		p.advance()
	}

	joinType := ast.JoinInner
	sawQualifier := natural
	switch p.current().Tok {
	case token.INNER:
		p.advance()
		sawQualifier = true
	case token.LEFT:
		joinType = ast.JoinLeft
		p.advance()
		if p.match(token.OUTER) {
			p.advance()
		}
		sawQualifier = true
	case token.RIGHT:
		joinType = ast.JoinRight
		p.advance()
		if p.match(token.OUTER) {
			p.advance()
		}
		sawQualifier = true
	case token.FULL:
		joinType = ast.JoinFull
		p.advance()
		if p.match(token.OUTER) {
			p.advance()
		}
		sawQualifier = true
	case token.CROSS:
		joinType = ast.JoinCross
		p.advance()
		sawQualifier = true
	}

	if !p.match(token.JOIN) {
		if sawQualifier {
			cur := p.current()
			return nil, false, diagnostic.Unexpected(cur.Line, cur.Column, "JOIN", tokenDescription(cur))
		}
		return nil, false, nil
	}
	p.advance() // JOIN

	right, err := p.parseTableRefPrimary()
	if err != nil {
		return nil, false, err
	}

	join := &ast.Join{Position: pos, Type: joinType, Natural: natural, Left: left, Right: right}

	if natural || joinType == ast.JoinCross {
		return join, true, nil
	}

	if p.match(token.ON) {
		p.advance()
		cond, err := p.parseExpression()
		if err != nil {
			return nil, false, err
		}
		join.On = cond
	} else if p.match(token.USING) {
		p.advance()
		if _, err := p.expect(token.LPAREN, "("); err != nil {
			return nil, false, err
		}
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, false, err
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, false, err
		}
		join.Using = cols
	} else {
		cur := p.current()
		return nil, false, diagnostic.Unexpected(cur.Line, cur.Column, "ON or USING", tokenDescription(cur))
	}

	return join, true, nil
}

func (p *Parser) parseTableRefPrimary() (ast.TableRef, error) {
	pos := p.here()

	if p.match(token.LPAREN) {
		p.advance()
		query, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		alias, err := p.parseOptionalAlias()
		if err != nil {
			return nil, err
		}
		return &ast.DerivedTableRef{Position: pos, Query: query.(*ast.Select), Alias: alias}, nil
	}

	name, err := p.expect(token.IDENT, "a table name")
	if err != nil {
		return nil, err
	}
	ref := &ast.BaseTableRef{Position: pos, Table: name.Text}
	if p.match(token.DOT) {
		p.advance()
		table, err := p.expect(token.IDENT, "a table name")
		if err != nil {
			return nil, err
		}
		ref.Schema = name.Text
		ref.Table = table.Text
	}
	alias, err := p.parseOptionalAlias()
	if err != nil {
		return nil, err
	}
	ref.Alias = alias
	return ref, nil
}

// parseOptionalAlias parses an optional `[AS] alias` suffix. Only the
// current lexeme is inspected: a bare lexeme is consumed as an alias only
// when the lexer classified it as IDENT, so a reserved keyword (which may
// begin the next clause) is never taken as an alias, with or without AS.
func (p *Parser) parseOptionalAlias() (string, error) {
	if p.match(token.AS) {
		p.advance()
		name, err := p.expect(token.IDENT, "an alias")
		if err != nil {
			return "", err
		}
		return name.Text, nil
	}
	if p.match(token.IDENT) {
		name := p.current()
		p.advance()
		return name.Text, nil
	}
	return "", nil
}

func (p *Parser) parseIdentList() ([]string, error) {
	var names []string
	for {
		name, err := p.expect(token.IDENT, "an identifier")
		if err != nil {
			return nil, err
		}
		names = append(names, name.Text)
		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	return names, nil
}
