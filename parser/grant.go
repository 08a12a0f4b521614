package parser

import (
	"github.com/go-sqlfront/sqlfront/ast"
	"github.com/go-sqlfront/sqlfront/diagnostic"
	"github.com/go-sqlfront/sqlfront/token"
)

// parseGrantRevoke parses GRANT priv, ... ON [objectType] name, ... TO
// grantee, ... [WITH GRANT OPTION], and its REVOKE counterpart
// (... FROM grantee, ... [CASCADE]).
func (p *Parser) parseGrantRevoke() (ast.Statement, error) {
	pos := p.here()
	kind := ast.Grant
	if p.match(token.REVOKE) {
		kind = ast.Revoke
	}
	p.advance()

	privs, err := p.parsePrivilegeList()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.ON, "ON"); err != nil {
		return nil, err
	}

	objectType := ""
	if p.matchAny(token.TABLE, token.VIEW, token.INDEX, token.PROCEDURE) {
		objectType = p.current().Tok.String()
		p.advance()
	}
	names, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}

	gr := &ast.GrantRevoke{Position: pos, Kind: kind, Privileges: privs, ObjectType: objectType, ObjectNames: names}

	if kind == ast.Grant {
		if _, err := p.expect(token.TO, "TO"); err != nil {
			return nil, err
		}
	} else {
		if _, err := p.expect(token.FROM, "FROM"); err != nil {
			return nil, err
		}
	}
	grantees, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	gr.Grantees = grantees

	if kind == ast.Grant && p.match(token.WITH) {
		p.advance()
		if _, err := p.expect(token.GRANT, "GRANT"); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.OPTION, "OPTION"); err != nil {
			return nil, err
		}
		gr.WithGrant = true
	}

	if kind == ast.Revoke && p.match(token.CASCADE) {
		p.advance()
		gr.Cascade = true
	}

	return gr, nil
}

func (p *Parser) parsePrivilegeList() ([]string, error) {
	var privs []string
	for {
		cur := p.current()
		if cur.Class != token.Keyword && cur.Class != token.Identifier {
			return nil, diagnostic.Unexpected(cur.Line, cur.Column, "a privilege name", tokenDescription(cur))
		}
		privs = append(privs, cur.Text)
		p.advance()
		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	return privs, nil
}
