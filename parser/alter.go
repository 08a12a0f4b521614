package parser

import (
	"github.com/go-sqlfront/sqlfront/ast"
	"github.com/go-sqlfront/sqlfront/diagnostic"
	"github.com/go-sqlfront/sqlfront/token"
)

// parseAlter parses ALTER TABLE [IF EXISTS] [ONLY] name [*] action (, action)*.
func (p *Parser) parseAlter() (ast.Statement, error) {
	pos := p.here()
	p.advance() // ALTER
	if _, err := p.expect(token.TABLE, "TABLE"); err != nil {
		return nil, err
	}

	ifExists := false
	if p.match(token.IF) {
		p.advance()
		if _, err := p.expect(token.EXISTS, "EXISTS"); err != nil {
			return nil, err
		}
		ifExists = true
	}

	only := false
	if p.match(token.ONLY) {
		only = true
		p.advance()
	}

	table, err := p.expect(token.IDENT, "a table name")
	if err != nil {
		return nil, err
	}

	star := false
	if p.match(token.ASTERISK) {
		star = true
		p.advance()
	}

	alter := &ast.Alter{Position: pos, IfExists: ifExists, Only: only, Table: table.Text, Star: star}

	for {
		action, err := p.parseAlterAction()
		if err != nil {
			return nil, err
		}
		alter.Actions = append(alter.Actions, action)
		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	return alter, nil
}

func (p *Parser) parseAlterAction() (*ast.AlterAction, error) {
	pos := p.here()
	switch {
	case p.match(token.ADD):
		p.advance()
		if p.matchAny(token.CONSTRAINT, token.PRIMARY, token.UNIQUE, token.FOREIGN, token.CHECK) {
			c, err := p.parseTableConstraint()
			if err != nil {
				return nil, err
			}
			return &ast.AlterAction{Position: pos, Kind: ast.AlterAddConstraint, Constraint: c}, nil
		}
		if p.match(token.COLUMN) {
			p.advance()
		}
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		return &ast.AlterAction{Position: pos, Kind: ast.AlterAddColumn, Column: col}, nil

	case p.match(token.DROP):
		p.advance()
		if p.match(token.CONSTRAINT) {
			p.advance()
			name, err := p.expect(token.IDENT, "a constraint name")
			if err != nil {
				return nil, err
			}
			return &ast.AlterAction{Position: pos, Kind: ast.AlterDropConstraint, ConstraintName: name.Text}, nil
		}
		if p.match(token.COLUMN) {
			p.advance()
		}
		name, err := p.expect(token.IDENT, "a column name")
		if err != nil {
			return nil, err
		}
		return &ast.AlterAction{Position: pos, Kind: ast.AlterDropColumn, ColumnName: name.Text}, nil

	case p.match(token.MODIFY):
		p.advance()
		if p.match(token.COLUMN) {
			p.advance()
		}
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		return &ast.AlterAction{Position: pos, Kind: ast.AlterModifyColumn, Column: col}, nil

	case p.match(token.RENAME):
		p.advance()
		if p.match(token.COLUMN) {
			p.advance()
			oldName, err := p.expect(token.IDENT, "a column name")
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.TO, "TO"); err != nil {
				return nil, err
			}
			newName, err := p.expect(token.IDENT, "a column name")
			if err != nil {
				return nil, err
			}
			return &ast.AlterAction{Position: pos, Kind: ast.AlterRenameColumn, ColumnName: oldName.Text, NewName: newName.Text}, nil
		}
		if p.match(token.TO) {
			p.advance()
		}
		newName, err := p.expect(token.IDENT, "a table name")
		if err != nil {
			return nil, err
		}
		return &ast.AlterAction{Position: pos, Kind: ast.AlterRenameTable, NewName: newName.Text}, nil

	default:
		cur := p.current()
		return nil, diagnostic.Unexpected(cur.Line, cur.Column, "ADD, DROP, MODIFY, or RENAME", tokenDescription(cur))
	}
}
