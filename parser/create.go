package parser

import (
	"strconv"
	"strings"

	"github.com/go-sqlfront/sqlfront/ast"
	"github.com/go-sqlfront/sqlfront/diagnostic"
	"github.com/go-sqlfront/sqlfront/token"
)

// parseCreate dispatches on the object kind following CREATE: TABLE,
// [UNIQUE] INDEX, VIEW, TRIGGER, or PROCEDURE.
func (p *Parser) parseCreate() (ast.Statement, error) {
	pos := p.here()
	p.advance() // CREATE

	unique := false
	if p.match(token.UNIQUE) {
		unique = true
		p.advance()
	}

	switch {
	case p.match(token.TABLE):
		p.advance()
		def, err := p.parseCreateTableDef()
		if err != nil {
			return nil, err
		}
		return &ast.Create{Position: pos, Kind: ast.CreateTableKind, Table: def}, nil
	case p.match(token.INDEX):
		p.advance()
		def, err := p.parseCreateIndexDef(unique)
		if err != nil {
			return nil, err
		}
		return &ast.Create{Position: pos, Kind: ast.CreateIndexKind, Index: def}, nil
	case p.match(token.VIEW):
		p.advance()
		def, err := p.parseCreateViewDef()
		if err != nil {
			return nil, err
		}
		return &ast.Create{Position: pos, Kind: ast.CreateViewKind, View: def}, nil
	case p.match(token.TRIGGER):
		p.advance()
		def, err := p.parseCreateTrigger()
		if err != nil {
			return nil, err
		}
		return &ast.Create{Position: pos, Kind: ast.CreateTriggerKind, Trigger: def}, nil
	case p.match(token.PROCEDURE):
		p.advance()
		def, err := p.parseCreateProcedure()
		if err != nil {
			return nil, err
		}
		return &ast.Create{Position: pos, Kind: ast.CreateProcedureKind, Procedure: def}, nil
	default:
		cur := p.current()
		return nil, diagnostic.Unexpected(cur.Line, cur.Column, "TABLE, INDEX, VIEW, TRIGGER, or PROCEDURE", tokenDescription(cur))
	}
}

func (p *Parser) parseIfNotExists() (bool, error) {
	if !p.match(token.IF) {
		return false, nil
	}
	p.advance()
	if _, err := p.expect(token.NOT, "NOT"); err != nil {
		return false, err
	}
	if _, err := p.expect(token.EXISTS, "EXISTS"); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Parser) parseCreateTableDef() (*ast.CreateTableDef, error) {
	pos := p.here()
	ifNotExists, err := p.parseIfNotExists()
	if err != nil {
		return nil, err
	}
	table, err := p.expect(token.IDENT, "a table name")
	if err != nil {
		return nil, err
	}
	def := &ast.CreateTableDef{Position: pos, IfNotExists: ifNotExists, Table: table.Text}

	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}
	for {
		if p.matchAny(token.CONSTRAINT, token.PRIMARY, token.UNIQUE, token.FOREIGN, token.CHECK) {
			c, err := p.parseTableConstraint()
			if err != nil {
				return nil, err
			}
			def.Constraints = append(def.Constraints, c)
		} else {
			col, err := p.parseColumnDef()
			if err != nil {
				return nil, err
			}
			def.Columns = append(def.Columns, col)
		}
		if !p.match(token.COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}

	opts, err := p.parseTableOptions()
	if err != nil {
		return nil, err
	}
	def.Options = opts

	return def, nil
}

func (p *Parser) parseDataType() (*ast.DataType, error) {
	pos := p.here()
	name, err := p.expect(token.IDENT, "a type name")
	if err != nil {
		// Some type names collide with reserved words (e.g. CHARACTER);
		// accept any keyword-classified lexeme as a type name too.
		cur := p.current()
		if cur.Class == token.Keyword {
			p.advance()
			name.Text = cur.Text
		} else {
			return nil, err
		}
	}
	dt := &ast.DataType{Position: pos, Name: name.Text}
	if p.match(token.LPAREN) {
		p.advance()
		for {
			n, err := p.expect(token.NUMBER, "a number")
			if err != nil {
				return nil, err
			}
			v, _ := strconv.Atoi(n.Text)
			dt.Args = append(dt.Args, v)
			if !p.match(token.COMMA) {
				break
			}
			p.advance()
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

func (p *Parser) parseColumnDef() (*ast.ColumnDef, error) {
	pos := p.here()
	name, err := p.expect(token.IDENT, "a column name")
	if err != nil {
		return nil, err
	}
	dt, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	col := &ast.ColumnDef{Position: pos, Name: name.Text, Type: dt}

	for {
		switch {
		case p.match(token.NOT):
			p.advance()
			if _, err := p.expect(token.NULL, "NULL"); err != nil {
				return nil, err
			}
			col.NotNull = true
		case p.match(token.DEFAULT):
			p.advance()
			v, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			col.Default = v
		case p.match(token.PRIMARY):
			p.advance()
			if _, err := p.expect(token.KEY, "KEY"); err != nil {
				return nil, err
			}
			col.PrimaryKey = true
		case p.match(token.UNIQUE):
			p.advance()
			col.Unique = true
		case p.match(token.AUTO_INCREMENT):
			p.advance()
			col.AutoIncrement = true
		case p.match(token.REFERENCES):
			ref, err := p.parseForeignKeyReference()
			if err != nil {
				return nil, err
			}
			col.Reference = ref
		default:
			return col, nil
		}
	}
}

func (p *Parser) parseForeignKeyReference() (*ast.ForeignKeyReference, error) {
	pos := p.here()
	p.advance() // REFERENCES
	table, err := p.expect(token.IDENT, "a table name")
	if err != nil {
		return nil, err
	}
	ref := &ast.ForeignKeyReference{Position: pos, Table: table.Text}
	if p.match(token.LPAREN) {
		p.advance()
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		ref.Columns = cols
	}
	for {
		if p.match(token.ON) {
			p.advance()
			isDelete := false
			if p.match(token.DELETE) {
				isDelete = true
				p.advance()
			} else if _, err := p.expect(token.UPDATE, "DELETE or UPDATE"); err != nil {
				return nil, err
			}
			action, err := p.parseReferentialAction()
			if err != nil {
				return nil, err
			}
			if isDelete {
				ref.OnDelete = action
			} else {
				ref.OnUpdate = action
			}
			continue
		}
		break
	}
	return ref, nil
}

func (p *Parser) parseReferentialAction() (string, error) {
	switch {
	case p.match(token.CASCADE):
		p.advance()
		return "CASCADE", nil
	case p.match(token.RESTRICT):
		p.advance()
		return "RESTRICT", nil
	case p.match(token.SET):
		p.advance()
		if _, err := p.expect(token.NULL, "NULL"); err != nil {
			return "", err
		}
		return "SET NULL", nil
	case p.match(token.NO):
		p.advance()
		if _, err := p.expect(token.ACTION, "ACTION"); err != nil {
			return "", err
		}
		return "NO ACTION", nil
	default:
		cur := p.current()
		return "", diagnostic.Unexpected(cur.Line, cur.Column, "CASCADE, RESTRICT, SET NULL, or NO ACTION", tokenDescription(cur))
	}
}

func (p *Parser) parseTableConstraint() (*ast.TableConstraint, error) {
	pos := p.here()
	var name string
	if p.match(token.CONSTRAINT) {
		p.advance()
		n, err := p.expect(token.IDENT, "a constraint name")
		if err != nil {
			return nil, err
		}
		name = n.Text
	}

	c := &ast.TableConstraint{Position: pos, Name: name}
	switch {
	case p.match(token.PRIMARY):
		p.advance()
		if _, err := p.expect(token.KEY, "KEY"); err != nil {
			return nil, err
		}
		c.Kind = ast.ConstraintPrimaryKey
		if _, err := p.expect(token.LPAREN, "("); err != nil {
			return nil, err
		}
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		c.Columns = cols
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
	case p.match(token.UNIQUE):
		p.advance()
		c.Kind = ast.ConstraintUnique
		if _, err := p.expect(token.LPAREN, "("); err != nil {
			return nil, err
		}
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		c.Columns = cols
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
	case p.match(token.FOREIGN):
		p.advance()
		if _, err := p.expect(token.KEY, "KEY"); err != nil {
			return nil, err
		}
		c.Kind = ast.ConstraintForeignKey
		if _, err := p.expect(token.LPAREN, "("); err != nil {
			return nil, err
		}
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		c.Columns = cols
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		ref, err := p.parseForeignKeyReference()
		if err != nil {
			return nil, err
		}
		c.Reference = ref
	case p.match(token.CHECK):
		p.advance()
		if _, err := p.expect(token.LPAREN, "("); err != nil {
			return nil, err
		}
		check, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		c.Check = check
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		c.Kind = ast.ConstraintCheck
	default:
		cur := p.current()
		return nil, diagnostic.Unexpected(cur.Line, cur.Column, "PRIMARY KEY, UNIQUE, FOREIGN KEY, or CHECK", tokenDescription(cur))
	}
	return c, nil
}

// parseTableOptions parses the trailing MySQL-flavored `key = value`
// table options following a CREATE TABLE column list, in any order.
func (p *Parser) parseTableOptions() (ast.TableOptions, error) {
	var opts ast.TableOptions
	for {
		switch {
		case p.match(token.ENGINE):
			p.advance()
			p.consumeEq()
			v, err := p.expect(token.IDENT, "an engine name")
			if err != nil {
				return opts, err
			}
			opts.Engine = v.Text
		case p.match(token.AUTO_INCREMENT):
			p.advance()
			p.consumeEq()
			v, err := p.expect(token.NUMBER, "a number")
			if err != nil {
				return opts, err
			}
			opts.AutoIncrement, _ = strconv.Atoi(v.Text)
		case p.match(token.CHARSET):
			p.advance()
			p.consumeEq()
			v, err := p.expect(token.IDENT, "a charset name")
			if err != nil {
				return opts, err
			}
			opts.Charset = v.Text
		case p.match(token.CHARACTER):
			p.advance()
			if _, err := p.expect(token.SET, "SET"); err != nil {
				return opts, err
			}
			p.consumeEq()
			v, err := p.expect(token.IDENT, "a charset name")
			if err != nil {
				return opts, err
			}
			opts.Charset = v.Text
		case p.match(token.COLLATE):
			p.advance()
			p.consumeEq()
			v, err := p.expect(token.IDENT, "a collation name")
			if err != nil {
				return opts, err
			}
			opts.Collate = v.Text
		case p.match(token.COMMENT):
			p.advance()
			p.consumeEq()
			v, err := p.expect(token.STRING, "a comment string")
			if err != nil {
				return opts, err
			}
			opts.Comment = v.Text
		case p.match(token.ROW_FORMAT):
			p.advance()
			p.consumeEq()
			v, err := p.expect(token.IDENT, "a row format")
			if err != nil {
				return opts, err
			}
			opts.RowFormat = v.Text
		case p.match(token.KEY_BLOCK_SIZE):
			p.advance()
			p.consumeEq()
			v, err := p.expect(token.NUMBER, "a number")
			if err != nil {
				return opts, err
			}
			opts.KeyBlockSize, _ = strconv.Atoi(v.Text)
		case p.match(token.MAX_ROWS):
			p.advance()
			p.consumeEq()
			v, err := p.expect(token.NUMBER, "a number")
			if err != nil {
				return opts, err
			}
			opts.MaxRows, _ = strconv.Atoi(v.Text)
		case p.match(token.MIN_ROWS):
			p.advance()
			p.consumeEq()
			v, err := p.expect(token.NUMBER, "a number")
			if err != nil {
				return opts, err
			}
			opts.MinRows, _ = strconv.Atoi(v.Text)
		case p.match(token.TABLESPACE):
			p.advance()
			p.consumeEq()
			v, err := p.expect(token.IDENT, "a tablespace name")
			if err != nil {
				return opts, err
			}
			opts.Tablespace = v.Text
		default:
			return opts, nil
		}
	}
}

func (p *Parser) consumeEq() {
	if p.match(token.EQ) {
		p.advance()
	}
}

func (p *Parser) parseCreateIndexDef(unique bool) (*ast.CreateIndexDef, error) {
	pos := p.here()
	ifNotExists, err := p.parseIfNotExists()
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT, "an index name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ON, "ON"); err != nil {
		return nil, err
	}
	table, err := p.expect(token.IDENT, "a table name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}
	cols, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	return &ast.CreateIndexDef{Position: pos, IfNotExists: ifNotExists, Unique: unique, Name: name.Text, Table: table.Text, Columns: cols}, nil
}

func (p *Parser) parseCreateViewDef() (*ast.CreateViewDef, error) {
	pos := p.here()
	ifNotExists, err := p.parseIfNotExists()
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT, "a view name")
	if err != nil {
		return nil, err
	}
	def := &ast.CreateViewDef{Position: pos, IfNotExists: ifNotExists, Name: name.Text}
	if p.match(token.LPAREN) {
		p.advance()
		cols, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		def.Columns = cols
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.AS, "AS"); err != nil {
		return nil, err
	}
	query, err := p.parseSelect()
	if err != nil {
		return nil, err
	}
	def.Query = query.(*ast.Select)
	return def, nil
}

func (p *Parser) parseCreateTrigger() (*ast.CreateTrigger, error) {
	pos := p.here()
	name, err := p.expect(token.IDENT, "a trigger name")
	if err != nil {
		return nil, err
	}
	trig := &ast.CreateTrigger{Position: pos, Name: name.Text}

	switch {
	case p.match(token.BEFORE):
		trig.Timing = "BEFORE"
		p.advance()
	case p.match(token.AFTER):
		trig.Timing = "AFTER"
		p.advance()
	case p.match(token.INSTEAD):
		p.advance()
		if _, err := p.expect(token.OF, "OF"); err != nil {
			return nil, err
		}
		trig.Timing = "INSTEAD OF"
	default:
		cur := p.current()
		return nil, diagnostic.Unexpected(cur.Line, cur.Column, "BEFORE, AFTER, or INSTEAD OF", tokenDescription(cur))
	}

	switch {
	case p.match(token.INSERT):
		trig.Event = "INSERT"
		p.advance()
	case p.match(token.UPDATE):
		trig.Event = "UPDATE"
		p.advance()
	case p.match(token.DELETE):
		trig.Event = "DELETE"
		p.advance()
	default:
		cur := p.current()
		return nil, diagnostic.Unexpected(cur.Line, cur.Column, "INSERT, UPDATE, or DELETE", tokenDescription(cur))
	}

	if _, err := p.expect(token.ON, "ON"); err != nil {
		return nil, err
	}
	table, err := p.expect(token.IDENT, "a table name")
	if err != nil {
		return nil, err
	}
	trig.Table = table.Text

	body, err := p.parseOpaqueBody()
	if err != nil {
		return nil, err
	}
	trig.Body = body
	return trig, nil
}

func (p *Parser) parseCreateProcedure() (*ast.CreateProcedure, error) {
	pos := p.here()
	name, err := p.expect(token.IDENT, "a procedure name")
	if err != nil {
		return nil, err
	}
	proc := &ast.CreateProcedure{Position: pos, Name: name.Text}

	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}
	if !p.match(token.RPAREN) {
		params, err := p.parseIdentList()
		if err != nil {
			return nil, err
		}
		proc.Params = params
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}

	body, err := p.parseOpaqueBody()
	if err != nil {
		return nil, err
	}
	proc.Body = body
	return proc, nil
}

// parseOpaqueBody consumes a BEGIN ... END block without interpreting
// its contents as statements, tracking nested BEGIN/END pairs, and
// returns the texts of the lexemes between them joined by single spaces
// (string literals appear in their decoded form, without quotes).
func (p *Parser) parseOpaqueBody() (string, error) {
	if _, err := p.expect(token.BEGIN, "BEGIN"); err != nil {
		return "", err
	}
	var parts []string
	depth := 1
	for depth > 0 {
		if p.atEnd() {
			cur := p.current()
			return "", diagnostic.New(cur.Line, cur.Column, "unterminated BEGIN ... END block")
		}
		cur := p.current()
		if cur.Tok == token.BEGIN {
			depth++
		} else if cur.Tok == token.END {
			depth--
			if depth == 0 {
				p.advance()
				break
			}
		}
		parts = append(parts, tokenDescription(cur))
		p.advance()
	}
	return strings.Join(parts, " "), nil
}
