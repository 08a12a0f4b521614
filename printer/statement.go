package printer

import (
	"strings"

	"github.com/go-sqlfront/sqlfront/ast"
)

func writeSelect(sb *strings.Builder, s *ast.Select) {
	if len(s.With) > 0 {
		sb.WriteString("WITH ")
		for i, cte := range s.With {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(cte.Name)
			sb.WriteString(" AS (")
			writeSelect(sb, cte.Query)
			sb.WriteString(")")
		}
		sb.WriteString(" ")
	}

	sb.WriteString("SELECT ")
	if s.Distinct {
		sb.WriteString("DISTINCT ")
	}
	for i, item := range s.Columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeExpr(sb, item.Expr)
		if item.Alias != "" {
			sb.WriteString(" AS ")
			sb.WriteString(item.Alias)
		}
	}

	if len(s.From) > 0 {
		sb.WriteString(" FROM ")
		for i, ref := range s.From {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeTableRef(sb, ref)
		}
	}

	if s.Where != nil {
		writeWhere(sb, s.Where)
	}
	if s.GroupBy != nil {
		writeGroupBy(sb, s.GroupBy)
	}
	if len(s.OrderBy) > 0 {
		writeOrderBy(sb, s.OrderBy)
	}
	if s.Limit != nil {
		sb.WriteString(" LIMIT ")
		writeExpr(sb, s.Limit)
	}
	if s.Offset != nil {
		sb.WriteString(" OFFSET ")
		writeExpr(sb, s.Offset)
	}
}

func writeInsert(sb *strings.Builder, i *ast.Insert) {
	sb.WriteString("INSERT INTO ")
	sb.WriteString(i.TableName)
	if len(i.Columns) > 0 {
		sb.WriteString(" (")
		writeIdentList(sb, i.Columns)
		sb.WriteString(")")
	}
	if i.Select != nil {
		sb.WriteString(" ")
		writeSelect(sb, i.Select)
	} else {
		sb.WriteString(" VALUES ")
		for r, row := range i.Values {
			if r > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("(")
			for c, v := range row {
				if c > 0 {
					sb.WriteString(", ")
				}
				writeExpr(sb, v)
			}
			sb.WriteString(")")
		}
	}
	if len(i.OnDuplicate) > 0 {
		sb.WriteString(" ON DUPLICATE KEY UPDATE ")
		writeAssignments(sb, i.OnDuplicate)
	}
}

func writeAssignments(sb *strings.Builder, assigns []*ast.Assignment) {
	for i, a := range assigns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Column)
		sb.WriteString(" = ")
		writeExpr(sb, a.Value)
	}
}

func writeUpdate(sb *strings.Builder, u *ast.Update) {
	sb.WriteString("UPDATE ")
	writeTableRef(sb, u.Table)
	sb.WriteString(" SET ")
	writeAssignments(sb, u.Assignments)
	if u.Where != nil {
		writeWhere(sb, u.Where)
	}
	if len(u.OrderBy) > 0 {
		writeOrderBy(sb, u.OrderBy)
	}
	if u.Limit != nil {
		sb.WriteString(" LIMIT ")
		writeExpr(sb, u.Limit)
	}
}

func writeDelete(sb *strings.Builder, d *ast.Delete) {
	sb.WriteString("DELETE FROM ")
	writeTableRef(sb, d.Table)
	if len(d.Using) > 0 {
		sb.WriteString(" USING ")
		for i, ref := range d.Using {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeTableRef(sb, ref)
		}
	}
	if d.Where != nil {
		writeWhere(sb, d.Where)
	}
	if len(d.OrderBy) > 0 {
		writeOrderBy(sb, d.OrderBy)
	}
	if d.Limit != nil {
		sb.WriteString(" LIMIT ")
		writeExpr(sb, d.Limit)
	}
}

func writeCreate(sb *strings.Builder, c *ast.Create) {
	switch c.Kind {
	case ast.CreateTableKind:
		writeCreateTable(sb, c.Table)
	case ast.CreateIndexKind:
		writeCreateIndex(sb, c.Index)
	case ast.CreateViewKind:
		writeCreateView(sb, c.View)
	case ast.CreateTriggerKind:
		writeCreateTrigger(sb, c.Trigger)
	case ast.CreateProcedureKind:
		writeCreateProcedure(sb, c.Procedure)
	}
}

func writeCreateTable(sb *strings.Builder, t *ast.CreateTableDef) {
	sb.WriteString("CREATE TABLE ")
	if t.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(t.Table)
	sb.WriteString(" (")
	first := true
	for _, col := range t.Columns {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		writeColumnDef(sb, col)
	}
	for _, c := range t.Constraints {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		writeTableConstraint(sb, c)
	}
	sb.WriteString(")")
	writeTableOptions(sb, t.Options)
}

func writeColumnDef(sb *strings.Builder, c *ast.ColumnDef) {
	sb.WriteString(c.Name)
	sb.WriteString(" ")
	writeDataType(sb, c.Type)
	if c.NotNull {
		sb.WriteString(" NOT NULL")
	}
	if c.Default != nil {
		sb.WriteString(" DEFAULT ")
		writeExpr(sb, c.Default)
	}
	if c.PrimaryKey {
		sb.WriteString(" PRIMARY KEY")
	}
	if c.Unique {
		sb.WriteString(" UNIQUE")
	}
	if c.AutoIncrement {
		sb.WriteString(" AUTO_INCREMENT")
	}
	if c.Reference != nil {
		sb.WriteString(" ")
		writeForeignKeyReference(sb, c.Reference)
	}
}

func writeForeignKeyReference(sb *strings.Builder, r *ast.ForeignKeyReference) {
	sb.WriteString("REFERENCES ")
	sb.WriteString(r.Table)
	if len(r.Columns) > 0 {
		sb.WriteString(" (")
		writeIdentList(sb, r.Columns)
		sb.WriteString(")")
	}
	if r.OnDelete != "" {
		sb.WriteString(" ON DELETE ")
		sb.WriteString(r.OnDelete)
	}
	if r.OnUpdate != "" {
		sb.WriteString(" ON UPDATE ")
		sb.WriteString(r.OnUpdate)
	}
}

func writeTableConstraint(sb *strings.Builder, c *ast.TableConstraint) {
	if c.Name != "" {
		sb.WriteString("CONSTRAINT ")
		sb.WriteString(c.Name)
		sb.WriteString(" ")
	}
	switch c.Kind {
	case ast.ConstraintPrimaryKey:
		sb.WriteString("PRIMARY KEY (")
		writeIdentList(sb, c.Columns)
		sb.WriteString(")")
	case ast.ConstraintUnique:
		sb.WriteString("UNIQUE (")
		writeIdentList(sb, c.Columns)
		sb.WriteString(")")
	case ast.ConstraintForeignKey:
		sb.WriteString("FOREIGN KEY (")
		writeIdentList(sb, c.Columns)
		sb.WriteString(") ")
		writeForeignKeyReference(sb, c.Reference)
	case ast.ConstraintCheck:
		sb.WriteString("CHECK (")
		writeExpr(sb, c.Check)
		sb.WriteString(")")
	}
}

func writeTableOptions(sb *strings.Builder, o ast.TableOptions) {
	if o.Engine != "" {
		sb.WriteString(" ENGINE = ")
		sb.WriteString(o.Engine)
	}
	if o.AutoIncrement != 0 {
		sb.WriteString(" AUTO_INCREMENT = ")
		writeInt(sb, o.AutoIncrement)
	}
	if o.Charset != "" {
		sb.WriteString(" CHARSET = ")
		sb.WriteString(o.Charset)
	}
	if o.Collate != "" {
		sb.WriteString(" COLLATE = ")
		sb.WriteString(o.Collate)
	}
	if o.RowFormat != "" {
		sb.WriteString(" ROW_FORMAT = ")
		sb.WriteString(o.RowFormat)
	}
	if o.KeyBlockSize != 0 {
		sb.WriteString(" KEY_BLOCK_SIZE = ")
		writeInt(sb, o.KeyBlockSize)
	}
	if o.MaxRows != 0 {
		sb.WriteString(" MAX_ROWS = ")
		writeInt(sb, o.MaxRows)
	}
	if o.MinRows != 0 {
		sb.WriteString(" MIN_ROWS = ")
		writeInt(sb, o.MinRows)
	}
	if o.Tablespace != "" {
		sb.WriteString(" TABLESPACE = ")
		sb.WriteString(o.Tablespace)
	}
	if o.Comment != "" {
		sb.WriteString(" COMMENT = '")
		sb.WriteString(strings.ReplaceAll(o.Comment, "'", "''"))
		sb.WriteString("'")
	}
}

func writeCreateIndex(sb *strings.Builder, idx *ast.CreateIndexDef) {
	sb.WriteString("CREATE ")
	if idx.Unique {
		sb.WriteString("UNIQUE ")
	}
	sb.WriteString("INDEX ")
	if idx.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(idx.Name)
	sb.WriteString(" ON ")
	sb.WriteString(idx.Table)
	sb.WriteString(" (")
	writeIdentList(sb, idx.Columns)
	sb.WriteString(")")
}

func writeCreateView(sb *strings.Builder, v *ast.CreateViewDef) {
	sb.WriteString("CREATE VIEW ")
	if v.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(v.Name)
	if len(v.Columns) > 0 {
		sb.WriteString(" (")
		writeIdentList(sb, v.Columns)
		sb.WriteString(")")
	}
	sb.WriteString(" AS ")
	writeSelect(sb, v.Query)
}

func writeCreateTrigger(sb *strings.Builder, t *ast.CreateTrigger) {
	sb.WriteString("CREATE TRIGGER ")
	sb.WriteString(t.Name)
	sb.WriteString(" ")
	sb.WriteString(t.Timing)
	sb.WriteString(" ")
	sb.WriteString(t.Event)
	sb.WriteString(" ON ")
	sb.WriteString(t.Table)
	sb.WriteString(" BEGIN ")
	sb.WriteString(t.Body)
	sb.WriteString(" END")
}

func writeCreateProcedure(sb *strings.Builder, p *ast.CreateProcedure) {
	sb.WriteString("CREATE PROCEDURE ")
	sb.WriteString(p.Name)
	sb.WriteString(" (")
	writeIdentList(sb, p.Params)
	sb.WriteString(") BEGIN ")
	sb.WriteString(p.Body)
	sb.WriteString(" END")
}

func writeAlter(sb *strings.Builder, a *ast.Alter) {
	sb.WriteString("ALTER TABLE ")
	if a.IfExists {
		sb.WriteString("IF EXISTS ")
	}
	if a.Only {
		sb.WriteString("ONLY ")
	}
	sb.WriteString(a.Table)
	if a.Star {
		sb.WriteString(" *")
	}
	sb.WriteString(" ")
	for i, action := range a.Actions {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeAlterAction(sb, action)
	}
}

func writeAlterAction(sb *strings.Builder, a *ast.AlterAction) {
	switch a.Kind {
	case ast.AlterAddColumn:
		sb.WriteString("ADD COLUMN ")
		writeColumnDef(sb, a.Column)
	case ast.AlterDropColumn:
		sb.WriteString("DROP COLUMN ")
		sb.WriteString(a.ColumnName)
	case ast.AlterModifyColumn:
		sb.WriteString("MODIFY COLUMN ")
		writeColumnDef(sb, a.Column)
	case ast.AlterAddConstraint:
		sb.WriteString("ADD ")
		writeTableConstraint(sb, a.Constraint)
	case ast.AlterDropConstraint:
		sb.WriteString("DROP CONSTRAINT ")
		sb.WriteString(a.ConstraintName)
	case ast.AlterRenameTable:
		sb.WriteString("RENAME TO ")
		sb.WriteString(a.NewName)
	case ast.AlterRenameColumn:
		sb.WriteString("RENAME COLUMN ")
		sb.WriteString(a.ColumnName)
		sb.WriteString(" TO ")
		sb.WriteString(a.NewName)
	}
}

func writeDrop(sb *strings.Builder, d *ast.Drop) {
	sb.WriteString("DROP ")
	switch d.Kind {
	case ast.DropIndexKind:
		sb.WriteString("INDEX ")
	case ast.DropViewKind:
		sb.WriteString("VIEW ")
	case ast.DropTriggerKind:
		sb.WriteString("TRIGGER ")
	default:
		sb.WriteString("TABLE ")
	}
	if d.IfExists {
		sb.WriteString("IF EXISTS ")
	}
	writeIdentList(sb, d.Names)
	if d.Kind == ast.DropIndexKind && d.Table != "" {
		sb.WriteString(" ON ")
		sb.WriteString(d.Table)
	}
	if d.Cascade {
		sb.WriteString(" CASCADE")
	} else if d.Restrict {
		sb.WriteString(" RESTRICT")
	}
}

func writeMerge(sb *strings.Builder, m *ast.Merge) {
	sb.WriteString("MERGE INTO ")
	writeTableRef(sb, m.Target)
	sb.WriteString(" USING ")
	writeTableRef(sb, m.Source)
	sb.WriteString(" ON ")
	writeExpr(sb, m.On)
	for _, action := range m.Actions {
		sb.WriteString(" WHEN ")
		if !action.Matched {
			sb.WriteString("NOT ")
		}
		sb.WriteString("MATCHED")
		if action.ByTarget {
			sb.WriteString(" BY TARGET")
		} else if action.BySource {
			sb.WriteString(" BY SOURCE")
		}
		if action.Condition != nil {
			sb.WriteString(" AND ")
			writeExpr(sb, action.Condition)
		}
		sb.WriteString(" THEN ")
		switch {
		case action.Delete:
			sb.WriteString("DELETE")
		case len(action.UpdateSet) > 0:
			sb.WriteString("UPDATE SET ")
			writeAssignments(sb, action.UpdateSet)
		default:
			sb.WriteString("INSERT")
			if len(action.InsertCols) > 0 {
				sb.WriteString(" (")
				writeIdentList(sb, action.InsertCols)
				sb.WriteString(")")
			}
			sb.WriteString(" VALUES (")
			for i, v := range action.InsertVals {
				if i > 0 {
					sb.WriteString(", ")
				}
				writeExpr(sb, v)
			}
			sb.WriteString(")")
		}
	}
}

func writeGrantRevoke(sb *strings.Builder, g *ast.GrantRevoke) {
	if g.Kind == ast.Grant {
		sb.WriteString("GRANT ")
	} else {
		sb.WriteString("REVOKE ")
	}
	writeIdentList(sb, g.Privileges)
	sb.WriteString(" ON ")
	if g.ObjectType != "" {
		sb.WriteString(g.ObjectType)
		sb.WriteString(" ")
	}
	writeIdentList(sb, g.ObjectNames)
	if g.Kind == ast.Grant {
		sb.WriteString(" TO ")
	} else {
		sb.WriteString(" FROM ")
	}
	writeIdentList(sb, g.Grantees)
	if g.WithGrant {
		sb.WriteString(" WITH GRANT OPTION")
	}
	if g.Cascade {
		sb.WriteString(" CASCADE")
	}
}
