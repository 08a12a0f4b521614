package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-sqlfront/sqlfront/ast"
	"github.com/go-sqlfront/sqlfront/parser"
)

func TestParseBasicSelect(t *testing.T) {
	stmt, err := parser.Parse("SELECT foo FROM bar")
	require.NoError(t, err)

	sel, ok := stmt.(*ast.Select)
	require.True(t, ok)
	require.Len(t, sel.Columns, 1)

	col, ok := sel.Columns[0].Expr.(*ast.ColumnRef)
	require.True(t, ok)
	require.Equal(t, "foo", col.Column)
	require.Equal(t, "", col.Table)

	require.Len(t, sel.From, 1)
	base, ok := sel.From[0].(*ast.BaseTableRef)
	require.True(t, ok)
	require.Equal(t, "bar", base.Table)
}

func TestParseSelectTrailingSemicolon(t *testing.T) {
	stmt, err := parser.Parse("SELECT foo FROM bar;")
	require.NoError(t, err)
	require.NotNil(t, stmt)
}

func TestParseSelectWithAlias(t *testing.T) {
	stmt, err := parser.Parse("SELECT t.foo AS stuff FROM bar AS t")
	require.NoError(t, err)

	sel := stmt.(*ast.Select)
	require.Equal(t, "stuff", sel.Columns[0].Alias)
	col := sel.Columns[0].Expr.(*ast.ColumnRef)
	require.Equal(t, "t", col.Table)
	require.Equal(t, "foo", col.Column)

	base := sel.From[0].(*ast.BaseTableRef)
	require.Equal(t, "t", base.Alias)
}

func TestParseAliasOnNonColumnIsError(t *testing.T) {
	_, err := parser.Parse("SELECT 1 + 2 AS total FROM bar")
	require.Error(t, err)
}

func TestParseWhereAndOrderAndLimit(t *testing.T) {
	stmt, err := parser.Parse("SELECT id FROM users WHERE age >= 18 ORDER BY id DESC LIMIT 10 OFFSET 5")
	require.NoError(t, err)

	sel := stmt.(*ast.Select)
	require.NotNil(t, sel.Where)
	cmp := sel.Where.Condition.(*ast.BinaryOp)
	require.Equal(t, ast.OpGte, cmp.Op)

	require.Len(t, sel.OrderBy, 1)
	require.True(t, sel.OrderBy[0].Descending)

	lim := sel.Limit.(*ast.Literal)
	require.Equal(t, "10", lim.Text)
	off := sel.Offset.(*ast.Literal)
	require.Equal(t, "5", off.Text)
}

func TestParseJoin(t *testing.T) {
	stmt, err := parser.Parse(
		"SELECT a.id FROM orders AS a LEFT JOIN customers AS b ON a.customer_id = b.id")
	require.NoError(t, err)

	sel := stmt.(*ast.Select)
	join := sel.From[0].(*ast.JoinRef).Join
	require.Equal(t, ast.JoinLeft, join.Type)
	require.NotNil(t, join.On)
}

func TestParseGroupByHaving(t *testing.T) {
	stmt, err := parser.Parse(
		"SELECT dept, COUNT(*) FROM employees GROUP BY dept HAVING COUNT(*) > 1")
	require.NoError(t, err)

	sel := stmt.(*ast.Select)
	require.NotNil(t, sel.GroupBy)
	require.Len(t, sel.GroupBy.Columns, 1)
	require.NotNil(t, sel.GroupBy.Having)

	fn := sel.Columns[1].Expr.(*ast.FunctionCall)
	require.True(t, fn.Star)
	require.Equal(t, "COUNT", fn.Name)
}

func TestParseBetween(t *testing.T) {
	stmt, err := parser.Parse("SELECT id FROM t WHERE id BETWEEN 1 AND 10")
	require.NoError(t, err)

	sel := stmt.(*ast.Select)
	b := sel.Where.Condition.(*ast.BinaryOp)
	require.Equal(t, ast.OpBetween, b.Op)
	require.False(t, b.Not)
	require.NotNil(t, b.High)
}

func TestParseNotBetween(t *testing.T) {
	stmt, err := parser.Parse("SELECT id FROM t WHERE id NOT BETWEEN 1 AND 10")
	require.NoError(t, err)

	sel := stmt.(*ast.Select)
	b := sel.Where.Condition.(*ast.BinaryOp)
	require.Equal(t, ast.OpBetween, b.Op)
	require.True(t, b.Not)
}

func TestParseInList(t *testing.T) {
	stmt, err := parser.Parse("SELECT id FROM t WHERE id IN (1, 2, 3)")
	require.NoError(t, err)

	sel := stmt.(*ast.Select)
	b := sel.Where.Condition.(*ast.BinaryOp)
	require.Equal(t, ast.OpIn, b.Op)
	list := b.Right.(*ast.ExprList)
	require.Len(t, list.Items, 3)
}

func TestParseInSubquery(t *testing.T) {
	stmt, err := parser.Parse("SELECT id FROM t WHERE id IN (SELECT id FROM u)")
	require.NoError(t, err)

	sel := stmt.(*ast.Select)
	b := sel.Where.Condition.(*ast.BinaryOp)
	_, ok := b.Right.(*ast.Subquery)
	require.True(t, ok)
}

func TestParseNotAndOrPrecedence(t *testing.T) {
	// NOT binds tighter than AND, which binds tighter than OR.
	stmt, err := parser.Parse("SELECT 1 FROM t WHERE a = 1 OR NOT b = 2 AND c = 3")
	require.NoError(t, err)

	sel := stmt.(*ast.Select)
	or := sel.Where.Condition.(*ast.BinaryOp)
	require.Equal(t, ast.OpOr, or.Op)

	and := or.Right.(*ast.BinaryOp)
	require.Equal(t, ast.OpAnd, and.Op)

	not := and.Left.(*ast.UnaryOp)
	require.Equal(t, ast.OpNot, not.Op)
}

func TestParseIsNull(t *testing.T) {
	stmt, err := parser.Parse("SELECT 1 FROM t WHERE a IS NOT NULL")
	require.NoError(t, err)

	sel := stmt.(*ast.Select)
	u := sel.Where.Condition.(*ast.UnaryOp)
	require.Equal(t, ast.OpIsNotNull, u.Op)
}

func TestParseCaseExpr(t *testing.T) {
	stmt, err := parser.Parse(
		"SELECT CASE a WHEN 1 THEN 'one' WHEN 2 THEN 'two' ELSE 'other' END FROM t")
	require.NoError(t, err)

	sel := stmt.(*ast.Select)
	c := sel.Columns[0].Expr.(*ast.CaseExpr)
	require.NotNil(t, c.Scrutinee)
	require.Len(t, c.WhenThens, 2)
	require.NotNil(t, c.Else)
}

func TestParseWindowFunction(t *testing.T) {
	stmt, err := parser.Parse(
		"SELECT RANK() OVER (PARTITION BY dept ORDER BY salary DESC) FROM employees")
	require.NoError(t, err)

	sel := stmt.(*ast.Select)
	fn := sel.Columns[0].Expr.(*ast.FunctionCall)
	require.NotNil(t, fn.Over)
	require.Len(t, fn.Over.PartitionBy, 1)
	require.Len(t, fn.Over.OrderBy, 1)
}

func TestParseInsertValues(t *testing.T) {
	stmt, err := parser.Parse("INSERT INTO t (a, b) VALUES (1, 'x'), (2, 'y')")
	require.NoError(t, err)

	ins := stmt.(*ast.Insert)
	require.Equal(t, "t", ins.TableName)
	require.Equal(t, []string{"a", "b"}, ins.Columns)
	require.Len(t, ins.Values, 2)
}

func TestParseInsertSelect(t *testing.T) {
	stmt, err := parser.Parse("INSERT INTO t SELECT a, b FROM u")
	require.NoError(t, err)

	ins := stmt.(*ast.Insert)
	require.NotNil(t, ins.Select)
}

func TestParseInsertOnDuplicateKeyUpdate(t *testing.T) {
	stmt, err := parser.Parse(
		"INSERT INTO t (a) VALUES (1) ON DUPLICATE KEY UPDATE a = 2")
	require.NoError(t, err)

	ins := stmt.(*ast.Insert)
	require.Len(t, ins.OnDuplicate, 1)
	require.Equal(t, "a", ins.OnDuplicate[0].Column)
}

func TestParseUpdate(t *testing.T) {
	stmt, err := parser.Parse("UPDATE t SET a = 1, b = 2 WHERE id = 3")
	require.NoError(t, err)

	upd := stmt.(*ast.Update)
	require.Len(t, upd.Assignments, 2)
	require.NotNil(t, upd.Where)
}

func TestParseDelete(t *testing.T) {
	stmt, err := parser.Parse("DELETE FROM t WHERE id = 1 ORDER BY id LIMIT 1")
	require.NoError(t, err)

	del := stmt.(*ast.Delete)
	require.NotNil(t, del.Where)
	require.Len(t, del.OrderBy, 1)
	require.NotNil(t, del.Limit)
}

func TestParseCreateTable(t *testing.T) {
	stmt, err := parser.Parse(`CREATE TABLE IF NOT EXISTS users (
		id INT PRIMARY KEY AUTO_INCREMENT,
		name VARCHAR(255) NOT NULL,
		dept_id INT REFERENCES departments(id),
		CONSTRAINT uq_name UNIQUE (name)
	) ENGINE = InnoDB`)
	require.NoError(t, err)

	create := stmt.(*ast.Create)
	require.Equal(t, ast.CreateTableKind, create.Kind)
	require.True(t, create.Table.IfNotExists)
	require.Len(t, create.Table.Columns, 3)
	require.Len(t, create.Table.Constraints, 1)
	require.Equal(t, "InnoDB", create.Table.Options.Engine)
}

func TestParseCreateIndex(t *testing.T) {
	stmt, err := parser.Parse("CREATE UNIQUE INDEX idx_name ON users (name)")
	require.NoError(t, err)

	create := stmt.(*ast.Create)
	require.Equal(t, ast.CreateIndexKind, create.Kind)
	require.True(t, create.Index.Unique)
}

func TestParseCreateView(t *testing.T) {
	stmt, err := parser.Parse("CREATE VIEW active_users AS SELECT id FROM users WHERE active = 1")
	require.NoError(t, err)

	create := stmt.(*ast.Create)
	require.Equal(t, ast.CreateViewKind, create.Kind)
	require.NotNil(t, create.View.Query)
}

func TestParseCreateTriggerOpaqueBody(t *testing.T) {
	stmt, err := parser.Parse(`CREATE TRIGGER trg_audit BEFORE INSERT ON users
		BEGIN UPDATE audit SET count = count + 1; END`)
	require.NoError(t, err)

	create := stmt.(*ast.Create)
	require.Equal(t, ast.CreateTriggerKind, create.Kind)
	require.Equal(t, "BEFORE", create.Trigger.Timing)
	require.Equal(t, "INSERT", create.Trigger.Event)
	require.Contains(t, create.Trigger.Body, "UPDATE")
}

func TestParseAlterTable(t *testing.T) {
	stmt, err := parser.Parse(
		"ALTER TABLE t ADD COLUMN age INT, DROP COLUMN legacy, RENAME TO t2")
	require.NoError(t, err)

	alter := stmt.(*ast.Alter)
	require.Len(t, alter.Actions, 3)
	require.Equal(t, ast.AlterAddColumn, alter.Actions[0].Kind)
	require.Equal(t, ast.AlterDropColumn, alter.Actions[1].Kind)
	require.Equal(t, ast.AlterRenameTable, alter.Actions[2].Kind)
	require.False(t, alter.IfExists)
	require.False(t, alter.Only)
	require.False(t, alter.Star)
}

func TestParseAlterTableIfExistsOnlyStar(t *testing.T) {
	stmt, err := parser.Parse("ALTER TABLE IF EXISTS ONLY t * ADD COLUMN age INT")
	require.NoError(t, err)

	alter := stmt.(*ast.Alter)
	require.True(t, alter.IfExists)
	require.True(t, alter.Only)
	require.True(t, alter.Star)
	require.Equal(t, "t", alter.Table)
}

func TestParseDropTable(t *testing.T) {
	stmt, err := parser.Parse("DROP TABLE IF EXISTS t CASCADE")
	require.NoError(t, err)

	drop := stmt.(*ast.Drop)
	require.True(t, drop.IfExists)
	require.True(t, drop.Cascade)
	require.Equal(t, []string{"t"}, drop.Names)
}

func TestParseDropMultipleNames(t *testing.T) {
	stmt, err := parser.Parse("DROP TABLE a, b, c")
	require.NoError(t, err)

	drop := stmt.(*ast.Drop)
	require.Equal(t, []string{"a", "b", "c"}, drop.Names)
}

func TestParseDropTrigger(t *testing.T) {
	stmt, err := parser.Parse("DROP TRIGGER IF EXISTS trg")
	require.NoError(t, err)

	drop := stmt.(*ast.Drop)
	require.Equal(t, ast.DropTriggerKind, drop.Kind)
	require.Equal(t, []string{"trg"}, drop.Names)
}

func TestParseTruncate(t *testing.T) {
	stmt, err := parser.Parse("TRUNCATE TABLE t")
	require.NoError(t, err)

	trunc := stmt.(*ast.Truncate)
	require.Equal(t, "t", trunc.Table)
}

func TestParseMerge(t *testing.T) {
	stmt, err := parser.Parse(`MERGE INTO t AS target USING s AS source ON target.id = source.id
		WHEN MATCHED THEN UPDATE SET target.val = source.val
		WHEN NOT MATCHED THEN INSERT (id, val) VALUES (source.id, source.val)`)
	require.NoError(t, err)

	merge := stmt.(*ast.Merge)
	require.Len(t, merge.Actions, 2)
	require.True(t, merge.Actions[0].Matched)
	require.False(t, merge.Actions[1].Matched)
}

func TestParseMergeByTargetBySource(t *testing.T) {
	stmt, err := parser.Parse(`MERGE INTO t AS target USING s AS source ON target.id = source.id
		WHEN MATCHED BY TARGET THEN DELETE
		WHEN NOT MATCHED BY SOURCE THEN DELETE`)
	require.NoError(t, err)

	merge := stmt.(*ast.Merge)
	require.Len(t, merge.Actions, 2)
	require.True(t, merge.Actions[0].ByTarget)
	require.False(t, merge.Actions[0].BySource)
	require.True(t, merge.Actions[1].BySource)
	require.False(t, merge.Actions[1].ByTarget)
}

func TestParseGrantRevoke(t *testing.T) {
	stmt, err := parser.Parse("GRANT SELECT, INSERT ON TABLE a, b TO alice, bob WITH GRANT OPTION")
	require.NoError(t, err)

	gr := stmt.(*ast.GrantRevoke)
	require.Equal(t, ast.Grant, gr.Kind)
	require.Equal(t, []string{"SELECT", "INSERT"}, gr.Privileges)
	require.Equal(t, "TABLE", gr.ObjectType)
	require.Equal(t, []string{"a", "b"}, gr.ObjectNames)
	require.True(t, gr.WithGrant)

	stmt, err = parser.Parse("REVOKE SELECT ON t FROM alice CASCADE")
	require.NoError(t, err)
	gr = stmt.(*ast.GrantRevoke)
	require.Equal(t, ast.Revoke, gr.Kind)
	require.Equal(t, "", gr.ObjectType)
	require.Equal(t, []string{"t"}, gr.ObjectNames)
	require.True(t, gr.Cascade)
}

func TestParseWithCommonTableExpr(t *testing.T) {
	stmt, err := parser.Parse(
		"WITH recent AS (SELECT id FROM orders) SELECT id FROM recent")
	require.NoError(t, err)

	sel := stmt.(*ast.Select)
	require.Len(t, sel.With, 1)
	require.Equal(t, "recent", sel.With[0].Name)
}

func TestParseErrorUnexpectedToken(t *testing.T) {
	_, err := parser.Parse("SELECT FROM")
	require.Error(t, err)
}

func TestParseErrorTrailingGarbage(t *testing.T) {
	_, err := parser.Parse("SELECT 1 FROM t +")
	require.Error(t, err)
}

func TestParseErrorUnterminatedString(t *testing.T) {
	_, err := parser.Parse("SELECT 'unterminated FROM t")
	require.Error(t, err)
}

func TestParseErrorMissingFrom(t *testing.T) {
	_, err := parser.Parse("SELECT id")
	require.Error(t, err)
}

func TestParseErrorBareStarOnlyValidForCount(t *testing.T) {
	_, err := parser.Parse("SELECT SUM(*) FROM t")
	require.Error(t, err)
}
