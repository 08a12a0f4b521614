package printer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-sqlfront/sqlfront/ast"
	"github.com/go-sqlfront/sqlfront/parser"
	"github.com/go-sqlfront/sqlfront/printer"
)

func parseAndPrint(t *testing.T, sql string) string {
	t.Helper()
	stmt, err := parser.Parse(sql)
	require.NoError(t, err)
	return printer.Print(stmt)
}

func TestPrintBasicSelect(t *testing.T) {
	out := parseAndPrint(t, "SELECT foo FROM bar")
	require.Equal(t, "SELECT foo FROM bar", out)
}

func TestPrintSelectWithAlias(t *testing.T) {
	out := parseAndPrint(t, "SELECT t.foo AS stuff FROM bar AS t")
	require.Equal(t, "SELECT t.foo AS stuff FROM bar AS t", out)
}

func TestPrintWhereOrderLimit(t *testing.T) {
	out := parseAndPrint(t, "SELECT id FROM users WHERE age >= 18 ORDER BY id DESC LIMIT 10 OFFSET 5")
	require.Equal(t, "SELECT id FROM users WHERE age >= 18 ORDER BY id DESC LIMIT 10 OFFSET 5", out)
}

func TestPrintJoin(t *testing.T) {
	out := parseAndPrint(t,
		"SELECT a.id FROM orders AS a LEFT JOIN customers AS b ON a.customer_id = b.id")
	require.Equal(t,
		"SELECT a.id FROM orders AS a LEFT JOIN customers AS b ON a.customer_id = b.id", out)
}

func TestPrintBetween(t *testing.T) {
	out := parseAndPrint(t, "SELECT id FROM t WHERE id BETWEEN 1 AND 10")
	require.Equal(t, "SELECT id FROM t WHERE id BETWEEN 1 AND 10", out)
}

func TestPrintNotBetween(t *testing.T) {
	out := parseAndPrint(t, "SELECT id FROM t WHERE id NOT BETWEEN 1 AND 10")
	require.Equal(t, "SELECT id FROM t WHERE id NOT BETWEEN 1 AND 10", out)
}

func TestPrintInsertValues(t *testing.T) {
	out := parseAndPrint(t, "INSERT INTO t (a, b) VALUES (1, 'x')")
	require.Equal(t, "INSERT INTO t (a, b) VALUES (1, 'x')", out)
}

func TestPrintUpdate(t *testing.T) {
	out := parseAndPrint(t, "UPDATE t SET a = 1, b = 2 WHERE id = 3")
	require.Equal(t, "UPDATE t SET a = 1, b = 2 WHERE id = 3", out)
}

func TestPrintDelete(t *testing.T) {
	out := parseAndPrint(t, "DELETE FROM t WHERE id = 1")
	require.Equal(t, "DELETE FROM t WHERE id = 1", out)
}

func TestPrintTruncate(t *testing.T) {
	out := parseAndPrint(t, "TRUNCATE TABLE t")
	require.Equal(t, "TRUNCATE TABLE t", out)
}

func TestPrintEscapesSingleQuotesInStringLiteral(t *testing.T) {
	var sb ast.Expression = &ast.Literal{Kind: ast.LiteralString, Text: "it's"}
	stmt := &ast.Select{
		Columns: []ast.SelectItem{{Expr: sb}},
	}
	out := printer.Print(stmt)
	require.Equal(t, "SELECT 'it''s'", out)
}

func TestPrintRoundTripIsStable(t *testing.T) {
	sqls := []string{
		"SELECT a, b FROM t WHERE a = 1 AND b = 2 ORDER BY a LIMIT 5",
		"SELECT COUNT(*) FROM employees GROUP BY dept HAVING COUNT(*) > 1",
		"UPDATE t SET a = 1 WHERE id IN (1, 2, 3)",
		"DELETE FROM t WHERE id = 1 ORDER BY id LIMIT 1",
		"SELECT RANK() OVER (PARTITION BY dept ORDER BY salary DESC) FROM employees",
	}
	for _, sql := range sqls {
		first := parseAndPrint(t, sql)
		stmt2, err := parser.Parse(first)
		require.NoError(t, err)
		second := printer.Print(stmt2)
		require.Equal(t, first, second)
	}
}
