// Package printer renders an ast.Statement back into canonical SQL text.
package printer

import (
	"strconv"
	"strings"

	"github.com/go-sqlfront/sqlfront/ast"
)

// Print renders stmt as a single canonical SQL statement, without a
// trailing semicolon.
func Print(stmt ast.Statement) string {
	var sb strings.Builder
	writeStatement(&sb, stmt)
	return sb.String()
}

func writeStatement(sb *strings.Builder, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Select:
		writeSelect(sb, s)
	case *ast.Insert:
		writeInsert(sb, s)
	case *ast.Update:
		writeUpdate(sb, s)
	case *ast.Delete:
		writeDelete(sb, s)
	case *ast.Create:
		writeCreate(sb, s)
	case *ast.Alter:
		writeAlter(sb, s)
	case *ast.Drop:
		writeDrop(sb, s)
	case *ast.Truncate:
		sb.WriteString("TRUNCATE TABLE ")
		sb.WriteString(s.Table)
	case *ast.Merge:
		writeMerge(sb, s)
	case *ast.GrantRevoke:
		writeGrantRevoke(sb, s)
	}
}

func writeIdentList(sb *strings.Builder, names []string) {
	for i, n := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(n)
	}
}

func writeInt(sb *strings.Builder, v int) {
	sb.WriteString(strconv.Itoa(v))
}
