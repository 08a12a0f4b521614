package printer

import (
	"strconv"
	"strings"

	"github.com/go-sqlfront/sqlfront/ast"
)

func writeExpr(sb *strings.Builder, e ast.Expression) {
	switch x := e.(type) {
	case *ast.Literal:
		writeLiteral(sb, x)
	case *ast.ColumnRef:
		if x.Table != "" {
			sb.WriteString(x.Table)
			sb.WriteString(".")
		}
		sb.WriteString(x.Column)
	case *ast.BinaryOp:
		writeBinaryOp(sb, x)
	case *ast.UnaryOp:
		writeUnaryOp(sb, x)
	case *ast.FunctionCall:
		writeFunctionCall(sb, x)
	case *ast.CaseExpr:
		writeCaseExpr(sb, x)
	case *ast.Subquery:
		sb.WriteString("(")
		writeSelect(sb, x.Query)
		sb.WriteString(")")
	case *ast.ExprList:
		sb.WriteString("(")
		for i, item := range x.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeExpr(sb, item)
		}
		sb.WriteString(")")
	}
}

func writeLiteral(sb *strings.Builder, l *ast.Literal) {
	switch l.Kind {
	case ast.LiteralString:
		sb.WriteString("'")
		sb.WriteString(strings.ReplaceAll(l.Text, "'", "''"))
		sb.WriteString("'")
	default:
		sb.WriteString(l.Text)
	}
}

func writeBinaryOp(sb *strings.Builder, b *ast.BinaryOp) {
	switch b.Op {
	case ast.OpBetween:
		writeExpr(sb, b.Left)
		if b.Not {
			sb.WriteString(" NOT BETWEEN ")
		} else {
			sb.WriteString(" BETWEEN ")
		}
		writeExpr(sb, b.Right)
		sb.WriteString(" AND ")
		writeExpr(sb, b.High)
	case ast.OpIn:
		writeExpr(sb, b.Left)
		if b.Not {
			sb.WriteString(" NOT IN ")
		} else {
			sb.WriteString(" IN ")
		}
		writeExpr(sb, b.Right)
	case ast.OpLike:
		writeExpr(sb, b.Left)
		if b.Not {
			sb.WriteString(" NOT LIKE ")
		} else {
			sb.WriteString(" LIKE ")
		}
		writeExpr(sb, b.Right)
	case ast.OpAnd, ast.OpOr:
		writeExpr(sb, b.Left)
		sb.WriteString(" ")
		sb.WriteString(b.Op.String())
		sb.WriteString(" ")
		writeExpr(sb, b.Right)
	default:
		writeExpr(sb, b.Left)
		sb.WriteString(" ")
		sb.WriteString(b.Op.String())
		sb.WriteString(" ")
		writeExpr(sb, b.Right)
	}
}

func writeUnaryOp(sb *strings.Builder, u *ast.UnaryOp) {
	switch u.Op {
	case ast.OpNot:
		sb.WriteString("NOT ")
		writeExpr(sb, u.Operand)
	case ast.OpExists:
		sb.WriteString("EXISTS ")
		writeExpr(sb, u.Operand)
	case ast.OpIsNull:
		writeExpr(sb, u.Operand)
		sb.WriteString(" IS NULL")
	case ast.OpIsNotNull:
		writeExpr(sb, u.Operand)
		sb.WriteString(" IS NOT NULL")
	case ast.OpNeg:
		sb.WriteString("-")
		writeExpr(sb, u.Operand)
	}
}

func writeFunctionCall(sb *strings.Builder, f *ast.FunctionCall) {
	sb.WriteString(f.Name)
	sb.WriteString("(")
	if f.Star {
		sb.WriteString("*")
	} else {
		if f.Distinct {
			sb.WriteString("DISTINCT ")
		}
		for i, arg := range f.Arguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeExpr(sb, arg)
		}
	}
	sb.WriteString(")")
	if f.Over != nil {
		sb.WriteString(" OVER ")
		writeWindowSpec(sb, f.Over)
	}
}

func writeCaseExpr(sb *strings.Builder, c *ast.CaseExpr) {
	sb.WriteString("CASE")
	if c.Scrutinee != nil {
		sb.WriteString(" ")
		writeExpr(sb, c.Scrutinee)
	}
	for _, wt := range c.WhenThens {
		sb.WriteString(" WHEN ")
		writeExpr(sb, wt.When)
		sb.WriteString(" THEN ")
		writeExpr(sb, wt.Then)
	}
	if c.Else != nil {
		sb.WriteString(" ELSE ")
		writeExpr(sb, c.Else)
	}
	sb.WriteString(" END")
}

func writeColumnRef(sb *strings.Builder, c *ast.ColumnRef) {
	if c.Table != "" {
		sb.WriteString(c.Table)
		sb.WriteString(".")
	}
	sb.WriteString(c.Column)
}

func writeDataType(sb *strings.Builder, dt *ast.DataType) {
	sb.WriteString(dt.Name)
	if len(dt.Args) > 0 {
		sb.WriteString("(")
		for i, a := range dt.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(a))
		}
		sb.WriteString(")")
	}
}
