package printer

import (
	"strings"

	"github.com/go-sqlfront/sqlfront/ast"
)

func writeTableRef(sb *strings.Builder, ref ast.TableRef) {
	switch t := ref.(type) {
	case *ast.BaseTableRef:
		if t.Schema != "" {
			sb.WriteString(t.Schema)
			sb.WriteString(".")
		}
		sb.WriteString(t.Table)
		if t.Alias != "" {
			sb.WriteString(" AS ")
			sb.WriteString(t.Alias)
		}
	case *ast.DerivedTableRef:
		sb.WriteString("(")
		writeSelect(sb, t.Query)
		sb.WriteString(")")
		if t.Alias != "" {
			sb.WriteString(" AS ")
			sb.WriteString(t.Alias)
		}
	case *ast.JoinRef:
		writeJoin(sb, t.Join)
	}
}

func writeJoin(sb *strings.Builder, j *ast.Join) {
	writeTableRef(sb, j.Left)
	sb.WriteString(" ")
	if j.Natural {
		sb.WriteString("NATURAL ")
	}
	switch j.Type {
	case ast.JoinLeft:
		sb.WriteString("LEFT JOIN ")
	case ast.JoinRight:
		sb.WriteString("RIGHT JOIN ")
	case ast.JoinFull:
		sb.WriteString("FULL JOIN ")
	case ast.JoinCross:
		sb.WriteString("CROSS JOIN ")
	default:
		sb.WriteString("JOIN ")
	}
	writeTableRef(sb, j.Right)
	if j.On != nil {
		sb.WriteString(" ON ")
		writeExpr(sb, j.On)
	} else if len(j.Using) > 0 {
		sb.WriteString(" USING (")
		writeIdentList(sb, j.Using)
		sb.WriteString(")")
	}
}

func writeWhere(sb *strings.Builder, w *ast.Where) {
	sb.WriteString(" WHERE ")
	writeExpr(sb, w.Condition)
}

func writeGroupBy(sb *strings.Builder, g *ast.GroupBy) {
	sb.WriteString(" GROUP BY ")
	for i, c := range g.Columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeColumnRef(sb, c)
	}
	if g.Having != nil {
		sb.WriteString(" HAVING ")
		writeExpr(sb, g.Having)
	}
}

func writeOrderBy(sb *strings.Builder, items []*ast.OrderByItem) {
	sb.WriteString(" ORDER BY ")
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeColumnRef(sb, item.Column)
		if item.Descending {
			sb.WriteString(" DESC")
		}
		switch item.Nulls {
		case ast.NullsFirst:
			sb.WriteString(" NULLS FIRST")
		case ast.NullsLast:
			sb.WriteString(" NULLS LAST")
		}
	}
}

func writeWindowSpec(sb *strings.Builder, w *ast.WindowSpec) {
	if w.Name != "" {
		sb.WriteString(w.Name)
		return
	}
	sb.WriteString("(")
	wrote := false
	if len(w.PartitionBy) > 0 {
		sb.WriteString("PARTITION BY ")
		for i, c := range w.PartitionBy {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeColumnRef(sb, c)
		}
		wrote = true
	}
	if len(w.OrderBy) > 0 {
		if wrote {
			sb.WriteString(" ")
		}
		sb.WriteString("ORDER BY ")
		for i, item := range w.OrderBy {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeColumnRef(sb, item.Column)
			if item.Descending {
				sb.WriteString(" DESC")
			}
			switch item.Nulls {
			case ast.NullsFirst:
				sb.WriteString(" NULLS FIRST")
			case ast.NullsLast:
				sb.WriteString(" NULLS LAST")
			}
		}
		wrote = true
	}
	if w.Frame != nil {
		if wrote {
			sb.WriteString(" ")
		}
		writeFrame(sb, w.Frame)
	}
	sb.WriteString(")")
}

func writeFrame(sb *strings.Builder, f *ast.Frame) {
	switch f.Type {
	case ast.FrameRange:
		sb.WriteString("RANGE ")
	case ast.FrameGroups:
		sb.WriteString("GROUPS ")
	default:
		sb.WriteString("ROWS ")
	}
	if f.End != nil {
		sb.WriteString("BETWEEN ")
		writeBound(sb, f.Start)
		sb.WriteString(" AND ")
		writeBound(sb, f.End)
	} else {
		writeBound(sb, f.Start)
	}
	switch f.Exclude {
	case ast.ExcludeCurrentRow:
		sb.WriteString(" EXCLUDE CURRENT ROW")
	case ast.ExcludeGroup:
		sb.WriteString(" EXCLUDE GROUP")
	case ast.ExcludeTies:
		sb.WriteString(" EXCLUDE TIES")
	case ast.ExcludeNoOthers:
		sb.WriteString(" EXCLUDE NO OTHERS")
	}
}

func writeBound(sb *strings.Builder, b *ast.Bound) {
	switch b.Type {
	case ast.BoundCurrentRow:
		sb.WriteString("CURRENT ROW")
	case ast.BoundUnboundedPreceding:
		sb.WriteString("UNBOUNDED PRECEDING")
	case ast.BoundUnboundedFollowing:
		sb.WriteString("UNBOUNDED FOLLOWING")
	case ast.BoundPreceding:
		writeExpr(sb, b.Offset)
		sb.WriteString(" PRECEDING")
	case ast.BoundFollowing:
		writeExpr(sb, b.Offset)
		sb.WriteString(" FOLLOWING")
	}
}
