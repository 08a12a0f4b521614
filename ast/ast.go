// Package ast defines the typed, tree-structured abstract syntax tree
// produced by the parser (spec §3.2). Nodes are created only during
// parsing and are immutable once the parser returns; ownership is
// tree-shaped with no back-references and no cycles.
package ast

// Position is a 1-based source coordinate pointing at a node's first
// lexeme, mirroring lexer.Lexeme's Line/Column fields.
type Position struct {
	Line   int
	Column int
}

// Node is implemented by every AST node.
type Node interface {
	Pos() Position
}

// Statement is implemented by every top-level statement variant: Select,
// Insert, Update, Delete, Create, Alter, Drop, Truncate, Merge, and
// GrantRevoke — each an AST root candidate.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression variant. Heterogeneous
// lists of kinds that must share a slot — for example a Select's column
// list, which may hold column references, function calls, or arbitrary
// expressions — are typed as []Expression.
type Expression interface {
	Node
	expressionNode()
}

// TableRef is implemented by every table-reference variant: BaseTableRef,
// DerivedTableRef, and JoinRef.
type TableRef interface {
	Node
	tableRefNode()
}

// Select represents a SELECT statement (spec §4.4). Invariant I1: Columns
// has at least one element and From has at least one element.
type Select struct {
	Position   Position
	With       []*CommonTableExpr
	Distinct   bool
	Columns    []SelectItem
	From       []TableRef
	Where      *Where
	GroupBy    *GroupBy
	OrderBy    []*OrderByItem
	Limit      Expression
	Offset     Expression
}

func (s *Select) Pos() Position { return s.Position }
func (s *Select) statementNode() {}

// SelectItem is one entry in a SELECT's column list: an expression plus
// an optional alias. Per spec §4.4.2, the alias is populated only when
// Expr is a *ColumnRef — aliasing any other expression kind is a parse
// error, not a representable SelectItem.
type SelectItem struct {
	Position Position
	Expr     Expression
	Alias    string
}

// CommonTableExpr is one WITH-clause entry. The core stores these (spec
// §6: "may be unused by downstream") without interpreting them further.
type CommonTableExpr struct {
	Position Position
	Name     string
	Query    *Select
}

func (c *CommonTableExpr) Pos() Position { return c.Position }

// Insert represents an INSERT statement (spec §4.4).
type Insert struct {
	Position     Position
	TableName    string
	Columns      []string
	Values       [][]Expression
	Select       *Select
	OnDuplicate  []*Assignment
}

func (i *Insert) Pos() Position { return i.Position }
func (i *Insert) statementNode() {}

// Assignment is a `column = expression` pair, used by UPDATE and by
// INSERT's ON DUPLICATE KEY UPDATE clause.
type Assignment struct {
	Position Position
	Column   string
	Value    Expression
}

func (a *Assignment) Pos() Position { return a.Position }

// Update represents an UPDATE statement (spec §4.4).
type Update struct {
	Position    Position
	Table       TableRef
	Assignments []*Assignment
	Where       *Where
	OrderBy     []*OrderByItem
	Limit       Expression
}

func (u *Update) Pos() Position { return u.Position }
func (u *Update) statementNode() {}

// Delete represents a DELETE statement (spec §4.4).
type Delete struct {
	Position Position
	Table    TableRef
	Using    []TableRef
	Where    *Where
	OrderBy  []*OrderByItem
	Limit    Expression
}

func (d *Delete) Pos() Position { return d.Position }
func (d *Delete) statementNode() {}
