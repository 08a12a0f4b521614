package ast

// BaseTableRef references a table by name, with an optional schema
// qualifier and an optional alias.
type BaseTableRef struct {
	Position Position
	Schema   string
	Table    string
	Alias    string
}

func (b *BaseTableRef) Pos() Position   { return b.Position }
func (b *BaseTableRef) tableRefNode()   {}

// DerivedTableRef wraps a subquery used as a table reference, optionally
// aliased.
type DerivedTableRef struct {
	Position Position
	Query    *Select
	Alias    string
}

func (d *DerivedTableRef) Pos() Position { return d.Position }
func (d *DerivedTableRef) tableRefNode() {}

// JoinRef wraps a Join node so it can appear anywhere a TableRef can.
type JoinRef struct {
	Position Position
	Join     *Join
}

func (j *JoinRef) Pos() Position { return j.Position }
func (j *JoinRef) tableRefNode() {}

// JoinType enumerates the supported join kinds.
type JoinType int

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
)

// Join represents a JOIN between two table references. Invariant
// I5/T10: when Natural is true, or Type is JoinCross, neither On nor
// Using is populated.
type Join struct {
	Position Position
	Type     JoinType
	Natural  bool
	Left     TableRef
	Right    TableRef
	On       Expression // mutually exclusive with Using
	Using    []string   // column names; mutually exclusive with On
}

func (j *Join) Pos() Position { return j.Position }
