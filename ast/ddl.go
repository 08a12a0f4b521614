package ast

// DataType is a column or cast target type name together with its
// optional size/precision arguments, e.g. VARCHAR(255) or DECIMAL(10,2).
type DataType struct {
	Position Position
	Name     string
	Args     []int
}

func (d *DataType) Pos() Position { return d.Position }

// ForeignKeyReference is the REFERENCES clause of a column or table
// constraint.
type ForeignKeyReference struct {
	Position Position
	Table    string
	Columns  []string
	OnDelete string // "", "CASCADE", "SET NULL", "RESTRICT", "NO ACTION"
	OnUpdate string
}

func (f *ForeignKeyReference) Pos() Position { return f.Position }

// ConstraintKind enumerates the kinds TableConstraint can carry.
type ConstraintKind int

const (
	ConstraintPrimaryKey ConstraintKind = iota
	ConstraintUnique
	ConstraintForeignKey
	ConstraintCheck
)

// TableConstraint is a table-level constraint inside a CREATE TABLE body.
type TableConstraint struct {
	Position   Position
	Name       string // optional CONSTRAINT name
	Kind       ConstraintKind
	Columns    []string   // PRIMARY KEY / UNIQUE / FOREIGN KEY
	Reference  *ForeignKeyReference // populated only for ConstraintForeignKey
	Check      Expression // populated only for ConstraintCheck
}

func (t *TableConstraint) Pos() Position { return t.Position }

// ColumnDef is one column definition inside a CREATE TABLE body.
type ColumnDef struct {
	Position      Position
	Name          string
	Type          *DataType
	NotNull       bool
	Default       Expression // nil if no DEFAULT clause
	PrimaryKey    bool       // inline PRIMARY KEY on the column itself
	Unique        bool
	AutoIncrement bool
	Reference     *ForeignKeyReference // inline REFERENCES on the column itself
}

func (c *ColumnDef) Pos() Position { return c.Position }

// TableOptions holds the MySQL-flavored trailing table options a CREATE
// TABLE statement may carry (spec SUPPLEMENT). Unset fields hold "" or 0.
type TableOptions struct {
	Engine        string
	AutoIncrement int
	Charset       string
	Collate       string
	Comment       string
	RowFormat     string
	KeyBlockSize  int
	MaxRows       int
	MinRows       int
	Tablespace    string
}

// CreateTableDef is the body of a CREATE TABLE statement.
type CreateTableDef struct {
	Position    Position
	IfNotExists bool
	Table       string
	Columns     []*ColumnDef
	Constraints []*TableConstraint
	Options     TableOptions
}

func (c *CreateTableDef) Pos() Position { return c.Position }

// CreateIndexDef is the body of a CREATE [UNIQUE] INDEX statement.
type CreateIndexDef struct {
	Position    Position
	IfNotExists bool
	Unique      bool
	Name        string
	Table       string
	Columns     []string
}

func (c *CreateIndexDef) Pos() Position { return c.Position }

// CreateViewDef is the body of a CREATE VIEW statement.
type CreateViewDef struct {
	Position    Position
	IfNotExists bool
	Name        string
	Columns     []string
	Query       *Select
}

func (c *CreateViewDef) Pos() Position { return c.Position }

// CreateKind discriminates Create's payload.
type CreateKind int

const (
	CreateTableKind CreateKind = iota
	CreateIndexKind
	CreateViewKind
	CreateTriggerKind
	CreateProcedureKind
)

// Create represents any CREATE statement. Exactly one of the Table/Index/
// View/Trigger/Procedure fields is populated, selected by Kind.
type Create struct {
	Position  Position
	Kind      CreateKind
	Table     *CreateTableDef
	Index     *CreateIndexDef
	View      *CreateViewDef
	Trigger   *CreateTrigger
	Procedure *CreateProcedure
}

func (c *Create) Pos() Position   { return c.Position }
func (c *Create) statementNode() {}

// CreateTrigger is the opaque body of a CREATE TRIGGER statement (spec
// SUPPLEMENT): the trigger's timing/event/table are parsed, but its
// action body is captured as raw token text rather than parsed into
// statements.
type CreateTrigger struct {
	Position Position
	Name     string
	Timing   string // "BEFORE", "AFTER", "INSTEAD OF"
	Event    string // "INSERT", "UPDATE", "DELETE"
	Table    string
	Body     string // lexeme texts between BEGIN and END, joined by single spaces
}

func (c *CreateTrigger) Pos() Position { return c.Position }

// CreateProcedure is the opaque body of a CREATE PROCEDURE statement (spec
// SUPPLEMENT), mirroring CreateTrigger's raw-body treatment.
type CreateProcedure struct {
	Position Position
	Name     string
	Params   []string
	Body     string // lexeme texts between BEGIN and END, joined by single spaces
}

func (c *CreateProcedure) Pos() Position { return c.Position }

// AlterActionKind enumerates the alteration a single AlterAction performs.
type AlterActionKind int

const (
	AlterAddColumn AlterActionKind = iota
	AlterDropColumn
	AlterModifyColumn
	AlterAddConstraint
	AlterDropConstraint
	AlterRenameTable
	AlterRenameColumn
)

// AlterAction is one clause of an ALTER TABLE statement; ALTER TABLE may
// carry several, comma-separated.
type AlterAction struct {
	Position   Position
	Kind       AlterActionKind
	Column     *ColumnDef       // AlterAddColumn, AlterModifyColumn
	ColumnName string           // AlterDropColumn, AlterRenameColumn (old name)
	NewName    string           // AlterRenameTable, AlterRenameColumn (new name)
	Constraint *TableConstraint // AlterAddConstraint
	ConstraintName string       // AlterDropConstraint
}

func (a *AlterAction) Pos() Position { return a.Position }

// Alter represents an ALTER TABLE statement.
type Alter struct {
	Position Position
	IfExists bool
	Only     bool
	Table    string
	Star     bool // trailing * after the table name (include child tables)
	Actions  []*AlterAction
}

func (a *Alter) Pos() Position   { return a.Position }
func (a *Alter) statementNode() {}

// DropKind enumerates the object kind a DROP statement targets.
type DropKind int

const (
	DropTableKind DropKind = iota
	DropIndexKind
	DropViewKind
	DropTriggerKind
)

// Drop represents a DROP statement.
type Drop struct {
	Position Position
	Kind     DropKind
	IfExists bool
	Names    []string
	Table    string // populated only for DropIndexKind: the ON <table> clause
	Cascade  bool
	Restrict bool
}

func (d *Drop) Pos() Position   { return d.Position }
func (d *Drop) statementNode() {}

// Truncate represents a TRUNCATE TABLE statement.
type Truncate struct {
	Position Position
	Table    string
}

func (t *Truncate) Pos() Position   { return t.Position }
func (t *Truncate) statementNode() {}

// MergeAction is one WHEN [NOT] MATCHED clause inside a MERGE statement.
type MergeAction struct {
	Position    Position
	Matched     bool // true for WHEN MATCHED, false for WHEN NOT MATCHED
	ByTarget    bool // WHEN MATCHED BY TARGET
	BySource    bool // WHEN MATCHED BY SOURCE / WHEN NOT MATCHED BY SOURCE
	Condition   Expression // optional additional AND condition; nil if absent
	UpdateSet   []*Assignment // populated for UPDATE actions
	InsertCols  []string      // populated for INSERT actions
	InsertVals  []Expression  // populated for INSERT actions
	Delete      bool          // true for a DELETE action
}

func (m *MergeAction) Pos() Position { return m.Position }

// Merge represents a MERGE INTO statement.
type Merge struct {
	Position Position
	Target   TableRef
	Source   TableRef
	On       Expression
	Actions  []*MergeAction
}

func (m *Merge) Pos() Position   { return m.Position }
func (m *Merge) statementNode() {}

// GrantRevokeKind discriminates a GrantRevoke statement's direction.
type GrantRevokeKind int

const (
	Grant GrantRevokeKind = iota
	Revoke
)

// GrantRevoke represents a GRANT or REVOKE statement.
type GrantRevoke struct {
	Position    Position
	Kind        GrantRevokeKind
	Privileges  []string // e.g. "SELECT", "INSERT", "ALL"
	ObjectType  string   // e.g. "TABLE", "VIEW"; "" if the grammar omitted it
	ObjectNames []string
	Grantees    []string
	WithGrant   bool // GRANT ... WITH GRANT OPTION
	Cascade     bool // REVOKE ... CASCADE
}

func (g *GrantRevoke) Pos() Position   { return g.Position }
func (g *GrantRevoke) statementNode() {}
