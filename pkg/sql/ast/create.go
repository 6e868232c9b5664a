package ast

import (
	"strconv"
	"strings"
)

// SQLType is a column type with optional size arguments, e.g. VARCHAR(255)
// or DECIMAL(10, 2). Name is stored uppercase.
type SQLType struct {
	Name  string
	Size  int
	Scale int
}

func (t SQLType) String() string {
	if t.Size == 0 {
		return t.Name
	}
	s := t.Name + "(" + strconv.Itoa(t.Size)
	if t.Scale != 0 {
		s += ", " + strconv.Itoa(t.Scale)
	}
	return s + ")"
}

type ConstraintKind int

const (
	NotNull ConstraintKind = iota
	Null
	AutoIncrement
	DefaultValue
	PrimaryKeyColumn
	UniqueColumn
)

// ColumnConstraint is one column-level constraint. Default carries the
// value only for DefaultValue constraints.
type ColumnConstraint struct {
	Kind    ConstraintKind
	Default Literal
}

func (c ColumnConstraint) String() string {
	switch c.Kind {
	case NotNull:
		return "NOT NULL"
	case Null:
		return "NULL"
	case AutoIncrement:
		return "AUTO_INCREMENT"
	case DefaultValue:
		return "DEFAULT " + c.Default.String()
	case PrimaryKeyColumn:
		return "PRIMARY KEY"
	case UniqueColumn:
		return "UNIQUE"
	default:
		return ""
	}
}

// ColumnSpec is one column definition in CREATE TABLE or ALTER TABLE.
type ColumnSpec struct {
	Column      Column
	Type        SQLType
	Constraints []ColumnConstraint
}

func (c ColumnSpec) String() string {
	var sb strings.Builder
	sb.WriteString(c.Column.String())
	sb.WriteString(" ")
	sb.WriteString(c.Type.String())
	for _, con := range c.Constraints {
		sb.WriteString(" ")
		sb.WriteString(con.String())
	}
	return sb.String()
}

// CreateTableStatement is a CREATE TABLE with column definitions and
// table-level keys.
type CreateTableStatement struct {
	Table       Table
	IfNotExists bool
	Fields      []ColumnSpec
	Keys        []TableKey
}

func (s *CreateTableStatement) QueryType() string { return "CREATE TABLE" }
func (s *CreateTableStatement) isQuery()          {}

func (s *CreateTableStatement) String() string {
	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	if s.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(s.Table.String())
	sb.WriteString(" (")
	sb.WriteString(joinStrings(s.Fields))
	for _, k := range s.Keys {
		sb.WriteString(", ")
		sb.WriteString(k.String())
	}
	sb.WriteString(")")
	return sb.String()
}
