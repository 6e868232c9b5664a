package ast

import "strings"

// AlterTableDefinition is the closed set of ALTER TABLE actions.
type AlterTableDefinition interface {
	String() string
	isAlterDefinition()
}

// AddColumn is "ADD COLUMN <spec>".
type AddColumn struct {
	Spec ColumnSpec
}

func (a *AddColumn) String() string     { return "ADD COLUMN " + a.Spec.String() }
func (a *AddColumn) isAlterDefinition() {}

// AddKey is "ADD <key specification>".
type AddKey struct {
	Key TableKey
}

func (a *AddKey) String() string     { return "ADD " + a.Key.String() }
func (a *AddKey) isAlterDefinition() {}

type DropBehavior int

const (
	DropDefault DropBehavior = iota
	DropCascade
	DropRestrict
)

// DropColumn is "DROP COLUMN name [CASCADE|RESTRICT]".
type DropColumn struct {
	Column   Column
	Behavior DropBehavior
}

func (a *DropColumn) String() string {
	s := "DROP COLUMN " + a.Column.String()
	switch a.Behavior {
	case DropCascade:
		return s + " CASCADE"
	case DropRestrict:
		return s + " RESTRICT"
	default:
		return s
	}
}
func (a *DropColumn) isAlterDefinition() {}

// ChangeColumn is "CHANGE COLUMN old <new spec>". MODIFY COLUMN parses to
// the same action with the old name equal to the spec's name.
type ChangeColumn struct {
	Column Column
	Spec   ColumnSpec
}

func (a *ChangeColumn) String() string {
	return "CHANGE COLUMN " + a.Column.String() + " " + a.Spec.String()
}
func (a *ChangeColumn) isAlterDefinition() {}

// AlterTableStatement is an ALTER TABLE with one or more actions.
type AlterTableStatement struct {
	Table       Table
	Definitions []AlterTableDefinition
}

func (s *AlterTableStatement) QueryType() string { return "ALTER TABLE" }
func (s *AlterTableStatement) isQuery()          {}

func (s *AlterTableStatement) String() string {
	var sb strings.Builder
	sb.WriteString("ALTER TABLE ")
	sb.WriteString(s.Table.String())
	sb.WriteString(" ")
	sb.WriteString(joinStrings(s.Definitions))
	return sb.String()
}
