package ast

import "strings"

// TableKey is the closed set of table-level key and constraint
// specifications, used both inside CREATE TABLE and stand-alone by the key
// specification entry point.
type TableKey interface {
	String() string
	isTableKey()
}

// PrimaryKey is "PRIMARY KEY (cols)".
type PrimaryKey struct {
	Columns []Column
}

func (k *PrimaryKey) String() string {
	return "PRIMARY KEY (" + joinStrings(k.Columns) + ")"
}
func (k *PrimaryKey) isTableKey() {}

// UniqueKey is "UNIQUE KEY [name] (cols)".
type UniqueKey struct {
	Name    string
	Columns []Column
}

func (k *UniqueKey) String() string {
	var sb strings.Builder
	sb.WriteString("UNIQUE KEY ")
	if k.Name != "" {
		sb.WriteString(EscapeIdent(k.Name))
		sb.WriteString(" ")
	}
	sb.WriteString("(")
	sb.WriteString(joinStrings(k.Columns))
	sb.WriteString(")")
	return sb.String()
}
func (k *UniqueKey) isTableKey() {}

// Key is a plain secondary index, "KEY [name] (cols)".
type Key struct {
	Name    string
	Columns []Column
}

func (k *Key) String() string {
	var sb strings.Builder
	sb.WriteString("KEY ")
	if k.Name != "" {
		sb.WriteString(EscapeIdent(k.Name))
		sb.WriteString(" ")
	}
	sb.WriteString("(")
	sb.WriteString(joinStrings(k.Columns))
	sb.WriteString(")")
	return sb.String()
}
func (k *Key) isTableKey() {}

// ForeignKey is "[CONSTRAINT name] FOREIGN KEY (cols) REFERENCES table
// (cols)".
type ForeignKey struct {
	Name          string
	Columns       []Column
	TargetTable   Table
	TargetColumns []Column
}

func (k *ForeignKey) String() string {
	var sb strings.Builder
	if k.Name != "" {
		sb.WriteString("CONSTRAINT ")
		sb.WriteString(EscapeIdent(k.Name))
		sb.WriteString(" ")
	}
	sb.WriteString("FOREIGN KEY (")
	sb.WriteString(joinStrings(k.Columns))
	sb.WriteString(") REFERENCES ")
	sb.WriteString(k.TargetTable.String())
	sb.WriteString(" (")
	sb.WriteString(joinStrings(k.TargetColumns))
	sb.WriteString(")")
	return sb.String()
}
func (k *ForeignKey) isTableKey() {}
