package ast

import "strings"

// Assignment is "column = expression", used by UPDATE and by
// ON DUPLICATE KEY UPDATE.
type Assignment struct {
	Col   Column
	Value Expression
}

func (a Assignment) String() string {
	return a.Col.String() + " = " + a.Value.String()
}

// InsertStatement is an INSERT with one or more value rows. Fields is nil
// when the statement names no column list.
type InsertStatement struct {
	Table       Table
	Fields      []Column
	Data        [][]Literal
	Ignore      bool
	OnDuplicate []Assignment
}

func (s *InsertStatement) QueryType() string { return "INSERT" }
func (s *InsertStatement) isQuery()          {}

func (s *InsertStatement) String() string {
	var sb strings.Builder
	if s.Ignore {
		sb.WriteString("INSERT IGNORE INTO ")
	} else {
		sb.WriteString("INSERT INTO ")
	}
	sb.WriteString(s.Table.String())
	if len(s.Fields) > 0 {
		sb.WriteString(" (")
		sb.WriteString(joinStrings(s.Fields))
		sb.WriteString(")")
	}
	sb.WriteString(" VALUES ")
	for i, row := range s.Data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		sb.WriteString(joinStrings(row))
		sb.WriteString(")")
	}
	if len(s.OnDuplicate) > 0 {
		sb.WriteString(" ON DUPLICATE KEY UPDATE ")
		sb.WriteString(joinStrings(s.OnDuplicate))
	}
	return sb.String()
}
