package ast

import "strings"

// UpdateStatement is "UPDATE table SET assignments [WHERE expr]".
// Assignments render unparenthesized; only the WHERE expression follows the
// full parenthesization rule.
type UpdateStatement struct {
	Table       Table
	Assignments []Assignment
	Where       Expression
}

func (s *UpdateStatement) QueryType() string { return "UPDATE" }
func (s *UpdateStatement) isQuery()          {}

func (s *UpdateStatement) String() string {
	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(s.Table.String())
	sb.WriteString(" SET ")
	sb.WriteString(joinStrings(s.Assignments))
	if s.Where != nil {
		sb.WriteString(" WHERE ")
		sb.WriteString(s.Where.String())
	}
	return sb.String()
}
