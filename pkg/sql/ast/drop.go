package ast

import "strings"

// DropTableStatement is "DROP TABLE [IF EXISTS] t [, ...]".
type DropTableStatement struct {
	Tables   []Table
	IfExists bool
}

func (s *DropTableStatement) QueryType() string { return "DROP TABLE" }
func (s *DropTableStatement) isQuery()          {}

func (s *DropTableStatement) String() string {
	var sb strings.Builder
	sb.WriteString("DROP TABLE ")
	if s.IfExists {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(joinStrings(s.Tables))
	return sb.String()
}

// DropViewStatement is "DROP VIEW [IF EXISTS] v [, ...]".
type DropViewStatement struct {
	Views    []Table
	IfExists bool
}

func (s *DropViewStatement) QueryType() string { return "DROP VIEW" }
func (s *DropViewStatement) isQuery()          {}

func (s *DropViewStatement) String() string {
	var sb strings.Builder
	sb.WriteString("DROP VIEW ")
	if s.IfExists {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(joinStrings(s.Views))
	return sb.String()
}
