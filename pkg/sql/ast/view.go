package ast

import "strings"

// CreateViewStatement is "CREATE VIEW name [(cols)] AS <select>". The
// definition is either a SelectStatement or a CompoundSelectStatement.
type CreateViewStatement struct {
	Name       Table
	Fields     []Column
	Definition Query
}

func (s *CreateViewStatement) QueryType() string { return "CREATE VIEW" }
func (s *CreateViewStatement) isQuery()          {}

func (s *CreateViewStatement) String() string {
	var sb strings.Builder
	sb.WriteString("CREATE VIEW ")
	sb.WriteString(s.Name.String())
	if len(s.Fields) > 0 {
		sb.WriteString(" (")
		sb.WriteString(joinStrings(s.Fields))
		sb.WriteString(")")
	}
	sb.WriteString(" AS ")
	sb.WriteString(s.Definition.String())
	return sb.String()
}
