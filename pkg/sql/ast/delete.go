package ast

// DeleteStatement is "DELETE FROM table [WHERE expr]".
type DeleteStatement struct {
	Table Table
	Where Expression
}

func (s *DeleteStatement) QueryType() string { return "DELETE" }
func (s *DeleteStatement) isQuery()          {}

func (s *DeleteStatement) String() string {
	out := "DELETE FROM " + s.Table.String()
	if s.Where != nil {
		out += " WHERE " + s.Where.String()
	}
	return out
}
