package ast

// UseStatement is "USE database".
type UseStatement struct {
	Database string
}

func (s *UseStatement) QueryType() string { return "USE" }
func (s *UseStatement) isQuery()          {}

func (s *UseStatement) String() string {
	return "USE " + EscapeIdent(s.Database)
}
