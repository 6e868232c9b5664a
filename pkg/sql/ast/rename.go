package ast

// RenameOp is one "from TO to" pair.
type RenameOp struct {
	From Table
	To   Table
}

func (r RenameOp) String() string {
	return r.From.String() + " TO " + r.To.String()
}

// RenameTableStatement is "RENAME TABLE a TO b [, c TO d ...]".
type RenameTableStatement struct {
	Ops []RenameOp
}

func (s *RenameTableStatement) QueryType() string { return "RENAME" }
func (s *RenameTableStatement) isQuery()          {}

func (s *RenameTableStatement) String() string {
	return "RENAME TABLE " + joinStrings(s.Ops)
}
