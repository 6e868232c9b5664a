package ast

// ExplainStatement wraps any other statement, "EXPLAIN <statement>".
type ExplainStatement struct {
	Inner Query
}

func (s *ExplainStatement) QueryType() string { return "EXPLAIN" }
func (s *ExplainStatement) isQuery()          {}

func (s *ExplainStatement) String() string {
	return "EXPLAIN " + s.Inner.String()
}
