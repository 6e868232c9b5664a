package ast

type ShowKind int

const (
	ShowTables ShowKind = iota
	ShowDatabases
)

// ShowStatement is "SHOW [FULL] TABLES" or "SHOW DATABASES". Full only
// applies to SHOW TABLES.
type ShowStatement struct {
	Kind ShowKind
	Full bool
}

func (s *ShowStatement) QueryType() string { return "SHOW" }
func (s *ShowStatement) isQuery()          {}

func (s *ShowStatement) String() string {
	switch {
	case s.Kind == ShowDatabases:
		return "SHOW DATABASES"
	case s.Full:
		return "SHOW FULL TABLES"
	default:
		return "SHOW TABLES"
	}
}
