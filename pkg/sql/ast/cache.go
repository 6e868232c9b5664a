package ast

// CreateCacheStatement is "CREATE CACHE [name] FROM <select>": it asks a
// caching layer to materialize the inner query. The name is optional.
type CreateCacheStatement struct {
	Name  string
	Inner *SelectStatement
}

func (s *CreateCacheStatement) QueryType() string { return "CREATE CACHE" }
func (s *CreateCacheStatement) isQuery()          {}

func (s *CreateCacheStatement) String() string {
	if s.Name != "" {
		return "CREATE CACHE " + EscapeIdent(s.Name) + " FROM " + s.Inner.String()
	}
	return "CREATE CACHE FROM " + s.Inner.String()
}

// DropCacheStatement removes a named cache.
type DropCacheStatement struct {
	Name string
}

func (s *DropCacheStatement) QueryType() string { return "DROP CACHE" }
func (s *DropCacheStatement) isQuery()          {}

func (s *DropCacheStatement) String() string {
	return "DROP CACHE " + EscapeIdent(s.Name)
}
