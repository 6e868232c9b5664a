package ast

import "strings"

type VariableScope int

const (
	NoScope VariableScope = iota
	GlobalScope
	SessionScope
)

// SetVariable is one "var = value" assignment in a SET statement.
type SetVariable struct {
	Scope VariableScope
	Name  string
	Value Literal
}

func (v SetVariable) String() string {
	var sb strings.Builder
	switch v.Scope {
	case GlobalScope:
		sb.WriteString("GLOBAL ")
	case SessionScope:
		sb.WriteString("SESSION ")
	}
	sb.WriteString(EscapeIdent(v.Name))
	sb.WriteString(" = ")
	sb.WriteString(v.Value.String())
	return sb.String()
}

// SetStatement is "SET [scope] var = value [, ...]".
type SetStatement struct {
	Variables []SetVariable
}

func (s *SetStatement) QueryType() string { return "SET" }
func (s *SetStatement) isQuery()          {}

func (s *SetStatement) String() string {
	return "SET " + joinStrings(s.Variables)
}
