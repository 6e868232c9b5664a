// Package ast defines the typed representation of parsed SQL statements and
// their canonical textual form. Rendering is dialect-independent: identifiers
// are always backtick-quoted, keywords uppercase, lists comma-space separated
// and every binary operator application parenthesized. The same AST value
// always renders to the same string regardless of which dialect produced it.
package ast

import "strings"

// EscapeIdent renders an identifier in the canonical backtick-quoted form.
// Backticks inside the identifier are escaped by doubling.
func EscapeIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// Table is a table reference with an optional alias.
type Table struct {
	Name  string
	Alias string
}

func (t Table) String() string {
	if t.Alias != "" {
		return EscapeIdent(t.Name) + " AS " + EscapeIdent(t.Alias)
	}
	return EscapeIdent(t.Name)
}

// Column is a column reference, optionally qualified by a table name or
// alias.
type Column struct {
	Table string
	Name  string
}

func (c Column) String() string {
	if c.Table != "" {
		return EscapeIdent(c.Table) + "." + EscapeIdent(c.Name)
	}
	return EscapeIdent(c.Name)
}

// joinStrings renders a list of Stringers with the canonical ", " separator.
func joinStrings[T interface{ String() string }](items []T) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, ", ")
}
