// Package dialect defines the SQL dialects the parser understands. A Dialect
// is a plain value threaded through lexing and parsing; it selects quoting
// characters and minor grammar variants and carries no state of its own.
package dialect

import "fmt"

type Dialect int

const (
	MySQL Dialect = iota
	PostgreSQL
)

func (d Dialect) String() string {
	switch d {
	case MySQL:
		return "mysql"
	case PostgreSQL:
		return "postgresql"
	default:
		return "unknown"
	}
}

// FromString resolves a dialect name as given on a command line or in a
// config file.
func FromString(s string) (Dialect, error) {
	switch s {
	case "mysql":
		return MySQL, nil
	case "postgresql", "postgres":
		return PostgreSQL, nil
	default:
		return MySQL, fmt.Errorf("unknown dialect: %q", s)
	}
}

// IsIdentQuote reports whether ch opens a quoted identifier in this dialect.
// MySQL quotes identifiers with backticks, PostgreSQL with double quotes.
func (d Dialect) IsIdentQuote(ch byte) bool {
	if d == PostgreSQL {
		return ch == '"'
	}
	return ch == '`'
}

// IsStringQuote reports whether ch opens a string literal in this dialect.
// Single quotes work everywhere; MySQL additionally accepts double quotes.
func (d Dialect) IsStringQuote(ch byte) bool {
	if ch == '\'' {
		return true
	}
	return d == MySQL && ch == '"'
}
