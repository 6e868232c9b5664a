package ast

import (
	"strconv"
	"strings"
)

type LiteralKind int

const (
	LitNull LiteralKind = iota
	LitInt
	LitFloat
	LitString
	LitBool
	LitPlaceholder
)

// Literal is a constant value appearing in a statement. Exactly one of the
// payload fields is meaningful, selected by Kind.
type Literal struct {
	Kind  LiteralKind
	Int   int64
	Float float64
	Str   string
	Bool  bool
}

func NullLiteral() Literal            { return Literal{Kind: LitNull} }
func IntLiteral(v int64) Literal      { return Literal{Kind: LitInt, Int: v} }
func FloatLiteral(v float64) Literal  { return Literal{Kind: LitFloat, Float: v} }
func StringLiteral(s string) Literal  { return Literal{Kind: LitString, Str: s} }
func BoolLiteral(b bool) Literal      { return Literal{Kind: LitBool, Bool: b} }
func PlaceholderLiteral() Literal     { return Literal{Kind: LitPlaceholder} }

func (l Literal) String() string {
	switch l.Kind {
	case LitInt:
		return strconv.FormatInt(l.Int, 10)
	case LitFloat:
		return strconv.FormatFloat(l.Float, 'f', -1, 64)
	case LitString:
		return quoteString(l.Str)
	case LitBool:
		if l.Bool {
			return "TRUE"
		}
		return "FALSE"
	case LitPlaceholder:
		return "?"
	default:
		return "NULL"
	}
}

// quoteString renders a string literal single-quoted, escaping backslashes
// and embedded quotes so the result re-lexes to the same value.
func quoteString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", "''")
	return "'" + s + "'"
}
