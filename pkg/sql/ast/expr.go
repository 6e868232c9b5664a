package ast

import "strings"

// Expression is the closed set of expression forms appearing in projections,
// WHERE/HAVING clauses, join conditions and update assignments.
type Expression interface {
	String() string
	isExpression()
}

type BinaryOp int

const (
	OpEq BinaryOp = iota
	OpNotEq
	OpLess
	OpLessEq
	OpGreater
	OpGreaterEq
	OpLike
	OpNotLike
	OpIs
	OpIsNot
	OpAnd
	OpOr
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
)

func (op BinaryOp) String() string {
	switch op {
	case OpEq:
		return "="
	case OpNotEq:
		return "!="
	case OpLess:
		return "<"
	case OpLessEq:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEq:
		return ">="
	case OpLike:
		return "LIKE"
	case OpNotLike:
		return "NOT LIKE"
	case OpIs:
		return "IS"
	case OpIsNot:
		return "IS NOT"
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	default:
		return "?"
	}
}

// ColumnExpr is a bare column reference.
type ColumnExpr struct {
	Col Column
}

func (e *ColumnExpr) String() string { return e.Col.String() }
func (e *ColumnExpr) isExpression() {}

// LiteralExpr is a constant.
type LiteralExpr struct {
	Lit Literal
}

func (e *LiteralExpr) String() string { return e.Lit.String() }
func (e *LiteralExpr) isExpression() {}

// StarExpr is the "*" projection.
type StarExpr struct{}

func (e *StarExpr) String() string { return "*" }
func (e *StarExpr) isExpression() {}

// BinaryExpr applies a binary operator. Every application renders
// parenthesized, which makes the canonical form unambiguous without
// precedence knowledge.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (e *BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}
func (e *BinaryExpr) isExpression() {}

// NotExpr is a logical negation.
type NotExpr struct {
	Expr Expression
}

func (e *NotExpr) String() string { return "NOT " + e.Expr.String() }
func (e *NotExpr) isExpression() {}

// InExpr is "expr [NOT] IN (list)".
type InExpr struct {
	Left    Expression
	Negated bool
	List    []Expression
}

func (e *InExpr) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(e.Left.String())
	if e.Negated {
		sb.WriteString(" NOT IN (")
	} else {
		sb.WriteString(" IN (")
	}
	sb.WriteString(joinStrings(e.List))
	sb.WriteString("))")
	return sb.String()
}
func (e *InExpr) isExpression() {}

// BetweenExpr is "expr [NOT] BETWEEN low AND high".
type BetweenExpr struct {
	Expr    Expression
	Negated bool
	Low     Expression
	High    Expression
}

func (e *BetweenExpr) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(e.Expr.String())
	if e.Negated {
		sb.WriteString(" NOT BETWEEN ")
	} else {
		sb.WriteString(" BETWEEN ")
	}
	sb.WriteString(e.Low.String())
	sb.WriteString(" AND ")
	sb.WriteString(e.High.String())
	sb.WriteString(")")
	return sb.String()
}
func (e *BetweenExpr) isExpression() {}

// FuncExpr is a function call. Star marks calls of the form f(*); function
// names render exactly as written in the input.
type FuncExpr struct {
	Name     string
	Star     bool
	Distinct bool
	Args     []Expression
}

func (e *FuncExpr) String() string {
	var sb strings.Builder
	sb.WriteString(e.Name)
	sb.WriteString("(")
	switch {
	case e.Star:
		sb.WriteString("*")
	case e.Distinct:
		sb.WriteString("DISTINCT ")
		sb.WriteString(joinStrings(e.Args))
	default:
		sb.WriteString(joinStrings(e.Args))
	}
	sb.WriteString(")")
	return sb.String()
}
func (e *FuncExpr) isExpression() {}
