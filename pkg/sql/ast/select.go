package ast

import "strings"

// SelectField is one projected expression with an optional alias.
type SelectField struct {
	Expr  Expression
	Alias string
}

func (f SelectField) String() string {
	if f.Alias != "" {
		return f.Expr.String() + " AS " + EscapeIdent(f.Alias)
	}
	return f.Expr.String()
}

type JoinType int

const (
	InnerJoin JoinType = iota
	LeftJoin
	RightJoin
)

func (j JoinType) String() string {
	switch j {
	case LeftJoin:
		return "LEFT JOIN"
	case RightJoin:
		return "RIGHT JOIN"
	default:
		return "INNER JOIN"
	}
}

// Join is a single join clause with its ON condition.
type Join struct {
	Type  JoinType
	Table Table
	On    Expression
}

func (j Join) String() string {
	return j.Type.String() + " " + j.Table.String() + " ON " + j.On.String()
}

// OrderField is one ORDER BY column with its direction. Direction always
// renders explicitly.
type OrderField struct {
	Col  Column
	Desc bool
}

func (o OrderField) String() string {
	if o.Desc {
		return o.Col.String() + " DESC"
	}
	return o.Col.String() + " ASC"
}

// OrderClause is the ORDER BY clause.
type OrderClause struct {
	Fields []OrderField
}

func (o *OrderClause) String() string {
	return "ORDER BY " + joinStrings(o.Fields)
}

// LimitClause is LIMIT with an optional OFFSET. The values are literals so
// placeholders round-trip.
type LimitClause struct {
	Limit  Literal
	Offset *Literal
}

func (l *LimitClause) String() string {
	s := "LIMIT " + l.Limit.String()
	if l.Offset != nil {
		s += " OFFSET " + l.Offset.String()
	}
	return s
}

// SelectStatement is a single (non-compound) SELECT.
type SelectStatement struct {
	Distinct bool
	Fields   []SelectField
	Tables   []Table
	Joins    []Join
	Where    Expression
	GroupBy  []Column
	Having   Expression
	Order    *OrderClause
	Limit    *LimitClause
}

func (s *SelectStatement) QueryType() string { return "SELECT" }
func (s *SelectStatement) isQuery()          {}

func (s *SelectStatement) String() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	if s.Distinct {
		sb.WriteString("DISTINCT ")
	}
	sb.WriteString(joinStrings(s.Fields))
	if len(s.Tables) > 0 {
		sb.WriteString(" FROM ")
		sb.WriteString(joinStrings(s.Tables))
	}
	for _, j := range s.Joins {
		sb.WriteString(" ")
		sb.WriteString(j.String())
	}
	if s.Where != nil {
		sb.WriteString(" WHERE ")
		sb.WriteString(s.Where.String())
	}
	if len(s.GroupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(joinStrings(s.GroupBy))
	}
	if s.Having != nil {
		sb.WriteString(" HAVING ")
		sb.WriteString(s.Having.String())
	}
	if s.Order != nil {
		sb.WriteString(" ")
		sb.WriteString(s.Order.String())
	}
	if s.Limit != nil {
		sb.WriteString(" ")
		sb.WriteString(s.Limit.String())
	}
	return sb.String()
}
