package ast

import "strings"

type CompoundOp int

const (
	Union CompoundOp = iota
	UnionAll
	Intersect
	Except
)

func (op CompoundOp) String() string {
	switch op {
	case UnionAll:
		return "UNION ALL"
	case Intersect:
		return "INTERSECT"
	case Except:
		return "EXCEPT"
	default:
		return "UNION"
	}
}

// CompoundPart is one operator-joined arm of a compound select.
type CompoundPart struct {
	Op     CompoundOp
	Select *SelectStatement
}

// CompoundSelectStatement is two or more selects joined by UNION, INTERSECT
// or EXCEPT, with ORDER BY and LIMIT applying to the whole compound.
type CompoundSelectStatement struct {
	First *SelectStatement
	Rest  []CompoundPart
	Order *OrderClause
	Limit *LimitClause
}

func (s *CompoundSelectStatement) QueryType() string { return "SELECT" }
func (s *CompoundSelectStatement) isQuery()          {}

func (s *CompoundSelectStatement) String() string {
	var sb strings.Builder
	sb.WriteString(s.First.String())
	for _, part := range s.Rest {
		sb.WriteString(" ")
		sb.WriteString(part.Op.String())
		sb.WriteString(" ")
		sb.WriteString(part.Select.String())
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
