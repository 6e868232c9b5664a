package parser

import (
	"fmt"

	"sqlcanon/pkg/sql/ast"
	"sqlcanon/pkg/sql/lexer"
)

// parseCompoundSelect parses two or more selects joined by UNION, INTERSECT
// or EXCEPT. A plain select is rejected so the dispatcher falls through to
// the simple-select alternative.
func parseCompoundSelect(l *lexer.Lexer) (*ast.CompoundSelectStatement, error) {
	first, err := parseSelectBody(l)
	if err != nil {
		return nil, err
	}

	var rest []ast.CompoundPart
	for {
		op, ok := parseCompoundOp(l)
		if !ok {
			break
		}
		sel, err := parseSelectBody(l)
		if err != nil {
			return nil, err
		}
		rest = append(rest, ast.CompoundPart{Op: op, Select: sel})
	}

	if len(rest) == 0 {
		return nil, fmt.Errorf("expected UNION, INTERSECT or EXCEPT")
	}

	order, limit, err := parseOrderLimit(l)
	if err != nil {
		return nil, err
	}

	return &ast.CompoundSelectStatement{First: first, Rest: rest, Order: order, Limit: limit}, nil
}

func parseCompoundOp(l *lexer.Lexer) (ast.CompoundOp, bool) {
	token := l.NextToken()
	switch token.Type {
	case lexer.UNION:
		if consumeIf(l, lexer.ALL) {
			return ast.UnionAll, true
		}
		consumeIf(l, lexer.DISTINCT)
		return ast.Union, true
	case lexer.INTERSECT:
		return ast.Intersect, true
	case lexer.EXCEPT:
		return ast.Except, true
	default:
		l.SetPos(token.Position)
		return ast.Union, false
	}
}
