package parser

import (
	"fmt"

	"sqlcanon/pkg/sql/ast"
	"sqlcanon/pkg/sql/lexer"
)

// Expression grammar, loosest binding first:
//
//	or    := and (OR and)*
//	and   := not (AND not)*
//	not   := NOT not | cmp
//	cmp   := arith ((op|LIKE|IS|IN|BETWEEN) ...)?
//	arith := term ((+|-) term)*
//	term  := primary ((*|/|%) primary)*
//
// Each binary application renders parenthesized, so the canonical form does
// not depend on this precedence being known to readers.

func parseExpression(l *lexer.Lexer) (ast.Expression, error) {
	return parseOr(l)
}

func parseOr(l *lexer.Lexer) (ast.Expression, error) {
	left, err := parseAnd(l)
	if err != nil {
		return nil, err
	}
	for consumeIf(l, lexer.OR) {
		right, err := parseAnd(l)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: ast.OpOr, Left: left, Right: right}
	}
	return left, nil
}

func parseAnd(l *lexer.Lexer) (ast.Expression, error) {
	left, err := parseNot(l)
	if err != nil {
		return nil, err
	}
	for consumeIf(l, lexer.AND) {
		right, err := parseNot(l)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: ast.OpAnd, Left: left, Right: right}
	}
	return left, nil
}

func parseNot(l *lexer.Lexer) (ast.Expression, error) {
	if consumeIf(l, lexer.NOT) {
		inner, err := parseNot(l)
		if err != nil {
			return nil, err
		}
		return &ast.NotExpr{Expr: inner}, nil
	}
	return parseComparison(l)
}

func parseComparison(l *lexer.Lexer) (ast.Expression, error) {
	left, err := parseArith(l)
	if err != nil {
		return nil, err
	}

	token := l.NextToken()
	switch token.Type {
	case lexer.OPERATOR:
		op, err := comparisonOp(token.Value)
		if err != nil {
			return nil, err
		}
		right, err := parseArith(l)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Op: op, Left: left, Right: right}, nil

	case lexer.LIKE:
		right, err := parseArith(l)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Op: ast.OpLike, Left: left, Right: right}, nil

	case lexer.IS:
		op := ast.OpIs
		if consumeIf(l, lexer.NOT) {
			op = ast.OpIsNot
		}
		if err := expectSequence(l, lexer.NULL); err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Op: op, Left: left, Right: &ast.LiteralExpr{Lit: ast.NullLiteral()}}, nil

	case lexer.IN:
		return parseInList(l, left, false)

	case lexer.BETWEEN:
		return parseBetween(l, left, false)

	case lexer.NOT:
		next := l.NextToken()
		switch next.Type {
		case lexer.LIKE:
			right, err := parseArith(l)
			if err != nil {
				return nil, err
			}
			return &ast.BinaryExpr{Op: ast.OpNotLike, Left: left, Right: right}, nil
		case lexer.IN:
			return parseInList(l, left, true)
		case lexer.BETWEEN:
			return parseBetween(l, left, true)
		default:
			return nil, fmt.Errorf("expected LIKE, IN or BETWEEN after NOT, got %q", next.Value)
		}

	default:
		l.SetPos(token.Position)
		return left, nil
	}
}

func parseInList(l *lexer.Lexer, left ast.Expression, negated bool) (ast.Expression, error) {
	if err := expectSequence(l, lexer.LPAREN); err != nil {
		return nil, err
	}
	list, err := parseCommaList(l, parseArith)
	if err != nil {
		return nil, err
	}
	if err := expectSequence(l, lexer.RPAREN); err != nil {
		return nil, err
	}
	return &ast.InExpr{Left: left, Negated: negated, List: list}, nil
}

func parseBetween(l *lexer.Lexer, left ast.Expression, negated bool) (ast.Expression, error) {
	low, err := parseArith(l)
	if err != nil {
		return nil, err
	}
	if err := expectSequence(l, lexer.AND); err != nil {
		return nil, err
	}
	high, err := parseArith(l)
	if err != nil {
		return nil, err
	}
	return &ast.BetweenExpr{Expr: left, Negated: negated, Low: low, High: high}, nil
}

func parseArith(l *lexer.Lexer) (ast.Expression, error) {
	left, err := parseTerm(l)
	if err != nil {
		return nil, err
	}
	for {
		token := l.NextToken()
		var op ast.BinaryOp
		switch token.Type {
		case lexer.PLUS:
			op = ast.OpAdd
		case lexer.MINUS:
			op = ast.OpSub
		default:
			l.SetPos(token.Position)
			return left, nil
		}
		right, err := parseTerm(l)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func parseTerm(l *lexer.Lexer) (ast.Expression, error) {
	left, err := parsePrimary(l)
	if err != nil {
		return nil, err
	}
	for {
		token := l.NextToken()
		var op ast.BinaryOp
		switch token.Type {
		case lexer.ASTERISK:
			op = ast.OpMul
		case lexer.SLASH:
			op = ast.OpDiv
		case lexer.PERCENT:
			op = ast.OpMod
		default:
			l.SetPos(token.Position)
			return left, nil
		}
		right, err := parsePrimary(l)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func parsePrimary(l *lexer.Lexer) (ast.Expression, error) {
	token := l.NextToken()
	switch token.Type {
	case lexer.LPAREN:
		inner, err := parseExpression(l)
		if err != nil {
			return nil, err
		}
		if err := expectSequence(l, lexer.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil

	case lexer.INT, lexer.FLOAT, lexer.STRING, lexer.NULL, lexer.TRUE, lexer.FALSE,
		lexer.PLACEHOLDER, lexer.MINUS:
		l.SetPos(token.Position)
		lit, err := parseLiteral(l)
		if err != nil {
			return nil, err
		}
		return &ast.LiteralExpr{Lit: lit}, nil

	case lexer.IDENTIFIER:
		if !token.Quoted && consumeIf(l, lexer.LPAREN) {
			return parseFuncCall(l, token.Value)
		}
		l.SetPos(token.Position)
		col, err := parseColumn(l)
		if err != nil {
			return nil, err
		}
		return &ast.ColumnExpr{Col: col}, nil

	default:
		return nil, fmt.Errorf("expected expression, got %q", token.Value)
	}
}

// parseFuncCall parses the argument list of a function call whose name and
// opening parenthesis have been consumed.
func parseFuncCall(l *lexer.Lexer, name string) (ast.Expression, error) {
	if consumeIf(l, lexer.ASTERISK) {
		if err := expectSequence(l, lexer.RPAREN); err != nil {
			return nil, err
		}
		return &ast.FuncExpr{Name: name, Star: true}, nil
	}

	distinct := consumeIf(l, lexer.DISTINCT)
	args, err := parseCommaList(l, parseExpression)
	if err != nil {
		return nil, err
	}
	if err := expectSequence(l, lexer.RPAREN); err != nil {
		return nil, err
	}
	return &ast.FuncExpr{Name: name, Distinct: distinct, Args: args}, nil
}

// comparisonOp maps an operator token to its expression operator. <> is
// normalized to !=.
func comparisonOp(op string) (ast.BinaryOp, error) {
	switch op {
	case "=":
		return ast.OpEq, nil
	case "!=", "<>":
		return ast.OpNotEq, nil
	case "<":
		return ast.OpLess, nil
	case "<=":
		return ast.OpLessEq, nil
	case ">":
		return ast.OpGreater, nil
	case ">=":
		return ast.OpGreaterEq, nil
	default:
		return ast.OpEq, fmt.Errorf("unknown operator: %s", op)
	}
}
