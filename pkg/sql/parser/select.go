package parser

import (
	"sqlcanon/pkg/sql/ast"
	"sqlcanon/pkg/sql/lexer"
)

// parseSelect parses a full SELECT statement including ORDER BY and LIMIT.
func parseSelect(l *lexer.Lexer) (*ast.SelectStatement, error) {
	stmt, err := parseSelectBody(l)
	if err != nil {
		return nil, err
	}

	order, limit, err := parseOrderLimit(l)
	if err != nil {
		return nil, err
	}
	stmt.Order = order
	stmt.Limit = limit
	return stmt, nil
}

// parseSelectBody parses a SELECT without its trailing ORDER BY / LIMIT.
// The compound-select parser uses this directly so the trailing clauses can
// attach to the whole compound instead of its last arm.
func parseSelectBody(l *lexer.Lexer) (*ast.SelectStatement, error) {
	if err := expectSequence(l, lexer.SELECT); err != nil {
		return nil, err
	}

	stmt := &ast.SelectStatement{}
	stmt.Distinct = consumeIf(l, lexer.DISTINCT)

	fields, err := parseCommaList(l, parseSelectField)
	if err != nil {
		return nil, err
	}
	stmt.Fields = fields

	if consumeIf(l, lexer.FROM) {
		tables, err := parseCommaList(l, parseTableWithAlias)
		if err != nil {
			return nil, err
		}
		stmt.Tables = tables

		joins, err := parseJoins(l)
		if err != nil {
			return nil, err
		}
		stmt.Joins = joins
	}

	if consumeIf(l, lexer.WHERE) {
		where, err := parseExpression(l)
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}

	if consumeIf(l, lexer.GROUP) {
		if err := expectSequence(l, lexer.BY); err != nil {
			return nil, err
		}
		cols, err := parseCommaList(l, parseColumn)
		if err != nil {
			return nil, err
		}
		stmt.GroupBy = cols
	}

	if consumeIf(l, lexer.HAVING) {
		having, err := parseExpression(l)
		if err != nil {
			return nil, err
		}
		stmt.Having = having
	}

	return stmt, nil
}

// parseSelectField parses one projected field: "*", an expression, or an
// expression with an alias (with or without AS).
func parseSelectField(l *lexer.Lexer) (ast.SelectField, error) {
	if consumeIf(l, lexer.ASTERISK) {
		return ast.SelectField{Expr: &ast.StarExpr{}}, nil
	}

	expr, err := parseExpression(l)
	if err != nil {
		return ast.SelectField{}, err
	}

	if consumeIf(l, lexer.AS) {
		alias, err := parseIdentifier(l)
		if err != nil {
			return ast.SelectField{}, err
		}
		return ast.SelectField{Expr: expr, Alias: alias}, nil
	}

	token := l.NextToken()
	if token.Type == lexer.IDENTIFIER {
		return ast.SelectField{Expr: expr, Alias: token.Value}, nil
	}
	l.SetPos(token.Position)
	return ast.SelectField{Expr: expr}, nil
}

func parseJoins(l *lexer.Lexer) ([]ast.Join, error) {
	var joins []ast.Join
	for {
		token := l.NextToken()

		var joinType ast.JoinType
		switch token.Type {
		case lexer.JOIN:
			joinType = ast.InnerJoin
		case lexer.INNER:
			if err := expectSequence(l, lexer.JOIN); err != nil {
				return nil, err
			}
			joinType = ast.InnerJoin
		case lexer.LEFT:
			consumeIf(l, lexer.OUTER)
			if err := expectSequence(l, lexer.JOIN); err != nil {
				return nil, err
			}
			joinType = ast.LeftJoin
		case lexer.RIGHT:
			consumeIf(l, lexer.OUTER)
			if err := expectSequence(l, lexer.JOIN); err != nil {
				return nil, err
			}
			joinType = ast.RightJoin
		default:
			l.SetPos(token.Position)
			return joins, nil
		}

		table, err := parseTableWithAlias(l)
		if err != nil {
			return nil, err
		}
		if err := expectSequence(l, lexer.ON); err != nil {
			return nil, err
		}
		on, err := parseExpression(l)
		if err != nil {
			return nil, err
		}

		joins = append(joins, ast.Join{Type: joinType, Table: table, On: on})
	}
}

// parseOrderLimit parses the optional trailing ORDER BY and LIMIT clauses.
func parseOrderLimit(l *lexer.Lexer) (*ast.OrderClause, *ast.LimitClause, error) {
	var order *ast.OrderClause
	var limit *ast.LimitClause

	if consumeIf(l, lexer.ORDER) {
		if err := expectSequence(l, lexer.BY); err != nil {
			return nil, nil, err
		}
		fields, err := parseCommaList(l, parseOrderField)
		if err != nil {
			return nil, nil, err
		}
		order = &ast.OrderClause{Fields: fields}
	}

	if consumeIf(l, lexer.LIMIT) {
		lit, err := parseLiteral(l)
		if err != nil {
			return nil, nil, err
		}
		limit = &ast.LimitClause{Limit: lit}
		if consumeIf(l, lexer.OFFSET) {
			off, err := parseLiteral(l)
			if err != nil {
				return nil, nil, err
			}
			limit.Offset = &off
		}
	}

	return order, limit, nil
}

func parseOrderField(l *lexer.Lexer) (ast.OrderField, error) {
	col, err := parseColumn(l)
	if err != nil {
		return ast.OrderField{}, err
	}
	field := ast.OrderField{Col: col}
	switch {
	case consumeIf(l, lexer.DESC):
		field.Desc = true
	case consumeIf(l, lexer.ASC):
	}
	return field, nil
}
