package parser

import (
	"fmt"

	"sqlcanon/pkg/sql/ast"
	"sqlcanon/pkg/sql/lexer"
)

// parseInsert parses "INSERT [IGNORE] INTO table [(cols)] VALUES (row),
// ... [ON DUPLICATE KEY UPDATE assignments]".
func parseInsert(l *lexer.Lexer) (*ast.InsertStatement, error) {
	if err := expectSequence(l, lexer.INSERT); err != nil {
		return nil, err
	}

	stmt := &ast.InsertStatement{}
	stmt.Ignore = consumeIf(l, lexer.IGNORE)

	if err := expectSequence(l, lexer.INTO); err != nil {
		return nil, err
	}

	table, err := parseTable(l)
	if err != nil {
		return nil, err
	}
	stmt.Table = table

	if peekType(l) == lexer.LPAREN {
		fields, err := parseParenColumnList(l)
		if err != nil {
			return nil, err
		}
		stmt.Fields = fields
	}

	if err := expectSequence(l, lexer.VALUES); err != nil {
		return nil, err
	}

	rows, err := parseCommaList(l, parseValueRow)
	if err != nil {
		return nil, err
	}
	stmt.Data = rows

	if consumeIf(l, lexer.ON) {
		if err := expectSequence(l, lexer.DUPLICATE, lexer.KEY, lexer.UPDATE); err != nil {
			return nil, err
		}
		assignments, err := parseCommaList(l, parseAssignment)
		if err != nil {
			return nil, err
		}
		stmt.OnDuplicate = assignments
	}

	return stmt, nil
}

func parseValueRow(l *lexer.Lexer) ([]ast.Literal, error) {
	if err := expectSequence(l, lexer.LPAREN); err != nil {
		return nil, err
	}
	row, err := parseCommaList(l, parseLiteral)
	if err != nil {
		return nil, err
	}
	if err := expectSequence(l, lexer.RPAREN); err != nil {
		return nil, err
	}
	return row, nil
}

// parseAssignment parses "column = expression". The value side uses the
// arithmetic level of the expression grammar so a following AND or comma
// is left for the caller.
func parseAssignment(l *lexer.Lexer) (ast.Assignment, error) {
	col, err := parseColumn(l)
	if err != nil {
		return ast.Assignment{}, err
	}

	token := l.NextToken()
	if token.Type != lexer.OPERATOR || token.Value != "=" {
		return ast.Assignment{}, fmt.Errorf("expected =, got %q", token.Value)
	}

	value, err := parseArith(l)
	if err != nil {
		return ast.Assignment{}, err
	}
	return ast.Assignment{Col: col, Value: value}, nil
}
