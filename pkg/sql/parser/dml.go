package parser

import (
	"sqlcanon/pkg/sql/ast"
	"sqlcanon/pkg/sql/lexer"
)

// parseDelete parses "DELETE FROM table [WHERE expr]".
func parseDelete(l *lexer.Lexer) (*ast.DeleteStatement, error) {
	if err := expectSequence(l, lexer.DELETE, lexer.FROM); err != nil {
		return nil, err
	}

	table, err := parseTable(l)
	if err != nil {
		return nil, err
	}

	stmt := &ast.DeleteStatement{Table: table}
	if consumeIf(l, lexer.WHERE) {
		where, err := parseExpression(l)
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}
	return stmt, nil
}

// parseUpdate parses "UPDATE table SET assignments [WHERE expr]".
func parseUpdate(l *lexer.Lexer) (*ast.UpdateStatement, error) {
	if err := expectSequence(l, lexer.UPDATE); err != nil {
		return nil, err
	}

	table, err := parseTable(l)
	if err != nil {
		return nil, err
	}

	if err := expectSequence(l, lexer.SET); err != nil {
		return nil, err
	}

	assignments, err := parseCommaList(l, parseAssignment)
	if err != nil {
		return nil, err
	}

	stmt := &ast.UpdateStatement{Table: table, Assignments: assignments}
	if consumeIf(l, lexer.WHERE) {
		where, err := parseExpression(l)
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}
	return stmt, nil
}
