package parser

import (
	"sqlcanon/pkg/sql/ast"
	"sqlcanon/pkg/sql/lexer"
)

// parseDropTable parses "DROP TABLE [IF EXISTS] t [, ...]".
func parseDropTable(l *lexer.Lexer) (*ast.DropTableStatement, error) {
	if err := expectSequence(l, lexer.DROP, lexer.TABLE); err != nil {
		return nil, err
	}

	ifExists, err := parseIfExists(l)
	if err != nil {
		return nil, err
	}

	tables, err := parseCommaList(l, parseTable)
	if err != nil {
		return nil, err
	}
	return &ast.DropTableStatement{Tables: tables, IfExists: ifExists}, nil
}

// parseDropView parses "DROP VIEW [IF EXISTS] v [, ...]".
func parseDropView(l *lexer.Lexer) (*ast.DropViewStatement, error) {
	if err := expectSequence(l, lexer.DROP, lexer.VIEW); err != nil {
		return nil, err
	}

	ifExists, err := parseIfExists(l)
	if err != nil {
		return nil, err
	}

	views, err := parseCommaList(l, parseTable)
	if err != nil {
		return nil, err
	}
	return &ast.DropViewStatement{Views: views, IfExists: ifExists}, nil
}

// parseDropCache parses "DROP CACHE name".
func parseDropCache(l *lexer.Lexer) (*ast.DropCacheStatement, error) {
	if err := expectSequence(l, lexer.DROP, lexer.CACHE); err != nil {
		return nil, err
	}
	name, err := parseIdentifier(l)
	if err != nil {
		return nil, err
	}
	return &ast.DropCacheStatement{Name: name}, nil
}

func parseIfExists(l *lexer.Lexer) (bool, error) {
	if !consumeIf(l, lexer.IF) {
		return false, nil
	}
	if err := expectSequence(l, lexer.EXISTS); err != nil {
		return false, err
	}
	return true, nil
}
