package parser

import (
	"fmt"

	"sqlcanon/pkg/sql/ast"
	"sqlcanon/pkg/sql/lexer"
)

// parseSet parses "SET [GLOBAL|SESSION] var = literal [, ...]".
func parseSet(l *lexer.Lexer) (*ast.SetStatement, error) {
	if err := expectSequence(l, lexer.SET); err != nil {
		return nil, err
	}
	vars, err := parseCommaList(l, parseSetVariable)
	if err != nil {
		return nil, err
	}
	return &ast.SetStatement{Variables: vars}, nil
}

func parseSetVariable(l *lexer.Lexer) (ast.SetVariable, error) {
	v := ast.SetVariable{}
	switch {
	case consumeIf(l, lexer.GLOBAL):
		v.Scope = ast.GlobalScope
	case consumeIf(l, lexer.SESSION):
		v.Scope = ast.SessionScope
	}

	name, err := parseIdentifier(l)
	if err != nil {
		return ast.SetVariable{}, err
	}
	v.Name = name

	token := l.NextToken()
	if token.Type != lexer.OPERATOR || token.Value != "=" {
		return ast.SetVariable{}, fmt.Errorf("expected =, got %q", token.Value)
	}

	value, err := parseLiteral(l)
	if err != nil {
		return ast.SetVariable{}, err
	}
	v.Value = value
	return v, nil
}

// parseStartTransaction parses "START TRANSACTION" or "BEGIN [WORK]".
func parseStartTransaction(l *lexer.Lexer) (*ast.StartTransactionStatement, error) {
	token := l.NextToken()
	switch token.Type {
	case lexer.START:
		if err := expectSequence(l, lexer.TRANSACTION); err != nil {
			return nil, err
		}
	case lexer.BEGIN:
		consumeIf(l, lexer.WORK)
	default:
		return nil, fmt.Errorf("expected START TRANSACTION or BEGIN, got %q", token.Value)
	}
	return &ast.StartTransactionStatement{}, nil
}

// parseCommit parses "COMMIT [WORK]".
func parseCommit(l *lexer.Lexer) (*ast.CommitStatement, error) {
	if err := expectSequence(l, lexer.COMMIT); err != nil {
		return nil, err
	}
	consumeIf(l, lexer.WORK)
	return &ast.CommitStatement{}, nil
}

// parseRollback parses "ROLLBACK [WORK]".
func parseRollback(l *lexer.Lexer) (*ast.RollbackStatement, error) {
	if err := expectSequence(l, lexer.ROLLBACK); err != nil {
		return nil, err
	}
	consumeIf(l, lexer.WORK)
	return &ast.RollbackStatement{}, nil
}

// parseRenameTable parses "RENAME TABLE a TO b [, c TO d ...]".
func parseRenameTable(l *lexer.Lexer) (*ast.RenameTableStatement, error) {
	if err := expectSequence(l, lexer.RENAME, lexer.TABLE); err != nil {
		return nil, err
	}
	ops, err := parseCommaList(l, parseRenameOp)
	if err != nil {
		return nil, err
	}
	return &ast.RenameTableStatement{Ops: ops}, nil
}

func parseRenameOp(l *lexer.Lexer) (ast.RenameOp, error) {
	from, err := parseTable(l)
	if err != nil {
		return ast.RenameOp{}, err
	}
	if err := expectSequence(l, lexer.TO); err != nil {
		return ast.RenameOp{}, err
	}
	to, err := parseTable(l)
	if err != nil {
		return ast.RenameOp{}, err
	}
	return ast.RenameOp{From: from, To: to}, nil
}

// parseUse parses "USE database".
func parseUse(l *lexer.Lexer) (*ast.UseStatement, error) {
	if err := expectSequence(l, lexer.USE); err != nil {
		return nil, err
	}
	db, err := parseIdentifier(l)
	if err != nil {
		return nil, err
	}
	return &ast.UseStatement{Database: db}, nil
}

// parseShow parses "SHOW [FULL] TABLES" or "SHOW DATABASES".
func parseShow(l *lexer.Lexer) (*ast.ShowStatement, error) {
	if err := expectSequence(l, lexer.SHOW); err != nil {
		return nil, err
	}

	token := l.NextToken()
	switch token.Type {
	case lexer.DATABASES:
		return &ast.ShowStatement{Kind: ast.ShowDatabases}, nil
	case lexer.FULL:
		if err := expectSequence(l, lexer.TABLES); err != nil {
			return nil, err
		}
		return &ast.ShowStatement{Kind: ast.ShowTables, Full: true}, nil
	case lexer.TABLES:
		return &ast.ShowStatement{Kind: ast.ShowTables}, nil
	default:
		return nil, fmt.Errorf("expected TABLES or DATABASES, got %q", token.Value)
	}
}
