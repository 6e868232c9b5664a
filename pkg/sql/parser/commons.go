package parser

import (
	"errors"
	"fmt"
	"strconv"

	"sqlcanon/pkg/sql/ast"
	"sqlcanon/pkg/sql/lexer"
)

// ErrParseFailed is the only error the public entry points return. Internal
// parsing errors carry more detail for the alternatives to discard; they all
// collapse to this sentinel at the boundary.
var ErrParseFailed = errors.New("failed to parse query")

// expectToken validates that the given token matches the expected token type.
func expectToken(t lexer.Token, expected lexer.TokenType) error {
	if t.Type != expected {
		return fmt.Errorf("expected %s, got %q", expected.String(), t.Value)
	}
	return nil
}

// expectSequence validates that the lexer produces a sequence of tokens
// matching the expected token types in order.
func expectSequence(l *lexer.Lexer, expectedTypes ...lexer.TokenType) error {
	for _, expectedType := range expectedTypes {
		if err := expectToken(l.NextToken(), expectedType); err != nil {
			return err
		}
	}
	return nil
}

// consumeIf reads the next token; if it matches tt it is consumed and true
// is returned, otherwise the lexer position is restored.
func consumeIf(l *lexer.Lexer, tt lexer.TokenType) bool {
	token := l.NextToken()
	if token.Type == tt {
		return true
	}
	l.SetPos(token.Position)
	return false
}

// peekType returns the type of the next token without consuming it.
func peekType(l *lexer.Lexer) lexer.TokenType {
	token := l.NextToken()
	l.SetPos(token.Position)
	return token.Type
}

// statementTerminator consumes any trailing semicolons. Whitespace around
// them is consumed as a side effect of token scanning, so a statement
// followed only by ";" and whitespace leaves an empty remainder.
func statementTerminator(l *lexer.Lexer) {
	for {
		token := l.NextToken()
		if token.Type != lexer.SEMICOLON {
			l.SetPos(token.Position)
			return
		}
	}
}

// parseIdentifier reads a bare or quoted identifier.
func parseIdentifier(l *lexer.Lexer) (string, error) {
	token := l.NextToken()
	if err := expectToken(token, lexer.IDENTIFIER); err != nil {
		return "", err
	}
	return token.Value, nil
}

// parseTable reads a plain table name.
func parseTable(l *lexer.Lexer) (ast.Table, error) {
	name, err := parseIdentifier(l)
	if err != nil {
		return ast.Table{}, err
	}
	return ast.Table{Name: name}, nil
}

// parseTableWithAlias reads a table reference with an optional alias, with
// or without the AS keyword: "users", "users u", "users AS u".
func parseTableWithAlias(l *lexer.Lexer) (ast.Table, error) {
	t, err := parseTable(l)
	if err != nil {
		return ast.Table{}, err
	}

	if consumeIf(l, lexer.AS) {
		alias, err := parseIdentifier(l)
		if err != nil {
			return ast.Table{}, err
		}
		t.Alias = alias
		return t, nil
	}

	token := l.NextToken()
	if token.Type == lexer.IDENTIFIER {
		t.Alias = token.Value
	} else {
		l.SetPos(token.Position)
	}
	return t, nil
}

// parseColumn reads a column reference, optionally qualified: "name" or
// "t.name".
func parseColumn(l *lexer.Lexer) (ast.Column, error) {
	first, err := parseIdentifier(l)
	if err != nil {
		return ast.Column{}, err
	}
	if consumeIf(l, lexer.DOT) {
		second, err := parseIdentifier(l)
		if err != nil {
			return ast.Column{}, err
		}
		return ast.Column{Table: first, Name: second}, nil
	}
	return ast.Column{Name: first}, nil
}

// parseCommaList repeatedly calls parseItem on comma-separated input.
func parseCommaList[T any](l *lexer.Lexer, parseItem func(*lexer.Lexer) (T, error)) ([]T, error) {
	var items []T
	for {
		item, err := parseItem(l)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !consumeIf(l, lexer.COMMA) {
			return items, nil
		}
	}
}

// parseParenColumnList reads "(col, col, ...)".
func parseParenColumnList(l *lexer.Lexer) ([]ast.Column, error) {
	if err := expectSequence(l, lexer.LPAREN); err != nil {
		return nil, err
	}
	cols, err := parseCommaList(l, parseColumn)
	if err != nil {
		return nil, err
	}
	if err := expectSequence(l, lexer.RPAREN); err != nil {
		return nil, err
	}
	return cols, nil
}

// parseLiteral reads a constant: a number (optionally negative), string,
// boolean, NULL or the ? placeholder.
func parseLiteral(l *lexer.Lexer) (ast.Literal, error) {
	token := l.NextToken()
	switch token.Type {
	case lexer.INT:
		v, err := strconv.ParseInt(token.Value, 10, 64)
		if err != nil {
			return ast.Literal{}, fmt.Errorf("invalid integer literal: %s", token.Value)
		}
		return ast.IntLiteral(v), nil
	case lexer.FLOAT:
		v, err := strconv.ParseFloat(token.Value, 64)
		if err != nil {
			return ast.Literal{}, fmt.Errorf("invalid float literal: %s", token.Value)
		}
		return ast.FloatLiteral(v), nil
	case lexer.STRING:
		return ast.StringLiteral(token.Value), nil
	case lexer.NULL:
		return ast.NullLiteral(), nil
	case lexer.TRUE:
		return ast.BoolLiteral(true), nil
	case lexer.FALSE:
		return ast.BoolLiteral(false), nil
	case lexer.PLACEHOLDER:
		return ast.PlaceholderLiteral(), nil
	case lexer.MINUS:
		lit, err := parseLiteral(l)
		if err != nil {
			return ast.Literal{}, err
		}
		switch lit.Kind {
		case ast.LitInt:
			lit.Int = -lit.Int
			return lit, nil
		case ast.LitFloat:
			lit.Float = -lit.Float
			return lit, nil
		default:
			return ast.Literal{}, fmt.Errorf("expected number after -, got %q", token.Value)
		}
	default:
		return ast.Literal{}, fmt.Errorf("expected literal, got %q", token.Value)
	}
}
