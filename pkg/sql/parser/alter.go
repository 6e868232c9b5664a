package parser

import (
	"fmt"

	"sqlcanon/pkg/sql/ast"
	"sqlcanon/pkg/sql/lexer"
)

// parseAlterTable parses "ALTER TABLE table action [, action ...]".
func parseAlterTable(l *lexer.Lexer) (*ast.AlterTableStatement, error) {
	if err := expectSequence(l, lexer.ALTER, lexer.TABLE); err != nil {
		return nil, err
	}

	table, err := parseTable(l)
	if err != nil {
		return nil, err
	}

	defs, err := parseCommaList(l, parseAlterDefinition)
	if err != nil {
		return nil, err
	}

	return &ast.AlterTableStatement{Table: table, Definitions: defs}, nil
}

func parseAlterDefinition(l *lexer.Lexer) (ast.AlterTableDefinition, error) {
	token := l.NextToken()
	switch token.Type {
	case lexer.ADD:
		if isKeyStart(peekType(l)) {
			key, err := parseKeySpec(l)
			if err != nil {
				return nil, err
			}
			return &ast.AddKey{Key: key}, nil
		}
		consumeIf(l, lexer.COLUMN)
		spec, err := parseColumnSpec(l)
		if err != nil {
			return nil, err
		}
		return &ast.AddColumn{Spec: spec}, nil

	case lexer.DROP:
		consumeIf(l, lexer.COLUMN)
		name, err := parseIdentifier(l)
		if err != nil {
			return nil, err
		}
		def := &ast.DropColumn{Column: ast.Column{Name: name}}
		switch {
		case consumeIf(l, lexer.CASCADE):
			def.Behavior = ast.DropCascade
		case consumeIf(l, lexer.RESTRICT):
			def.Behavior = ast.DropRestrict
		}
		return def, nil

	case lexer.CHANGE:
		consumeIf(l, lexer.COLUMN)
		name, err := parseIdentifier(l)
		if err != nil {
			return nil, err
		}
		spec, err := parseColumnSpec(l)
		if err != nil {
			return nil, err
		}
		return &ast.ChangeColumn{Column: ast.Column{Name: name}, Spec: spec}, nil

	case lexer.MODIFY:
		// MODIFY COLUMN keeps the column name; it parses to a change of a
		// column onto itself.
		consumeIf(l, lexer.COLUMN)
		spec, err := parseColumnSpec(l)
		if err != nil {
			return nil, err
		}
		return &ast.ChangeColumn{Column: spec.Column, Spec: spec}, nil

	default:
		return nil, fmt.Errorf("expected ALTER TABLE action, got %q", token.Value)
	}
}
