package parser

import (
	"fmt"
	"strconv"
	"strings"

	"sqlcanon/pkg/sql/ast"
	"sqlcanon/pkg/sql/lexer"
)

// sqlTypes maps accepted type names (uppercase) to their canonical
// spelling.
var sqlTypes = map[string]string{
	"INT":       "INT",
	"INTEGER":   "INT",
	"BIGINT":    "BIGINT",
	"SMALLINT":  "SMALLINT",
	"TINYINT":   "TINYINT",
	"SERIAL":    "SERIAL",
	"VARCHAR":   "VARCHAR",
	"CHAR":      "CHAR",
	"TEXT":      "TEXT",
	"BLOB":      "BLOB",
	"FLOAT":     "FLOAT",
	"DOUBLE":    "DOUBLE",
	"REAL":      "REAL",
	"DECIMAL":   "DECIMAL",
	"NUMERIC":   "DECIMAL",
	"BOOLEAN":   "BOOLEAN",
	"BOOL":      "BOOLEAN",
	"DATE":      "DATE",
	"TIME":      "TIME",
	"DATETIME":  "DATETIME",
	"TIMESTAMP": "TIMESTAMP",
}

// parseCreateTable parses "CREATE TABLE [IF NOT EXISTS] table (defs)" where
// each def is a column specification or a table-level key.
func parseCreateTable(l *lexer.Lexer) (*ast.CreateTableStatement, error) {
	if err := expectSequence(l, lexer.CREATE, lexer.TABLE); err != nil {
		return nil, err
	}

	stmt := &ast.CreateTableStatement{}
	if consumeIf(l, lexer.IF) {
		if err := expectSequence(l, lexer.NOT, lexer.EXISTS); err != nil {
			return nil, err
		}
		stmt.IfNotExists = true
	}

	table, err := parseTable(l)
	if err != nil {
		return nil, err
	}
	stmt.Table = table

	if err := expectSequence(l, lexer.LPAREN); err != nil {
		return nil, err
	}

	for {
		if isKeyStart(peekType(l)) {
			key, err := parseKeySpec(l)
			if err != nil {
				return nil, err
			}
			stmt.Keys = append(stmt.Keys, key)
		} else {
			spec, err := parseColumnSpec(l)
			if err != nil {
				return nil, err
			}
			stmt.Fields = append(stmt.Fields, spec)
		}

		token := l.NextToken()
		switch token.Type {
		case lexer.COMMA:
			continue
		case lexer.RPAREN:
			return stmt, nil
		default:
			return nil, fmt.Errorf("expected , or ) in CREATE TABLE, got %q", token.Value)
		}
	}
}

func isKeyStart(tt lexer.TokenType) bool {
	switch tt {
	case lexer.PRIMARY, lexer.UNIQUE, lexer.KEY, lexer.INDEX, lexer.CONSTRAINT, lexer.FOREIGN:
		return true
	default:
		return false
	}
}

// parseColumnSpec parses one column definition: name, type, constraints.
func parseColumnSpec(l *lexer.Lexer) (ast.ColumnSpec, error) {
	name, err := parseIdentifier(l)
	if err != nil {
		return ast.ColumnSpec{}, err
	}

	typ, err := parseSQLType(l)
	if err != nil {
		return ast.ColumnSpec{}, err
	}

	spec := ast.ColumnSpec{Column: ast.Column{Name: name}, Type: typ}
	for {
		con, ok, err := parseColumnConstraint(l)
		if err != nil {
			return ast.ColumnSpec{}, err
		}
		if !ok {
			return spec, nil
		}
		spec.Constraints = append(spec.Constraints, con)
	}
}

// parseSQLType parses a type name with optional size arguments, e.g.
// VARCHAR(255) or DECIMAL(10, 2). Type names lex as identifiers; they are
// validated here rather than in the keyword table.
func parseSQLType(l *lexer.Lexer) (ast.SQLType, error) {
	token := l.NextToken()
	if token.Type != lexer.IDENTIFIER || token.Quoted {
		return ast.SQLType{}, fmt.Errorf("expected column type, got %q", token.Value)
	}
	canonical, ok := sqlTypes[strings.ToUpper(token.Value)]
	if !ok {
		return ast.SQLType{}, fmt.Errorf("unknown column type: %q", token.Value)
	}

	typ := ast.SQLType{Name: canonical}
	if !consumeIf(l, lexer.LPAREN) {
		return typ, nil
	}

	size, err := parseTypeArg(l)
	if err != nil {
		return ast.SQLType{}, err
	}
	typ.Size = size

	if consumeIf(l, lexer.COMMA) {
		scale, err := parseTypeArg(l)
		if err != nil {
			return ast.SQLType{}, err
		}
		typ.Scale = scale
	}

	if err := expectSequence(l, lexer.RPAREN); err != nil {
		return ast.SQLType{}, err
	}
	return typ, nil
}

func parseTypeArg(l *lexer.Lexer) (int, error) {
	token := l.NextToken()
	if err := expectToken(token, lexer.INT); err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(token.Value)
	if err != nil {
		return 0, fmt.Errorf("invalid type size: %s", token.Value)
	}
	return v, nil
}

// parseColumnConstraint parses one column-level constraint; ok is false
// when the next token does not start a constraint.
func parseColumnConstraint(l *lexer.Lexer) (ast.ColumnConstraint, bool, error) {
	token := l.NextToken()
	switch token.Type {
	case lexer.NOT:
		if err := expectSequence(l, lexer.NULL); err != nil {
			return ast.ColumnConstraint{}, false, err
		}
		return ast.ColumnConstraint{Kind: ast.NotNull}, true, nil
	case lexer.NULL:
		return ast.ColumnConstraint{Kind: ast.Null}, true, nil
	case lexer.AUTO_INCREMENT:
		return ast.ColumnConstraint{Kind: ast.AutoIncrement}, true, nil
	case lexer.DEFAULT:
		lit, err := parseLiteral(l)
		if err != nil {
			return ast.ColumnConstraint{}, false, err
		}
		return ast.ColumnConstraint{Kind: ast.DefaultValue, Default: lit}, true, nil
	case lexer.PRIMARY:
		if err := expectSequence(l, lexer.KEY); err != nil {
			return ast.ColumnConstraint{}, false, err
		}
		return ast.ColumnConstraint{Kind: ast.PrimaryKeyColumn}, true, nil
	case lexer.UNIQUE:
		return ast.ColumnConstraint{Kind: ast.UniqueColumn}, true, nil
	default:
		l.SetPos(token.Position)
		return ast.ColumnConstraint{}, false, nil
	}
}

// parseKeySpec parses a table-level key or constraint specification. It is
// shared between CREATE TABLE, ALTER TABLE ADD and the stand-alone key
// specification entry point.
func parseKeySpec(l *lexer.Lexer) (ast.TableKey, error) {
	token := l.NextToken()
	switch token.Type {
	case lexer.PRIMARY:
		if err := expectSequence(l, lexer.KEY); err != nil {
			return nil, err
		}
		cols, err := parseParenColumnList(l)
		if err != nil {
			return nil, err
		}
		return &ast.PrimaryKey{Columns: cols}, nil

	case lexer.UNIQUE:
		if !consumeIf(l, lexer.KEY) {
			consumeIf(l, lexer.INDEX)
		}
		name := parseOptionalKeyName(l)
		cols, err := parseParenColumnList(l)
		if err != nil {
			return nil, err
		}
		return &ast.UniqueKey{Name: name, Columns: cols}, nil

	case lexer.KEY, lexer.INDEX:
		name := parseOptionalKeyName(l)
		cols, err := parseParenColumnList(l)
		if err != nil {
			return nil, err
		}
		return &ast.Key{Name: name, Columns: cols}, nil

	case lexer.CONSTRAINT:
		name, err := parseIdentifier(l)
		if err != nil {
			return nil, err
		}
		if err := expectSequence(l, lexer.FOREIGN, lexer.KEY); err != nil {
			return nil, err
		}
		return parseForeignKeyTail(l, name)

	case lexer.FOREIGN:
		if err := expectSequence(l, lexer.KEY); err != nil {
			return nil, err
		}
		return parseForeignKeyTail(l, "")

	default:
		return nil, fmt.Errorf("expected key specification, got %q", token.Value)
	}
}

func parseOptionalKeyName(l *lexer.Lexer) string {
	token := l.NextToken()
	if token.Type == lexer.IDENTIFIER {
		return token.Value
	}
	l.SetPos(token.Position)
	return ""
}

func parseForeignKeyTail(l *lexer.Lexer, name string) (ast.TableKey, error) {
	cols, err := parseParenColumnList(l)
	if err != nil {
		return nil, err
	}
	if err := expectSequence(l, lexer.REFERENCES); err != nil {
		return nil, err
	}
	target, err := parseTable(l)
	if err != nil {
		return nil, err
	}
	targetCols, err := parseParenColumnList(l)
	if err != nil {
		return nil, err
	}
	return &ast.ForeignKey{Name: name, Columns: cols, TargetTable: target, TargetColumns: targetCols}, nil
}

// parseCreateView parses "CREATE VIEW name [(cols)] AS <select>". The
// definition may be a compound select.
func parseCreateView(l *lexer.Lexer) (*ast.CreateViewStatement, error) {
	if err := expectSequence(l, lexer.CREATE, lexer.VIEW); err != nil {
		return nil, err
	}

	stmt := &ast.CreateViewStatement{}
	name, err := parseTable(l)
	if err != nil {
		return nil, err
	}
	stmt.Name = name

	if peekType(l) == lexer.LPAREN {
		fields, err := parseParenColumnList(l)
		if err != nil {
			return nil, err
		}
		stmt.Fields = fields
	}

	if err := expectSequence(l, lexer.AS); err != nil {
		return nil, err
	}

	pos := l.Pos()
	if compound, err := parseCompoundSelect(l); err == nil {
		stmt.Definition = compound
		return stmt, nil
	}
	l.SetPos(pos)

	sel, err := parseSelect(l)
	if err != nil {
		return nil, err
	}
	stmt.Definition = sel
	return stmt, nil
}

// parseCreateCache parses "CREATE CACHE [name] FROM <select>".
func parseCreateCache(l *lexer.Lexer) (*ast.CreateCacheStatement, error) {
	if err := expectSequence(l, lexer.CREATE, lexer.CACHE); err != nil {
		return nil, err
	}

	stmt := &ast.CreateCacheStatement{}
	token := l.NextToken()
	if token.Type == lexer.IDENTIFIER {
		stmt.Name = token.Value
	} else {
		l.SetPos(token.Position)
	}

	if err := expectSequence(l, lexer.FROM); err != nil {
		return nil, err
	}

	sel, err := parseSelect(l)
	if err != nil {
		return nil, err
	}
	stmt.Inner = sel
	return stmt, nil
}
