// Package parser turns raw SQL bytes into ast.Query values. The top level
// is an ordered-alternative dispatcher over one sub-parser per statement
// kind; each sub-parser fails fast on a non-matching leading keyword
// sequence and consumes nothing observable on failure, so alternatives are
// tried against the original input in turn and the first success wins.
package parser

import (
	"errors"
	"strings"

	"sqlcanon/pkg/sql/ast"
	"sqlcanon/pkg/sql/dialect"
	"sqlcanon/pkg/sql/lexer"
)

// subParser is the collaborator contract every statement parser satisfies:
// given a dialect and input bytes it returns the parsed node and the
// unconsumed remainder, or an error having consumed nothing.
type subParser[T any] func(d dialect.Dialect, input []byte) (T, []byte, error)

// wrap lifts a token-level parse function into a subParser: it runs the
// function over a fresh lexer, consumes an optional statement terminator
// and reports the byte remainder.
func wrap[T any](parse func(*lexer.Lexer) (T, error)) subParser[T] {
	return func(d dialect.Dialect, input []byte) (T, []byte, error) {
		l := lexer.New(d, input)
		node, err := parse(l)
		if err != nil {
			var zero T
			return zero, nil, err
		}
		statementTerminator(l)
		return node, l.Rest(), nil
	}
}

// Byte-level sub-parsers, one per statement kind.
var (
	creation          = wrap(parseCreateTable)
	insertion         = wrap(parseInsert)
	compoundSelection = wrap(parseCompoundSelect)
	selection         = wrap(parseSelect)
	deletion          = wrap(parseDelete)
	dropTable         = wrap(parseDropTable)
	dropView          = wrap(parseDropView)
	updating          = wrap(parseUpdate)
	setStatement      = wrap(parseSet)
	viewCreation      = wrap(parseCreateView)
	createCachedQuery = wrap(parseCreateCache)
	dropCachedQuery   = wrap(parseDropCache)
	alterTable        = wrap(parseAlterTable)
	startTransaction  = wrap(parseStartTransaction)
	commitStatement   = wrap(parseCommit)
	rollbackStatement = wrap(parseRollback)
	renameTable       = wrap(parseRenameTable)
	useStatement      = wrap(parseUse)
	showStatement     = wrap(parseShow)
	keySpecification  = wrap(parseKeySpec)
)

// explainStatement parses "EXPLAIN <statement>" by re-entering the
// dispatcher for the wrapped statement.
func explainStatement(d dialect.Dialect, input []byte) (*ast.ExplainStatement, []byte, error) {
	l := lexer.New(d, input)
	if err := expectSequence(l, lexer.EXPLAIN); err != nil {
		return nil, nil, err
	}
	inner, rest, err := sqlQuery(d, l.Rest())
	if err != nil {
		return nil, nil, err
	}
	return &ast.ExplainStatement{Inner: inner}, rest, nil
}

// asQuery adapts a typed sub-parser to the dispatcher's common signature.
func asQuery[T ast.Query](sub subParser[T]) subParser[ast.Query] {
	return func(d dialect.Dialect, input []byte) (ast.Query, []byte, error) {
		node, rest, err := sub(d, input)
		if err != nil {
			return nil, nil, err
		}
		return node, rest, nil
	}
}

var errNoAlternative = errors.New("no alternative matched")

// sqlQuery is the statement dispatcher. The alternative order is a fixed
// policy: statement kinds sharing a keyword prefix (CREATE TABLE / CREATE
// VIEW / CREATE CACHE, the DROP family) stay reachable because every
// sub-parser rejects a wrong keyword sequence before consuming anything
// interesting, and the order below is the tie-break of record for inputs
// that would otherwise be ambiguous.
func sqlQuery(d dialect.Dialect, input []byte) (ast.Query, []byte, error) {
	alternatives := []subParser[ast.Query]{
		asQuery(creation),
		asQuery(insertion),
		asQuery(compoundSelection),
		asQuery(selection),
		asQuery(deletion),
		asQuery(dropTable),
		asQuery(dropView),
		asQuery(updating),
		asQuery(setStatement),
		asQuery(viewCreation),
		asQuery(createCachedQuery),
		asQuery(dropCachedQuery),
		asQuery(alterTable),
		asQuery(startTransaction),
		asQuery(commitStatement),
		asQuery(rollbackStatement),
		asQuery(renameTable),
		asQuery(useStatement),
		asQuery(showStatement),
		asQuery(subParser[*ast.ExplainStatement](explainStatement)),
	}

	for _, alt := range alternatives {
		if q, rest, err := alt(d, input); err == nil {
			return q, rest, nil
		}
	}
	return nil, nil, errNoAlternative
}

// ParseQueryBytes parses a SQL query from a byte slice. Trailing content
// after a complete statement is tolerated.
func ParseQueryBytes(d dialect.Dialect, input []byte) (ast.Query, error) {
	q, _, err := sqlQuery(d, input)
	if err != nil {
		return nil, ErrParseFailed
	}
	return q, nil
}

// ParseQuery parses a SQL query from a string. The input is trimmed of
// surrounding whitespace before parsing.
func ParseQuery(d dialect.Dialect, input string) (ast.Query, error) {
	return ParseQueryBytes(d, []byte(strings.TrimSpace(input)))
}

// ParseSelectStatementBytes parses a select statement from a byte slice,
// requiring the whole input to be consumed.
func ParseSelectStatementBytes(d dialect.Dialect, input []byte) (*ast.SelectStatement, error) {
	stmt, rest, err := selection(d, input)
	if err != nil || len(rest) != 0 {
		return nil, ErrParseFailed
	}
	return stmt, nil
}

// ParseSelectStatement parses a select statement from a string.
func ParseSelectStatement(d dialect.Dialect, input string) (*ast.SelectStatement, error) {
	return ParseSelectStatementBytes(d, []byte(strings.TrimSpace(input)))
}

// ParseCreateTableBytes parses a create table statement from a byte slice,
// requiring the whole input to be consumed.
func ParseCreateTableBytes(d dialect.Dialect, input []byte) (*ast.CreateTableStatement, error) {
	stmt, rest, err := creation(d, input)
	if err != nil || len(rest) != 0 {
		return nil, ErrParseFailed
	}
	return stmt, nil
}

// ParseCreateTable parses a create table statement from a string.
func ParseCreateTable(d dialect.Dialect, input string) (*ast.CreateTableStatement, error) {
	return ParseCreateTableBytes(d, []byte(strings.TrimSpace(input)))
}

// ParseAlterTableBytes parses an alter table statement from a byte slice,
// requiring the whole input to be consumed.
func ParseAlterTableBytes(d dialect.Dialect, input []byte) (*ast.AlterTableStatement, error) {
	stmt, rest, err := alterTable(d, input)
	if err != nil || len(rest) != 0 {
		return nil, ErrParseFailed
	}
	return stmt, nil
}

// ParseAlterTable parses an alter table statement from a string.
func ParseAlterTable(d dialect.Dialect, input string) (*ast.AlterTableStatement, error) {
	return ParseAlterTableBytes(d, []byte(strings.TrimSpace(input)))
}

// ParseKeySpecificationBytes parses a table key or constraint specification
// from a byte slice. Unlike the targeted statement parsers, trailing
// content is tolerated here.
func ParseKeySpecificationBytes(d dialect.Dialect, input []byte) (ast.TableKey, error) {
	key, _, err := keySpecification(d, input)
	if err != nil {
		return nil, ErrParseFailed
	}
	return key, nil
}

// ParseKeySpecificationString parses a table key or constraint
// specification from a string.
func ParseKeySpecificationString(d dialect.Dialect, input string) (ast.TableKey, error) {
	return ParseKeySpecificationBytes(d, []byte(strings.TrimSpace(input)))
}
