package lexer

type TokenType int

const (
	EOF TokenType = iota
	INVALID
	IDENTIFIER
	STRING
	INT
	FLOAT
	OPERATOR
	PLACEHOLDER
	COMMA
	DOT
	SEMICOLON
	LPAREN
	RPAREN
	ASTERISK
	PLUS
	MINUS
	SLASH
	PERCENT

	ADD
	ALL
	ALTER
	AND
	AS
	ASC
	AUTO_INCREMENT
	BEGIN
	BETWEEN
	BY
	CACHE
	CASCADE
	CHANGE
	COLUMN
	COMMIT
	CONSTRAINT
	CREATE
	DATABASES
	DEFAULT
	DELETE
	DESC
	DISTINCT
	DROP
	DUPLICATE
	EXCEPT
	EXISTS
	EXPLAIN
	FALSE
	FOREIGN
	FROM
	FULL
	GLOBAL
	GROUP
	HAVING
	IF
	IGNORE
	IN
	INDEX
	INNER
	INSERT
	INTERSECT
	INTO
	IS
	JOIN
	KEY
	LEFT
	LIKE
	LIMIT
	MODIFY
	NOT
	NULL
	OFFSET
	ON
	OR
	ORDER
	OUTER
	PRIMARY
	REFERENCES
	RENAME
	RESTRICT
	RIGHT
	ROLLBACK
	SELECT
	SESSION
	SET
	SHOW
	START
	TABLE
	TABLES
	TO
	TRANSACTION
	TRUE
	UNION
	UNIQUE
	UPDATE
	USE
	VALUES
	VIEW
	WHERE
	WORK
)

var tokenTypeNames = map[TokenType]string{
	EOF:         "EOF",
	INVALID:     "INVALID",
	IDENTIFIER:  "IDENTIFIER",
	STRING:      "STRING",
	INT:         "INT",
	FLOAT:       "FLOAT",
	OPERATOR:    "OPERATOR",
	PLACEHOLDER: "PLACEHOLDER",
	COMMA:       ",",
	DOT:         ".",
	SEMICOLON:   ";",
	LPAREN:      "(",
	RPAREN:      ")",
	ASTERISK:    "*",
	PLUS:        "+",
	MINUS:       "-",
	SLASH:       "/",
	PERCENT:     "%",
}

func init() {
	for kw, tt := range keywords {
		tokenTypeNames[tt] = kw
	}
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a single lexical unit. Position is the byte offset of the token's
// first character in the input, which lets the parser rewind with SetPos.
// Quoted marks identifiers that were written with dialect quoting in the
// input; a quoted identifier never matches a keyword.
type Token struct {
	Type     TokenType
	Value    string
	Position int
	Quoted   bool
}
