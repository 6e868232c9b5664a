// Package lexer breaks raw SQL bytes into tokens. The lexer is dialect-aware:
// the dialect decides which quote characters open identifiers and which open
// string literals. Input case is preserved so literals and identifiers render
// back exactly; keyword recognition is case-insensitive.
package lexer

import (
	"strings"
	"unicode"

	"sqlcanon/pkg/sql/dialect"
)

// keywords maps uppercase SQL keyword strings to their token types.
var keywords = map[string]TokenType{
	"ADD":            ADD,
	"ALL":            ALL,
	"ALTER":          ALTER,
	"AND":            AND,
	"AS":             AS,
	"ASC":            ASC,
	"AUTO_INCREMENT": AUTO_INCREMENT,
	"BEGIN":          BEGIN,
	"BETWEEN":        BETWEEN,
	"BY":             BY,
	"CACHE":          CACHE,
	"CASCADE":        CASCADE,
	"CHANGE":         CHANGE,
	"COLUMN":         COLUMN,
	"COMMIT":         COMMIT,
	"CONSTRAINT":     CONSTRAINT,
	"CREATE":         CREATE,
	"DATABASES":      DATABASES,
	"DEFAULT":        DEFAULT,
	"DELETE":         DELETE,
	"DESC":           DESC,
	"DISTINCT":       DISTINCT,
	"DROP":           DROP,
	"DUPLICATE":      DUPLICATE,
	"EXCEPT":         EXCEPT,
	"EXISTS":         EXISTS,
	"EXPLAIN":        EXPLAIN,
	"FALSE":          FALSE,
	"FOREIGN":        FOREIGN,
	"FROM":           FROM,
	"FULL":           FULL,
	"GLOBAL":         GLOBAL,
	"GROUP":          GROUP,
	"HAVING":         HAVING,
	"IF":             IF,
	"IGNORE":         IGNORE,
	"IN":             IN,
	"INDEX":          INDEX,
	"INNER":          INNER,
	"INSERT":         INSERT,
	"INTERSECT":      INTERSECT,
	"INTO":           INTO,
	"IS":             IS,
	"JOIN":           JOIN,
	"KEY":            KEY,
	"LEFT":           LEFT,
	"LIKE":           LIKE,
	"LIMIT":          LIMIT,
	"MODIFY":         MODIFY,
	"NOT":            NOT,
	"NULL":           NULL,
	"OFFSET":         OFFSET,
	"ON":             ON,
	"OR":             OR,
	"ORDER":          ORDER,
	"OUTER":          OUTER,
	"PRIMARY":        PRIMARY,
	"REFERENCES":     REFERENCES,
	"RENAME":         RENAME,
	"RESTRICT":       RESTRICT,
	"RIGHT":          RIGHT,
	"ROLLBACK":       ROLLBACK,
	"SELECT":         SELECT,
	"SESSION":        SESSION,
	"SET":            SET,
	"SHOW":           SHOW,
	"START":          START,
	"TABLE":          TABLE,
	"TABLES":         TABLES,
	"TO":             TO,
	"TRANSACTION":    TRANSACTION,
	"TRUE":           TRUE,
	"UNION":          UNION,
	"UNIQUE":         UNIQUE,
	"UPDATE":         UPDATE,
	"USE":            USE,
	"VALUES":         VALUES,
	"VIEW":           VIEW,
	"WHERE":          WHERE,
	"WORK":           WORK,
}

// singleCharTokens maps single-byte punctuation to their token types.
var singleCharTokens = map[byte]TokenType{
	',': COMMA,
	'.': DOT,
	';': SEMICOLON,
	'(': LPAREN,
	')': RPAREN,
	'*': ASTERISK,
	'+': PLUS,
	'-': MINUS,
	'/': SLASH,
	'%': PERCENT,
	'?': PLACEHOLDER,
}

// Lexer performs lexical analysis over a byte slice of SQL input.
type Lexer struct {
	input   []byte
	dialect dialect.Dialect
	pos     int
}

// New creates a Lexer for the given dialect and input bytes. The input is
// not copied; the caller must not mutate it while tokens are being read.
func New(d dialect.Dialect, input []byte) *Lexer {
	return &Lexer{input: input, dialect: d}
}

// Pos returns the current byte position.
func (l *Lexer) Pos() int {
	return l.pos
}

// SetPos rewinds or advances the lexer to the given byte position.
// The position is only updated if it falls within [0, len(input)].
func (l *Lexer) SetPos(pos int) {
	if pos >= 0 && pos <= len(l.input) {
		l.pos = pos
	}
}

// Rest returns the unconsumed remainder of the input.
func (l *Lexer) Rest() []byte {
	return l.input[l.pos:]
}

// NextToken scans and returns the next token from the input. It skips
// leading whitespace and comments and returns an EOF token when the input
// is exhausted.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Type: EOF, Position: l.pos}
	}

	start := l.pos
	ch := l.input[l.pos]

	switch {
	case l.dialect.IsStringQuote(ch):
		return l.readString(start)
	case l.dialect.IsIdentQuote(ch):
		return l.readQuotedIdentifier(start)
	}

	if tt, ok := singleCharTokens[ch]; ok {
		l.pos++
		return Token{Type: tt, Value: string(ch), Position: start}
	}

	switch {
	case isOperatorChar(ch):
		return l.readOperator(start)
	case unicode.IsDigit(rune(ch)):
		return l.readNumber(start)
	case unicode.IsLetter(rune(ch)) || ch == '_':
		return l.readWord(start)
	default:
		l.pos++
		return Token{Type: INVALID, Value: string(ch), Position: start}
	}
}

func isOperatorChar(ch byte) bool {
	return ch == '=' || ch == '<' || ch == '>' || ch == '!'
}

// skipWhitespace advances past whitespace, "--" line comments and
// "/* ... */" block comments.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch {
		case unicode.IsSpace(rune(ch)):
			l.pos++
		case ch == '-' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '-':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
		case ch == '/' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '*':
			l.pos += 2
			for l.pos+1 < len(l.input) && !(l.input[l.pos] == '*' && l.input[l.pos+1] == '/') {
				l.pos++
			}
			if l.pos+1 < len(l.input) {
				l.pos += 2
			} else {
				l.pos = len(l.input)
			}
		default:
			return
		}
	}
}

// readOperator reads a comparison operator token (=, <, >, !=, <=, >=, <>).
func (l *Lexer) readOperator(start int) Token {
	for l.pos < len(l.input) && isOperatorChar(l.input[l.pos]) {
		l.pos++
	}
	return Token{Type: OPERATOR, Value: string(l.input[start:l.pos]), Position: start}
}

// readString reads a string literal. The closing quote may be escaped by
// doubling it or with a backslash; the returned value is unescaped.
func (l *Lexer) readString(start int) Token {
	quote := l.input[l.pos]
	l.pos++

	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '\\' && l.pos+1 < len(l.input) {
			sb.WriteByte(l.input[l.pos+1])
			l.pos += 2
			continue
		}
		if ch == quote {
			if l.pos+1 < len(l.input) && l.input[l.pos+1] == quote {
				sb.WriteByte(quote)
				l.pos += 2
				continue
			}
			l.pos++
			return Token{Type: STRING, Value: sb.String(), Position: start}
		}
		sb.WriteByte(ch)
		l.pos++
	}

	// Unterminated literal.
	return Token{Type: INVALID, Value: sb.String(), Position: start}
}

// readQuotedIdentifier reads a dialect-quoted identifier. A doubled quote
// character escapes itself.
func (l *Lexer) readQuotedIdentifier(start int) Token {
	quote := l.input[l.pos]
	l.pos++

	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == quote {
			if l.pos+1 < len(l.input) && l.input[l.pos+1] == quote {
				sb.WriteByte(quote)
				l.pos += 2
				continue
			}
			l.pos++
			return Token{Type: IDENTIFIER, Value: sb.String(), Position: start, Quoted: true}
		}
		sb.WriteByte(ch)
		l.pos++
	}

	return Token{Type: INVALID, Value: sb.String(), Position: start}
}

// readNumber reads an integer or floating point literal.
func (l *Lexer) readNumber(start int) Token {
	for l.pos < len(l.input) && unicode.IsDigit(rune(l.input[l.pos])) {
		l.pos++
	}

	if l.pos+1 < len(l.input) && l.input[l.pos] == '.' && unicode.IsDigit(rune(l.input[l.pos+1])) {
		l.pos++
		for l.pos < len(l.input) && unicode.IsDigit(rune(l.input[l.pos])) {
			l.pos++
		}
		return Token{Type: FLOAT, Value: string(l.input[start:l.pos]), Position: start}
	}

	return Token{Type: INT, Value: string(l.input[start:l.pos]), Position: start}
}

// readWord reads a bare identifier or keyword. The word is matched against
// the keyword table case-insensitively; keyword tokens carry the uppercase
// spelling, identifiers keep their original case.
func (l *Lexer) readWord(start int) Token {
	for l.pos < len(l.input) && isWordChar(l.input[l.pos]) {
		l.pos++
	}
	word := string(l.input[start:l.pos])
	if tt, ok := keywords[strings.ToUpper(word)]; ok {
		return Token{Type: tt, Value: strings.ToUpper(word), Position: start}
	}
	return Token{Type: IDENTIFIER, Value: word, Position: start}
}

func isWordChar(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || unicode.IsDigit(rune(ch)) || ch == '_'
}
