package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlcanon/pkg/sql/dialect"
)

func collect(l *Lexer) []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func TestNextToken_KeywordsAreCaseInsensitive(t *testing.T) {
	l := New(dialect.MySQL, []byte("select Select SELECT sElEcT"))
	tokens := collect(l)
	require.Len(t, tokens, 4)
	for _, tok := range tokens {
		assert.Equal(t, SELECT, tok.Type)
		assert.Equal(t, "SELECT", tok.Value)
	}
}

func TestNextToken_IdentifiersPreserveCase(t *testing.T) {
	l := New(dialect.MySQL, []byte("UserName"))
	tok := l.NextToken()
	assert.Equal(t, IDENTIFIER, tok.Type)
	assert.Equal(t, "UserName", tok.Value)
	assert.False(t, tok.Quoted)
}

func TestNextToken_BacktickQuotedIdentifier(t *testing.T) {
	l := New(dialect.MySQL, []byte("`select`"))
	tok := l.NextToken()
	assert.Equal(t, IDENTIFIER, tok.Type)
	assert.Equal(t, "select", tok.Value)
	assert.True(t, tok.Quoted)
}

func TestNextToken_QuotedIdentifierByDialect(t *testing.T) {
	// Double quotes delimit strings in MySQL but identifiers in PostgreSQL.
	my := New(dialect.MySQL, []byte(`"hello"`))
	tok := my.NextToken()
	assert.Equal(t, STRING, tok.Type)
	assert.Equal(t, "hello", tok.Value)

	pg := New(dialect.PostgreSQL, []byte(`"hello"`))
	tok = pg.NextToken()
	assert.Equal(t, IDENTIFIER, tok.Type)
	assert.Equal(t, "hello", tok.Value)
	assert.True(t, tok.Quoted)
}

func TestNextToken_StringEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"doubled quote", `'it''s'`, "it's"},
		{"backslash quote", `'it\'s'`, "it's"},
		{"backslash backslash", `'a\\b'`, `a\b`},
		{"preserves case", `'MixedCase'`, "MixedCase"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(dialect.MySQL, []byte(tt.input))
			tok := l.NextToken()
			require.Equal(t, STRING, tok.Type)
			assert.Equal(t, tt.want, tok.Value)
		})
	}
}

func TestNextToken_Numbers(t *testing.T) {
	l := New(dialect.MySQL, []byte("42 3.14 0"))
	tokens := collect(l)
	require.Len(t, tokens, 3)
	assert.Equal(t, INT, tokens[0].Type)
	assert.Equal(t, "42", tokens[0].Value)
	assert.Equal(t, FLOAT, tokens[1].Type)
	assert.Equal(t, "3.14", tokens[1].Value)
	assert.Equal(t, INT, tokens[2].Type)
}

func TestNextToken_Operators(t *testing.T) {
	l := New(dialect.MySQL, []byte("= != <> <= >= < >"))
	tokens := collect(l)
	require.Len(t, tokens, 7)
	want := []string{"=", "!=", "<>", "<=", ">=", "<", ">"}
	for i, tok := range tokens {
		assert.Equal(t, OPERATOR, tok.Type)
		assert.Equal(t, want[i], tok.Value)
	}
}

func TestNextToken_Punctuation(t *testing.T) {
	l := New(dialect.MySQL, []byte("( ) , . ; * ? + - / %"))
	tokens := collect(l)
	want := []TokenType{LPAREN, RPAREN, COMMA, DOT, SEMICOLON, ASTERISK, PLACEHOLDER, PLUS, MINUS, SLASH, PERCENT}
	require.Len(t, tokens, len(want))
	for i, tok := range tokens {
		assert.Equal(t, want[i], tok.Type, "token %d (%q)", i, tok.Value)
	}
}

func TestNextToken_SkipsComments(t *testing.T) {
	input := "SELECT -- a line comment\n/* a block\ncomment */ 1"
	l := New(dialect.MySQL, []byte(input))
	tokens := collect(l)
	require.Len(t, tokens, 2)
	assert.Equal(t, SELECT, tokens[0].Type)
	assert.Equal(t, INT, tokens[1].Type)
}

func TestSetPos_RewindsToken(t *testing.T) {
	l := New(dialect.MySQL, []byte("SELECT id"))
	first := l.NextToken()
	require.Equal(t, SELECT, first.Type)

	second := l.NextToken()
	require.Equal(t, IDENTIFIER, second.Type)

	l.SetPos(second.Position)
	again := l.NextToken()
	assert.Equal(t, second, again)
}

func TestRest_ReturnsUnconsumedInput(t *testing.T) {
	l := New(dialect.MySQL, []byte("USE db trailing"))
	l.NextToken()
	tok := l.NextToken()
	require.Equal(t, IDENTIFIER, tok.Type)
	assert.Equal(t, " trailing", string(l.Rest()))
}

func TestNextToken_EmptyInput(t *testing.T) {
	l := New(dialect.MySQL, nil)
	tok := l.NextToken()
	assert.Equal(t, EOF, tok.Type)
}
