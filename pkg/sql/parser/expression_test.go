package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlcanon/pkg/sql/ast"
	"sqlcanon/pkg/sql/dialect"
	"sqlcanon/pkg/sql/lexer"
)

// parseExprString runs the expression grammar over the whole input.
func parseExprString(t *testing.T, input string) ast.Expression {
	t.Helper()
	l := lexer.New(dialect.MySQL, []byte(input))
	expr, err := parseExpression(l)
	require.NoError(t, err, "input: %s", input)
	require.Empty(t, string(l.Rest()), "unconsumed input for: %s", input)
	return expr
}

func TestParseExpression_Canonical(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a = 1", "(`a` = 1)"},
		{"a != 1", "(`a` != 1)"},
		{"a <> 1", "(`a` != 1)"},
		{"a < 1", "(`a` < 1)"},
		{"a <= 1", "(`a` <= 1)"},
		{"a > 1", "(`a` > 1)"},
		{"a >= 1", "(`a` >= 1)"},
		{"a like 'x%'", "(`a` LIKE 'x%')"},
		{"a not like 'x%'", "(`a` NOT LIKE 'x%')"},
		{"a is null", "(`a` IS NULL)"},
		{"a is not null", "(`a` IS NOT NULL)"},
		{"a in (1, 2, 3)", "(`a` IN (1, 2, 3))"},
		{"a not in (1, 2)", "(`a` NOT IN (1, 2))"},
		{"a between 1 and 10", "(`a` BETWEEN 1 AND 10)"},
		{"a not between 1 and 10", "(`a` NOT BETWEEN 1 AND 10)"},
		{"not a = 1", "NOT (`a` = 1)"},
		{"a = 1 and b = 2", "((`a` = 1) AND (`b` = 2))"},
		{"a = 1 or b = 2", "((`a` = 1) OR (`b` = 2))"},
		{"a = 1 and b = 2 or c = 3", "(((`a` = 1) AND (`b` = 2)) OR (`c` = 3))"},
		{"a = 1 or b = 2 and c = 3", "((`a` = 1) OR ((`b` = 2) AND (`c` = 3)))"},
		{"(a = 1 or b = 2) and c = 3", "(((`a` = 1) OR (`b` = 2)) AND (`c` = 3))"},
		{"a + b * c", "(`a` + (`b` * `c`))"},
		{"(a + b) * c", "((`a` + `b`) * `c`)"},
		{"a - b - c", "((`a` - `b`) - `c`)"},
		{"a / b % c", "((`a` / `b`) % `c`)"},
		{"a + 1 > b - 2", "((`a` + 1) > (`b` - 2))"},
		{"price * quantity >= 100.5", "((`price` * `quantity`) >= 100.5)"},
		{"t.a = s.b", "(`t`.`a` = `s`.`b`)"},
		{"f(a, b) = 1", "(f(`a`, `b`) = 1)"},
		{"count(distinct a) > 0", "(count(DISTINCT `a`) > 0)"},
		{"a = -5", "(`a` = -5)"},
		{"a = ?", "(`a` = ?)"},
		{"a = true", "(`a` = TRUE)"},
		{"a = false", "(`a` = FALSE)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseExprString(t, tt.input).String(), "input: %s", tt.input)
	}
}

func TestParseExpression_QuotedIdentifierNeverFunction(t *testing.T) {
	// A quoted name followed by a parenthesis is not a call.
	l := lexer.New(dialect.MySQL, []byte("`count` = 1"))
	expr, err := parseExpression(l)
	require.NoError(t, err)
	assert.Equal(t, "(`count` = 1)", expr.String())
}

func TestParseExpression_Errors(t *testing.T) {
	inputs := []string{
		"",
		"a =",
		"a in 1",
		"a between 1",
		"a is 1",
		"(a = 1",
		"a not 1",
	}
	for _, in := range inputs {
		l := lexer.New(dialect.MySQL, []byte(in))
		_, err := parseExpression(l)
		assert.Error(t, err, "input: %q", in)
	}
}
