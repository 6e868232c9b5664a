package lexer

import (
	"testing"

	"sqlcanon/pkg/sql/dialect"
)

func FuzzNextToken(f *testing.F) {
	seeds := []string{
		"SELECT * FROM users WHERE id = 1",
		"INSERT INTO t (a, b) VALUES (1, 'x')",
		"select `weird``name` from \"quoted\"",
		"a != b <> c <= d >= e",
		"1 2.5 -3 'str' ? NULL",
		"-- comment\nSELECT 1",
		"/* unterminated",
		"'unterminated",
		"`unterminated",
		"",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// Lexing must terminate and never panic, in both dialects.
		for _, d := range []dialect.Dialect{dialect.MySQL, dialect.PostgreSQL} {
			l := New(d, []byte(input))
			for i := 0; ; i++ {
				tok := l.NextToken()
				if tok.Type == EOF {
					break
				}
				if i > len(input) {
					t.Fatalf("lexer did not terminate on %q", input)
				}
			}
		}
	})
}
