package parser

import (
	"testing"

	"sqlcanon/pkg/sql/ast"
	"sqlcanon/pkg/sql/dialect"
)

func FuzzParseQuery(f *testing.F) {
	// Seed corpus: one statement per kind plus common malformed inputs.
	seeds := []string{
		"SELECT * FROM users WHERE id = 1",
		"SELECT id, name FROM users ORDER BY name ASC LIMIT 10",
		"SELECT count(*) FROM orders GROUP BY status HAVING count(*) > 2",
		"SELECT a FROM t UNION SELECT a FROM s",
		"INSERT INTO t (a, b) VALUES (1, 'x')",
		"INSERT IGNORE INTO t VALUES (1), (2) ON DUPLICATE KEY UPDATE a = 1",
		"UPDATE users SET age = 30 WHERE id = 5",
		"DELETE FROM logs WHERE created_at < '2024-01-01'",
		"CREATE TABLE foo (id INT PRIMARY KEY, name TEXT NOT NULL)",
		"CREATE VIEW v AS SELECT a FROM t",
		"CREATE CACHE c FROM SELECT a FROM t WHERE a = ?",
		"ALTER TABLE t ADD COLUMN a INT",
		"DROP TABLE IF EXISTS temp",
		"DROP VIEW v",
		"DROP CACHE c",
		"SET GLOBAL max_connections = 100",
		"START TRANSACTION",
		"COMMIT",
		"ROLLBACK",
		"RENAME TABLE a TO b",
		"USE mydb",
		"SHOW FULL TABLES",
		"EXPLAIN SELECT * FROM users",
		"delete from articles where `key`='aaa'",
		// Truncated / malformed
		"SELECT",
		"INSERT INTO",
		"CREATE TABLE",
		"DROP",
		"",
		"SELECT * FROM",
		"WHERE id = 1",
		"VALUES (1, 2",
		"SELECT 1 FROM t JOIN",
		"SELECT * FROM t WHERE (",
		"'unterminated",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// ParseQuery must never panic, and any successful parse must render
		// to a canonical form that parses back to an equal statement.
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("ParseQuery panicked on %q: %v", input, r)
			}
		}()
		for _, d := range []dialect.Dialect{dialect.MySQL, dialect.PostgreSQL} {
			q, err := ParseQuery(d, input)
			if err != nil {
				continue
			}
			// The canonical form quotes identifiers with backticks, so it
			// always re-parses under the MySQL dialect.
			again, err := ParseQuery(dialect.MySQL, q.String())
			if err != nil {
				t.Errorf("canonical form %q failed to re-parse", q.String())
				continue
			}
			if !ast.Equal(q, again) {
				t.Errorf("round trip changed %q", q.String())
			}
		}
	})
}
