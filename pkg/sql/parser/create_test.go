package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlcanon/pkg/sql/ast"
	"sqlcanon/pkg/sql/dialect"
)

func TestParseCreateTable_ColumnTypes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"create table t (a int)", "CREATE TABLE `t` (`a` INT)"},
		{"create table t (a integer)", "CREATE TABLE `t` (`a` INT)"},
		{"create table t (a varchar(255))", "CREATE TABLE `t` (`a` VARCHAR(255))"},
		{"create table t (a decimal(10, 2))", "CREATE TABLE `t` (`a` DECIMAL(10, 2))"},
		{"create table t (a numeric(10, 2))", "CREATE TABLE `t` (`a` DECIMAL(10, 2))"},
		{"create table t (a bool)", "CREATE TABLE `t` (`a` BOOLEAN)"},
		{"create table t (a text, b blob, c datetime)", "CREATE TABLE `t` (`a` TEXT, `b` BLOB, `c` DATETIME)"},
	}
	for _, tt := range tests {
		stmt, err := ParseCreateTable(dialect.MySQL, tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.want, stmt.String())
	}
}

func TestParseCreateTable_UnknownTypeFails(t *testing.T) {
	_, err := ParseCreateTable(dialect.MySQL, "create table t (a frobnicator)")
	assert.Equal(t, ErrParseFailed, err)
}

func TestParseCreateTable_ColumnConstraints(t *testing.T) {
	stmt, err := ParseCreateTable(dialect.MySQL,
		"create table users (id int auto_increment primary key, email varchar(128) not null unique, age int null, active boolean default true, note text default 'none')")
	require.NoError(t, err)
	assert.Equal(t,
		"CREATE TABLE `users` (`id` INT AUTO_INCREMENT PRIMARY KEY, `email` VARCHAR(128) NOT NULL UNIQUE, `age` INT NULL, `active` BOOLEAN DEFAULT TRUE, `note` TEXT DEFAULT 'none')",
		stmt.String())
}

func TestParseCreateTable_IfNotExists(t *testing.T) {
	stmt, err := ParseCreateTable(dialect.MySQL, "create table if not exists t (a int)")
	require.NoError(t, err)
	assert.True(t, stmt.IfNotExists)
	assert.Equal(t, "CREATE TABLE IF NOT EXISTS `t` (`a` INT)", stmt.String())
}

func TestParseCreateTable_TableLevelKeys(t *testing.T) {
	stmt, err := ParseCreateTable(dialect.MySQL,
		"create table orders (id int, user_id int, primary key (id), key idx_user (user_id), unique key uq (id, user_id), constraint fk_user foreign key (user_id) references users (id))")
	require.NoError(t, err)
	require.Len(t, stmt.Keys, 4)
	assert.Equal(t,
		"CREATE TABLE `orders` (`id` INT, `user_id` INT, PRIMARY KEY (`id`), KEY `idx_user` (`user_id`), UNIQUE KEY `uq` (`id`, `user_id`), CONSTRAINT `fk_user` FOREIGN KEY (`user_id`) REFERENCES `users` (`id`))",
		stmt.String())
}

func TestParseKeySpec_Variants(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"primary key (id)", "PRIMARY KEY (`id`)"},
		{"key (a)", "KEY (`a`)"},
		{"index idx (a, b)", "KEY `idx` (`a`, `b`)"},
		{"unique (a)", "UNIQUE KEY (`a`)"},
		{"unique key (a)", "UNIQUE KEY (`a`)"},
		{"unique index uq (a)", "UNIQUE KEY `uq` (`a`)"},
		{"foreign key (a) references t (b)", "FOREIGN KEY (`a`) REFERENCES `t` (`b`)"},
		{"constraint fk foreign key (a) references t (b)", "CONSTRAINT `fk` FOREIGN KEY (`a`) REFERENCES `t` (`b`)"},
	}
	for _, tt := range tests {
		key, err := ParseKeySpecificationString(dialect.MySQL, tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.want, key.String())
	}
}

func TestParseKeySpec_Failures(t *testing.T) {
	inputs := []string{
		"primary (id)",
		"foreign key (a)",
		"constraint fk unique (a)",
		"column a int",
	}
	for _, in := range inputs {
		_, err := ParseKeySpecificationString(dialect.MySQL, in)
		assert.Equal(t, ErrParseFailed, err, "input: %q", in)
	}
}

func TestParseCreateView(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			"create view v as select a from t",
			"CREATE VIEW `v` AS SELECT `a` FROM `t`",
		},
		{
			"create view v (x, y) as select a, b from t",
			"CREATE VIEW `v` (`x`, `y`) AS SELECT `a`, `b` FROM `t`",
		},
		{
			"create view v as select a from t union select a from s",
			"CREATE VIEW `v` AS SELECT `a` FROM `t` UNION SELECT `a` FROM `s`",
		},
	}
	for _, tt := range tests {
		q, err := ParseQuery(dialect.MySQL, tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		require.IsType(t, &ast.CreateViewStatement{}, q)
		assert.Equal(t, tt.want, q.String())
	}
}

func TestParseCreateCache(t *testing.T) {
	q, err := ParseQuery(dialect.MySQL, "create cache c from select a from t where a = ?")
	require.NoError(t, err)
	assert.Equal(t, "CREATE CACHE `c` FROM SELECT `a` FROM `t` WHERE (`a` = ?)", q.String())

	q, err = ParseQuery(dialect.MySQL, "create cache from select a from t")
	require.NoError(t, err)
	cache, ok := q.(*ast.CreateCacheStatement)
	require.True(t, ok)
	assert.Empty(t, cache.Name)
	assert.Equal(t, "CREATE CACHE FROM SELECT `a` FROM `t`", q.String())
}

func TestParseDropStatements(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"drop table t", "DROP TABLE `t`"},
		{"drop table if exists t, s", "DROP TABLE IF EXISTS `t`, `s`"},
		{"drop view v", "DROP VIEW `v`"},
		{"drop view if exists v", "DROP VIEW IF EXISTS `v`"},
		{"drop cache c", "DROP CACHE `c`"},
	}
	for _, tt := range tests {
		q, err := ParseQuery(dialect.MySQL, tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.want, q.String())
	}
}
