package parser

import (
	"testing"

	"github.com/karthikeyaspace/venus-db/sql/ast"
	"github.com/stretchr/testify/require"
)

func TestParseShowDatabasesAndTables(t *testing.T) {
	n, err := Parse("SHOW DATABASES")
	require.NoError(t, err)
	require.Equal(t, ast.ShowDatabases, n.Tag)

	n, err = Parse("show tables;")
	require.NoError(t, err)
	require.Equal(t, ast.ShowTables, n.Tag)
}

func TestParseUseDatabase(t *testing.T) {
	n, err := Parse("USE demo")
	require.NoError(t, err)
	require.Equal(t, ast.UseDatabase, n.Tag)
	require.Equal(t, "demo", n.Value)
}

func TestParseCreateTable(t *testing.T) {
	n, err := Parse("CREATE TABLE users (id INT PRIMARY KEY, name CHAR, score FLOAT)")
	require.NoError(t, err)
	require.Equal(t, ast.CreateTable, n.Tag)
	require.Equal(t, "users", n.Value)
	require.Len(t, n.Children, 3)
	require.Equal(t, "id INT PK", n.Children[0].Value)
	require.Equal(t, "name CHAR", n.Children[1].Value)
	require.Equal(t, "score FLOAT", n.Children[2].Value)
}

func TestParseCreateTableRequiresAtLeastOneColumn(t *testing.T) {
	_, err := Parse("CREATE TABLE empty ()")
	require.Error(t, err)
}

func TestParseSelectStar(t *testing.T) {
	n, err := Parse("SELECT * FROM users")
	require.NoError(t, err)
	require.Equal(t, ast.Select, n.Tag)
	require.Equal(t, ast.ProjectionList, n.Children[0].Tag)
	require.Equal(t, "*", n.Children[0].Children[0].Value)
	require.Equal(t, "users", n.Children[1].Value)
}

func TestParseSelectColumns(t *testing.T) {
	n, err := Parse("SELECT name, score FROM users;")
	require.NoError(t, err)
	require.Len(t, n.Children[0].Children, 2)
	require.Equal(t, "name", n.Children[0].Children[0].Value)
	require.Equal(t, "score", n.Children[0].Children[1].Value)
}

func TestParseInsert(t *testing.T) {
	n, err := Parse("INSERT INTO users VALUES (1, 'Alice', 95.5)")
	require.NoError(t, err)
	require.Equal(t, ast.Insert, n.Tag)
	require.Equal(t, "users", n.Value)
	require.Len(t, n.Children, 3)
	require.Equal(t, "1", n.Children[0].Value)
	require.False(t, n.Children[0].Quoted)
	require.Equal(t, "Alice", n.Children[1].Value)
	require.True(t, n.Children[1].Quoted)
	require.Equal(t, "95.5", n.Children[2].Value)
}

func TestParseBulkInsertUnsupported(t *testing.T) {
	_, err := Parse("INSERT INTO users VALUES (1, 'a'), (2, 'b')")
	require.Error(t, err)
}

func TestParseExit(t *testing.T) {
	n, err := Parse("EXIT")
	require.NoError(t, err)
	require.Equal(t, ast.Exit, n.Tag)
}

func TestParseUnknownConstructFails(t *testing.T) {
	_, err := Parse("FOOBAR baz")
	require.Error(t, err)
}

func TestParseTrailingGarbageFails(t *testing.T) {
	_, err := Parse("SHOW TABLES extra")
	require.Error(t, err)
}
