package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColdBootstrapScenario(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)

	rs := e.Execute("CREATE DATABASE demo")
	require.True(t, rs.Success, rs.Message)

	_, err := os.Stat(filepath.Join(dir, "demo.db"))
	require.NoError(t, err)

	rs = e.Execute("USE demo")
	require.True(t, rs.Success, rs.Message)

	rs = e.Execute("SHOW TABLES")
	require.True(t, rs.Success, rs.Message)
	require.NotNil(t, rs.Tuples)
	require.Len(t, rs.Tuples.Rows, 2)
	require.Equal(t, "master_tables", rs.Tuples.Rows[0][0].Str)
	require.Equal(t, "master_columns", rs.Tuples.Rows[1][0].Str)
}

func setupUsers(t *testing.T, e *Engine) {
	t.Helper()
	require.True(t, e.Execute("CREATE DATABASE demo").Success)
	require.True(t, e.Execute("USE demo").Success)
	rs := e.Execute("CREATE TABLE users (id INT PRIMARY KEY, name CHAR, score FLOAT)")
	require.True(t, rs.Success, rs.Message)
	rs = e.Execute("INSERT INTO users VALUES (1, 'Alice', 95.5)")
	require.True(t, rs.Success, rs.Message)
	rs = e.Execute("INSERT INTO users VALUES (2, 'Bob', 87.2)")
	require.True(t, rs.Success, rs.Message)
}

func TestCreateInsertSelectScenario(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)
	setupUsers(t, e)

	rs := e.Execute("SELECT * FROM users")
	require.True(t, rs.Success, rs.Message)
	require.NotNil(t, rs.Tuples)
	require.Equal(t, []string{"id", "name", "score"}, rs.Tuples.Schema.Names())
	require.Len(t, rs.Tuples.Rows, 2)

	require.Equal(t, int32(1), rs.Tuples.Rows[0][0].Int)
	require.Equal(t, "Alice", rs.Tuples.Rows[0][1].Str)
	require.Equal(t, float32(95.5), rs.Tuples.Rows[0][2].Float)

	require.Equal(t, int32(2), rs.Tuples.Rows[1][0].Int)
	require.Equal(t, "Bob", rs.Tuples.Rows[1][1].Str)
	require.Equal(t, float32(87.2), rs.Tuples.Rows[1][2].Float)
}

func TestProjectionScenario(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)
	setupUsers(t, e)

	rs := e.Execute("SELECT name, score FROM users")
	require.True(t, rs.Success, rs.Message)
	require.Equal(t, []string{"name", "score"}, rs.Tuples.Schema.Names())
	require.Len(t, rs.Tuples.Rows, 2)
	require.Equal(t, "Alice", rs.Tuples.Rows[0][0].Str)
	require.Equal(t, "Bob", rs.Tuples.Rows[1][0].Str)
}

func TestWarmBootstrapScenario(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)
	setupUsers(t, e)

	rs := e.Execute("EXIT")
	require.True(t, rs.Success)
	require.True(t, rs.Exited)

	e2 := New(dir)
	rs = e2.Execute("USE demo")
	require.True(t, rs.Success, rs.Message)

	rs = e2.Execute("SELECT * FROM users")
	require.True(t, rs.Success, rs.Message)
	require.Len(t, rs.Tuples.Rows, 2)

	// next_table_id must have been recomputed >= 3 (0/1 reserved, 2 used by
	// "users"): a freshly created table must not collide with it.
	rs = e2.Execute("CREATE TABLE another (id INT)")
	require.True(t, rs.Success, rs.Message)
	ref, err := e2.catalog.GetTableRef("another")
	require.NoError(t, err)
	require.NotNil(t, ref)
	require.GreaterOrEqual(t, ref.TableID, 3)
}

func TestUnknownColumnErrorScenario(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)
	setupUsers(t, e)

	rs := e.Execute("SELECT foo FROM users")
	require.False(t, rs.Success)
	require.Contains(t, rs.Message, "foo")
}

func TestArityMismatchErrorScenario(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)
	setupUsers(t, e)

	rs := e.Execute("INSERT INTO users VALUES (3, 'Carol')")
	require.False(t, rs.Success)
	require.Contains(t, rs.Message, "2")
	require.Contains(t, rs.Message, "3")
}

func TestCreateTableMessageReportsRowsAffected(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)
	require.True(t, e.Execute("CREATE DATABASE demo").Success)
	require.True(t, e.Execute("USE demo").Success)

	rs := e.Execute("CREATE TABLE t (id INT)")
	require.True(t, rs.Success)
	require.Contains(t, rs.Message, "created successfully")
	require.Contains(t, rs.Message, "(0 rows affected)")
}

func TestDatabaseOpDropMissingIsUnsuccessfulMessage(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)
	require.True(t, e.Execute("CREATE DATABASE demo").Success)
	require.True(t, e.Execute("USE demo").Success)

	rs := e.Execute("DROP DATABASE ghost")
	require.False(t, rs.Success)
	require.Contains(t, rs.Message, "ghost")
}

func TestSyntaxErrorIsAFailureNotAPanic(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)
	rs := e.Execute("FOOBAR")
	require.False(t, rs.Success)
	require.NotEmpty(t, rs.Message)
}
