package catalog

import (
	"path/filepath"
	"testing"

	"github.com/karthikeyaspace/venus-db/storage/buf"
	"github.com/karthikeyaspace/venus-db/storage/disk"
	"github.com/karthikeyaspace/venus-db/storage/schema"
	"github.com/karthikeyaspace/venus-db/storage/types"
	"github.com/stretchr/testify/require"
)

func openTestCatalog(t *testing.T, path string) *Catalog {
	t.Helper()
	d, wasCold, err := disk.Open(path)
	require.NoError(t, err)
	pool := buf.NewPool(d, 32)
	c, err := Open(pool, wasCold)
	require.NoError(t, err)
	return c
}

func TestColdBootstrapReservedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cold.db")
	c := openTestCatalog(t, path)

	var names []string
	for it := c.masterTables.Begin(); !it.Equal(c.masterTables.End()); it = it.Next() {
		tup, err := it.Get()
		require.NoError(t, err)
		v, err := tup.Values(masterTablesSchema())
		require.NoError(t, err)
		names = append(names, v[1].Str)
	}
	require.Equal(t, []string{"master_tables", "master_columns"}, names)

	count := 0
	for it := c.masterColumns.Begin(); !it.Equal(c.masterColumns.End()); it = it.Next() {
		count++
	}
	require.Equal(t, 12, count)
	require.Equal(t, 2, c.nextTableID)
	require.Equal(t, 14, c.nextColumnID)
}

func TestCreateAndGetTableRef(t *testing.T) {
	path := filepath.Join(t.TempDir(), "create.db")
	c := openTestCatalog(t, path)

	sch, err := schema.New([]schema.Column{
		{Name: "id", Type: types.Int, PrimaryKey: true, OrdinalPosition: 0},
		{Name: "name", Type: types.Char, OrdinalPosition: 1},
		{Name: "score", Type: types.Float, OrdinalPosition: 2},
	})
	require.NoError(t, err)

	ref, err := c.CreateTable("users", sch)
	require.NoError(t, err)
	require.Equal(t, 2, ref.TableID)
	require.Equal(t, 0, ref.PrimaryKeyColumnID)

	got, err := c.GetTableRef("users")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, ref.FirstPageID, got.FirstPageID)
	require.Equal(t, []string{"id", "name", "score"}, got.Schema.Names())
}

func TestCreateTableDuplicateNameFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.db")
	c := openTestCatalog(t, path)
	sch, _ := schema.New([]schema.Column{{Name: "id", Type: types.Int}})

	_, err := c.CreateTable("t", sch)
	require.NoError(t, err)
	_, err = c.CreateTable("t", sch)
	require.Error(t, err)
}

func TestGetTableRefMissingReturnsNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")
	c := openTestCatalog(t, path)
	ref, err := c.GetTableRef("nope")
	require.NoError(t, err)
	require.Nil(t, ref)
}

func TestWarmBootstrapRecomputesNextIds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warm.db")
	sch, _ := schema.New([]schema.Column{{Name: "id", Type: types.Int}})

	c1 := openTestCatalog(t, path)
	_, err := c1.CreateTable("a", sch)
	require.NoError(t, err)
	require.NoError(t, c1.pool.Close())

	c2 := openTestCatalog(t, path)
	require.GreaterOrEqual(t, c2.nextTableID, 3)

	ref, err := c2.GetTableRef("a")
	require.NoError(t, err)
	require.NotNil(t, ref)
}

func TestDropTableNotImplemented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drop.db")
	c := openTestCatalog(t, path)
	err := c.DropTable("whatever")
	require.Error(t, err)
}
