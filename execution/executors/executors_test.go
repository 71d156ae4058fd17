package executors

import (
	"path/filepath"
	"testing"

	"github.com/karthikeyaspace/venus-db/binder"
	"github.com/karthikeyaspace/venus-db/catalog"
	"github.com/karthikeyaspace/venus-db/execution/plans"
	"github.com/karthikeyaspace/venus-db/storage/buf"
	"github.com/karthikeyaspace/venus-db/storage/disk"
	"github.com/karthikeyaspace/venus-db/storage/schema"
	"github.com/karthikeyaspace/venus-db/storage/types"
	"github.com/karthikeyaspace/venus-db/verr"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exec.db")
	d, wasCold, err := disk.Open(path)
	require.NoError(t, err)
	pool := buf.NewPool(d, 32)
	cat, err := catalog.Open(pool, wasCold)
	require.NoError(t, err)
	return &Context{Catalog: cat, Pool: pool}
}

func drain(t *testing.T, e Executor) []*Output {
	t.Helper()
	require.NoError(t, e.Open())
	defer func() { require.NoError(t, e.Close()) }()

	var outs []*Output
	for {
		out, err := e.Next()
		require.NoError(t, err)
		if out == nil {
			return outs
		}
		outs = append(outs, out)
	}
}

func usersSchema(t *testing.T) *schema.Schema {
	t.Helper()
	sch, err := schema.New([]schema.Column{
		{Name: "id", Type: types.Int, PrimaryKey: true, OrdinalPosition: 0},
		{Name: "name", Type: types.Char, OrdinalPosition: 1},
		{Name: "score", Type: types.Float, OrdinalPosition: 2},
	})
	require.NoError(t, err)
	return sch
}

func TestCreateTableInsertAndSeqScan(t *testing.T) {
	ctx := newTestContext(t)

	ct := NewCreateTable(ctx, plans.CreateTablePlan{Name: "users", Schema: usersSchema(t)})
	outs := drain(t, ct)
	require.Len(t, outs, 1)
	require.True(t, outs[0].Success)
	require.Equal(t, "Table users created successfully.", outs[0].Message)

	ref, err := ctx.Catalog.GetTableRef("users")
	require.NoError(t, err)
	require.NotNil(t, ref)

	ins := NewInsert(ctx, plans.InsertPlan{Table: ref, Values: []types.Value{
		types.NewInt(1), types.NewChar("Alice"), types.NewFloat(95.5),
	}})
	outs = drain(t, ins)
	require.Len(t, outs, 1)
	require.True(t, outs[0].Success)
	require.Equal(t, "Inserted 1 row into users", outs[0].Message)

	scan := NewSeqScan(ctx, plans.SeqScanPlan{Table: ref})
	outs = drain(t, scan)
	require.Len(t, outs, 1)
	require.Equal(t, TupleOutput, outs[0].Kind)
	require.Equal(t, "Alice", outs[0].Values[1].Str)
}

func TestProjectionOverSeqScan(t *testing.T) {
	ctx := newTestContext(t)
	_, err := ctx.Catalog.CreateTable("users", usersSchema(t))
	require.NoError(t, err)
	ref, err := ctx.Catalog.GetTableRef("users")
	require.NoError(t, err)

	ins := NewInsert(ctx, plans.InsertPlan{Table: ref, Values: []types.Value{
		types.NewInt(7), types.NewChar("Bob"), types.NewFloat(3.5),
	}})
	require.Len(t, drain(t, ins), 1)

	proj := NewProjection(
		plans.ProjectionPlan{Columns: []binder.BoundColumnRef{{Name: "name", Type: types.Char}}},
		NewSeqScan(ctx, plans.SeqScanPlan{Table: ref}),
	)
	outs := drain(t, proj)
	require.Len(t, outs, 1)
	require.Equal(t, []string{"name"}, outs[0].Schema.Names())
	require.Equal(t, "Bob", outs[0].Values[0].Str)
}

func TestShowTablesListsBootstrapAndUserTables(t *testing.T) {
	ctx := newTestContext(t)
	_, err := ctx.Catalog.CreateTable("users", usersSchema(t))
	require.NoError(t, err)

	outs := drain(t, NewShowTables(ctx))
	var names []string
	for _, o := range outs {
		names = append(names, o.Values[0].Str)
	}
	require.Equal(t, []string{"master_tables", "master_columns", "users"}, names)
}

func TestDropTableIsNotImplemented(t *testing.T) {
	ctx := newTestContext(t)
	_, err := ctx.Catalog.CreateTable("t", usersSchema(t))
	require.NoError(t, err)
	ref, err := ctx.Catalog.GetTableRef("t")
	require.NoError(t, err)

	drop := NewDropTable(plans.DropTablePlan{Table: ref})
	require.NoError(t, drop.Open())
	_, err = drop.Next()
	require.Error(t, err)
	require.True(t, verr.Is(err, verr.NotImplemented))
}

func TestDatabaseOpCreateUseDropShow(t *testing.T) {
	dir := t.TempDir()

	outs := drain(t, NewDatabaseOp(dir, plans.DatabaseOpPlan{Op: binder.CreateDB, Name: "foo"}))
	require.Equal(t, "Ok", outs[0].Message)

	outs = drain(t, NewDatabaseOp(dir, plans.DatabaseOpPlan{Op: binder.ShowDBs}))
	require.Equal(t, "foo", outs[0].Message)

	outs = drain(t, NewDatabaseOp(dir, plans.DatabaseOpPlan{Op: binder.UseDB, Name: "foo"}))
	require.Equal(t, "Ok", outs[0].Message)

	outs = drain(t, NewDatabaseOp(dir, plans.DatabaseOpPlan{Op: binder.DropDB, Name: "foo"}))
	require.True(t, outs[0].Success)
	require.Equal(t, "Ok", outs[0].Message)

	outs = drain(t, NewDatabaseOp(dir, plans.DatabaseOpPlan{Op: binder.DropDB, Name: "foo"}))
	require.False(t, outs[0].Success)
	require.Equal(t, "Database does not exist: foo", outs[0].Message)
}
