package planner

import (
	"testing"

	"github.com/karthikeyaspace/venus-db/binder"
	"github.com/karthikeyaspace/venus-db/catalog"
	"github.com/karthikeyaspace/venus-db/execution/plans"
	"github.com/karthikeyaspace/venus-db/storage/schema"
	"github.com/karthikeyaspace/venus-db/storage/types"
	"github.com/stretchr/testify/require"
)

func TestPlanSelectBuildsProjectionOverSeqScan(t *testing.T) {
	table := &catalog.TableRef{Name: "users"}
	cols := []binder.BoundColumnRef{{Name: "id", Type: types.Int}}

	p, err := Plan(binder.BoundSelect{Table: table, Columns: cols})
	require.NoError(t, err)

	proj, ok := p.(plans.ProjectionPlan)
	require.True(t, ok)
	require.Equal(t, cols, proj.Columns)

	scan, ok := proj.Child.(plans.SeqScanPlan)
	require.True(t, ok)
	require.Same(t, table, scan.Table)
}

func TestPlanInsert(t *testing.T) {
	table := &catalog.TableRef{Name: "users"}
	values := []types.Value{types.NewInt(1)}

	p, err := Plan(binder.BoundInsert{Table: table, Values: values})
	require.NoError(t, err)
	ins := p.(plans.InsertPlan)
	require.Same(t, table, ins.Table)
	require.Equal(t, values, ins.Values)
}

func TestPlanCreateTable(t *testing.T) {
	sch, _ := schema.New([]schema.Column{{Name: "id", Type: types.Int}})
	p, err := Plan(binder.BoundCreateTable{Name: "t", Schema: sch})
	require.NoError(t, err)
	ct := p.(plans.CreateTablePlan)
	require.Equal(t, "t", ct.Name)
	require.Same(t, sch, ct.Schema)
}

func TestPlanDropTable(t *testing.T) {
	table := &catalog.TableRef{Name: "t"}
	p, err := Plan(binder.BoundDropTable{Table: table})
	require.NoError(t, err)
	require.Equal(t, plans.DropTablePlan{Table: table}, p)
}

func TestPlanShowTables(t *testing.T) {
	p, err := Plan(binder.BoundShowTables{})
	require.NoError(t, err)
	require.Equal(t, plans.ShowTablesPlan{}, p)
}

func TestPlanDatabaseOp(t *testing.T) {
	p, err := Plan(binder.BoundDatabase{Op: binder.CreateDB, Name: "foo"})
	require.NoError(t, err)
	require.Equal(t, plans.DatabaseOpPlan{Op: binder.CreateDB, Name: "foo"}, p)
}

func TestPlanRejectsUnplannableBoundNode(t *testing.T) {
	_, err := Plan(binder.BoundExit{})
	require.Error(t, err)
}
