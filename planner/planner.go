// Package planner lowers bound AST nodes into the plan tree the executors
// walk. The lowering is trivial and one-to-one: no cost model, no rewrite
// rules.
package planner

import (
	"github.com/karthikeyaspace/venus-db/binder"
	"github.com/karthikeyaspace/venus-db/execution/plans"
	"github.com/karthikeyaspace/venus-db/verr"
)

// Plan lowers b into a plan node.
func Plan(b binder.Bound) (plans.Plan, error) {
	switch n := b.(type) {
	case binder.BoundSelect:
		return plans.ProjectionPlan{
			Columns: n.Columns,
			Child:   plans.SeqScanPlan{Table: n.Table},
		}, nil
	case binder.BoundInsert:
		return plans.InsertPlan{Table: n.Table, Values: n.Values}, nil
	case binder.BoundCreateTable:
		return plans.CreateTablePlan{Name: n.Name, Schema: n.Schema}, nil
	case binder.BoundDropTable:
		return plans.DropTablePlan{Table: n.Table}, nil
	case binder.BoundShowTables:
		return plans.ShowTablesPlan{}, nil
	case binder.BoundDatabase:
		return plans.DatabaseOpPlan{Op: n.Op, Name: n.Name}, nil
	default:
		return nil, verr.New(verr.Internal, "cannot plan bound node of type %T", b)
	}
}
