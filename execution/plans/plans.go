// Package plans defines the plan-node tree produced by the planner and
// consumed by the executors. Each bound-AST shape gets its own concrete
// plan type rather than a single generic node.
package plans

import (
	"github.com/karthikeyaspace/venus-db/binder"
	"github.com/karthikeyaspace/venus-db/catalog"
	"github.com/karthikeyaspace/venus-db/storage/schema"
	"github.com/karthikeyaspace/venus-db/storage/types"
)

// Plan is the marker interface every plan node implements.
type Plan interface {
	isPlan()
}

// SeqScanPlan reads every live tuple of a table in heap order.
type SeqScanPlan struct {
	Table *catalog.TableRef
}

// ProjectionPlan extracts Columns from its Child's output tuples.
type ProjectionPlan struct {
	Columns []binder.BoundColumnRef
	Child   Plan
}

// InsertPlan serializes Values into one tuple and inserts it into Table.
type InsertPlan struct {
	Table  *catalog.TableRef
	Values []types.Value
}

// CreateTablePlan registers a new table with the catalog.
type CreateTablePlan struct {
	Name   string
	Schema *schema.Schema
}

// DropTablePlan names an existing table to drop. Its executor fails with
// not-implemented and removes nothing from the catalog.
type DropTablePlan struct {
	Table *catalog.TableRef
}

// ShowTablesPlan lists every table registered in the catalog.
type ShowTablesPlan struct{}

// DatabaseOpPlan performs a filesystem-level database action.
type DatabaseOpPlan struct {
	Op   binder.DatabaseOpKind
	Name string
}

func (SeqScanPlan) isPlan()     {}
func (ProjectionPlan) isPlan()  {}
func (InsertPlan) isPlan()      {}
func (CreateTablePlan) isPlan() {}
func (DropTablePlan) isPlan()   {}
func (ShowTablesPlan) isPlan()  {}
func (DatabaseOpPlan) isPlan()  {}
