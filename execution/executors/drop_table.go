package executors

import (
	"github.com/karthikeyaspace/venus-db/execution/plans"
	"github.com/karthikeyaspace/venus-db/verr"
)

// DropTable always fails with not-implemented: the catalog carries no
// reclamation path for a table's pages.
type DropTable struct {
	plan plans.DropTablePlan
}

func NewDropTable(plan plans.DropTablePlan) *DropTable {
	return &DropTable{plan: plan}
}

func (e *DropTable) Open() error {
	return nil
}

func (e *DropTable) Next() (*Output, error) {
	return nil, verr.New(verr.NotImplemented, "DROP TABLE %s is not implemented", e.plan.Table.Name)
}

func (e *DropTable) Close() error {
	return nil
}
