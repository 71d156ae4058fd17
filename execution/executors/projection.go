package executors

import (
	"github.com/karthikeyaspace/venus-db/execution/plans"
	"github.com/karthikeyaspace/venus-db/storage/schema"
	"github.com/karthikeyaspace/venus-db/storage/types"
	"github.com/karthikeyaspace/venus-db/verr"
)

// Projection extracts a subset of its child's columns, by name, into a
// narrower output schema.
type Projection struct {
	plan      plans.ProjectionPlan
	child     Executor
	outSchema *schema.Schema
}

func NewProjection(plan plans.ProjectionPlan, child Executor) *Projection {
	cols := make([]schema.Column, len(plan.Columns))
	for i, c := range plan.Columns {
		cols[i] = schema.Column{Name: c.Name, Type: c.Type, OrdinalPosition: i}
	}
	// The binder forwards distinct columns for "*", but resolves named
	// columns one at a time without removing repeats, so "SELECT id, id"
	// makes schema.New fail on the duplicate name. The output schema is
	// then built directly from cols, duplicates included.
	sch, err := schema.New(cols)
	if err != nil {
		sch = &schema.Schema{Columns: cols}
	}
	return &Projection{plan: plan, child: child, outSchema: sch}
}

func (e *Projection) Open() error {
	return e.child.Open()
}

func (e *Projection) Next() (*Output, error) {
	out, err := e.child.Next()
	if err != nil {
		return nil, err
	}
	if out == nil || out.Kind == MessageOutput {
		return out, nil
	}

	values := make([]types.Value, len(e.plan.Columns))
	for i, col := range e.plan.Columns {
		idx, err := out.Schema.ColumnIndex(col.Name)
		if err != nil {
			return nil, verr.Wrap(verr.Internal, err, "projection: column %s missing from child schema", col.Name)
		}
		values[i] = out.Values[idx]
	}
	return &Output{Kind: TupleOutput, Values: values, Schema: e.outSchema}, nil
}

func (e *Projection) Close() error {
	return e.child.Close()
}
