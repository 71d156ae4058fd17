package executors

import (
	"fmt"

	"github.com/karthikeyaspace/venus-db/execution/plans"
	"github.com/karthikeyaspace/venus-db/storage/heap"
	"github.com/karthikeyaspace/venus-db/storage/tuple"
)

// Insert serializes one literal vector into a tuple and appends it to the
// target table's heap. Next is meaningful exactly once.
type Insert struct {
	ctx  *Context
	plan plans.InsertPlan
	done bool
}

func NewInsert(ctx *Context, plan plans.InsertPlan) *Insert {
	return &Insert{ctx: ctx, plan: plan}
}

func (e *Insert) Open() error {
	e.done = false
	return nil
}

func (e *Insert) Next() (*Output, error) {
	if e.done {
		return nil, nil
	}
	e.done = true

	tup, err := tuple.Serialize(e.plan.Values, e.plan.Table.Schema)
	if err != nil {
		return &Output{Kind: MessageOutput, Success: false, Message: err.Error()}, nil
	}

	h := heap.New(e.ctx.Pool, e.plan.Table.FirstPageID)
	if _, err := h.Insert(tup); err != nil {
		return &Output{Kind: MessageOutput, Success: false, Message: err.Error()}, nil
	}

	return &Output{
		Kind:    MessageOutput,
		Success: true,
		Message: fmt.Sprintf("Inserted 1 row into %s", e.plan.Table.Name),
	}, nil
}

func (e *Insert) Close() error {
	return nil
}
