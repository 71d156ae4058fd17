package executors

import (
	"github.com/karthikeyaspace/venus-db/execution/plans"
	"github.com/karthikeyaspace/venus-db/storage/heap"
)

// SeqScan walks every live tuple of a table heap in slot order.
type SeqScan struct {
	ctx  *Context
	plan plans.SeqScanPlan

	heap *heap.TableHeap
	it   *heap.Iterator
	end  *heap.Iterator
}

func NewSeqScan(ctx *Context, plan plans.SeqScanPlan) *SeqScan {
	return &SeqScan{ctx: ctx, plan: plan}
}

func (e *SeqScan) Open() error {
	e.heap = heap.New(e.ctx.Pool, e.plan.Table.FirstPageID)
	e.it = e.heap.Begin()
	e.end = e.heap.End()
	return nil
}

func (e *SeqScan) Next() (*Output, error) {
	if e.it.Equal(e.end) {
		return nil, nil
	}
	tup, err := e.it.Get()
	if err != nil {
		return nil, err
	}
	values, err := tup.Values(e.plan.Table.Schema)
	if err != nil {
		return nil, err
	}
	e.it = e.it.Next()
	return &Output{Kind: TupleOutput, Values: values, Schema: e.plan.Table.Schema}, nil
}

func (e *SeqScan) Close() error {
	return nil
}
