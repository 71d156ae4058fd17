package executors

import (
	"fmt"

	"github.com/karthikeyaspace/venus-db/execution/plans"
)

// CreateTable registers a new table with the catalog. Next is meaningful
// exactly once.
type CreateTable struct {
	ctx  *Context
	plan plans.CreateTablePlan
	done bool
}

func NewCreateTable(ctx *Context, plan plans.CreateTablePlan) *CreateTable {
	return &CreateTable{ctx: ctx, plan: plan}
}

func (e *CreateTable) Open() error {
	e.done = false
	return nil
}

func (e *CreateTable) Next() (*Output, error) {
	if e.done {
		return nil, nil
	}
	e.done = true

	if _, err := e.ctx.Catalog.CreateTable(e.plan.Name, e.plan.Schema); err != nil {
		return &Output{Kind: MessageOutput, Success: false, Message: err.Error()}, nil
	}
	return &Output{
		Kind:    MessageOutput,
		Success: true,
		Message: fmt.Sprintf("Table %s created successfully.", e.plan.Name),
	}, nil
}

func (e *CreateTable) Close() error {
	return nil
}
