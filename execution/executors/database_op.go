package executors

import (
	"strings"

	"github.com/karthikeyaspace/venus-db/binder"
	"github.com/karthikeyaspace/venus-db/dbfile"
	"github.com/karthikeyaspace/venus-db/execution/plans"
	"github.com/karthikeyaspace/venus-db/verr"
)

// DatabaseOp performs a filesystem-level action against the database
// directory. The engine façade normally intercepts USE_DATABASE before
// planning ever runs; this operator exists for completeness and returns
// "Ok" for that case too.
type DatabaseOp struct {
	dir  string
	plan plans.DatabaseOpPlan
	done bool
}

func NewDatabaseOp(dir string, plan plans.DatabaseOpPlan) *DatabaseOp {
	return &DatabaseOp{dir: dir, plan: plan}
}

func (e *DatabaseOp) Open() error {
	e.done = false
	return nil
}

func (e *DatabaseOp) Next() (*Output, error) {
	if e.done {
		return nil, nil
	}
	e.done = true

	switch e.plan.Op {
	case binder.CreateDB:
		if err := dbfile.Create(e.dir, e.plan.Name); err != nil {
			return nil, err
		}
		return &Output{Kind: MessageOutput, Success: true, Message: "Ok"}, nil

	case binder.DropDB:
		existed, err := dbfile.Drop(e.dir, e.plan.Name)
		if err != nil {
			return nil, err
		}
		if !existed {
			return &Output{Kind: MessageOutput, Success: false, Message: "Database does not exist: " + e.plan.Name}, nil
		}
		return &Output{Kind: MessageOutput, Success: true, Message: "Ok"}, nil

	case binder.UseDB:
		return &Output{Kind: MessageOutput, Success: true, Message: "Ok"}, nil

	case binder.ShowDBs:
		names, err := dbfile.List(e.dir)
		if err != nil {
			return nil, err
		}
		return &Output{Kind: MessageOutput, Success: true, Message: strings.Join(names, "\n")}, nil

	default:
		return nil, verr.New(verr.Internal, "unsupported database operation %q", e.plan.Op)
	}
}

func (e *DatabaseOp) Close() error {
	return nil
}
