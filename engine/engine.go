// Package engine implements the single entry point of the query pipeline:
// parse, intercept USE/EXIT, bind, plan, build an executor tree, and drive
// it to a ResultSet.
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/karthikeyaspace/venus-db/binder"
	"github.com/karthikeyaspace/venus-db/catalog"
	"github.com/karthikeyaspace/venus-db/config"
	"github.com/karthikeyaspace/venus-db/dbfile"
	"github.com/karthikeyaspace/venus-db/execution/executors"
	"github.com/karthikeyaspace/venus-db/execution/plans"
	"github.com/karthikeyaspace/venus-db/planner"
	"github.com/karthikeyaspace/venus-db/sql/ast"
	"github.com/karthikeyaspace/venus-db/sql/parser"
	"github.com/karthikeyaspace/venus-db/storage/buf"
	"github.com/karthikeyaspace/venus-db/storage/disk"
	"github.com/karthikeyaspace/venus-db/verr"
	"github.com/sirupsen/logrus"
)

// Engine owns exactly one open database's storage stack at a time. USE
// swaps the buffer pool and catalog it hands to the binder/executor; no
// other component holds those references across statements.
type Engine struct {
	dir     string
	pool    *buf.Pool
	catalog *catalog.Catalog
	dbName  string
	log     logrus.FieldLogger
}

// New builds an Engine rooted at dir, the directory holding one ".db" file
// per database. No database is open until the first USE statement.
func New(dir string) *Engine {
	return &Engine{dir: dir, log: logrus.WithField("component", "engine")}
}

// Execute runs one statement to completion.
func (e *Engine) Execute(query string) ResultSet {
	log := e.log.WithField("query_id", uuid.NewString())
	log.WithField("query", query).Debug("executing query")

	node, err := parser.Parse(query)
	if err != nil {
		log.WithError(err).Debug("parse failed")
		return ResultSet{Message: err.Error()}
	}

	switch node.Tag {
	case ast.UseDatabase:
		if err := e.switchDatabase(node.Value); err != nil {
			log.WithError(err).Error("switch database failed")
			return ResultSet{Message: err.Error()}
		}
		return ResultSet{Success: true, Message: "Database initialized: " + node.Value}
	case ast.Exit:
		if err := e.close(); err != nil {
			log.WithError(err).Error("shutdown failed")
			return ResultSet{Message: err.Error()}
		}
		return ResultSet{Success: true, Exited: true}
	}

	bound, err := binder.Bind(node, e.catalog)
	if err != nil {
		log.WithError(err).Debug("bind failed")
		return ResultSet{Message: err.Error()}
	}

	plan, err := planner.Plan(bound)
	if err != nil {
		log.WithError(err).Error("plan failed")
		return ResultSet{Message: err.Error()}
	}

	root, err := e.build(plan)
	if err != nil {
		log.WithError(err).Error("executor build failed")
		return ResultSet{Message: err.Error()}
	}
	return run(root)
}

func (e *Engine) build(p plans.Plan) (executors.Executor, error) {
	ctx := &executors.Context{Catalog: e.catalog, Pool: e.pool}

	switch n := p.(type) {
	case plans.SeqScanPlan:
		return executors.NewSeqScan(ctx, n), nil
	case plans.ProjectionPlan:
		child, err := e.build(n.Child)
		if err != nil {
			return nil, err
		}
		return executors.NewProjection(n, child), nil
	case plans.InsertPlan:
		return executors.NewInsert(ctx, n), nil
	case plans.CreateTablePlan:
		return executors.NewCreateTable(ctx, n), nil
	case plans.DropTablePlan:
		return executors.NewDropTable(n), nil
	case plans.ShowTablesPlan:
		return executors.NewShowTables(ctx), nil
	case plans.DatabaseOpPlan:
		return executors.NewDatabaseOp(e.dir, n), nil
	default:
		return nil, verr.New(verr.Internal, "cannot build executor for plan of type %T", p)
	}
}

// run drives root to completion: pull Next until a message arrives or the
// iterator terminates, materializing any tuples seen first into a TupleSet
// keyed off their schema.
func run(root executors.Executor) ResultSet {
	if err := root.Open(); err != nil {
		_ = root.Close()
		return ResultSet{Message: err.Error()}
	}

	var tuples *TupleSet
	var rows int
	var message string
	var success bool
	var haveMessage bool

	for {
		out, err := root.Next()
		if err != nil {
			_ = root.Close()
			return ResultSet{Message: err.Error()}
		}
		if out == nil {
			break
		}
		if out.Kind == executors.MessageOutput {
			message, success, haveMessage = out.Message, out.Success, true
			break
		}
		if tuples == nil {
			tuples = &TupleSet{Schema: out.Schema}
		}
		tuples.Rows = append(tuples.Rows, out.Values)
		rows++
	}

	if err := root.Close(); err != nil {
		return ResultSet{Message: err.Error()}
	}

	if haveMessage {
		return ResultSet{Success: success, Message: fmt.Sprintf("%s (%d rows affected)", message, rows)}
	}
	if tuples != nil {
		return ResultSet{Success: true, Tuples: tuples}
	}
	return ResultSet{Success: true, Message: "Ok"}
}

func (e *Engine) switchDatabase(name string) error {
	if e.pool != nil {
		if err := e.pool.Close(); err != nil {
			return err
		}
	}

	d, wasCold, err := disk.Open(dbfile.Path(e.dir, name))
	if err != nil {
		return err
	}
	pool := buf.NewPool(d, config.DefaultPoolSize)
	cat, err := catalog.Open(pool, wasCold)
	if err != nil {
		return err
	}

	e.pool, e.catalog, e.dbName = pool, cat, name
	return nil
}

func (e *Engine) close() error {
	if e.pool == nil {
		return nil
	}
	return e.pool.Close()
}
