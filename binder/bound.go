// Package binder resolves an untyped AST against the catalog, producing a
// bound AST whose names are known to exist and whose literals have been
// typechecked.
package binder

import (
	"github.com/karthikeyaspace/venus-db/catalog"
	"github.com/karthikeyaspace/venus-db/storage/schema"
	"github.com/karthikeyaspace/venus-db/storage/types"
)

// DatabaseOpKind names which filesystem-level database operation a
// BoundDatabase node performs.
type DatabaseOpKind string

const (
	CreateDB DatabaseOpKind = "create_db"
	DropDB   DatabaseOpKind = "drop_db"
	UseDB    DatabaseOpKind = "use_db"
	ShowDBs  DatabaseOpKind = "show_dbs"
)

// Bound is the marker interface every bound-AST node implements.
type Bound interface {
	isBound()
}

// BoundDatabase covers every statement that acts on the database directory
// rather than the open database's storage: CREATE/DROP/USE DATABASE and
// SHOW DATABASES.
type BoundDatabase struct {
	Op   DatabaseOpKind
	Name string
}

// BoundShowTables requests a listing of the open database's tables.
type BoundShowTables struct{}

// BoundCreateTable carries a fully-formed schema ready for
// catalog.CreateTable.
type BoundCreateTable struct {
	Name   string
	Schema *schema.Schema
}

// BoundDropTable carries the already-resolved table being dropped.
type BoundDropTable struct {
	Table *catalog.TableRef
}

// BoundColumnRef names one resolved output column of a SELECT.
type BoundColumnRef struct {
	Name string
	Type types.Kind
}

// BoundSelect carries the resolved table and ordered output columns.
type BoundSelect struct {
	Table   *catalog.TableRef
	Columns []BoundColumnRef
}

// BoundInsert carries the resolved table and one typechecked value per
// column, in schema order.
type BoundInsert struct {
	Table  *catalog.TableRef
	Values []types.Value
}

// BoundExit is a bound EXIT statement.
type BoundExit struct{}

func (BoundDatabase) isBound()    {}
func (BoundShowTables) isBound()  {}
func (BoundCreateTable) isBound() {}
func (BoundDropTable) isBound()   {}
func (BoundSelect) isBound()      {}
func (BoundInsert) isBound()      {}
func (BoundExit) isBound()        {}
