package engine

import (
	"github.com/karthikeyaspace/venus-db/storage/schema"
	"github.com/karthikeyaspace/venus-db/storage/types"
)

// TupleSet is a materialized column-typed row set produced by a query
// that streamed tuples rather than a single message.
type TupleSet struct {
	Schema *schema.Schema
	Rows   [][]types.Value
}

// ResultSet is what Execute returns for every statement: either a message
// (with a success flag) or a tuple set.
type ResultSet struct {
	Success bool
	Message string
	Tuples  *TupleSet

	// Exited is set when the statement was EXIT; the caller (typically a
	// REPL loop) is expected to stop reading further statements.
	Exited bool
}
