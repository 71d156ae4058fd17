// Package executors implements the Volcano-model operators that walk a
// plan tree: every operator exposes Open/Next/Close, and Next yields
// either a tuple (with the schema it was produced under) or a terminal
// message.
package executors

import (
	"github.com/karthikeyaspace/venus-db/catalog"
	"github.com/karthikeyaspace/venus-db/storage/buf"
	"github.com/karthikeyaspace/venus-db/storage/schema"
	"github.com/karthikeyaspace/venus-db/storage/types"
)

// Executor is the interface every operator implements.
type Executor interface {
	Open() error
	// Next returns the next Output, or (nil, nil) when the operator is
	// exhausted.
	Next() (*Output, error)
	// Close releases any resources the operator holds. Idempotent.
	Close() error
}

// OutputKind distinguishes a tuple Output from a terminal message Output.
type OutputKind int

const (
	TupleOutput OutputKind = iota
	MessageOutput
)

// Output is the tagged union an operator's Next call produces.
type Output struct {
	Kind OutputKind

	// Populated when Kind == TupleOutput.
	Values []types.Value
	Schema *schema.Schema

	// Populated when Kind == MessageOutput.
	Success bool
	Message string
}

// Context bundles the process-wide state operators need: the metadata
// store and the page cache backing it.
type Context struct {
	Catalog *catalog.Catalog
	Pool    *buf.Pool
}
