// Package schema describes the shape of a table: an ordered list of typed,
// uniquely named columns.
package schema

import (
	"github.com/karthikeyaspace/venus-db/storage/types"
	"github.com/karthikeyaspace/venus-db/verr"
)

// Column is one field of a table's row layout.
type Column struct {
	Name            string
	Type            types.Kind
	PrimaryKey      bool
	OrdinalPosition int
}

// Schema is an ordered, name-unique set of columns.
type Schema struct {
	Columns []Column
}

// New builds a Schema from columns in declaration order, failing if any
// name repeats.
func New(columns []Column) (*Schema, error) {
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		if seen[c.Name] {
			return nil, verr.New(verr.SchemaError, "duplicate column name %q", c.Name)
		}
		seen[c.Name] = true
	}
	cp := make([]Column, len(columns))
	copy(cp, columns)
	return &Schema{Columns: cp}, nil
}

// ColumnIndex returns the position of name within the schema, or an error if
// absent.
func (s *Schema) ColumnIndex(name string) (int, error) {
	for i, c := range s.Columns {
		if c.Name == name {
			return i, nil
		}
	}
	return -1, verr.New(verr.NotFound, "column %q not found", name)
}

// Column returns the column at idx.
func (s *Schema) Column(idx int) Column {
	return s.Columns[idx]
}

// Len returns the number of columns.
func (s *Schema) Len() int {
	return len(s.Columns)
}

// PrimaryKeyOrdinal returns the ordinal position of the first primary-key
// column, or -1 if none is marked.
func (s *Schema) PrimaryKeyOrdinal() int {
	for _, c := range s.Columns {
		if c.PrimaryKey {
			return c.OrdinalPosition
		}
	}
	return -1
}

// Names returns the schema's column names in declared order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}
