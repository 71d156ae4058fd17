package executors

import (
	"github.com/karthikeyaspace/venus-db/catalog"
	"github.com/karthikeyaspace/venus-db/execution/plans"
	"github.com/karthikeyaspace/venus-db/storage/schema"
	"github.com/karthikeyaspace/venus-db/storage/types"
	"github.com/karthikeyaspace/venus-db/verr"
)

var showTablesSchema = mustSchema(schema.Column{Name: "table_name", Type: types.Char, OrdinalPosition: 0})

func mustSchema(cols ...schema.Column) *schema.Schema {
	s, err := schema.New(cols)
	if err != nil {
		panic(err)
	}
	return s
}

// ShowTables scans master_tables and projects just the table_name column
// into a single-column output.
type ShowTables struct {
	scan *SeqScan
}

func NewShowTables(ctx *Context) *ShowTables {
	scan := NewSeqScan(ctx, plans.SeqScanPlan{Table: catalog.MasterTablesRef()})
	return &ShowTables{scan: scan}
}

func (e *ShowTables) Open() error {
	return e.scan.Open()
}

func (e *ShowTables) Next() (*Output, error) {
	out, err := e.scan.Next()
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}

	idx, err := out.Schema.ColumnIndex("table_name")
	if err != nil {
		return nil, verr.Wrap(verr.Internal, err, "master_tables missing table_name column")
	}
	return &Output{
		Kind:   TupleOutput,
		Values: []types.Value{out.Values[idx]},
		Schema: showTablesSchema,
	}, nil
}

func (e *ShowTables) Close() error {
	return e.scan.Close()
}
