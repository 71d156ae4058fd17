package catalog

import "github.com/karthikeyaspace/venus-db/storage/schema"
import "github.com/karthikeyaspace/venus-db/storage/types"

// masterTablesSchema and masterColumnsSchema are the hardcoded shapes of the
// two bootstrap system tables. They are never read back from
// master_columns: cold bootstrap writes the rows describing them, but only
// user schemas go through Catalog.CreateTable.
func masterTablesSchema() *schema.Schema {
	s, err := schema.New([]schema.Column{
		{Name: "table_id", Type: types.Int, PrimaryKey: true, OrdinalPosition: 0},
		{Name: "table_name", Type: types.Char, OrdinalPosition: 1},
		{Name: "num_columns", Type: types.Int, OrdinalPosition: 2},
		{Name: "first_page_id", Type: types.Int, OrdinalPosition: 3},
		{Name: "primary_key_column_id", Type: types.Int, OrdinalPosition: 4},
	})
	if err != nil {
		panic(err)
	}
	return s
}

func masterColumnsSchema() *schema.Schema {
	s, err := schema.New([]schema.Column{
		{Name: "column_id", Type: types.Int, PrimaryKey: true, OrdinalPosition: 0},
		{Name: "table_id", Type: types.Int, OrdinalPosition: 1},
		{Name: "column_name", Type: types.Char, OrdinalPosition: 2},
		{Name: "column_type", Type: types.Int, OrdinalPosition: 3},
		{Name: "column_size", Type: types.Int, OrdinalPosition: 4},
		{Name: "ordinal_position", Type: types.Int, OrdinalPosition: 5},
		{Name: "is_primary_key", Type: types.Int, OrdinalPosition: 6},
	})
	if err != nil {
		panic(err)
	}
	return s
}
