// Package catalog implements venus-db's self-describing metadata store: two
// bootstrap tables, master_tables and master_columns, held at fixed page ids
// and stored in exactly the same slotted-page/table-heap format as user
// tables.
package catalog

import (
	"github.com/karthikeyaspace/venus-db/config"
	"github.com/karthikeyaspace/venus-db/storage/buf"
	"github.com/karthikeyaspace/venus-db/storage/heap"
	"github.com/karthikeyaspace/venus-db/storage/schema"
	"github.com/karthikeyaspace/venus-db/storage/tuple"
	"github.com/karthikeyaspace/venus-db/storage/types"
	"github.com/karthikeyaspace/venus-db/verr"
	"github.com/sirupsen/logrus"
)

// TableRef is the metadata Catalog hands back for a resolved table: enough
// for the binder/planner/executor to address its storage directly.
type TableRef struct {
	TableID            int
	FirstPageID        int
	Name               string
	Schema             *schema.Schema
	PrimaryKeyColumnID int
}

// Catalog is the process-wide metadata store for one open database.
type Catalog struct {
	pool *buf.Pool

	masterTables  *heap.TableHeap
	masterColumns *heap.TableHeap

	nextTableID  int
	nextColumnID int

	log logrus.FieldLogger
}

// Open constructs a Catalog atop pool, bootstrapping the two system tables
// cold (fresh database) or reopening and recomputing next ids warm
// (existing database).
func Open(pool *buf.Pool, wasCold bool) (*Catalog, error) {
	c := &Catalog{pool: pool, log: logrus.WithField("component", "catalog")}

	if wasCold {
		if err := c.coldBootstrap(); err != nil {
			return nil, err
		}
		return c, nil
	}
	if err := c.warmBootstrap(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) coldBootstrap() error {
	c.log.Debug("cold bootstrap: creating master_tables and master_columns")

	tablesPage, err := c.pool.NewPageAt(config.MasterTablesPageID)
	if err != nil {
		return err
	}
	c.masterTables = heap.New(c.pool, tablesPage.PageID())

	columnsPage, err := c.pool.NewPageAt(config.MasterColumnsPageID)
	if err != nil {
		return err
	}
	c.masterColumns = heap.New(c.pool, columnsPage.PageID())

	mtSchema := masterTablesSchema()
	mcSchema := masterColumnsSchema()

	// Reserved rows describing the bootstrap tables themselves.
	tableRows := [][]types.Value{
		{types.NewInt(0), types.NewChar("master_tables"), types.NewInt(5), types.NewInt(config.MasterTablesPageID), types.NewInt(0)},
		{types.NewInt(1), types.NewChar("master_columns"), types.NewInt(7), types.NewInt(config.MasterColumnsPageID), types.NewInt(0)},
	}
	for _, row := range tableRows {
		tup, err := tuple.Serialize(row, mtSchema)
		if err != nil {
			return err
		}
		if _, err := c.masterTables.Insert(tup); err != nil {
			return err
		}
	}

	// Reserved rows describing the bootstrap tables' own columns.
	columnRows := [][]types.Value{
		{types.NewInt(0), types.NewInt(0), types.NewChar("table_id"), types.NewInt(int32(types.Int)), types.NewInt(4), types.NewInt(0), types.NewInt(1)},
		{types.NewInt(1), types.NewInt(0), types.NewChar("table_name"), types.NewInt(int32(types.Char)), types.NewInt(32), types.NewInt(1), types.NewInt(0)},
		{types.NewInt(2), types.NewInt(0), types.NewChar("num_columns"), types.NewInt(int32(types.Int)), types.NewInt(4), types.NewInt(2), types.NewInt(0)},
		{types.NewInt(3), types.NewInt(0), types.NewChar("first_page_id"), types.NewInt(int32(types.Int)), types.NewInt(4), types.NewInt(3), types.NewInt(0)},
		{types.NewInt(4), types.NewInt(0), types.NewChar("primary_key"), types.NewInt(int32(types.Int)), types.NewInt(4), types.NewInt(4), types.NewInt(0)},

		{types.NewInt(5), types.NewInt(1), types.NewChar("column_id"), types.NewInt(int32(types.Int)), types.NewInt(4), types.NewInt(0), types.NewInt(1)},
		{types.NewInt(6), types.NewInt(1), types.NewChar("table_id"), types.NewInt(int32(types.Int)), types.NewInt(4), types.NewInt(1), types.NewInt(0)},
		{types.NewInt(7), types.NewInt(1), types.NewChar("column_name"), types.NewInt(int32(types.Char)), types.NewInt(32), types.NewInt(2), types.NewInt(0)},
		{types.NewInt(8), types.NewInt(1), types.NewChar("column_type"), types.NewInt(int32(types.Int)), types.NewInt(4), types.NewInt(3), types.NewInt(0)},
		{types.NewInt(9), types.NewInt(1), types.NewChar("column_size"), types.NewInt(int32(types.Int)), types.NewInt(4), types.NewInt(4), types.NewInt(0)},
		{types.NewInt(10), types.NewInt(1), types.NewChar("ordinal_position"), types.NewInt(int32(types.Int)), types.NewInt(4), types.NewInt(5), types.NewInt(0)},
		{types.NewInt(11), types.NewInt(1), types.NewChar("is_primary_key"), types.NewInt(int32(types.Int)), types.NewInt(4), types.NewInt(6), types.NewInt(0)},
	}
	for _, row := range columnRows {
		tup, err := tuple.Serialize(row, mcSchema)
		if err != nil {
			return err
		}
		if _, err := c.masterColumns.Insert(tup); err != nil {
			return err
		}
	}

	c.nextTableID = 2
	c.nextColumnID = 14

	if err := c.pool.FlushPage(config.MasterTablesPageID); err != nil {
		return err
	}
	if err := c.pool.FlushPage(config.MasterColumnsPageID); err != nil {
		return err
	}
	return nil
}

func (c *Catalog) warmBootstrap() error {
	c.log.Debug("warm bootstrap: reopening master_tables and master_columns")
	c.masterTables = heap.New(c.pool, config.MasterTablesPageID)
	c.masterColumns = heap.New(c.pool, config.MasterColumnsPageID)

	mtSchema := masterTablesSchema()
	maxTableID := int32(-1)
	for it := c.masterTables.Begin(); !it.Equal(c.masterTables.End()); it = it.Next() {
		tup, err := it.Get()
		if err != nil {
			return err
		}
		v, err := tup.GetValue(0, mtSchema)
		if err != nil {
			return err
		}
		if v.Int > maxTableID {
			maxTableID = v.Int
		}
	}

	mcSchema := masterColumnsSchema()
	maxColumnID := int32(-1)
	for it := c.masterColumns.Begin(); !it.Equal(c.masterColumns.End()); it = it.Next() {
		tup, err := it.Get()
		if err != nil {
			return err
		}
		v, err := tup.GetValue(0, mcSchema)
		if err != nil {
			return err
		}
		if v.Int > maxColumnID {
			maxColumnID = v.Int
		}
	}

	c.nextTableID = int(maxTableID) + 1
	c.nextColumnID = int(maxColumnID) + 1
	return nil
}

// CreateTable registers a new user table, allocating its first page and
// persisting its schema into master_tables/master_columns. Fails with
// already-exists if name is already registered.
func (c *Catalog) CreateTable(name string, sch *schema.Schema) (*TableRef, error) {
	if existing, _ := c.GetTableRef(name); existing != nil {
		return nil, verr.New(verr.AlreadyExists, "table %q already exists", name)
	}

	firstPage, err := c.pool.NewPage()
	if err != nil {
		return nil, err
	}

	tableID := c.nextTableID
	c.nextTableID++

	pkColumnID := 0
	for _, col := range sch.Columns {
		if col.PrimaryKey {
			pkColumnID = col.OrdinalPosition
			break
		}
	}

	mtSchema := masterTablesSchema()
	tableRow, err := tuple.Serialize([]types.Value{
		types.NewInt(int32(tableID)),
		types.NewChar(name),
		types.NewInt(int32(sch.Len())),
		types.NewInt(int32(firstPage.PageID())),
		types.NewInt(int32(pkColumnID)),
	}, mtSchema)
	if err != nil {
		return nil, err
	}
	if _, err := c.masterTables.Insert(tableRow); err != nil {
		return nil, err
	}

	mcSchema := masterColumnsSchema()
	for _, col := range sch.Columns {
		columnID := c.nextColumnID
		c.nextColumnID++

		isPK := int32(0)
		if col.PrimaryKey {
			isPK = 1
		}

		row, err := tuple.Serialize([]types.Value{
			types.NewInt(int32(columnID)),
			types.NewInt(int32(tableID)),
			types.NewChar(col.Name),
			types.NewInt(int32(col.Type)),
			types.NewInt(int32(types.Width(col.Type))),
			types.NewInt(int32(col.OrdinalPosition)),
			types.NewInt(isPK),
		}, mcSchema)
		if err != nil {
			return nil, err
		}
		if _, err := c.masterColumns.Insert(row); err != nil {
			return nil, err
		}
	}

	if err := c.pool.FlushPage(config.MasterTablesPageID); err != nil {
		return nil, err
	}
	if err := c.pool.FlushPage(config.MasterColumnsPageID); err != nil {
		return nil, err
	}
	if err := c.pool.FlushPage(firstPage.PageID()); err != nil {
		return nil, err
	}

	return &TableRef{
		TableID:            tableID,
		FirstPageID:        firstPage.PageID(),
		Name:               name,
		Schema:             sch,
		PrimaryKeyColumnID: pkColumnID,
	}, nil
}

// GetTableRef looks up a table by name, reconstructing its schema from
// master_columns in ordinal order. Returns nil, nil if absent.
func (c *Catalog) GetTableRef(name string) (*TableRef, error) {
	mtSchema := masterTablesSchema()

	var found *TableRef
	for it := c.masterTables.Begin(); !it.Equal(c.masterTables.End()); it = it.Next() {
		tup, err := it.Get()
		if err != nil {
			return nil, err
		}
		values, err := tup.Values(mtSchema)
		if err != nil {
			return nil, err
		}
		if values[1].Str != name {
			continue
		}
		found = &TableRef{
			TableID:            int(values[0].Int),
			Name:               values[1].Str,
			FirstPageID:        int(values[3].Int),
			PrimaryKeyColumnID: int(values[4].Int),
		}
		break
	}
	if found == nil {
		return nil, nil
	}

	sch, err := c.columnsForTable(found.TableID)
	if err != nil {
		return nil, err
	}
	found.Schema = sch
	return found, nil
}

func (c *Catalog) columnsForTable(tableID int) (*schema.Schema, error) {
	mcSchema := masterColumnsSchema()

	var cols []schema.Column
	for it := c.masterColumns.Begin(); !it.Equal(c.masterColumns.End()); it = it.Next() {
		tup, err := it.Get()
		if err != nil {
			return nil, err
		}
		values, err := tup.Values(mcSchema)
		if err != nil {
			return nil, err
		}
		if int(values[1].Int) != tableID {
			continue
		}
		cols = append(cols, schema.Column{
			Name:            values[2].Str,
			Type:            types.Kind(values[3].Int),
			OrdinalPosition: int(values[5].Int),
			PrimaryKey:      values[6].Int != 0,
		})
	}

	// Sort by ordinal position; the number of columns per table is small
	// enough that insertion sort keeps this readable and allocation-free.
	for i := 1; i < len(cols); i++ {
		for j := i; j > 0 && cols[j].OrdinalPosition < cols[j-1].OrdinalPosition; j-- {
			cols[j], cols[j-1] = cols[j-1], cols[j]
		}
	}

	return schema.New(cols)
}

// MasterTablesRef exposes master_tables itself as a TableRef, letting
// executors run an ordinary SeqScan over the catalog's own bootstrap table
// (used by SHOW TABLES) instead of duplicating heap-iteration logic.
func MasterTablesRef() *TableRef {
	return &TableRef{
		TableID:     -1,
		FirstPageID: config.MasterTablesPageID,
		Name:        "master_tables",
		Schema:      masterTablesSchema(),
	}
}

// DropTable is declared but not implemented: it is surfaced through the SQL
// layer as not-implemented rather than a silent success.
func (c *Catalog) DropTable(name string) error {
	return verr.New(verr.NotImplemented, "DROP TABLE %s is not implemented", name)
}
