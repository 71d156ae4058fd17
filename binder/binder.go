package binder

import (
	"strings"

	"github.com/karthikeyaspace/venus-db/catalog"
	"github.com/karthikeyaspace/venus-db/sql/ast"
	"github.com/karthikeyaspace/venus-db/storage/schema"
	"github.com/karthikeyaspace/venus-db/storage/types"
	"github.com/karthikeyaspace/venus-db/verr"
)

// Bind resolves node against cat, producing a bound node ready for the
// planner. cat may be nil if no database is currently open. Statements
// that act on the database directory rather than an open database's
// storage (SHOW/CREATE/DROP/USE DATABASE) and EXIT never need a catalog;
// every other tag fails with a NoDatabase error when cat is nil.
func Bind(node *ast.Node, cat *catalog.Catalog) (Bound, error) {
	switch node.Tag {
	case ast.UseDatabase:
		return BoundDatabase{Op: UseDB, Name: node.Value}, nil
	case ast.ShowDatabases:
		return BoundDatabase{Op: ShowDBs}, nil
	case ast.CreateDatabase:
		return BoundDatabase{Op: CreateDB, Name: node.Value}, nil
	case ast.DropDatabase:
		return BoundDatabase{Op: DropDB, Name: node.Value}, nil
	case ast.Exit:
		return BoundExit{}, nil
	}

	if cat == nil {
		return nil, verr.New(verr.NoDatabase, "no database open")
	}

	switch node.Tag {
	case ast.ShowTables:
		return BoundShowTables{}, nil
	case ast.DropTable:
		return bindDropTable(node, cat)
	case ast.CreateTable:
		return bindCreateTable(node)
	case ast.Select:
		return bindSelect(node, cat)
	case ast.Insert:
		return bindInsert(node, cat)
	default:
		return nil, verr.New(verr.Syntax, "cannot bind statement of tag %s", node.Tag)
	}
}

func bindDropTable(node *ast.Node, cat *catalog.Catalog) (Bound, error) {
	ref, err := cat.GetTableRef(node.Value)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, verr.New(verr.NotFound, "table not found: %s", node.Value)
	}
	return BoundDropTable{Table: ref}, nil
}

// bindCreateTable splits each COLUMN_DEF child's "name TYPE [PK]" value.
func bindCreateTable(node *ast.Node) (Bound, error) {
	if len(node.Children) == 0 {
		return nil, verr.New(verr.SchemaError, "CREATE TABLE requires at least one column")
	}

	cols := make([]schema.Column, 0, len(node.Children))
	for i, child := range node.Children {
		parts := strings.Fields(child.Value)
		if len(parts) < 2 {
			return nil, verr.New(verr.SchemaError, "malformed column definition %q", child.Value)
		}
		name, typeName := parts[0], parts[1]

		kind, ok := types.ParseKind(typeName)
		if !ok {
			return nil, verr.New(verr.TypeError, "unknown column type %q for column %s", typeName, name)
		}

		cols = append(cols, schema.Column{
			Name:            name,
			Type:            kind,
			PrimaryKey:      len(parts) == 3 && parts[2] == "PK",
			OrdinalPosition: i,
		})
	}

	sch, err := schema.New(cols)
	if err != nil {
		return nil, err
	}
	return BoundCreateTable{Name: node.Value, Schema: sch}, nil
}

func bindSelect(node *ast.Node, cat *catalog.Catalog) (Bound, error) {
	projList, tableRef := node.Children[0], node.Children[1]

	ref, err := cat.GetTableRef(tableRef.Value)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, verr.New(verr.NotFound, "table not found: %s", tableRef.Value)
	}

	star := len(projList.Children) == 1 && projList.Children[0].Value == "*"

	var cols []BoundColumnRef
	if star {
		for i := 0; i < ref.Schema.Len(); i++ {
			c := ref.Schema.Column(i)
			cols = append(cols, BoundColumnRef{Name: c.Name, Type: c.Type})
		}
	} else {
		for _, colNode := range projList.Children {
			idx, err := ref.Schema.ColumnIndex(colNode.Value)
			if err != nil {
				return nil, verr.New(verr.NotFound, "column %q not found on table %s", colNode.Value, ref.Name)
			}
			c := ref.Schema.Column(idx)
			cols = append(cols, BoundColumnRef{Name: c.Name, Type: c.Type})
		}
	}

	return BoundSelect{Table: ref, Columns: cols}, nil
}

func bindInsert(node *ast.Node, cat *catalog.Catalog) (Bound, error) {
	ref, err := cat.GetTableRef(node.Value)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, verr.New(verr.NotFound, "table not found: %s", node.Value)
	}

	n := ref.Schema.Len()
	if len(node.Children) != n {
		return nil, verr.New(verr.ArityMismatch, "table %s expects %d values, got %d", node.Value, n, len(node.Children))
	}

	values := make([]types.Value, n)
	for i, litNode := range node.Children {
		col := ref.Schema.Column(i)
		text := litNode.Value
		if col.Type != types.Char && litNode.Quoted {
			return nil, verr.New(verr.TypeError, "column %s: quoted string literal %q is not a valid %s", col.Name, text, col.Type)
		}
		v, err := types.ParseLiteral(col.Type, text)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return BoundInsert{Table: ref, Values: values}, nil
}
