// Package tuple serializes and deserializes rows into a fixed-layout wire
// form: a 4-byte little-endian total size followed by one fixed-width field
// per column, in schema order.
package tuple

import (
	"encoding/binary"

	"github.com/karthikeyaspace/venus-db/storage/schema"
	"github.com/karthikeyaspace/venus-db/storage/types"
	"github.com/karthikeyaspace/venus-db/verr"
)

// Tuple is an owned byte slice in wire form: 4-byte size prefix followed by
// column fields. It has no independent lifetime outside the page it was
// read from or is about to be inserted into.
type Tuple struct {
	data []byte
}

// FromBytes wraps an already-serialized tuple, such as one just read back
// from a page.
func FromBytes(data []byte) *Tuple {
	return &Tuple{data: data}
}

// Data returns the tuple's wire bytes, including the size prefix.
func (t *Tuple) Data() []byte { return t.data }

// Size returns the tuple's total on-disk length, including the size prefix.
func (t *Tuple) Size() int { return len(t.data) }

// Serialize builds a Tuple from column values in schema order. It fails
// with a schema-mismatch error if the value count does not match the
// column count.
func Serialize(values []types.Value, sch *schema.Schema) (*Tuple, error) {
	if len(values) != sch.Len() {
		return nil, verr.New(verr.SchemaError, "expected %d values, got %d", sch.Len(), len(values))
	}

	total := 4
	for _, c := range sch.Columns {
		total += types.Width(c.Type)
	}

	buf := make([]byte, total)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(total))

	offset := 4
	for i, c := range sch.Columns {
		w := types.Width(c.Type)
		copy(buf[offset:offset+w], values[i].Encode())
		offset += w
	}

	return &Tuple{data: buf}, nil
}

// GetValue decodes the column at columnIndex, per sch. Returns a
// schema-mismatch error if columnIndex is out of range.
func (t *Tuple) GetValue(columnIndex int, sch *schema.Schema) (types.Value, error) {
	if columnIndex < 0 || columnIndex >= sch.Len() {
		return types.Value{}, verr.New(verr.SchemaError, "column index %d out of range", columnIndex)
	}

	offset := 4
	for i := 0; i < columnIndex; i++ {
		offset += types.Width(sch.Columns[i].Type)
	}
	col := sch.Columns[columnIndex]
	w := types.Width(col.Type)
	if offset+w > len(t.data) {
		return types.Value{}, verr.New(verr.SchemaError, "tuple too short for column %q", col.Name)
	}
	return types.Decode(col.Type, t.data[offset:offset+w]), nil
}

// Values decodes every column of the tuple in schema order.
func (t *Tuple) Values(sch *schema.Schema) ([]types.Value, error) {
	out := make([]types.Value, sch.Len())
	for i := range sch.Columns {
		v, err := t.GetValue(i, sch)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
