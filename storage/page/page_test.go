package page

import (
	"testing"

	"github.com/karthikeyaspace/venus-db/config"
	"github.com/stretchr/testify/require"
)

func TestResetInitializesFreshPage(t *testing.T) {
	p := NewBlank(7)
	require.Equal(t, 7, p.PageID())
	require.Equal(t, config.InvalidPageID, p.NextPageID())
	require.Equal(t, config.InvalidPageID, p.PrevPageID())
	require.Equal(t, Table, p.PageType())
	require.Equal(t, 0, p.NumSlots())
	require.Equal(t, HeaderSize, p.FreeSpacePtr())
	require.Equal(t, config.PageSize, p.TupleStartPtr())
	require.False(t, p.IsDirty())
}

func TestInsertGetTombstoneTuple(t *testing.T) {
	p := NewBlank(1)
	data := []byte("hello world")

	idx, ok := p.InsertTuple(data)
	require.True(t, ok)
	require.Equal(t, 0, idx)
	require.True(t, p.IsDirty())

	got, ok := p.GetTuple(idx)
	require.True(t, ok)
	require.Equal(t, data, got)

	require.True(t, p.Tombstone(idx))
	_, ok = p.GetTuple(idx)
	require.False(t, ok)
	require.False(t, p.IsLive(idx))
}

func TestInsertFailsWhenPageFull(t *testing.T) {
	p := NewBlank(1)
	big := make([]byte, config.PageSize)
	_, ok := p.InsertTuple(big)
	require.False(t, ok)
	require.Equal(t, 0, p.NumSlots())
}

func TestUpdateInPlaceRequiresSameLength(t *testing.T) {
	p := NewBlank(1)
	idx, ok := p.InsertTuple([]byte("abcd"))
	require.True(t, ok)

	require.True(t, p.UpdateInPlace(idx, []byte("wxyz")))
	got, _ := p.GetTuple(idx)
	require.Equal(t, []byte("wxyz"), got)

	require.False(t, p.UpdateInPlace(idx, []byte("longer-than-before")))
}

func TestFreeSpaceInvariantAfterMutations(t *testing.T) {
	p := NewBlank(1)
	for i := 0; i < 10; i++ {
		_, ok := p.InsertTuple([]byte{byte(i), byte(i), byte(i)})
		require.True(t, ok)
	}
	require.LessOrEqual(t, p.FreeSpacePtr(), p.TupleStartPtr())
	require.Equal(t, HeaderSize+10*SlotEntrySize, p.FreeSpacePtr())

	for i := 0; i < 10; i++ {
		s := p.Slot(i)
		require.GreaterOrEqual(t, s.Offset, p.TupleStartPtr())
		require.Less(t, s.Offset+s.Length, config.PageSize+1)
	}
}
