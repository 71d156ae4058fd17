package heap

import (
	"github.com/karthikeyaspace/venus-db/config"
	"github.com/karthikeyaspace/venus-db/storage/tuple"
	"github.com/karthikeyaspace/venus-db/verr"
)

// Iterator is a forward-only cursor over a TableHeap's live tuples. Two
// iterators compare equal iff their (page id, slot id) match; the terminal
// iterator is (InvalidPageID, 0).
type Iterator struct {
	heap   *TableHeap
	pageID int
	slotID int
}

// Begin returns an iterator positioned at the first live tuple of the heap,
// or an already-terminal iterator if the heap is empty.
func (h *TableHeap) Begin() *Iterator {
	pageID, slotID := h.seekLive(h.firstPageID, 0)
	return &Iterator{heap: h, pageID: pageID, slotID: slotID}
}

// End returns the terminal iterator.
func (h *TableHeap) End() *Iterator {
	return &Iterator{heap: h, pageID: config.InvalidPageID, slotID: 0}
}

// seekLive finds the first live slot at or after (pageID, slotID), following
// the page chain as needed.
func (h *TableHeap) seekLive(pageID, slotID int) (int, int) {
	for pageID != config.InvalidPageID {
		pg, err := h.pool.FetchPage(pageID)
		if err != nil || pg == nil {
			return config.InvalidPageID, 0
		}
		n := pg.NumSlots()
		for slotID < n {
			if pg.IsLive(slotID) {
				h.pool.UnpinPage(pageID, false)
				return pageID, slotID
			}
			slotID++
		}
		next := pg.NextPageID()
		h.pool.UnpinPage(pageID, false)
		pageID = next
		slotID = 0
	}
	return config.InvalidPageID, 0
}

// Next returns an iterator advanced to the next live tuple.
func (it *Iterator) Next() *Iterator {
	pageID, slotID := it.heap.seekLive(it.pageID, it.slotID+1)
	return &Iterator{heap: it.heap, pageID: pageID, slotID: slotID}
}

// Equal reports whether it and other name the same position.
func (it *Iterator) Equal(other *Iterator) bool {
	return it.pageID == other.pageID && it.slotID == other.slotID
}

// RID returns the position this iterator names.
func (it *Iterator) RID() RID {
	return RID{PageID: it.pageID, SlotID: it.slotID}
}

// Get returns the tuple this iterator points at.
func (it *Iterator) Get() (*tuple.Tuple, error) {
	if it.pageID == config.InvalidPageID {
		return nil, verr.New(verr.Internal, "dereferencing end iterator")
	}
	return it.heap.Get(it.RID())
}
