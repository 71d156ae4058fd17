package heap

import (
	"github.com/karthikeyaspace/venus-db/config"
	"github.com/karthikeyaspace/venus-db/storage/buf"
	"github.com/karthikeyaspace/venus-db/storage/page"
	"github.com/karthikeyaspace/venus-db/storage/tuple"
	"github.com/karthikeyaspace/venus-db/verr"
)

// maxTupleSize is the largest tuple this engine can ever place on a fresh
// page: page capacity minus the header and one slot entry.
const maxTupleSize = config.PageSize - page.HeaderSize - page.SlotEntrySize

// TableHeap represents one table's storage as a chain of slotted pages. It
// owns no pages of its own — only the id of the chain's first page — and
// mediates all access through the buffer pool.
type TableHeap struct {
	pool        *buf.Pool
	firstPageID int
}

// New constructs a TableHeap over an existing page chain rooted at
// firstPageID.
func New(pool *buf.Pool, firstPageID int) *TableHeap {
	return &TableHeap{pool: pool, firstPageID: firstPageID}
}

// FirstPageID returns the id of the head of this heap's page chain.
func (h *TableHeap) FirstPageID() int {
	return h.firstPageID
}

// Insert appends tup to the first page in the chain with room for it,
// allocating and linking a new page if the chain is exhausted.
func (h *TableHeap) Insert(tup *tuple.Tuple) (RID, error) {
	if tup.Size()+page.SlotEntrySize > maxTupleSize+page.SlotEntrySize {
		return RID{}, verr.New(verr.SchemaError, "tuple of %d bytes exceeds page capacity", tup.Size())
	}

	curID := h.firstPageID
	prevID := config.InvalidPageID

	for {
		if curID == config.InvalidPageID {
			newPage, err := h.pool.NewPage()
			if err != nil {
				return RID{}, err
			}
			if prevID != config.InvalidPageID {
				prevPage, err := h.pool.FetchPage(prevID)
				if err != nil {
					return RID{}, err
				}
				prevPage.SetNextPageID(newPage.PageID())
				newPage.SetPrevPageID(prevID)
				h.pool.UnpinPage(prevID, true)
			}
			curID = newPage.PageID()
		}

		pg, err := h.pool.FetchPage(curID)
		if err != nil {
			return RID{}, err
		}
		if pg == nil {
			return RID{}, verr.New(verr.Internal, "page %d missing while inserting", curID)
		}

		required := tup.Size() + page.SlotEntrySize
		if pg.FreeSpace() >= required {
			idx, ok := pg.InsertTuple(tup.Data())
			if !ok {
				return RID{}, verr.New(verr.Internal, "insert failed despite sufficient free space check")
			}
			h.pool.UnpinPage(curID, true)
			return RID{PageID: curID, SlotID: idx}, nil
		}

		next := pg.NextPageID()
		h.pool.UnpinPage(curID, false)
		prevID = curID
		curID = next
	}
}

// Get returns a copy of the tuple named by rid. Any violation (page absent,
// slot out of range, tombstoned, wrong page type) is reported as not-found.
func (h *TableHeap) Get(rid RID) (*tuple.Tuple, error) {
	pg, err := h.pool.FetchPage(rid.PageID)
	if err != nil {
		return nil, err
	}
	if pg == nil {
		return nil, verr.New(verr.NotFound, "page %d does not exist", rid.PageID)
	}
	if pg.PageType() != page.Table {
		h.pool.UnpinPage(rid.PageID, false)
		return nil, verr.New(verr.NotFound, "page %d is not a table page", rid.PageID)
	}

	data, ok := pg.GetTuple(rid.SlotID)
	h.pool.UnpinPage(rid.PageID, false)
	if !ok {
		return nil, verr.New(verr.NotFound, "no live tuple at %+v", rid)
	}
	return tuple.FromBytes(data), nil
}

// Update replaces the row at rid with newTuple. If the new tuple is the same
// size as the old one, it is overwritten in place and rid is unchanged.
// Otherwise the new tuple is inserted fresh and the old slot is tombstoned;
// the returned RID differs from the input. If the insert succeeds but the
// tombstone fails, the insert is not rolled back.
func (h *TableHeap) Update(newTuple *tuple.Tuple, rid RID) (RID, error) {
	pg, err := h.pool.FetchPage(rid.PageID)
	if err != nil {
		return RID{}, err
	}
	if pg == nil {
		return RID{}, verr.New(verr.NotFound, "page %d does not exist", rid.PageID)
	}

	existing, ok := pg.GetTuple(rid.SlotID)
	if !ok {
		h.pool.UnpinPage(rid.PageID, false)
		return RID{}, verr.New(verr.NotFound, "no live tuple at %+v", rid)
	}

	if len(existing) == newTuple.Size() {
		pg.UpdateInPlace(rid.SlotID, newTuple.Data())
		h.pool.UnpinPage(rid.PageID, true)
		return rid, nil
	}
	h.pool.UnpinPage(rid.PageID, false)

	newRid, err := h.Insert(newTuple)
	if err != nil {
		return RID{}, err
	}

	pg2, err := h.pool.FetchPage(rid.PageID)
	if err != nil {
		return newRid, err
	}
	pg2.Tombstone(rid.SlotID)
	h.pool.UnpinPage(rid.PageID, true)

	return newRid, nil
}

// Delete tombstones the row at rid. No compaction is performed.
func (h *TableHeap) Delete(rid RID) error {
	pg, err := h.pool.FetchPage(rid.PageID)
	if err != nil {
		return err
	}
	if pg == nil {
		return verr.New(verr.NotFound, "page %d does not exist", rid.PageID)
	}
	ok := pg.Tombstone(rid.SlotID)
	h.pool.UnpinPage(rid.PageID, true)
	if !ok {
		return verr.New(verr.NotFound, "no live tuple at %+v", rid)
	}
	return nil
}
