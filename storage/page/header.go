// Package page implements the slotted-page layout that every page in a
// venus-db database file follows: a fixed header, a slot directory that
// grows upward (toward higher offsets) from the end of the header, and a
// tuple region that grows downward from the end of the page toward the slot
// directory.
package page

import (
	"encoding/binary"

	"github.com/karthikeyaspace/venus-db/config"
)

// Type enumerates what a page holds. Only Table is produced by this engine;
// the index variants are reserved for a future B-tree index and are never
// written.
type Type uint8

const (
	Invalid Type = iota
	Table
	IndexLeaf
	IndexInternal
)

// Header field layout, packed with explicit offsets so the on-disk format
// does not depend on Go struct padding:
//
//	page_id          u32   offset 0
//	next_page_id     u32   offset 4
//	prev_page_id     u32   offset 8
//	page_type        u8    offset 12
//	num_slots        u16   offset 13
//	free_space_ptr   u32   offset 15
//	tuple_start_ptr  u32   offset 19
//	is_dirty         u8    offset 23
const (
	offPageID         = 0
	offNextPageID     = 4
	offPrevPageID     = 8
	offPageType       = 12
	offNumSlots       = 13
	offFreeSpacePtr   = 15
	offTupleStartPtr  = 19
	offIsDirty        = 23
	HeaderSize        = 24
	SlotEntrySize     = 7
	offSlotDirectory  = HeaderSize
)

func putPageID(buf []byte, off int, id int) {
	binary.LittleEndian.PutUint32(buf[off:], uint32(int32(id)))
}

func getPageID(buf []byte, off int) int {
	return int(int32(binary.LittleEndian.Uint32(buf[off:])))
}

// PageID returns the page's own id, as recorded in its header.
func (p *Page) PageID() int { return getPageID(p.data, offPageID) }

func (p *Page) setPageID(id int) { putPageID(p.data, offPageID, id) }

// NextPageID returns the id of the next page in a table heap's chain, or
// config.InvalidPageID if this is the tail.
func (p *Page) NextPageID() int { return getPageID(p.data, offNextPageID) }

// SetNextPageID links this page to the next page in its chain.
func (p *Page) SetNextPageID(id int) { putPageID(p.data, offNextPageID, id) }

// PrevPageID returns the id of the previous page in a table heap's chain, or
// config.InvalidPageID if this is the head.
func (p *Page) PrevPageID() int { return getPageID(p.data, offPrevPageID) }

// SetPrevPageID links this page to the previous page in its chain.
func (p *Page) SetPrevPageID(id int) { putPageID(p.data, offPrevPageID, id) }

// PageType returns the page's declared type.
func (p *Page) PageType() Type { return Type(p.data[offPageType]) }

func (p *Page) setPageType(t Type) { p.data[offPageType] = byte(t) }

// NumSlots returns the number of entries in the slot directory, live or
// tombstoned.
func (p *Page) NumSlots() int {
	return int(binary.LittleEndian.Uint16(p.data[offNumSlots:]))
}

func (p *Page) setNumSlots(n int) {
	binary.LittleEndian.PutUint16(p.data[offNumSlots:], uint16(n))
}

// FreeSpacePtr returns the offset of the first free byte after the slot
// directory.
func (p *Page) FreeSpacePtr() int {
	return int(binary.LittleEndian.Uint32(p.data[offFreeSpacePtr:]))
}

func (p *Page) setFreeSpacePtr(v int) {
	binary.LittleEndian.PutUint32(p.data[offFreeSpacePtr:], uint32(v))
}

// TupleStartPtr returns the offset of the first byte of the lowest-addressed
// tuple in the tuple region.
func (p *Page) TupleStartPtr() int {
	return int(binary.LittleEndian.Uint32(p.data[offTupleStartPtr:]))
}

func (p *Page) setTupleStartPtr(v int) {
	binary.LittleEndian.PutUint32(p.data[offTupleStartPtr:], uint32(v))
}

// IsDirty reports whether the page has unflushed modifications.
func (p *Page) IsDirty() bool { return p.data[offIsDirty] != 0 }

// SetDirty marks the page as having unflushed modifications. This is the
// only way to request write-back from the buffer pool.
func (p *Page) SetDirty() { p.data[offIsDirty] = 1 }

// ClearDirty marks the page as flushed.
func (p *Page) ClearDirty() { p.data[offIsDirty] = 0 }

// FreeSpace returns the number of bytes available between the slot
// directory and the tuple region.
func (p *Page) FreeSpace() int {
	return p.TupleStartPtr() - p.FreeSpacePtr()
}

// Reset reinitializes the page as a fresh page of the given id and type:
// zero slots, an empty tuple region, no links, not dirty.
func (p *Page) Reset(id int, t Type) {
	for i := range p.data {
		p.data[i] = 0
	}
	p.setPageID(id)
	p.SetNextPageID(config.InvalidPageID)
	p.SetPrevPageID(config.InvalidPageID)
	p.setPageType(t)
	p.setNumSlots(0)
	p.setFreeSpacePtr(HeaderSize)
	p.setTupleStartPtr(config.PageSize)
	p.ClearDirty()
}
