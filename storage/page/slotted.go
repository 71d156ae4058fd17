package page

import "encoding/binary"

// slotOffset returns the byte offset of slot idx's directory entry.
func slotOffset(idx int) int {
	return offSlotDirectory + idx*SlotEntrySize
}

// Slot describes one entry of the slot directory.
type Slot struct {
	Offset int
	Length int
	Live   bool
}

// Slot returns the slot directory entry at idx, regardless of liveness.
// The caller must ensure idx < NumSlots().
func (p *Page) Slot(idx int) Slot {
	o := slotOffset(idx)
	return Slot{
		Offset: int(binary.LittleEndian.Uint32(p.data[o:])),
		Length: int(binary.LittleEndian.Uint16(p.data[o+4:])),
		Live:   p.data[o+6] != 0,
	}
}

func (p *Page) setSlot(idx int, s Slot) {
	o := slotOffset(idx)
	binary.LittleEndian.PutUint32(p.data[o:], uint32(s.Offset))
	binary.LittleEndian.PutUint16(p.data[o+4:], uint16(s.Length))
	if s.Live {
		p.data[o+6] = 1
	} else {
		p.data[o+6] = 0
	}
}

func (p *Page) appendSlot(s Slot) int {
	idx := p.NumSlots()
	p.setSlot(idx, s)
	p.setNumSlots(idx + 1)
	p.setFreeSpacePtr(p.FreeSpacePtr() + SlotEntrySize)
	return idx
}

// InsertTuple appends tuple to the tuple region and a new slot entry to the
// directory, returning the new slot id. Returns false if the page does not
// have enough free space (data length plus one slot entry).
func (p *Page) InsertTuple(data []byte) (int, bool) {
	required := len(data) + SlotEntrySize
	if p.FreeSpace() < required {
		return 0, false
	}

	newStart := p.TupleStartPtr() - len(data)
	copy(p.data[newStart:newStart+len(data)], data)
	p.setTupleStartPtr(newStart)

	idx := p.appendSlot(Slot{Offset: newStart, Length: len(data), Live: true})
	p.SetDirty()
	return idx, true
}

// GetTuple returns a copy of the bytes stored at slot idx. ok is false if
// idx is out of range or the slot is tombstoned.
func (p *Page) GetTuple(idx int) (data []byte, ok bool) {
	if idx < 0 || idx >= p.NumSlots() {
		return nil, false
	}
	s := p.Slot(idx)
	if !s.Live {
		return nil, false
	}
	out := make([]byte, s.Length)
	copy(out, p.data[s.Offset:s.Offset+s.Length])
	return out, true
}

// IsLive reports whether idx names an in-range, live slot.
func (p *Page) IsLive(idx int) bool {
	if idx < 0 || idx >= p.NumSlots() {
		return false
	}
	return p.Slot(idx).Live
}

// Tombstone marks slot idx as no longer live. Its bytes remain in the tuple
// region; no compaction is performed.
func (p *Page) Tombstone(idx int) bool {
	if idx < 0 || idx >= p.NumSlots() {
		return false
	}
	s := p.Slot(idx)
	if !s.Live {
		return false
	}
	s.Live = false
	p.setSlot(idx, s)
	p.SetDirty()
	return true
}

// UpdateInPlace overwrites the bytes of an existing, same-length live tuple.
// Returns false (without mutating the page) if the slot is missing,
// tombstoned, or the new data is a different length.
func (p *Page) UpdateInPlace(idx int, data []byte) bool {
	if idx < 0 || idx >= p.NumSlots() {
		return false
	}
	s := p.Slot(idx)
	if !s.Live || s.Length != len(data) {
		return false
	}
	copy(p.data[s.Offset:s.Offset+s.Length], data)
	p.SetDirty()
	return true
}
