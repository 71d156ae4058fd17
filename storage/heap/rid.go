// Package heap implements the table heap: an unordered set of rows for one
// table, stored as a linked list of slotted pages, mediated through the
// buffer pool.
package heap

import "github.com/karthikeyaspace/venus-db/config"

// RID (record id) identifies a tuple's storage location. It is stable for
// the lifetime of a row unless Update changes the row's size, in which case
// the row is re-inserted under a new RID.
type RID struct {
	PageID int
	SlotID int
}

// InvalidRID is the terminal iterator position.
var InvalidRID = RID{PageID: config.InvalidPageID, SlotID: 0}
