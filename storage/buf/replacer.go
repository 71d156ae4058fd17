package buf

import "container/list"

// lruList tracks frame recency: Touch(id) moves id to the front (most
// recently used); Victim() returns and removes the tail (least recently
// used) entry. It carries no pin count — this engine is single-threaded and
// a page is either resident or not.
type lruList struct {
	order *list.List
	index map[int]*list.Element
}

func newLRUList() *lruList {
	return &lruList{
		order: list.New(),
		index: make(map[int]*list.Element),
	}
}

// Touch records pageID as most recently used, inserting it if new.
func (l *lruList) Touch(pageID int) {
	if e, ok := l.index[pageID]; ok {
		l.order.MoveToFront(e)
		return
	}
	l.index[pageID] = l.order.PushFront(pageID)
}

// Remove drops pageID from the recency list, if present.
func (l *lruList) Remove(pageID int) {
	if e, ok := l.index[pageID]; ok {
		l.order.Remove(e)
		delete(l.index, pageID)
	}
}

// Victim returns the least recently used page id and removes it, or
// (0, false) if the list is empty.
func (l *lruList) Victim() (int, bool) {
	back := l.order.Back()
	if back == nil {
		return 0, false
	}
	pageID := back.Value.(int)
	l.order.Remove(back)
	delete(l.index, pageID)
	return pageID, true
}

// Len returns the number of tracked frames.
func (l *lruList) Len() int {
	return l.order.Len()
}
