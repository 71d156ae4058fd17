// Package buf implements the buffer pool: a bounded cache of page frames
// with LRU eviction and dirty write-back, sitting between the table heap and
// the disk manager.
package buf

import (
	"github.com/karthikeyaspace/venus-db/config"
	"github.com/karthikeyaspace/venus-db/storage/disk"
	"github.com/karthikeyaspace/venus-db/storage/page"
	"github.com/karthikeyaspace/venus-db/verr"
	"github.com/sirupsen/logrus"
)

// Pool caches up to poolSize pages, evicting the least recently used frame
// when full. Per-frame ownership of the underlying byte buffer is
// exclusive to the pool.
type Pool struct {
	poolSize int
	disk     *disk.Manager
	frames   map[int]*page.Page
	lru      *lruList
	log      logrus.FieldLogger
}

// NewPool constructs a buffer pool of the given size fronting disk.
func NewPool(d *disk.Manager, poolSize int) *Pool {
	if poolSize <= 0 {
		poolSize = config.DefaultPoolSize
	}
	return &Pool{
		poolSize: poolSize,
		disk:     d,
		frames:   make(map[int]*page.Page),
		lru:      newLRUList(),
		log:      logrus.WithField("component", "buffer_pool"),
	}
}

// FetchPage returns the page for pageID, faulting it in from disk if
// necessary and evicting the least recently used frame if the pool is full.
// Fetching config.InvalidPageID returns (nil, nil): a null result, never an
// error.
func (p *Pool) FetchPage(pageID int) (*page.Page, error) {
	if pageID == config.InvalidPageID {
		return nil, nil
	}

	if pg, ok := p.frames[pageID]; ok {
		p.lru.Touch(pageID)
		return pg, nil
	}

	if len(p.frames) >= p.poolSize {
		if err := p.evict(); err != nil {
			return nil, err
		}
	}

	buf := make([]byte, config.PageSize)
	if err := p.disk.ReadPage(pageID, buf); err != nil {
		return nil, err
	}

	pg := page.New(buf)
	p.frames[pageID] = pg
	p.lru.Touch(pageID)
	p.log.WithField("page_id", pageID).Debug("faulted page in from disk")
	return pg, nil
}

// evict writes back and drops the least recently used frame. It is a no-op
// (not an error) if the pool holds no frames yet.
func (p *Pool) evict() error {
	victim, ok := p.lru.Victim()
	if !ok {
		return nil
	}
	pg := p.frames[victim]
	if pg.IsDirty() {
		if err := p.disk.WritePage(victim, pg.Data()); err != nil {
			return err
		}
	}
	delete(p.frames, victim)
	p.log.WithField("page_id", victim).Debug("evicted page")
	return nil
}

// NewPage allocates a fresh page at a disk-manager-assigned id, writes it
// through to disk immediately, and installs it in the pool.
func (p *Pool) NewPage() (*page.Page, error) {
	return p.newPageAt(p.disk.AllocatePage())
}

// NewPageAt allocates a fresh page at a caller-supplied id. It is used only
// by catalog bootstrap, to materialize master_tables/master_columns at their
// fixed page ids 0 and 1.
func (p *Pool) NewPageAt(pageID int) (*page.Page, error) {
	return p.newPageAt(pageID)
}

func (p *Pool) newPageAt(pageID int) (*page.Page, error) {
	if len(p.frames) >= p.poolSize {
		if err := p.evict(); err != nil {
			return nil, err
		}
	}

	pg := page.NewBlank(pageID)
	if err := p.disk.WritePage(pageID, pg.Data()); err != nil {
		return nil, verr.Wrap(verr.IOError, err, "writing through new page %d", pageID)
	}
	pg.ClearDirty()

	p.frames[pageID] = pg
	p.lru.Touch(pageID)
	return pg, nil
}

// UnpinPage marks pageID dirty if isDirty is true. This engine tracks no
// pin count: the name is retained for its side effect of requesting
// write-back, not for reference counting.
func (p *Pool) UnpinPage(pageID int, isDirty bool) {
	if pg, ok := p.frames[pageID]; ok && isDirty {
		pg.SetDirty()
	}
}

// FlushPage writes pageID to disk if dirty and clears its dirty flag.
func (p *Pool) FlushPage(pageID int) error {
	pg, ok := p.frames[pageID]
	if !ok {
		return nil
	}
	if pg.IsDirty() {
		if err := p.disk.WritePage(pageID, pg.Data()); err != nil {
			return err
		}
		pg.ClearDirty()
	}
	return nil
}

// FlushAll flushes every resident frame.
func (p *Pool) FlushAll() error {
	for pageID := range p.frames {
		if err := p.FlushPage(pageID); err != nil {
			return err
		}
	}
	return nil
}

// DeletePage drops pageID from the pool and logically deallocates it. It
// does not flush: callers that want the last state on disk must FlushPage
// first.
func (p *Pool) DeletePage(pageID int) {
	delete(p.frames, pageID)
	p.lru.Remove(pageID)
	p.disk.DeallocatePage(pageID)
}

// Close flushes every dirty resident page before any frame is freed.
func (p *Pool) Close() error {
	if err := p.FlushAll(); err != nil {
		return err
	}
	p.frames = make(map[int]*page.Page)
	p.lru = newLRUList()
	return nil
}
