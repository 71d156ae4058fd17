// Package disk implements fixed-size page I/O on a single OS file: the
// bottom of the storage stack, with no notion of pages beyond raw bytes.
package disk

import (
	"io"
	"os"

	"github.com/karthikeyaspace/venus-db/config"
	"github.com/karthikeyaspace/venus-db/verr"
	"github.com/sirupsen/logrus"
)

// Manager owns exclusive access to one database file and hands out
// monotonically increasing page ids.
type Manager struct {
	file       *os.File
	path       string
	nextPageID int
	log        logrus.FieldLogger
}

// Open opens path for read/write binary I/O, creating it if absent. wasCold
// reports whether the file was smaller than one page before this call: file
// size, not a fetch-page probe, decides cold vs. warm.
func Open(path string) (m *Manager, wasCold bool, err error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, false, verr.Wrap(verr.IOError, err, "opening database file %s", path)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, false, verr.Wrap(verr.IOError, err, "stat database file %s", path)
	}

	fileSize := info.Size()
	wasCold = fileSize < config.PageSize

	next := int((fileSize + config.PageSize - 1) / config.PageSize)
	if next < config.FirstUsablePage {
		next = config.FirstUsablePage
	}

	return &Manager{
		file:       f,
		path:       path,
		nextPageID: next,
		log:        logrus.WithField("component", "disk"),
	}, wasCold, nil
}

// ReadPage reads exactly config.PageSize bytes at pageID into out, which
// must be that length.
func (m *Manager) ReadPage(pageID int, out []byte) error {
	if len(out) != config.PageSize {
		panic("disk: ReadPage buffer is not PageSize bytes")
	}
	n, err := m.file.ReadAt(out, int64(pageID)*config.PageSize)
	if err != nil && err != io.EOF {
		return verr.Wrap(verr.IOError, err, "reading page %d", pageID)
	}
	if n != config.PageSize {
		return verr.New(verr.IOError, "short read on page %d: got %d bytes", pageID, n)
	}
	return nil
}

// WritePage writes exactly config.PageSize bytes at pageID, extending the
// file if needed, and flushes immediately (force policy: no write-behind).
func (m *Manager) WritePage(pageID int, in []byte) error {
	if len(in) != config.PageSize {
		panic("disk: WritePage buffer is not PageSize bytes")
	}
	n, err := m.file.WriteAt(in, int64(pageID)*config.PageSize)
	if err != nil {
		return verr.Wrap(verr.IOError, err, "writing page %d", pageID)
	}
	if n != config.PageSize {
		return verr.New(verr.IOError, "short write on page %d: wrote %d bytes", pageID, n)
	}
	if err := m.file.Sync(); err != nil {
		return verr.Wrap(verr.IOError, err, "fsync after writing page %d", pageID)
	}
	m.log.WithField("page_id", pageID).Debug("wrote page")
	return nil
}

// AllocatePage returns the next unused page id and advances the counter.
func (m *Manager) AllocatePage() int {
	id := m.nextPageID
	m.nextPageID++
	return id
}

// DeallocatePage is a logical no-op: page ids are never reused within a
// session and this engine performs no on-disk compaction.
func (m *Manager) DeallocatePage(pageID int) {
	m.log.WithField("page_id", pageID).Debug("deallocate (logical only)")
}

// Close releases the underlying file handle.
func (m *Manager) Close() error {
	if err := m.file.Close(); err != nil {
		return verr.Wrap(verr.IOError, err, "closing database file %s", m.path)
	}
	return nil
}
