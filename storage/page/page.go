package page

import "github.com/karthikeyaspace/venus-db/config"

// Page is an in-memory view over one page-sized byte frame. It owns no
// storage of its own past the slice handed to it by the buffer pool; the
// buffer pool is responsible for the frame's lifetime.
type Page struct {
	data []byte
}

// New wraps an existing page-sized byte slice. The slice is used in place,
// never copied.
func New(data []byte) *Page {
	if len(data) != config.PageSize {
		panic("page: frame is not PageSize bytes")
	}
	return &Page{data: data}
}

// NewBlank allocates a fresh, zeroed frame and initializes it as a table
// page with the given id.
func NewBlank(id int) *Page {
	p := &Page{data: make([]byte, config.PageSize)}
	p.Reset(id, Table)
	return p
}

// Data returns the raw backing bytes, for handing to the disk manager.
func (p *Page) Data() []byte { return p.data }
