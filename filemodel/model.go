package filemodel

import (
	"os"

	"github.com/joshuapare/blockedit/filemodel/changelog"
)

// Model is the editable file model. Create one with New, attach it to a file
// with Open and release it with Close.
//
// The model is NOT thread-safe and not reentrant; no operation may be called
// concurrently with any other on the same instance.
type Model struct {
	opts Options

	changes changelog.Journal
	nchange int // journal cursor: changes[:nchange] are applied

	path        string
	f           *os.File
	readOnly    bool
	blockDevice bool

	fileSize uint64 // size at last open/save
	data     []byte // read-only view of the original file, nil when empty

	length     uint64 // current logical size
	memoryUsed uint64 // bytes held in writable blocks

	header block // chain sentinel

	modified     bool
	sizeModified bool
}

// New creates an empty model. opts may be nil for the defaults.
func New(opts *Options) *Model {
	m := &Model{readOnly: true}
	if opts == nil {
		m.opts = DefaultOptions()
	} else {
		m.opts = *opts
		m.opts.sanitize()
	}

	m.header.prev = &m.header
	m.header.next = &m.header
	return m
}

// Path returns the file the model is attached to.
func (m *Model) Path() string { return m.path }

// ReadOnly reports whether the model was opened read-only.
func (m *Model) ReadOnly() bool { return m.readOnly }

// BlockDevice reports whether the backing file is a block device.
func (m *Model) BlockDevice() bool { return m.blockDevice }

// Length returns the current logical size.
func (m *Model) Length() uint64 { return m.length }

// MemoryUsed returns the bytes currently held in writable blocks.
func (m *Model) MemoryUsed() uint64 { return m.memoryUsed }

// Modified reports whether any successful mutation happened since the last
// open or save.
func (m *Model) Modified() bool { return m.modified }

// Changes exposes the journal, e.g. for persisting it with Save/Load.
func (m *Model) Changes() *changelog.Journal { return &m.changes }

// NumChange returns the journal cursor: the number of currently applied
// changes.
func (m *Model) NumChange() int { return m.nchange }

// Get copies up to len(p) bytes starting at off into p and returns the
// number of bytes copied. Fewer bytes than len(p) are returned only when the
// end of the file is reached. Get fails iff off is at or past the end.
func (m *Model) Get(off uint64, p []byte) (int, error) {
	b, pos, ok := m.seek(off)
	if !ok {
		return 0, ErrInvalidOperation
	}
	return m.readFrom(b, pos, p), nil
}

// Find searches for needle in the given direction and returns the absolute
// offset of the match. Forward finds the first match starting at or after
// off, Backward the last match starting at or before off. An empty needle or
// a needle longer than the file never matches.
func (m *Model) Find(off uint64, dir Direction, needle []byte) (uint64, bool) {
	if dir == Forward {
		return m.findForward(off, needle)
	}
	return m.findBackward(off, needle)
}
