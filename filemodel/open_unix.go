//go:build unix

package filemodel

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// OpenMode selects how Open attaches to the file.
type OpenMode int

const (
	// ReadWrite opens the file for editing.
	ReadWrite OpenMode = iota

	// ReadOnly opens the file for inspection; every mutating call returns
	// ErrReadOnly.
	ReadOnly
)

// Open attaches the model to the regular file or block device at path. The
// file is memory-mapped shared; a non-empty file starts out as a single
// mapped block. With undo enabled, Open clears the journal, even when path
// is the file the model was attached to before; only the reopen performed
// by Save keeps it.
func (m *Model) Open(path string, mode OpenMode) error {
	return m.open(path, mode, false)
}

// open is shared by Open and the self-reopen performed by Save. A
// self-reopen keeps the journal so that edits made before the save remain
// undoable.
func (m *Model) open(path string, mode OpenMode, self bool) error {
	if len(path) >= unix.PathMax {
		return fmt.Errorf("filemodel: path longer than %d bytes", unix.PathMax)
	}

	var flags, prot int
	if mode == ReadWrite {
		m.readOnly = false
		flags = os.O_RDWR
		prot = unix.PROT_READ | unix.PROT_WRITE
	} else {
		m.readOnly = true
		flags = os.O_RDONLY
		prot = unix.PROT_READ
	}

	f, err := os.OpenFile(path, flags, 0)
	if err != nil {
		return err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}

	fmode := info.Mode()
	switch {
	case fmode.IsRegular():
		m.blockDevice = false
		m.fileSize = uint64(info.Size())
	case fmode&os.ModeDevice != 0 && fmode&os.ModeCharDevice == 0:
		m.blockDevice = true
		size, err := blockDeviceSize(int(f.Fd()))
		if err != nil {
			f.Close()
			return err
		}
		m.fileSize = size
	default:
		f.Close()
		return fmt.Errorf("filemodel: %s is neither a regular file nor a block device", path)
	}

	if m.fileSize != 0 {
		data, err := unix.Mmap(int(f.Fd()), 0, int(m.fileSize), prot, unix.MAP_SHARED)
		if err != nil {
			f.Close()
			return fmt.Errorf("filemodel: mmap %s: %w", path, err)
		}
		m.data = data

		b := &block{off: 0, length: m.fileSize}
		b.prev = &m.header
		b.next = &m.header
		m.header.prev = b
		m.header.next = b
	}

	m.f = f

	if !self {
		m.path = path
		if m.opts.UndoEnabled {
			m.changes.Clear()
			m.nchange = 0
		}
	}

	m.length = m.fileSize
	m.memoryUsed = 0
	m.modified = false
	m.sizeModified = false

	return nil
}

// Close detaches the model: the chain is dropped, the mapping removed and
// the descriptor closed. The journal survives so that a saved change log can
// still be written afterwards.
func (m *Model) Close() error {
	m.readOnly = true
	m.length = 0

	m.freeChain()
	m.memoryUsed = 0

	var err error
	if m.data != nil {
		err = unix.Munmap(m.data)
		m.data = nil
	}
	if m.f != nil {
		if cerr := m.f.Close(); err == nil {
			err = cerr
		}
		m.f = nil
	}

	m.fileSize = 0
	m.modified = false
	m.sizeModified = false

	return err
}
