//go:build unix

// Package trivial is a minimal file editor that realises every operation by
// rewriting the whole file. It is hopelessly slow on purpose: its only job
// is to be an obviously correct oracle for differential tests against
// filemodel. It keeps a live mapping of the file between calls, so it must
// never share a file with an open filemodel.Model.
package trivial

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/blockedit/internal/fileio"
)

// ErrRejected is returned for any operation the editor refuses: mutating a
// read-only or closed model, resizing a block device, or addressing past the
// end of the file.
var ErrRejected = errors.New("trivial: operation rejected")

// Model is the reference editor. The zero value is closed; use Open.
type Model struct {
	path        string
	f           *os.File
	readOnly    bool
	blockDevice bool
	fileSize    uint64
	data        []byte
}

// Open attaches to path read-write and maps it shared.
func (m *Model) Open(path string) error {
	if len(path) >= unix.PathMax {
		return fmt.Errorf("trivial: path longer than %d bytes", unix.PathMax)
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
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
		f.Close()
		return fmt.Errorf("trivial: block devices need BLKGETSIZE64; use a regular file")
	default:
		f.Close()
		return fmt.Errorf("trivial: %s is neither a regular file nor a block device", path)
	}

	if m.fileSize != 0 {
		data, err := unix.Mmap(int(f.Fd()), 0, int(m.fileSize),
			unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
		if err != nil {
			f.Close()
			return fmt.Errorf("trivial: mmap %s: %w", path, err)
		}
		m.data = data
	}

	m.f = f
	m.path = path
	m.readOnly = false
	return nil
}

// Close unmaps and closes the file.
func (m *Model) Close() error {
	m.readOnly = true

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
	return err
}

// ReadOnly reports whether the editor accepts mutations.
func (m *Model) ReadOnly() bool { return m.readOnly }

// BlockDevice reports whether the file is a block device.
func (m *Model) BlockDevice() bool { return m.blockDevice }

// Length returns the file size.
func (m *Model) Length() uint64 { return m.fileSize }

// Modify overwrites bytes in place and reopens the file.
func (m *Model) Modify(off uint64, data []byte) error {
	if m.readOnly {
		return ErrRejected
	}
	if off+uint64(len(data)) > m.fileSize {
		return ErrRejected
	}
	if len(data) == 0 {
		return nil
	}

	if err := fileio.PwriteFull(int(m.f.Fd()), data, int64(off)); err != nil {
		return err
	}

	if err := m.Close(); err != nil {
		return err
	}
	return m.Open(m.path)
}

// Add rewrites the file through a temporary with data spliced in at off.
func (m *Model) Add(off uint64, data []byte) error {
	if m.readOnly {
		return ErrRejected
	}
	if m.blockDevice {
		return ErrRejected
	}
	if off > m.fileSize {
		return ErrRejected
	}
	if len(data) == 0 {
		return nil
	}

	return m.rewrite(func(f *os.File) error {
		if err := fileio.WriteFull(f, m.data[:off]); err != nil {
			return err
		}
		if err := fileio.WriteFull(f, data); err != nil {
			return err
		}
		return fileio.WriteFull(f, m.data[off:])
	})
}

// Remove rewrites the file through a temporary without the removed range.
func (m *Model) Remove(off, length uint64) error {
	if m.readOnly {
		return ErrRejected
	}
	if m.blockDevice {
		return ErrRejected
	}
	if off >= m.fileSize {
		return ErrRejected
	}
	if off+length > m.fileSize {
		length = m.fileSize - off
	}
	if length == 0 {
		return nil
	}

	return m.rewrite(func(f *os.File) error {
		if err := fileio.WriteFull(f, m.data[:off]); err != nil {
			return err
		}
		return fileio.WriteFull(f, m.data[off+length:])
	})
}

func (m *Model) rewrite(write func(*os.File) error) error {
	tmp := m.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	path := m.path
	if err := m.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return err
	}
	return m.Open(path)
}

// Get copies up to len(p) bytes at off into p, clamped to the end of the
// file, and returns the number of bytes copied.
func (m *Model) Get(off uint64, p []byte) (int, error) {
	if off >= m.fileSize {
		return 0, ErrRejected
	}
	return copy(p, m.data[off:]), nil
}

// FindForward returns the first match of needle at or after off.
func (m *Model) FindForward(off uint64, needle []byte) (uint64, bool) {
	needlelen := uint64(len(needle))
	if off+needlelen > m.fileSize || needlelen == 0 {
		return 0, false
	}
	if i := indexOf(m.data[off:], needle); i >= 0 {
		return off + uint64(i), true
	}
	return 0, false
}

// FindBackward returns the last match of needle starting at or before off.
func (m *Model) FindBackward(off uint64, needle []byte) (uint64, bool) {
	needlelen := uint64(len(needle))
	if needlelen > m.fileSize || needlelen == 0 {
		return 0, false
	}
	if off+needlelen > m.fileSize {
		off = m.fileSize - needlelen
	}
	if i := lastIndexAtOrBefore(m.data, needle, off); i >= 0 {
		return uint64(i), true
	}
	return 0, false
}
