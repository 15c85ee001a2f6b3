//go:build unix

package filemodel

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/blockedit/internal/fileio"
)

// Save flushes the chain back to the file and reopens it, collapsing the
// chain to a single mapped block. When only byte values changed, the
// writable blocks are written back in place at their logical offsets, which
// preserves extents on block devices and sparse files. When the length
// changed, the whole chain is streamed to "<path>.tmp" which is then renamed
// over the original.
func (m *Model) Save() error {
	if !m.modified {
		return nil
	}

	if !m.sizeModified {
		return m.saveInPlace()
	}

	tmp := m.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("filemodel: create %s: %w", tmp, err)
	}

	for b := m.header.next; b != &m.header; b = b.next {
		if err := fileio.WriteFull(f, m.bytes(b)); err != nil {
			f.Close()
			os.Remove(tmp)
			return err
		}
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("filemodel: close %s: %w", tmp, err)
	}

	path := m.path
	if err := m.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("filemodel: rename %s: %w", tmp, err)
	}

	return m.open(path, ReadWrite, true)
}

// saveInPlace writes only the writable blocks, each at its logical offset.
// Mapped blocks already hold the file's own bytes.
func (m *Model) saveInPlace() error {
	fd := int(m.f.Fd())

	off := uint64(0)
	for b := m.header.next; b != &m.header; b = b.next {
		if b.inMemory {
			if err := fileio.PwriteFull(fd, b.buf[:b.length], int64(off)); err != nil {
				return err
			}
		}
		off += b.length
	}

	if !m.blockDevice {
		if err := unix.Fdatasync(fd); err != nil {
			return fmt.Errorf("filemodel: fdatasync %s: %w", m.path, err)
		}
	}

	path := m.path
	if err := m.Close(); err != nil {
		return err
	}
	return m.open(path, ReadWrite, true)
}
