// Package fileio provides bounded write helpers for large transfers.
//
// Kernel write paths are not required to accept arbitrarily large buffers in
// a single call, and short writes are legal for regular files on some
// filesystems. Both helpers here chunk transfers to at most 1 GiB per system
// call and retry until the whole buffer is on its way to the kernel.
package fileio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// maxTransfer is the largest number of bytes handed to a single write or
// pwrite system call.
const maxTransfer = 1 << 30

// WriteFull writes all of p to f at the current offset.
func WriteFull(f *os.File, p []byte) error {
	for len(p) > 0 {
		n := len(p)
		if n > maxTransfer {
			n = maxTransfer
		}

		w, err := f.Write(p[:n])
		if err != nil {
			return fmt.Errorf("fileio: write %s: %w", f.Name(), err)
		}
		p = p[w:]
	}
	return nil
}

// PwriteFull writes all of p to fd at absolute offset off, leaving the file
// offset untouched.
func PwriteFull(fd int, p []byte, off int64) error {
	for len(p) > 0 {
		n := len(p)
		if n > maxTransfer {
			n = maxTransfer
		}

		w, err := unix.Pwrite(fd, p[:n], off)
		if err != nil {
			return fmt.Errorf("fileio: pwrite at %d: %w", off, err)
		}
		if w == 0 {
			return fmt.Errorf("fileio: pwrite at %d: no progress", off)
		}
		p = p[w:]
		off += int64(w)
	}
	return nil
}
