package fsutil

import (
	"os"

	"github.com/joshuapare/blockedit/internal/fileio"
	"github.com/joshuapare/blockedit/internal/mmfile"
)

// Copy duplicates the regular file src into dst byte for byte. dst is
// truncated if it exists. Zero-length sources produce an empty dst.
func Copy(src, dst string) error {
	data, cleanup, err := mmfile.Map(src)
	if err != nil {
		return err
	}
	defer cleanup()

	f, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if err := fileio.WriteFull(f, data); err != nil {
		f.Close()
		os.Remove(dst)
		return err
	}
	return f.Close()
}
