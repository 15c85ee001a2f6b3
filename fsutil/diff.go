package fsutil

import (
	"bytes"

	"github.com/joshuapare/blockedit/internal/mmfile"
)

// Diff reports whether the two regular files have identical contents. Sizes
// are compared first; two empty files are equal.
func Diff(path1, path2 string) (bool, error) {
	data1, cleanup1, err := mmfile.Map(path1)
	if err != nil {
		return false, err
	}
	defer cleanup1()

	data2, cleanup2, err := mmfile.Map(path2)
	if err != nil {
		return false, err
	}
	defer cleanup2()

	if len(data1) != len(data2) {
		return false, nil
	}
	return bytes.Equal(data1, data2), nil
}
