//go:build unix && !linux

package filemodel

import "errors"

// Block device editing relies on BLKGETSIZE64 and is only wired up on Linux.
func blockDeviceSize(int) (uint64, error) {
	return 0, errors.New("filemodel: block devices are not supported on this platform")
}
