//go:build linux

package filemodel

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// blockDeviceSize asks the kernel for the device size in bytes.
func blockDeviceSize(fd int) (uint64, error) {
	var size uint64
	_, _, errno := unix.Syscall(
		unix.SYS_IOCTL,
		uintptr(fd),
		uintptr(unix.BLKGETSIZE64),
		uintptr(unsafe.Pointer(&size)),
	)
	if errno != 0 {
		return 0, fmt.Errorf("filemodel: BLKGETSIZE64: %w", errno)
	}
	return size, nil
}
