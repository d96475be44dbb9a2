//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package counter

import (
	"errors"
	"math"
	"os"

	"golang.org/x/sys/unix"
)

var (
	errMmapUnsupported = errors.New("memory mapping not supported")
	errFileShrunk      = errors.New("file shrank while mapped")
)

// countMapped maps f read-only, counts its lines and unmaps it before returning.
// Touching mapped pages past EOF raises SIGBUS, so the size is checked again
// once the mapping exists. A truncation racing the scan itself is not caught.
func countMapped(f *os.File, size int64) (n int, err error) {
	if size <= 0 {
		return 0, nil
	}
	if size > math.MaxInt {
		return 0, errMmapUnsupported
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return 0, err
	}
	defer func() {
		if uerr := unix.Munmap(data); uerr != nil && err == nil {
			err = uerr
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if info.Size() < size {
		return 0, errFileShrunk
	}

	return countBytes(data), nil
}
