//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package counter

import (
	"errors"
	"os"
)

var errMmapUnsupported = errors.New("memory mapping not supported")

func countMapped(*os.File, int64) (int, error) {
	return 0, errMmapUnsupported
}
