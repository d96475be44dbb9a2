package counter

import (
	"os"
	"path/filepath"
	"sort"
)

// partition stats each path and splits the readable ones into a small group,
// kept in input order, and a large group sorted by size descending so the
// pool starts on the longest scans first. Paths that cannot be stat'ed are
// dropped.
func (c *Counter) partition(baseDir string, paths []string) (small, large []fileInfo) {
	for _, p := range paths {
		info, err := os.Stat(filepath.Join(baseDir, p))
		if err != nil {
			c.logger.Debug("skipping file", "path", p, "stage", "partition", "error", err)
			continue
		}

		fi := fileInfo{path: p, size: info.Size()}
		if fi.size < c.opts.ParallelThreshold {
			small = append(small, fi)
		} else {
			large = append(large, fi)
		}
	}

	sort.SliceStable(large, func(i, j int) bool {
		return large[i].size > large[j].size
	})
	return small, large
}
