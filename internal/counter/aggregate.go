package counter

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// CountLinesParallel counts every path relative to baseDir. Files below the
// parallel threshold are counted sequentially in input order; larger files are
// counted on a bounded worker pool, largest first. Files that cannot be read
// are omitted from the summary; the batch itself never fails.
func (c *Counter) CountLinesParallel(baseDir string, paths []string) CountSummary {
	small, large := c.partition(baseDir, paths)

	files := make([]FileCount, 0, len(small)+len(large))
	for _, fi := range small {
		if fc, ok := c.countOne(baseDir, fi.path); ok {
			files = append(files, fc)
		}
	}

	files = append(files, c.countPool(baseDir, large)...)
	return NewSummary(files)
}

// CountLinesSequential counts every path in input order without concurrency.
// Unreadable files are omitted exactly as in CountLinesParallel.
func (c *Counter) CountLinesSequential(baseDir string, paths []string) CountSummary {
	files := make([]FileCount, 0, len(paths))
	for _, p := range paths {
		if fc, ok := c.countOne(baseDir, p); ok {
			files = append(files, fc)
		}
	}
	return NewSummary(files)
}

// countPool scans infos on at most c.opts.Workers goroutines and returns the
// successes in completion order.
func (c *Counter) countPool(baseDir string, infos []fileInfo) []FileCount {
	if len(infos) == 0 {
		return nil
	}

	var (
		mu      sync.Mutex
		results = make([]FileCount, 0, len(infos))
		g       errgroup.Group
	)
	g.SetLimit(c.opts.Workers)

	for _, fi := range infos {
		g.Go(func() error {
			fc, ok := c.countOne(baseDir, fi.path)
			if !ok {
				return nil
			}
			mu.Lock()
			results = append(results, fc)
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; per-file failures are omitted.
	_ = g.Wait()

	return results
}

func (c *Counter) countOne(baseDir, path string) (FileCount, bool) {
	lines, err := c.CountLines(baseDir, path)
	if err != nil {
		c.logger.Debug("skipping file", "path", path, "error", err)
		return FileCount{}, false
	}
	return FileCount{Path: path, Lines: lines}, true
}
