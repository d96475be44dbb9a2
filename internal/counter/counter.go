// Package counter counts newline-delimited lines in files, choosing between
// buffered and memory-mapped reads per file and between sequential and
// parallel execution per batch.
package counter

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
)

const (
	// DefaultBufferSize is the chunk size used for buffered reads (2MB).
	DefaultBufferSize = 2 * 1024 * 1024
	// DefaultMmapThreshold is the size above which files are memory-mapped (1MB).
	DefaultMmapThreshold int64 = 1024 * 1024
	// DefaultParallelThreshold is the size below which files are counted
	// sequentially instead of being dispatched to the worker pool (100KB).
	DefaultParallelThreshold int64 = 100 * 1024
)

// Options configures a Counter.
type Options struct {
	MmapThreshold     int64
	ParallelThreshold int64
	BufferSize        int
	// Workers bounds the pool used for large files. Zero or less means runtime.NumCPU().
	Workers int
	// Logger receives debug records for omitted files. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the thresholds the CLI uses when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MmapThreshold:     DefaultMmapThreshold,
		ParallelThreshold: DefaultParallelThreshold,
		BufferSize:        DefaultBufferSize,
	}
}

func (o Options) validate() error {
	if o.MmapThreshold < 0 || o.ParallelThreshold < 0 {
		return fmt.Errorf("%w: thresholds must not be negative", ErrInvalidOptions)
	}
	if o.MmapThreshold < o.ParallelThreshold {
		return fmt.Errorf("%w: mmap threshold (%d) is below parallel threshold (%d)",
			ErrInvalidOptions, o.MmapThreshold, o.ParallelThreshold)
	}
	if o.BufferSize <= 0 {
		return fmt.Errorf("%w: buffer size must be positive, got %d", ErrInvalidOptions, o.BufferSize)
	}
	return nil
}

// Counter counts lines using a fixed set of thresholds. Apart from a pool of
// read buffers it holds no mutable state, and it is safe for concurrent use.
type Counter struct {
	opts   Options
	logger *slog.Logger
	bufs   sync.Pool // *[]byte of len opts.BufferSize
}

// New validates opts and returns a Counter.
func New(opts Options) (*Counter, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	c := &Counter{opts: opts, logger: logger}
	c.bufs.New = func() any {
		buf := make([]byte, c.opts.BufferSize)
		return &buf
	}
	return c, nil
}

// Options returns the effective options, with Workers resolved.
func (c *Counter) Options() Options {
	return c.opts
}

var defaultCounter = func() *Counter {
	c, err := New(DefaultOptions())
	if err != nil {
		panic(err)
	}
	return c
}()

// CountLines counts the lines of relPath inside baseDir with default options.
func CountLines(baseDir, relPath string) (int, error) {
	return defaultCounter.CountLines(baseDir, relPath)
}

// CountLinesParallel counts a batch with default options. See Counter.CountLinesParallel.
func CountLinesParallel(baseDir string, paths []string) CountSummary {
	return defaultCounter.CountLinesParallel(baseDir, paths)
}

// CountLinesSequential counts a batch in input order with default options.
func CountLinesSequential(baseDir string, paths []string) CountSummary {
	return defaultCounter.CountLinesSequential(baseDir, paths)
}
