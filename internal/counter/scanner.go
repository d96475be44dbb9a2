package counter

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// CountLines opens relPath inside baseDir and returns its line count.
// Files larger than the mmap threshold are mapped; all others are read in
// chunks. Failures are returned as *IOError.
func (c *Counter) CountLines(baseDir, relPath string) (int, error) {
	fullPath := filepath.Join(baseDir, relPath)

	f, err := os.Open(fullPath)
	if err != nil {
		return 0, ioError("open", fullPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, ioError("stat", fullPath, err)
	}
	if info.IsDir() {
		return 0, ioError("read", fullPath, errors.New("is a directory"))
	}

	if info.Size() > c.opts.MmapThreshold {
		n, err := countMapped(f, info.Size())
		if err == nil {
			return n, nil
		}
		if !errors.Is(err, errMmapUnsupported) {
			return 0, ioError("map", fullPath, err)
		}
		// Platforms without mmap fall through to buffered reads.
	}

	buf := c.bufs.Get().(*[]byte)
	n, err := countBuffered(f, *buf)
	c.bufs.Put(buf)
	if err != nil {
		return 0, ioError("read", fullPath, err)
	}
	return n, nil
}

// countBuffered counts lines from r using buf as the read buffer.
func countBuffered(r io.Reader, buf []byte) (int, error) {
	count := 0
	var last byte
	seen := false

	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			count += bytes.Count(chunk, newline)
			last = chunk[n-1]
			seen = true
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	if seen && last != '\n' {
		count++
	}
	return count, nil
}

// countBytes applies the line rule to an in-memory buffer.
func countBytes(data []byte) int {
	count := bytes.Count(data, newline)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		count++
	}
	return count
}

var newline = []byte{'\n'}
