package counter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFiles creates each file under dir, creating parent directories as needed.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

// setupTestFiles mirrors the fixture used across the counter tests.
func setupTestFiles(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"one_line.txt":    "single line\n",
		"three_lines.txt": "line1\nline2\nline3\n",
		"empty.txt":       "",
		"no_newline.txt":  "no newline at end",
		"src/main.go":     "package main\n\nfunc main() {}\n",
	})
	return dir
}

// syntheticContent returns exactly size bytes made of ten-byte lines followed
// by an unterminated tail, along with the expected line count.
func syntheticContent(size int) (string, int) {
	const line = "abcdefghi\n"
	full := size / len(line)
	rem := size % len(line)
	expected := full
	if rem > 0 {
		expected++
	}
	return strings.Repeat(line, full) + strings.Repeat("x", rem), expected
}

func newTestCounter(t *testing.T, opts Options) *Counter {
	t.Helper()
	c, err := New(opts)
	require.NoError(t, err)
	return c
}
