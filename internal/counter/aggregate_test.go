package counter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSummaryConsistent(t *testing.T, s CountSummary) {
	t.Helper()
	sum := 0
	for _, f := range s.Files {
		sum += f.Lines
	}
	assert.Equal(t, sum, s.TotalLines)
	assert.Equal(t, len(s.Files), s.FileCount)
}

func TestCountLinesParallel_SkipsMissing(t *testing.T) {
	dir := setupTestFiles(t)

	summary := CountLinesParallel(dir, []string{
		"one_line.txt",
		"three_lines.txt",
		"src/main.go",
		"nonexistent.txt",
	})

	assert.Equal(t, 3, summary.FileCount)
	assert.Equal(t, 1+3+3, summary.TotalLines)
	assertSummaryConsistent(t, summary)
}

func TestCountLinesSequential(t *testing.T) {
	dir := setupTestFiles(t)

	summary := CountLinesSequential(dir, []string{"one_line.txt", "three_lines.txt"})

	assert.Equal(t, 2, summary.FileCount)
	assert.Equal(t, 4, summary.TotalLines)
	assert.Equal(t, []FileCount{
		{Path: "one_line.txt", Lines: 1},
		{Path: "three_lines.txt", Lines: 3},
	}, summary.Files)
}

// Unreadable paths are dropped from batches rather than reported.
func TestBatches_OmitUnreadablePaths(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.txt":   "only\n",
		"b.txt":   "1\n2\n3\n",
		"sub/c.c": "",
	})
	paths := []string{"a.txt", "missing.txt", "b.txt", "sub"}

	for name, count := range map[string]func(string, []string) CountSummary{
		"parallel":   CountLinesParallel,
		"sequential": CountLinesSequential,
	} {
		t.Run(name, func(t *testing.T) {
			summary := count(dir, paths)
			assert.Equal(t, 2, summary.FileCount)
			assert.Equal(t, 4, summary.TotalLines)
			assertSummaryConsistent(t, summary)
		})
	}
}

func TestBatches_EmptyInput(t *testing.T) {
	dir := t.TempDir()

	for _, summary := range []CountSummary{
		CountLinesParallel(dir, nil),
		CountLinesSequential(dir, []string{}),
	} {
		assert.Zero(t, summary.FileCount)
		assert.Zero(t, summary.TotalLines)
		assert.Empty(t, summary.Files)
	}
}

func TestCountLinesParallel_SmallGroupFirstInInputOrder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"z_small.txt": "1\n",
		"big1.txt":    strings.Repeat("x\n", 100),
		"a_small.txt": "1\n2\n",
		"big2.txt":    strings.Repeat("y\n", 200),
		"big3.txt":    strings.Repeat("z\n", 50),
	})

	opts := DefaultOptions()
	opts.ParallelThreshold = 64
	opts.MmapThreshold = 256
	opts.Workers = 2
	c := newTestCounter(t, opts)

	summary := c.CountLinesParallel(dir, []string{"z_small.txt", "big1.txt", "a_small.txt", "big2.txt", "big3.txt"})

	require.Len(t, summary.Files, 5)
	assert.Equal(t, FileCount{Path: "z_small.txt", Lines: 1}, summary.Files[0])
	assert.Equal(t, FileCount{Path: "a_small.txt", Lines: 2}, summary.Files[1])
	assert.ElementsMatch(t, []FileCount{
		{Path: "big1.txt", Lines: 100},
		{Path: "big2.txt", Lines: 200},
		{Path: "big3.txt", Lines: 50},
	}, summary.Files[2:])
	assert.Equal(t, 353, summary.TotalLines)
	assertSummaryConsistent(t, summary)
}

func TestParallelAndSequential_SameMultiset(t *testing.T) {
	dir := t.TempDir()
	files := make(map[string]string)
	var paths []string
	for i := 0; i < 40; i++ {
		name := fmt.Sprintf("dir%d/file%02d.txt", i%4, i)
		// Sizes spread across both thresholds of the counter below.
		files[name] = strings.Repeat("0123456789abcdef\n", i*i) + strings.Repeat("t", i%3)
		paths = append(paths, name)
	}
	writeFiles(t, dir, files)
	paths = append(paths, "missing/one.txt", "dir0")

	opts := DefaultOptions()
	opts.ParallelThreshold = 1024
	opts.MmapThreshold = 8 * 1024
	opts.BufferSize = 512
	opts.Workers = 4
	c := newTestCounter(t, opts)

	par := c.CountLinesParallel(dir, paths)
	seq := c.CountLinesSequential(dir, paths)

	assert.ElementsMatch(t, seq.Files, par.Files)
	assert.Equal(t, seq.TotalLines, par.TotalLines)
	assert.Equal(t, 40, par.FileCount)
	assertSummaryConsistent(t, par)
	assertSummaryConsistent(t, seq)
}

func TestCountLinesParallel_PathsNotNormalized(t *testing.T) {
	dir := setupTestFiles(t)

	summary := CountLinesSequential(dir, []string{"./src/../one_line.txt"})

	require.Len(t, summary.Files, 1)
	assert.Equal(t, "./src/../one_line.txt", summary.Files[0].Path)
}
