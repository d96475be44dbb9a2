package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SOV710/gitlsf/internal/counter"
)

func TestLanguageForFile(t *testing.T) {
	assert.Equal(t, "Go", languageForFile("cmd/main.go"))
	assert.Equal(t, "Rust", languageForFile("src/lib.rs"))
	assert.Equal(t, otherLanguage, languageForFile("data.unknownext"))
}

func TestTotalsByLanguage(t *testing.T) {
	summary := counter.NewSummary([]counter.FileCount{
		{Path: "a.go", Lines: 10},
		{Path: "b.go", Lines: 5},
		{Path: "lib.rs", Lines: 40},
		{Path: "blob.unknownext", Lines: 1},
	})

	totals := totalsByLanguage(summary)

	require.Len(t, totals, 3)
	assert.Equal(t, languageTotal{Language: "Rust", Files: 1, Lines: 40}, totals[0])
	assert.Equal(t, languageTotal{Language: "Go", Files: 2, Lines: 15}, totals[1])
	assert.Equal(t, languageTotal{Language: otherLanguage, Files: 1, Lines: 1}, totals[2])
}
