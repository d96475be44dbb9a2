package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// errSelectionAborted is returned when the user leaves the finder without choosing.
var errSelectionAborted = errors.New("interactive selection aborted")

// selectFilesInteractive lets the user pick a subset of candidates, which are
// paths relative to baseDir.
func selectFilesInteractive(baseDir string, candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no tracked files to select from")
	}

	idx, err := fuzzyfinder.FindMulti(
		candidates,
		func(i int) string {
			return candidates[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select files to count. Press Tab to multi-select, Enter to confirm."
			}
			path := candidates[i]
			info, statErr := os.Stat(filepath.Join(baseDir, path))
			if statErr != nil {
				return fmt.Sprintf("Path: %s\nError getting info: %v", path, statErr)
			}
			return fmt.Sprintf("Path: %s\nLanguage: %s\nSize: %d bytes", path, languageForFile(path), info.Size())
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, errSelectionAborted
		}
		return nil, fmt.Errorf("fuzzy finder error: %w", err)
	}

	selected := make([]string, len(idx))
	for i, index := range idx {
		selected[i] = candidates[index]
	}
	return selected, nil
}
