package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
)

// Extensions for media/binary files to exclude.
var mediaExtensions = []string{
	"mp3", "png", "jpg", "jpeg", "gif", "svg", "woff2", "ico", "webp", "bmp", "tiff", "wav", "mp4",
	"avi", "mov", "webm", "flac", "ogg", "ttf", "woff", "eot", "otf", "pdf",
}

// Extensions for data/configuration files to exclude.
var dataExtensions = []string{
	"mmdb", "csv", "json", "toml", "lock", "ini", "yaml", "yml", "xml",
}

var docExtensions = []string{"md"}

var excludedFilenames = []string{"LICENSE", "LICENSE-MIT", "LICENSE-APACHE", ".gitignore"}

// defaultIgnoreFile is looked up at the counted directory when no ignore file is configured.
const defaultIgnoreFile = ".gitlsfignore"

// fileFilter decides which tracked files are counted.
type fileFilter struct {
	extraExtensions []string // lowercased, without the leading dot
	extraFilenames  []string
	ignore          gitignore.IgnoreMatcher
	root            string // worktree root the ignore patterns are relative to
	prefix          string // counted directory relative to root, slash-terminated
}

// newFileFilter builds a filter with the default exclusions plus the extra
// extensions and file names given.
func newFileFilter(extensions, filenames []string) *fileFilter {
	f := &fileFilter{}
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			f.extraExtensions = append(f.extraExtensions, ext)
		}
	}
	for _, name := range filenames {
		if name = strings.TrimSpace(name); name != "" {
			f.extraFilenames = append(f.extraFilenames, name)
		}
	}
	return f
}

// loadIgnoreFile attaches gitignore-style patterns from ignorePath, resolved
// against the worktree root when relative. Paths later passed to shouldCount
// are relative to the directory root+prefix. A missing file is not an error
// unless it was named explicitly.
func (f *fileFilter) loadIgnoreFile(root, prefix, ignorePath string, explicit bool) error {
	if ignorePath == "" {
		return nil
	}
	if !filepath.IsAbs(ignorePath) {
		ignorePath = filepath.Join(root, ignorePath)
	}
	if _, err := os.Stat(ignorePath); err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error accessing ignore file %s: %w", ignorePath, err)
	}

	matcher, err := gitignore.NewGitIgnore(ignorePath, root)
	if err != nil {
		return fmt.Errorf("could not parse ignore file %s: %w", ignorePath, err)
	}
	f.ignore = matcher
	f.root = root
	f.prefix = prefix
	return nil
}

// shouldCount reports whether the slash-separated relative path p is counted.
func (f *fileFilter) shouldCount(p string) bool {
	name := path.Base(p)
	if slices.Contains(excludedFilenames, name) || slices.Contains(f.extraFilenames, name) {
		return false
	}

	// Dotfiles such as ".json" have no extension.
	if ext := path.Ext(name); len(ext) > 1 && len(ext) < len(name) {
		ext = strings.ToLower(ext[1:])
		if slices.Contains(mediaExtensions, ext) ||
			slices.Contains(dataExtensions, ext) ||
			slices.Contains(docExtensions, ext) ||
			slices.Contains(f.extraExtensions, ext) {
			return false
		}
	}

	if f.ignore != nil && f.ignore.Match(filepath.Join(f.root, filepath.FromSlash(f.prefix+p)), false) {
		return false
	}
	return true
}

// filterFiles returns the counted subset of files, preserving order.
func (f *fileFilter) filterFiles(files []string) []string {
	kept := make([]string, 0, len(files))
	for _, p := range files {
		if f.shouldCount(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
