package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNotRepository is returned when the path is not inside a git worktree.
var ErrNotRepository = errors.New("not a git repository (or any parent up to mount point)")

// isGitURL checks if the input string looks like a Git repository URL.
// Prioritizes .git suffix or git@ prefix.
func isGitURL(input string) bool {
	return strings.HasSuffix(input, ".git") ||
		strings.HasPrefix(input, "git@")
}

// openRepository opens the repository containing path, searching parent
// directories for the .git entry.
func openRepository(path string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNotRepository
		}
		return nil, fmt.Errorf("failed to open repository at '%s': %w", path, err)
	}
	return repo, nil
}

// isGitRepository reports whether path is inside a git worktree.
func isGitRepository(path string) bool {
	_, err := openRepository(path)
	return err == nil
}

// trackedFiles is the result of listing a repository's index under a path.
type trackedFiles struct {
	// Root is the worktree root directory.
	Root string
	// Prefix is the listed path relative to Root, slash-terminated, or "" at the root.
	Prefix string
	// Files are relative to the listed path and slash-separated, in index order.
	Files []string
}

// listTrackedFiles returns the files tracked in the index that live under path.
func listTrackedFiles(path string) (trackedFiles, error) {
	repo, err := openRepository(path)
	if err != nil {
		return trackedFiles{}, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return trackedFiles{}, fmt.Errorf("failed to open worktree: %w", err)
	}
	idx, err := repo.Storer.Index()
	if err != nil {
		return trackedFiles{}, fmt.Errorf("failed to read index: %w", err)
	}

	root := wt.Filesystem.Root()
	prefix, err := worktreePrefix(root, path)
	if err != nil {
		return trackedFiles{}, err
	}

	files := make([]string, 0, len(idx.Entries))
	for _, e := range idx.Entries {
		if e.Name == "" {
			continue
		}
		if prefix == "" {
			files = append(files, e.Name)
			continue
		}
		if rest, ok := strings.CutPrefix(e.Name, prefix); ok && rest != "" {
			files = append(files, rest)
		}
	}
	return trackedFiles{Root: root, Prefix: prefix, Files: files}, nil
}

// worktreePrefix returns path relative to root as a slash-terminated prefix,
// or "" when path is the worktree root.
func worktreePrefix(root, path string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	// Resolve symlinks on both sides so /tmp vs /private/tmp style aliases agree.
	if r, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = r
	}
	if p, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = p
	}

	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve '%s' inside worktree '%s': %w", path, root, err)
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel) + "/", nil
}

// cloneGitRepo clones a Git repository URL into a temporary directory.
// It returns the path to the temporary directory or an error.
func cloneGitRepo(url string, progress io.Writer) (string, error) {
	tempDir, err := os.MkdirTemp("", "gitlsf-git-")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}

	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           url,
		Progress:      progress,
		Depth:         1,
		ReferenceName: plumbing.HEAD,
		SingleBranch:  true,
	})
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("failed to clone repository '%s': %w", url, err)
	}

	return tempDir, nil
}
