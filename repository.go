package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SOV710/gitlsf/internal/counter"
)

// countRepository lists the tracked files under opts.Path (cloning it first
// when it is a git URL), filters them and counts their lines.
func countRepository(opts runOptions, logger *slog.Logger) (counter.CountSummary, error) {
	target := opts.Path
	if isGitURL(target) {
		logger.Info("cloning repository", "url", target)
		dir, err := cloneGitRepo(target, cloneProgress(logger))
		if err != nil {
			return counter.CountSummary{}, err
		}
		defer func() {
			logger.Debug("removing temporary clone", "dir", dir)
			_ = os.RemoveAll(dir)
		}()
		target = dir
	}

	tracked, err := listTrackedFiles(target)
	if err != nil {
		return counter.CountSummary{}, err
	}
	files := tracked.Files
	logger.Debug("listed tracked files", "path", target, "root", tracked.Root, "count", len(files))

	filter := newFileFilter(opts.ExcludeExtensions, opts.ExcludeFilenames)
	ignoreFile, explicit := opts.IgnoreFile, opts.IgnoreFile != ""
	if !explicit {
		ignoreFile = defaultIgnoreFile
	}
	if err := filter.loadIgnoreFile(tracked.Root, tracked.Prefix, ignoreFile, explicit); err != nil {
		return counter.CountSummary{}, err
	}
	files = filter.filterFiles(files)
	logger.Debug("filtered tracked files", "count", len(files))

	if opts.Interactive {
		files, err = selectFilesInteractive(target, files)
		if err != nil {
			return counter.CountSummary{}, err
		}
	}

	opts.Counter.Logger = logger
	c, err := counter.New(opts.Counter)
	if err != nil {
		return counter.CountSummary{}, fmt.Errorf("failed to configure counter: %w", err)
	}

	if opts.Sequential {
		return c.CountLinesSequential(target, files), nil
	}
	logger.Debug("counting in parallel", "workers", c.Options().Workers)
	return c.CountLinesParallel(target, files), nil
}

// cloneProgress returns where clone progress is streamed: stderr when the
// logger shows info records, nowhere otherwise.
func cloneProgress(logger *slog.Logger) io.Writer {
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		return os.Stderr
	}
	return nil
}
