// Package modules traverses the module directories of a RIOT base tree.
package modules

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var directoryNames = [...]string{"board", "core", "cpu", "drivers", "pkg", "sys"}

// DirectoryNames returns the module directory names walked under a base directory, in walk order.
func DirectoryNames() []string {
	names := make([]string, len(directoryNames))
	copy(names, directoryNames[:])
	return names
}

// TargetSummary describes the traversal of one module directory.
type TargetSummary struct {
	Name        string
	Root        string
	Present     bool
	Directories int
	Files       int
	Skipped     int
}

// Summary collects per-target results in DirectoryNames order.
type Summary struct {
	Targets []TargetSummary
}

// Walk recursively enumerates every module directory under baseDirectory.
// Missing targets are reported as not present. Unreadable entries are skipped and counted.
func Walk(ctx context.Context, baseDirectory string, logger *zap.Logger) (Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	names := DirectoryNames()
	targets := make([]TargetSummary, len(names))

	group, walkCtx := errgroup.WithContext(ctx)
	for index, name := range names {
		index, name := index, name
		group.Go(func() error {
			target, err := walkTarget(walkCtx, baseDirectory+"/"+name, logger)
			target.Name = name
			targets[index] = target
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return Summary{}, err
	}
	return Summary{Targets: targets}, nil
}

func walkTarget(ctx context.Context, root string, logger *zap.Logger) (TargetSummary, error) {
	target := TargetSummary{Root: root}
	walkRoot := root
	if resolvedRoot, resolveError := filepath.EvalSymlinks(root); resolveError == nil {
		walkRoot = resolvedRoot
	}

	walkFunction := func(currentPath string, directoryEntry fs.DirEntry, walkError error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if walkError != nil {
			if currentPath == walkRoot {
				if !errors.Is(walkError, fs.ErrNotExist) {
					logger.Debug("module directory unreadable", zap.String("path", currentPath), zap.Error(walkError))
					target.Skipped++
				}
				return filepath.SkipAll
			}
			logger.Debug("skipping unreadable entry", zap.String("path", currentPath), zap.Error(walkError))
			target.Skipped++
			if directoryEntry != nil && directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if currentPath == walkRoot {
			if !directoryEntry.IsDir() {
				return filepath.SkipAll
			}
			target.Present = true
		}
		if directoryEntry.IsDir() {
			target.Directories++
			return nil
		}
		target.Files++
		return nil
	}

	if err := filepath.WalkDir(walkRoot, walkFunction); err != nil {
		return target, err
	}
	return target, nil
}
