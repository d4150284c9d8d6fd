package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/csfmt/unparen"
)

// settle is how long the watcher waits after the last event before it
// checks again. Editors often write a file in several steps.
const settle = 150 * time.Millisecond

// watch checks args once, then again after every batch of changes to a
// .cs or .csx file until ctx is done.
func (cfg *checkConfig) watch(ctx context.Context, out io.Writer, args []string, opts []unparen.Option) error {
	if len(args) == 0 {
		args = []string{"."}
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	for _, arg := range args {
		if err := addWatches(w, arg); err != nil {
			return err
		}
	}

	pass := func() error {
		report, err := cfg.check(ctx, nil, args, opts)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		return cfg.print(out, report)
	}
	if err := pass(); err != nil {
		return err
	}

	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addWatches(w, ev.Name); err != nil {
						return err
					}
				}
			}
			if !isSourceFile(ev.Name) || ev.Op == fsnotify.Chmod {
				continue
			}
			timer = time.After(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching: %w", err)
		case <-timer:
			timer = nil
			_, _ = fmt.Fprintf(out, "\n--- %s\n", time.Now().Format(time.TimeOnly))
			if err := pass(); err != nil {
				return err
			}
		}
	}
}

// addWatches watches path, or every directory under it that a tree walk
// would descend into.
func addWatches(w *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return w.Add(path)
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if p != path && slices.Contains(skipDirs, d.Name()) {
			return fs.SkipDir
		}
		return w.Add(p)
	})
}

// skipDirs mirrors the directories a DirTree walk skips.
var skipDirs = []string{"bin", "obj", ".git"}

func isSourceFile(path string) bool {
	return slices.Contains(unparen.DefaultExtensions, filepath.Ext(path))
}
