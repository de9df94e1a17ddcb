package md2dox

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-md2dox/internal/logfields"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 200 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	Debounce time.Duration // zero means DefaultDebounce
	Generate bool          // also run the generator and navigation tree filter

	// OnReady is called once every source directory is watched.
	OnReady func()
	// OnRebuild is called after each rebuild with the rewritten page IDs.
	OnRebuild func(pages []string)
}

// Watch rewrites pages whose sources change until ctx is cancelled.
// Sources are watched through their parent directories so editors that
// replace files on save are still seen. Rebuild errors are logged and the
// loop keeps running; Watch itself only fails on watcher setup.
func (b *Builder) Watch(ctx context.Context, opts WatchOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	sources := make(map[string]Page, len(b.manifest))
	var dirs []string
	for _, p := range b.manifest {
		abs, err := filepath.Abs(b.SourcePath(p))
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p.Source, err)
		}
		sources[abs] = p
		if dir := filepath.Dir(abs); !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	b.logger.Info("watching sources", logfields.Stage("watch"), "dirs", len(dirs), "pages", len(sources))
	if opts.OnReady != nil {
		opts.OnReady()
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	dirty := make(map[string]bool)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			p, known := sources[filepath.Clean(ev.Name)]
			if !known {
				continue
			}
			dirty[p.ID] = true
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			b.logger.Warn("watcher error", logfields.Stage("watch"), logfields.Error(err))

		case <-timer.C:
			rebuilt := b.rebuild(ctx, dirty, opts.Generate)
			clear(dirty)
			if opts.OnRebuild != nil {
				opts.OnRebuild(rebuilt)
			}
		}
	}
}

// rebuild rewrites dirty pages in manifest order and returns the IDs that
// were written.
func (b *Builder) rebuild(ctx context.Context, dirty map[string]bool, generate bool) []string {
	var rebuilt []string
	for _, p := range b.manifest {
		if !dirty[p.ID] {
			continue
		}
		if _, err := b.WritePage(p); err != nil {
			b.logger.Error("page rebuild failed", logfields.Page(p.ID), logfields.Error(err))
			continue
		}
		rebuilt = append(rebuilt, p.ID)
	}
	b.logger.Info("pages rebuilt", logfields.Stage("watch"), "pages", rebuilt)

	if !generate || len(rebuilt) == 0 {
		return rebuilt
	}

	var result BuildResult
	if err := b.generate(ctx, &result); err != nil {
		b.logger.Error("generator failed", logfields.Error(err))
		return rebuilt
	}
	if _, err := b.FilterNavTree(); err != nil {
		b.logger.Error("navigation tree filter failed", logfields.Error(err))
	}
	return rebuilt
}
