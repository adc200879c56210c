package app

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/anvil/internal/adapters/watcher"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var watchedExtensions = []string{".c", ".cc", ".cpp", ".cxx", ".c++", ".h", ".hh", ".hpp", ".hxx", ".inl"}

// Watch builds once, then rebuilds whenever a source, header or the manifest changes.
// A failed build is reported and watching continues until ctx is cancelled.
func (a *App) Watch(ctx context.Context, s domain.Settings) error {
	project, err := a.loader.Load(s.Manifest)
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}
	reg := domain.NewRegistry()
	if err := project.Register(reg); err != nil {
		return err
	}

	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	layout := a.layout(s)
	manifest, _ := filepath.Abs(s.Manifest)
	if err := w.Start(ctx, watchDirs(reg, manifest)); err != nil {
		return err
	}

	a.rebuild(ctx, s)

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func([]string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	g, ctx := errgroup.WithContext(ctx)

	// Event routine
	g.Go(func() error {
		for event := range w.Events() {
			if relevant(event, layout.Root, manifest) {
				debouncer.Add(event.Path)
			}
		}
		if ctx.Err() != nil {
			return nil
		}
		return zerr.Wrap(domain.ErrWatchFailed, "event stream closed")
	})

	// Build routine
	g.Go(func() error {
		defer func() { _ = w.Stop() }()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-trigger:
				a.logger.Info("change detected, rebuilding")
				a.rebuild(ctx, s)
			}
		}
	})

	return g.Wait()
}

func (a *App) rebuild(ctx context.Context, s domain.Settings) {
	err := a.Build(ctx, s)
	if err == nil || ctx.Err() != nil {
		return
	}
	var cmdErr *domain.CommandError
	if errors.As(err, &cmdErr) {
		// Already reported by the renderer.
		return
	}
	a.logger.Error(err)
}

// watchDirs returns the directories of every source, every include directory and the manifest.
func watchDirs(reg *domain.Registry, manifest string) []string {
	dirs := []string{filepath.Dir(manifest)}
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	for _, inc := range reg.Includes() {
		add(inc)
	}
	for _, name := range reg.Names() {
		t, _ := reg.Target(name)
		for _, src := range t.Sources {
			add(filepath.Dir(src))
		}
	}
	return dirs
}

func relevant(event ports.WatchEvent, buildRoot, manifest string) bool {
	path := filepath.Clean(event.Path)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if root, err := filepath.Abs(buildRoot); err == nil {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return false
		}
	}
	if path == manifest {
		return true
	}
	return slices.Contains(watchedExtensions, strings.ToLower(filepath.Ext(path)))
}
