// Package buildtree creates, validates and cleans the build directory tree.
package buildtree

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

// Tree implements ports.BuildTree on the local file system.
type Tree struct {
	store  ports.StatusStore
	logger ports.Logger
}

// New creates a Tree that seeds new build directories through store.
func New(store ports.StatusStore, logger ports.Logger) *Tree {
	return &Tree{store: store, logger: logger}
}

// Prepare creates the object, library and binary directories and an empty status
// file when none exists yet.
func (t *Tree) Prepare(layout domain.Layout) error {
	for _, dir := range []string{layout.Root, layout.ObjDir(), layout.LibDir(), layout.BinDir()} {
		if err := ensureDir(dir); err != nil {
			return err
		}
	}

	if _, err := os.Stat(layout.StatusPath()); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(errors.Join(domain.ErrStatFailed, err), "path", layout.StatusPath())
	}
	return t.store.Save(layout.StatusPath(), domain.NewStatusRecord())
}

// EnsureTargetDir creates the object subdirectory of a target.
func (t *Tree) EnsureTargetDir(layout domain.Layout, target string) error {
	return ensureDir(layout.TargetObjDir(target))
}

// Clean removes the object, library and binary directories, and with all the status file too.
func (t *Tree) Clean(layout domain.Layout, all bool) error {
	var errs error

	remove := func(path string, name string) {
		if _, err := os.Lstat(path); errors.Is(err, fs.ErrNotExist) {
			return
		}
		t.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(domain.ErrCleanFailed, err.Error()), "path", path))
			return
		}
		t.logger.Info(fmt.Sprintf("removed %s", name))
	}

	remove(layout.ObjDir(), "object files")
	remove(layout.LibDir(), "libraries")
	remove(layout.BinDir(), "executables")
	if all {
		remove(layout.StatusPath(), "build status")
	}
	return errs
}

func ensureDir(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return zerr.With(zerr.Wrap(domain.ErrNotADirectory, "build tree is blocked"), "path", path)
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(path, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrBuildDirCreateFailed, err.Error()), "path", path)
		}
		return nil
	default:
		return zerr.With(errors.Join(domain.ErrStatFailed, err), "path", path)
	}
}
