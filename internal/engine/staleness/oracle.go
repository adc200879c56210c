// Package staleness decides whether objects and artifacts need rebuilding by comparing file modification times.
package staleness

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/zerr"
)

// Oracle answers freshness questions for targets laid out under a build root.
type Oracle struct {
	layout domain.Layout
	stat   func(string) (os.FileInfo, error)
}

// New creates an Oracle for the given layout.
func New(layout domain.Layout) *Oracle {
	return &Oracle{layout: layout, stat: os.Stat}
}

// IsUpToDate reports whether the objects of target (and its artifact, for an artifact probe)
// are fresher than every source. Any missing file makes the target stale.
// Errors are returned only for stat failures other than absence.
func (o *Oracle) IsUpToDate(target string, sources []string, probe domain.Probe) (bool, error) {
	kind, artifact := probe.Artifact()

	newestSource, ok, err := o.newest(sources)
	if err != nil || !ok {
		return false, err
	}

	objects := make([]string, len(sources))
	for i, src := range sources {
		objects[i] = o.layout.ObjectPath(target, src)
	}
	oldestObject, ok, err := o.oldest(objects)
	if err != nil || !ok {
		return false, err
	}

	if len(sources) > 0 && newestSource.After(oldestObject) {
		return false, nil
	}

	if !artifact {
		return true, nil
	}

	artifactTime, ok, err := o.modTime(o.layout.ArtifactPath(target, kind))
	if err != nil || !ok {
		return false, err
	}
	return !newestSource.After(artifactTime), nil
}

// ArtifactTime returns the modification time of a target's artifact.
// The boolean is false when the artifact does not exist.
func (o *Oracle) ArtifactTime(target string, kind domain.Kind) (time.Time, bool, error) {
	return o.modTime(o.layout.ArtifactPath(target, kind))
}

// newest returns the latest mtime among paths; ok is false if any path is missing.
func (o *Oracle) newest(paths []string) (time.Time, bool, error) {
	var latest time.Time
	for _, p := range paths {
		t, ok, err := o.modTime(p)
		if err != nil || !ok {
			return time.Time{}, false, err
		}
		if t.After(latest) {
			latest = t
		}
	}
	return latest, true, nil
}

// oldest returns the earliest mtime among paths; ok is false if any path is missing.
func (o *Oracle) oldest(paths []string) (time.Time, bool, error) {
	var earliest time.Time
	for i, p := range paths {
		t, ok, err := o.modTime(p)
		if err != nil || !ok {
			return time.Time{}, false, err
		}
		if i == 0 || t.Before(earliest) {
			earliest = t
		}
	}
	return earliest, true, nil
}

func (o *Oracle) modTime(path string) (time.Time, bool, error) {
	info, err := o.stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, zerr.With(errors.Join(domain.ErrStatFailed, err), "path", path)
	}
	return info.ModTime(), true, nil
}
