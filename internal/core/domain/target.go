package domain

import (
	"path/filepath"
	"slices"
)

// Target is a named buildable unit: a static library, a shared library or an executable.
type Target struct {
	Name       string
	Kind       Kind
	Sources    []string
	StaticDeps []string
}

// CompileUnit pairs a source file with the object file it compiles to.
type CompileUnit struct {
	Source string
	Object string
}

// ObjectName returns the object file name for a source, e.g. "a.cpp" -> "a.cpp.o".
func ObjectName(source string) string {
	return filepath.Base(source) + ObjectSuffix
}

// clone returns a deep copy so callers cannot mutate registry state.
func (t *Target) clone() Target {
	return Target{
		Name:       t.Name,
		Kind:       t.Kind,
		Sources:    slices.Clone(t.Sources),
		StaticDeps: slices.Clone(t.StaticDeps),
	}
}
