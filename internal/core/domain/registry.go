package domain

import (
	"errors"
	"slices"
	"strings"
	"unicode"

	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Registry is the ordered set of targets of a project.
// Insertion order is the default build order. Re-registering a name keeps its position.
type Registry struct {
	targets     map[string]*Target
	order       []string
	includes    []string
	extra       map[string][]string
	linkExtra   map[string][]string
	diagnostics []error
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		targets:   make(map[string]*Target),
		extra:     make(map[string][]string),
		linkExtra: make(map[string][]string),
	}
}

// AddStatic registers a static library.
func (r *Registry) AddStatic(name string, sources, staticDeps []string) error {
	return r.add(name, KindStatic, sources, staticDeps)
}

// AddShared registers a shared library.
func (r *Registry) AddShared(name string, sources, staticDeps []string) error {
	return r.add(name, KindShared, sources, staticDeps)
}

// AddExecutable registers an executable.
func (r *Registry) AddExecutable(name string, sources, staticDeps []string) error {
	return r.add(name, KindExecutable, sources, staticDeps)
}

// Add registers a target of an arbitrary kind. Unknown kinds are rejected.
func (r *Registry) Add(name string, kind Kind, sources, staticDeps []string) error {
	if !kind.Valid() {
		return zerr.With(zerr.Wrap(ErrUnknownKind, "cannot register target"), "target", name)
	}
	return r.add(name, kind, sources, staticDeps)
}

// AddComponent accumulates sources into the static grouping target named group.
// Repeated calls extend the group's source list, skipping sources already present.
func (r *Registry) AddComponent(group string, sources, staticDeps []string) error {
	var merged []string
	var deps []string
	if existing, ok := r.targets[group]; ok && existing.Kind == KindStatic {
		merged = slices.Clone(existing.Sources)
		deps = slices.Clone(existing.StaticDeps)
	}
	for _, src := range sources {
		if !slices.Contains(merged, src) {
			merged = append(merged, src)
		}
	}
	for _, dep := range staticDeps {
		if !slices.Contains(deps, dep) {
			deps = append(deps, dep)
		}
	}
	return r.add(group, KindStatic, merged, deps)
}

// AddInclude adds a project-wide include directory.
func (r *Registry) AddInclude(path string) {
	if path == "" || slices.Contains(r.includes, path) {
		return
	}
	r.includes = append(r.includes, path)
}

// AddExtraOptions sets the extra compiler flags for a target, replacing earlier ones.
// Options may be set before the target itself is registered.
func (r *Registry) AddExtraOptions(name string, flags []string) {
	r.extra[name] = slices.Clone(flags)
}

// AddLinkOptions sets the extra linker flags for a target, replacing earlier ones.
func (r *Registry) AddLinkOptions(name string, flags []string) {
	r.linkExtra[name] = slices.Clone(flags)
}

func (r *Registry) add(name string, kind Kind, sources, staticDeps []string) error {
	if !validTargetName(name) {
		return zerr.With(zerr.Wrap(ErrInvalidTargetName, "cannot register target"), "target", name)
	}

	for _, dep := range staticDeps {
		if dep == name {
			r.report(name, dep, "target depends on itself")
			continue
		}
		if t, ok := r.targets[dep]; !ok || t.Kind != KindStatic {
			r.report(name, dep, "static dependency is not registered")
		}
	}

	t, exists := r.targets[name]
	if !exists {
		t = &Target{Name: name}
		r.targets[name] = t
		r.order = append(r.order, name)
	}
	t.Kind = kind
	t.Sources = slices.Clone(sources)
	t.StaticDeps = slices.Clone(staticDeps)
	return nil
}

func (r *Registry) report(target, dep, msg string) {
	err := zerr.With(zerr.With(zerr.Wrap(ErrMissingStaticDependency, msg), "target", target), "dependency", dep)
	r.diagnostics = append(r.diagnostics, err)
}

// Diagnostics returns the non-fatal problems found while registering targets.
func (r *Registry) Diagnostics() []error {
	return slices.Clone(r.diagnostics)
}

// Target returns a copy of the named target.
func (r *Registry) Target(name string) (Target, bool) {
	t, ok := r.targets[name]
	if !ok {
		return Target{}, false
	}
	return t.clone(), true
}

// Names returns target names in insertion order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	return len(r.order)
}

// Includes returns the project-wide include directories.
func (r *Registry) Includes() []string {
	return slices.Clone(r.includes)
}

// ExtraOptions returns the extra compiler flags of a target.
func (r *Registry) ExtraOptions(name string) []string {
	return slices.Clone(r.extra[name])
}

// LinkOptions returns the extra linker flags of a target.
func (r *Registry) LinkOptions(name string) []string {
	return slices.Clone(r.linkExtra[name])
}

// Order returns the targets in build order: static dependencies first, otherwise
// insertion order. Dependencies that are not registered static libraries add no edge.
// A dependency cycle returns ErrCycleDetected.
func (r *Registry) Order() ([]Target, error) {
	index := make(map[string]int64, len(r.order))
	g := simple.NewDirectedGraph()
	for i, name := range r.order {
		index[name] = int64(i)
		g.AddNode(simple.Node(int64(i)))
	}

	for i, name := range r.order {
		for _, dep := range r.targets[name].StaticDeps {
			j, ok := index[dep]
			if !ok || j == int64(i) || r.targets[dep].Kind != KindStatic {
				continue
			}
			g.SetEdge(g.NewEdge(simple.Node(j), simple.Node(int64(i))))
		}
	}

	sorted, err := topo.SortStabilized(g, nil)
	if err != nil {
		var cycles topo.Unorderable
		var names []string
		if errors.As(err, &cycles) {
			for _, component := range cycles {
				for _, n := range component {
					names = append(names, r.order[n.ID()])
				}
			}
		}
		slices.Sort(names)
		return nil, zerr.With(zerr.Wrap(ErrCycleDetected, "cannot order targets"), "targets", strings.Join(names, ", "))
	}

	targets := make([]Target, 0, len(sorted))
	for _, n := range sorted {
		targets = append(targets, r.targets[r.order[n.ID()]].clone())
	}
	return targets, nil
}

func validTargetName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsFunc(name, func(c rune) bool {
		return c == '/' || c == '\\' || unicode.IsSpace(c)
	})
}
