// Package config loads the project manifest and the tool settings.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	anvilfs "go.trai.ch/anvil/internal/adapters/fs"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader reads anvil.yaml manifests.
type Loader struct {
	Logger   ports.Logger
	Resolver *anvilfs.Resolver
}

// NewLoader creates a new manifest loader. A nil resolver leaves source patterns unexpanded.
func NewLoader(logger ports.Logger, resolver *anvilfs.Resolver) *Loader {
	return &Loader{Logger: logger, Resolver: resolver}
}

// Load reads the manifest at path and converts it into a domain.Project.
// Source globs are expanded against the manifest directory. Relative paths are later
// resolved against the same directory when the project is registered.
func (l *Loader) Load(path string) (*domain.Project, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, err.Error()), "path", path)
	}

	if _, statErr := os.Stat(abs); statErr != nil {
		if errors.Is(statErr, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrManifestNotFound, "path", abs)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, statErr.Error()), "path", abs)
	}

	var m Manifest
	if err := readAndUnmarshalYAML(abs, &m); err != nil {
		return nil, zerr.With(err, "path", abs)
	}

	project, err := m.toProject(filepath.Dir(abs), l.expander(filepath.Dir(abs)))
	if err != nil {
		return nil, zerr.With(err, "path", abs)
	}

	if l.Logger != nil {
		l.Logger.Debug("loaded manifest " + abs)
	}
	return project, nil
}

type expandFunc func(patterns []string) ([]string, error)

func (l *Loader) expander(dir string) expandFunc {
	if l.Resolver == nil {
		return func(patterns []string) ([]string, error) { return patterns, nil }
	}
	return func(patterns []string) ([]string, error) {
		return l.Resolver.ResolveSources(patterns, dir)
	}
}

func (m *Manifest) toProject(dir string, expand expandFunc) (*domain.Project, error) {
	project := &domain.Project{
		Name:     m.Project,
		Dir:      dir,
		LangStd:  m.LangStd,
		Compiler: m.Compiler,
		Includes: m.Includes,
	}
	if project.Name == "" {
		project.Name = filepath.Base(dir)
	}

	project.Targets = make([]domain.TargetSpec, 0, len(m.Targets))
	for _, t := range m.Targets {
		kind, err := domain.ParseKind(t.Kind)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestParseFailed, err.Error()), "target", t.Name)
		}
		sources, err := expand(t.Sources)
		if err != nil {
			return nil, zerr.With(err, "target", t.Name)
		}
		project.Targets = append(project.Targets, domain.TargetSpec{
			Name:        t.Name,
			Kind:        kind,
			Sources:     sources,
			Statics:     t.Statics,
			Options:     t.Options,
			LinkOptions: t.LinkOptions,
		})
	}

	project.Components = make([]domain.ComponentSpec, 0, len(m.Components))
	for _, c := range m.Components {
		if c.Group == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestParseFailed, "component has no group"), "component", c.Name)
		}
		sources, err := expand(c.Sources)
		if err != nil {
			return nil, zerr.With(err, "component", c.Name)
		}
		spec := domain.ComponentSpec{
			Group:      c.Group,
			Name:       c.Name,
			Sources:    sources,
			Statics:    c.Statics,
			Executable: c.Executable,
		}
		if c.Test != nil {
			testSources, err := expand(c.Test.Sources)
			if err != nil {
				return nil, zerr.With(err, "component", c.Name)
			}
			spec.Test = &domain.ComponentTest{
				Sources: testSources,
				Statics: c.Test.Statics,
				Options: c.Test.Options,
			}
		}
		project.Components = append(project.Components, spec)
	}
	return project, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is resolved by caller
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.Wrap(domain.ErrManifestReadFailed, err.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(domain.ErrManifestParseFailed, parseErr.Error())
	}
	return nil
}
