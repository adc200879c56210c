package domain

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// Project is a loaded project manifest.
type Project struct {
	Name       string
	Dir        string
	LangStd    string
	Compiler   string
	Includes   []string
	Targets    []TargetSpec
	Components []ComponentSpec
}

// TargetSpec is a target declared in the manifest.
type TargetSpec struct {
	Name        string
	Kind        Kind
	Sources     []string
	Statics     []string
	Options     []string
	LinkOptions []string
}

// ComponentSpec is a component declared in the manifest. Its sources accumulate into
// the static Group target, and it can optionally produce its own executable and test.
type ComponentSpec struct {
	Group      string
	Name       string
	Sources    []string
	Statics    []string
	Executable bool
	Test       *ComponentTest
}

// ComponentTest describes the test executable of a component.
type ComponentTest struct {
	Sources []string
	Statics []string
	Options []string
}

// TestName returns the name of a component's test executable, e.g. "add" -> "testAdd".
func (c ComponentSpec) TestName() string {
	if c.Name == "" {
		return "test"
	}
	r, size := utf8.DecodeRuneInString(c.Name)
	return "test" + string(unicode.ToUpper(r)) + c.Name[size:]
}

// Register adds every target and component of the project to reg.
// Relative paths are resolved against the project directory.
func (p *Project) Register(reg *Registry) error {
	for _, inc := range p.Includes {
		reg.AddInclude(p.resolve(inc))
	}

	for _, spec := range p.Targets {
		if err := reg.Add(spec.Name, spec.Kind, p.resolveAll(spec.Sources), spec.Statics); err != nil {
			return err
		}
		if len(spec.Options) > 0 {
			reg.AddExtraOptions(spec.Name, spec.Options)
		}
		if len(spec.LinkOptions) > 0 {
			reg.AddLinkOptions(spec.Name, spec.LinkOptions)
		}
	}

	for _, comp := range p.Components {
		if err := p.registerComponent(reg, comp); err != nil {
			return zerr.With(err, "component", comp.Name)
		}
	}
	return nil
}

func (p *Project) registerComponent(reg *Registry, comp ComponentSpec) error {
	sources := p.resolveAll(comp.Sources)
	if err := reg.AddComponent(comp.Group, sources, comp.Statics); err != nil {
		return err
	}

	if comp.Executable {
		if err := reg.AddExecutable(comp.Name, sources, comp.Statics); err != nil {
			return err
		}
	}

	if comp.Test != nil {
		testSources := append(append([]string{}, sources...), p.resolveAll(comp.Test.Sources)...)
		statics := comp.Test.Statics
		if len(statics) == 0 {
			statics = append([]string{comp.Group}, comp.Statics...)
		}
		if err := reg.AddExecutable(comp.TestName(), testSources, statics); err != nil {
			return err
		}
		if len(comp.Test.Options) > 0 {
			reg.AddExtraOptions(comp.TestName(), comp.Test.Options)
		}
	}
	return nil
}

func (p *Project) resolveAll(paths []string) []string {
	out := make([]string, len(paths))
	for i, path := range paths {
		out[i] = p.resolve(path)
	}
	return out
}

func (p *Project) resolve(path string) string {
	if p.Dir == "" || filepath.IsAbs(path) || strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}
	return filepath.Join(p.Dir, path)
}
