// Package synth turns registered targets into compile and link shell commands.
package synth

import (
	"fmt"
	"strings"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
)

// Oracle answers freshness questions about objects and artifacts.
type Oracle interface {
	IsUpToDate(target string, sources []string, probe domain.Probe) (bool, error)
	ArtifactTime(target string, kind domain.Kind) (time.Time, bool, error)
}

// Synthesizer produces the commands of one build. A Synthesizer is single use:
// the link wave depends on what the compile wave decided to rebuild.
type Synthesizer struct {
	registry  *domain.Registry
	toolchain domain.Toolchain
	layout    domain.Layout
	oracle    Oracle
	tree      ports.BuildTree
	status    *domain.StatusRecord
	logger    ports.Logger

	order        []domain.Target
	compiled     map[string]bool
	fingerprints map[string]string
}

// New creates a Synthesizer. status holds the fingerprints of the previous build and may be nil.
func New(
	registry *domain.Registry,
	toolchain domain.Toolchain,
	layout domain.Layout,
	oracle Oracle,
	tree ports.BuildTree,
	status *domain.StatusRecord,
	logger ports.Logger,
) *Synthesizer {
	return &Synthesizer{
		registry:     registry,
		toolchain:    toolchain,
		layout:       layout,
		oracle:       oracle,
		tree:         tree,
		status:       status,
		logger:       logger,
		compiled:     make(map[string]bool),
		fingerprints: make(map[string]string),
	}
}

// Plan synthesizes both waves.
func (s *Synthesizer) Plan() (domain.Plan, error) {
	compile, sources, err := s.BuildObjects()
	if err != nil {
		return domain.Plan{}, err
	}
	link, err := s.LinkObjects()
	if err != nil {
		return domain.Plan{}, err
	}
	return domain.Plan{
		Compile:      compile,
		Link:         link,
		Sources:      sources,
		Fingerprints: s.fingerprints,
	}, nil
}

// BuildObjects returns one compile command per stale source, in build order,
// together with the sources those commands compile.
func (s *Synthesizer) BuildObjects() ([]domain.Command, []string, error) {
	order, err := s.targets()
	if err != nil {
		return nil, nil, err
	}

	var (
		cmds    []domain.Command
		sources []string
	)
	for _, t := range order {
		if err := s.tree.EnsureTargetDir(s.layout, t.Name); err != nil {
			return nil, nil, err
		}

		flagsChanged := s.fingerprintChanged(t.Name)
		for _, unit := range s.layout.CompileUnits(t.Name, t.Sources) {
			if !flagsChanged {
				fresh, err := s.oracle.IsUpToDate(t.Name, []string{unit.Source}, domain.ObjectProbe())
				if err != nil {
					return nil, nil, err
				}
				if fresh {
					s.logger.Debug(fmt.Sprintf("%s is up to date", domain.ObjectName(unit.Source)))
					continue
				}
			}

			cmds = append(cmds, domain.Command{
				Phase:  domain.PhaseCompile,
				Target: t.Name,
				Label:  domain.ObjectName(unit.Source),
				Line:   shellescape.QuoteCommand(s.compileArgs(t, unit)),
			})
			sources = append(sources, unit.Source)
			s.compiled[t.Name] = true
		}
	}
	return cmds, sources, nil
}

// LinkObjects returns one archive or link command per stale target, in build order.
// It must run after BuildObjects.
func (s *Synthesizer) LinkObjects() ([]domain.Command, error) {
	order, err := s.targets()
	if err != nil {
		return nil, err
	}

	relinked := make(map[string]bool)
	var cmds []domain.Command
	for _, t := range order {
		stale, err := s.linkStale(t, relinked)
		if err != nil {
			return nil, err
		}
		if !stale {
			s.logger.Debug(fmt.Sprintf("%s is up to date", t.Name))
			continue
		}
		relinked[t.Name] = true

		var needs []string
		if t.Kind.Linkable() {
			for _, dep := range s.staticDeps(t) {
				if relinked[dep] {
					needs = append(needs, dep)
				}
			}
		}
		cmds = append(cmds, domain.Command{
			Phase:  domain.PhaseLink,
			Target: t.Name,
			Label:  t.Name,
			Line:   s.linkLine(t),
			Needs:  needs,
		})
	}
	return cmds, nil
}

// Fingerprints returns the command fingerprint of every target seen so far.
func (s *Synthesizer) Fingerprints() map[string]string {
	return s.fingerprints
}

func (s *Synthesizer) targets() ([]domain.Target, error) {
	if s.order != nil {
		return s.order, nil
	}
	order, err := s.registry.Order()
	if err != nil {
		return nil, err
	}
	for _, t := range order {
		s.fingerprints[t.Name] = s.fingerprint(t)
	}
	s.order = order
	return order, nil
}

func (s *Synthesizer) linkStale(t domain.Target, relinked map[string]bool) (bool, error) {
	if s.compiled[t.Name] || s.fingerprintChanged(t.Name) {
		return true, nil
	}

	fresh, err := s.oracle.IsUpToDate(t.Name, t.Sources, domain.ArtifactProbe(t.Kind))
	if err != nil || !fresh {
		return true, err
	}

	if !t.Kind.Linkable() {
		return false, nil
	}
	for _, dep := range s.staticDeps(t) {
		if relinked[dep] {
			return true, nil
		}
	}
	return s.depNewer(t)
}

// depNewer reports whether a static dependency archive is newer than the artifact of t.
func (s *Synthesizer) depNewer(t domain.Target) (bool, error) {
	own, ok, err := s.oracle.ArtifactTime(t.Name, t.Kind)
	if err != nil || !ok {
		return true, err
	}
	for _, dep := range s.staticDeps(t) {
		depTime, ok, err := s.oracle.ArtifactTime(dep, domain.KindStatic)
		if err != nil {
			return false, err
		}
		if ok && depTime.After(own) {
			return true, nil
		}
	}
	return false, nil
}

// staticDeps returns the dependencies of t that are registered static targets.
func (s *Synthesizer) staticDeps(t domain.Target) []string {
	var deps []string
	for _, dep := range t.StaticDeps {
		if dep == t.Name {
			continue
		}
		if d, ok := s.registry.Target(dep); ok && d.Kind == domain.KindStatic {
			deps = append(deps, dep)
		}
	}
	return deps
}

func (s *Synthesizer) fingerprintChanged(target string) bool {
	stored, ok := s.status.Fingerprint(target)
	return ok && stored != s.fingerprints[target]
}

// fingerprint hashes the compile flags and the link command of t.
func (s *Synthesizer) fingerprint(t domain.Target) string {
	h := xxhash.New()
	_, _ = h.WriteString(strings.Join(s.compileFlags(t), "\x00"))
	_, _ = h.WriteString("\x01")
	_, _ = h.WriteString(s.linkLine(t))
	return fmt.Sprintf("%016x", h.Sum64())
}

func (s *Synthesizer) compileArgs(t domain.Target, unit domain.CompileUnit) []string {
	args := []string{
		s.toolchain.Compiler,
		"-c",
		"-o" + unit.Object,
		"-std=" + s.toolchain.LangStd,
		unit.Source,
	}
	return append(args, s.compileFlags(t)...)
}

// compileFlags are the flags shared by every compile of t.
func (s *Synthesizer) compileFlags(t domain.Target) []string {
	flags := []string{s.layout.Platform.Define()}
	for _, inc := range s.registry.Includes() {
		flags = append(flags, "-I"+inc)
	}
	if t.Kind == domain.KindShared && s.layout.Platform != domain.PlatformWindows {
		flags = append(flags, "-fPIC")
	}
	return append(flags, s.registry.ExtraOptions(t.Name)...)
}

func (s *Synthesizer) linkLine(t domain.Target) string {
	artifact := s.layout.ArtifactPath(t.Name, t.Kind)
	objects := make([]string, len(t.Sources))
	for i, src := range t.Sources {
		objects[i] = s.layout.ObjectPath(t.Name, src)
	}

	if t.Kind == domain.KindStatic {
		archive := append([]string{s.toolchain.Archiver, "rc", artifact}, objects...)
		index := []string{s.toolchain.Indexer, artifact}
		return shellescape.QuoteCommand(archive) + " && " + shellescape.QuoteCommand(index)
	}

	args := []string{s.toolchain.Compiler}
	if t.Kind == domain.KindShared {
		args = append(args, "-shared")
		if s.layout.Platform != domain.PlatformWindows {
			args = append(args, "-fPIC")
		}
	}
	args = append(args, "-o", artifact)
	args = append(args, objects...)

	var libs []string
	for _, dep := range t.StaticDeps {
		if dep != t.Name {
			libs = append(libs, "-l"+dep)
		}
	}
	if len(libs) > 0 {
		args = append(args, "-L"+s.layout.LibDir())
		args = append(args, libs...)
	}
	args = append(args, s.registry.LinkOptions(t.Name)...)
	return shellescape.QuoteCommand(args)
}
