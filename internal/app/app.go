// Package app implements the application layer for anvil.
package app

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"go.trai.ch/anvil/internal/adapters/detector"
	"go.trai.ch/anvil/internal/adapters/linear"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/engine/scheduler"
	"go.trai.ch/anvil/internal/engine/staleness"
	"go.trai.ch/anvil/internal/engine/synth"
	"go.trai.ch/anvil/internal/ui/output"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ProjectLoader
	sched     *scheduler.Scheduler
	logger    ports.Logger
	store     ports.StatusStore
	tree      ports.BuildTree
	compilers ports.CompilerResolver

	renderer   ports.Renderer
	newWatcher func() (ports.Watcher, error)
	goos       string
	now        func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	sched *scheduler.Scheduler,
	log ports.Logger,
	store ports.StatusStore,
	tree ports.BuildTree,
	compilers ports.CompilerResolver,
	newWatcher func() (ports.Watcher, error),
) *App {
	return &App{
		loader:     loader,
		sched:      sched,
		logger:     log,
		store:      store,
		tree:       tree,
		compilers:  compilers,
		newWatcher: newWatcher,
		goos:       runtime.GOOS,
		now:        time.Now,
	}
}

// WithRenderer replaces the progress renderer chosen from settings.
// This is primarily used for testing.
func (a *App) WithRenderer(r ports.Renderer) *App {
	a.renderer = r
	return a
}

// WithPlatform builds for the given GOOS instead of the host's.
func (a *App) WithPlatform(goos string) *App {
	a.goos = goos
	return a
}

// WithClock replaces the clock used to timestamp status records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

type configurableLogger interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// Configure applies the logging settings to the logger.
func (a *App) Configure(s domain.Settings) {
	if l, ok := a.logger.(configurableLogger); ok {
		l.SetVerbose(s.Verbose)
		l.SetJSON(s.LogFormat == domain.LogJSON)
	}
}

// Build loads the manifest, plans both waves and runs them.
//
//nolint:cyclop // orchestration function
func (a *App) Build(ctx context.Context, s domain.Settings) error {
	// 1. Load the project
	project, err := a.loader.Load(s.Manifest)
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}

	// 2. Register targets
	reg := domain.NewRegistry()
	if err := project.Register(reg); err != nil {
		return err
	}
	for _, diag := range reg.Diagnostics() {
		a.logger.Warn(describe(diag))
	}

	// 3. Prepare the build root
	layout := a.layout(s)
	if err := a.tree.Prepare(layout); err != nil {
		return err
	}
	status, err := a.store.Load(layout.StatusPath())
	if err != nil {
		return err
	}

	// 4. Resolve the compiler
	compiler, err := a.resolveCompiler(ctx, s, project, status)
	if err != nil {
		return err
	}

	// 5. Plan
	toolchain := domain.NewToolchain(compiler.Path, project.LangStd)
	plan, err := synth.New(reg, toolchain, layout, staleness.New(layout), a.tree, status, a.logger).Plan()
	if err != nil {
		return err
	}

	// 6. Run
	if err := a.sched.Run(ctx, plan, a.rendererFor(s), s.Jobs); err != nil {
		// Keep the detected compiler even though the build failed.
		if saveErr := a.store.Save(layout.StatusPath(), status); saveErr != nil {
			a.logger.Error(saveErr)
		}
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}

	// 7. Record fingerprints
	at := a.now()
	for _, name := range slices.Sorted(maps.Keys(plan.Fingerprints)) {
		t, ok := reg.Target(name)
		if !ok {
			continue
		}
		status.Record(name, t.Kind, plan.Fingerprints[name], at)
	}
	return a.store.Save(layout.StatusPath(), status)
}

// Clean removes build outputs. With all set the status file is removed too.
func (a *App) Clean(_ context.Context, s domain.Settings, all bool) error {
	return a.tree.Clean(a.layout(s), all)
}

// Compiler resolves the compiler the next build would use and caches it in the status file.
func (a *App) Compiler(ctx context.Context, s domain.Settings) (domain.Compiler, error) {
	layout := a.layout(s)
	if err := a.tree.Prepare(layout); err != nil {
		return domain.Compiler{}, err
	}
	status, err := a.store.Load(layout.StatusPath())
	if err != nil {
		return domain.Compiler{}, err
	}

	preferred := s.Compiler
	if preferred == "" {
		if project, loadErr := a.loader.Load(s.Manifest); loadErr == nil {
			preferred = project.Compiler
		}
	}

	compiler, err := a.compilers.Resolve(ctx, preferred, status.Compiler)
	if err != nil {
		return domain.Compiler{}, err
	}
	status.Compiler = compiler.Path
	if err := a.store.Save(layout.StatusPath(), status); err != nil {
		return domain.Compiler{}, err
	}
	return compiler, nil
}

func (a *App) resolveCompiler(
	ctx context.Context,
	s domain.Settings,
	project *domain.Project,
	status *domain.StatusRecord,
) (domain.Compiler, error) {
	preferred := s.Compiler
	if preferred == "" {
		preferred = project.Compiler
	}
	compiler, err := a.compilers.Resolve(ctx, preferred, status.Compiler)
	if err != nil {
		return domain.Compiler{}, err
	}
	if compiler.Path != status.Compiler {
		a.logger.Info(fmt.Sprintf("using %s compiler %s", compiler.Family, compiler.Path))
		status.Compiler = compiler.Path
	}
	return compiler, nil
}

// layout returns the build layout. A relative build directory is resolved against
// the directory of the manifest.
func (a *App) layout(s domain.Settings) domain.Layout {
	root := s.BuildDir
	if root == "" {
		root = domain.DefaultBuildDir
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(filepath.Dir(s.Manifest), root)
	}
	return domain.Layout{Root: filepath.Clean(root), Platform: domain.PlatformFor(a.goos)}
}

func (a *App) rendererFor(s domain.Settings) ports.Renderer {
	if a.renderer != nil {
		return a.renderer
	}
	return linear.NewRenderer(os.Stdout, os.Stderr, output.ProfileFor(s.Color, detector.Interactive()))
}

// describe renders a registry diagnostic with its metadata on one line.
func describe(err error) string {
	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		return err.Error()
	}
	meta := zErr.Metadata()
	if len(meta) == 0 {
		return err.Error()
	}
	parts := make([]string, 0, len(meta))
	for _, k := range slices.Sorted(maps.Keys(meta)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, meta[k]))
	}
	return fmt.Sprintf("%s (%s)", zErr.Message(), strings.Join(parts, ", "))
}
