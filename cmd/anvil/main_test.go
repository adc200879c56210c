package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/adapters/buildtree"
	"go.trai.ch/anvil/internal/adapters/status"
	"go.trai.ch/anvil/internal/app"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/core/ports/mocks"
	"go.trai.ch/anvil/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	loader    *mocks.MockProjectLoader
	executor  *mocks.MockExecutor
	logger    *mocks.MockLogger
	compilers *mocks.MockCompilerResolver
	renderer  *mocks.MockRenderer
}

func newProvider(t *testing.T) (ComponentProvider, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &testMocks{
		loader:    mocks.NewMockProjectLoader(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		compilers: mocks.NewMockCompilerResolver(ctrl),
		renderer:  mocks.NewMockRenderer(ctrl),
	}
	store := status.NewStore()
	application := app.New(
		m.loader,
		scheduler.NewScheduler(m.executor),
		m.logger,
		store,
		buildtree.New(store, m.logger),
		m.compilers,
		func() (ports.Watcher, error) { return nil, domain.ErrWatchFailed },
	).WithRenderer(m.renderer)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: m.logger}, func() {}, nil
	}
	return provider, m
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _ := newProvider(t)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the build cannot start.
func TestRun_ExecutionError(t *testing.T) {
	provider, m := newProvider(t)
	manifest := filepath.Join(t.TempDir(), "anvil.yaml")

	m.loader.EXPECT().Load(manifest).Return(nil, domain.ErrManifestNotFound)
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrManifestNotFound)
	})

	exitCode := run(context.Background(), []string{"build", "-m", manifest}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_CommandExitCode verifies that a failing compiler's exit status becomes the process exit status.
func TestRun_CommandExitCode(t *testing.T) {
	provider, m := newProvider(t)
	dir := t.TempDir()
	manifest := filepath.Join(dir, "anvil.yaml")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.cpp"), []byte("int main() {}\n"), 0o600))

	project := &domain.Project{
		Dir:     dir,
		Targets: []domain.TargetSpec{{Name: "app", Kind: domain.KindExecutable, Sources: []string{"main.cpp"}}},
	}
	m.loader.EXPECT().Load(manifest).Return(project, nil)
	m.compilers.EXPECT().Resolve(gomock.Any(), "", "").Return(domain.Compiler{Path: "/usr/bin/g++"}, nil)
	m.logger.EXPECT().Info(gomock.Any())
	m.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(7, nil)
	m.renderer.EXPECT().OnCommandFailed(domain.Progress{Index: 1, Total: 2}, gomock.Any(), 7, gomock.Any())

	exitCode := run(context.Background(), []string{"build", "-m", manifest, "-j", "1"}, new(bytes.Buffer), provider)
	assert.Equal(t, 7, exitCode)
}
