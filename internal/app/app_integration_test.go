package app_test

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/adapters/buildtree"
	"go.trai.ch/anvil/internal/adapters/shell"
	"go.trai.ch/anvil/internal/adapters/status"
	"go.trai.ch/anvil/internal/app"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/core/ports/mocks"
	"go.trai.ch/anvil/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

type countingExecutor struct {
	ports.Executor
	calls atomic.Int32
}

func (c *countingExecutor) Execute(ctx context.Context, line string, stdout, stderr io.Writer) (int, error) {
	c.calls.Add(1)
	return c.Executor.Execute(ctx, line, stdout, stderr)
}

func lookTools(t *testing.T, tools ...string) string {
	t.Helper()
	var first string
	for _, tool := range tools {
		path, err := exec.LookPath(tool)
		if err != nil {
			t.Skipf("%s not found in PATH", tool)
		}
		if first == "" {
			first = path
		}
	}
	return first
}

func TestApp_Build_RealToolchain(t *testing.T) {
	gxx := lookTools(t, "g++", "ar", "ranlib")

	dir := t.TempDir()
	sources := map[string]string{
		"src/a.cpp":    "int utilA() { return 1; }\n",
		"src/b.cpp":    "int utilB() { return 2; }\n",
		"src/main.cpp": "int utilA();\nint utilB();\nint main() { return utilA() + utilB() - 3; }\n",
	}
	for rel, content := range sources {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	project := utilAppProject(dir)
	project.LangStd = "c++17"

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockProjectLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	compilers := mocks.NewMockCompilerResolver(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)

	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any())
	loader.EXPECT().Load(gomock.Any()).Return(project, nil).Times(2)
	compilers.EXPECT().Resolve(gomock.Any(), "", gomock.Any()).
		Return(domain.Compiler{Path: gxx, Family: domain.FamilyGCC}, nil).Times(2)

	executor := &countingExecutor{Executor: shell.NewExecutor(logger)}
	store := status.NewStore()
	a := app.New(loader, scheduler.NewScheduler(executor), logger, store, buildtree.New(store, logger), compilers, nil).
		WithRenderer(renderer).
		WithPlatform("linux")

	settings := domain.DefaultSettings()
	settings.Manifest = filepath.Join(dir, domain.DefaultManifestFile)
	settings.Jobs = 2

	renderer.EXPECT().OnCommandDone(gomock.Any(), gomock.Any(), gomock.Any()).Times(5)
	require.NoError(t, a.Build(context.Background(), settings))
	assert.Equal(t, int32(5), executor.calls.Load())

	build := filepath.Join(dir, "build")
	for _, path := range []string{
		filepath.Join(build, "obj.temp", "util.build", "a.cpp.o"),
		filepath.Join(build, "obj.temp", "util.build", "b.cpp.o"),
		filepath.Join(build, "obj.temp", "app.build", "main.cpp.o"),
		filepath.Join(build, "lib", "libutil.a"),
		filepath.Join(build, "bin", "app"),
	} {
		assert.FileExists(t, path)
	}

	renderer.EXPECT().OnNothingToBuild().Times(1)
	require.NoError(t, a.Build(context.Background(), settings))
	assert.Equal(t, int32(5), executor.calls.Load(), "second run executes nothing")
}
