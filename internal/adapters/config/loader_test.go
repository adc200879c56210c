package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/adapters/config"
	"go.trai.ch/anvil/internal/adapters/fs"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.DefaultManifestFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).Times(1)

	project, err := config.NewLoader(logger, fs.NewResolver()).Load(filepath.Join("testdata", "anvil.yaml"))
	require.NoError(t, err)

	abs, err := filepath.Abs("testdata")
	require.NoError(t, err)

	assert.Equal(t, "calculator", project.Name)
	assert.Equal(t, abs, project.Dir)
	assert.Equal(t, "c++17", project.LangStd)
	assert.Empty(t, project.Compiler)
	assert.Equal(t, []string{"include"}, project.Includes)

	require.Len(t, project.Targets, 2)
	assert.Equal(t, domain.KindStatic, project.Targets[0].Kind)
	assert.Equal(t, domain.KindExecutable, project.Targets[1].Kind)
	assert.Equal(t, []string{"util"}, project.Targets[1].Statics)
	assert.Equal(t, []string{"-pthread"}, project.Targets[1].LinkOptions)

	require.Len(t, project.Components, 2)
	add := project.Components[0]
	require.NotNil(t, add.Test)
	assert.Equal(t, []string{"-DNO_MAIN"}, add.Test.Options)
	assert.True(t, project.Components[1].Executable)
	assert.Nil(t, project.Components[1].Test)
}

func TestLoad_RegistersIntoRegistry(t *testing.T) {
	project, err := config.NewLoader(nil, nil).Load(filepath.Join("testdata", "anvil.yaml"))
	require.NoError(t, err)

	reg := domain.NewRegistry()
	require.NoError(t, project.Register(reg))
	assert.Equal(t, []string{"util", "app", "calc", "testAdd", "sub"}, reg.Names())
	assert.Empty(t, reg.Diagnostics())

	order, err := reg.Order()
	require.NoError(t, err)
	require.Len(t, order, 5)
}

func TestLoad_DefaultsProjectNameToDirectory(t *testing.T) {
	path := writeManifest(t, "targets:\n  - name: app\n    kind: executable\n    sources: [main.cpp]\n")

	project, err := config.NewLoader(nil, nil).Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(filepath.Dir(path)), project.Name)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "malformed yaml", content: "targets: [", want: domain.ErrManifestParseFailed},
		{name: "unknown kind", content: "targets:\n  - name: x\n    kind: plugin\n", want: domain.ErrManifestParseFailed},
		{name: "component without group", content: "components:\n  - name: add\n", want: domain.ErrManifestParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			_, err := config.NewLoader(nil, nil).Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := config.NewLoader(nil, nil).Load(path)
	require.ErrorIs(t, err, domain.ErrManifestNotFound)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, path, zErr.Metadata()["path"])
}

func TestLoad_UnknownKindNamesTarget(t *testing.T) {
	path := writeManifest(t, "targets:\n  - name: weird\n    kind: plugin\n")

	_, err := config.NewLoader(nil, nil).Load(path)
	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "weird", zErr.Metadata()["target"])
}

func TestLoad_ForwardReferenceIsDiagnostic(t *testing.T) {
	path := writeManifest(t, `
targets:
  - name: app
    kind: executable
    sources: [main.cpp]
    statics: [missingLib]
`)
	project, err := config.NewLoader(nil, nil).Load(path)
	require.NoError(t, err)

	reg := domain.NewRegistry()
	require.NoError(t, project.Register(reg))
	require.Len(t, reg.Diagnostics(), 1)
	assert.ErrorIs(t, reg.Diagnostics()[0], domain.ErrMissingStaticDependency)
}

func TestLoad_ExpandsSourceGlobs(t *testing.T) {
	path := writeManifest(t, `
targets:
  - name: util
    kind: static
    sources: ["src/*.cpp"]
components:
  - group: calc
    name: add
    sources: [add.cpp]
    test:
      sources: ["tests/*.cpp"]
`)
	dir := filepath.Dir(path)
	for _, f := range []string{"src/b.cpp", "src/a.cpp", "tests/testAdd.cpp"} {
		full := filepath.Join(dir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
		require.NoError(t, os.WriteFile(full, nil, 0o600))
	}

	project, err := config.NewLoader(nil, fs.NewResolver()).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join("src", "a.cpp"), filepath.Join("src", "b.cpp")}, project.Targets[0].Sources)
	assert.Equal(t, []string{"add.cpp"}, project.Components[0].Sources)
	assert.Equal(t, []string{filepath.Join("tests", "testAdd.cpp")}, project.Components[0].Test.Sources)
}

func TestLoad_GlobWithoutMatches(t *testing.T) {
	path := writeManifest(t, `
targets:
  - name: util
    kind: static
    sources: ["src/*.cpp"]
`)
	_, err := config.NewLoader(nil, fs.NewResolver()).Load(path)
	require.ErrorIs(t, err, domain.ErrSourceNotFound)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "util", zErr.Metadata()["target"])
}
