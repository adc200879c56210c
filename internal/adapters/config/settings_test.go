package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/adapters/config"
	"go.trai.ch/anvil/internal/core/domain"
)

func newFlags() *pflag.FlagSet {
	d := domain.DefaultSettings()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("manifest", d.Manifest, "")
	fs.String("build-dir", d.BuildDir, "")
	fs.IntP("jobs", "j", d.Jobs, "")
	fs.String("compiler", d.Compiler, "")
	fs.String("color", string(d.Color), "")
	fs.BoolP("verbose", "v", d.Verbose, "")
	fs.String("log-format", string(d.LogFormat), "")
	return fs
}

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := config.LoadSettings(filepath.Join(t.TempDir(), domain.DefaultSettingsFile), newFlags())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)
}

func TestLoadSettings_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.DefaultSettingsFile)
	content := "build-dir = \"out\"\njobs = 2\ncolor = \"never\"\ncompiler = \"g++\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("ANVIL_JOBS", "6")
	t.Setenv("ANVIL_LOG_FORMAT", "json")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--compiler", "clang++"}))

	s, err := config.LoadSettings(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "out", s.BuildDir, "file overrides default")
	assert.Equal(t, domain.ColorNever, s.Color)
	assert.Equal(t, 6, s.Jobs, "env overrides file")
	assert.Equal(t, domain.LogJSON, s.LogFormat)
	assert.Equal(t, "clang++", s.Compiler, "flag overrides file")
	assert.Equal(t, domain.DefaultManifestFile, s.Manifest)
}

func TestLoadSettings_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.DefaultSettingsFile)
	require.NoError(t, os.WriteFile(path, []byte("jobs = ["), 0o600))

	_, err := config.LoadSettings(path, nil)
	assert.ErrorIs(t, err, domain.ErrSettingsLoadFailed)
}

func TestLoadSettings_InvalidColor(t *testing.T) {
	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--color", "rainbow"}))

	_, err := config.LoadSettings("", flags)
	assert.ErrorIs(t, err, domain.ErrInvalidColorMode)
}
