package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "ANVIL_"

// LoadSettings merges tool settings from defaults, the optional settings file at path,
// ANVIL_* environment variables and flags, in increasing priority.
func LoadSettings(path string, flags *pflag.FlagSet) (domain.Settings, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(mapProvider(defaultsMap()), nil); err != nil {
		return domain.Settings{}, zerr.Wrap(domain.ErrSettingsLoadFailed, err.Error())
	}

	// 2. Settings file (optional)
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrSettingsLoadFailed, err.Error()), "path", path)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrSettingsLoadFailed, err.Error()), "path", path)
		}
	}

	// 3. Environment, e.g. ANVIL_BUILD_DIR=out
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return domain.Settings{}, zerr.Wrap(domain.ErrSettingsLoadFailed, err.Error())
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return domain.Settings{}, zerr.Wrap(domain.ErrSettingsLoadFailed, err.Error())
		}
	}

	var s domain.Settings
	if err := k.Unmarshal("", &s); err != nil {
		return domain.Settings{}, zerr.Wrap(domain.ErrSettingsLoadFailed, err.Error())
	}
	if err := s.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
}

func defaultsMap() map[string]any {
	d := domain.DefaultSettings()
	return map[string]any{
		"manifest":   d.Manifest,
		"build-dir":  d.BuildDir,
		"jobs":       d.Jobs,
		"compiler":   d.Compiler,
		"color":      string(d.Color),
		"verbose":    d.Verbose,
		"log-format": string(d.LogFormat),
	}
}

type mapProvider map[string]any

func (p mapProvider) Read() (map[string]any, error) {
	return p, nil
}

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("mapProvider does not support ReadBytes")
}
