package domain

import "go.trai.ch/zerr"

// ColorMode controls colorized progress output.
type ColorMode string

const (
	// ColorAuto colorizes only when stdout is an interactive terminal outside CI.
	ColorAuto ColorMode = "auto"
	// ColorAlways always colorizes.
	ColorAlways ColorMode = "always"
	// ColorNever never colorizes.
	ColorNever ColorMode = "never"
)

// LogFormat selects the log handler.
type LogFormat string

const (
	// LogPretty is the human-readable colored handler.
	LogPretty LogFormat = "pretty"
	// LogJSON emits one JSON object per record.
	LogJSON LogFormat = "json"
)

// Settings are the tool settings merged from defaults, anvil.toml, ANVIL_* and flags.
type Settings struct {
	Manifest  string    `koanf:"manifest"`
	BuildDir  string    `koanf:"build-dir"`
	Jobs      int       `koanf:"jobs"`
	Compiler  string    `koanf:"compiler"`
	Color     ColorMode `koanf:"color"`
	Verbose   bool      `koanf:"verbose"`
	LogFormat LogFormat `koanf:"log-format"`
}

// DefaultSettings returns the settings used when nothing else is configured.
func DefaultSettings() Settings {
	return Settings{
		Manifest:  DefaultManifestFile,
		BuildDir:  DefaultBuildDir,
		Color:     ColorAuto,
		LogFormat: LogPretty,
	}
}

// Validate checks enumerated settings.
func (s Settings) Validate() error {
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return zerr.With(zerr.Wrap(ErrInvalidColorMode, "invalid settings"), "color", string(s.Color))
	}
	switch s.LogFormat {
	case LogPretty, LogJSON:
	default:
		return zerr.With(zerr.Wrap(ErrInvalidLogFormat, "invalid settings"), "log-format", string(s.LogFormat))
	}
	return nil
}
