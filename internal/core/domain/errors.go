package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidTargetName is returned when a target is registered without a usable name.
	ErrInvalidTargetName = zerr.New("target name must be non-empty and must not contain path separators or whitespace")

	// ErrUnknownKind is returned when a target kind is not one of static, shared or executable.
	ErrUnknownKind = zerr.New("unknown target kind")

	// ErrMissingStaticDependency is reported when a target names a static dependency that is
	// not a registered static library. It is a diagnostic, registration still succeeds.
	ErrMissingStaticDependency = zerr.New("static dependency is not a registered static library")

	// ErrCycleDetected is returned when static dependencies form a cycle.
	ErrCycleDetected = zerr.New("cycle detected between static dependencies")

	// ErrTargetNotFound is returned when a requested target is not registered.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrStatFailed is returned when a file cannot be inspected for a reason other than absence.
	ErrStatFailed = zerr.New("failed to stat path")

	// ErrNotADirectory is returned when a build directory path exists but is not a directory.
	ErrNotADirectory = zerr.New("path exists but is not a directory")

	// ErrBuildDirCreateFailed is returned when a build directory cannot be created.
	ErrBuildDirCreateFailed = zerr.New("failed to create build directory")

	// ErrCleanFailed is returned when build outputs cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove build outputs")

	// ErrStatusReadFailed is returned when the status file cannot be read.
	ErrStatusReadFailed = zerr.New("failed to read status file")

	// ErrStatusMarshalFailed is returned when the status record cannot be marshaled.
	ErrStatusMarshalFailed = zerr.New("failed to marshal status record")

	// ErrStatusWriteFailed is returned when the status file cannot be written.
	ErrStatusWriteFailed = zerr.New("failed to write status file")

	// ErrNoCompiler is returned when no C++ compiler can be located on the host.
	ErrNoCompiler = zerr.New("no C++ compiler found (tried clang++, g++ and cl.exe)")

	// ErrManifestNotFound is returned when the project manifest does not exist.
	ErrManifestNotFound = zerr.New("could not find project manifest")

	// ErrManifestReadFailed is returned when the project manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read project manifest")

	// ErrManifestParseFailed is returned when the project manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse project manifest")

	// ErrSourceNotFound is returned when a source glob in the manifest matches no files.
	ErrSourceNotFound = zerr.New("source pattern matches no files")

	// ErrSettingsLoadFailed is returned when tool settings cannot be loaded.
	ErrSettingsLoadFailed = zerr.New("failed to load settings")

	// ErrInvalidColorMode is returned when the color setting is not auto, always or never.
	ErrInvalidColorMode = zerr.New("invalid color mode, expected 'auto', 'always' or 'never'")

	// ErrInvalidLogFormat is returned when the log format is not pretty or json.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'pretty' or 'json'")

	// ErrCommandStartFailed is returned when a shell command cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrCommandFailed is returned when a compile or link command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrBuildExecutionFailed is returned when the build does not complete.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrWatchFailed is returned when the source watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch sources")
)
