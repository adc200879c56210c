package domain

import (
	"path/filepath"
	"runtime"
)

const (
	// ObjDirName is the directory holding per-target object directories.
	ObjDirName = "obj.temp"

	// LibDirName is the directory holding static and shared libraries.
	LibDirName = "lib"

	// BinDirName is the directory holding executables.
	BinDirName = "bin"

	// StatusFileName is the name of the persisted status record.
	StatusFileName = "status.json"

	// TargetDirSuffix is appended to a target name to form its object directory.
	TargetDirSuffix = ".build"

	// ObjectSuffix is appended to a source file name to form its object file name.
	ObjectSuffix = ".o"

	// DefaultBuildDir is the default build root, relative to the project directory.
	DefaultBuildDir = "build"

	// DefaultManifestFile is the default project manifest name.
	DefaultManifestFile = "anvil.yaml"

	// DefaultSettingsFile is the optional tool settings file.
	DefaultSettingsFile = "anvil.toml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Platform selects host naming conventions and the platform define passed to the compiler.
type Platform uint8

const (
	// PlatformLinux covers Linux and other ELF unixes.
	PlatformLinux Platform = iota
	// PlatformDarwin covers macOS.
	PlatformDarwin
	// PlatformWindows covers Windows.
	PlatformWindows
)

// HostPlatform returns the platform the binary is running on.
func HostPlatform() Platform {
	return PlatformFor(runtime.GOOS)
}

// PlatformFor maps a GOOS value to a Platform.
func PlatformFor(goos string) Platform {
	switch goos {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformDarwin
	default:
		return PlatformLinux
	}
}

// Define returns the preprocessor define identifying the platform.
func (p Platform) Define() string {
	switch p {
	case PlatformWindows:
		return "-DWINDOWS"
	case PlatformDarwin:
		return "-DMACOSX"
	default:
		return "-DLINUX"
	}
}

// Layout describes where build outputs live under a build root.
type Layout struct {
	Root     string
	Platform Platform
}

// NewLayout creates a Layout rooted at root for the host platform.
func NewLayout(root string) Layout {
	return Layout{Root: root, Platform: HostPlatform()}
}

// ObjDir returns <root>/obj.temp.
func (l Layout) ObjDir() string {
	return filepath.Join(l.Root, ObjDirName)
}

// LibDir returns <root>/lib.
func (l Layout) LibDir() string {
	return filepath.Join(l.Root, LibDirName)
}

// BinDir returns <root>/bin.
func (l Layout) BinDir() string {
	return filepath.Join(l.Root, BinDirName)
}

// StatusPath returns <root>/status.json.
func (l Layout) StatusPath() string {
	return filepath.Join(l.Root, StatusFileName)
}

// TargetObjDir returns <root>/obj.temp/<target>.build.
func (l Layout) TargetObjDir(target string) string {
	return filepath.Join(l.ObjDir(), target+TargetDirSuffix)
}

// ObjectPath returns the object file path for a source of the given target.
func (l Layout) ObjectPath(target, source string) string {
	return filepath.Join(l.TargetObjDir(target), ObjectName(source))
}

// CompileUnits derives the compile units of a target from its sources.
func (l Layout) CompileUnits(target string, sources []string) []CompileUnit {
	units := make([]CompileUnit, len(sources))
	for i, src := range sources {
		units[i] = CompileUnit{Source: src, Object: l.ObjectPath(target, src)}
	}
	return units
}

// ArtifactName returns the host file name of a target's artifact.
func (l Layout) ArtifactName(target string, kind Kind) string {
	windows := l.Platform == PlatformWindows
	switch kind {
	case KindStatic:
		if windows {
			return target + ".lib"
		}
		return "lib" + target + ".a"
	case KindShared:
		if windows {
			return target + ".dll"
		}
		return "lib" + target + ".so"
	default:
		if windows {
			return target + ".exe"
		}
		return target
	}
}

// ArtifactPath returns the full path of a target's artifact.
func (l Layout) ArtifactPath(target string, kind Kind) string {
	if kind == KindExecutable {
		return filepath.Join(l.BinDir(), l.ArtifactName(target, kind))
	}
	return filepath.Join(l.LibDir(), l.ArtifactName(target, kind))
}
