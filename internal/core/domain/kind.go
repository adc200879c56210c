package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Kind is the kind of artifact a target produces.
type Kind uint8

const (
	// KindStatic produces a static archive in the library directory.
	KindStatic Kind = iota
	// KindShared produces a shared library in the library directory.
	KindShared
	// KindExecutable produces an executable in the binary directory.
	KindExecutable
)

var kindNames = [...]string{
	KindStatic:     "static",
	KindShared:     "shared",
	KindExecutable: "executable",
}

// ParseKind parses the manifest spelling of a kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "static":
		return KindStatic, nil
	case "shared":
		return KindShared, nil
	case "executable", "exe", "binary":
		return KindExecutable, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrUnknownKind, "cannot parse target kind"), "kind", s)
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// Linkable reports whether targets of this kind link against static dependencies.
func (k Kind) Linkable() bool {
	return k == KindShared || k == KindExecutable
}

func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, zerr.With(zerr.Wrap(ErrUnknownKind, "cannot marshal target kind"), "kind", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Probe selects what a staleness check compares sources against.
// The zero value is an object-only probe.
type Probe struct {
	kind     Kind
	artifact bool
}

// ObjectProbe checks only the per-source object files of a target.
// It is used to decide whether a single source needs recompiling.
func ObjectProbe() Probe {
	return Probe{}
}

// ArtifactProbe checks the object files and the final artifact of a target of kind k.
func ArtifactProbe(k Kind) Probe {
	return Probe{kind: k, artifact: true}
}

// Artifact returns the artifact kind and true for artifact probes.
func (p Probe) Artifact() (Kind, bool) {
	return p.kind, p.artifact
}
