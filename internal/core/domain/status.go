package domain

import (
	"maps"
	"time"
)

// TargetRecord is what the status file remembers about a built target.
type TargetRecord struct {
	Kind        Kind      `json:"kind"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	BuiltAt     time.Time `json:"built_at,omitzero"`
}

// StatusRecord is the persisted state of a build directory.
type StatusRecord struct {
	Compiler string                  `json:"compiler,omitzero"`
	Targets  map[string]TargetRecord `json:"targets,omitempty"`
}

// NewStatusRecord returns an empty record.
func NewStatusRecord() *StatusRecord {
	return &StatusRecord{Targets: make(map[string]TargetRecord)}
}

// Fingerprint returns the recorded fingerprint of a target, if any.
func (s *StatusRecord) Fingerprint(target string) (string, bool) {
	if s == nil {
		return "", false
	}
	rec, ok := s.Targets[target]
	if !ok || rec.Fingerprint == "" {
		return "", false
	}
	return rec.Fingerprint, true
}

// Record stores the fingerprint of a successfully built target.
func (s *StatusRecord) Record(target string, kind Kind, fingerprint string, at time.Time) {
	if s.Targets == nil {
		s.Targets = make(map[string]TargetRecord)
	}
	s.Targets[target] = TargetRecord{Kind: kind, Fingerprint: fingerprint, BuiltAt: at}
}

// Clone returns a deep copy of the record.
func (s *StatusRecord) Clone() *StatusRecord {
	if s == nil {
		return NewStatusRecord()
	}
	out := &StatusRecord{Compiler: s.Compiler, Targets: maps.Clone(s.Targets)}
	if out.Targets == nil {
		out.Targets = make(map[string]TargetRecord)
	}
	return out
}
