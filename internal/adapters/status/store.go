// Package status persists the build status record of a build directory.
package status

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.StatusStore with one JSON file per build directory.
type Store struct{}

// NewStore creates a new status Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the record at path. A missing or unparsable file yields an empty record.
func (s *Store) Load(path string) (*domain.StatusRecord, error) {
	//nolint:gosec // Path is derived from the configured build directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewStatusRecord(), nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStatusReadFailed, err.Error()), "path", path)
	}

	rec := domain.NewStatusRecord()
	if err := json.Unmarshal(data, rec); err != nil {
		return domain.NewStatusRecord(), nil
	}
	if rec.Targets == nil {
		rec.Targets = make(map[string]domain.TargetRecord)
	}
	return rec, nil
}

// Save writes the record to path, creating its directory if needed.
func (s *Store) Save(path string, rec *domain.StatusRecord) error {
	if rec == nil {
		rec = domain.NewStatusRecord()
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStatusMarshalFailed, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStatusWriteFailed, err.Error()), "path", path)
	}

	//nolint:gosec // Path is derived from the configured build directory
	if err := os.WriteFile(path, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStatusWriteFailed, err.Error()), "path", path)
	}
	return nil
}
