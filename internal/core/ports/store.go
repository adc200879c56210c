package ports

import "go.trai.ch/anvil/internal/core/domain"

// StatusStore persists the status record of a build directory.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StatusStore interface {
	// Load reads the record at path.
	// A missing or unreadable record yields an empty record and no error.
	Load(path string) (*domain.StatusRecord, error)

	// Save writes the record to path.
	Save(path string, rec *domain.StatusRecord) error
}
