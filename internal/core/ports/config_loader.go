package ports

import "go.trai.ch/anvil/internal/core/domain"

// ProjectLoader loads a project manifest.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads and validates the manifest at path.
	Load(path string) (*domain.Project, error)
}
