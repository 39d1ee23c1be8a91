package ports

import "go.trai.ch/pkgfetch/internal/core/domain"

// ConfigLoader defines the interface for loading the repository configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the repositories file at path.
	// A missing file yields an empty configuration.
	Load(path string) (*domain.RepositoryConfig, error)
}
