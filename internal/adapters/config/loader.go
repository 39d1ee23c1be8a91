// Package config loads the repository configuration of pkgfetch.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/pkgfetch/internal/core/domain"
	"go.trai.ch/pkgfetch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the repositories file at path.
func (l *Loader) Load(path string) (*domain.RepositoryConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no repositories file at " + path)
			return &domain.RepositoryConfig{}, nil
		}
		return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "read failed"), "path", path))
	}

	return Parse(path, data)
}

// Parse decodes repositories file content. The path is only used in error metadata.
func Parse(path string, data []byte) (*domain.RepositoryConfig, error) {
	var cfg domain.RepositoryConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "invalid YAML"), "path", path))
	}

	repos, err := domain.NormalizeRepositories(cfg.Repositories)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	cfg.Repositories = repos

	return &cfg, nil
}
