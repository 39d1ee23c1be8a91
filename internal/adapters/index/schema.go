package index

import (
	"errors"

	"go.trai.ch/pkgfetch/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// File is the structure of a repository's INDEX.yaml.
type File struct {
	Packages []EntryDTO `yaml:"packages"`
}

// EntryDTO is one package entry of an index.
type EntryDTO struct {
	Name    string   `yaml:"name"`
	Version string   `yaml:"version"`
	Size    int64    `yaml:"size"`
	Depends []string `yaml:"depends"`
}

// entry is a validated EntryDTO.
type entry struct {
	name    string
	version string
	size    int64
	depends []domain.Dependency
}

// parseIndex decodes and validates an index. The url is only used in error metadata.
func parseIndex(url string, data []byte) ([]entry, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Join(domain.ErrIndexParseFailed, zerr.With(zerr.Wrap(err, "invalid YAML"), "repository", url))
	}

	entries := make([]entry, 0, len(f.Packages))
	for i, dto := range f.Packages {
		e, err := dto.validate()
		if err != nil {
			return nil, errors.Join(domain.ErrIndexParseFailed, zerr.With(zerr.With(err, "repository", url), "entry", i))
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (dto EntryDTO) validate() (entry, error) {
	if err := domain.ValidatePackageName(dto.Name); err != nil {
		return entry{}, err
	}
	if dto.Version == "" {
		return entry{}, zerr.With(zerr.New("missing version"), "package", dto.Name)
	}
	if dto.Size < 0 {
		return entry{}, zerr.With(zerr.New("negative size"), "package", dto.Name)
	}

	deps := make([]domain.Dependency, 0, len(dto.Depends))
	for _, raw := range dto.Depends {
		dep, err := domain.ParseDependency(raw)
		if err != nil {
			return entry{}, zerr.With(err, "package", dto.Name)
		}
		deps = append(deps, dep)
	}

	return entry{
		name:    dto.Name,
		version: dto.Version,
		size:    dto.Size,
		depends: deps,
	}, nil
}
