package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// OpenFlags tune how the package database is opened.
type OpenFlags uint8

const (
	// OpenNoCache disables reading and writing the index cache.
	OpenNoCache OpenFlags = 1 << iota
)

// Has reports whether f contains flag.
func (f OpenFlags) Has(flag OpenFlags) bool {
	return f&flag != 0
}

// DatabaseOptions select which repositories the database is built from.
type DatabaseOptions struct {
	// Root is the filesystem root config and cache paths are resolved against.
	Root string
	// RepositoriesFile overrides <root>/etc/pkgfetch/repositories.yaml.
	RepositoriesFile string
	// Repositories are appended after the configured ones.
	Repositories []string
	Flags        OpenFlags
}

// FetchOptions is the configuration of one fetch run.
// It is built once by the CLI and passed explicitly to every component.
type FetchOptions struct {
	Recursive bool
	Stdout    bool
	Link      bool
	OutputDir string
	Simulate  bool
	Verbosity int
	Database  DatabaseOptions
}

// RepositoryConfig is the parsed repository configuration file.
type RepositoryConfig struct {
	Repositories []string `yaml:"repositories"`
}

// NormalizeRepositories trims entries, drops blanks and duplicates while keeping
// the first occurrence, and enforces MaxRepositories.
func NormalizeRepositories(urls []string) ([]string, error) {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimRight(strings.TrimSpace(u), "/")
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	if len(out) > MaxRepositories {
		return nil, zerr.With(zerr.With(zerr.Wrap(ErrTooManyRepositories, "repository limit exceeded"),
			"count", len(out)), "max", MaxRepositories)
	}
	return out, nil
}
