package index

import (
	"sync"

	"go.trai.ch/pkgfetch/internal/core/domain"
	"go.trai.ch/zerr"
)

// Database implements ports.Database over the parsed repository indexes.
type Database struct {
	mu     sync.RWMutex
	repos  []domain.Repository
	names  map[string]*domain.NameRecord
	closed bool
}

// NewDatabase creates an empty database with the given repositories in slot order.
func NewDatabase(urls []string) *Database {
	repos := make([]domain.Repository, len(urls))
	for i, u := range urls {
		repos[i] = domain.Repository{Index: i, URL: u}
	}
	return &Database{
		repos: repos,
		names: make(map[string]*domain.NameRecord),
	}
}

// add merges the entries of the repository in slot into the name table.
// Entries with a name and version already present only extend the membership set.
func (db *Database) add(slot int, entries []entry) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, e := range entries {
		rec := db.record(e.name)

		var existing *domain.Package
		for _, p := range rec.Packages {
			if p.Version.String() == e.version {
				existing = p
				break
			}
		}
		if existing != nil {
			existing.Repos.Add(slot)
		} else {
			rec.Packages = append(rec.Packages, &domain.Package{
				Name:    rec.Name,
				Version: domain.NewInternedString(e.version),
				Size:    e.size,
				Repos:   domain.NewRepoSet(slot),
				Depends: e.depends,
			})
		}

		for _, dep := range e.depends {
			db.record(dep.Name.String())
		}
	}
}

func (db *Database) record(name string) *domain.NameRecord {
	rec, ok := db.names[name]
	if !ok {
		rec = &domain.NameRecord{Name: domain.NewInternedString(name)}
		db.names[name] = rec
	}
	return rec
}

// LookupName returns the record for an exact package name.
func (db *Database) LookupName(name string) (*domain.NameRecord, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if db.closed {
		return nil, zerr.With(zerr.Wrap(domain.ErrDatabaseClosed, "lookup failed"), "package", name)
	}

	rec, ok := db.names[name]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrNameNotFound, "lookup failed"), "package", name)
	}
	return rec, nil
}

// RepositoryURL returns the base URL of the repository in slot index.
func (db *Database) RepositoryURL(index int) (string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if db.closed {
		return "", zerr.Wrap(domain.ErrDatabaseClosed, "repository lookup failed")
	}
	if index < 0 || index >= len(db.repos) {
		return "", zerr.With(zerr.Wrap(domain.ErrRepositoryIndexOutOfRange, "repository lookup failed"), "index", index)
	}
	return db.repos[index].URL, nil
}

// Repositories lists the configured repositories in slot order.
func (db *Database) Repositories() []domain.Repository {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make([]domain.Repository, len(db.repos))
	copy(out, db.repos)
	return out
}

// Close drops the name table. Further lookups fail with domain.ErrDatabaseClosed.
func (db *Database) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.closed = true
	db.names = nil
	return nil
}
