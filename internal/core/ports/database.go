// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/pkgfetch/internal/core/domain"
)

// DatabaseOpener opens the package database for one run.
//
//go:generate go run go.uber.org/mock/mockgen -source=database.go -destination=mocks/mock_database.go -package=mocks
type DatabaseOpener interface {
	// Open loads the configured repositories and their indexes.
	Open(ctx context.Context, opts domain.DatabaseOptions) (Database, error)
}

// Database is the read-only package database.
type Database interface {
	// LookupName returns the record for an exact package name.
	// It returns domain.ErrNameNotFound when the name is unknown.
	LookupName(name string) (*domain.NameRecord, error)

	// RepositoryURL returns the base URL of the repository in the given slot.
	RepositoryURL(index int) (string, error)

	// Repositories lists the configured repositories in slot order.
	Repositories() []domain.Repository

	// Close releases the database. Further lookups fail.
	Close() error
}
