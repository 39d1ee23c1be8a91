package ports

import (
	"context"
	"iter"

	"go.trai.ch/pkgfetch/internal/core/domain"
)

// Resolver creates dependency resolution sessions against a database.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type Resolver interface {
	NewSession(db Database) Session
}

// Session holds the state of one closure resolution.
type Session interface {
	// Lock resolves dep and its transitive dependencies.
	Lock(ctx context.Context, dep domain.Dependency) error

	// Changes yields the resolved packages in install order, dependencies first.
	Changes() iter.Seq[domain.Change]

	// Release drops the session state.
	Release()
}
