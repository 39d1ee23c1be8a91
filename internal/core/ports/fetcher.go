package ports

import (
	"context"

	"go.trai.ch/pkgfetch/internal/core/domain"
)

// PackageFetcher retrieves the artifact of a single package.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type PackageFetcher interface {
	// Fetch writes the artifact of pkg to the destination selected by opts.
	Fetch(ctx context.Context, db Database, pkg *domain.Package, opts domain.FetchOptions) error
}
