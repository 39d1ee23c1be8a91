package fetcher

import (
	"go.trai.ch/pkgfetch/internal/core/domain"
	"go.trai.ch/zerr"
)

// locateRepository returns the lowest configured slot hosting pkg.
func locateRepository(pkg *domain.Package) (int, error) {
	slot, ok := pkg.Repos.First()
	if !ok {
		return 0, zerr.With(zerr.Wrap(domain.ErrNoRepositoryFound, pkg.String()), "package", pkg.String())
	}
	return slot, nil
}
