package ports

import "go.trai.ch/pkgfetch/internal/core/domain"

// Linker implements the hard-link fast path for local repositories.
//
//go:generate mockgen -source=linker.go -destination=mocks/mock_linker.go -package=mocks
type Linker interface {
	// Link resolves one level of symbolic link at source and hard-links the target to dest.
	Link(source, dest string) domain.LinkResult
}
