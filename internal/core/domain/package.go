package domain

// Package is one concrete, downloadable package artifact known to the database.
// Values are immutable once loaded; the database owns them for its lifetime.
type Package struct {
	// Name is the package name (e.g., "busybox").
	Name InternedString

	// Version is the full version string including revision (e.g., "1.36.1-r2").
	Version InternedString

	// Size is the declared artifact size in bytes and the exact transfer length expected.
	Size int64

	// Repos holds the configured repository slots that carry this artifact.
	Repos RepoSet

	// Depends lists the runtime dependencies declared by the index.
	Depends []Dependency
}

// String returns the "<name>-<version>" identity of the package.
func (p *Package) String() string {
	return p.Name.String() + "-" + p.Version.String()
}

// NameRecord is the database entry for one package name.
// A name can be known (for example because another package depends on it)
// while having no package variants at all.
type NameRecord struct {
	Name     InternedString
	Packages []*Package
}

// Change is a single entry of a resolution result.
// Old is nil when the package is not currently installed.
type Change struct {
	Old *Package
	New *Package
}

// Repository is a configured repository slot.
type Repository struct {
	Index int
	URL   string
}
