package domain

import "go.trai.ch/zerr"

var (
	// ErrNameNotFound is returned when a requested package name is unknown to the database.
	ErrNameNotFound = zerr.New("package name not found")

	// ErrNoVariantsAvailable is returned when a name is known but no package provides it.
	ErrNoVariantsAvailable = zerr.New("no package variants available")

	// ErrUnresolvableDependency is returned when the resolver cannot lock a dependency closure.
	ErrUnresolvableDependency = zerr.New("unable to resolve dependency")

	// ErrNoRepositoryFound is returned when a package is not present in any configured repository.
	ErrNoRepositoryFound = zerr.New("not present in any repository")

	// ErrDownloadIncomplete is returned when a stream cannot be opened or delivers
	// a byte count different from the declared package size.
	ErrDownloadIncomplete = zerr.New("download incomplete")

	// ErrDestinationCreateFailed is returned when the output file cannot be created.
	ErrDestinationCreateFailed = zerr.New("failed to create destination file")

	// ErrNoPackagesSpecified is returned when fetch is invoked without package names.
	ErrNoPackagesSpecified = zerr.New("no packages specified")

	// ErrInvalidPackageName is returned when a package name is empty or contains
	// characters that cannot appear in a name.
	ErrInvalidPackageName = zerr.New("invalid package name")

	// ErrInvalidArtifactName is returned when an artifact file name cannot be built
	// from a package name and version without escaping the output directory.
	ErrInvalidArtifactName = zerr.New("invalid artifact file name")

	// ErrInvalidDependency is returned when a dependency string cannot be parsed.
	ErrInvalidDependency = zerr.New("invalid dependency")

	// ErrDependencyConflict is returned when two constraints select incompatible versions.
	ErrDependencyConflict = zerr.New("conflicting dependency constraints")

	// ErrPackageAlreadyInGraph is returned when a package name is added to a graph twice.
	ErrPackageAlreadyInGraph = zerr.New("package already in graph")

	// ErrMissingDependency is returned when a graph node references a package that was not added.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the package dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrDatabaseOpenFailed is returned when the package database cannot be opened.
	ErrDatabaseOpenFailed = zerr.New("failed to open package database")

	// ErrDatabaseClosed is returned when a closed database is queried.
	ErrDatabaseClosed = zerr.New("package database is closed")

	// ErrRepositoryIndexOutOfRange is returned when a repository slot is not configured.
	ErrRepositoryIndexOutOfRange = zerr.New("repository index out of range")

	// ErrTooManyRepositories is returned when more repositories are configured than slots exist.
	ErrTooManyRepositories = zerr.New("too many repositories configured")

	// ErrConfigReadFailed is returned when the repositories file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read repositories file")

	// ErrConfigParseFailed is returned when the repositories file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse repositories file")

	// ErrIndexReadFailed is returned when a repository index cannot be read.
	ErrIndexReadFailed = zerr.New("failed to read repository index")

	// ErrIndexParseFailed is returned when a repository index cannot be parsed.
	ErrIndexParseFailed = zerr.New("failed to parse repository index")

	// ErrIndexCacheReadFailed is returned when a cached index cannot be read.
	ErrIndexCacheReadFailed = zerr.New("failed to read index cache")

	// ErrIndexCacheWriteFailed is returned when an index cannot be written to the cache.
	ErrIndexCacheWriteFailed = zerr.New("failed to write index cache")

	// ErrStreamOpenFailed is returned when a source locator cannot be opened.
	ErrStreamOpenFailed = zerr.New("failed to open stream")

	// ErrUnsupportedScheme is returned when a locator uses a scheme the stream opener cannot serve.
	ErrUnsupportedScheme = zerr.New("unsupported locator scheme")
)
