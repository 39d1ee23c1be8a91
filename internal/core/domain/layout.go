package domain

import "path/filepath"

const (
	// DefaultRoot is the filesystem root used when --root is not given.
	DefaultRoot = "/"
	// DefaultOutputDir is where artifacts are written when --output is not given.
	DefaultOutputDir = "."
	// IndexFileName is fetched from every repository URL.
	IndexFileName = "INDEX.yaml"

	// FilePerm is the mode of created artifact and cache files.
	FilePerm = 0o644
	// DirPerm is the mode of created cache directories.
	DirPerm = 0o750
)

// RepositoriesFilePath returns the default repository config path under root.
func RepositoriesFilePath(root string) string {
	return filepath.Join(rootOrDefault(root), "etc", "pkgfetch", "repositories.yaml")
}

// CacheDirPath returns the index cache directory under root.
func CacheDirPath(root string) string {
	return filepath.Join(rootOrDefault(root), "var", "cache", "pkgfetch")
}

func rootOrDefault(root string) string {
	if root == "" {
		return DefaultRoot
	}
	return root
}
