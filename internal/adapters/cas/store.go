// Package cas implements the on-disk cache of repository indexes.
package cas

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pkgfetch/internal/core/domain"
	"go.trai.ch/pkgfetch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.IndexCache with one file per repository URL.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// NewStore creates a Store rooted at dir. The directory is created on first Put.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Provider implements ports.IndexCacheProvider.
type Provider struct{}

// ForRoot returns the store under <root>/var/cache/pkgfetch.
func (Provider) ForRoot(root string) ports.IndexCache {
	return NewStore(domain.CacheDirPath(root))
}

// Path returns the cache file of url, named after its xxhash64.
func (s *Store) Path(url string) string {
	return filepath.Join(s.dir, fmt.Sprintf("APKINDEX.%016x.yaml", xxhash.Sum64String(url)))
}

// Get returns the cached index for url.
func (s *Store) Get(url string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.Path(url)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from a hash
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, errors.Join(domain.ErrIndexCacheReadFailed,
			zerr.With(zerr.Wrap(err, "read failed"), "path", path))
	}
	return data, true, nil
}

// Put replaces the cached index for url. The file is written to a temporary
// name first and renamed into place.
func (s *Store) Put(url string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path(url)
	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return s.writeError(err, path)
	}

	tmp, err := os.CreateTemp(s.dir, ".APKINDEX-*.tmp")
	if err != nil {
		return s.writeError(err, path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return s.writeError(err, path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return s.writeError(err, path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return s.writeError(err, path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return s.writeError(err, path)
	}
	return nil
}

func (s *Store) writeError(err error, path string) error {
	return errors.Join(domain.ErrIndexCacheWriteFailed, zerr.With(zerr.Wrap(err, "write failed"), "path", path))
}
