package ports

// IndexCache stores the last successfully fetched index of every repository.
//
//go:generate mockgen -source=index_cache.go -destination=mocks/mock_index_cache.go -package=mocks
type IndexCache interface {
	// Get returns the cached index for url. The boolean is false on a miss.
	Get(url string) ([]byte, bool, error)

	// Put replaces the cached index for url.
	Put(url string, data []byte) error
}

// IndexCacheProvider returns the index cache that lives under a filesystem root.
type IndexCacheProvider interface {
	ForRoot(root string) IndexCache
}
