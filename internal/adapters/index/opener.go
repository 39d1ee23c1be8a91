// Package index builds the package database from repository indexes.
package index

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"go.trai.ch/pkgfetch/internal/core/domain"
	"go.trai.ch/pkgfetch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Opener implements ports.DatabaseOpener.
type Opener struct {
	config  ports.ConfigLoader
	streams ports.StreamOpener
	caches  ports.IndexCacheProvider
	logger  ports.Logger
}

// NewOpener creates a new Opener.
func NewOpener(
	config ports.ConfigLoader,
	streams ports.StreamOpener,
	caches ports.IndexCacheProvider,
	logger ports.Logger,
) *Opener {
	return &Opener{
		config:  config,
		streams: streams,
		caches:  caches,
		logger:  logger,
	}
}

// Open loads the configured repositories and their indexes. Indexes are fetched
// in parallel; a repository whose index is unavailable contributes no packages.
func (o *Opener) Open(ctx context.Context, opts domain.DatabaseOptions) (ports.Database, error) {
	path := opts.RepositoriesFile
	if path == "" {
		path = domain.RepositoriesFilePath(opts.Root)
	}

	cfg, err := o.config.Load(path)
	if err != nil {
		return nil, errors.Join(domain.ErrDatabaseOpenFailed, err)
	}

	urls, err := domain.NormalizeRepositories(slices.Concat(cfg.Repositories, opts.Repositories))
	if err != nil {
		return nil, errors.Join(domain.ErrDatabaseOpenFailed, err)
	}

	var cache ports.IndexCache
	if !opts.Flags.Has(domain.OpenNoCache) {
		cache = o.caches.ForRoot(opts.Root)
	}

	raw := make([][]byte, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	for i, url := range urls {
		g.Go(func() error {
			raw[i] = o.loadIndex(gctx, url, cache)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Join(domain.ErrDatabaseOpenFailed, err)
	}

	db := NewDatabase(urls)
	for slot, data := range raw {
		if data == nil {
			continue
		}
		entries, err := parseIndex(urls[slot], data)
		if err != nil {
			o.logger.Warn(fmt.Sprintf("Ignoring index of %s: %v", urls[slot], err))
			continue
		}
		db.add(slot, entries)
	}

	return db, nil
}

// loadIndex fetches <url>/INDEX.yaml, refreshing the cache on success and
// falling back to it on failure. It returns nil when neither source is usable.
func (o *Opener) loadIndex(ctx context.Context, url string, cache ports.IndexCache) []byte {
	data, err := o.fetchIndex(ctx, url)
	if err == nil {
		if cache != nil {
			if putErr := cache.Put(url, data); putErr != nil {
				o.logger.Warn(fmt.Sprintf("Unable to cache index of %s: %v", url, putErr))
			}
		}
		return data
	}

	if cache != nil {
		cached, ok, cacheErr := cache.Get(url)
		if cacheErr != nil {
			o.logger.Debug(fmt.Sprintf("index cache unavailable for %s: %v", url, cacheErr))
		}
		if ok {
			o.logger.Debug("using cached index for " + url)
			return cached
		}
	}

	o.logger.Warn(fmt.Sprintf("Unable to load index of %s: %v", url, err))
	return nil
}

func (o *Opener) fetchIndex(ctx context.Context, url string) ([]byte, error) {
	locator := url + "/" + domain.IndexFileName

	rc, err := o.streams.Open(ctx, locator)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Join(domain.ErrIndexReadFailed, zerr.With(zerr.Wrap(err, "read failed"), "source", locator))
	}
	return data, nil
}
