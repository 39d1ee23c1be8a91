package ports

import (
	"context"
	"io"
)

// StreamOpener opens a byte stream for a source locator.
//
//go:generate mockgen -source=stream.go -destination=mocks/mock_stream.go -package=mocks
type StreamOpener interface {
	// Open returns a reader for a local path, a file:// URL or an http(s) URL.
	Open(ctx context.Context, locator string) (io.ReadCloser, error)
}
