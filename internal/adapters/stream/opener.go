// Package stream opens artifact and index byte streams from local paths and URLs.
package stream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.trai.ch/pkgfetch/internal/core/domain"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 5 * time.Minute

// Opener implements ports.StreamOpener.
type Opener struct {
	httpClient *http.Client
}

// NewOpener creates an Opener with a default HTTP client.
func NewOpener() *Opener {
	return NewOpenerWithClient(&http.Client{
		Timeout: httpClientTimeout,
	})
}

// NewOpenerWithClient creates an Opener using client for http and https locators.
func NewOpenerWithClient(client *http.Client) *Opener {
	return &Opener{httpClient: client}
}

// Open returns a reader for locator. Local paths and file:// URLs are opened
// directly; http and https URLs are fetched with a GET bound to ctx.
func (o *Opener) Open(ctx context.Context, locator string) (io.ReadCloser, error) {
	if path, ok := domain.LocalPath(locator); ok {
		return o.openFile(path, locator)
	}

	u, err := url.Parse(locator)
	if err != nil {
		return nil, errors.Join(domain.ErrStreamOpenFailed, zerr.With(zerr.Wrap(err, "invalid locator"), "source", locator))
	}

	switch u.Scheme {
	case "http", "https":
		return o.openHTTP(ctx, locator)
	default:
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrUnsupportedScheme, "cannot open locator"), "scheme", u.Scheme), "source", locator)
	}
}

func (o *Opener) openFile(path, locator string) (io.ReadCloser, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from repository configuration
	if err != nil {
		return nil, errors.Join(domain.ErrStreamOpenFailed, zerr.With(zerr.Wrap(err, "open failed"), "source", locator))
	}
	return f, nil
}

func (o *Opener) openHTTP(ctx context.Context, locator string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, http.NoBody)
	if err != nil {
		return nil, errors.Join(domain.ErrStreamOpenFailed, zerr.With(zerr.Wrap(err, "invalid request"), "source", locator))
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(domain.ErrStreamOpenFailed, zerr.With(zerr.Wrap(err, "request failed"), "source", locator))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_ = resp.Body.Close()
		statusErr := zerr.With(zerr.Wrap(domain.ErrStreamOpenFailed, "unexpected HTTP status"), "status_code", resp.StatusCode)
		return nil, zerr.With(statusErr, "source", locator)
	}

	return resp.Body, nil
}
