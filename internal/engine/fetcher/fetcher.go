// Package fetcher retrieves package artifacts into their destination.
package fetcher

import (
	"context"
	"errors"
	"io"
	"os"

	"go.trai.ch/pkgfetch/internal/core/domain"
	"go.trai.ch/pkgfetch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Fetcher implements ports.PackageFetcher.
type Fetcher struct {
	streams   ports.StreamOpener
	linker    ports.Linker
	logger    ports.Logger
	telemetry ports.Telemetry
	stdout    io.Writer
}

// New creates a Fetcher writing --stdout output to os.Stdout.
func New(
	streams ports.StreamOpener,
	linker ports.Linker,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Fetcher {
	return &Fetcher{
		streams:   streams,
		linker:    linker,
		logger:    logger,
		telemetry: telemetry,
		stdout:    os.Stdout,
	}
}

// SetStdout replaces the sink used when FetchOptions.Stdout is set.
func (f *Fetcher) SetStdout(w io.Writer) {
	f.stdout = w
}

// Fetch writes the artifact of pkg to <outdir>/<name>-<version>.apk or stdout.
//
// An existing destination whose size equals the declared size counts as fetched
// and no stream is opened. In link mode a local source is hard-linked when
// possible. Otherwise exactly pkg.Size bytes are copied; any other count is a
// failure and the partial file is removed.
func (f *Fetcher) Fetch(ctx context.Context, db ports.Database, pkg *domain.Package, opts domain.FetchOptions) (err error) {
	ctx, vertex := f.telemetry.Record(ctx, pkg.String())
	defer func() { vertex.Complete(err) }()

	var dest string
	if !opts.Stdout {
		dest, err = domain.ArtifactPath(opts.OutputDir, pkg)
		if err != nil {
			return err
		}
		if info, statErr := os.Lstat(dest); statErr == nil && info.Size() == pkg.Size {
			f.logger.Debug(pkg.String() + " already fetched")
			vertex.Cached()
			return nil
		}
	}

	// -q silences progress messages, errors are still reported by the caller.
	if opts.Verbosity >= 0 {
		f.logger.Info("Downloading " + pkg.String())
		vertex.Log(domain.LogLevelInfo, "Downloading "+pkg.String())
	}

	slot, err := locateRepository(pkg)
	if err != nil {
		return err
	}

	if opts.Simulate {
		return nil
	}

	repoURL, err := db.RepositoryURL(slot)
	if err != nil {
		return err
	}
	source, err := domain.SourceLocator(repoURL, pkg)
	if err != nil {
		return err
	}

	if opts.Verbosity > 0 {
		vertex.Log(domain.LogLevelDebug, "source "+source)
	}

	if opts.Link && !opts.Stdout && f.tryLink(source, dest) {
		return nil
	}

	return f.copy(ctx, pkg, source, dest, opts.Stdout)
}

// tryLink reports whether dest was satisfied through a hard link.
func (f *Fetcher) tryLink(source, dest string) bool {
	res := domain.LinkResult{Status: domain.LinkNotApplicable}
	if local, ok := domain.LocalPath(source); ok {
		res = f.linker.Link(local, dest)
	}

	switch res.Status {
	case domain.Linked:
		f.logger.Debug("linked " + dest)
		return true
	case domain.LinkFailed:
		msg := "hard link failed, copying instead"
		if res.Err != nil {
			msg += ": " + res.Err.Error()
		}
		f.logger.Debug(msg)
	default:
		f.logger.Debug("hard link not applicable for " + source)
	}
	return false
}

func (f *Fetcher) copy(ctx context.Context, pkg *domain.Package, source, dest string, toStdout bool) error {
	var (
		sink io.Writer
		file *os.File
	)
	if toStdout {
		sink = f.stdout
	} else {
		var err error
		//nolint:gosec // dest is built from validated name parts
		file, err = os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm)
		if err != nil {
			return errors.Join(domain.ErrDestinationCreateFailed, zerr.With(zerr.Wrap(err, "create failed"), "path", dest))
		}
		sink = file
	}

	discard := func() {
		if file != nil {
			_ = file.Close()
			_ = os.Remove(dest)
		}
	}

	rc, err := f.streams.Open(ctx, source)
	if err != nil {
		discard()
		return errors.Join(downloadError(source), err)
	}

	copied, copyErr := io.CopyN(sink, rc, pkg.Size)
	_ = rc.Close()

	if copied != pkg.Size {
		discard()
		incomplete := zerr.With(zerr.With(downloadError(source), "expected", pkg.Size), "copied", copied)
		if copyErr != nil && !errors.Is(copyErr, io.EOF) {
			return errors.Join(incomplete, copyErr)
		}
		return incomplete
	}

	if file != nil {
		if err := file.Close(); err != nil {
			_ = os.Remove(dest)
			return errors.Join(downloadError(source), zerr.With(zerr.Wrap(err, "close failed"), "path", dest))
		}
	}
	return nil
}

func downloadError(source string) error {
	return zerr.With(zerr.Wrap(domain.ErrDownloadIncomplete, "unable to download"), "source", source)
}
