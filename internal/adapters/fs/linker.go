// Package fs implements filesystem helpers for the fetch engine.
package fs

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/pkgfetch/internal/core/domain"
	"go.trai.ch/zerr"
)

// errNotSymlink is the cause reported when the source is a regular file.
var errNotSymlink = errors.New("source is not a symbolic link")

// Linker implements ports.Linker with readlink and link.
type Linker struct{}

// NewLinker creates a new Linker.
func NewLinker() *Linker {
	return &Linker{}
}

// Link resolves one level of symbolic link at source and hard-links the
// resolved file to dest. Relative link targets resolve against the source's directory.
func (l *Linker) Link(source, dest string) domain.LinkResult {
	info, err := os.Lstat(source)
	if err != nil {
		return failed(zerr.Wrap(err, "failed to stat link source"), source, dest)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return failed(errNotSymlink, source, dest)
	}

	target, err := os.Readlink(source)
	if err != nil {
		return failed(zerr.Wrap(err, "failed to read link"), source, dest)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(source), target)
	}

	if err := os.Link(target, dest); err != nil {
		return failed(zerr.With(zerr.Wrap(err, "failed to link"), "target", target), source, dest)
	}

	return domain.LinkResult{Status: domain.Linked}
}

func failed(err error, source, dest string) domain.LinkResult {
	return domain.LinkResult{
		Status: domain.LinkFailed,
		Err:    zerr.With(zerr.With(zerr.Wrap(err, "hard link not possible"), "source", source), "path", dest),
	}
}
