package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgfetch/internal/app"
	"go.trai.ch/pkgfetch/internal/core/domain"
)

// repository is a file:// repository laid out in a temporary directory.
type repository struct {
	dir     string
	entries []string
}

func newRepository(t *testing.T) *repository {
	t.Helper()
	return &repository{dir: t.TempDir()}
}

// add writes the artifact and records its index entry. declared is the size
// written to the index, which may differ from len(content).
func (r *repository) add(t *testing.T, name, version, content string, declared int, depends ...string) {
	t.Helper()
	path := filepath.Join(r.dir, name+"-"+version+".apk")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	r.addEntry(name, version, declared, depends...)
}

func (r *repository) addEntry(name, version string, declared int, depends ...string) {
	entry := "  - name: " + name + "\n    version: \"" + version + "\"\n    size: " + strconv.Itoa(declared) + "\n"
	if len(depends) > 0 {
		entry += "    depends: [" + strings.Join(depends, ", ") + "]\n"
	}
	r.entries = append(r.entries, entry)
}

func (r *repository) publish(t *testing.T) string {
	t.Helper()
	index := "packages:\n" + strings.Join(r.entries, "")
	require.NoError(t, os.WriteFile(filepath.Join(r.dir, domain.IndexFileName), []byte(index), 0o600))
	return "file://" + r.dir
}

// freshComponents builds the real component graph with its own cache, so no
// logger level or closed telemetry tape leaks between runs.
func freshComponents(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx, graft.WithCache(graft.NewMemoryCache()))
	return c, func() {}, err
}

// fetchCmd runs pkgfetch against repoURL with an isolated root and returns the
// exit code and the output directory.
func fetchCmd(t *testing.T, repoURL string, args ...string) (int, string) {
	t.Helper()
	out := t.TempDir()
	full := append([]string{
		"fetch", "--root", t.TempDir(), "--no-cache", "-X", repoURL, "-o", out,
	}, args...)
	code := run(context.Background(), full, new(bytes.Buffer), freshComponents)
	return code, out
}

func readArtifact(t *testing.T, dir, file string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, file))
	require.NoError(t, err)
	return string(data)
}

func TestFetchEndToEnd_SelectsGreatestVersion(t *testing.T) {
	repo := newRepository(t)
	repo.add(t, "zlib", "1.2.13-r0", "old", 3)
	repo.add(t, "zlib", "1.3.1-r0", "newest", 6)
	repo.add(t, "zlib", "1.3.0-r1", "mid", 3)
	url := repo.publish(t)

	code, out := fetchCmd(t, url, "zlib")
	require.Equal(t, 0, code)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "newest", readArtifact(t, out, "zlib-1.3.1-r0.apk"))
}

func TestFetchEndToEnd_RecursiveClosure(t *testing.T) {
	repo := newRepository(t)
	repo.add(t, "musl", "1.2.5-r0", "musl", 4)
	repo.add(t, "zlib", "1.3.1-r0", "zlib", 4, "musl")
	repo.add(t, "busybox", "1.36.1-r2", "busybox", 7, "musl", `"zlib>=1.3"`)
	url := repo.publish(t)

	code, out := fetchCmd(t, url, "-R", "busybox")
	require.Equal(t, 0, code)

	assert.Equal(t, "musl", readArtifact(t, out, "musl-1.2.5-r0.apk"))
	assert.Equal(t, "zlib", readArtifact(t, out, "zlib-1.3.1-r0.apk"))
	assert.Equal(t, "busybox", readArtifact(t, out, "busybox-1.36.1-r2.apk"))
}

func TestFetchEndToEnd_RecursiveStopsAtFirstFailure(t *testing.T) {
	repo := newRepository(t)
	repo.add(t, "musl", "1.2.5-r0", "musl", 4)
	// Declared larger than the artifact on disk.
	repo.add(t, "zlib", "1.3.1-r0", "zl", 4, "musl")
	repo.add(t, "busybox", "1.36.1-r2", "busybox", 7, "zlib")
	url := repo.publish(t)

	code, out := fetchCmd(t, url, "-R", "busybox")
	require.Equal(t, 1, code)

	// Dependencies are fetched first; the failing one leaves nothing behind
	// and its dependent is never attempted.
	assert.Equal(t, "musl", readArtifact(t, out, "musl-1.2.5-r0.apk"))
	assert.NoFileExists(t, filepath.Join(out, "zlib-1.3.1-r0.apk"))
	assert.NoFileExists(t, filepath.Join(out, "busybox-1.36.1-r2.apk"))
}

func TestFetchEndToEnd_ShortArtifactRemoved(t *testing.T) {
	repo := newRepository(t)
	repo.add(t, "musl", "1.2.5-r0", "short", 100)
	url := repo.publish(t)

	code, out := fetchCmd(t, url, "musl")
	require.Equal(t, 1, code)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchEndToEnd_LinksLocalArtifact(t *testing.T) {
	repo := newRepository(t)
	store := filepath.Join(repo.dir, "store")
	require.NoError(t, os.Mkdir(store, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(store, "blob"), []byte("linked"), 0o600))
	require.NoError(t, os.Symlink(filepath.Join("store", "blob"), filepath.Join(repo.dir, "musl-1.2.5-r0.apk")))
	repo.addEntry("musl", "1.2.5-r0", 6)
	url := repo.publish(t)

	code, out := fetchCmd(t, url, "-L", "musl")
	require.Equal(t, 0, code)

	fetched, err := os.Stat(filepath.Join(out, "musl-1.2.5-r0.apk"))
	require.NoError(t, err)
	original, err := os.Stat(filepath.Join(store, "blob"))
	require.NoError(t, err)
	assert.True(t, os.SameFile(fetched, original), "artifact should be a hard link to the repository file")
}

func TestFetchEndToEnd_SkipsFetchedArtifact(t *testing.T) {
	repo := newRepository(t)
	repo.add(t, "musl", "1.2.5-r0", "musl", 4)
	url := repo.publish(t)

	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(out, "musl-1.2.5-r0.apk"), []byte("keep"), 0o600))

	code := run(context.Background(),
		[]string{"fetch", "--root", t.TempDir(), "--no-cache", "-X", url, "-o", out, "musl"},
		new(bytes.Buffer), freshComponents)
	require.Equal(t, 0, code)
	assert.Equal(t, "keep", readArtifact(t, out, "musl-1.2.5-r0.apk"))
}

func TestFetchEndToEnd_UnknownPackage(t *testing.T) {
	repo := newRepository(t)
	repo.add(t, "musl", "1.2.5-r0", "musl", 4)
	url := repo.publish(t)

	code, out := fetchCmd(t, url, "ghost")
	assert.Equal(t, 1, code)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchEndToEnd_VerboseAndVersionFlags(t *testing.T) {
	repo := newRepository(t)
	repo.add(t, "musl", "1.2.5-r0", "musl", 4)
	url := repo.publish(t)

	code, out := fetchCmd(t, url, "-v", "musl")
	require.Equal(t, 0, code)
	assert.Equal(t, "musl", readArtifact(t, out, "musl-1.2.5-r0.apk"))

	assert.Equal(t, 0, run(context.Background(), []string{"--version"}, new(bytes.Buffer), freshComponents))
	assert.Equal(t, 0, run(context.Background(), []string{"version"}, new(bytes.Buffer), freshComponents))
}
