package fetcher_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgfetch/internal/adapters/telemetry"
	"go.trai.ch/pkgfetch/internal/core/domain"
	"go.trai.ch/pkgfetch/internal/core/ports"
	"go.trai.ch/pkgfetch/internal/core/ports/mocks"
	"go.trai.ch/pkgfetch/internal/engine/fetcher"
	"go.uber.org/mock/gomock"
)

const repoURL = "https://dl.example.org/main"

type fixture struct {
	streams *mocks.MockStreamOpener
	linker  *mocks.MockLinker
	db      *mocks.MockDatabase
	fetcher *fetcher.Fetcher
	outDir  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	f := &fixture{
		streams: mocks.NewMockStreamOpener(ctrl),
		linker:  mocks.NewMockLinker(ctrl),
		db:      mocks.NewMockDatabase(ctrl),
		outDir:  t.TempDir(),
	}
	f.fetcher = fetcher.New(f.streams, f.linker, log, telemetry.NewNoOpTelemetry())
	return f
}

func (f *fixture) opts() domain.FetchOptions {
	return domain.FetchOptions{OutputDir: f.outDir}
}

func newPackage(name, version string, size int64, repos ...int) *domain.Package {
	return &domain.Package{
		Name:    domain.NewInternedString(name),
		Version: domain.NewInternedString(version),
		Size:    size,
		Repos:   domain.NewRepoSet(repos...),
	}
}

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func TestFetch_Success(t *testing.T) {
	f := newFixture(t)
	pkg := newPackage("busybox", "1.36.1-r2", 7, 0)

	f.db.EXPECT().RepositoryURL(0).Return(repoURL, nil)
	f.streams.EXPECT().Open(gomock.Any(), repoURL+"/busybox-1.36.1-r2.apk").Return(body("payload"), nil)

	require.NoError(t, f.fetcher.Fetch(t.Context(), f.db, pkg, f.opts()))

	data, err := os.ReadFile(filepath.Join(f.outDir, "busybox-1.36.1-r2.apk"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	info, err := os.Stat(filepath.Join(f.outDir, "busybox-1.36.1-r2.apk"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm()&os.FileMode(domain.FilePerm))
}

func TestFetch_UsesFirstRepository(t *testing.T) {
	f := newFixture(t)
	pkg := newPackage("musl", "1.2.5-r0", 4, 5, 2, 9)

	f.db.EXPECT().RepositoryURL(2).Return("file:///srv/mirror", nil)
	f.streams.EXPECT().Open(gomock.Any(), "file:///srv/mirror/musl-1.2.5-r0.apk").Return(body("musl"), nil)

	require.NoError(t, f.fetcher.Fetch(t.Context(), f.db, pkg, f.opts()))
}

func TestFetch_SkipsExistingWithDeclaredSize(t *testing.T) {
	f := newFixture(t)
	pkg := newPackage("zlib", "1.3.1-r0", 5, 0)
	require.NoError(t, os.WriteFile(filepath.Join(f.outDir, "zlib-1.3.1-r0.apk"), []byte("12345"), 0o600))

	// No RepositoryURL or Open expectations: any call fails the test.
	require.NoError(t, f.fetcher.Fetch(t.Context(), f.db, pkg, f.opts()))
}

func TestFetch_SkipMarksVertexCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	vertex := mocks.NewMockVertex(ctrl)
	tel := mocks.NewMockTelemetry(ctrl)
	tel.EXPECT().Record(gomock.Any(), "zlib-1.3.1-r0").
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		})
	gomock.InOrder(
		vertex.EXPECT().Cached(),
		vertex.EXPECT().Complete(nil),
	)

	outDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "zlib-1.3.1-r0.apk"), []byte("12345"), 0o600))

	fx := fetcher.New(mocks.NewMockStreamOpener(ctrl), mocks.NewMockLinker(ctrl), log, tel)
	err := fx.Fetch(t.Context(), mocks.NewMockDatabase(ctrl), newPackage("zlib", "1.3.1-r0", 5, 0), domain.FetchOptions{OutputDir: outDir})
	require.NoError(t, err)
}

func TestFetch_RefetchesWhenSizeDiffers(t *testing.T) {
	f := newFixture(t)
	pkg := newPackage("zlib", "1.3.1-r0", 5, 0)
	dest := filepath.Join(f.outDir, "zlib-1.3.1-r0.apk")
	require.NoError(t, os.WriteFile(dest, []byte("stale-and-long"), 0o600))

	f.db.EXPECT().RepositoryURL(0).Return(repoURL, nil)
	f.streams.EXPECT().Open(gomock.Any(), gomock.Any()).Return(body("fresh"), nil)

	require.NoError(t, f.fetcher.Fetch(t.Context(), f.db, pkg, f.opts()))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
}

func TestFetch_ShortStreamRemovesFile(t *testing.T) {
	f := newFixture(t)
	pkg := newPackage("busybox", "1.36.1-r2", 1024, 0)

	f.db.EXPECT().RepositoryURL(0).Return(repoURL, nil)
	f.streams.EXPECT().Open(gomock.Any(), gomock.Any()).Return(body("short"), nil)

	err := f.fetcher.Fetch(t.Context(), f.db, pkg, f.opts())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDownloadIncomplete)
	assert.Contains(t, err.Error(), "unable to download")

	_, statErr := os.Stat(filepath.Join(f.outDir, "busybox-1.36.1-r2.apk"))
	assert.True(t, os.IsNotExist(statErr), "partial file must be removed")
}

func TestFetch_CopiesAtMostDeclaredSize(t *testing.T) {
	f := newFixture(t)
	pkg := newPackage("busybox", "1.36.1-r2", 4, 0)

	f.db.EXPECT().RepositoryURL(0).Return(repoURL, nil)
	f.streams.EXPECT().Open(gomock.Any(), gomock.Any()).Return(body("payload-with-trailer"), nil)

	require.NoError(t, f.fetcher.Fetch(t.Context(), f.db, pkg, f.opts()))

	data, err := os.ReadFile(filepath.Join(f.outDir, "busybox-1.36.1-r2.apk"))
	require.NoError(t, err)
	assert.Equal(t, "payl", string(data))
}

func TestFetch_StreamOpenFailureRemovesFile(t *testing.T) {
	f := newFixture(t)
	pkg := newPackage("busybox", "1.36.1-r2", 10, 0)

	f.db.EXPECT().RepositoryURL(0).Return(repoURL, nil)
	f.streams.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, domain.ErrStreamOpenFailed)

	err := f.fetcher.Fetch(t.Context(), f.db, pkg, f.opts())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDownloadIncomplete)
	assert.ErrorIs(t, err, domain.ErrStreamOpenFailed)

	entries, err := os.ReadDir(f.outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetch_NoRepository(t *testing.T) {
	f := newFixture(t)
	pkg := newPackage("orphan", "1.0", 10)

	err := f.fetcher.Fetch(t.Context(), f.db, pkg, f.opts())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoRepositoryFound)
	assert.Contains(t, err.Error(), "orphan-1.0")
}

func TestFetch_Simulate(t *testing.T) {
	f := newFixture(t)
	pkg := newPackage("busybox", "1.36.1-r2", 10, 0)

	opts := f.opts()
	opts.Simulate = true
	opts.Link = true

	require.NoError(t, f.fetcher.Fetch(t.Context(), f.db, pkg, opts))

	entries, err := os.ReadDir(f.outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetch_SimulateStillRequiresRepository(t *testing.T) {
	f := newFixture(t)
	opts := f.opts()
	opts.Simulate = true

	err := f.fetcher.Fetch(t.Context(), f.db, newPackage("orphan", "1.0", 1), opts)
	assert.ErrorIs(t, err, domain.ErrNoRepositoryFound)
}

func TestFetch_LinkSkipsStream(t *testing.T) {
	f := newFixture(t)
	pkg := newPackage("zlib", "1.3.1-r0", 5, 0)

	f.db.EXPECT().RepositoryURL(0).Return("file:///srv/mirror/main", nil)
	f.linker.EXPECT().
		Link("/srv/mirror/main/zlib-1.3.1-r0.apk", filepath.Join(f.outDir, "zlib-1.3.1-r0.apk")).
		Return(domain.LinkResult{Status: domain.Linked})

	opts := f.opts()
	opts.Link = true
	require.NoError(t, f.fetcher.Fetch(t.Context(), f.db, pkg, opts))
}

func TestFetch_LinkFailureFallsBackToCopy(t *testing.T) {
	f := newFixture(t)
	pkg := newPackage("zlib", "1.3.1-r0", 5, 0)

	f.db.EXPECT().RepositoryURL(0).Return("/srv/mirror/main", nil)
	f.linker.EXPECT().Link(gomock.Any(), gomock.Any()).
		Return(domain.LinkResult{Status: domain.LinkFailed, Err: errors.New("cross-device link")})
	f.streams.EXPECT().Open(gomock.Any(), "/srv/mirror/main/zlib-1.3.1-r0.apk").Return(body("zlib!"), nil)

	opts := f.opts()
	opts.Link = true
	require.NoError(t, f.fetcher.Fetch(t.Context(), f.db, pkg, opts))
}

func TestFetch_LinkNotApplicableForRemote(t *testing.T) {
	f := newFixture(t)
	pkg := newPackage("zlib", "1.3.1-r0", 5, 0)

	// The linker mock has no expectations: it must not be called.
	f.db.EXPECT().RepositoryURL(0).Return(repoURL, nil)
	f.streams.EXPECT().Open(gomock.Any(), gomock.Any()).Return(body("zlib!"), nil)

	opts := f.opts()
	opts.Link = true
	require.NoError(t, f.fetcher.Fetch(t.Context(), f.db, pkg, opts))
}

func TestFetch_Stdout(t *testing.T) {
	f := newFixture(t)
	pkg := newPackage("musl", "1.2.5-r0", 4, 0)

	var out bytes.Buffer
	f.fetcher.SetStdout(&out)

	f.db.EXPECT().RepositoryURL(0).Return(repoURL, nil)
	f.streams.EXPECT().Open(gomock.Any(), gomock.Any()).Return(body("musl"), nil)

	opts := f.opts()
	opts.Stdout = true
	opts.Link = true
	require.NoError(t, f.fetcher.Fetch(t.Context(), f.db, pkg, opts))

	assert.Equal(t, "musl", out.String())
	entries, err := os.ReadDir(f.outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetch_StdoutShortStream(t *testing.T) {
	f := newFixture(t)
	pkg := newPackage("musl", "1.2.5-r0", 40, 0)
	f.fetcher.SetStdout(io.Discard)

	f.db.EXPECT().RepositoryURL(0).Return(repoURL, nil)
	f.streams.EXPECT().Open(gomock.Any(), gomock.Any()).Return(body("musl"), nil)

	opts := f.opts()
	opts.Stdout = true
	err := f.fetcher.Fetch(t.Context(), f.db, pkg, opts)
	assert.ErrorIs(t, err, domain.ErrDownloadIncomplete)
}

func TestFetch_DestinationCreateFailure(t *testing.T) {
	f := newFixture(t)
	pkg := newPackage("musl", "1.2.5-r0", 4, 0)

	f.db.EXPECT().RepositoryURL(0).Return(repoURL, nil)

	opts := f.opts()
	opts.OutputDir = filepath.Join(f.outDir, "missing", "dir")
	err := f.fetcher.Fetch(t.Context(), f.db, pkg, opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDestinationCreateFailed)
}

func TestFetch_InvalidArtifactName(t *testing.T) {
	f := newFixture(t)

	err := f.fetcher.Fetch(t.Context(), f.db, newPackage("../evil", "1.0", 1, 0), f.opts())
	assert.ErrorIs(t, err, domain.ErrInvalidArtifactName)
}

func TestFetch_Verbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		infos     int
		sourceLog int
	}{
		{name: "quiet", verbosity: -1, infos: 0, sourceLog: 0},
		{name: "default", verbosity: 0, infos: 1, sourceLog: 0},
		{name: "verbose", verbosity: 1, infos: 1, sourceLog: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := mocks.NewMockLogger(ctrl)
			log.EXPECT().Debug(gomock.Any()).AnyTimes()
			log.EXPECT().Info("Downloading musl-1.2.5-r0").Times(tt.infos)

			vertex := mocks.NewMockVertex(ctrl)
			vertex.EXPECT().Log(domain.LogLevelInfo, "Downloading musl-1.2.5-r0").Times(tt.infos)
			vertex.EXPECT().Log(domain.LogLevelDebug, "source "+repoURL+"/musl-1.2.5-r0.apk").Times(tt.sourceLog)
			vertex.EXPECT().Complete(nil)
			tel := mocks.NewMockTelemetry(ctrl)
			tel.EXPECT().Record(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
					return ctx, vertex
				})

			streams := mocks.NewMockStreamOpener(ctrl)
			streams.EXPECT().Open(gomock.Any(), gomock.Any()).Return(body("musl"), nil)
			db := mocks.NewMockDatabase(ctrl)
			db.EXPECT().RepositoryURL(0).Return(repoURL, nil)

			fx := fetcher.New(streams, mocks.NewMockLinker(ctrl), log, tel)
			opts := domain.FetchOptions{OutputDir: t.TempDir(), Verbosity: tt.verbosity}
			require.NoError(t, fx.Fetch(t.Context(), db, newPackage("musl", "1.2.5-r0", 4, 0), opts))
		})
	}
}
