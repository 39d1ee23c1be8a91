package config_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgfetch/internal/adapters/config"
	"go.trai.ch/pkgfetch/internal/core/domain"
	"go.trai.ch/pkgfetch/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repositories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	path := writeFile(t, `
repositories:
  - https://dl.example.org/v3.20/main/
  - ""
  - file:///srv/mirror/community
  - https://dl.example.org/v3.20/main
`)

	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://dl.example.org/v3.20/main",
		"file:///srv/mirror/community",
	}, cfg.Repositories)
}

func TestLoad_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any())

	cfg, err := config.NewLoader(log).Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Repositories)
}

func TestLoad_InvalidYAML(t *testing.T) {
	ctrl := gomock.NewController(t)
	path := writeFile(t, "repositories: [unterminated\n")

	_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoad_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)

	// A directory cannot be read as a file.
	_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestParse_TooManyRepositories(t *testing.T) {
	var b strings.Builder
	b.WriteString("repositories:\n")
	for i := range domain.MaxRepositories + 1 {
		fmt.Fprintf(&b, "  - https://mirror%d.example.org/main\n", i)
	}

	_, err := config.Parse("repositories.yaml", []byte(b.String()))
	assert.ErrorIs(t, err, domain.ErrTooManyRepositories)
}
