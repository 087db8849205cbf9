package local

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installVersion(t *testing.T, dir string, version string) string {
	t.Helper()

	path := filepath.Join(dir, version, "electron")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	return path
}

func newLinuxProvider(t *testing.T, dir string) *Provider {
	t.Helper()

	provider, err := NewProvider(dir)
	require.NoError(t, err)
	provider.goos = "linux"
	return provider
}

func TestExecutablePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	want := installVersion(t, dir, "2.0.2")
	provider := newLinuxProvider(t, dir)

	got, err := provider.ExecutablePath("2.0.2")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = provider.ExecutablePath("v2.0.2")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.True(t, provider.IsDownloaded("2.0.2"))
}

func TestExecutablePathMissingVersion(t *testing.T) {
	t.Parallel()

	provider := newLinuxProvider(t, t.TempDir())

	_, err := provider.ExecutablePath("9.9.9")
	require.ErrorIs(t, err, domain.ErrVersionNotFound)
	assert.False(t, provider.IsDownloaded("9.9.9"))
}

func TestExecutablePathRejectsInvalidVersions(t *testing.T) {
	t.Parallel()

	provider := newLinuxProvider(t, t.TempDir())

	for _, version := range []string{"", "  ", "../2.0.2", "..", `a\b`} {
		_, err := provider.ExecutablePath(version)
		require.ErrorIs(t, err, domain.ErrVersionNotFound, version)
	}
}

func TestVersionsListsOnlyDownloaded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	installVersion(t, dir, "3.1.0")
	installVersion(t, dir, "2.0.2")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "4.0.0-partial"), 0o755))

	provider := newLinuxProvider(t, dir)

	versions, err := provider.Versions()
	require.NoError(t, err)
	assert.Equal(t, []string{"2.0.2", "3.1.0"}, versions)
}

func TestVersionsWithMissingDirectory(t *testing.T) {
	t.Parallel()

	provider := newLinuxProvider(t, filepath.Join(t.TempDir(), "missing"))

	versions, err := provider.Versions()
	require.NoError(t, err)
	assert.Empty(t, versions)
}

func TestExecutableName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "electron", executableName("linux"))
	assert.Equal(t, "electron.exe", executableName("windows"))
	assert.Equal(t, filepath.Join("Electron.app", "Contents", "MacOS", "Electron"), executableName("darwin"))
}

func TestNewProviderRejectsEmptyDir(t *testing.T) {
	t.Parallel()

	_, err := NewProvider(" ")
	require.Error(t, err)
}
