package local

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/bnema/fiddle-runner/internal/ports"
)

// Provider resolves runtime binaries unpacked below a versions directory,
// one subdirectory per version.
type Provider struct {
	dir  string
	goos string
}

var _ ports.BinaryProvider = (*Provider)(nil)

func NewProvider(dir string) (*Provider, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("versions directory is empty")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve versions directory: %w", err)
	}

	return &Provider{dir: filepath.Clean(abs), goos: runtime.GOOS}, nil
}

func (p *Provider) Dir() string {
	return p.dir
}

func (p *Provider) IsDownloaded(version string) bool {
	_, err := p.ExecutablePath(version)
	return err == nil
}

func (p *Provider) ExecutablePath(version string) (string, error) {
	version = normalizeVersion(version)
	if version == "" || strings.ContainsAny(version, `/\`) || version == ".." {
		return "", fmt.Errorf("%w: invalid version %q", domain.ErrVersionNotFound, version)
	}

	path := filepath.Join(p.dir, version, executableName(p.goos))
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrVersionNotFound, version)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", domain.ErrVersionNotFound, path)
	}

	return path, nil
}

// Versions lists the downloaded versions in lexical order.
func (p *Provider) Versions() ([]string, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read versions directory: %w", err)
	}

	var versions []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if p.IsDownloaded(entry.Name()) {
			versions = append(versions, entry.Name())
		}
	}
	sort.Strings(versions)

	return versions, nil
}

func normalizeVersion(version string) string {
	return strings.TrimPrefix(strings.TrimSpace(version), "v")
}

func executableName(goos string) string {
	switch goos {
	case "darwin":
		return filepath.Join("Electron.app", "Contents", "MacOS", "Electron")
	case "windows":
		return "electron.exe"
	default:
		return "electron"
	}
}
