package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/bnema/fiddle-runner/internal/ports"
	"github.com/google/uuid"
)

const (
	dirPrefix = "fiddle-"
	dirMode   = 0o700
	fileMode  = 0o600
)

var errOutsideRoot = errors.New("path is outside the scratch root")

// Store writes snippets into fresh directories below a single root.
type Store struct {
	root string
}

var _ ports.ScratchStore = (*Store)(nil)

// NewStore uses the OS temp directory when root is empty.
func NewStore(root string) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		root = filepath.Join(os.TempDir(), "fiddle")
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve scratch root: %w", err)
	}

	return &Store{root: filepath.Clean(abs)}, nil
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) SaveToTemp(ctx context.Context, snippet domain.Snippet) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.root, dirMode); err != nil {
		return "", fmt.Errorf("create scratch root: %w", err)
	}

	dir := filepath.Join(s.root, dirPrefix+uuid.NewString())
	if err := os.Mkdir(dir, dirMode); err != nil {
		return "", fmt.Errorf("create scratch directory: %w", err)
	}

	if err := s.writeFiles(ctx, dir, snippet); err != nil {
		_ = os.RemoveAll(dir)
		return "", err
	}

	return dir, nil
}

func (s *Store) writeFiles(ctx context.Context, dir string, snippet domain.Snippet) error {
	for _, name := range snippet.FileNames() {
		if err := ctx.Err(); err != nil {
			return err
		}

		target, err := within(dir, name)
		if err != nil {
			return fmt.Errorf("snippet file %q: %w", name, err)
		}
		if err := os.MkdirAll(filepath.Dir(target), dirMode); err != nil {
			return fmt.Errorf("create directory for %q: %w", name, err)
		}
		if err := os.WriteFile(target, []byte(snippet.File(name)), fileMode); err != nil {
			return fmt.Errorf("write %q: %w", name, err)
		}
	}

	if _, ok := snippet.Files[domain.FilePackage]; ok {
		return nil
	}

	data, err := packageManifest(snippet.Name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, domain.FilePackage), data, fileMode); err != nil {
		return fmt.Errorf("write %s: %w", domain.FilePackage, err)
	}

	return nil
}

// Cleanup removes dir. Missing directories are not an error.
func (s *Store) Cleanup(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve scratch directory: %w", err)
	}
	abs = filepath.Clean(abs)

	rel, err := filepath.Rel(s.root, abs)
	if err != nil || rel == "." || escapes(rel) {
		return fmt.Errorf("cleanup %s: %w", dir, errOutsideRoot)
	}

	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("remove scratch directory: %w", err)
	}

	return nil
}

func within(dir string, name string) (string, error) {
	if filepath.IsAbs(name) {
		return "", errOutsideRoot
	}

	target := filepath.Join(dir, filepath.Clean(name))
	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == "." || escapes(rel) {
		return "", errOutsideRoot
	}

	return target, nil
}

func escapes(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

type manifest struct {
	Name            string            `json:"name"`
	ProductName     string            `json:"productName"`
	Version         string            `json:"version"`
	Main            string            `json:"main"`
	Scripts         map[string]string `json:"scripts"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func packageManifest(name string) ([]byte, error) {
	slug := slugify(name)

	data, err := json.MarshalIndent(manifest{
		Name:        slug,
		ProductName: name,
		Version:     "1.0.0",
		Main:        domain.FileMain,
		Scripts: map[string]string{
			"start":   "electron-forge start",
			"package": "electron-forge package",
			"make":    "electron-forge make",
		},
		DevDependencies: map[string]string{
			"@electron-forge/cli": "^7.0.0",
		},
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", domain.FilePackage, err)
	}

	return append(data, '\n'), nil
}

func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "fiddle"
	}
	return slug
}
