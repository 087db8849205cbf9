package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/fiddle-runner/internal/domain"
)

const maxFileSize = 1 << 20

var ErrEmptySnippet = errors.New("snippet directory has no files")

// Load reads the top-level files of dir into a snippet. Hidden files and
// directories are skipped.
func Load(dir string) (domain.Snippet, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return domain.Snippet{}, fmt.Errorf("resolve snippet directory: %w", err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return domain.Snippet{}, fmt.Errorf("read snippet directory: %w", err)
	}

	files := map[string]string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return domain.Snippet{}, fmt.Errorf("stat %s: %w", name, err)
		}
		if info.Size() > maxFileSize {
			return domain.Snippet{}, fmt.Errorf("snippet file %s is larger than %d bytes", name, maxFileSize)
		}

		data, err := os.ReadFile(filepath.Join(abs, name))
		if err != nil {
			return domain.Snippet{}, fmt.Errorf("read %s: %w", name, err)
		}
		files[name] = string(data)
	}

	if len(files) == 0 {
		return domain.Snippet{}, fmt.Errorf("%s: %w", abs, ErrEmptySnippet)
	}

	return domain.NewSnippet(filepath.Base(abs), files), nil
}
