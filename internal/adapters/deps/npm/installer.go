package npm

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/bnema/fiddle-runner/internal/ports"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	ManagerNPM  = "npm"
	ManagerYarn = "yarn"

	defaultCacheSize = 128
)

var ErrUnavailable = errors.New("package manager command unavailable")

type runFunc func(ctx context.Context, dir string, name string, args ...string) (stdout string, stderr string, err error)

type lookPathFunc func(name string) (string, error)

type Options struct {
	// Manager is npm or yarn. Defaults to npm.
	Manager   string
	CacheSize int
}

// Installer drives a node package manager found on PATH.
type Installer struct {
	manager  string
	run      runFunc
	lookPath lookPathFunc
	scans    *lru.Cache[[sha256.Size]byte, []string]
}

var _ ports.DependencyInstaller = (*Installer)(nil)

func NewInstaller(opts Options) (*Installer, error) {
	manager := strings.ToLower(strings.TrimSpace(opts.Manager))
	if manager == "" {
		manager = ManagerNPM
	}
	if manager != ManagerNPM && manager != ManagerYarn {
		return nil, fmt.Errorf("unsupported package manager %q", opts.Manager)
	}

	size := opts.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	scans, err := lru.New[[sha256.Size]byte, []string](size)
	if err != nil {
		return nil, fmt.Errorf("create module scan cache: %w", err)
	}

	return &Installer{
		manager:  manager,
		run:      runCommand,
		lookPath: exec.LookPath,
		scans:    scans,
	}, nil
}

func (i *Installer) Manager() string {
	return i.manager
}

func (i *Installer) IsPackageManagerInstalled(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}

	_, err := i.lookPath(i.manager)
	return err == nil
}

// FindModules lists the third-party modules the snippet's editor sources
// require or import, without duplicates.
func (i *Installer) FindModules(snippet domain.Snippet) ([]string, error) {
	sources := snippet.EditorSources()
	key := sha256.Sum256([]byte(strings.Join(sources, "\x00")))
	if cached, ok := i.scans.Get(key); ok {
		return append([]string(nil), cached...), nil
	}

	modules := scanModules(sources)
	i.scans.Add(key, modules)

	return append([]string(nil), modules...), nil
}

func (i *Installer) InstallModules(ctx context.Context, modules []string, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(modules) == 0 {
		return nil
	}

	args := append(i.installArgs(), modules...)
	_, stderr, err := i.run(ctx, dir, i.manager, args...)
	if err != nil {
		return formatError(i.manager, strings.Join(args, " "), err, stderr)
	}

	return nil
}

// RunScript runs a package.json script in dir. When dir has a manifest but no
// node_modules yet, the manifest's dependencies are installed first.
func (i *Installer) RunScript(ctx context.Context, script string, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := i.installManifest(ctx, dir); err != nil {
		return err
	}

	_, stderr, err := i.run(ctx, dir, i.manager, "run", script)
	if err != nil {
		return formatError(i.manager, "run "+script, err, stderr)
	}

	return nil
}

func (i *Installer) installManifest(ctx context.Context, dir string) error {
	if !exists(filepath.Join(dir, "package.json")) || exists(filepath.Join(dir, "node_modules")) {
		return nil
	}

	_, stderr, err := i.run(ctx, dir, i.manager, "install")
	if err != nil {
		return formatError(i.manager, "install", err, stderr)
	}

	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (i *Installer) installArgs() []string {
	if i.manager == ManagerYarn {
		return []string{"add"}
	}
	return []string{"install", "-S"}
}

func runCommand(ctx context.Context, dir string, name string, args ...string) (string, string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate %s command: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(manager string, op string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("%s %s: %w", manager, op, err)
	}

	return fmt.Errorf("%s %s: %w: %s", manager, op, err, lastLine(stderr))
}

func lastLine(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.LastIndexByte(text, '\n'); idx >= 0 {
		return strings.TrimSpace(text[idx+1:])
	}
	return text
}
