package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/fiddle-runner/internal/adapters/deps/npm"
	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/bnema/fiddle-runner/internal/ports"
)

// Installer prefers the primary package manager and falls back to the
// secondary one when the primary is missing or fails.
type Installer struct {
	primary  ports.DependencyInstaller
	fallback ports.DependencyInstaller
}

var _ ports.DependencyInstaller = (*Installer)(nil)

var (
	errNilPrimaryInstaller  = errors.New("primary installer is nil")
	errNilFallbackInstaller = errors.New("fallback installer is nil")
)

func NewInstaller(primary ports.DependencyInstaller, fallback ports.DependencyInstaller) *Installer {
	installer, err := NewInstallerChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return installer
}

func NewInstallerChecked(primary ports.DependencyInstaller, fallback ports.DependencyInstaller) (*Installer, error) {
	if primary == nil {
		return nil, errNilPrimaryInstaller
	}
	if fallback == nil {
		return nil, errNilFallbackInstaller
	}

	return &Installer{primary: primary, fallback: fallback}, nil
}

// NewManagers chains two npm-style managers, e.g. npm then yarn.
func NewManagers(primary string, fallback string) (*Installer, error) {
	first, err := npm.NewInstaller(npm.Options{Manager: primary})
	if err != nil {
		return nil, err
	}
	second, err := npm.NewInstaller(npm.Options{Manager: fallback})
	if err != nil {
		return nil, err
	}

	return NewInstallerChecked(first, second)
}

func (c *Installer) IsPackageManagerInstalled(ctx context.Context) bool {
	return c.primary.IsPackageManagerInstalled(ctx) || c.fallback.IsPackageManagerInstalled(ctx)
}

func (c *Installer) FindModules(snippet domain.Snippet) ([]string, error) {
	return c.primary.FindModules(snippet)
}

func (c *Installer) InstallModules(ctx context.Context, modules []string, dir string) error {
	return c.do(ctx, "install", func(installer ports.DependencyInstaller) error {
		return installer.InstallModules(ctx, modules, dir)
	})
}

func (c *Installer) RunScript(ctx context.Context, script string, dir string) error {
	return c.do(ctx, "run "+script, func(installer ports.DependencyInstaller) error {
		return installer.RunScript(ctx, script, dir)
	})
}

func (c *Installer) do(ctx context.Context, op string, call func(ports.DependencyInstaller) error) error {
	if !c.primary.IsPackageManagerInstalled(ctx) {
		if !c.fallback.IsPackageManagerInstalled(ctx) {
			return fmt.Errorf("%s: %w", op, domain.ErrPackageManagerUnavailable)
		}
		return call(c.fallback)
	}

	err := call(c.primary)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) || !c.fallback.IsPackageManagerInstalled(ctx) {
		return err
	}

	fallbackErr := call(c.fallback)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary package manager %s failed: %w; fallback package manager %s failed: %w", op, err, op, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
