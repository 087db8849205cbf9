package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/fiddle-runner/internal/domain"
	portmocks "github.com/bnema/fiddle-runner/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInstallUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockDependencyInstaller(t)
	fallback := portmocks.NewMockDependencyInstaller(t)
	installer := NewInstaller(primary, fallback)

	primary.EXPECT().IsPackageManagerInstalled(mock.Anything).Return(true).Once()
	primary.EXPECT().InstallModules(mock.Anything, []string{"say"}, "/tmp/fiddle-1").Return(nil).Once()

	require.NoError(t, installer.InstallModules(context.Background(), []string{"say"}, "/tmp/fiddle-1"))
}

func TestInstallFallsBackWhenPrimaryMissing(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockDependencyInstaller(t)
	fallback := portmocks.NewMockDependencyInstaller(t)
	installer := NewInstaller(primary, fallback)

	primary.EXPECT().IsPackageManagerInstalled(mock.Anything).Return(false).Once()
	fallback.EXPECT().IsPackageManagerInstalled(mock.Anything).Return(true).Once()
	fallback.EXPECT().InstallModules(mock.Anything, []string{"say"}, "/tmp/fiddle-1").Return(nil).Once()

	require.NoError(t, installer.InstallModules(context.Background(), []string{"say"}, "/tmp/fiddle-1"))
}

func TestRunScriptFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockDependencyInstaller(t)
	fallback := portmocks.NewMockDependencyInstaller(t)
	installer := NewInstaller(primary, fallback)

	primary.EXPECT().IsPackageManagerInstalled(mock.Anything).Return(true).Once()
	primary.EXPECT().RunScript(mock.Anything, "make", "/tmp/fiddle-1").Return(errors.New("npm crashed")).Once()
	fallback.EXPECT().IsPackageManagerInstalled(mock.Anything).Return(true).Once()
	fallback.EXPECT().RunScript(mock.Anything, "make", "/tmp/fiddle-1").Return(nil).Once()

	require.NoError(t, installer.RunScript(context.Background(), "make", "/tmp/fiddle-1"))
}

func TestRunScriptReturnsCombinedErrorWhenBothFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockDependencyInstaller(t)
	fallback := portmocks.NewMockDependencyInstaller(t)
	installer := NewInstaller(primary, fallback)

	primary.EXPECT().IsPackageManagerInstalled(mock.Anything).Return(true).Once()
	primary.EXPECT().RunScript(mock.Anything, "package", "/tmp/fiddle-1").Return(errors.New("npm failed")).Once()
	fallback.EXPECT().IsPackageManagerInstalled(mock.Anything).Return(true).Once()
	fallback.EXPECT().RunScript(mock.Anything, "package", "/tmp/fiddle-1").Return(errors.New("yarn failed")).Once()

	err := installer.RunScript(context.Background(), "package", "/tmp/fiddle-1")
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary package manager")
	assert.ErrorContains(t, err, "fallback package manager")
	assert.ErrorContains(t, err, "npm failed")
	assert.ErrorContains(t, err, "yarn failed")
}

func TestInstallDoesNotFallBackOnCancellation(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockDependencyInstaller(t)
	fallback := portmocks.NewMockDependencyInstaller(t)
	installer := NewInstaller(primary, fallback)

	primary.EXPECT().IsPackageManagerInstalled(mock.Anything).Return(true).Once()
	primary.EXPECT().InstallModules(mock.Anything, []string{"say"}, "/tmp/fiddle-1").Return(context.Canceled).Once()

	err := installer.InstallModules(context.Background(), []string{"say"}, "/tmp/fiddle-1")
	require.ErrorIs(t, err, context.Canceled)
}

func TestInstallWithoutAnyManager(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockDependencyInstaller(t)
	fallback := portmocks.NewMockDependencyInstaller(t)
	installer := NewInstaller(primary, fallback)

	primary.EXPECT().IsPackageManagerInstalled(mock.Anything).Return(false)
	fallback.EXPECT().IsPackageManagerInstalled(mock.Anything).Return(false)

	assert.False(t, installer.IsPackageManagerInstalled(context.Background()))
	err := installer.InstallModules(context.Background(), []string{"say"}, "/tmp/fiddle-1")
	require.ErrorIs(t, err, domain.ErrPackageManagerUnavailable)
}

func TestFindModulesUsesPrimary(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockDependencyInstaller(t)
	fallback := portmocks.NewMockDependencyInstaller(t)
	installer := NewInstaller(primary, fallback)

	snippet := domain.NewSnippet("demo", map[string]string{domain.FileMain: "require('say')"})
	primary.EXPECT().FindModules(snippet).Return([]string{"say"}, nil).Once()

	modules, err := installer.FindModules(snippet)
	require.NoError(t, err)
	assert.Equal(t, []string{"say"}, modules)
}

func TestNewInstallerCheckedRejectsNil(t *testing.T) {
	t.Parallel()

	_, err := NewInstallerChecked(nil, portmocks.NewMockDependencyInstaller(t))
	require.ErrorIs(t, err, errNilPrimaryInstaller)

	_, err = NewInstallerChecked(portmocks.NewMockDependencyInstaller(t), nil)
	require.ErrorIs(t, err, errNilFallbackInstaller)
}
