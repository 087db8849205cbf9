package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"FIDDLE_VERSIONS_DIR",
		"FIDDLE_SCRATCH_ROOT",
		"FIDDLE_PACKAGE_MANAGER",
		"FIDDLE_FALLBACK_PACKAGE_MANAGER",
		"FIDDLE_STATE_DIR",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return home
}

func writeConfig(t *testing.T, home string, body string) {
	t.Helper()

	dir := filepath.Join(home, ".config", "fiddle")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(LoadOptions{EnvFile: filepath.Join(home, "missing.env")})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".fiddle", "versions"), cfg.VersionsDir)
	assert.Equal(t, filepath.Join(os.TempDir(), "fiddle"), cfg.ScratchRoot)
	assert.Equal(t, "npm", cfg.PackageManager)
	assert.Equal(t, "yarn", cfg.FallbackPackageManager)
	assert.Equal(t, filepath.Join(home, ".fiddle"), cfg.StateDir)
	assert.Equal(t, 24*time.Hour, cfg.ForeignSessionTTL)
	assert.Empty(t, cfg.RunFlags)
	assert.Equal(t, cfg.StateDir, cfg.Viper.GetString(StateDirKey))
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `package_manager = "yarn"
fallback_package_manager = "npm"

[versions]
dir = "~/electron/versions"

[run]
flags = ["--enable-logging", "--inspect"]

[run.env]
ELECTRON_ENABLE_LOGGING = "1"
`)

	cfg, err := Load(LoadOptions{EnvFile: filepath.Join(home, "missing.env")})
	require.NoError(t, err)

	assert.Equal(t, "yarn", cfg.PackageManager)
	assert.Equal(t, "npm", cfg.FallbackPackageManager)
	assert.Equal(t, filepath.Join(home, "electron", "versions"), cfg.VersionsDir)
	assert.Equal(t, []string{"--enable-logging", "--inspect"}, cfg.RunFlags)
	assert.Equal(t, map[string]string{"ELECTRON_ENABLE_LOGGING": "1"}, cfg.RunEnv)
}

func TestLoadEnvironmentOverridesConfigFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `[versions]
dir = "/from/config"
`)
	t.Setenv("FIDDLE_VERSIONS_DIR", "/from/env")

	cfg, err := Load(LoadOptions{EnvFile: filepath.Join(home, "missing.env")})
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.VersionsDir)
}

func TestLoadReadsDotEnvFile(t *testing.T) {
	home := isolate(t)
	envFile := filepath.Join(home, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FIDDLE_SCRATCH_ROOT=/srv/scratch\n"), 0o600))

	cfg, err := Load(LoadOptions{EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "/srv/scratch", cfg.ScratchRoot)
}

func TestLoadRejectsUnknownPackageManager(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `package_manager = "pnpm"`)

	_, err := Load(LoadOptions{EnvFile: filepath.Join(home, "missing.env")})
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported package manager")
}

func TestLoadMalformedConfigFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `package_manager = [`)

	_, err := Load(LoadOptions{EnvFile: filepath.Join(home, "missing.env")})
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config file")
}

func TestLoadExplicitConfigFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[state]
dir = "/var/lib/fiddle"
`), 0o644))

	cfg, err := Load(LoadOptions{ConfigFile: path, EnvFile: filepath.Join(home, "missing.env")})
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/fiddle", cfg.StateDir)
}

func TestExpandHome(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/home/me", expandHome("~", "/home/me"))
	assert.Equal(t, filepath.Join("/home/me", "x"), expandHome("~/x", "/home/me"))
	assert.Equal(t, "/abs", expandHome(" /abs ", "/home/me"))
}
