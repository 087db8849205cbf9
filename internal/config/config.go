package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	VersionsDirKey            = "versions.dir"
	ScratchRootKey            = "scratch.root"
	PackageManagerKey         = "package_manager"
	FallbackPackageManagerKey = "fallback_package_manager"
	RunFlagsKey               = "run.flags"
	RunEnvKey                 = "run.env"
	StateDirKey               = "state.dir"
	ForeignSessionTTLKey      = "scratch.foreign_ttl"

	envPrefix  = "FIDDLE"
	configName = "config"
	configType = "toml"
	configDir  = ".config/fiddle"
	stateDir   = ".fiddle"
)

type Config struct {
	VersionsDir            string
	ScratchRoot            string
	PackageManager         string
	FallbackPackageManager string
	RunFlags               []string
	RunEnv                 map[string]string
	StateDir               string
	ForeignSessionTTL      time.Duration

	// Viper is shared with adapters that read their own keys.
	Viper *viper.Viper
}

type LoadOptions struct {
	// ConfigFile overrides the ~/.config/fiddle/config.toml lookup.
	ConfigFile string
	// EnvFile is loaded into the process environment when present.
	// Defaults to .env in the working directory.
	EnvFile string
}

// Load resolves configuration from defaults, the config file, a .env file
// and FIDDLE_* environment variables, in increasing precedence.
func Load(opts LoadOptions) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(VersionsDirKey, filepath.Join(homeDir, stateDir, "versions"))
	v.SetDefault(ScratchRootKey, filepath.Join(os.TempDir(), "fiddle"))
	v.SetDefault(PackageManagerKey, "npm")
	v.SetDefault(FallbackPackageManagerKey, "yarn")
	v.SetDefault(StateDirKey, filepath.Join(homeDir, stateDir))
	v.SetDefault(RunFlagsKey, []string{})
	v.SetDefault(ForeignSessionTTLKey, "24h")

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		VersionsDir:            expandHome(v.GetString(VersionsDirKey), homeDir),
		ScratchRoot:            expandHome(v.GetString(ScratchRootKey), homeDir),
		PackageManager:         strings.ToLower(strings.TrimSpace(v.GetString(PackageManagerKey))),
		FallbackPackageManager: strings.ToLower(strings.TrimSpace(v.GetString(FallbackPackageManagerKey))),
		RunFlags:               v.GetStringSlice(RunFlagsKey),
		RunEnv:                 envMap(v.GetStringMapString(RunEnvKey)),
		StateDir:               expandHome(v.GetString(StateDirKey), homeDir),
		ForeignSessionTTL:      v.GetDuration(ForeignSessionTTLKey),
		Viper:                  v,
	}
	v.Set(StateDirKey, cfg.StateDir)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	for key, manager := range map[string]string{
		PackageManagerKey:         c.PackageManager,
		FallbackPackageManagerKey: c.FallbackPackageManager,
	} {
		switch manager {
		case "npm", "yarn":
		case "":
			if key == PackageManagerKey {
				return fmt.Errorf("%s is empty", key)
			}
		default:
			return fmt.Errorf("%s: unsupported package manager %q", key, manager)
		}
	}

	if c.VersionsDir == "" {
		return fmt.Errorf("%s is empty", VersionsDirKey)
	}

	return nil
}

func loadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

// envMap upper-cases keys because viper lower-cases every map key it reads.
func envMap(raw map[string]string) map[string]string {
	if len(raw) == 0 {
		return nil
	}

	env := make(map[string]string, len(raw))
	for key, value := range raw {
		env[strings.ToUpper(key)] = value
	}
	return env
}

func expandHome(path string, homeDir string) string {
	path = strings.TrimSpace(path)
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
