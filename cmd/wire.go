package cmd

import (
	"fmt"
	"io"
	"time"

	localbinary "github.com/bnema/fiddle-runner/internal/adapters/binary/local"
	chaindeps "github.com/bnema/fiddle-runner/internal/adapters/deps/chain"
	npmdeps "github.com/bnema/fiddle-runner/internal/adapters/deps/npm"
	historyrender "github.com/bnema/fiddle-runner/internal/adapters/render/history"
	tomlrepo "github.com/bnema/fiddle-runner/internal/adapters/repo/toml"
	scratchfs "github.com/bnema/fiddle-runner/internal/adapters/scratch/fs"
	consolesink "github.com/bnema/fiddle-runner/internal/adapters/sink/console"
	snippetfs "github.com/bnema/fiddle-runner/internal/adapters/snippet/fs"
	"github.com/bnema/fiddle-runner/internal/application"
	"github.com/bnema/fiddle-runner/internal/config"
	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/bnema/fiddle-runner/internal/logging"
	"github.com/bnema/fiddle-runner/internal/ports"
	"github.com/bnema/fiddle-runner/internal/state"
	"github.com/bnema/fiddle-runner/internal/supervisor"
	"go.uber.org/zap"
)

type app struct {
	cfg             *config.Config
	logger          *zap.Logger
	runner          *application.Runner
	sink            *consolesink.Sink
	binaries        *localbinary.Provider
	history         ports.RunHistoryRepository
	historyRenderer func([]domain.RunRecord, historyrender.RenderOptions) (string, error)
	loadSnippet     func(dir string) (domain.Snippet, error)
	now             func() time.Time
}

type wireOptions struct {
	configFile string
	verbose    bool
	out        io.Writer
	errOut     io.Writer
}

func wireApp(opts wireOptions) (*app, error) {
	cfg, err := config.Load(config.LoadOptions{ConfigFile: opts.configFile})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(opts.verbose)
	if err != nil {
		return nil, err
	}

	scratch, err := scratchfs.NewStore(cfg.ScratchRoot)
	if err != nil {
		return nil, fmt.Errorf("wire scratch store: %w", err)
	}

	installer, err := wireInstaller(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire dependency installer: %w", err)
	}

	binaries, err := localbinary.NewProvider(cfg.VersionsDir)
	if err != nil {
		return nil, fmt.Errorf("wire binary provider: %w", err)
	}

	sessions, err := tomlrepo.NewSessionRepository(cfg.Viper)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	history, err := tomlrepo.NewHistoryRepository(cfg.Viper)
	if err != nil {
		return nil, fmt.Errorf("wire history repository: %w", err)
	}

	sink := consolesink.NewSink(opts.out, opts.errOut)
	runState := state.NewRunState()
	runState.Observe(func(running bool) {
		logger.Debug("run state changed", zap.Bool("running", running))
	})

	runner := application.NewRunner(application.Dependencies{
		Scratch:           scratch,
		Installer:         installer,
		Binaries:          binaries,
		Sink:              sink,
		Supervisor:        supervisor.New(sink, runState, logger.Named("supervisor")),
		RunState:          runState,
		Sessions:          sessions,
		History:           history,
		Clock:             ports.SystemClock{},
		Logger:            logger.Named("runner"),
		ForeignSessionTTL: cfg.ForeignSessionTTL,
	})

	return &app{
		cfg:             cfg,
		logger:          logger,
		runner:          runner,
		sink:            sink,
		binaries:        binaries,
		history:         history,
		historyRenderer: historyrender.Render,
		loadSnippet:     snippetfs.Load,
		now:             time.Now,
	}, nil
}

func wireInstaller(cfg *config.Config) (ports.DependencyInstaller, error) {
	if cfg.FallbackPackageManager == "" || cfg.FallbackPackageManager == cfg.PackageManager {
		installer, err := npmdeps.NewInstaller(npmdeps.Options{Manager: cfg.PackageManager})
		if err != nil {
			return nil, err
		}
		return installer, nil
	}

	installer, err := chaindeps.NewManagers(cfg.PackageManager, cfg.FallbackPackageManager)
	if err != nil {
		return nil, err
	}
	return installer, nil
}
