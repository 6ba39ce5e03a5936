// Package cli wires configuration, logging and theming for the corkboard commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/corkboard/internal/cli/styles"
	"github.com/bnema/corkboard/internal/domain/build"
	"github.com/bnema/corkboard/internal/infrastructure/config"
	"github.com/bnema/corkboard/internal/logging"
	"github.com/bnema/corkboard/internal/ui/canvas"
	"github.com/bnema/corkboard/internal/ui/input"
	uitheme "github.com/bnema/corkboard/internal/ui/theme"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	Themes    *uitheme.Manager
	BuildInfo build.Info

	// Context with logger
	ctx        context.Context
	logCleanup func()
	updates    chan *config.Config
}

// Options tune how the app is set up for a command.
type Options struct {
	// LogToStderr is used by commands that do not take over the terminal.
	LogToStderr bool
}

// NewApp loads the configuration and builds the logger and theme.
func NewApp(opts Options) (*App, error) {
	mgr, cfg, loadErr := loadConfig()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("CORKBOARD_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}

	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(logLevel), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			Dir:           cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			WriteToStderr: opts.LogToStderr,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}
	if mgr != nil {
		logger.Debug().Str("config_file", mgr.GetConfigFile()).Msg("configuration loaded")
	}

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(cfg),
		Themes:     uitheme.NewManager(ctx, cfg),
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// NewBoard creates an empty board configured from the loaded config.
func (a *App) NewBoard() *canvas.Board {
	return canvas.NewBoard(a.ctx, canvas.OptionsFromConfig(a.Config))
}

// Grid returns the mouse translator for the configured cell size.
func (a *App) Grid() input.MouseTranslator {
	return input.NewMouseTranslator(a.Config.Canvas.CellWidth, a.Config.Canvas.CellHeight)
}

// WatchConfig starts watching the config file and returns a channel of
// reloaded configs. Only the latest pending config is kept.
func (a *App) WatchConfig() (<-chan *config.Config, error) {
	if a.Manager == nil {
		return nil, nil
	}
	if a.updates != nil {
		return a.updates, nil
	}

	updates := make(chan *config.Config, 1)
	a.Manager.OnConfigChange(func(cfg *config.Config) {
		select {
		case <-updates:
		default:
		}
		updates <- cfg
	})
	if err := a.Manager.Watch(); err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	a.updates = updates
	return updates, nil
}

// loadConfig loads configuration from the standard location. On failure the
// defaults are returned together with the error.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}
	if err := mgr.Load(); err != nil {
		return nil, config.DefaultConfig(), err
	}
	return mgr, mgr.Get(), nil
}
