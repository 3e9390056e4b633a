// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/application/usecase"
	"github.com/bnema/dumbterm/internal/cli/demo"
	"github.com/bnema/dumbterm/internal/cli/styles"
	"github.com/bnema/dumbterm/internal/domain/build"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/domain/repository"
	"github.com/bnema/dumbterm/internal/infrastructure/config"
	"github.com/bnema/dumbterm/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dumbterm/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	db            *sqlite.LazyDB
	Layouts       repository.LayoutSnapshotRepository

	// Use cases
	SnapshotUC *usecase.SnapshotLayoutUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies. The database
// is opened on first use.
func NewApp(configFile string) (*App, error) {
	mgr, cfg, cfgErr := loadConfig(configFile)

	logger, logCleanup, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)
	layouts := sqlite.NewLazyLayoutSnapshotRepository(db)

	logger.Debug().Str("db_path", cfg.Database.Path).Msg("layout storage configured")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		db:            db,
		Layouts:       layouts,
		SnapshotUC:    usecase.NewSnapshotLayoutUseCase(layouts),
		ctx:           ctx,
		logCleanup:    logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// LogDir returns the directory holding dumbterm.log and its rotated backups.
func (a *App) LogDir() string {
	return resolveLogDir(a.Config)
}

// StorageInfo reports on the layout database without creating it.
func (a *App) StorageInfo() styles.StorageInfo {
	st, err := a.db.Status(a.ctx)
	if err != nil {
		logging.FromContext(a.ctx).Warn().Err(err).Msg("layout storage status unavailable")
	}
	return styles.StorageInfo{
		Path:          st.Path,
		Exists:        st.Exists,
		SizeBytes:     st.SizeBytes,
		SchemaVersion: st.SchemaVersion,
		Layouts:       st.Layouts,
	}
}

// NewFactory returns a demo pane factory using the theme's pane colors.
func (a *App) NewFactory() *demo.Factory {
	colors := make([]string, len(a.Theme.PaneColors))
	for i, c := range a.Theme.PaneColors {
		colors[i] = string(c)
	}
	return demo.NewFactory(colors)
}

// RestoreLayout rebuilds the saved layout of tabID with demo panes from
// factory.
func (a *App) RestoreLayout(tabID entity.TabID, factory *demo.Factory) (*usecase.RestoreLayoutOutput, error) {
	uc := usecase.NewRestoreLayoutUseCase(a.Layouts, factory)
	return uc.Execute(a.ctx, usecase.RestoreLayoutInput{TabID: tabID})
}

// SaveLayout is a model.SaveFunc storing the workspace through the
// snapshot use case.
func (a *App) SaveLayout(ctx context.Context, ws *entity.Workspace, panes map[entity.PaneID]port.Pane) error {
	_, err := a.SnapshotUC.Execute(ctx, usecase.SnapshotLayoutInput{Workspace: ws, Panes: panes})
	return err
}

// loadConfig loads configuration from standard locations. On failure the
// defaults are returned along with the error; the manager is nil when it
// could not be created.
func loadConfig(configFile string) (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager(configFile)
	if err != nil {
		return nil, defaultConfig(), err
	}
	if err := mgr.Load(); err != nil {
		return nil, defaultConfig(), err
	}
	return mgr, mgr.Get(), nil
}

func defaultConfig() *config.Config {
	cfg := config.DefaultConfig()
	if path, err := config.GetDatabaseFile(); err == nil {
		cfg.Database.Path = path
	}
	return cfg
}

// newLogger writes to a rotated file since the playground owns the terminal.
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	logDir := resolveLogDir(cfg)
	if logDir == "" {
		return logging.NewFromEnv(), func() {}, nil
	}
	return logging.NewWithFile(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}, logDir)
}

func resolveLogDir(cfg *config.Config) string {
	if cfg.Logging.LogDir != "" {
		return cfg.Logging.LogDir
	}
	dir, err := config.GetLogDir()
	if err != nil {
		return ""
	}
	return dir
}
