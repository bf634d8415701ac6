// Package cli provides the wring command line interface built on Bubble
// Tea.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/bnema/wring/internal/application/usecase"
	"github.com/bnema/wring/internal/cli/styles"
	"github.com/bnema/wring/internal/domain/build"
	"github.com/bnema/wring/internal/domain/entity"
	"github.com/bnema/wring/internal/domain/repository"
	"github.com/bnema/wring/internal/infrastructure/config"
	"github.com/bnema/wring/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/wring/internal/logging"
)

// App bundles what the subcommands share: config, theme, the desktop
// with its use cases, and the snapshot store.
type App struct {
	Config    *config.Config
	ConfigMgr *config.Manager // nil when config loading fell back to defaults
	Theme     *styles.Theme
	BuildInfo build.Info
	Desktop   *entity.Desktop
	States    repository.StateRepository

	ClientsUC    *usecase.ManageClientsUseCase
	WorkspacesUC *usecase.ManageWorkspacesUseCase
	SearchUC     *usecase.SearchClientsUseCase
	SnapshotUC   *usecase.SnapshotStateUseCase

	db  *sql.DB
	ctx context.Context
}

// NewApp loads the config, opens the snapshot database and builds the
// desktop. With auto restore on, the latest snapshot is applied before
// any command runs.
func NewApp() (*App, error) {
	mgr, cfg := loadConfig()

	theme := styles.NewTheme(cfg)

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("WRING_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.NewFromConfigValues(logLevel, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	dbFile := cfg.Database.Path
	if dbFile == "" {
		if xdgPath, pathErr := config.GetDatabaseFile(); pathErr == nil {
			dbFile = xdgPath
		}
	}

	db, err := sqlite.NewConnection(logging.WithComponent(ctx, "db"), dbFile)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug().Str("db_path", dbFile).Msg("database connected")

	desktop, err := entity.NewDesktop(cfg.Workspaces...)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("build desktop: %w", err)
	}

	states := sqlite.NewStateRepository(db)
	snapshotUC := usecase.NewSnapshotStateUseCase(desktop, states)

	if cfg.Session.AutoRestore {
		if restored, restoreErr := snapshotUC.RestoreLatest(ctx); restoreErr != nil {
			logger.Warn().Err(restoreErr).Msg("could not restore latest snapshot")
		} else if restored {
			logger.Debug().Msg("desktop state restored from latest snapshot")
		}
	}

	return &App{
		Config:       cfg,
		ConfigMgr:    mgr,
		Theme:        theme,
		Desktop:      desktop,
		States:       states,
		ClientsUC:    usecase.NewManageClientsUseCase(desktop),
		WorkspacesUC: usecase.NewManageWorkspacesUseCase(desktop),
		SearchUC:     usecase.NewSearchClientsUseCase(desktop),
		SnapshotUC:   snapshotUC,
		db:           db,
		ctx:          ctx,
	}, nil
}

// Close shuts the snapshot database.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx is the root context carrying the process logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when no config can be read.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig()
	}

	if err := mgr.Load(); err != nil {
		return nil, config.DefaultConfig()
	}

	return mgr, mgr.Get()
}
