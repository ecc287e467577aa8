// Package cli wires the flashmark commands.
package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/flashmark/internal/application/usecase"
	"github.com/bnema/flashmark/internal/cli/styles"
	"github.com/bnema/flashmark/internal/domain/build"
	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/domain/mru"
	"github.com/bnema/flashmark/internal/infrastructure/config"
	"github.com/bnema/flashmark/internal/infrastructure/favicon"
	"github.com/bnema/flashmark/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/flashmark/internal/logging"
)

// App holds CLI dependencies. Storage is opened on first use, so commands
// such as `config path` never touch the database.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	db *sqlite.LazyDB

	once     sync.Once
	services *Services
	err      error

	ctx        context.Context
	logCleanup func()
}

// Services are the use cases offline commands run against the last
// persisted snapshot. No browser is attached, so nothing here can open or
// close tabs.
type Services struct {
	Snapshot *sqlite.SnapshotSource
	Tracker  *mru.Tracker

	SearchUC   *usecase.SearchPaletteUseCase
	SwitchUC   *usecase.QuickSwitchUseCase
	ActionsUC  *usecase.ExecuteActionUseCase
	SettingsUC *usecase.ManageSettingsUseCase
	NavigateUC *usecase.NavigateOrSearchUseCase

	favicons *favicon.Cache
}

// NewApp loads the config and builds a quiet logger. configFile selects an
// explicit config file; empty uses the XDG location.
func NewApp(configFile string) (*App, error) {
	mgr, cfg, err := loadConfig(configFile)
	if err != nil {
		return nil, err
	}

	// CLI output goes to stdout; logs stay at warn unless asked otherwise.
	level := "warn"
	if cfg.Logging.Level == "debug" || cfg.Logging.Level == "trace" {
		level = cfg.Logging.Level
	}
	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{Enabled: false, WriteToStderr: true},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		db:         sqlite.NewLazyDB(cfg.Database.Path),
		ctx:        logging.WithContext(context.Background(), logger),
		logCleanup: logCleanup,
	}, nil
}

// Services opens storage and wires the offline use cases.
func (a *App) Services() (*Services, error) {
	a.once.Do(func() {
		a.services, a.err = a.buildServices()
	})
	return a.services, a.err
}

func (a *App) buildServices() (*Services, error) {
	ctx := a.ctx
	db, err := a.db.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	snapshotSource := sqlite.NewSnapshotSource(
		sqlite.NewTabSnapshotRepository(db),
		sqlite.NewBookmarkRepository(db),
	)

	// The daemon persists tabs in MRU order, so the stored order seeds the
	// tracker directly.
	order, err := snapshotSource.MRUOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tab snapshot: %w", err)
	}
	tracker := mru.NewTracker()
	var front entity.TabID
	if len(order) > 0 {
		front = order[0]
	}
	tracker.Initialize(order, front)

	favicons := favicon.NewCache(ctx, sqlite.NewFaviconRepository(db))
	if err := favicons.Load(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("favicon cache unavailable")
	}

	cfg := a.Config
	settingsUC := usecase.NewManageSettingsUseCase(sqlite.NewSettingsRepository(db), cfg.Search.DefaultEngine, cfg.Reset.DefaultURL)
	searchUC := usecase.NewSearchPaletteUseCase(snapshotSource, snapshotSource, favicons, cfg.Favicon.LookupURL, cfg.PalettePolicy())

	return &Services{
		Snapshot:   snapshotSource,
		Tracker:    tracker,
		SearchUC:   searchUC,
		SwitchUC:   usecase.NewQuickSwitchUseCase(tracker, snapshotSource, nil, searchUC.ResolveFavicon),
		ActionsUC:  usecase.NewExecuteActionUseCase(snapshotSource, snapshotSource, nil, settingsUC),
		SettingsUC: settingsUC,
		NavigateUC: usecase.NewNavigateOrSearchUseCase(settingsUC, nil),
		favicons:   favicons,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.services != nil && a.services.favicons != nil {
		a.services.favicons.Close()
	}
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

// loadConfig loads configuration from configFile or the standard location.
// A broken config file is an error; the daemon must not silently run on
// defaults the user did not ask for.
func loadConfig(configFile string) (*config.Manager, *config.Config, error) {
	var (
		mgr *config.Manager
		err error
	)
	if configFile != "" {
		mgr, err = config.NewManagerForFile(configFile)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return mgr, mgr.Get(), nil
}
