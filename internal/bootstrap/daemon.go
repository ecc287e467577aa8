// Package bootstrap assembles and runs the flashmark daemon.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/flashmark/internal/application/usecase"
	"github.com/bnema/flashmark/internal/domain/mru"
	"github.com/bnema/flashmark/internal/infrastructure/bridge"
	"github.com/bnema/flashmark/internal/infrastructure/config"
	"github.com/bnema/flashmark/internal/infrastructure/favicon"
	"github.com/bnema/flashmark/internal/infrastructure/lock"
	"github.com/bnema/flashmark/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/flashmark/internal/infrastructure/snapshot"
	"github.com/bnema/flashmark/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Daemon owns every long-lived component of `flashmark serve`.
type Daemon struct {
	cfg *config.Config

	lock     *lock.File
	db       *sql.DB
	favicons *favicon.Cache
	state    *bridge.State
	tracker  *mru.Tracker
	snapshot *snapshot.Service
	search   *usecase.SearchPaletteUseCase
	server   *bridge.Server
}

// Options locates the daemon's files. Empty paths fall back to the XDG
// defaults.
type Options struct {
	Config   *config.Config
	LockPath string
}

// NewDaemon takes the single-instance lock, opens storage and wires the
// bridge. Nothing listens until Run is called.
func NewDaemon(ctx context.Context, opts Options) (_ *Daemon, err error) {
	log := logging.FromContext(ctx)
	timer := newPhaseTimer()

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	lockPath := opts.LockPath
	if lockPath == "" {
		if lockPath, err = config.GetLockFile(); err != nil {
			return nil, fmt.Errorf("failed to resolve lock file: %w", err)
		}
	}
	d := &Daemon{cfg: cfg}
	defer func() {
		if err != nil {
			d.close(ctx)
		}
	}()

	if d.lock, err = lock.Acquire(lockPath); err != nil {
		return nil, fmt.Errorf("failed to acquire daemon lock: %w", err)
	}
	timer.Mark("lock")

	dbPath := cfg.Database.Path
	if dbPath == "" {
		if dbPath, err = config.GetDatabaseFile(); err != nil {
			return nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
	}
	if d.db, err = sqlite.NewConnection(ctx, dbPath); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	timer.Mark("database")

	settingsRepo := sqlite.NewSettingsRepository(d.db)
	bookmarkRepo := sqlite.NewBookmarkRepository(d.db)
	snapshotRepo := sqlite.NewTabSnapshotRepository(d.db)

	d.favicons = favicon.NewCache(ctx, sqlite.NewFaviconRepository(d.db))
	if err = d.favicons.Load(ctx); err != nil {
		return nil, err
	}
	timer.Mark("favicons")

	// Search works on the last known bookmarks until the extension sends
	// a fresh tree.
	bookmarks, err := bookmarkRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookmarks: %w", err)
	}
	d.state = bridge.NewState(bookmarks)
	d.tracker = mru.NewTracker()
	d.snapshot = snapshot.NewService(d.state, d.tracker, snapshotRepo, cfg.SnapshotInterval())
	controller := bridge.NewController()

	settingsUC := usecase.NewManageSettingsUseCase(settingsRepo, cfg.Search.DefaultEngine, cfg.Reset.DefaultURL)
	d.search = usecase.NewSearchPaletteUseCase(d.state, d.state, d.favicons, cfg.Favicon.LookupURL, cfg.PalettePolicy())
	actionsUC := usecase.NewExecuteActionUseCase(d.state, d.state, controller, settingsUC)

	d.server = bridge.NewServer(ctx, bridge.Config{
		ListenAddr:     cfg.Bridge.ListenAddr,
		Token:          cfg.Bridge.Token,
		AllowedOrigins: cfg.Bridge.AllowedOrigins,
		RateLimit:      cfg.Bridge.RateLimit,
		RateBurst:      cfg.Bridge.RateBurst,
		SearchDebounce: cfg.DebounceDelay(),
	}, d.state, controller, bridge.Services{
		Events:   usecase.NewLifecycleHandlers(d.tracker, d.favicons, bookmarkRepo, d.snapshot),
		Search:   d.search,
		Open:     usecase.NewOpenResultUseCase(controller, actionsUC),
		Actions:  actionsUC,
		Switch:   usecase.NewQuickSwitchUseCase(d.tracker, d.state, controller, d.search.ResolveFavicon),
		Navigate: usecase.NewNavigateOrSearchUseCase(settingsUC, controller),
		Settings: settingsUC,
	})
	timer.Mark("bridge")

	log.Info().
		Str("db_path", dbPath).
		Str("lock", d.lock.Path()).
		Int("bookmarks", len(bookmarks)).
		Int("favicons", d.favicons.Size()).
		Dur("startup", timer.Total()).
		Msg("daemon initialized")
	timer.Log(ctx)

	return d, nil
}

// Addr returns the bridge listen address.
func (d *Daemon) Addr() string {
	return d.server.Addr()
}

// Run serves the bridge until ctx is cancelled, then shuts down and
// writes a final snapshot.
func (d *Daemon) Run(ctx context.Context) error {
	d.snapshot.Start(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(d.server.Start)
	g.Go(func() error {
		<-gctx.Done()
		logging.FromContext(ctx).Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return d.server.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	d.close(ctx)
	return err
}

// ApplyConfig updates the settings that can change without a restart.
func (d *Daemon) ApplyConfig(ctx context.Context, cfg *config.Config) {
	log := logging.FromContext(ctx)

	d.search.SetPolicy(cfg.PalettePolicy())
	d.server.SetSearchDebounce(cfg.DebounceDelay())
	d.snapshot.SetInterval(cfg.SnapshotInterval())

	if cfg.Bridge.ListenAddr != d.cfg.Bridge.ListenAddr || cfg.Bridge.Token != d.cfg.Bridge.Token {
		log.Warn().Msg("bridge listen_addr and token changes apply after restart")
	}

	log.Info().
		Str("merge_order", string(cfg.PalettePolicy().Order)).
		Dur("debounce", cfg.DebounceDelay()).
		Msg("config reloaded")
}

// close releases resources in reverse start order. The final snapshot is
// written before the database closes.
func (d *Daemon) close(ctx context.Context) {
	log := logging.FromContext(ctx)

	if d.snapshot != nil {
		saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		if err := d.snapshot.Stop(saveCtx); err != nil {
			log.Warn().Err(err).Msg("final snapshot failed")
		}
		cancel()
		d.snapshot = nil
	}
	if d.favicons != nil {
		d.favicons.Close()
		d.favicons = nil
	}
	if d.db != nil {
		if err := sqlite.Close(d.db); err != nil {
			log.Warn().Err(err).Msg("failed to close database")
		}
		d.db = nil
	}
	if d.lock != nil {
		if err := d.lock.Release(); err != nil {
			log.Warn().Err(err).Msg("failed to release lock")
		}
		d.lock = nil
	}
}
