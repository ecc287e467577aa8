package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/flashmark/internal/logging"
)

// LazyDB opens the database on first use. CLI commands that never touch
// storage (config, protocol) skip the WASM compile and migrations.
type LazyDB struct {
	dbPath string

	once sync.Once
	mu   sync.RWMutex
	db   *sql.DB
	err  error
}

// NewLazyDB creates a lazy database handle for dbPath.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the connection, opening it on the first call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.dbPath).Msg("opening database")

		db, err := NewConnection(ctx, l.dbPath)

		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()

		if err != nil {
			log.Error().Err(err).Msg("database initialization failed")
		}
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// Close closes the connection if it was opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// IsInitialized reports whether the connection has been opened.
func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}
