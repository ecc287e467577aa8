package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/bnema/flashmark/internal/logging"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func newMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	migrationsFS, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrationsFS)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return provider, nil
}

// RunMigrations applies all pending migrations to the database.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	log := logging.FromContext(ctx)

	provider, err := newMigrationProvider(db)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get db version after migration: %w", err)
	}

	if len(results) > 0 {
		log.Info().
			Int("applied", len(results)).
			Int64("to_version", version).
			Msg("database migrations applied")
	} else {
		log.Debug().Int64("version", version).Msg("database schema up to date")
	}

	return nil
}

// GetMigrationStatus returns the current migration version.
func GetMigrationStatus(ctx context.Context, db *sql.DB) (int64, error) {
	provider, err := newMigrationProvider(db)
	if err != nil {
		return 0, err
	}
	return provider.GetDBVersion(ctx)
}
