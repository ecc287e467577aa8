package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/flashmark/internal/domain/repository"
	"github.com/bnema/flashmark/internal/logging"
)

type settingsRepo struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SQLite-backed settings repository.
func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return value, true, nil
}

func (r *settingsRepo) Set(ctx context.Context, key, value string) error {
	logging.FromContext(ctx).Debug().Str("key", key).Msg("saving setting")

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to set setting %q: %w", key, err)
	}
	return nil
}

func (r *settingsRepo) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		out[key] = value
	}
	return out, rows.Err()
}
