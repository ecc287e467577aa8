package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/flashmark/internal/domain/repository"
)

type faviconRepo struct {
	db *sql.DB
}

// NewFaviconRepository creates a new SQLite-backed favicon cache repository.
func NewFaviconRepository(db *sql.DB) repository.FaviconRepository {
	return &faviconRepo{db: db}
}

func (r *faviconRepo) LoadAll(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT cache_key, icon_url FROM favicons`)
	if err != nil {
		return nil, fmt.Errorf("failed to load favicons: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key, icon string
		if err := rows.Scan(&key, &icon); err != nil {
			return nil, fmt.Errorf("failed to scan favicon: %w", err)
		}
		out[key] = icon
	}
	return out, rows.Err()
}

func (r *faviconRepo) Upsert(ctx context.Context, key, iconURL string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO favicons (cache_key, icon_url, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(cache_key) DO UPDATE SET icon_url = excluded.icon_url, updated_at = CURRENT_TIMESTAMP`,
		key, iconURL)
	if err != nil {
		return fmt.Errorf("failed to upsert favicon %q: %w", key, err)
	}
	return nil
}

func (r *faviconRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM favicons WHERE cache_key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete favicon %q: %w", key, err)
	}
	return nil
}
