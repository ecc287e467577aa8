package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/domain/repository"
)

type tabSnapshotRepo struct {
	db *sql.DB
}

// NewTabSnapshotRepository creates a new SQLite-backed tab snapshot repository.
func NewTabSnapshotRepository(db *sql.DB) repository.TabSnapshotRepository {
	return &tabSnapshotRepo{db: db}
}

func (r *tabSnapshotRepo) Replace(ctx context.Context, tabs []entity.Tab) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tab_snapshot`); err != nil {
			return fmt.Errorf("failed to clear tab snapshot: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT OR REPLACE INTO tab_snapshot
				(tab_id, window_id, title, url, favicon_url, active, tab_index, mru_rank)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare tab insert: %w", err)
		}
		defer stmt.Close()

		for rank, tab := range tabs {
			_, err := stmt.ExecContext(ctx,
				int64(tab.ID), tab.WindowID, tab.Title, tab.URL, tab.FaviconURL,
				boolToInt(tab.Active), tab.Index, rank)
			if err != nil {
				return fmt.Errorf("failed to insert tab %d: %w", tab.ID, err)
			}
		}
		return nil
	})
}

func (r *tabSnapshotRepo) GetAll(ctx context.Context) ([]entity.Tab, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT tab_id, window_id, title, url, favicon_url, active, tab_index
		FROM tab_snapshot ORDER BY mru_rank`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tab snapshot: %w", err)
	}
	defer rows.Close()

	out := make([]entity.Tab, 0)
	for rows.Next() {
		var (
			tab    entity.Tab
			id     int64
			active int
		)
		if err := rows.Scan(&id, &tab.WindowID, &tab.Title, &tab.URL, &tab.FaviconURL, &active, &tab.Index); err != nil {
			return nil, fmt.Errorf("failed to scan tab: %w", err)
		}
		tab.ID = entity.TabID(id)
		tab.Active = active != 0
		out = append(out, tab)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
