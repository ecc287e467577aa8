package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/domain/repository"
	"github.com/bnema/flashmark/internal/logging"
)

type bookmarkRepo struct {
	db *sql.DB
}

// NewBookmarkRepository creates a new SQLite-backed bookmark mirror.
func NewBookmarkRepository(db *sql.DB) repository.BookmarkRepository {
	return &bookmarkRepo{db: db}
}

func (r *bookmarkRepo) ReplaceAll(ctx context.Context, bookmarks []entity.Bookmark) error {
	log := logging.FromContext(ctx)

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM bookmarks`); err != nil {
			return fmt.Errorf("failed to clear bookmarks: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO bookmarks (position, bookmark_id, title, url) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare bookmark insert: %w", err)
		}
		defer stmt.Close()

		for i, bm := range bookmarks {
			if _, err := stmt.ExecContext(ctx, i, bm.ID, bm.Title, bm.URL); err != nil {
				return fmt.Errorf("failed to insert bookmark %q: %w", bm.ID, err)
			}
		}

		log.Debug().Int("count", len(bookmarks)).Msg("bookmarks replaced")
		return nil
	})
}

func (r *bookmarkRepo) GetAll(ctx context.Context) ([]entity.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT bookmark_id, title, url FROM bookmarks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer rows.Close()

	out := make([]entity.Bookmark, 0)
	for rows.Next() {
		var bm entity.Bookmark
		if err := rows.Scan(&bm.ID, &bm.Title, &bm.URL); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		out = append(out, bm)
	}
	return out, rows.Err()
}

// withTx runs fn in a transaction, rolling back on error.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
