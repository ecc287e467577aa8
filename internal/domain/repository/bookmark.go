package repository

import (
	"context"

	"github.com/bnema/flashmark/internal/domain/entity"
)

// BookmarkRepository mirrors the host's flattened bookmark list.
type BookmarkRepository interface {
	// ReplaceAll swaps the stored bookmarks for the given list, keeping its order.
	ReplaceAll(ctx context.Context, bookmarks []entity.Bookmark) error

	// GetAll returns the bookmarks in document order.
	GetAll(ctx context.Context) ([]entity.Bookmark, error)
}

// TabSnapshotRepository stores the last known tab set for offline commands.
type TabSnapshotRepository interface {
	// Replace stores tabs in MRU order; the slice index becomes the rank.
	Replace(ctx context.Context, tabs []entity.Tab) error

	// GetAll returns the stored tabs ordered by MRU rank.
	GetAll(ctx context.Context) ([]entity.Tab, error)
}
