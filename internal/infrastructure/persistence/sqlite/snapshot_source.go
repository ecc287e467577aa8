package sqlite

import (
	"context"
	"sort"

	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/domain/repository"
)

// SnapshotSource serves the last persisted tab and bookmark state to
// commands that run without a connected browser.
type SnapshotSource struct {
	tabs      repository.TabSnapshotRepository
	bookmarks repository.BookmarkRepository
}

// NewSnapshotSource creates a read-only source over the persisted state.
func NewSnapshotSource(tabs repository.TabSnapshotRepository, bookmarks repository.BookmarkRepository) *SnapshotSource {
	return &SnapshotSource{tabs: tabs, bookmarks: bookmarks}
}

// Tabs returns the persisted tabs in host (tab strip) order.
func (s *SnapshotSource) Tabs(ctx context.Context) ([]entity.Tab, error) {
	tabs, err := s.tabs.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tabs, func(i, j int) bool { return tabs[i].Index < tabs[j].Index })
	return tabs, nil
}

// MRUOrder returns the persisted tab IDs, most recently used first.
func (s *SnapshotSource) MRUOrder(ctx context.Context) ([]entity.TabID, error) {
	tabs, err := s.tabs.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return entity.TabIDs(tabs), nil
}

// Bookmarks returns the persisted bookmark mirror in document order.
func (s *SnapshotSource) Bookmarks(ctx context.Context) ([]entity.Bookmark, error) {
	return s.bookmarks.GetAll(ctx)
}
