// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"

	"github.com/bnema/flashmark/internal/domain/entity"
)

// TabSource provides the tabs of the current window in host order.
type TabSource interface {
	Tabs(ctx context.Context) ([]entity.Tab, error)
}

// BookmarkSource provides the flattened bookmark list in document order.
type BookmarkSource interface {
	Bookmarks(ctx context.Context) ([]entity.Bookmark, error)
}

// TabController issues tab commands to the host browser.
// Implementations return ErrNotConnected when no host is reachable.
type TabController interface {
	// Activate focuses an existing tab.
	Activate(ctx context.Context, id entity.TabID) error

	// Create opens a new tab at url.
	Create(ctx context.Context, url string) error

	// Remove closes the given tabs.
	Remove(ctx context.Context, ids []entity.TabID) error

	// OpenSettingsPage opens the extension's options page.
	OpenSettingsPage(ctx context.Context) error

	// ReloadExtension asks the host to reload the extension.
	ReloadExtension(ctx context.Context) error
}
