package port

import (
	"context"

	"github.com/bnema/flashmark/internal/domain/entity"
)

// HostEvents receives tab and bookmark lifecycle notifications from the host.
type HostEvents interface {
	// OnSnapshot replaces the known tab set, typically on connect.
	OnSnapshot(ctx context.Context, tabs []entity.Tab, active entity.TabID) error
	OnCreated(ctx context.Context, tab entity.Tab) error
	OnUpdated(ctx context.Context, tab entity.Tab, faviconChanged bool) error
	OnActivated(ctx context.Context, id entity.TabID) error
	OnRemoved(ctx context.Context, id entity.TabID) error
	OnBookmarks(ctx context.Context, nodes []*entity.BookmarkNode) error
}

// SnapshotMarker is notified when persisted tab state is stale.
type SnapshotMarker interface {
	MarkDirty()
}
