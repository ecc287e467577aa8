package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/flashmark/internal/application/port"
	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/domain/mru"
	"github.com/bnema/flashmark/internal/domain/repository"
	"github.com/bnema/flashmark/internal/domain/service"
	"github.com/bnema/flashmark/internal/logging"
)

// LifecycleHandlers reacts to host tab and bookmark events.
type LifecycleHandlers struct {
	tracker   *mru.Tracker
	favicons  port.FaviconStore
	bookmarks repository.BookmarkRepository
	marker    port.SnapshotMarker
}

var _ port.HostEvents = (*LifecycleHandlers)(nil)

type noopMarker struct{}

func (noopMarker) MarkDirty() {}

// NewLifecycleHandlers wires the handlers. favicons, bookmarks and marker may be nil.
func NewLifecycleHandlers(
	tracker *mru.Tracker,
	favicons port.FaviconStore,
	bookmarks repository.BookmarkRepository,
	marker port.SnapshotMarker,
) *LifecycleHandlers {
	if marker == nil {
		marker = noopMarker{}
	}
	return &LifecycleHandlers{
		tracker:   tracker,
		favicons:  favicons,
		bookmarks: bookmarks,
		marker:    marker,
	}
}

// OnSnapshot seeds the tracker and fills missing favicon cache entries.
func (h *LifecycleHandlers) OnSnapshot(ctx context.Context, tabs []entity.Tab, active entity.TabID) error {
	h.tracker.Initialize(entity.TabIDs(tabs), active)

	seeded := 0
	if h.favicons != nil {
		for _, tab := range tabs {
			key, ok := service.Cacheable(tab.URL, tab.FaviconURL)
			if !ok {
				continue
			}
			if _, cached := h.favicons.Lookup(key); cached {
				continue
			}
			h.favicons.Record(key, tab.FaviconURL)
			seeded++
		}
	}

	logging.FromContext(ctx).Info().
		Int("tabs", len(tabs)).
		Int64("active", int64(active)).
		Int("favicons_seeded", seeded).
		Msg("tab snapshot received")

	h.marker.MarkDirty()
	return nil
}

// OnCreated tracks a new tab.
func (h *LifecycleHandlers) OnCreated(ctx context.Context, tab entity.Tab) error {
	h.tracker.Create(tab.ID)
	logging.FromContext(ctx).Debug().Int64("tab_id", int64(tab.ID)).Msg("tab created")
	h.marker.MarkDirty()
	return nil
}

// OnUpdated records a changed favicon.
func (h *LifecycleHandlers) OnUpdated(ctx context.Context, tab entity.Tab, faviconChanged bool) error {
	if faviconChanged && h.favicons != nil {
		if key, ok := service.Cacheable(tab.URL, tab.FaviconURL); ok {
			h.favicons.Record(key, tab.FaviconURL)
			logging.FromContext(ctx).Trace().Str("key", key).Msg("favicon recorded")
		}
	}
	h.marker.MarkDirty()
	return nil
}

// OnActivated moves the tab to the front of the MRU list.
func (h *LifecycleHandlers) OnActivated(ctx context.Context, id entity.TabID) error {
	h.tracker.Activate(id)
	logging.FromContext(ctx).Trace().Int64("tab_id", int64(id)).Msg("tab activated")
	h.marker.MarkDirty()
	return nil
}

// OnRemoved forgets a closed tab.
func (h *LifecycleHandlers) OnRemoved(ctx context.Context, id entity.TabID) error {
	h.tracker.Remove(id)
	logging.FromContext(ctx).Debug().Int64("tab_id", int64(id)).Msg("tab removed")
	h.marker.MarkDirty()
	return nil
}

// OnBookmarks flattens and stores the bookmark tree.
func (h *LifecycleHandlers) OnBookmarks(ctx context.Context, nodes []*entity.BookmarkNode) error {
	flat := entity.FlattenBookmarks(nodes)
	if h.bookmarks != nil {
		if err := h.bookmarks.ReplaceAll(ctx, flat); err != nil {
			return fmt.Errorf("failed to store bookmarks: %w", err)
		}
	}
	logging.FromContext(ctx).Info().Int("bookmarks", len(flat)).Msg("bookmarks synced")
	h.marker.MarkDirty()
	return nil
}
