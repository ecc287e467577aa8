package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/flashmark/internal/application/port"
	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/domain/mru"
	"github.com/bnema/flashmark/internal/domain/palette"
	"github.com/bnema/flashmark/internal/logging"
)

// QuickSwitchUseCase lists tabs by recency and switches between them.
type QuickSwitchUseCase struct {
	tracker    *mru.Tracker
	tabs       port.TabSource
	controller port.TabController
	favicons   palette.FaviconResolver
}

// NewQuickSwitchUseCase creates a quick-switch use case.
// controller may be nil for read-only callers such as the offline CLI.
func NewQuickSwitchUseCase(
	tracker *mru.Tracker,
	tabs port.TabSource,
	controller port.TabController,
	favicons palette.FaviconResolver,
) *QuickSwitchUseCase {
	return &QuickSwitchUseCase{
		tracker:    tracker,
		tabs:       tabs,
		controller: controller,
		favicons:   favicons,
	}
}

// MRUTabs returns the open tabs, most recently used first.
func (uc *QuickSwitchUseCase) MRUTabs(ctx context.Context) ([]entity.Result, error) {
	tabs, err := uc.tabs.Tabs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tabs: %w", err)
	}

	ordered := uc.tracker.Snapshot(tabs)
	results := make([]entity.Result, 0, len(ordered))
	for _, tab := range ordered {
		results = append(results, palette.TabResult(tab, uc.favicons))
	}
	return results, nil
}

// SwitchTo activates a tab. The tracker is updated when the host reports the activation.
func (uc *QuickSwitchUseCase) SwitchTo(ctx context.Context, id entity.TabID) error {
	if uc.controller == nil {
		return port.ErrNotConnected
	}
	logging.FromContext(ctx).Debug().Int64("tab_id", int64(id)).Msg("switching tab")
	if err := uc.controller.Activate(ctx, id); err != nil {
		return fmt.Errorf("failed to activate tab %d: %w", id, err)
	}
	return nil
}

// SwitchToPrevious activates the second most recent tab.
// switched is false when there is no previous tab.
func (uc *QuickSwitchUseCase) SwitchToPrevious(ctx context.Context) (id entity.TabID, switched bool, err error) {
	prev, ok := uc.tracker.Previous()
	if !ok {
		return 0, false, nil
	}
	if err := uc.SwitchTo(ctx, prev); err != nil {
		return 0, false, err
	}
	return prev, true, nil
}
