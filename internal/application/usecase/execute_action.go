package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/flashmark/internal/application/port"
	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/domain/tabops"
	"github.com/bnema/flashmark/internal/logging"
)

const errUnknownAction = "unknown action"

// ExecuteActionUseCase dispatches built-in palette actions.
// Go errors are reserved for infrastructure failures; an unknown action
// is reported in the result.
type ExecuteActionUseCase struct {
	tabs       port.TabSource
	bookmarks  port.BookmarkSource
	controller port.TabController
	settings   *ManageSettingsUseCase
	actions    []entity.Action
}

// NewExecuteActionUseCase creates the action dispatcher.
func NewExecuteActionUseCase(
	tabs port.TabSource,
	bookmarks port.BookmarkSource,
	controller port.TabController,
	settings *ManageSettingsUseCase,
) *ExecuteActionUseCase {
	return &ExecuteActionUseCase{
		tabs:       tabs,
		bookmarks:  bookmarks,
		controller: controller,
		settings:   settings,
		actions:    entity.DefaultActions(),
	}
}

// GetActionMeta returns the catalog entry for id, or nil.
func (uc *ExecuteActionUseCase) GetActionMeta(id entity.ActionID) *entity.Action {
	action, ok := entity.FindAction(uc.actions, id)
	if !ok {
		return nil
	}
	return &action
}

// Execute runs an action. openSettings opens the extension settings page
// instead of running the action itself.
func (uc *ExecuteActionUseCase) Execute(ctx context.Context, id entity.ActionID, openSettings bool) (entity.ActionResult, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("action", string(id)).Bool("open_settings", openSettings).Msg("executing action")

	if openSettings {
		if err := uc.controller.OpenSettingsPage(ctx); err != nil {
			return entity.ActionResult{}, fmt.Errorf("failed to open settings page: %w", err)
		}
		return entity.ActionResult{Success: true, Message: "Opened settings"}, nil
	}

	action, ok := entity.FindAction(uc.actions, id)
	if !ok {
		log.Warn().Str("action", string(id)).Msg("unknown action")
		return entity.ActionResult{Success: false, Error: errUnknownAction}, nil
	}

	if action.BrowserURL != "" {
		if err := uc.controller.Create(ctx, action.BrowserURL); err != nil {
			return entity.ActionResult{}, fmt.Errorf("failed to open %s: %w", action.BrowserURL, err)
		}
		return entity.ActionResult{
			Success: true,
			Message: "Opened " + action.Title,
			URL:     action.BrowserURL,
		}, nil
	}

	switch action.ID {
	case entity.ActionCleanup:
		return uc.cleanup(ctx)
	case entity.ActionReset:
		return uc.reset(ctx)
	case entity.ActionSettings:
		return entity.ActionResult{Success: true, Message: "Settings handled inline"}, nil
	case entity.ActionReloadExtension:
		if err := uc.controller.ReloadExtension(ctx); err != nil {
			return entity.ActionResult{}, fmt.Errorf("failed to reload extension: %w", err)
		}
		return entity.ActionResult{Success: true, Message: "Reloading extension"}, nil
	default:
		return entity.ActionResult{Success: false, Error: errUnknownAction}, nil
	}
}

// PlanCleanup computes the cleanup plan without closing anything.
func (uc *ExecuteActionUseCase) PlanCleanup(ctx context.Context) (tabops.CleanupPlan, error) {
	tabs, err := uc.tabs.Tabs(ctx)
	if err != nil {
		return tabops.CleanupPlan{}, fmt.Errorf("failed to load tabs: %w", err)
	}
	bookmarks, err := uc.bookmarks.Bookmarks(ctx)
	if err != nil {
		return tabops.CleanupPlan{}, fmt.Errorf("failed to load bookmarks: %w", err)
	}
	return tabops.PlanCleanup(tabs, bookmarks), nil
}

func (uc *ExecuteActionUseCase) cleanup(ctx context.Context) (entity.ActionResult, error) {
	plan, err := uc.PlanCleanup(ctx)
	if err != nil {
		return entity.ActionResult{}, err
	}

	if len(plan.Close) > 0 {
		if err := uc.controller.Remove(ctx, plan.Close); err != nil {
			return entity.ActionResult{}, fmt.Errorf("failed to close tabs: %w", err)
		}
	}

	logging.FromContext(ctx).Info().
		Int("closed", len(plan.Close)).
		Int("kept", plan.Kept).
		Msg("cleanup done")

	return entity.ActionResult{
		Success: true,
		Message: fmt.Sprintf("Closed %d tabs, kept %d", len(plan.Close), plan.Kept),
		Closed:  len(plan.Close),
		Kept:    plan.Kept,
	}, nil
}

func (uc *ExecuteActionUseCase) reset(ctx context.Context) (entity.ActionResult, error) {
	settings, err := uc.settings.Get(ctx)
	if err != nil {
		return entity.ActionResult{}, err
	}

	// Snapshot before creating so the new tab is never part of the close set.
	tabs, err := uc.tabs.Tabs(ctx)
	if err != nil {
		return entity.ActionResult{}, fmt.Errorf("failed to load tabs: %w", err)
	}
	plan := tabops.PlanReset(tabs, settings.ResetURL)

	if err := uc.controller.Create(ctx, plan.OpenURL); err != nil {
		return entity.ActionResult{}, fmt.Errorf("failed to open %s: %w", plan.OpenURL, err)
	}
	if len(plan.Close) > 0 {
		if err := uc.controller.Remove(ctx, plan.Close); err != nil {
			return entity.ActionResult{}, fmt.Errorf("failed to close tabs: %w", err)
		}
	}

	logging.FromContext(ctx).Info().Int("closed", len(plan.Close)).Str("url", plan.OpenURL).Msg("reset done")

	return entity.ActionResult{
		Success: true,
		Message: fmt.Sprintf("Closed %d tabs", len(plan.Close)),
		URL:     plan.OpenURL,
		Closed:  len(plan.Close),
	}, nil
}
