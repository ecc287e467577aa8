package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/flashmark/internal/application/port"
	"github.com/bnema/flashmark/internal/domain/entity"
)

// OpenResultUseCase opens whatever the user picked in the palette.
type OpenResultUseCase struct {
	controller port.TabController
	actions    *ExecuteActionUseCase
}

// NewOpenResultUseCase creates the open-result use case.
func NewOpenResultUseCase(controller port.TabController, actions *ExecuteActionUseCase) *OpenResultUseCase {
	return &OpenResultUseCase{controller: controller, actions: actions}
}

// Open activates tab results and opens everything else in a new tab.
// Actions without a target URL are dispatched.
func (uc *OpenResultUseCase) Open(ctx context.Context, result entity.Result) (entity.ActionResult, error) {
	switch result.Kind {
	case entity.ResultKindTab:
		id, ok := result.TabID()
		if !ok {
			return entity.ActionResult{Success: false, Error: "invalid tab id"}, nil
		}
		if err := uc.controller.Activate(ctx, id); err != nil {
			return entity.ActionResult{}, fmt.Errorf("failed to activate tab %d: %w", id, err)
		}
		return entity.ActionResult{Success: true, Message: "Switched to " + result.Title}, nil

	case entity.ResultKindAction:
		if uc.actions == nil {
			return entity.ActionResult{}, errors.New("action dispatcher not configured")
		}
		return uc.actions.Execute(ctx, entity.ActionID(result.ID), false)

	default:
		if result.URL == "" {
			return entity.ActionResult{Success: false, Error: "result has no url"}, nil
		}
		if err := uc.controller.Create(ctx, result.URL); err != nil {
			return entity.ActionResult{}, fmt.Errorf("failed to open %s: %w", result.URL, err)
		}
		return entity.ActionResult{Success: true, Message: "Opened " + result.Title, URL: result.URL}, nil
	}
}
