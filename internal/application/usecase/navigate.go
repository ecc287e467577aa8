package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/flashmark/internal/application/port"
	"github.com/bnema/flashmark/internal/domain/entity"
	domainurl "github.com/bnema/flashmark/internal/domain/url"
	"github.com/bnema/flashmark/internal/logging"
)

// NavigateOrSearchUseCase opens typed input as a URL or a web search.
type NavigateOrSearchUseCase struct {
	settings   *ManageSettingsUseCase
	controller port.TabController
}

// NewNavigateOrSearchUseCase creates the fallback navigation use case.
// controller may be nil when only Resolve is used.
func NewNavigateOrSearchUseCase(settings *ManageSettingsUseCase, controller port.TabController) *NavigateOrSearchUseCase {
	return &NavigateOrSearchUseCase{settings: settings, controller: controller}
}

// Resolve returns the navigation target for query without opening it.
func (uc *NavigateOrSearchUseCase) Resolve(ctx context.Context, query string) (target string, isURL bool, err error) {
	if strings.TrimSpace(query) == "" {
		return "", false, nil
	}
	template, err := uc.settings.SearchTemplate(ctx)
	if err != nil {
		return "", false, err
	}
	target, isURL = domainurl.Resolve(query, template)
	return target, isURL, nil
}

// Execute opens the resolved target in a new tab.
func (uc *NavigateOrSearchUseCase) Execute(ctx context.Context, query string) (entity.ActionResult, error) {
	target, isURL, err := uc.Resolve(ctx, query)
	if err != nil {
		return entity.ActionResult{}, err
	}
	if target == "" {
		return entity.ActionResult{Success: false, Error: "empty query"}, nil
	}
	if uc.controller == nil {
		return entity.ActionResult{}, port.ErrNotConnected
	}

	if err := uc.controller.Create(ctx, target); err != nil {
		return entity.ActionResult{}, fmt.Errorf("failed to open %s: %w", target, err)
	}

	logging.FromContext(ctx).Debug().Str("target", target).Bool("is_url", isURL).Msg("navigate or search")

	msg := "Searching"
	if isURL {
		msg = "Opening"
	}
	return entity.ActionResult{Success: true, Message: msg, URL: target}, nil
}
