package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/domain/repository"
	domainurl "github.com/bnema/flashmark/internal/domain/url"
	"github.com/bnema/flashmark/internal/logging"
)

// ErrUnknownEngine is returned when a search engine ID is not in the catalog.
var ErrUnknownEngine = errors.New("unknown search engine")

// ManageSettingsUseCase reads and writes the user settings.
// Stored values win over the configured defaults.
type ManageSettingsUseCase struct {
	repo            repository.SettingsRepository
	defaultEngine   string
	defaultResetURL string
}

// NewManageSettingsUseCase creates a settings use case.
// Empty or unknown defaults fall back to google and chrome://newtab.
func NewManageSettingsUseCase(
	repo repository.SettingsRepository,
	defaultEngine string,
	defaultResetURL string,
) *ManageSettingsUseCase {
	if !domainurl.IsKnownEngine(defaultEngine) {
		defaultEngine = domainurl.DefaultSearchEngineID
	}
	if strings.TrimSpace(defaultResetURL) == "" {
		defaultResetURL = entity.DefaultResetURL
	}
	return &ManageSettingsUseCase{
		repo:            repo,
		defaultEngine:   defaultEngine,
		defaultResetURL: defaultResetURL,
	}
}

// Get returns the effective settings.
func (uc *ManageSettingsUseCase) Get(ctx context.Context) (entity.Settings, error) {
	stored, err := uc.repo.GetAll(ctx)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	settings := entity.Settings{
		SearchEngine: uc.defaultEngine,
		ResetURL:     uc.defaultResetURL,
	}
	if engine := stored[entity.SettingSearchEngine]; domainurl.IsKnownEngine(engine) {
		settings.SearchEngine = engine
	} else if engine != "" {
		logging.FromContext(ctx).Warn().Str("engine", engine).Msg("ignoring unknown stored search engine")
	}
	if reset := strings.TrimSpace(stored[entity.SettingResetURL]); reset != "" {
		settings.ResetURL = reset
	}

	return settings, nil
}

// SearchTemplate returns the URL template of the effective search engine.
func (uc *ManageSettingsUseCase) SearchTemplate(ctx context.Context) (string, error) {
	settings, err := uc.Get(ctx)
	if err != nil {
		return "", err
	}
	return domainurl.EngineTemplate(settings.SearchEngine), nil
}

// SetSearchEngine stores the search engine after validating it.
func (uc *ManageSettingsUseCase) SetSearchEngine(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if !domainurl.IsKnownEngine(id) {
		return fmt.Errorf("%w: %q", ErrUnknownEngine, id)
	}
	if err := uc.repo.Set(ctx, entity.SettingSearchEngine, id); err != nil {
		return fmt.Errorf("failed to save search engine: %w", err)
	}
	logging.FromContext(ctx).Info().Str("engine", id).Msg("search engine updated")
	return nil
}

// SetResetURL stores the reset target. A blank value restores the default.
// The stored value is returned.
func (uc *ManageSettingsUseCase) SetResetURL(ctx context.Context, resetURL string) (string, error) {
	resetURL = strings.TrimSpace(resetURL)
	if resetURL == "" {
		resetURL = uc.defaultResetURL
	} else if !domainurl.HasScheme(resetURL) && domainurl.LooksLikeURL(resetURL) {
		resetURL = domainurl.Normalize(resetURL)
	}
	if err := uc.repo.Set(ctx, entity.SettingResetURL, resetURL); err != nil {
		return "", fmt.Errorf("failed to save reset url: %w", err)
	}
	logging.FromContext(ctx).Info().Str("reset_url", resetURL).Msg("reset url updated")
	return resetURL, nil
}

// Engines lists the selectable search engines.
func (uc *ManageSettingsUseCase) Engines() []entity.SearchEngine {
	return domainurl.SearchEngines()
}
