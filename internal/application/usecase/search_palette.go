package usecase

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/flashmark/internal/application/port"
	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/domain/palette"
	"github.com/bnema/flashmark/internal/domain/service"
	"github.com/bnema/flashmark/internal/logging"
)

// SearchInput is one palette query.
type SearchInput struct {
	Query string
}

// SearchOutput holds the capped buckets and their merged order.
type SearchOutput struct {
	Query   string          `json:"query"`
	Buckets palette.Buckets `json:"buckets"`
	Results []entity.Result `json:"results"`
}

// SearchPaletteUseCase answers palette queries over live tabs and bookmarks.
type SearchPaletteUseCase struct {
	tabs      port.TabSource
	bookmarks port.BookmarkSource
	favicons  port.FaviconStore
	resolver  *service.FaviconService
	actions   []entity.Action

	mu     sync.RWMutex
	engine *palette.Engine
}

// NewSearchPaletteUseCase creates a search use case. favicons may be nil,
// in which case nothing is recorded and only live icons and the public
// lookup service are used.
func NewSearchPaletteUseCase(
	tabs port.TabSource,
	bookmarks port.BookmarkSource,
	favicons port.FaviconStore,
	faviconLookupURL string,
	policy palette.Policy,
) *SearchPaletteUseCase {
	var lookup service.IconLookup
	if favicons != nil {
		lookup = favicons
	}
	return &SearchPaletteUseCase{
		tabs:      tabs,
		bookmarks: bookmarks,
		favicons:  favicons,
		resolver:  service.NewFaviconService(lookup, faviconLookupURL),
		actions:   entity.DefaultActions(),
		engine:    palette.NewEngine(policy),
	}
}

// SetPolicy swaps the ranking policy, e.g. after a config reload.
func (uc *SearchPaletteUseCase) SetPolicy(policy palette.Policy) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.engine = palette.NewEngine(policy)
}

// Policy returns the active ranking policy.
func (uc *SearchPaletteUseCase) Policy() palette.Policy {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.engine.Policy()
}

// Search runs one query. A blank query returns empty results without
// touching the sources or the favicon cache.
func (uc *SearchPaletteUseCase) Search(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	log := logging.FromContext(ctx)

	uc.mu.RLock()
	engine := uc.engine
	uc.mu.RUnlock()

	query := palette.NormalizeQuery(input.Query)
	if query == "" {
		buckets := engine.Search(palette.Input{})
		return &SearchOutput{Query: query, Buckets: buckets, Results: []entity.Result{}}, nil
	}

	var (
		tabs      []entity.Tab
		bookmarks []entity.Bookmark
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tabs, err = uc.tabs.Tabs(gctx)
		if err != nil {
			return fmt.Errorf("failed to load tabs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		bookmarks, err = uc.bookmarks.Bookmarks(gctx)
		if err != nil {
			return fmt.Errorf("failed to load bookmarks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	uc.recordFavicons(tabs)

	buckets := engine.Search(palette.Input{
		Query:     query,
		Tabs:      tabs,
		Bookmarks: bookmarks,
		Actions:   uc.actions,
		Favicons:  uc.resolver.Resolve,
	})

	log.Debug().
		Str("query", query).
		Int("tabs", len(buckets.Tabs)).
		Int("bookmarks", len(buckets.BookmarksURL)+len(buckets.BookmarksTitle)).
		Int("actions", len(buckets.Actions)).
		Msg("palette search")

	return &SearchOutput{
		Query:   query,
		Buckets: buckets,
		Results: buckets.Merge(engine.Policy().Order),
	}, nil
}

// ResolveFavicon exposes the favicon chain to other use cases.
func (uc *SearchPaletteUseCase) ResolveFavicon(pageURL, host, liveIcon string) string {
	return uc.resolver.Resolve(pageURL, host, liveIcon)
}

func (uc *SearchPaletteUseCase) recordFavicons(tabs []entity.Tab) {
	if uc.favicons == nil {
		return
	}
	for _, tab := range tabs {
		if key, ok := service.Cacheable(tab.URL, tab.FaviconURL); ok {
			uc.favicons.Record(key, tab.FaviconURL)
		}
	}
}
