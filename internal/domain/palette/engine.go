// Package palette implements the command palette query engine.
//
// The engine is pure: it ranks a snapshot of tabs, bookmarks and actions
// against a query using case-insensitive substring matching, removes
// bookmarks already covered by an open tab, caps each bucket and merges the
// buckets in the order chosen by the policy.
package palette

import (
	"strings"

	"github.com/bnema/flashmark/internal/domain/entity"
	domainurl "github.com/bnema/flashmark/internal/domain/url"
)

// FaviconResolver returns the icon reference for a page.
// liveIcon is the favicon reported by the browser for an open tab (may be empty).
type FaviconResolver func(pageURL, host, liveIcon string) string

// Input is one query evaluation.
type Input struct {
	Query     string
	Tabs      []entity.Tab
	Bookmarks []entity.Bookmark
	Actions   []entity.Action
	Favicons  FaviconResolver
}

// Buckets are the capped result categories before merging.
type Buckets struct {
	Tabs           []entity.Result `json:"tabs"`
	BookmarksURL   []entity.Result `json:"bookmarksPrimary"`
	BookmarksTitle []entity.Result `json:"bookmarksSecondary"`
	Actions        []entity.Result `json:"actions"`
}

// Len returns the total number of results across buckets.
func (b Buckets) Len() int {
	return len(b.Tabs) + len(b.BookmarksURL) + len(b.BookmarksTitle) + len(b.Actions)
}

// Merge concatenates the buckets in the given order.
func (b Buckets) Merge(order MergeOrder) []entity.Result {
	var groups [][]entity.Result
	switch order {
	case MergeTabsFirst:
		groups = [][]entity.Result{b.Tabs, b.BookmarksURL, b.BookmarksTitle, b.Actions}
	case MergeActionsFirst:
		groups = [][]entity.Result{b.Actions, b.Tabs, b.BookmarksURL, b.BookmarksTitle}
	default:
		groups = [][]entity.Result{b.BookmarksURL, b.Tabs, b.BookmarksTitle, b.Actions}
	}

	out := make([]entity.Result, 0, b.Len())
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Engine evaluates queries under a fixed policy.
type Engine struct {
	policy Policy
}

// NewEngine creates an engine. Zero caps fall back to the defaults.
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy.normalized()}
}

// Policy returns the effective policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// NormalizeQuery trims and lower-cases a query.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Search evaluates the input and returns the capped buckets.
// A blank query yields empty buckets.
func (e *Engine) Search(in Input) Buckets {
	q := NormalizeQuery(in.Query)
	empty := Buckets{
		Tabs:           []entity.Result{},
		BookmarksURL:   []entity.Result{},
		BookmarksTitle: []entity.Result{},
		Actions:        []entity.Result{},
	}
	if q == "" {
		return empty
	}

	resolve := in.Favicons
	if resolve == nil {
		resolve = func(_, _, live string) string { return live }
	}

	tabs := matchTabs(q, in.Tabs, resolve)
	urlBookmarks, titleBookmarks := matchBookmarks(q, in.Bookmarks, resolve)
	actions := matchActions(q, in.Actions)

	openHosts := make(map[string]struct{}, len(tabs))
	for _, t := range tabs {
		if t.Host != "" {
			openHosts[t.Host] = struct{}{}
		}
	}
	urlBookmarks = dropCoveredHosts(urlBookmarks, openHosts)
	titleBookmarks = dropCoveredHosts(titleBookmarks, openHosts)

	return Buckets{
		Tabs:           capResults(tabs, e.policy.TabLimit),
		BookmarksURL:   capResults(urlBookmarks, e.policy.BookmarkLimit),
		BookmarksTitle: capResults(titleBookmarks, e.policy.BookmarkLimit),
		Actions:        capResults(actions, e.policy.ActionLimit),
	}
}

// SearchMerged evaluates the input and merges the buckets per policy.
func (e *Engine) SearchMerged(in Input) []entity.Result {
	return e.Search(in).Merge(e.policy.Order)
}

func matchTabs(q string, tabs []entity.Tab, resolve FaviconResolver) []entity.Result {
	out := make([]entity.Result, 0)
	for _, tab := range tabs {
		if !strings.Contains(strings.ToLower(tab.URL), q) && !strings.Contains(strings.ToLower(tab.Title), q) {
			continue
		}
		out = append(out, TabResult(tab, resolve))
	}
	return out
}

// TabResult converts an open tab into a palette result.
func TabResult(tab entity.Tab, resolve FaviconResolver) entity.Result {
	host := domainurl.ExtractHost(tab.URL)
	icon := tab.FaviconURL
	if resolve != nil {
		icon = resolve(tab.URL, host, tab.FaviconURL)
	}
	return entity.Result{
		Kind:       entity.ResultKindTab,
		ID:         tab.ID.String(),
		Title:      tab.DisplayTitle(),
		Subtitle:   host,
		URL:        tab.URL,
		Host:       host,
		FaviconURL: icon,
	}
}

func matchBookmarks(q string, bookmarks []entity.Bookmark, resolve FaviconResolver) (byURL, byTitle []entity.Result) {
	byURL = make([]entity.Result, 0)
	byTitle = make([]entity.Result, 0)
	for _, bm := range bookmarks {
		urlMatch := strings.Contains(strings.ToLower(bm.URL), q)
		titleMatch := strings.Contains(strings.ToLower(bm.Title), q)
		if !urlMatch && !titleMatch {
			continue
		}

		r := bookmarkResult(bm, resolve)
		if urlMatch {
			byURL = append(byURL, r)
		} else {
			byTitle = append(byTitle, r)
		}
	}
	return byURL, byTitle
}

func bookmarkResult(bm entity.Bookmark, resolve FaviconResolver) entity.Result {
	host := domainurl.ExtractHost(bm.URL)
	title := bm.Title
	subtitle := host
	if strings.TrimSpace(title) == "" {
		title = host
		subtitle = bm.URL
	}
	if title == "" {
		title = bm.URL
	}
	return entity.Result{
		Kind:       entity.ResultKindBookmark,
		ID:         bm.ID,
		Title:      title,
		Subtitle:   subtitle,
		URL:        bm.URL,
		Host:       host,
		FaviconURL: resolve(bm.URL, host, ""),
	}
}

func matchActions(q string, actions []entity.Action) []entity.Result {
	out := make([]entity.Result, 0)
	for _, a := range actions {
		if !actionMatches(q, a) {
			continue
		}
		out = append(out, ActionResult(a))
	}
	return out
}

func actionMatches(q string, a entity.Action) bool {
	if strings.Contains(strings.ToLower(a.Title), q) || strings.Contains(strings.ToLower(a.Description), q) {
		return true
	}
	for _, kw := range a.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}

// ActionResult converts a catalog action into a palette result.
func ActionResult(a entity.Action) entity.Result {
	return entity.Result{
		Kind:        entity.ResultKindAction,
		ID:          string(a.ID),
		Title:       a.Title,
		Subtitle:    a.Description,
		URL:         a.BrowserURL,
		Icon:        a.Icon,
		HasSettings: a.HasSettings,
	}
}

func dropCoveredHosts(results []entity.Result, hosts map[string]struct{}) []entity.Result {
	if len(hosts) == 0 {
		return results
	}
	out := results[:0]
	for _, r := range results {
		if _, covered := hosts[r.Host]; covered && r.Host != "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

func capResults(results []entity.Result, limit int) []entity.Result {
	if len(results) > limit {
		return results[:limit]
	}
	return results
}
