package palette_test

import (
	"fmt"
	"testing"

	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/domain/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(results []entity.Result) []entity.ResultKind {
	out := make([]entity.ResultKind, 0, len(results))
	for _, r := range results {
		out = append(out, r.Kind)
	}
	return out
}

func titles(results []entity.Result) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Title)
	}
	return out
}

func TestEngine_BlankQueryReturnsNothing(t *testing.T) {
	e := palette.NewEngine(palette.DefaultPolicy())

	got := e.Search(palette.Input{
		Query:   "   ",
		Tabs:    []entity.Tab{{ID: 1, Title: "Example", URL: "https://example.com"}},
		Actions: entity.DefaultActions(),
	})

	assert.Zero(t, got.Len())
	assert.Empty(t, e.SearchMerged(palette.Input{Query: ""}))
}

func TestEngine_DedupsBookmarksAgainstOpenTabs(t *testing.T) {
	e := palette.NewEngine(palette.DefaultPolicy())

	got := e.Search(palette.Input{
		Query: "git",
		Tabs: []entity.Tab{
			{ID: 4, Title: "GitHub", URL: "https://github.com/x"},
		},
		Bookmarks: []entity.Bookmark{
			{ID: "b1", Title: "GH", URL: "https://github.com/y"},
			{ID: "b2", Title: "GitLab", URL: "https://gitlab.com"},
		},
	})

	require.Len(t, got.Tabs, 1)
	assert.Equal(t, "4", got.Tabs[0].ID)
	assert.Equal(t, "github.com", got.Tabs[0].Subtitle)

	require.Len(t, got.BookmarksURL, 1)
	assert.Equal(t, "b2", got.BookmarksURL[0].ID)
	assert.Empty(t, got.BookmarksTitle)
}

func TestEngine_DedupsTitleOnlyBookmarks(t *testing.T) {
	e := palette.NewEngine(palette.DefaultPolicy())

	got := e.Search(palette.Input{
		Query: "manual",
		Tabs: []entity.Tab{
			{ID: 1, Title: "Manual pages", URL: "https://man7.org/linux"},
		},
		Bookmarks: []entity.Bookmark{
			{ID: "covered", Title: "Linux manual", URL: "https://www.man7.org/other"},
			{ID: "kept", Title: "Manual of style", URL: "https://style.example"},
		},
	})

	require.Len(t, got.Tabs, 1)
	assert.Empty(t, got.BookmarksURL)
	require.Len(t, got.BookmarksTitle, 1)
	assert.Equal(t, "kept", got.BookmarksTitle[0].ID)
}

func TestEngine_CapsAfterDedup(t *testing.T) {
	e := palette.NewEngine(palette.DefaultPolicy())

	bookmarks := make([]entity.Bookmark, 0, 12)
	for i := range 3 {
		bookmarks = append(bookmarks, entity.Bookmark{
			ID:  fmt.Sprintf("covered-%d", i),
			URL: fmt.Sprintf("https://covered.example/docs/%d", i),
		})
	}
	for i := range 9 {
		bookmarks = append(bookmarks, entity.Bookmark{
			ID:  fmt.Sprintf("site-%d", i),
			URL: fmt.Sprintf("https://site%d.example/docs", i),
		})
	}

	got := e.Search(palette.Input{
		Query:     "docs",
		Tabs:      []entity.Tab{{ID: 1, Title: "Docs", URL: "https://covered.example/docs"}},
		Bookmarks: bookmarks,
	})

	require.Len(t, got.BookmarksURL, 9)
	for i, r := range got.BookmarksURL {
		assert.Equal(t, fmt.Sprintf("site-%d", i), r.ID)
	}
}

func TestEngine_EmptyHostNeverDedups(t *testing.T) {
	e := palette.NewEngine(palette.DefaultPolicy())

	got := e.Search(palette.Input{
		Query: "notes",
		Tabs: []entity.Tab{
			{ID: 1, Title: "notes", URL: "::bad notes"},
			{ID: 2, Title: "Notes app", URL: "https://notes.example"},
		},
		Bookmarks: []entity.Bookmark{
			{ID: "unparsable", Title: "old notes", URL: "::bad-notes"},
			{ID: "covered", Title: "Notes", URL: "https://notes.example/inbox"},
		},
	})

	require.Len(t, got.Tabs, 2)
	assert.Empty(t, got.Tabs[0].Host)
	require.Len(t, got.BookmarksURL, 1)
	assert.Equal(t, "unparsable", got.BookmarksURL[0].ID)
	assert.Empty(t, got.BookmarksTitle)
}

func TestEngine_SplitsBookmarksByMatchField(t *testing.T) {
	e := palette.NewEngine(palette.DefaultPolicy())

	got := e.Search(palette.Input{
		Query: "news",
		Bookmarks: []entity.Bookmark{
			{ID: "url", Title: "Daily", URL: "https://news.example.org"},
			{ID: "title", Title: "Tech News", URL: "https://example.net"},
		},
	})

	require.Len(t, got.BookmarksURL, 1)
	require.Len(t, got.BookmarksTitle, 1)
	assert.Equal(t, "url", got.BookmarksURL[0].ID)
	assert.Equal(t, "title", got.BookmarksTitle[0].ID)
}

func TestEngine_DefaultMergeOrder(t *testing.T) {
	e := palette.NewEngine(palette.DefaultPolicy())

	got := e.SearchMerged(palette.Input{
		Query:     "set",
		Tabs:      []entity.Tab{{ID: 1, Title: "Settings docs", URL: "https://docs.example.com"}},
		Bookmarks: []entity.Bookmark{{ID: "u", Title: "x", URL: "https://settle.example.io/set"}, {ID: "t", Title: "Reset guide", URL: "https://guide.example.dev"}},
		Actions:   entity.DefaultActions(),
	})

	require.GreaterOrEqual(t, len(got), 4)
	assert.Equal(t, entity.ResultKindBookmark, got[0].Kind)
	assert.Equal(t, "u", got[0].ID)
	assert.Equal(t, entity.ResultKindTab, got[1].Kind)
	assert.Equal(t, "t", got[2].ID)
	for _, r := range got[3:] {
		assert.Equal(t, entity.ResultKindAction, r.Kind)
	}
}

func TestBuckets_Merge(t *testing.T) {
	b := palette.Buckets{
		Tabs:           []entity.Result{{Kind: entity.ResultKindTab, Title: "tab"}},
		BookmarksURL:   []entity.Result{{Kind: entity.ResultKindBookmark, Title: "bm-url"}},
		BookmarksTitle: []entity.Result{{Kind: entity.ResultKindBookmark, Title: "bm-title"}},
		Actions:        []entity.Result{{Kind: entity.ResultKindAction, Title: "action"}},
	}

	tests := []struct {
		order palette.MergeOrder
		want  []string
	}{
		{palette.MergeBookmarksFirst, []string{"bm-url", "tab", "bm-title", "action"}},
		{palette.MergeTabsFirst, []string{"tab", "bm-url", "bm-title", "action"}},
		{palette.MergeActionsFirst, []string{"action", "tab", "bm-url", "bm-title"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			assert.Equal(t, tt.want, titles(b.Merge(tt.order)))
		})
	}
}

func TestEngine_CapsEachBucket(t *testing.T) {
	tabs := make([]entity.Tab, 0, 15)
	bookmarks := make([]entity.Bookmark, 0, 15)
	for i := 0; i < 15; i++ {
		tabs = append(tabs, entity.Tab{ID: entity.TabID(i + 1), Title: "match", URL: fmt.Sprintf("https://tab%d.example.com", i)})
		bookmarks = append(bookmarks, entity.Bookmark{ID: fmt.Sprint(i), Title: "match", URL: fmt.Sprintf("https://bm%d.example.org", i)})
	}
	actions := make([]entity.Action, 0, 8)
	for i := 0; i < 8; i++ {
		actions = append(actions, entity.Action{ID: entity.ActionID(fmt.Sprint("a", i)), Title: "match"})
	}

	got := palette.NewEngine(palette.DefaultPolicy()).Search(palette.Input{
		Query:     "MATCH",
		Tabs:      tabs,
		Bookmarks: bookmarks,
		Actions:   actions,
	})

	assert.Len(t, got.Tabs, 10)
	assert.Empty(t, got.BookmarksURL)
	assert.Len(t, got.BookmarksTitle, 10)
	assert.Len(t, got.Actions, 5)
	assert.LessOrEqual(t, got.Len(), 35)
}

func TestEngine_CustomPolicyCaps(t *testing.T) {
	e := palette.NewEngine(palette.Policy{Order: palette.MergeTabsFirst, TabLimit: 1, ActionLimit: 2})

	got := e.SearchMerged(palette.Input{
		Query: "e",
		Tabs: []entity.Tab{
			{ID: 1, Title: "one", URL: "https://one.example"},
			{ID: 2, Title: "two", URL: "https://two.example"},
		},
		Actions: entity.DefaultActions(),
	})

	assert.Equal(t, []entity.ResultKind{entity.ResultKindTab, entity.ResultKindAction, entity.ResultKindAction}, kinds(got))
	assert.Equal(t, palette.DefaultBookmarkLimit, e.Policy().BookmarkLimit)
}

func TestEngine_UntitledTabAndBlankBookmarkTitle(t *testing.T) {
	got := palette.NewEngine(palette.DefaultPolicy()).Search(palette.Input{
		Query:     "example",
		Tabs:      []entity.Tab{{ID: 9, URL: "https://www.example.com/a"}},
		Bookmarks: []entity.Bookmark{{ID: "b", Title: "  ", URL: "https://example.org/page"}},
	})

	require.Len(t, got.Tabs, 1)
	assert.Equal(t, entity.UntitledTitle, got.Tabs[0].Title)
	assert.Equal(t, "example.com", got.Tabs[0].Host)

	require.Len(t, got.BookmarksURL, 1)
	assert.Equal(t, "example.org", got.BookmarksURL[0].Title)
	assert.Equal(t, "https://example.org/page", got.BookmarksURL[0].Subtitle)
}

func TestEngine_ActionsMatchKeywords(t *testing.T) {
	got := palette.NewEngine(palette.DefaultPolicy()).Search(palette.Input{
		Query:   "tidy",
		Actions: entity.DefaultActions(),
	})

	require.NotEmpty(t, got.Actions)
	assert.Equal(t, string(entity.ActionCleanup), got.Actions[0].ID)
}

func TestEngine_FaviconResolverIsApplied(t *testing.T) {
	var calls []string
	resolve := func(pageURL, host, live string) string {
		calls = append(calls, host)
		if live != "" {
			return live
		}
		return "icon:" + host
	}

	got := palette.NewEngine(palette.DefaultPolicy()).Search(palette.Input{
		Query:     "docs",
		Tabs:      []entity.Tab{{ID: 1, Title: "Docs", URL: "https://go.dev/doc", FaviconURL: "https://go.dev/favicon.ico"}},
		Bookmarks: []entity.Bookmark{{ID: "b", Title: "Rust docs", URL: "https://doc.rust-lang.org"}},
		Favicons:  resolve,
	})

	require.Len(t, got.Tabs, 1)
	assert.Equal(t, "https://go.dev/favicon.ico", got.Tabs[0].FaviconURL)
	require.Len(t, got.BookmarksTitle, 1)
	assert.Equal(t, "icon:doc.rust-lang.org", got.BookmarksTitle[0].FaviconURL)
	assert.ElementsMatch(t, []string{"go.dev", "doc.rust-lang.org"}, calls)
}

func TestParseMergeOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    palette.MergeOrder
		wantErr bool
	}{
		{in: "", want: palette.MergeBookmarksFirst},
		{in: "Tabs-First", want: palette.MergeTabsFirst},
		{in: " actions-first ", want: palette.MergeActionsFirst},
		{in: "random", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := palette.ParseMergeOrder(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
