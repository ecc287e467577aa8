// Package tabops plans bulk tab operations (cleanup and reset).
// Plans are pure values; executing them is the caller's job.
package tabops

import (
	"strings"

	"github.com/bnema/flashmark/internal/domain/entity"
	domainurl "github.com/bnema/flashmark/internal/domain/url"
)

// CleanupPlan lists the tabs to close and the number of hosts kept.
type CleanupPlan struct {
	Close []entity.TabID `json:"close"`
	// Kept counts hosts that keep exactly one tab open.
	Kept int `json:"kept"`
	// KeptTabs lists the surviving tab per kept host, in tab order.
	KeptTabs []entity.TabID `json:"keptTabs"`
	// Skipped lists tabs left alone (browser pages, unparsable URLs).
	Skipped []entity.TabID `json:"skipped"`
}

// PlanCleanup keeps one tab per bookmarked host and closes the rest.
//
// Tabs are visited in order. A tab is skipped when its host is empty or its
// URL is browser-internal. It is closed when its host has no bookmark or when
// an earlier tab already kept that host.
func PlanCleanup(tabs []entity.Tab, bookmarks []entity.Bookmark) CleanupPlan {
	bookmarked := make(map[string]struct{}, len(bookmarks))
	for _, bm := range bookmarks {
		if host := domainurl.ExtractHost(bm.URL); host != "" {
			bookmarked[host] = struct{}{}
		}
	}

	plan := CleanupPlan{
		Close:    make([]entity.TabID, 0),
		KeptTabs: make([]entity.TabID, 0),
		Skipped:  make([]entity.TabID, 0),
	}
	kept := make(map[string]struct{})

	for _, tab := range tabs {
		host := domainurl.ExtractHost(tab.URL)
		if host == "" || domainurl.IsBrowserInternal(tab.URL) {
			plan.Skipped = append(plan.Skipped, tab.ID)
			continue
		}
		if _, ok := bookmarked[host]; !ok {
			plan.Close = append(plan.Close, tab.ID)
			continue
		}
		if _, ok := kept[host]; ok {
			plan.Close = append(plan.Close, tab.ID)
			continue
		}
		kept[host] = struct{}{}
		plan.KeptTabs = append(plan.KeptTabs, tab.ID)
	}
	plan.Kept = len(kept)

	return plan
}

// ResetPlan opens a fresh tab and closes every tab known when the plan was made.
type ResetPlan struct {
	OpenURL string
	Close   []entity.TabID
}

// PlanReset snapshots the tab IDs to close. A blank reset URL falls back to
// the browser's new tab page.
func PlanReset(tabs []entity.Tab, resetURL string) ResetPlan {
	target := strings.TrimSpace(resetURL)
	if target == "" {
		target = entity.DefaultResetURL
	}
	return ResetPlan{
		OpenURL: target,
		Close:   entity.TabIDs(tabs),
	}
}
