package entity

import "strconv"

// TabID uniquely identifies a browser tab while it is open.
type TabID int64

// String returns the decimal form used in results and logs.
func (id TabID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Tab represents an open browser tab as reported by the host browser.
type Tab struct {
	ID         TabID  `json:"id"`
	WindowID   int64  `json:"windowId,omitempty"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	FaviconURL string `json:"favIconUrl,omitempty"`
	Active     bool   `json:"active,omitempty"`
	Index      int    `json:"index"`
}

// DisplayTitle returns the tab title, falling back to "Untitled".
func (t Tab) DisplayTitle() string {
	if t.Title == "" {
		return UntitledTitle
	}
	return t.Title
}

// TabIDs extracts the identifiers of tabs, preserving order.
func TabIDs(tabs []Tab) []TabID {
	ids := make([]TabID, 0, len(tabs))
	for _, tab := range tabs {
		ids = append(ids, tab.ID)
	}
	return ids
}

// ActiveTabID returns the identifier of the active tab, if any.
func ActiveTabID(tabs []Tab) (TabID, bool) {
	for _, tab := range tabs {
		if tab.Active {
			return tab.ID, true
		}
	}
	return 0, false
}
