package entity

import "strconv"

// UntitledTitle is displayed for tabs that report no title.
const UntitledTitle = "Untitled"

// ResultKind tells which source a palette result came from.
type ResultKind string

const (
	ResultKindTab      ResultKind = "tab"
	ResultKindBookmark ResultKind = "bookmark"
	ResultKindAction   ResultKind = "action"
)

// Result is the common unit returned to the palette UI.
type Result struct {
	Kind ResultKind `json:"type"`
	ID   string     `json:"id"`
	// Title is never empty for tabs ("Untitled") and bookmarks (host fallback).
	Title string `json:"title"`
	// Subtitle is the host for tabs and bookmarks, the full URL when the
	// bookmark title fell back to its host, and the description for actions.
	Subtitle    string `json:"subtitle"`
	URL         string `json:"url,omitempty"`
	Host        string `json:"host,omitempty"`
	FaviconURL  string `json:"favIconUrl,omitempty"`
	Icon        string `json:"icon,omitempty"`
	HasSettings bool   `json:"hasSettings,omitempty"`
}

// TabID returns the tab identifier of a tab result.
func (r Result) TabID() (TabID, bool) {
	if r.Kind != ResultKindTab {
		return 0, false
	}
	id, err := strconv.ParseInt(r.ID, 10, 64)
	if err != nil {
		return 0, false
	}
	return TabID(id), true
}
