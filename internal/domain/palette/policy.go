package palette

import (
	"fmt"
	"strings"
)

// MergeOrder decides how the independently capped buckets are concatenated.
type MergeOrder string

const (
	// MergeBookmarksFirst: URL bookmarks, tabs, title-only bookmarks, actions.
	MergeBookmarksFirst MergeOrder = "bookmarks-first"
	// MergeTabsFirst: tabs, URL bookmarks, title-only bookmarks, actions.
	MergeTabsFirst MergeOrder = "tabs-first"
	// MergeActionsFirst: actions, tabs, URL bookmarks, title-only bookmarks.
	MergeActionsFirst MergeOrder = "actions-first"
)

// Default bucket caps.
const (
	DefaultTabLimit      = 10
	DefaultBookmarkLimit = 10
	DefaultActionLimit   = 5
)

// Policy configures merge order and per-bucket caps.
type Policy struct {
	Order         MergeOrder
	TabLimit      int
	BookmarkLimit int
	ActionLimit   int
}

// DefaultPolicy returns the bookmarks-first policy with the default caps.
func DefaultPolicy() Policy {
	return Policy{
		Order:         MergeBookmarksFirst,
		TabLimit:      DefaultTabLimit,
		BookmarkLimit: DefaultBookmarkLimit,
		ActionLimit:   DefaultActionLimit,
	}
}

// ParseMergeOrder converts a config value into a MergeOrder.
func ParseMergeOrder(s string) (MergeOrder, error) {
	switch MergeOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", MergeBookmarksFirst:
		return MergeBookmarksFirst, nil
	case MergeTabsFirst:
		return MergeTabsFirst, nil
	case MergeActionsFirst:
		return MergeActionsFirst, nil
	default:
		return "", fmt.Errorf("unknown merge order %q (valid: %s, %s, %s)",
			s, MergeBookmarksFirst, MergeTabsFirst, MergeActionsFirst)
	}
}

// normalized fills zero or negative caps with defaults.
func (p Policy) normalized() Policy {
	if p.Order == "" {
		p.Order = MergeBookmarksFirst
	}
	if p.TabLimit <= 0 {
		p.TabLimit = DefaultTabLimit
	}
	if p.BookmarkLimit <= 0 {
		p.BookmarkLimit = DefaultBookmarkLimit
	}
	if p.ActionLimit <= 0 {
		p.ActionLimit = DefaultActionLimit
	}
	return p
}
