package bridge

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/flashmark/internal/application/port"
	"github.com/bnema/flashmark/internal/domain/entity"
)

var (
	_ port.TabSource      = (*State)(nil)
	_ port.BookmarkSource = (*State)(nil)
)

// State mirrors the current window's tabs and the flattened bookmarks as
// reported by the extension.
type State struct {
	mu        sync.RWMutex
	tabs      []entity.Tab
	bookmarks []entity.Bookmark
	windowID  int64
	synced    bool
}

// NewState creates a mirror seeded with previously persisted bookmarks.
func NewState(bookmarks []entity.Bookmark) *State {
	return &State{
		tabs:      make([]entity.Tab, 0),
		bookmarks: slices.Clone(bookmarks),
	}
}

// Tabs returns the tabs ordered by their index in the window.
func (s *State) Tabs(_ context.Context) ([]entity.Tab, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tabs), nil
}

// Bookmarks returns the flattened bookmarks in document order.
func (s *State) Bookmarks(_ context.Context) ([]entity.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.bookmarks), nil
}

// Synced reports whether a full tab snapshot has been received.
func (s *State) Synced() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.synced
}

// Len returns the number of mirrored tabs.
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tabs)
}

// ApplySnapshot replaces the mirror. The tab named by active is flagged
// active, and its window becomes the mirrored window.
func (s *State) ApplySnapshot(tabs []entity.Tab, active entity.TabID) {
	next := slices.Clone(tabs)
	var window int64
	for i := range next {
		next[i].Active = next[i].ID == active
		if next[i].Active || window == 0 {
			if next[i].WindowID != 0 {
				window = next[i].WindowID
			}
		}
	}
	sortByIndex(next)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs = next
	s.windowID = window
	s.synced = true
}

// WindowID returns the mirrored window, 0 when unknown.
func (s *State) WindowID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.windowID
}

// Create inserts a new tab of the mirrored window. It reports false when the
// tab belongs to another window.
func (s *State) Create(tab entity.Tab) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inWindowLocked(tab) {
		return false
	}
	if tab.Active {
		s.clearActiveLocked()
	}
	if i := s.indexLocked(tab.ID); i >= 0 {
		s.tabs[i] = tab
	} else {
		s.tabs = append(s.tabs, tab)
	}
	sortByIndex(s.tabs)
	return true
}

// Update replaces a mirrored tab. Unknown tabs are ignored, so a late update
// never brings back a removed tab. A tab that moved to another window leaves
// the mirror and left is true.
func (s *State) Update(tab entity.Tab) (kept, left bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(tab.ID)
	if i < 0 {
		return false, false
	}
	if !s.inWindowLocked(tab) {
		s.tabs = slices.Delete(s.tabs, i, i+1)
		return false, true
	}
	if tab.Active {
		s.clearActiveLocked()
	}
	s.tabs[i] = tab
	sortByIndex(s.tabs)
	return true, false
}

// SetActive flags id as the active tab. It reports false for tabs outside
// the mirror.
func (s *State) SetActive(id entity.TabID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.clearActiveLocked()
	s.tabs[i].Active = true
	return true
}

// Remove drops a tab. Unknown ids are ignored.
func (s *State) Remove(id entity.TabID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(id); i >= 0 {
		s.tabs = slices.Delete(s.tabs, i, i+1)
	}
}

// SetBookmarks replaces the flattened bookmarks.
func (s *State) SetBookmarks(bookmarks []entity.Bookmark) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarks = slices.Clone(bookmarks)
}

func (s *State) indexLocked(id entity.TabID) int {
	return slices.IndexFunc(s.tabs, func(t entity.Tab) bool { return t.ID == id })
}

// inWindowLocked accepts tabs of the mirrored window. A zero window on
// either side means unknown and is accepted.
func (s *State) inWindowLocked(tab entity.Tab) bool {
	return s.windowID == 0 || tab.WindowID == 0 || tab.WindowID == s.windowID
}

func (s *State) clearActiveLocked() {
	for i := range s.tabs {
		s.tabs[i].Active = false
	}
}

func sortByIndex(tabs []entity.Tab) {
	slices.SortStableFunc(tabs, func(a, b entity.Tab) int {
		return a.Index - b.Index
	})
}
