// Package mru tracks tab activation recency for quick tab switching.
package mru

import (
	"slices"
	"sync"

	"github.com/bnema/flashmark/internal/domain/entity"
)

// Tracker keeps an ordered list of tab IDs, most recently used first.
// The list never contains duplicates. All methods are safe for concurrent use
// and mutations are applied one at a time.
type Tracker struct {
	mu  sync.Mutex
	ids []entity.TabID
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{ids: make([]entity.TabID, 0)}
}

// Initialize seeds the tracker from the currently open tabs, replacing any
// previous state, then moves the active tab to the front.
func (t *Tracker) Initialize(open []entity.TabID, active entity.TabID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	seen := make(map[entity.TabID]struct{}, len(open))
	ids := make([]entity.TabID, 0, len(open))
	for _, id := range open {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	t.ids = ids

	if _, ok := seen[active]; ok {
		t.moveToFrontLocked(active)
	}
}

// Activate moves the tab to the front, inserting it if unknown.
func (t *Tracker) Activate(id entity.TabID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.moveToFrontLocked(id)
}

// Create inserts a new tab at the front unless it is already tracked.
func (t *Tracker) Create(id entity.TabID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if slices.Contains(t.ids, id) {
		return
	}
	t.ids = slices.Insert(t.ids, 0, id)
}

// Remove drops the tab from the list. Unknown IDs are ignored.
func (t *Tracker) Remove(id entity.TabID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.removeLocked(id)
}

// IDs returns a copy of the current order.
func (t *Tracker) IDs() []entity.TabID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.ids)
}

// Len returns the number of tracked tabs.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.ids)
}

// Previous returns the second most recent tab, the quick-switch target.
func (t *Tracker) Previous() (entity.TabID, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.ids) < 2 {
		return 0, false
	}
	return t.ids[1], true
}

// Snapshot pairs the tracked order with live tab metadata.
// Tracked IDs without an open tab are skipped. Open tabs the tracker has not
// seen yet are appended after the tracked ones, in host order.
func (t *Tracker) Snapshot(open []entity.Tab) []entity.Tab {
	ids := t.IDs()

	byID := make(map[entity.TabID]entity.Tab, len(open))
	for _, tab := range open {
		byID[tab.ID] = tab
	}

	out := make([]entity.Tab, 0, len(open))
	tracked := make(map[entity.TabID]struct{}, len(ids))
	for _, id := range ids {
		tab, ok := byID[id]
		if !ok {
			continue
		}
		tracked[id] = struct{}{}
		out = append(out, tab)
	}

	for _, tab := range open {
		if _, ok := tracked[tab.ID]; ok {
			continue
		}
		tracked[tab.ID] = struct{}{}
		out = append(out, tab)
	}

	return out
}

func (t *Tracker) moveToFrontLocked(id entity.TabID) {
	t.removeLocked(id)
	t.ids = slices.Insert(t.ids, 0, id)
}

func (t *Tracker) removeLocked(id entity.TabID) {
	if i := slices.Index(t.ids, id); i >= 0 {
		t.ids = slices.Delete(t.ids, i, i+1)
	}
}
