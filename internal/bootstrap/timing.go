package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/flashmark/internal/logging"
)

// phaseTimer records how long each daemon startup phase took.
type phaseTimer struct {
	mu     sync.Mutex
	start  time.Time
	last   time.Time
	phases []phase
}

type phase struct {
	name string
	took time.Duration
}

func newPhaseTimer() *phaseTimer {
	now := time.Now()
	return &phaseTimer{start: now, last: now}
}

// Mark closes the current phase under name.
func (t *phaseTimer) Mark(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.phases = append(t.phases, phase{name: name, took: now.Sub(t.last)})
	t.last = now
}

// Total returns the time since the timer was created.
func (t *phaseTimer) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return time.Since(t.start)
}

// Log writes every phase as one debug event.
func (t *phaseTimer) Log(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).Debug().Dur("total", time.Since(t.start))
	for _, p := range t.phases {
		event = event.Dur(p.name, p.took)
	}
	event.Msg("startup timing")
}
