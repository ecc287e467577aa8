// Package snapshot persists the live tab mirror so offline commands can use it.
package snapshot

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/flashmark/internal/application/port"
	"github.com/bnema/flashmark/internal/domain/repository"
	"github.com/bnema/flashmark/internal/logging"
)

const (
	defaultInterval   = 2 * time.Second
	defaultRetries    = 2
	defaultRetryDelay = 50 * time.Millisecond
)

var _ port.SnapshotMarker = (*Service)(nil)

// Service handles debounced tab snapshots.
type Service struct {
	provider TabProvider
	order    Orderer
	repo     repository.TabSnapshotRepository
	interval time.Duration

	retries    int
	retryDelay time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	dirty  bool
	ctx    context.Context
	cancel context.CancelFunc
}

// NewService creates a new snapshot service. A non-positive interval
// selects the default.
func NewService(
	provider TabProvider,
	order Orderer,
	repo repository.TabSnapshotRepository,
	interval time.Duration,
) *Service {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Service{
		provider:   provider,
		order:      order,
		repo:       repo,
		interval:   interval,
		retries:    defaultRetries,
		retryDelay: defaultRetryDelay,
	}
}

// Start begins watching for dirty state.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("snapshot service started")
}

// Stop stops the service and saves final state.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// SetInterval changes the debounce delay for subsequent MarkDirty calls.
func (s *Service) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = defaultInterval
	}
	s.mu.Lock()
	s.interval = interval
	s.mu.Unlock()
}

// MarkDirty signals that state has changed.
// Debounces saves to avoid excessive DB writes.
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = true

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil || ctx.Err() != nil {
			return
		}

		if err := s.saveSnapshot(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to save tab snapshot")
		}
	})
}

// Dirty reports whether a save is pending.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// SaveNow forces immediate save (for shutdown).
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	dirty := s.dirty
	s.mu.Unlock()

	if !dirty {
		return nil
	}

	return s.saveSnapshot(ctx)
}

func (s *Service) saveSnapshot(ctx context.Context) error {
	// An empty mirror before the first host snapshot would wipe the last
	// persisted state, so keep the pending save until the host has synced.
	if !s.provider.Synced() {
		return nil
	}

	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()

	tabs, err := s.provider.Tabs(ctx)
	if err != nil {
		s.markPending()
		return fmt.Errorf("failed to read tab mirror: %w", err)
	}
	ordered := s.order.Snapshot(tabs)

	for attempt := 0; ; attempt++ {
		err = s.repo.Replace(ctx, ordered)
		if err == nil {
			logging.FromContext(ctx).Debug().Int("tabs", len(ordered)).Msg("tab snapshot saved")
			return nil
		}
		if attempt >= s.retries || !isBusy(err) {
			break
		}
		logging.FromContext(ctx).Debug().Err(err).Int("attempt", attempt+1).Msg("database busy, retrying snapshot")

		select {
		case <-ctx.Done():
			s.markPending()
			return ctx.Err()
		case <-time.After(s.retryDelay):
		}
	}

	s.markPending()
	return fmt.Errorf("failed to persist tab snapshot: %w", err)
}

func (s *Service) markPending() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
}

func isBusy(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}
