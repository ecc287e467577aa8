// Package debounce coalesces bursts of queries into a single evaluation.
package debounce

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bnema/flashmark/internal/logging"
)

// DefaultDelay is the quiet period before a query is evaluated.
const DefaultDelay = 50 * time.Millisecond

// ErrSuperseded is reported for a submission replaced by a newer one.
var ErrSuperseded = errors.New("superseded by a newer query")

// Func evaluates one query.
type Func[T any] func(ctx context.Context, query string) (T, error)

// Result is delivered exactly once per submission.
type Result[T any] struct {
	Query string
	Value T
	Err   error
}

// Superseded reports whether a newer submission replaced this one.
func (r Result[T]) Superseded() bool {
	return errors.Is(r.Err, ErrSuperseded)
}

// Scheduler runs the most recent query after a quiet period ("last query wins").
//
// Each Submit stops the pending timer, cancels the in-flight evaluation and
// bumps a generation counter. Only a run whose generation is still current
// delivers its value; every other submission receives ErrSuperseded.
type Scheduler[T any] struct {
	run   Func[T]
	delay time.Duration

	mu         sync.Mutex
	generation uint64
	timer      *time.Timer
	waiting    chan Result[T]
	waitingQ   string
	cancel     context.CancelFunc
	closed     bool
}

// NewScheduler creates a scheduler. A non-positive delay selects DefaultDelay.
func NewScheduler[T any](delay time.Duration, run Func[T]) *Scheduler[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Scheduler[T]{run: run, delay: delay}
}

// Submit schedules query and returns a channel that receives its result.
// The channel is buffered and receives exactly one value.
func (s *Scheduler[T]) Submit(ctx context.Context, query string) <-chan Result[T] {
	out := make(chan Result[T], 1)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		out <- Result[T]{Query: query, Err: ErrSuperseded}
		return out
	}

	s.supersedeLocked()

	s.generation++
	gen := s.generation
	s.waiting = out
	s.waitingQ = query
	s.timer = time.AfterFunc(s.delay, func() {
		s.fire(ctx, gen, query, out)
	})

	return out
}

// Generation returns the number of submissions so far.
func (s *Scheduler[T]) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Close supersedes any pending or running submission and rejects new ones.
func (s *Scheduler[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supersedeLocked()
	s.generation++
	s.closed = true
}

// supersedeLocked stops the pending timer and cancels the running evaluation.
func (s *Scheduler[T]) supersedeLocked() {
	if s.timer != nil && s.timer.Stop() && s.waiting != nil {
		// The timer never fired, so nobody else will answer this submission.
		s.waiting <- Result[T]{Query: s.waitingQ, Err: ErrSuperseded}
	}
	s.timer = nil
	s.waiting = nil
	s.waitingQ = ""

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Scheduler[T]) fire(ctx context.Context, gen uint64, query string, out chan<- Result[T]) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		out <- Result[T]{Query: query, Err: ErrSuperseded}
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.timer = nil
	s.waiting = nil
	s.waitingQ = ""
	s.mu.Unlock()

	value, err := s.run(runCtx, query)

	s.mu.Lock()
	current := gen == s.generation
	if current {
		s.cancel = nil
	}
	s.mu.Unlock()
	cancel()

	if !current {
		logging.FromContext(ctx).Trace().Str("query", query).Msg("discarding superseded result")
		out <- Result[T]{Query: query, Err: ErrSuperseded}
		return
	}
	out <- Result[T]{Query: query, Value: value, Err: err}
}
