package store

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/screen-generator/internal/logging"
	"github.com/atomicstack/screen-generator/internal/logging/events"
	"github.com/atomicstack/screen-generator/internal/model"
)

// SaveResult reports the outcome of one background write.
type SaveResult struct {
	Categories int
	Err        error
}

// Saver writes settings to a Store on a background goroutine. Save never
// blocks; when writes queue up faster than the store accepts them only the
// latest settings are written.
type Saver struct {
	store Store

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	pending *model.Settings
	closed  bool

	wake    chan struct{}
	results chan SaveResult
	wg      sync.WaitGroup
	once    sync.Once

	throttle     *throttle
	flushTimeout time.Duration
}

// NewSaver starts a saver for store. interval is the minimum spacing between
// writes; zero disables throttling.
func NewSaver(store Store, interval time.Duration) *Saver {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Saver{
		store:        store,
		ctx:          ctx,
		cancel:       cancel,
		wake:         make(chan struct{}, 1),
		results:      make(chan SaveResult, 16),
		throttle:     newThrottle(interval),
		flushTimeout: 5 * time.Second,
	}
	s.wg.Add(1)
	go s.run()
	go func() {
		s.wg.Wait()
		close(s.results)
	}()
	return s
}

// Save queues settings for writing. It satisfies settings.Persister.
func (s *Saver) Save(settings model.Settings) {
	dup := settings.Clone()
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		logging.Errorf("store: save after close dropped (%d categories)", len(dup.Categories))
		return
	}
	coalesced := s.pending != nil
	s.pending = &dup
	s.mu.Unlock()

	events.Store.SaveQueued(len(dup.Categories), coalesced)
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Results returns write outcomes. Results are dropped when nobody reads them.
// The channel is closed once Close has flushed.
func (s *Saver) Results() <-chan SaveResult {
	return s.results
}

// Close stops accepting saves, writes whatever is still pending and waits for
// the worker to exit.
func (s *Saver) Close() {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		s.cancel()
		s.wg.Wait()
	})
}

func (s *Saver) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.ctx.Done():
			s.flush()
			return
		case <-s.wake:
			if !s.throttle.wait(s.ctx) {
				s.flush()
				return
			}
			s.flush()
		}
	}
}

// flush writes whatever is pending under its own deadline, so a Close that
// lands mid-write does not cancel it.
func (s *Saver) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), s.flushTimeout)
	defer cancel()
	s.write(ctx)
}

func (s *Saver) write(ctx context.Context) {
	s.mu.Lock()
	next := s.pending
	s.pending = nil
	s.mu.Unlock()
	if next == nil {
		return
	}

	kind := string(s.store.Kind())
	err := s.store.Save(ctx, *next)
	if err != nil {
		logging.Errorf("store: save %s: %v", kind, err)
		events.Store.SaveError(kind, err)
	} else {
		events.Store.Saved(kind, len(next.Categories))
	}
	select {
	case s.results <- SaveResult{Categories: len(next.Categories), Err: err}:
	default:
	}
}
