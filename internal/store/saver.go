package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"

	"baseproject/internal/config"
	"baseproject/pkg/logging"
)

// DefaultRetryDelay is the pause between the first failed save and its retry.
const DefaultRetryDelay = 100 * time.Millisecond

// Persister writes the whole document. *Store implements it.
type Persister interface {
	Save() error
}

// SaverOption configures a Saver.
type SaverOption func(*Saver)

// WithRetryDelay sets the pause before the single retry of a failed save.
func WithRetryDelay(d time.Duration) SaverOption {
	return func(s *Saver) {
		if d > 0 {
			s.retryDelay = d
		}
	}
}

// WithSaverReporter sets the receiver of SaveRetried and SaveFailed events.
func WithSaverReporter(r config.Reporter) SaverOption {
	return func(s *Saver) {
		s.reporter = r
	}
}

// WithOnError registers a callback for saves that failed after the retry.
func WithOnError(fn func(error)) SaverOption {
	return func(s *Saver) {
		s.onError = fn
	}
}

// WithSaverPath sets the path attached to emitted events.
func WithSaverPath(path string) SaverOption {
	return func(s *Saver) {
		s.path = path
	}
}

// Saver moves document saves off the caller's goroutine. Requests made while
// a save is pending collapse into one write, and a failed write is retried
// once before it is reported.
type Saver struct {
	p          Persister
	retryDelay time.Duration
	reporter   config.Reporter
	onError    func(error)
	path       string

	signal chan struct{}

	mu        sync.Mutex
	requested uint64
	completed uint64
	lastErr   error
	progress  chan struct{}
	running   bool
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewSaver returns a stopped Saver for p.
func NewSaver(p Persister, opts ...SaverOption) *Saver {
	s := &Saver{
		p:          p,
		retryDelay: DefaultRetryDelay,
		signal:     make(chan struct{}, 1),
		progress:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reporter = config.ReporterOrLog(s.reporter, "Saver")
	return s
}

// Start launches the background save loop. It returns immediately; calling it
// on a running Saver does nothing.
func (s *Saver) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	go s.loop(ctx, stopCh, doneCh)
	logging.Debug("Saver", "Started background saver")
}

// Request marks the document dirty. It never blocks.
func (s *Saver) Request() {
	s.mu.Lock()
	s.requested++
	s.mu.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
	}
}

// Pending reports whether a requested save has not completed yet.
func (s *Saver) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed < s.requested
}

// Flush waits until every save requested before the call has been attempted
// and returns the outcome of the latest attempt. On a stopped Saver the save
// runs on the caller's goroutine.
func (s *Saver) Flush(ctx context.Context) error {
	s.mu.Lock()
	target := s.requested
	running := s.running
	s.mu.Unlock()

	if !running {
		return s.runOnce(ctx, target)
	}

	for {
		s.mu.Lock()
		if s.completed >= target {
			err := s.lastErr
			s.mu.Unlock()
			return err
		}
		progress := s.progress
		s.mu.Unlock()

		select {
		case <-progress:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Stop ends the background loop and writes any pending save inline.
func (s *Saver) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		close(s.stopCh)
		doneCh := s.doneCh
		s.running = false
		s.mu.Unlock()
		<-doneCh
	} else {
		s.mu.Unlock()
	}

	s.mu.Lock()
	target := s.requested
	s.mu.Unlock()
	return s.runOnce(ctx, target)
}

func (s *Saver) loop(ctx context.Context, stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-s.signal:
			s.mu.Lock()
			target := s.requested
			s.mu.Unlock()
			_ = s.runOnce(ctx, target)
		}
	}
}

// runOnce saves when target is not yet covered and records the outcome.
func (s *Saver) runOnce(ctx context.Context, target uint64) error {
	s.mu.Lock()
	if s.completed >= target {
		err := s.lastErr
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	err := s.saveWithRetry(ctx)

	s.mu.Lock()
	if target > s.completed {
		s.completed = target
	}
	s.lastErr = err
	close(s.progress)
	s.progress = make(chan struct{})
	s.mu.Unlock()
	return err
}

func (s *Saver) saveWithRetry(ctx context.Context) error {
	operation := func() (struct{}, error) {
		err := s.p.Save()
		if errors.Is(err, ErrClosed) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}
	notify := func(err error, wait time.Duration) {
		logging.Warn("Saver", "Save failed, retrying in %s: %v", wait, err)
		s.reporter.Report(config.NewEvent(config.ReasonSaveRetried, "", s.path, err))
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(s.retryDelay)),
		backoff.WithMaxTries(2),
		backoff.WithNotify(notify),
	)
	if err != nil {
		s.reporter.Report(config.NewEvent(config.ReasonSaveFailed, "", s.path, err))
		if s.onError != nil {
			s.onError(err)
		}
	}
	return err
}
