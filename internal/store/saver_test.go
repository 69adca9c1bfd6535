package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baseproject/internal/config"
)

// fakePersister fails the first failures calls, then succeeds.
type fakePersister struct {
	mu       sync.Mutex
	calls    int
	failures int
	err      error
	gate     chan struct{}
}

func (p *fakePersister) Save() error {
	if p.gate != nil {
		<-p.gate
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.calls <= p.failures {
		return p.err
	}
	return nil
}

func (p *fakePersister) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestSaver_FlushWithoutRequests(t *testing.T) {
	p := &fakePersister{}
	s := NewSaver(p)
	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, 0, p.Calls())
}

func TestSaver_StoppedFlushSavesInline(t *testing.T) {
	p := &fakePersister{}
	s := NewSaver(p)
	s.Request()
	s.Request()
	assert.True(t, s.Pending())

	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, 1, p.Calls())
	assert.False(t, s.Pending())
}

func TestSaver_CoalescesRequests(t *testing.T) {
	p := &fakePersister{gate: make(chan struct{})}
	s := NewSaver(p)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	s.Request()
	// the first save is blocked on the gate, the next requests pile up
	time.Sleep(20 * time.Millisecond)
	for i := 0; i < 10; i++ {
		s.Request()
	}
	close(p.gate)

	require.NoError(t, s.Flush(ctx))
	assert.LessOrEqual(t, p.Calls(), 2)
	assert.GreaterOrEqual(t, p.Calls(), 1)
	require.NoError(t, s.Stop(ctx))
}

func TestSaver_RetriesOnce(t *testing.T) {
	rec := config.NewRecorder()
	p := &fakePersister{failures: 1, err: errors.New("disk busy")}
	s := NewSaver(p, WithRetryDelay(time.Millisecond), WithSaverReporter(rec))

	s.Request()
	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, 2, p.Calls())
	assert.Equal(t, []config.EventReason{config.ReasonSaveRetried}, rec.Reasons())
}

func TestSaver_ReportsFailureAfterRetry(t *testing.T) {
	rec := config.NewRecorder()
	var failed atomic.Int32
	diskFull := errors.New("disk full")
	p := &fakePersister{failures: 100, err: diskFull}
	s := NewSaver(p,
		WithRetryDelay(time.Millisecond),
		WithSaverReporter(rec),
		WithOnError(func(error) { failed.Add(1) }),
	)

	s.Request()
	err := s.Flush(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, diskFull)
	assert.Equal(t, 2, p.Calls())
	assert.Equal(t, int32(1), failed.Load())
	assert.Equal(t, []config.EventReason{config.ReasonSaveRetried, config.ReasonSaveFailed}, rec.Reasons())
}

func TestSaver_ClosedStoreIsNotRetried(t *testing.T) {
	st := NewMemory()
	require.NoError(t, st.Close())
	s := NewSaver(st, WithRetryDelay(time.Millisecond), WithSaverReporter(config.NewRecorder()))

	s.Request()
	assert.ErrorIs(t, s.Flush(context.Background()), ErrClosed)
}

func TestSaver_StopWritesPending(t *testing.T) {
	p := &fakePersister{}
	s := NewSaver(p)
	ctx := context.Background()
	s.Start(ctx)
	require.NoError(t, s.Stop(ctx))

	s.Request()
	require.NoError(t, s.Stop(ctx))
	assert.Equal(t, 1, p.Calls())
}

func TestSaver_FlushHonoursContext(t *testing.T) {
	p := &fakePersister{gate: make(chan struct{})}
	s := NewSaver(p)
	s.Start(context.Background())

	s.Request()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, s.Flush(ctx), context.DeadlineExceeded)

	close(p.gate)
	require.NoError(t, s.Stop(context.Background()))
}
