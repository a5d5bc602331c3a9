package schedule

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLoop() (*Loop, *fakeClock) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	l := NewLoop(New(), nil)
	l.start = clock.now
	l.now = clock.Now
	return l, clock
}

func TestDrainRunsPostedClosuresInOrder(t *testing.T) {
	l, _ := newTestLoop()
	var order []int
	for i := 1; i <= 3; i++ {
		require.True(t, l.Post(func() { order = append(order, i) }))
	}

	assert.Equal(t, 3, l.Drain())
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, int64(3), l.Handled())
}

func TestDrainRunsTasksAsClockAdvances(t *testing.T) {
	l, clock := newTestLoop()
	ran := 0
	l.Scheduler().After(500*time.Millisecond, "sweep", func() { ran++ })

	l.Drain()
	assert.Equal(t, 0, ran)

	clock.Add(500 * time.Millisecond)
	l.Drain()
	assert.Equal(t, 1, ran)
}

func TestDrainSurvivesPanickingHandler(t *testing.T) {
	l, _ := newTestLoop()
	after := false
	l.Post(func() { panic("broken") })
	l.Post(func() { after = true })

	assert.NotPanics(t, func() { l.Drain() })
	assert.True(t, after)
}

func TestRunProcessesCallsUntilStopped(t *testing.T) {
	l := NewLoop(New(), nil)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errs := make(chan error, 1)
	go func() { errs <- l.Run(ctx) }()

	value := 0
	require.NoError(t, l.Call(ctx, func() { value = 42 }))
	assert.Equal(t, 42, value)
	assert.True(t, l.Running())

	assert.ErrorIs(t, l.Run(ctx), ErrLoopRunning)

	l.Stop()
	require.NoError(t, <-errs)
	assert.False(t, l.Post(func() {}))
}

func TestRunFiresDeferredTasks(t *testing.T) {
	l := NewLoop(New(), nil)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fired := make(chan struct{})
	l.Post(func() {
		l.Scheduler().After(10*time.Millisecond, "deferred", func() { close(fired) })
	})

	go func() { _ = l.Run(ctx) }()
	defer l.Stop()

	select {
	case <-fired:
	case <-ctx.Done():
		t.Fatal("deferred task never ran")
	}
}

func TestRunReturnsContextError(t *testing.T) {
	l := NewLoop(New(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, l.Run(ctx), context.Canceled)
}

func TestCallReportsWhyItWasRejected(t *testing.T) {
	ctx := context.Background()

	l := NewLoop(New(), nil)
	for range defaultQueueSize {
		require.True(t, l.Post(func() {}))
	}
	assert.False(t, l.Post(func() {}))
	assert.ErrorIs(t, l.Call(ctx, func() {}), ErrQueueFull)

	assert.Equal(t, defaultQueueSize, l.Drain())
	l.Stop()
	err := l.Call(ctx, func() { t.Error("ran on a stopped loop") })
	assert.ErrorIs(t, err, ErrLoopStopped)
	assert.NotErrorIs(t, err, ErrQueueFull)
}
