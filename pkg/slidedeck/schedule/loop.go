package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.uber.org/atomic"
)

var (
	// ErrLoopRunning is returned by Run when the loop is already running.
	ErrLoopRunning = errors.New("event loop already running")
	// ErrLoopStopped is returned by Call once Stop has been called.
	ErrLoopStopped = errors.New("event loop stopped")
	// ErrQueueFull is returned by Call when the loop is too far behind.
	ErrQueueFull = errors.New("event loop queue full")
)

const defaultQueueSize = 256

// Loop serializes work for one presentation. Closures posted from any
// goroutine run one at a time on the goroutine that calls Run or Drain, and
// the loop's Scheduler is advanced from the wall clock between them.
//
// Run and Drain must not be called concurrently.
type Loop struct {
	sched   *Scheduler
	events  chan func()
	quit    chan struct{}
	quitted sync.Once
	logger  *slog.Logger

	running *atomic.Bool
	handled *atomic.Int64

	start time.Time
	now   func() time.Time
}

// NewLoop returns a loop driving sched. A nil logger discards handler panics.
func NewLoop(sched *Scheduler, logger *slog.Logger) *Loop {
	if sched == nil {
		sched = New()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loop{
		sched:   sched,
		events:  make(chan func(), defaultQueueSize),
		quit:    make(chan struct{}),
		logger:  logger,
		running: atomic.NewBool(false),
		handled: atomic.NewInt64(0),
		start:   time.Now(),
		now:     time.Now,
	}
}

// Scheduler returns the scheduler the loop drives.
func (l *Loop) Scheduler() *Scheduler {
	return l.sched
}

// Post queues fn to run on the loop. It never blocks and reports false when
// the queue is full or the loop has been stopped.
func (l *Loop) Post(fn func()) bool {
	return l.post(fn) == nil
}

func (l *Loop) post(fn func()) error {
	select {
	case <-l.quit:
		return ErrLoopStopped
	default:
	}

	select {
	case l.events <- fn:
		return nil
	default:
		return ErrQueueFull
	}
}

// Call runs fn on the loop and waits for it to finish. The error wraps
// ErrLoopStopped or ErrQueueFull when fn could not be queued.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	if err := l.post(func() {
		defer close(done)
		fn()
	}); err != nil {
		return fmt.Errorf("call: %w", err)
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Drain runs every queued closure and every task that is due, without
// blocking. Hosts with their own frame loop call it once per frame.
// It returns the number of closures and tasks run.
func (l *Loop) Drain() int {
	ran := l.tick()
	for {
		select {
		case fn := <-l.events:
			l.run(fn)
			ran++
		default:
			return ran + l.tick()
		}
	}
}

// Run processes posted closures and due tasks until ctx is done or Stop is
// called.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.running.Store(false)

	for {
		l.tick()

		var (
			timer  *time.Timer
			timerC <-chan time.Time
		)
		if due, ok := l.sched.NextDue(); ok {
			wait := due - l.elapsed()
			if wait < 0 {
				wait = 0
			}
			timer = time.NewTimer(wait)
			timerC = timer.C
		}

		select {
		case <-ctx.Done():
			stopTimer(timer)
			return ctx.Err()
		case <-l.quit:
			stopTimer(timer)
			return nil
		case fn := <-l.events:
			stopTimer(timer)
			l.run(fn)
		case <-timerC:
		}
	}
}

// Stop makes Run return and rejects further posts. It is safe to call more than once.
func (l *Loop) Stop() {
	l.quitted.Do(func() { close(l.quit) })
}

// Running reports whether Run is active.
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Handled returns the number of posted closures that have run.
func (l *Loop) Handled() int64 {
	return l.handled.Load()
}

func (l *Loop) elapsed() time.Duration {
	return l.now().Sub(l.start)
}

func (l *Loop) tick() int {
	return l.sched.AdvanceTo(l.elapsed())
}

func (l *Loop) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("Event handler panicked", "panic", r)
		}
	}()
	// Bring the clock up to date so tasks scheduled by fn are relative to now.
	l.tick()
	l.handled.Inc()
	fn()
}

func stopTimer(t *time.Timer) {
	if t != nil {
		t.Stop()
	}
}
