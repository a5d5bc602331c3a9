// Package schedule runs a presentation's work on a single logical thread.
//
// Scheduler is a virtual-clock queue of deferred tasks: nothing runs until the
// clock is advanced, which lets tests step time deterministically. Loop drives
// a Scheduler from the wall clock and serializes closures posted from other
// goroutines, so every handler runs to completion before the next one starts.
package schedule

import (
	"container/heap"
	"time"
)

// Task is a deferred action.
type Task struct {
	Name string
	Due  time.Duration

	seq uint64
	fn  func()
}

// Scheduler orders deferred tasks by due time on a virtual clock.
// Tasks due at the same instant run in the order they were scheduled.
//
// Scheduler is not safe for concurrent use; it belongs to one event loop.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	tasks taskQueue
}

// New returns a scheduler whose clock reads zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once delay has elapsed. Scheduled tasks cannot be
// cancelled. A negative delay is treated as zero.
func (s *Scheduler) After(delay time.Duration, name string, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	heap.Push(&s.tasks, &Task{Name: name, Due: s.now + delay, seq: s.seq, fn: fn})
}

// Pending returns the number of tasks that have not run yet.
func (s *Scheduler) Pending() int {
	return s.tasks.Len()
}

// NextDue returns the due time of the earliest pending task.
func (s *Scheduler) NextDue() (time.Duration, bool) {
	if s.tasks.Len() == 0 {
		return 0, false
	}
	return s.tasks[0].Due, true
}

// Advance moves the clock forward by d, running every task that falls due.
// It returns the number of tasks run.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	return s.AdvanceTo(s.now + d)
}

// AdvanceTo moves the clock to t, running every task due at or before t in
// due order. Tasks scheduled by a running task are included when they fall
// due before t. The clock never moves backwards.
func (s *Scheduler) AdvanceTo(t time.Duration) int {
	ran := 0
	for s.tasks.Len() > 0 && s.tasks[0].Due <= t {
		task := heap.Pop(&s.tasks).(*Task)
		if task.Due > s.now {
			s.now = task.Due
		}
		task.fn()
		ran++
	}
	if t > s.now {
		s.now = t
	}
	return ran
}

type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].Due == q[j].Due {
		return q[i].seq < q[j].seq
	}
	return q[i].Due < q[j].Due
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(*Task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	task := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return task
}
