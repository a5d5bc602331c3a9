package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsNothingUntilAdvanced(t *testing.T) {
	s := New()
	ran := false
	s.After(200*time.Millisecond, "start", func() { ran = true })

	assert.Equal(t, 1, s.Pending())
	assert.False(t, ran)

	assert.Equal(t, 0, s.Advance(199*time.Millisecond))
	assert.False(t, ran)

	assert.Equal(t, 1, s.Advance(time.Millisecond))
	assert.True(t, ran)
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, 200*time.Millisecond, s.Now())
}

func TestSchedulerOrdersByDueThenInsertion(t *testing.T) {
	s := New()
	var order []string
	s.After(30*time.Millisecond, "c", func() { order = append(order, "c") })
	s.After(10*time.Millisecond, "a", func() { order = append(order, "a") })
	s.After(10*time.Millisecond, "b", func() { order = append(order, "b") })

	due, ok := s.NextDue()
	assert.True(t, ok)
	assert.Equal(t, 10*time.Millisecond, due)

	s.Advance(time.Second)

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestSchedulerRunsTasksScheduledByTasks(t *testing.T) {
	s := New()
	var at []time.Duration
	s.After(100*time.Millisecond, "outer", func() {
		at = append(at, s.Now())
		s.After(50*time.Millisecond, "inner", func() { at = append(at, s.Now()) })
	})

	assert.Equal(t, 2, s.Advance(time.Second))
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 150 * time.Millisecond}, at)
	assert.Equal(t, time.Second, s.Now())
}

func TestSchedulerClockNeverMovesBackwards(t *testing.T) {
	s := New()
	s.Advance(time.Second)
	s.AdvanceTo(10 * time.Millisecond)
	s.Advance(-time.Second)

	assert.Equal(t, time.Second, s.Now())

	_, ok := s.NextDue()
	assert.False(t, ok)
}
