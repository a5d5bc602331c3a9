package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/constants"
)

// recorder is a Navigator that validates targets the way the position state does
// and records every committed target.
type recorder struct {
	current   int
	total     int
	requested []int
	committed []int
}

func newRecorder(total int) *recorder {
	return &recorder{current: 1, total: total}
}

func (r *recorder) Current() int { return r.current }
func (r *recorder) Total() int   { return r.total }

func (r *recorder) GoTo(target int) bool {
	r.requested = append(r.requested, target)
	if target < 1 || target > r.total || target == r.current {
		return false
	}
	r.current = target
	r.committed = append(r.committed, target)
	return true
}

func TestPreviousOnFirstSlideRequestsNothing(t *testing.T) {
	r := newRecorder(20)
	d := NewDispatcher(r)

	assert.False(t, d.Previous())
	assert.Equal(t, 1, r.current)
	assert.Empty(t, r.requested)
}

func TestNextOnLastSlideRequestsNothing(t *testing.T) {
	r := newRecorder(20)
	r.current = 20
	d := NewDispatcher(r)

	assert.False(t, d.Next())
	assert.Empty(t, r.requested)
}

func TestNextThreeTimes(t *testing.T) {
	r := newRecorder(20)
	d := NewDispatcher(r)

	for i := 0; i < 3; i++ {
		d.Next()
	}

	assert.Equal(t, 4, r.current)
	assert.Equal(t, []int{2, 3, 4}, r.committed)
}

func TestGoToSlideDelegatesBounds(t *testing.T) {
	r := newRecorder(20)
	d := NewDispatcher(r)

	assert.False(t, d.GoToSlide(0))
	assert.False(t, d.GoToSlide(21))
	assert.True(t, d.GoToSlide(20))
	assert.Equal(t, []int{0, 21, 20}, r.requested)
	assert.Equal(t, 20, r.current)
}

func TestHandleKey(t *testing.T) {
	cases := []struct {
		name           string
		start          int
		key            Key
		want           int
		handled        bool
		preventDefault bool
	}{
		{"left goes back", 5, KeyLeft, 4, true, true},
		{"right advances", 5, KeyRight, 6, true, true},
		{"space advances", 5, KeySpace, 6, true, true},
		{"home jumps to first", 5, KeyHome, 1, true, false},
		{"end jumps to last", 5, KeyEnd, 20, true, false},
		{"left at first still prevents default", 1, KeyLeft, 1, true, true},
		{"enter is not bound", 5, KeyEnter, 5, false, false},
		{"page down is not bound", 5, KeyPageDown, 5, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRecorder(20)
			r.current = tc.start
			d := NewDispatcher(r)

			handled, preventDefault := d.HandleKey(tc.key)

			assert.Equal(t, tc.handled, handled)
			assert.Equal(t, tc.preventDefault, preventDefault)
			assert.Equal(t, tc.want, r.current)
		})
	}
}

func TestDots(t *testing.T) {
	r := newRecorder(20)
	d := NewDispatcher(r)

	assert.True(t, d.ActivateDot(9))
	assert.Equal(t, 10, r.current)

	assert.True(t, d.DotKey(2, KeyEnter))
	assert.Equal(t, 3, r.current)

	assert.True(t, d.DotKey(6, KeySpace))
	assert.Equal(t, 7, r.current)

	assert.False(t, d.DotKey(0, KeyLeft))
	assert.Equal(t, 7, r.current)
}

func TestPressControl(t *testing.T) {
	r := newRecorder(20)
	d := NewDispatcher(r)

	d.PressControl(ControlNext)
	d.PressControl(ControlNext)
	d.PressControl(ControlPrevious)

	assert.Equal(t, 2, r.current)
}

func TestHandleButton(t *testing.T) {
	r := newRecorder(20)
	d := NewDispatcher(r)

	assert.True(t, d.HandleButton(constants.VirtualButtonR1))
	assert.Equal(t, 2, r.current)
	assert.True(t, d.HandleButton(constants.VirtualButtonStart))
	assert.Equal(t, 20, r.current)
	assert.True(t, d.HandleButton(constants.VirtualButtonLeft))
	assert.Equal(t, 19, r.current)
	assert.True(t, d.HandleButton(constants.VirtualButtonSelect))
	assert.Equal(t, 1, r.current)
	assert.False(t, d.HandleButton(constants.VirtualButtonY))
}

func TestSwipe(t *testing.T) {
	cases := []struct {
		name  string
		start float64
		end   float64
		dir   Direction
		want  int
	}{
		{"leftward 60 advances", 300, 240, SwipeForward, 6},
		{"rightward 60 goes back", 240, 300, SwipeBackward, 4},
		{"leftward 30 ignored", 300, 270, SwipeNone, 5},
		{"exactly 50 ignored", 300, 250, SwipeNone, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRecorder(20)
			r.current = 5
			d := NewDispatcher(r)

			d.TouchStart(tc.start)
			assert.Equal(t, tc.dir, d.TouchEnd(tc.end))
			assert.Equal(t, tc.want, r.current)
		})
	}
}

func TestSwipeTriggersExactlyOneTransition(t *testing.T) {
	r := newRecorder(20)
	d := NewDispatcher(r)

	d.TouchStart(100)
	d.TouchEnd(40)

	assert.Equal(t, []int{2}, r.committed)
}

func TestParseKey(t *testing.T) {
	for _, k := range []Key{KeyLeft, KeyRight, KeySpace, KeyHome, KeyEnd, KeyEnter, KeyPageUp, KeyPageDown} {
		assert.Equal(t, k, ParseKey(k.String()))
	}
	assert.Equal(t, KeyNone, ParseKey("Escape"))
}
