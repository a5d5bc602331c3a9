package nav

import (
	"math"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/constants"
)

// Direction is the outcome of a completed swipe.
type Direction int

const (
	SwipeNone     Direction = iota
	SwipeForward            // Finger moved leftward: advance
	SwipeBackward           // Finger moved rightward: go back
)

// Swipe tracks a single horizontal touch gesture. Only the horizontal
// displacement is considered; vertical movement is ignored.
type Swipe struct {
	threshold float64
	startX    float64
}

// NewSwipe returns a tracker using the default threshold.
func NewSwipe() Swipe {
	return NewSwipeWithThreshold(constants.SwipeThreshold)
}

// NewSwipeWithThreshold returns a tracker with a custom threshold.
func NewSwipeWithThreshold(threshold float64) Swipe {
	return Swipe{threshold: threshold}
}

// Start records where the gesture began.
func (s *Swipe) Start(x float64) {
	s.startX = x
}

// End finishes the gesture at x. A displacement strictly greater than the
// threshold yields a direction; anything smaller is ignored. When no start
// was recorded the gesture is measured from zero.
func (s *Swipe) End(x float64) Direction {
	diff := s.startX - x

	if math.Abs(diff) <= s.threshold {
		return SwipeNone
	}
	if diff > 0 {
		return SwipeForward
	}
	return SwipeBackward
}
