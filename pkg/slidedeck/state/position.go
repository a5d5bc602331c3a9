// Package state holds the presentation's position, the single source of
// truth for which slide is current.
package state

// Position is the current slide identifier of one presentation. The zero
// value is not usable; create positions with NewPosition.
//
// Position is owned by a single event loop and is not safe for concurrent use.
type Position struct {
	current int
	total   int
}

// NewPosition returns a position on slide 1 of a deck with total slides.
// A total below 1 is treated as 1.
func NewPosition(total int) *Position {
	if total < 1 {
		total = 1
	}
	return &Position{current: 1, total: total}
}

// Current returns the current slide identifier.
func (p *Position) Current() int {
	return p.current
}

// Total returns the number of slides, N.
func (p *Position) Total() int {
	return p.total
}

// IsFirst reports whether the current slide is the first one.
func (p *Position) IsFirst() bool {
	return p.current == 1
}

// IsLast reports whether the current slide is the last one.
func (p *Position) IsLast() bool {
	return p.current == p.total
}

// GoTo moves to target when it lies in [1, N] and differs from the current
// slide. Any other target is ignored. It returns the slide that was current
// before the call and whether a transition was committed.
func (p *Position) GoTo(target int) (previous int, changed bool) {
	previous = p.current
	if target < 1 || target > p.total || target == p.current {
		return previous, false
	}
	p.current = target
	return previous, true
}
