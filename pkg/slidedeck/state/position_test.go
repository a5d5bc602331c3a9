package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPositionStartsOnFirstSlide(t *testing.T) {
	p := NewPosition(20)

	assert.Equal(t, 1, p.Current())
	assert.Equal(t, 20, p.Total())
	assert.True(t, p.IsFirst())
	assert.False(t, p.IsLast())
}

func TestNewPositionClampsTotal(t *testing.T) {
	p := NewPosition(0)

	assert.Equal(t, 1, p.Total())
	assert.True(t, p.IsFirst())
	assert.True(t, p.IsLast())
}

func TestGoToCommitsEveryValidTarget(t *testing.T) {
	const total = 20

	for start := 1; start <= total; start++ {
		for target := 1; target <= total; target++ {
			if target == start {
				continue
			}
			p := NewPosition(total)
			p.GoTo(start)

			previous, changed := p.GoTo(target)

			assert.True(t, changed, "start %d target %d", start, target)
			assert.Equal(t, start, previous)
			assert.Equal(t, target, p.Current())
		}
	}
}

func TestGoToIgnoresInvalidTargets(t *testing.T) {
	p := NewPosition(20)
	p.GoTo(7)

	for _, target := range []int{-5, 0, 7, 21, 100} {
		previous, changed := p.GoTo(target)

		assert.False(t, changed, "target %d", target)
		assert.Equal(t, 7, previous)
		assert.Equal(t, 7, p.Current())
	}
}
