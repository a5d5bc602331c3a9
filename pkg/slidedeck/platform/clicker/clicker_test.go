package clicker

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck"
)

type fakeSource struct {
	events []*evdev.InputEvent
	err    error
	closed bool
}

func (f *fakeSource) ReadOne() (*evdev.InputEvent, error) {
	if len(f.events) == 0 {
		return nil, f.err
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, nil
}

func (f *fakeSource) Close() error {
	f.closed = true
	return nil
}

// inlinePoster runs posted work immediately.
type inlinePoster struct{}

func (inlinePoster) Post(fn func()) bool {
	fn()
	return true
}

func press(code evdev.EvCode) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: 1}
}

func TestMapKey(t *testing.T) {
	cases := map[evdev.EvCode]Action{
		evdev.KEY_PAGEDOWN: ActionNext,
		evdev.KEY_RIGHT:    ActionNext,
		evdev.KEY_SPACE:    ActionNext,
		evdev.KEY_PAGEUP:   ActionPrevious,
		evdev.KEY_LEFT:     ActionPrevious,
		evdev.KEY_HOME:     ActionFirst,
		evdev.KEY_F5:       ActionFirst,
		evdev.KEY_END:      ActionLast,
		evdev.KEY_B:        ActionNone,
	}
	for code, want := range cases {
		assert.Equal(t, want, MapKey(code), "code %d", code)
	}
}

func TestAcceptFiltersAndDebounces(t *testing.T) {
	c := New(&fakeSource{}, Options{Debounce: 100 * time.Millisecond})
	now := time.Unix(0, 0)
	c.now = func() time.Time { return now }

	assert.Equal(t, ActionNone, c.Accept(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_PAGEDOWN, Value: 0}), "release")
	assert.Equal(t, ActionNone, c.Accept(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_PAGEDOWN, Value: 2}), "repeat")
	assert.Equal(t, ActionNone, c.Accept(&evdev.InputEvent{Type: evdev.EV_SYN}), "sync")

	assert.Equal(t, ActionNext, c.Accept(press(evdev.KEY_PAGEDOWN)))

	now = now.Add(50 * time.Millisecond)
	assert.Equal(t, ActionNone, c.Accept(press(evdev.KEY_PAGEDOWN)), "within debounce")

	now = now.Add(100 * time.Millisecond)
	assert.Equal(t, ActionPrevious, c.Accept(press(evdev.KEY_PAGEUP)))
}

func TestRunDrivesPresenter(t *testing.T) {
	p := slidedeck.New(slidedeck.Options{})
	p.Init()

	src := &fakeSource{
		events: []*evdev.InputEvent{
			press(evdev.KEY_PAGEDOWN),
			press(evdev.KEY_PAGEDOWN),
			press(evdev.KEY_END),
			press(evdev.KEY_PAGEUP),
		},
		err: io.EOF,
	}
	c := New(src, Options{})
	now := time.Unix(0, 0)
	c.now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}

	err := c.Run(context.Background(), inlinePoster{}, p)
	assert.ErrorIs(t, err, io.EOF)
	assert.True(t, src.closed)
	assert.Equal(t, 19, p.CurrentSlide())
}

func TestRunStopsQuietlyWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{err: errors.New("file already closed")}
	err := New(src, Options{}).Run(ctx, inlinePoster{}, slidedeck.New(slidedeck.Options{}))

	assert.NoError(t, err)
	require.True(t, src.closed)
}

func TestOpenMissingDevice(t *testing.T) {
	_, err := Open("/dev/input/does-not-exist", Options{})
	assert.True(t, slidedeck.IsInfrastructureError(err))
}
