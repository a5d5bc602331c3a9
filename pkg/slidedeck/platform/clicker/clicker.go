// Package clicker reads a USB presentation remote through evdev.
//
// Presentation remotes enumerate as keyboards and send Page Up / Page Down
// (sometimes arrow keys) for back and forward. The clicker maps those keys to
// navigation and posts it to the presentation's event loop.
package clicker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/constants"
)

// keyPressed is the value evdev reports for a key going down. Releases
// report 0 and auto-repeats 2.
const keyPressed = 1

// Action is a navigation request from the clicker.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrevious
	ActionFirst
	ActionLast
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	case ActionFirst:
		return "first"
	case ActionLast:
		return "last"
	default:
		return "none"
	}
}

// MapKey maps a key code to the action a presenter expects from it.
func MapKey(code evdev.EvCode) Action {
	switch code {
	case evdev.KEY_PAGEDOWN, evdev.KEY_RIGHT, evdev.KEY_DOWN, evdev.KEY_SPACE, evdev.KEY_ENTER:
		return ActionNext
	case evdev.KEY_PAGEUP, evdev.KEY_LEFT, evdev.KEY_UP, evdev.KEY_BACKSPACE:
		return ActionPrevious
	case evdev.KEY_HOME, evdev.KEY_F5:
		return ActionFirst
	case evdev.KEY_END:
		return ActionLast
	default:
		return ActionNone
	}
}

// Source yields input events. *evdev.InputDevice satisfies it.
type Source interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Poster queues work on the presentation's event loop.
type Poster interface {
	Post(fn func()) bool
}

// Target is the presentation the clicker drives.
type Target interface {
	Next() bool
	Previous() bool
	GoToSlide(n int) bool
	TotalSlides() int
}

// Options configures a Clicker.
type Options struct {
	Debounce time.Duration // Minimum time between accepted presses (default constants.DefaultInputDelay)
	Grab     bool          // Take exclusive access so presses do not reach other programs
	Logger   *slog.Logger  // Diagnostics (default: discard)
}

// Clicker turns evdev key presses into navigation.
type Clicker struct {
	source   Source
	debounce time.Duration
	logger   *slog.Logger

	now  func() time.Time
	last time.Time
}

// Open opens the input device at path.
func Open(path string, options Options) (*Clicker, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, slidedeck.NewInfrastructureError("open_clicker", fmt.Errorf("%s: %w", path, err))
	}

	c := New(dev, options)
	if name, err := dev.Name(); err == nil {
		c.logger.Info("Clicker opened", "path", path, "name", name)
	}
	if options.Grab {
		if err := dev.Grab(); err != nil {
			c.logger.Warn("Failed to grab clicker; presses will also reach other programs", "path", path, "error", err)
		}
	}
	return c, nil
}

// New returns a clicker reading from source.
func New(source Source, options Options) *Clicker {
	if options.Debounce <= 0 {
		options.Debounce = constants.DefaultInputDelay
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	return &Clicker{
		source:   source,
		debounce: options.Debounce,
		logger:   options.Logger,
		now:      time.Now,
	}
}

// Run reads events until ctx is done or the source fails, posting each
// accepted action to loop. The source is closed when Run returns.
func (c *Clicker) Run(ctx context.Context, loop Poster, target Target) error {
	var closeOnce sync.Once
	closeSource := func() { closeOnce.Do(func() { c.source.Close() }) }
	stop := context.AfterFunc(ctx, closeSource)
	defer func() {
		stop()
		closeSource()
	}()

	for {
		ev, err := c.source.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read clicker: %w", err)
		}

		action := c.Accept(ev)
		if action == ActionNone {
			continue
		}
		if !loop.Post(func() { Apply(action, target) }) {
			c.logger.Warn("Dropped clicker press", "action", action.String())
		}
	}
}

// Accept filters one event and returns the action it triggers. Only key
// presses are accepted; releases, repeats and presses arriving within the
// debounce interval of the previous accepted press are ignored.
func (c *Clicker) Accept(ev *evdev.InputEvent) Action {
	if ev == nil || ev.Type != evdev.EV_KEY || ev.Value != keyPressed {
		return ActionNone
	}
	action := MapKey(ev.Code)
	if action == ActionNone {
		return ActionNone
	}

	now := c.now()
	if !c.last.IsZero() && now.Sub(c.last) < c.debounce {
		c.logger.Debug("Debounced clicker press", "action", action.String())
		return ActionNone
	}
	c.last = now
	return action
}

// Apply performs action on target.
func Apply(action Action, target Target) bool {
	switch action {
	case ActionNext:
		return target.Next()
	case ActionPrevious:
		return target.Previous()
	case ActionFirst:
		return target.GoToSlide(1)
	case ActionLast:
		return target.GoToSlide(target.TotalSlides())
	}
	return false
}
