// Package nav translates user intents into slide transitions.
//
// A Dispatcher owns no position of its own. It reads the current slide from
// a Navigator and asks it to commit a target; bounds checking stays with the
// Navigator. Input sources (controls, keyboard, swipe gestures, navigation
// dots and handheld buttons) all resolve to the same four intents.
package nav

import (
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/constants"
)

// Navigator is the position the dispatcher drives.
type Navigator interface {
	Current() int
	Total() int
	// GoTo commits target when it is a valid, different slide and reports
	// whether a transition happened.
	GoTo(target int) bool
}

// Dispatcher maps input events to transitions on a Navigator.
type Dispatcher struct {
	nav   Navigator
	swipe Swipe
}

// NewDispatcher returns a dispatcher driving nav.
func NewDispatcher(nav Navigator) *Dispatcher {
	return &Dispatcher{nav: nav, swipe: NewSwipe()}
}

// Previous moves back one slide unless the first slide is current.
func (d *Dispatcher) Previous() bool {
	if current := d.nav.Current(); current > 1 {
		return d.nav.GoTo(current - 1)
	}
	return false
}

// Next moves forward one slide unless the last slide is current.
func (d *Dispatcher) Next() bool {
	if current := d.nav.Current(); current < d.nav.Total() {
		return d.nav.GoTo(current + 1)
	}
	return false
}

// GoToSlide moves directly to slide n.
func (d *Dispatcher) GoToSlide(n int) bool {
	return d.nav.GoTo(n)
}

// ActivateDot moves to the slide of the dot at zero-based index i.
func (d *Dispatcher) ActivateDot(i int) bool {
	return d.GoToSlide(i + 1)
}

// DotKey handles a key pressed while the dot at index i has focus.
// Enter and Space activate the dot.
func (d *Dispatcher) DotKey(i int, key Key) bool {
	switch key {
	case KeyEnter, KeySpace:
		return d.ActivateDot(i)
	}
	return false
}

// PressControl handles activation of an on-screen control.
func (d *Dispatcher) PressControl(c Control) bool {
	switch c {
	case ControlPrevious:
		return d.Previous()
	case ControlNext:
		return d.Next()
	}
	return false
}

// HandleKey handles a document-level key press. handled reports whether the
// key is bound to navigation; preventDefault reports whether the host must
// suppress its own default behavior (scrolling) for the key.
func (d *Dispatcher) HandleKey(key Key) (handled, preventDefault bool) {
	switch key {
	case KeyLeft:
		d.Previous()
		return true, true
	case KeyRight, KeySpace:
		d.Next()
		return true, true
	case KeyHome:
		d.GoToSlide(1)
		return true, false
	case KeyEnd:
		d.GoToSlide(d.nav.Total())
		return true, false
	}
	return false, false
}

// HandleButton handles a handheld controller button and reports whether it
// is bound to navigation.
func (d *Dispatcher) HandleButton(button constants.VirtualButton) bool {
	switch button {
	case constants.VirtualButtonLeft, constants.VirtualButtonL1:
		d.Previous()
	case constants.VirtualButtonRight, constants.VirtualButtonR1, constants.VirtualButtonA:
		d.Next()
	case constants.VirtualButtonSelect:
		d.GoToSlide(1)
	case constants.VirtualButtonStart:
		d.GoToSlide(d.nav.Total())
	default:
		return false
	}
	return true
}

// TouchStart records the horizontal position where a touch began.
func (d *Dispatcher) TouchStart(x float64) {
	d.swipe.Start(x)
}

// TouchEnd completes a touch at horizontal position x and navigates when the
// gesture qualifies as a swipe. It returns the recognized direction.
func (d *Dispatcher) TouchEnd(x float64) Direction {
	dir := d.swipe.End(x)
	switch dir {
	case SwipeForward:
		d.Next()
	case SwipeBackward:
		d.Previous()
	}
	return dir
}
