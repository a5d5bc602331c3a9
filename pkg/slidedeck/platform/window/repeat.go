package window

import (
	"time"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/constants"
)

const (
	defaultRepeatDelay    = 400 * time.Millisecond
	defaultRepeatInterval = 150 * time.Millisecond
)

// ButtonRepeat re-fires a held paging button, so holding the D-pad or a
// shoulder button flips through slides. Only one button is tracked; the most
// recent press wins.
type ButtonRepeat struct {
	held     constants.VirtualButton
	since    time.Time
	repeated bool
	delay    time.Duration
	interval time.Duration
}

// NewButtonRepeat returns a repeater that first fires after delay and then
// every interval while the button stays down.
func NewButtonRepeat(delay, interval time.Duration) *ButtonRepeat {
	return &ButtonRepeat{delay: delay, interval: interval}
}

// Press starts tracking button if it pages through slides. It reports
// whether the button is tracked.
func (r *ButtonRepeat) Press(button constants.VirtualButton, now time.Time) bool {
	if !repeats(button) {
		return false
	}
	r.held = button
	r.since = now
	r.repeated = false
	return true
}

// Release stops tracking button. Releasing any other button has no effect.
func (r *ButtonRepeat) Release(button constants.VirtualButton) {
	if r.held == button {
		r.Reset()
	}
}

// Update returns the held button when a repeat is due, or
// VirtualButtonUnassigned.
func (r *ButtonRepeat) Update(now time.Time) constants.VirtualButton {
	if r.held == constants.VirtualButtonUnassigned {
		return constants.VirtualButtonUnassigned
	}

	threshold := r.interval
	if !r.repeated {
		threshold = r.delay
	}
	if now.Sub(r.since) < threshold {
		return constants.VirtualButtonUnassigned
	}

	r.since = now
	r.repeated = true
	return r.held
}

// Held returns the tracked button.
func (r *ButtonRepeat) Held() constants.VirtualButton {
	return r.held
}

// Reset forgets the held button.
func (r *ButtonRepeat) Reset() {
	r.held = constants.VirtualButtonUnassigned
	r.repeated = false
}

func repeats(button constants.VirtualButton) bool {
	switch button {
	case constants.VirtualButtonLeft, constants.VirtualButtonRight,
		constants.VirtualButtonL1, constants.VirtualButtonR1:
		return true
	}
	return false
}
