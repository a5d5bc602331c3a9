// Package view keeps every display surface consistent with the position.
//
// The Synchronizer never owns position state; it reads a state.Position and
// writes to a host Surface through the small Element capability interface.
// Hosts may omit any element: updates to a missing element are skipped.
package view

import (
	"strconv"
	"time"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/constants"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/internal/i18n"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/state"
)

// Sections resolves the section label of a slide.
type Sections interface {
	Section(n int) string
}

// Labels supplies the text drawn on controls.
type Labels interface {
	Next() string
	Complete() string
	DotLabel(n int) string
}

// Deferrer schedules fire-once work on the presentation's event loop.
type Deferrer interface {
	After(delay time.Duration, name string, fn func())
}

// Synchronizer renders position state onto a Surface.
type Synchronizer struct {
	surface  Surface
	sections Sections
	position *state.Position
	deferrer Deferrer
	labels   Labels

	prevButton Element
	nextButton Element
	counter    Element
	total      Element
	section    Element
	dots       []Element
}

// NewSynchronizer returns a synchronizer for surface. A nil labels uses the
// default English labels.
func NewSynchronizer(surface Surface, sections Sections, position *state.Position, deferrer Deferrer, labels Labels) *Synchronizer {
	if labels == nil {
		labels = i18n.Default()
	}
	return &Synchronizer{
		surface:  surface,
		sections: sections,
		position: position,
		deferrer: deferrer,
		labels:   labels,
	}
}

// Bind looks up the host's elements, writes the total slide count and
// creates one navigation dot per slide.
func (s *Synchronizer) Bind() {
	s.prevButton = s.surface.Element(RolePrevious)
	s.nextButton = s.surface.Element(RoleNext)
	s.counter = s.surface.Element(RoleCurrent)
	s.total = s.surface.Element(RoleTotal)
	s.section = s.surface.Element(RoleSection)

	if s.total != nil {
		s.total.SetText(strconv.Itoa(s.position.Total()))
	}

	s.dots = s.surface.ResetDots(s.position.Total())
	for i, dot := range s.dots {
		dot.SetAttr("aria-label", s.labels.DotLabel(i+1))
		dot.SetAttr("tabindex", "0")
		dot.SetClass(constants.ClassActive, i+1 == s.position.Current())
	}
}

// PrimeAnimations gives every slide its transition style.
func (s *Synchronizer) PrimeAnimations() {
	for _, slide := range s.surface.Slides() {
		slide.SetAttr("transition", constants.SlideTransitionStyle)
	}
}

// Show activates the current slide without a transition and renders every
// dependent surface. It is used once at startup.
func (s *Synchronizer) Show() {
	current := s.position.Current()
	for _, slide := range s.surface.Slides() {
		slide.SetClass(constants.ClassActive, slide.Number() == current)
	}
	s.Render()
}

// Transition moves the active marker to the current slide, marking the
// outgoing slide as transitioning out, then renders every dependent surface.
// The transitional marker is swept from all slides after the cleanup delay,
// whatever navigation happens in the meantime.
func (s *Synchronizer) Transition() {
	current := s.position.Current()
	slides := s.surface.Slides()

	for _, slide := range slides {
		if slide.HasClass(constants.ClassActive) {
			slide.SetClass(constants.ClassActive, false)
			slide.SetClass(constants.ClassTransitioning, true)
		}
	}

	for _, slide := range slides {
		if slide.Number() == current {
			slide.SetClass(constants.ClassTransitioning, false)
			slide.SetClass(constants.ClassActive, true)
			break
		}
	}

	if s.deferrer != nil {
		s.deferrer.After(constants.TransitionCleanupDelay, "sweep-transitions", s.sweep)
	}

	s.Render()
}

// Render updates the counter, section name, dots and controls.
func (s *Synchronizer) Render() {
	s.renderInfo()
	s.renderDots()
	s.renderControls()
}

// Dots returns the dots created by Bind, in slide order.
func (s *Synchronizer) Dots() []Element {
	return s.dots
}

func (s *Synchronizer) sweep() {
	for _, slide := range s.surface.Slides() {
		slide.SetClass(constants.ClassTransitioning, false)
	}
}

func (s *Synchronizer) renderInfo() {
	current := s.position.Current()
	if s.counter != nil {
		s.counter.SetText(strconv.Itoa(current))
	}
	if s.section != nil {
		s.section.SetText(s.sections.Section(current))
	}
}

func (s *Synchronizer) renderDots() {
	current := s.position.Current()
	for i, dot := range s.dots {
		dot.SetClass(constants.ClassActive, i+1 == current)
	}
}

func (s *Synchronizer) renderControls() {
	if s.prevButton != nil {
		disabled := s.position.IsFirst()
		s.prevButton.SetDisabled(disabled)
		s.prevButton.SetOpacity(opacity(disabled))
	}

	if s.nextButton != nil {
		disabled := s.position.IsLast()
		s.nextButton.SetDisabled(disabled)
		s.nextButton.SetOpacity(opacity(disabled))
		if disabled {
			s.nextButton.SetText(s.labels.Complete())
		} else {
			s.nextButton.SetText(s.labels.Next())
		}
	}
}

func opacity(disabled bool) float64 {
	if disabled {
		return constants.DisabledOpacity
	}
	return constants.EnabledOpacity
}
