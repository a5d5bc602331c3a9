package view

import "image"

// Role names a singleton display surface the host may provide. The values
// match the element identifiers used by the HTML host.
type Role string

const (
	RolePrevious Role = "prevBtn"
	RoleNext     Role = "nextBtn"
	RoleCurrent  Role = "currentSlide"
	RoleTotal    Role = "totalSlides"
	RoleSection  Role = "sectionName"
	RoleDots     Role = "navDots"
)

// Roles lists every role in display order.
var Roles = []Role{RolePrevious, RoleNext, RoleCurrent, RoleTotal, RoleSection, RoleDots}

// Element is the small set of mutations the synchronizer performs on a
// display surface.
type Element interface {
	SetText(text string)
	Text() string
	SetClass(class string, on bool)
	HasClass(class string) bool
	SetDisabled(disabled bool)
	Disabled() bool
	SetOpacity(opacity float64)
	SetAttr(name, value string)
}

// Slide is a slide surface tagged with its positional identifier.
type Slide interface {
	Element
	Number() int
}

// Surface is the host's capability interface. Every element is optional.
type Surface interface {
	// Element returns the element bound to role, or nil when the host has none.
	Element(role Role) Element
	// Slides returns every slide surface the host renders.
	Slides() []Slide
	// ResetDots empties the dot container and fills it with n new dots.
	// It returns nil when the host has no dot container.
	ResetDots(n int) []Element
}

// VisibilityProber is implemented by hosts that can report how much of a
// slide is currently visible, as a fraction in [0, 1].
type VisibilityProber interface {
	VisibleFraction(slide int) float64
}

// VisualSink receives rendered visualizations for display on a slide.
type VisualSink interface {
	SetVisual(slide int, img image.Image)
}
