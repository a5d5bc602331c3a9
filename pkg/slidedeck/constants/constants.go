// Package constants defines shared constants, types, and configuration values
// used throughout the slidedeck presentation controller.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Presentation constants. These are fixed at startup and are not runtime-configurable.
const (
	DefaultTotalSlides     = 20                     // Slide count of the built-in deck
	SwipeThreshold         = 50.0                   // Horizontal displacement a swipe must exceed
	VisibilityThreshold    = 0.10                   // Minimum visible fraction that triggers lazy loading
	TransitionCleanupDelay = 500 * time.Millisecond // Lifetime of the transitioning-out marker
	LoaderStartDelay       = 200 * time.Millisecond // Settle time before visibility observation begins
	DefaultSectionLabel    = "Introduction"         // Section shown when the registry has no mapping
	EnabledOpacity         = 1.0                    // Opacity of an enabled control
	DisabledOpacity        = 0.5                    // Opacity of a disabled control
	SlideTransitionStyle   = "all 0.5s cubic-bezier(0.4, 0, 0.2, 1)"
)

// DefaultInputDelay is the debounce delay between hardware input events.
const DefaultInputDelay = 20 * time.Millisecond

// Class names carried by slide and dot surfaces.
const (
	ClassActive        = "active"
	ClassTransitioning = "prev"
)

// VirtualButton represents an abstract input button, mapped from physical hardware.
// This abstraction allows slidedeck to work with different controller configurations.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonL2
	VirtualButtonR1
	VirtualButtonR2
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonL2:
		return "L2"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonR2:
		return "R2"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}
