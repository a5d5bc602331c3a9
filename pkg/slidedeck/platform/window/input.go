package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/constants"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/nav"
)

// translateKey maps an SDL keycode to a navigation key.
func translateKey(sym sdl.Keycode) nav.Key {
	switch sym {
	case sdl.K_LEFT:
		return nav.KeyLeft
	case sdl.K_RIGHT:
		return nav.KeyRight
	case sdl.K_SPACE:
		return nav.KeySpace
	case sdl.K_HOME:
		return nav.KeyHome
	case sdl.K_END:
		return nav.KeyEnd
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		return nav.KeyEnter
	case sdl.K_PAGEUP:
		return nav.KeyPageUp
	case sdl.K_PAGEDOWN:
		return nav.KeyPageDown
	default:
		return nav.KeyNone
	}
}

// translateButton maps an SDL game controller button to a virtual button.
func translateButton(button sdl.GameControllerButton) constants.VirtualButton {
	switch button {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_X:
		return constants.VirtualButtonX
	case sdl.CONTROLLER_BUTTON_Y:
		return constants.VirtualButtonY
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return constants.VirtualButtonL1
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return constants.VirtualButtonR1
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}
