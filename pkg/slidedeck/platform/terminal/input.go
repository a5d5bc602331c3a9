package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/nav"
)

// cellWidth approximates the pixel width of one terminal cell, so mouse
// drags can be measured against the swipe threshold.
const cellWidth = 8.0

// convertKey maps a tcell key event to a navigation key.
func convertKey(e *tcell.EventKey) nav.Key {
	switch e.Key() {
	case tcell.KeyLeft:
		return nav.KeyLeft
	case tcell.KeyRight:
		return nav.KeyRight
	case tcell.KeyHome:
		return nav.KeyHome
	case tcell.KeyEnd:
		return nav.KeyEnd
	case tcell.KeyEnter:
		return nav.KeyEnter
	case tcell.KeyPgUp:
		return nav.KeyPageUp
	case tcell.KeyPgDn:
		return nav.KeyPageDown
	case tcell.KeyRune:
		if e.Rune() == ' ' {
			return nav.KeySpace
		}
	}
	return nav.KeyNone
}

// isQuit reports whether the key closes the presentation.
func isQuit(e *tcell.EventKey) bool {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return e.Rune() == 'q'
	}
	return false
}
