// Package cannoli provides a window theme matching the Cannoli custom firmware,
// for presenting on retro handhelds.
package cannoli

import (
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/platform/window"
)

// DefaultFontPath is where Cannoli installs its UI font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a theme with Cannoli's default colors and the specified font.
// An empty fontPath uses DefaultFontPath.
func InitCannoliTheme(fontPath string) window.Theme {
	if fontPath == "" {
		fontPath = DefaultFontPath
	}
	return window.Theme{
		AccentColor:          window.HexToColor(0x008080),
		ButtonLabelColor:     window.HexToColor(0xFFFFFF),
		TextColor:            window.HexToColor(0x000000),
		HighlightColor:       window.HexToColor(0x000000),
		HighlightedTextColor: window.HexToColor(0x008080),
		HintColor:            window.HexToColor(0xB0B0B0),
		BackgroundColor:      window.HexToColor(0xFFFFFF),
		FontPath:             fontPath,
	}
}
