package window

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the window host.
type Theme struct {
	AccentColor          sdl.Color // Control backgrounds, active dot
	ButtonLabelColor     sdl.Color // Control label text
	TextColor            sdl.Color // Slide title text
	HighlightColor       sdl.Color // Focus outline
	HighlightedTextColor sdl.Color // Counter and section text
	HintColor            sdl.Color // Idle dots
	BackgroundColor      sdl.Color // Screen background color
	FontPath             string    // Path to a TrueType font
}

// IsZero reports whether no theme was configured.
func (t Theme) IsZero() bool {
	return t == Theme{}
}

// DefaultTheme is a light theme using the system sans-serif font.
func DefaultTheme() Theme {
	return Theme{
		AccentColor:          HexToColor(0x21808D),
		ButtonLabelColor:     HexToColor(0xFCFCF9),
		TextColor:            HexToColor(0x13343B),
		HighlightColor:       HexToColor(0xE68161),
		HighlightedTextColor: HexToColor(0x626C71),
		HintColor:            HexToColor(0xA7A9A9),
		BackgroundColor:      HexToColor(0xFCFCF9),
		FontPath:             "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}
}

// HexToColor converts a 0xRRGGBB value to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 0xFF,
	}
}

func withOpacity(c sdl.Color, opacity float64) sdl.Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float64(c.A) * opacity)
	return c
}
