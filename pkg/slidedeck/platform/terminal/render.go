package terminal

import (
	"image"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/constants"
)

// Rows and spans of the screen layout, computed per frame.
type layout struct {
	width, height int

	sectionRow int
	titleRow   int
	bodyTop    int
	bodyBottom int // exclusive
	dotsRow    int
	footerRow  int

	previous span
	next     span
	dots     []span
}

type span struct {
	x, w int
}

func (s span) contains(x int) bool {
	return x >= s.x && x < s.x+s.w
}

func computeLayout(width, height, dots int, previousLabel, nextLabel string) layout {
	l := layout{
		width:      width,
		height:     height,
		sectionRow: 0,
		titleRow:   2,
		bodyTop:    4,
		dotsRow:    height - 3,
		footerRow:  height - 1,
	}
	l.bodyBottom = max(l.dotsRow-1, l.bodyTop)

	l.previous = span{x: 1, w: runewidth.StringWidth(previousLabel)}
	nw := runewidth.StringWidth(nextLabel)
	l.next = span{x: max(width-1-nw, 0), w: nw}

	// Two cells per dot: the glyph and a gap.
	rowWidth := dots*2 - 1
	x := max((width-rowWidth)/2, 0)
	for i := 0; i < dots; i++ {
		l.dots = append(l.dots, span{x: x + i*2, w: 1})
	}
	return l
}

// dotAt returns the index of the dot at (x, y).
func (l layout) dotAt(x, y int) (int, bool) {
	if y != l.dotsRow {
		return 0, false
	}
	for i, d := range l.dots {
		if d.contains(x) {
			return i, true
		}
	}
	return 0, false
}

// putString writes s at (x, y) and returns the column after it.
func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func putCentered(screen tcell.Screen, width, y int, s string, style tcell.Style) {
	putString(screen, max((width-runewidth.StringWidth(s))/2, 0), y, s, style)
}

// wrap breaks text into lines no wider than width.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// drawImage draws img into the given cell area using upper half blocks, two
// image rows per cell, scaled to fit.
func drawImage(screen tcell.Screen, img image.Image, x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	b := img.Bounds()
	scale := min(float64(w)/float64(b.Dx()), float64(h*2)/float64(b.Dy()))
	cols := int(float64(b.Dx()) * scale)
	rows := int(float64(b.Dy()) * scale / 2)
	x += (w - cols) / 2

	sample := func(cx, py int) tcell.Color {
		sx := b.Min.X + int(float64(cx)/scale)
		sy := b.Min.Y + int(float64(py)/scale)
		return toColor(img.At(min(sx, b.Max.X-1), min(sy, b.Max.Y-1)))
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			style := tcell.StyleDefault.
				Foreground(sample(col, row*2)).
				Background(sample(col, row*2+1))
			screen.SetContent(x+col, y+row, '▀', nil, style)
		}
	}
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func dotGlyph(active bool) rune {
	if active {
		return []rune(constants.DotActive)[0]
	}
	return []rune(constants.DotIdle)[0]
}
