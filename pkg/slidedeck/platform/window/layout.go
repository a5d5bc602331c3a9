package window

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing kept inside the window edges.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{Top: value, Right: value, Bottom: value, Left: value}
}

const (
	footerHeight  = 56
	buttonWidth   = 140
	dotSize       = 10
	dotSpacing    = 8
	dotRowHeight  = 24
	sectionHeight = 28
)

// Layout positions every element of the window for one window size.
type Layout struct {
	Slide    sdl.Rect // Title and chart area
	Section  sdl.Rect
	Previous sdl.Rect
	Counter  sdl.Rect
	Next     sdl.Rect
	Dots     []sdl.Rect
}

// TargetKind identifies what a pointer press landed on.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetPrevious
	TargetNext
	TargetDot
)

// Target is the element under a pointer position.
type Target struct {
	Kind TargetKind
	Dot  int // Zero-based dot index when Kind is TargetDot
}

// ComputeLayout lays out a window of the given size with one dot per slide.
// Dots that do not fit on one row wrap onto the next.
func ComputeLayout(width, height int32, dots int, pad Padding) Layout {
	inner := sdl.Rect{
		X: pad.Left,
		Y: pad.Top,
		W: max(width-pad.Left-pad.Right, 0),
		H: max(height-pad.Top-pad.Bottom, 0),
	}

	footerY := inner.Y + inner.H - footerHeight
	l := Layout{
		Previous: sdl.Rect{X: inner.X, Y: footerY, W: buttonWidth, H: footerHeight},
		Next:     sdl.Rect{X: inner.X + inner.W - buttonWidth, Y: footerY, W: buttonWidth, H: footerHeight},
		Counter:  sdl.Rect{X: inner.X + buttonWidth, Y: footerY, W: max(inner.W-2*buttonWidth, 0), H: footerHeight},
		Section:  sdl.Rect{X: inner.X, Y: inner.Y, W: inner.W, H: sectionHeight},
	}

	perRow := int32(1)
	if stride := int32(dotSize + dotSpacing); inner.W > stride {
		perRow = (inner.W + dotSpacing) / stride
	}
	rows := (int32(dots) + perRow - 1) / perRow
	dotsTop := footerY - rows*dotRowHeight

	for i := 0; i < dots; i++ {
		row := int32(i) / perRow
		col := int32(i) % perRow
		inRow := min(perRow, int32(dots)-row*perRow)
		rowWidth := inRow*(dotSize+dotSpacing) - dotSpacing
		x := inner.X + (inner.W-rowWidth)/2 + col*(dotSize+dotSpacing)
		y := dotsTop + row*dotRowHeight + (dotRowHeight-dotSize)/2
		l.Dots = append(l.Dots, sdl.Rect{X: x, Y: y, W: dotSize, H: dotSize})
	}

	l.Slide = sdl.Rect{
		X: inner.X,
		Y: inner.Y + sectionHeight,
		W: inner.W,
		H: max(dotsTop-inner.Y-sectionHeight, 0),
	}
	return l
}

// HitTest returns the element at (x, y).
func (l Layout) HitTest(x, y int32) Target {
	p := sdl.Point{X: x, Y: y}
	switch {
	case p.InRect(&l.Previous):
		return Target{Kind: TargetPrevious}
	case p.InRect(&l.Next):
		return Target{Kind: TargetNext}
	}
	for i := range l.Dots {
		// Dots are small; accept presses within a spacing of the dot.
		hit := sdl.Rect{X: l.Dots[i].X - dotSpacing/2, Y: l.Dots[i].Y - dotSpacing/2, W: dotSize + dotSpacing, H: dotSize + dotSpacing}
		if p.InRect(&hit) {
			return Target{Kind: TargetDot, Dot: i}
		}
	}
	return Target{Kind: TargetNone}
}
