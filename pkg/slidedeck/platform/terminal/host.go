// Package terminal presents a deck in a terminal using tcell.
//
// A reader goroutine polls terminal events and posts them to the
// presentation's event loop, so every presenter call and every redraw runs
// on the loop. Charts are drawn with half-block characters.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/constants"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/nav"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/schedule"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/view"
)

const defaultRefresh = 100 * time.Millisecond

// Options configures the terminal host.
type Options struct {
	Screen  tcell.Screen  // Screen to draw on (default: the controlling terminal)
	Refresh time.Duration // Redraw interval for scheduled changes (default 100ms)
	Logger  *slog.Logger  // Host diagnostics (default: discard)
}

// Host is a terminal presenting one deck.
type Host struct {
	*view.MemorySurface

	screen  tcell.Screen
	refresh time.Duration
	logger  *slog.Logger

	layout  layout
	focus   nav.Focus
	pressed bool
}

// New returns a host for a deck of the given slide count.
func New(slides int, options Options) *Host {
	if options.Refresh <= 0 {
		options.Refresh = defaultRefresh
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	return &Host{
		MemorySurface: view.NewMemorySurface(slides),
		screen:        options.Screen,
		refresh:       options.Refresh,
		logger:        options.Logger,
	}
}

// Run initializes the terminal and p, then presents until a quit key is
// pressed, ctx is done or the loop is stopped. p must have been created with
// this host as its surface.
func (h *Host) Run(ctx context.Context, p *slidedeck.Presenter, loop *schedule.Loop) error {
	if h.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return slidedeck.NewInfrastructureError("open_terminal", err)
		}
		h.screen = screen
	}
	if err := h.screen.Init(); err != nil {
		return slidedeck.NewInfrastructureError("init_terminal", err)
	}
	defer h.screen.Fini()
	h.screen.EnableMouse()

	loop.Post(func() {
		p.Init()
		h.Draw(p)
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go h.readEvents(ctx, p, loop)
	go h.refreshLoop(ctx, p, loop)

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (h *Host) readEvents(ctx context.Context, p *slidedeck.Presenter, loop *schedule.Loop) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !loop.Post(func() {
			if !h.HandleEvent(p, ev) {
				loop.Stop()
				return
			}
			h.Draw(p)
		}) {
			h.logger.Debug("Dropped terminal event", "type", fmt.Sprintf("%T", ev))
		}
	}
}

func (h *Host) refreshLoop(ctx context.Context, p *slidedeck.Presenter, loop *schedule.Loop) {
	ticker := time.NewTicker(h.refresh)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			loop.Post(func() { h.Draw(p) })
		}
	}
}

// HandleEvent applies one terminal event to p. It returns false when the
// event asks to quit.
func (h *Host) HandleEvent(p *slidedeck.Presenter, ev tcell.Event) bool {
	d := p.Dispatcher()

	switch e := ev.(type) {
	case *tcell.EventKey:
		if isQuit(e) {
			return false
		}
		switch e.Key() {
		case tcell.KeyTab:
			h.focus.Advance(len(h.Dots()))
			return true
		case tcell.KeyBacktab:
			h.focus.Retreat(len(h.Dots()))
			return true
		}
		if key := convertKey(e); key != nav.KeyNone {
			d.HandleFocusedKey(&h.focus, key)
		}

	case *tcell.EventMouse:
		x, y := e.Position()
		primary := e.Buttons()&tcell.Button1 != 0

		switch {
		case primary && !h.pressed:
			h.pressed = true
			d.TouchStart(float64(x) * cellWidth)
			h.click(d, x, y)
		case !primary && h.pressed:
			h.pressed = false
			d.TouchEnd(float64(x) * cellWidth)
		}

	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *Host) click(d *nav.Dispatcher, x, y int) {
	if y == h.layout.footerRow {
		switch {
		case h.layout.previous.contains(x):
			h.focus.Clear()
			d.PressControl(nav.ControlPrevious)
		case h.layout.next.contains(x):
			h.focus.Clear()
			d.PressControl(nav.ControlNext)
		}
		return
	}
	if i, ok := h.layout.dotAt(x, y); ok {
		h.focus.Clear()
		for j := 0; j <= i; j++ {
			h.focus.Advance(len(h.Dots()))
		}
		d.ActivateDot(i)
		return
	}
	h.focus.Clear()
}

// Draw redraws the whole screen from the surface.
func (h *Host) Draw(p *slidedeck.Presenter) {
	screen := h.screen
	screen.Clear()

	width, height := screen.Size()
	prevLabel := constants.ArrowLeft + " " + p.Labels().Previous()
	nextLabel := ""
	if n := h.Node(view.RoleNext); n != nil {
		nextLabel = n.Text() + " " + constants.ArrowRight
		if n.Disabled() {
			nextLabel = n.Text() + " " + constants.Check
		}
	}
	h.layout = computeLayout(width, height, len(h.Dots()), prevLabel, nextLabel)

	base := tcell.StyleDefault
	muted := base.Dim(true)
	current := p.CurrentSlide()

	if n := h.Node(view.RoleSection); n != nil {
		putString(screen, 1, h.layout.sectionRow, n.Text(), muted)
	}
	if title := p.Deck().Title; title != "" {
		putString(screen, max(width-1-runewidth.StringWidth(title), 0), h.layout.sectionRow, title, muted)
	}
	putCentered(screen, width, h.layout.titleRow, p.Deck().SlideTitle(current), base.Bold(true))

	bodyH := h.layout.bodyBottom - h.layout.bodyTop
	if img, ok := h.Visual(current); ok {
		drawImage(screen, img, 2, h.layout.bodyTop, width-4, bodyH)
	} else if slide, ok := p.Deck().Slide(current); ok {
		for i, line := range wrap(slide.Notes, width-8) {
			if i >= bodyH {
				break
			}
			putCentered(screen, width, h.layout.bodyTop+i, line, base)
		}
	}

	focused, hasFocus := h.focus.Index()
	for i, dot := range h.Dots() {
		if i >= len(h.layout.dots) {
			break
		}
		style := muted
		if dot.HasClass(constants.ClassActive) {
			style = base.Bold(true)
		}
		if hasFocus && focused == i {
			style = style.Reverse(true)
		}
		screen.SetContent(h.layout.dots[i].x, h.layout.dotsRow, dotGlyph(dot.HasClass(constants.ClassActive)), nil, style)
	}

	if n := h.Node(view.RolePrevious); n != nil {
		putString(screen, h.layout.previous.x, h.layout.footerRow, prevLabel, controlStyle(n))
	}
	if n := h.Node(view.RoleNext); n != nil {
		putString(screen, h.layout.next.x, h.layout.footerRow, nextLabel, controlStyle(n))
	}
	if h.Node(view.RoleCurrent) != nil && h.Node(view.RoleTotal) != nil {
		putCentered(screen, width, h.layout.footerRow, p.Labels().Counter(p.CurrentSlide(), p.TotalSlides()), base)
	}

	screen.Show()
}

func controlStyle(n *view.Node) tcell.Style {
	if n.Opacity() < constants.EnabledOpacity {
		return tcell.StyleDefault.Dim(true)
	}
	return tcell.StyleDefault.Bold(true)
}
