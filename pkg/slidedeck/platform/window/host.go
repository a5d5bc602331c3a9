// Package window presents a deck in an SDL window.
//
// The host draws from an in-memory surface that the presenter keeps up to
// date and translates keyboard, mouse, touch and game controller events into
// dispatcher calls. Everything runs on the thread that calls Run: each frame
// polls SDL, drains the event loop and redraws.
package window

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/constants"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/nav"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/schedule"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/view"
)

const framePadding = 24

// Host is an SDL window presenting one deck.
type Host struct {
	*view.MemorySurface

	options     Options
	logger      *slog.Logger
	window      *Window
	textures    *TextureCache
	layout      Layout
	layoutW     int32
	layoutH     int32
	focus       nav.Focus
	repeat      *ButtonRepeat
	controllers map[sdl.JoystickID]*sdl.GameController
	quit        bool
}

// New returns a host for a deck of the given slide count. No SDL resources
// are created until Run.
func New(slides int, options Options) *Host {
	if options.Theme.IsZero() {
		options.Theme = DefaultTheme()
	}
	if options.Title == "" {
		options.Title = "Slide Deck"
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	return &Host{
		MemorySurface: view.NewMemorySurface(slides),
		options:       options,
		logger:        options.Logger,
		textures:      NewTextureCache(defaultMaxCacheSize),
		repeat:        NewButtonRepeat(defaultRepeatDelay, defaultRepeatInterval),
		controllers:   make(map[sdl.JoystickID]*sdl.GameController),
	}
}

// Run opens the window, initializes p and presents until the window is
// closed, ctx is done or the loop is stopped. p must have been created with
// this host as its surface.
func (h *Host) Run(ctx context.Context, p *slidedeck.Presenter, loop *schedule.Loop) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	w, err := openWindow(h.options, h.logger)
	if err != nil {
		return slidedeck.NewInfrastructureError("open_window", err)
	}
	h.window = w
	defer h.close()

	loop.Drain()
	p.Init()

	for !h.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			h.handleEvent(p, event)
		}
		if button := h.repeat.Update(time.Now()); button != constants.VirtualButtonUnassigned {
			p.Dispatcher().HandleButton(button)
		}
		loop.Drain()

		if err := h.render(p); err != nil {
			return slidedeck.NewInfrastructureError("render", err)
		}
		h.window.Present()
	}

	loop.Stop()
	return nil
}

func (h *Host) close() {
	h.textures.Destroy()
	for id, c := range h.controllers {
		c.Close()
		delete(h.controllers, id)
	}
	h.window.Close()
}

func (h *Host) handleEvent(p *slidedeck.Presenter, event sdl.Event) {
	d := p.Dispatcher()

	switch e := event.(type) {
	case *sdl.QuitEvent:
		h.quit = true

	case *sdl.WindowEvent:
		if width, height, ok := resizeOf(e); ok {
			h.window.Resize(width, height)
		}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return
		}
		switch e.Keysym.Sym {
		case sdl.K_ESCAPE, sdl.K_q:
			h.quit = true
			return
		case sdl.K_TAB:
			if e.Keysym.Mod&uint16(sdl.KMOD_SHIFT) != 0 {
				h.focus.Retreat(len(h.Dots()))
			} else {
				h.focus.Advance(len(h.Dots()))
			}
			return
		}
		if key := translateKey(e.Keysym.Sym); key != nav.KeyNone {
			d.HandleFocusedKey(&h.focus, key)
		}

	case *sdl.MouseButtonEvent:
		if e.Type != sdl.MOUSEBUTTONDOWN || e.Button != sdl.BUTTON_LEFT {
			return
		}
		target := h.layout.HitTest(e.X, e.Y)
		switch target.Kind {
		case TargetPrevious:
			h.focus.Clear()
			d.PressControl(nav.ControlPrevious)
		case TargetNext:
			h.focus.Clear()
			d.PressControl(nav.ControlNext)
		case TargetDot:
			h.focusDot(target.Dot)
			d.ActivateDot(target.Dot)
		default:
			h.focus.Clear()
		}

	case *sdl.TouchFingerEvent:
		width, _ := h.window.Size()
		x := float64(e.X) * float64(width)
		switch e.Type {
		case sdl.FINGERDOWN:
			d.TouchStart(x)
		case sdl.FINGERUP:
			d.TouchEnd(x)
		}

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			if c := sdl.GameControllerOpen(int(e.Which)); c != nil {
				h.controllers[c.Joystick().InstanceID()] = c
				h.logger.Debug("Controller connected", "name", c.Name())
			}
		case sdl.CONTROLLERDEVICEREMOVED:
			if c, ok := h.controllers[e.Which]; ok {
				c.Close()
				delete(h.controllers, e.Which)
			}
		}

	case *sdl.ControllerButtonEvent:
		button := translateButton(sdl.GameControllerButton(e.Button))
		switch e.Type {
		case sdl.CONTROLLERBUTTONDOWN:
			h.logger.Debug("Controller button pressed", "button", button.GetName())
			d.HandleButton(button)
			h.repeat.Press(button, time.Now())
		case sdl.CONTROLLERBUTTONUP:
			h.repeat.Release(button)
		}
	}
}

func (h *Host) focusDot(i int) {
	h.focus.Clear()
	for j := 0; j <= i; j++ {
		h.focus.Advance(len(h.Dots()))
	}
}

func (h *Host) render(p *slidedeck.Presenter) error {
	width, height := h.window.Size()
	if width != h.layoutW || height != h.layoutH || len(h.layout.Dots) != len(h.Dots()) {
		h.layout = ComputeLayout(width, height, len(h.Dots()), UniformPadding(framePadding))
		h.layoutW, h.layoutH = width, height
	}

	r := h.window.Renderer
	theme := h.options.Theme

	setColor(r, theme.BackgroundColor)
	if err := r.Clear(); err != nil {
		return err
	}

	current := p.CurrentSlide()
	if n := h.Node(view.RoleSection); n != nil {
		h.drawText(n.Text(), h.window.SmallFont, theme.HighlightedTextColor, h.layout.Section, false)
	}

	titleArea := h.layout.Slide
	titleArea.H = min(titleArea.H, 72)
	h.drawText(p.Deck().SlideTitle(current), h.window.Font, theme.TextColor, titleArea, true)

	if img, ok := h.Visual(current); ok {
		chartArea := h.layout.Slide
		chartArea.Y += titleArea.H
		chartArea.H = max(chartArea.H-titleArea.H, 0)
		if err := h.drawImage(fmt.Sprintf("visual:%d:%p", current, img), img, chartArea); err != nil {
			h.logger.Warn("Failed to draw visualization", "slide", current, "error", err)
		}
	}

	h.drawControl(h.Node(view.RolePrevious), p.Labels().Previous(), h.layout.Previous)
	h.drawControl(h.Node(view.RoleNext), "", h.layout.Next)

	if h.Node(view.RoleCurrent) != nil && h.Node(view.RoleTotal) != nil {
		counter := p.Labels().Counter(current, p.TotalSlides())
		h.drawText(counter, h.window.SmallFont, theme.HighlightedTextColor, h.layout.Counter, true)
	}

	focused, hasFocus := h.focus.Index()
	for i, dot := range h.Dots() {
		if i >= len(h.layout.Dots) {
			break
		}
		rect := h.layout.Dots[i]
		if dot.HasClass(constants.ClassActive) {
			setColor(r, theme.AccentColor)
		} else {
			setColor(r, theme.HintColor)
		}
		r.FillRect(&rect)

		if hasFocus && focused == i {
			outline := sdl.Rect{X: rect.X - 3, Y: rect.Y - 3, W: rect.W + 6, H: rect.H + 6}
			setColor(r, theme.HighlightColor)
			r.DrawRect(&outline)
		}
	}

	return nil
}

// drawControl draws a button from its node. An empty label uses the node text.
func (h *Host) drawControl(n *view.Node, label string, rect sdl.Rect) {
	if n == nil {
		return
	}
	if label == "" {
		label = n.Text()
	}

	r := h.window.Renderer
	inset := sdl.Rect{X: rect.X + 4, Y: rect.Y + 8, W: rect.W - 8, H: rect.H - 16}
	setColor(r, withOpacity(h.options.Theme.AccentColor, n.Opacity()))
	r.FillRect(&inset)
	h.drawText(label, h.window.SmallFont, withOpacity(h.options.Theme.ButtonLabelColor, n.Opacity()), inset, true)
}

func (h *Host) drawText(text string, font *ttf.Font, color sdl.Color, area sdl.Rect, centered bool) {
	if text == "" || font == nil {
		return
	}

	key := fmt.Sprintf("text:%p:%s:%v", font, text, color)
	entry, ok := h.textures.Get(key)
	if !ok {
		surface, err := font.RenderUTF8Blended(text, color)
		if err != nil {
			h.logger.Debug("Failed to render text", "text", text, "error", err)
			return
		}
		texture, err := h.window.Renderer.CreateTextureFromSurface(surface)
		w, hgt := surface.W, surface.H
		surface.Free()
		if err != nil {
			h.logger.Debug("Failed to create text texture", "error", err)
			return
		}
		h.textures.Set(key, texture, w, hgt)
		entry = cachedTexture{texture: texture, w: w, h: hgt}
	}

	dst := fit(entry.w, entry.h, area, centered)
	h.window.Renderer.Copy(entry.texture, nil, &dst)
}

func (h *Host) drawImage(key string, img image.Image, area sdl.Rect) error {
	entry, ok := h.textures.Get(key)
	if !ok {
		texture, w, hgt, err := imageTexture(h.window.Renderer, img)
		if err != nil {
			return err
		}
		h.textures.Set(key, texture, w, hgt)
		entry = cachedTexture{texture: texture, w: w, h: hgt}
	}

	dst := fit(entry.w, entry.h, area, true)
	return h.window.Renderer.Copy(entry.texture, nil, &dst)
}

// imageTexture uploads img as a texture.
func imageTexture(r *sdl.Renderer, img image.Image) (*sdl.Texture, int32, int32, error) {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				rgba.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
			}
		}
	}

	w, hgt := int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy())
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, w, hgt, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, 0, 0, err
	}
	defer surface.Free()

	pixels := surface.Pixels()
	rowBytes := int(w) * 4
	for y := 0; y < int(hgt); y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+rowBytes]
		copy(pixels[y*int(surface.Pitch):], src)
	}

	texture, err := r.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0, err
	}
	return texture, w, hgt, nil
}

// fit scales a w×h box down to area, preserving aspect ratio.
func fit(w, h int32, area sdl.Rect, centered bool) sdl.Rect {
	if w <= 0 || h <= 0 {
		return sdl.Rect{X: area.X, Y: area.Y}
	}
	scale := min(float64(area.W)/float64(w), float64(area.H)/float64(h), 1)
	dw, dh := int32(float64(w)*scale), int32(float64(h)*scale)

	dst := sdl.Rect{X: area.X, Y: area.Y + (area.H-dh)/2, W: dw, H: dh}
	if centered {
		dst.X = area.X + (area.W-dw)/2
	}
	return dst
}

func setColor(r *sdl.Renderer, c sdl.Color) {
	r.SetDrawColor(c.R, c.G, c.B, c.A)
}
