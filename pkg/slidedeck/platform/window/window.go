package window

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/constants"
)

// Development-mode window size overrides.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// Window wraps the SDL window, renderer and fonts.
type Window struct {
	Window    *sdl.Window
	Renderer  *sdl.Renderer
	Font      *ttf.Font
	SmallFont *ttf.Font

	logger          *slog.Logger
	hasVSync        bool
	lastPresentTime uint64
}

func openWindow(options Options, logger *slog.Logger) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("init ttf: %w", err)
	}

	width, height := windowSize(options, logger)
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	winOpts := options.WindowOptions
	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}
	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
	}

	logger.Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(options.Title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		logger.Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		ttf.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	w := &Window{
		Window:   window,
		Renderer: renderer,
		logger:   logger,
		hasVSync: vsync,
	}
	w.loadFonts(options)

	return w, nil
}

func windowSize(options Options, logger *slog.Logger) (int32, int32) {
	width, height := options.Width, options.Height

	if constants.IsDevMode() {
		width = envSize(WindowWidthEnvVar, width, 1024, logger)
		height = envSize(WindowHeightEnvVar, height, 768, logger)
	}

	if width <= 0 || height <= 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			logger.Error("Failed to get display mode", "error", err)
			return 1024, 768
		}
		if width <= 0 {
			width = mode.W
		}
		if height <= 0 {
			height = mode.H
		}
	}
	return width, height
}

func envSize(name string, configured, fallback int32, logger *slog.Logger) int32 {
	v := os.Getenv(name)
	if v == "" {
		if configured > 0 {
			return configured
		}
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		logger.Warn("Invalid window size; using default", "variable", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) loadFonts(options Options) {
	size, small := options.FontSize, options.SmallFontSize
	if size <= 0 {
		size = 36
	}
	if small <= 0 {
		small = 20
	}

	var err error
	if w.Font, err = ttf.OpenFont(options.Theme.FontPath, size); err != nil {
		w.logger.Warn("Failed to load font; text will not be drawn", "path", options.Theme.FontPath, "error", err)
		return
	}
	if w.SmallFont, err = ttf.OpenFont(options.Theme.FontPath, small); err != nil {
		w.logger.Warn("Failed to load small font", "path", options.Theme.FontPath, "error", err)
		w.SmallFont = w.Font
	}
}

// Size returns the renderer's logical size, the coordinate space every
// draw call and mouse event uses.
func (w *Window) Size() (int32, int32) {
	lw, lh := w.Renderer.GetLogicalSize()
	ww, wh := w.Window.GetSize()
	return drawableSize(lw, lh, ww, wh)
}

// Resize follows a new window size so the content is laid out again at the
// window's shape instead of letterboxed.
func (w *Window) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	if err := w.Renderer.SetLogicalSize(width, height); err != nil {
		w.logger.Warn("Failed to resize renderer", "width", width, "height", height, "error", err)
	}
}

func drawableSize(logicalW, logicalH, windowW, windowH int32) (int32, int32) {
	if logicalW > 0 && logicalH > 0 {
		return logicalW, logicalH
	}
	return windowW, windowH
}

// resizeOf returns the new size carried by a window event.
func resizeOf(e *sdl.WindowEvent) (int32, int32, bool) {
	if e.Event != sdl.WINDOWEVENT_SIZE_CHANGED {
		return 0, 0, false
	}
	return e.Data1, e.Data2, true
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *Window) Close() {
	if w.SmallFont != nil && w.SmallFont != w.Font {
		w.SmallFont.Close()
	}
	if w.Font != nil {
		w.Font.Close()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
	ttf.Quit()
	sdl.Quit()
}
