package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/constants"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/nav"
)

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(1024, 768, 20, UniformPadding(24))

	require.Len(t, l.Dots, 20)
	assert.Equal(t, int32(24), l.Previous.X)
	assert.Equal(t, int32(1024-24), l.Next.X+l.Next.W)
	assert.Equal(t, l.Previous.Y, l.Next.Y)

	// One row, centered, in order.
	for i := 1; i < len(l.Dots); i++ {
		assert.Equal(t, l.Dots[0].Y, l.Dots[i].Y)
		assert.Greater(t, l.Dots[i].X, l.Dots[i-1].X)
	}
	left := l.Dots[0].X - 24
	right := 1024 - 24 - (l.Dots[19].X + l.Dots[19].W)
	assert.InDelta(t, left, right, 1)

	assert.LessOrEqual(t, l.Slide.Y+l.Slide.H, l.Dots[0].Y)
}

func TestComputeLayoutWrapsDots(t *testing.T) {
	l := ComputeLayout(200, 400, 20, UniformPadding(10))

	require.Len(t, l.Dots, 20)
	assert.Greater(t, l.Dots[19].Y, l.Dots[0].Y)
	for _, d := range l.Dots {
		assert.GreaterOrEqual(t, d.X, int32(10))
		assert.LessOrEqual(t, d.X+d.W, int32(190))
	}
}

func TestHitTest(t *testing.T) {
	l := ComputeLayout(1024, 768, 20, UniformPadding(24))

	center := func(r sdl.Rect) (int32, int32) { return r.X + r.W/2, r.Y + r.H/2 }

	x, y := center(l.Previous)
	assert.Equal(t, Target{Kind: TargetPrevious}, l.HitTest(x, y))

	x, y = center(l.Next)
	assert.Equal(t, Target{Kind: TargetNext}, l.HitTest(x, y))

	x, y = center(l.Dots[6])
	assert.Equal(t, Target{Kind: TargetDot, Dot: 6}, l.HitTest(x, y))

	x, y = center(l.Slide)
	assert.Equal(t, Target{Kind: TargetNone}, l.HitTest(x, y))
}

func TestTranslateKey(t *testing.T) {
	assert.Equal(t, nav.KeyLeft, translateKey(sdl.K_LEFT))
	assert.Equal(t, nav.KeyRight, translateKey(sdl.K_RIGHT))
	assert.Equal(t, nav.KeySpace, translateKey(sdl.K_SPACE))
	assert.Equal(t, nav.KeyHome, translateKey(sdl.K_HOME))
	assert.Equal(t, nav.KeyEnd, translateKey(sdl.K_END))
	assert.Equal(t, nav.KeyEnter, translateKey(sdl.K_RETURN))
	assert.Equal(t, nav.KeyNone, translateKey(sdl.K_a))
}

func TestTranslateButton(t *testing.T) {
	assert.Equal(t, constants.VirtualButtonLeft, translateButton(sdl.CONTROLLER_BUTTON_DPAD_LEFT))
	assert.Equal(t, constants.VirtualButtonR1, translateButton(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER))
	assert.Equal(t, constants.VirtualButtonSelect, translateButton(sdl.CONTROLLER_BUTTON_BACK))
	assert.Equal(t, constants.VirtualButtonStart, translateButton(sdl.CONTROLLER_BUTTON_START))
}

func TestTextureCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewTextureCache(2)

	c.Set("a", nil, 1, 1)
	c.Set("b", nil, 2, 2)
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", nil, 3, 3)

	assert.Equal(t, 2, c.Len())
	_, ok = c.Get("b")
	assert.False(t, ok, "b was least recently used")
	entry, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, int32(1), entry.w)

	c.Destroy()
	assert.Equal(t, 0, c.Len())
}

func TestFit(t *testing.T) {
	area := sdl.Rect{X: 0, Y: 0, W: 320, H: 100}

	assert.Equal(t, sdl.Rect{X: 110, Y: 25, W: 100, H: 50}, fit(100, 50, area, true))
	assert.Equal(t, sdl.Rect{X: 0, Y: 25, W: 100, H: 50}, fit(100, 50, area, false))
	assert.Equal(t, sdl.Rect{X: 60, Y: 0, W: 200, H: 100}, fit(640, 320, area, true))
}

func TestHexToColor(t *testing.T) {
	assert.Equal(t, sdl.Color{R: 0x21, G: 0x80, B: 0x8D, A: 0xFF}, HexToColor(0x21808D))
	assert.Equal(t, uint8(0x7F), withOpacity(HexToColor(0), 0.5).A)
}

func TestNewDefaults(t *testing.T) {
	h := New(20, Options{})

	assert.Equal(t, DefaultTheme(), h.options.Theme)
	assert.Equal(t, 20, h.SlideCount())
	assert.Equal(t, "Slide Deck", h.options.Title)
}

func TestWindowOptionsFlags(t *testing.T) {
	assert.True(t, WindowOptions{}.IsZero())

	flags := WindowOptions{Resizable: true}.ToSDLFlags()
	assert.NotZero(t, flags&sdl.WINDOW_SHOWN)
	assert.NotZero(t, flags&sdl.WINDOW_RESIZABLE)
	assert.Zero(t, flags&sdl.WINDOW_BORDERLESS)

	assert.Zero(t, WindowOptions{Hidden: true}.ToSDLFlags()&sdl.WINDOW_SHOWN)
}

func TestResizeFollowsWindowSize(t *testing.T) {
	w, h, ok := resizeOf(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 1280, Data2: 720})
	require.True(t, ok)
	assert.Equal(t, int32(1280), w)
	assert.Equal(t, int32(720), h)

	_, _, ok = resizeOf(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_FOCUS_GAINED})
	assert.False(t, ok)

	// Layout is computed in logical coordinates once the renderer has them.
	w, h = drawableSize(1280, 720, 2560, 1440)
	assert.Equal(t, [2]int32{1280, 720}, [2]int32{w, h})
	w, h = drawableSize(0, 0, 1024, 768)
	assert.Equal(t, [2]int32{1024, 768}, [2]int32{w, h})
}
