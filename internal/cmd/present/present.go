// Package present parses presenter command flags and runs a presentation.
package present

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/BrandonKowalski/slidedeck/internal/config"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/charts"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/deck"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/loader"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/platform/cannoli"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/platform/clicker"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/platform/terminal"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/platform/window"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/remote"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/schedule"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/view"
)

// Hosts.
const (
	HostWindow   = "window"
	HostTerminal = "terminal"
	HostHeadless = "headless"
)

// Themes for the window host.
const (
	ThemeDefault = "default"
	ThemeCannoli = "cannoli"
)

// Load policies.
const (
	PolicyNavigation = "navigation"
	PolicyOnce       = "once"
)

// Config holds presenter command configuration.
type Config struct {
	DeckPath      string `env:"DECK_PATH"`
	Host          string `env:"SLIDEDECK_HOST" envDefault:"window"`
	Language      string `env:"SLIDEDECK_LANGUAGE"`
	LoadPolicy    string `env:"SLIDEDECK_LOAD_POLICY" envDefault:"navigation"`
	Theme         string `env:"SLIDEDECK_THEME" envDefault:"default"`
	FontPath      string `env:"SLIDEDECK_FONT_PATH"`
	Fullscreen    bool   `env:"SLIDEDECK_FULLSCREEN"`
	RemoteAddr    string `env:"SLIDEDECK_REMOTE_ADDR"`
	ClickerDevice string `env:"SLIDEDECK_CLICKER"`
	GrabClicker   bool   `env:"SLIDEDECK_CLICKER_GRAB" envDefault:"true"`
	LogPath       string `env:"SLIDEDECK_LOG_PATH"`
	LogLevel      string `env:"SLIDEDECK_LOG_LEVEL" envDefault:"info"`
	HostLogLevel  string `env:"SLIDEDECK_HOST_LOG_LEVEL" envDefault:"error"`
	ChartWidth    int    `env:"SLIDEDECK_CHART_WIDTH" envDefault:"640"`
	ChartHeight   int    `env:"SLIDEDECK_CHART_HEIGHT" envDefault:"360"`
}

// ParseConfig parses environment and flags into Config. Flags win.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DeckPath, "deck", cfg.DeckPath, "Deck TOML file (default: the built-in deck)")
	fs.StringVar(&cfg.Host, "host", cfg.Host, "Presentation host: window, terminal or headless")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "Control label language, e.g. fr")
	fs.StringVar(&cfg.LoadPolicy, "load-policy", cfg.LoadPolicy, "Chart loading on navigation: navigation (every visit) or once")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Window theme: default or cannoli")
	fs.StringVar(&cfg.FontPath, "font", cfg.FontPath, "TTF font for the window host")
	fs.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "Open the window fullscreen")
	fs.StringVar(&cfg.RemoteAddr, "remote", cfg.RemoteAddr, "Remote control listen address, e.g. 127.0.0.1:7070 (empty disables)")
	fs.StringVar(&cfg.ClickerDevice, "clicker", cfg.ClickerDevice, "evdev device of a presentation clicker, e.g. /dev/input/event5")
	fs.BoolVar(&cfg.GrabClicker, "clicker-grab", cfg.GrabClicker, "Take exclusive access to the clicker")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "Log file path (rotated)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.HostLogLevel, "host-log-level", cfg.HostLogLevel, "Host diagnostics log level")
	fs.IntVar(&cfg.ChartWidth, "chart-width", cfg.ChartWidth, "Chart raster width in pixels")
	fs.IntVar(&cfg.ChartHeight, "chart-height", cfg.ChartHeight, "Chart raster height in pixels")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.Host {
	case HostWindow, HostTerminal, HostHeadless:
	default:
		return fmt.Errorf("unknown host %q", c.Host)
	}
	switch c.Theme {
	case ThemeDefault, ThemeCannoli:
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	if _, err := parsePolicy(c.LoadPolicy); err != nil {
		return err
	}
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", c.ChartWidth, c.ChartHeight)
	}
	return nil
}

// surface is what every host offers the presenter and the chart renderer.
type surface interface {
	view.Surface
	charts.Sink
}

type hostRunner func(ctx context.Context, p *slidedeck.Presenter, loop *schedule.Loop) error

// Run presents until the host exits or ctx is done. The host runs on the
// calling goroutine; the remote server and clicker run beside it.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Host == HostTerminal {
		slidedeck.DisableConsoleLogging()
	}
	if cfg.LogPath != "" {
		slidedeck.SetLogPath(cfg.LogPath)
	}
	slidedeck.SetRawLogLevel(cfg.LogLevel)
	slidedeck.SetInternalLogLevel(parseLevel(cfg.HostLogLevel))
	defer slidedeck.CloseLogger()

	logger := slidedeck.GetLogger()
	internal := slidedeck.GetInternalLogger()

	d, err := LoadDeck(cfg.DeckPath)
	if err != nil {
		return err
	}
	policy, err := parsePolicy(cfg.LoadPolicy)
	if err != nil {
		return err
	}

	sched := schedule.New()
	loop := schedule.NewLoop(sched, internal)
	surf, run := newHost(cfg, d, internal)

	p := slidedeck.New(slidedeck.Options{
		Deck:      d,
		Surface:   surf,
		Scheduler: sched,
		Visualizations: charts.Registry(d, surf, charts.Options{
			Width:  cfg.ChartWidth,
			Height: cfg.ChartHeight,
			Logger: logger,
		}),
		LoadPolicy: policy,
		Language:   cfg.Language,
		Logger:     logger,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if cfg.RemoteAddr != "" {
		srv := remote.New(p, loop, remote.Options{Addr: cfg.RemoteAddr, Logger: internal})
		g.Go(func() error { return srv.ListenAndServe(gctx) })
	}

	if cfg.ClickerDevice != "" {
		c, err := clicker.Open(cfg.ClickerDevice, clicker.Options{Grab: cfg.GrabClicker, Logger: internal})
		if err != nil {
			return err
		}
		g.Go(func() error { return c.Run(gctx, loop, p) })
	}

	logger.Info("Starting presentation", "host", cfg.Host, "deck", d.Title, "slides", d.Total())

	hostErr := run(gctx, p, loop)
	cancel()
	groupErr := g.Wait()

	if errors.Is(hostErr, context.Canceled) {
		hostErr = nil
	}
	if errors.Is(groupErr, context.Canceled) {
		groupErr = nil
	}
	return errors.Join(hostErr, groupErr)
}

// LoadDeck reads the deck at path, or returns the built-in deck for an empty path.
func LoadDeck(path string) (*deck.Deck, error) {
	if path == "" {
		return deck.Default(), nil
	}
	return deck.Load(path)
}

func newHost(cfg Config, d *deck.Deck, logger *slog.Logger) (surface, hostRunner) {
	switch cfg.Host {
	case HostTerminal:
		h := terminal.New(d.Total(), terminal.Options{Logger: logger})
		return h, h.Run
	case HostHeadless:
		m := view.NewMemorySurface(d.Total())
		return m, runHeadless
	}

	theme := window.DefaultTheme()
	if cfg.Theme == ThemeCannoli {
		theme = cannoli.InitCannoliTheme(cfg.FontPath)
	} else if cfg.FontPath != "" {
		theme.FontPath = cfg.FontPath
	}
	h := window.New(d.Total(), window.Options{
		Title: d.Title,
		Theme: theme,
		WindowOptions: window.WindowOptions{
			FullscreenDesktop: cfg.Fullscreen,
			Resizable:         !cfg.Fullscreen,
		},
		Logger: logger,
	})
	return h, h.Run
}

// runHeadless drives the presentation with no display. Navigation arrives
// through the remote server or a clicker.
func runHeadless(ctx context.Context, p *slidedeck.Presenter, loop *schedule.Loop) error {
	loop.Post(p.Init)
	return loop.Run(ctx)
}

func parsePolicy(raw string) (loader.Policy, error) {
	switch strings.ToLower(raw) {
	case "", PolicyNavigation:
		return loader.PolicyNavigationAlways, nil
	case PolicyOnce:
		return loader.PolicyGuardBoth, nil
	}
	return 0, fmt.Errorf("unknown load policy %q", raw)
}

func parseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelError
	}
	return level
}
