package present

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/deck"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/loader"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("slidedeck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, HostWindow, cfg.Host)
	assert.Equal(t, ThemeDefault, cfg.Theme)
	assert.Equal(t, PolicyNavigation, cfg.LoadPolicy)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.GrabClicker)
	assert.Empty(t, cfg.RemoteAddr)
	assert.Equal(t, 640, cfg.ChartWidth)
	assert.Equal(t, 360, cfg.ChartHeight)
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("SLIDEDECK_HOST", "terminal")
	t.Setenv("SLIDEDECK_LANGUAGE", "de")
	t.Setenv("DECK_PATH", "/tmp/env.toml")

	cfg, err := ParseConfig(newFlagSet(), []string{"-host", "headless", "-remote", "127.0.0.1:9000", "-load-policy", "once"})
	require.NoError(t, err)

	assert.Equal(t, HostHeadless, cfg.Host)
	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, "/tmp/env.toml", cfg.DeckPath)
	assert.Equal(t, "127.0.0.1:9000", cfg.RemoteAddr)
	assert.Equal(t, PolicyOnce, cfg.LoadPolicy)
}

func TestParseConfigErrors(t *testing.T) {
	cases := map[string][]string{
		"host":   {"-host", "projector"},
		"theme":  {"-theme", "neon"},
		"policy": {"-load-policy", "never"},
		"size":   {"-chart-width", "0"},
		"flag":   {"-bogus"},
	}
	for name, args := range cases {
		_, err := ParseConfig(newFlagSet(), args)
		assert.Error(t, err, name)
	}

	t.Setenv("SLIDEDECK_CHART_WIDTH", "wide")
	_, err := ParseConfig(newFlagSet(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestParsePolicy(t *testing.T) {
	p, err := parsePolicy("navigation")
	require.NoError(t, err)
	assert.Equal(t, loader.PolicyNavigationAlways, p)

	p, err = parsePolicy("ONCE")
	require.NoError(t, err)
	assert.Equal(t, loader.PolicyGuardBoth, p)

	_, err = parsePolicy("sometimes")
	assert.Error(t, err)
}

func TestLoadDeck(t *testing.T) {
	d, err := LoadDeck("")
	require.NoError(t, err)
	assert.Equal(t, 20, d.Total())

	path := filepath.Join(t.TempDir(), "deck.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = \"Short\"\nslides = 0\n"), 0o644))
	_, err = LoadDeck(path)
	assert.ErrorIs(t, err, deck.ErrInvalidDeck)

	_, err = LoadDeck(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestRunHeadless(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), []string{"-host", "headless", "-log-level", "error"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(300*time.Millisecond, cancel)

	assert.NoError(t, Run(ctx, cfg))
}

func TestRunBadDeck(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), []string{"-host", "headless", "-deck", filepath.Join(t.TempDir(), "none.toml")})
	require.NoError(t, err)

	assert.Error(t, Run(context.Background(), cfg))
}
