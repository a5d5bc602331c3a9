package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Slides int    `env:"SLIDEDECK_TEST_SLIDES" envDefault:"20"`
	Host   string `env:"SLIDEDECK_TEST_HOST" envDefault:"window"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 20, cfg.Slides)
	assert.Equal(t, "window", cfg.Host)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("SLIDEDECK_TEST_HOST", "terminal")

	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, "terminal", cfg.Host)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("SLIDEDECK_TEST_SLIDES", "many")

	var cfg envTestConfig
	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
