package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseLevel(raw), "level %q", raw)
	}
}

func TestLoggersAreSingletons(t *testing.T) {
	assert.Same(t, GetLogger(), GetLogger())
	assert.Same(t, GetInternalLogger(), GetInternalLogger())

	SetRawLogLevel("warn")
	assert.Equal(t, slog.LevelWarn, levelVar.Level())

	SetInternalLogLevel(slog.LevelDebug)
	assert.Equal(t, slog.LevelDebug, internalLevelVar.Level())
}
