package slidedeck

import (
	"log/slog"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/internal/logging"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first GetLogger to take effect.
func SetLogPath(path string) {
	logging.SetLogPath(path)
}

// DisableConsoleLogging keeps logs off stdout, for hosts that draw on the terminal.
// Call before the first GetLogger to take effect.
func DisableConsoleLogging() {
	logging.DisableConsole()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return logging.GetLogger()
}

// GetInternalLogger returns the logger hosts use for their own diagnostics.
func GetInternalLogger() *slog.Logger {
	return logging.GetInternalLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	logging.SetLogLevel(level)
}

// SetInternalLogLevel sets the minimum log level for host diagnostics.
func SetInternalLogLevel(level slog.Level) {
	logging.SetInternalLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	logging.SetRawLogLevel(level)
}

// CloseLogger flushes and closes the log file.
func CloseLogger() {
	logging.CloseLogger()
}
