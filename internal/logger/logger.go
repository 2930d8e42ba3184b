// Package logger holds the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "debt-ledger"

// Log is the global logger instance. It writes to the console until Setup runs.
var Log = New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}, "development")

// New builds a logger that stamps every event with the service, environment
// and call site.
func New(w io.Writer, environment string) zerolog.Logger {
	return zerolog.New(w).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("env", environment).
		Caller().
		Logger()
}

// Setup applies the configured level. Production gets JSON lines on stdout;
// every other environment keeps the console writer.
func Setup(level, environment string) {
	SetLevel(level)

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	if environment == "production" {
		w = os.Stdout
	}
	Log = New(w, environment)
}

// SetLevel sets the global log level. Unknown names fall back to info.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
