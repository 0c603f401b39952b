// Package logging builds the zerolog logger shared by the CLI and the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config selects the level and destination of log output.
type Config struct {
	Level string // trace, debug, info, warn, error
	// File receives log output when set. Otherwise Fallback is used.
	File     string
	Fallback io.Writer
}

// New returns a logger and a close function for any file it opened.
func New(cfg Config) (zerolog.Logger, func() error, error) {
	closer := func() error { return nil }
	var w io.Writer = cfg.Fallback
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("logging: open %s: %w", cfg.File, err)
		}
		w = f
		closer = f.Close
	}
	if w == nil {
		return zerolog.Nop(), closer, nil
	}
	if w == os.Stderr {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	zl := zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
	return zl, closer, nil
}

// ParseLevel maps a level name to zerolog, defaulting to warn.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}
