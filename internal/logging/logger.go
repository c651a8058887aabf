package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New builds a logger writing to w in the configured format.
func New(cfg Config, w io.Writer) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}

	switch cfg.Format {
	case FormatConsole:
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    w != os.Stderr && w != os.Stdout,
		}).Level(level).With().Timestamp().Logger(), nil
	default:
		return zerolog.New(w).With().Timestamp().Logger().Level(level), nil
	}
}

// OpenFile opens (appending) a log file for the TUI, which owns stdout.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func parseLevel(level Level) (zerolog.Level, error) {
	switch level {
	case LevelTrace:
		return zerolog.TraceLevel, nil
	case LevelDebug:
		return zerolog.DebugLevel, nil
	case LevelInfo, "":
		return zerolog.InfoLevel, nil
	case LevelWarn:
		return zerolog.WarnLevel, nil
	case LevelError:
		return zerolog.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}
