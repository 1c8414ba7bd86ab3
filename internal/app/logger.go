package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLogLevel maps a level name to its slog level. Names are
// case-insensitive.
func ParseLogLevel(name string) (slog.Level, error) {
	level, ok := logLevels[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", name)
	}
	return level, nil
}

// ParseLogFormat normalises a log format name.
func ParseLogFormat(name string) (string, error) {
	switch f := strings.ToLower(name); f {
	case LogFormatText, LogFormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", name)
}

// newLogger builds an isolated logger for one App from an already
// validated Config. The global logger is left alone.
func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	level, err := ParseLogLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.LogFormat == LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler).With("app", "licensegrid")
}
