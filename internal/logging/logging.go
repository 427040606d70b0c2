// Package logging builds the slog logger used across the program.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Makepad-fr/tada/internal/config"
)

// New returns a logger writing to w. verbose forces debug level.
func New(w io.Writer, cfg config.LogConfig, verbose bool) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), nil
}

// Open is New writing to cfg.File, or to fallback when no file is set.
// The returned close func releases the file, if any.
func Open(cfg config.LogConfig, verbose bool, fallback io.Writer) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	if cfg.File == "" {
		l, err := New(fallback, cfg, verbose)
		return l, noop, err
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("open log file: %w", err)
	}
	l, err := New(f, cfg, verbose)
	if err != nil {
		f.Close()
		return nil, noop, err
	}
	return l, f.Close, nil
}
