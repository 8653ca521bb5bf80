package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/1broseidon/altdrag/internal/config"
	"golang.org/x/term"
)

// newLogger builds the structured logger used by the event loop. With
// log_format "auto" a terminal gets text and anything else gets JSON.
func newLogger(f *os.File, cfg *config.Config) *slog.Logger {
	format := resolveLogFormat(cfg.LogFormat, term.IsTerminal(int(f.Fd())))
	return slog.New(newHandler(f, format, cfg.SlogLevel()))
}

func resolveLogFormat(format string, isTerminal bool) string {
	if format != "auto" {
		return format
	}
	if isTerminal {
		return "text"
	}
	return "json"
}

func newHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
