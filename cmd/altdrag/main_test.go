package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/1broseidon/altdrag/internal/config"
)

func TestResolveLogFormat(t *testing.T) {
	tests := []struct {
		format   string
		terminal bool
		want     string
	}{
		{"auto", true, "text"},
		{"auto", false, "json"},
		{"text", false, "text"},
		{"json", true, "json"},
	}
	for _, tt := range tests {
		if got := resolveLogFormat(tt.format, tt.terminal); got != tt.want {
			t.Errorf("resolveLogFormat(%q, %v) = %q, want %q", tt.format, tt.terminal, got, tt.want)
		}
	}
}

func TestNewHandler_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, "json", slog.LevelInfo))
	logger.Debug("hidden")
	logger.Info("drag started", "window", 42)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record, got %q", buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", lines[0], err)
	}
	if rec["msg"] != "drag started" {
		t.Fatalf("unexpected record %v", rec)
	}
}

func TestExplainValue(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MoveBinding = "Mod4-1"

	v, err := explainValue(cfg, "move_binding")
	if err != nil || v != "Mod4-1" {
		t.Fatalf("move_binding = %v, %v", v, err)
	}
	v, err = explainValue(cfg, "ignore_lock_modifiers")
	if err != nil || v != false {
		t.Fatalf("ignore_lock_modifiers = %v, %v", v, err)
	}
	v, err = explainValue(cfg, "display")
	if err != nil || v != "" {
		t.Fatalf("display = %v, %v", v, err)
	}
	if _, err := explainValue(cfg, "nope"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestFormatSource(t *testing.T) {
	sources := map[string]config.Source{
		"move_binding": {Kind: config.SourceFile, File: "/c.yaml", Line: 3, Column: 1},
		"display":      {Kind: config.SourceFlag},
	}
	tests := map[string]string{
		"move_binding": "file:/c.yaml:3:1",
		"display":      "flag",
		"log_level":    "default",
	}
	for key, want := range tests {
		if got := formatSource(sources, key); got != want {
			t.Errorf("formatSource(%q) = %q, want %q", key, got, want)
		}
	}
}
