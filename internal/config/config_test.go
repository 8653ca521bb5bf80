package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.MoveBinding != "Mod1-1" || cfg.ResizeBinding != "Mod1-3" {
		t.Fatalf("unexpected default bindings %q/%q", cfg.MoveBinding, cfg.ResizeBinding)
	}
	if cfg.IgnoreLockModifiers {
		t.Fatalf("expected ignore_lock_modifiers to default to false")
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.File != "" {
		t.Fatalf("expected no loaded file, got %q", res.File)
	}
	if res.Config.MoveBinding != DefaultMoveBinding {
		t.Fatalf("expected move_binding %q, got %q", DefaultMoveBinding, res.Config.MoveBinding)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, "# empty\n")

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.LogLevel != "info" {
		t.Fatalf("expected log_level info, got %q", res.Config.LogLevel)
	}
}

func TestLoadFromPath_DisplayBindingsAndLocks(t *testing.T) {
	data := strings.Join([]string{
		"display: \":1\"",
		"xauthority: \"/tmp/test-xauth\"",
		"move_binding: Mod4-1",
		"resize_binding: Mod4-Shift-3",
		"ignore_lock_modifiers: true",
		"",
	}, "\n")
	path := writeConfig(t, data)

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := res.Config
	if cfg.Display != ":1" {
		t.Fatalf("expected display :1, got %q", cfg.Display)
	}
	if cfg.XAuthority != "/tmp/test-xauth" {
		t.Fatalf("expected xauthority /tmp/test-xauth, got %q", cfg.XAuthority)
	}
	if cfg.MoveBinding != "Mod4-1" || cfg.ResizeBinding != "Mod4-Shift-3" {
		t.Fatalf("unexpected bindings %q/%q", cfg.MoveBinding, cfg.ResizeBinding)
	}
	if !cfg.IgnoreLockModifiers {
		t.Fatalf("expected ignore_lock_modifiers to be true")
	}

	src, ok := res.Sources["display"]
	if !ok || src.Kind != SourceFile || src.Line != 1 {
		t.Fatalf("expected display source at line 1, got %#v", src)
	}
}

func TestLoadFromPath_StrictUnknownKeyErrors(t *testing.T) {
	path := writeConfig(t, "unknown_key: 1\n")

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown_key") && !strings.Contains(err.Error(), "field") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
	if !strings.Contains(err.Error(), filepath.Base(path)) {
		t.Fatalf("expected error to include file path, got %v", err)
	}
}

func TestLoadFromPath_ValidationErrorCarriesSource(t *testing.T) {
	path := writeConfig(t, "move_binding: Mod1-1\nresize_binding: Mod1-9\n")
	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if verr.Path != "resize_binding" {
		t.Fatalf("expected path resize_binding, got %q", verr.Path)
	}
	if verr.Source.Kind != SourceFile || verr.Source.Line != 2 {
		t.Fatalf("expected source at line 2, got %#v", verr.Source)
	}
	if !strings.Contains(err.Error(), ":2:") {
		t.Fatalf("expected line number in error, got %v", err)
	}
}

func TestLoadFromPathWithOverrides_FlagsWin(t *testing.T) {
	path := writeConfig(t, "display: \":1\"\nlog_level: error\n")

	display := ":7"
	level := "debug"
	res, err := LoadFromPathWithOverrides(path, RawConfig{Display: &display, LogLevel: &level})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Display != ":7" {
		t.Fatalf("expected flag display :7, got %q", res.Config.Display)
	}
	if res.Config.LogLevel != "debug" {
		t.Fatalf("expected flag log_level debug, got %q", res.Config.LogLevel)
	}
	if res.Sources["display"].Kind != SourceFlag {
		t.Fatalf("expected display source flag, got %#v", res.Sources["display"])
	}
}

func TestLoadFromPathWithOverrides_InvalidFlagReportsFlagSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	level := "verbose"

	_, err := LoadFromPathWithOverrides(path, RawConfig{LogLevel: &level})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Path != "log_level" || verr.Source.Kind != SourceFlag {
		t.Fatalf("unexpected validation error %#v", verr)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		wantPath string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"move on button 2", func(c *Config) { c.MoveBinding = "Mod4-2" }, ""},
		{"any modifier", func(c *Config) { c.ResizeBinding = "Any-3" }, ""},
		{"lowercase control", func(c *Config) { c.MoveBinding = "control-mod1-1" }, ""},
		{"empty move", func(c *Config) { c.MoveBinding = "" }, "move_binding"},
		{"no button", func(c *Config) { c.MoveBinding = "Mod1" }, "move_binding"},
		{"button out of range", func(c *Config) { c.ResizeBinding = "Mod1-6" }, "resize_binding"},
		{"unknown modifier", func(c *Config) { c.MoveBinding = "Hyper-1" }, "move_binding"},
		{"same button twice", func(c *Config) { c.ResizeBinding = "Mod4-1" }, "resize_binding"},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, "log_level"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantPath == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Path != tt.wantPath {
				t.Fatalf("expected path %q, got %q (%v)", tt.wantPath, verr.Path, err)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for name, want := range tests {
		cfg := DefaultConfig()
		cfg.LogLevel = name
		if got := cfg.SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q) = %v, want %v", name, got, want)
		}
	}
}
