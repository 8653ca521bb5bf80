package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

const (
	DefaultMoveBinding   = "Mod1-1"
	DefaultResizeBinding = "Mod1-3"
)

// Config is the effective configuration used by the daemon.
type Config struct {
	// Display is the X display to connect to. Empty means $DISPLAY.
	Display string `yaml:"display,omitempty"`
	// XAuthority overrides $XAUTHORITY when set.
	XAuthority string `yaml:"xauthority,omitempty"`

	// MoveBinding and ResizeBinding use mousebind syntax: modifiers joined
	// with '-' and a trailing button number, e.g. "Mod1-1".
	MoveBinding   string `yaml:"move_binding"`
	ResizeBinding string `yaml:"resize_binding"`

	// IgnoreLockModifiers also grabs each binding with CapsLock, NumLock and
	// ScrollLock combinations so it works while a lock is on.
	IgnoreLockModifiers bool `yaml:"ignore_lock_modifiers"`

	LogLevel  string `yaml:"log_level"`  // debug, info, warning, error
	LogFormat string `yaml:"log_format"` // auto, text, json
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		MoveBinding:         DefaultMoveBinding,
		ResizeBinding:       DefaultResizeBinding,
		IgnoreLockModifiers: false,
		LogLevel:            "info",
		LogFormat:           "auto",
	}
}

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	moveButton, err := validateBinding(c.MoveBinding)
	if err != nil {
		return &ValidationError{Path: "move_binding", Err: err}
	}
	resizeButton, err := validateBinding(c.ResizeBinding)
	if err != nil {
		return &ValidationError{Path: "resize_binding", Err: err}
	}
	if moveButton == resizeButton {
		return &ValidationError{Path: "resize_binding", Err: fmt.Errorf("resize_binding must use a different button than move_binding (both use %d)", moveButton)}
	}
	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	switch c.LogFormat {
	case "auto", "text", "json":
	default:
		return &ValidationError{Path: "log_format", Err: fmt.Errorf("log_format must be one of: auto, text, json")}
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var knownModifiers = map[string]struct{}{
	"shift": {}, "lock": {}, "control": {},
	"mod1": {}, "mod2": {}, "mod3": {}, "mod4": {}, "mod5": {},
	"button1": {}, "button2": {}, "button3": {}, "button4": {}, "button5": {},
	"any": {},
}

// validateBinding checks the shape of a mousebind string without an X
// connection and returns its button. Dragging needs a button whose held
// state appears in motion events, so only 1-5 are accepted.
func validateBinding(spec string) (int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 0, fmt.Errorf("binding is required")
	}

	parts := strings.Split(spec, "-")
	buttonPart := parts[len(parts)-1]
	button, err := strconv.Atoi(buttonPart)
	if err != nil {
		return 0, fmt.Errorf("binding %q must end with a button number", spec)
	}
	if button < 1 || button > 5 {
		return 0, fmt.Errorf("binding %q: button must be between 1 and 5", spec)
	}

	for _, mod := range parts[:len(parts)-1] {
		if _, ok := knownModifiers[strings.ToLower(mod)]; !ok {
			return 0, fmt.Errorf("binding %q: unknown modifier %q", spec, mod)
		}
	}
	return button, nil
}
