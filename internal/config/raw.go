package config

// RawConfig mirrors Config with optional fields so an absent key can be told
// apart from a zero value.
type RawConfig struct {
	Display             *string `yaml:"display"`
	XAuthority          *string `yaml:"xauthority"`
	MoveBinding         *string `yaml:"move_binding"`
	ResizeBinding       *string `yaml:"resize_binding"`
	IgnoreLockModifiers *bool   `yaml:"ignore_lock_modifiers"`
	LogLevel            *string `yaml:"log_level"`
	LogFormat           *string `yaml:"log_format"`
}

func (c RawConfig) merge(overlay RawConfig) RawConfig {
	out := c
	if overlay.Display != nil {
		out.Display = overlay.Display
	}
	if overlay.XAuthority != nil {
		out.XAuthority = overlay.XAuthority
	}
	if overlay.MoveBinding != nil {
		out.MoveBinding = overlay.MoveBinding
	}
	if overlay.ResizeBinding != nil {
		out.ResizeBinding = overlay.ResizeBinding
	}
	if overlay.IgnoreLockModifiers != nil {
		out.IgnoreLockModifiers = overlay.IgnoreLockModifiers
	}
	if overlay.LogLevel != nil {
		out.LogLevel = overlay.LogLevel
	}
	if overlay.LogFormat != nil {
		out.LogFormat = overlay.LogFormat
	}
	return out
}
