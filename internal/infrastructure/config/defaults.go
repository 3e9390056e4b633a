package config

const (
	defaultMinRatio      = 0.1
	defaultDimmedOpacity = 0.75
	defaultResizeStep    = 0.1
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			MinRatio:         defaultMinRatio,
			DimmedOpacity:    defaultDimmedOpacity,
			ResizeStep:       defaultResizeStep,
			EqualizeOnInsert: false,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Session: SessionConfig{
			AutoSave:    true,
			AutoRestore: false,
		},
		Keybindings: DefaultKeybindings(),
	}
}

// DefaultKeybindings returns the default hotkey to key mapping.
// Lowercase letters split and navigate; their uppercase forms do the
// mirrored split or resize.
func DefaultKeybindings() map[string][]string {
	return map[string][]string{
		"split-right":  {"v"},
		"split-bottom": {"s"},
		"split-left":   {"V"},
		"split-top":    {"S"},

		"pane-nav-left":     {"left", "h"},
		"pane-nav-right":    {"right", "l"},
		"pane-nav-up":       {"up", "k"},
		"pane-nav-down":     {"down", "j"},
		"pane-nav-next":     {"tab"},
		"pane-nav-previous": {"shift+tab"},

		"pane-maximize": {"z"},
		"close-pane":    {"x"},
		"pane-equalize": {"e"},

		"resize-pane-left":  {"H", "shift+left"},
		"resize-pane-right": {"L", "shift+right"},
		"resize-pane-up":    {"K", "shift+up"},
		"resize-pane-down":  {"J", "shift+down"},
	}
}
