package config

// Config represents the complete configuration for dumbterm.
type Config struct {
	// Layout tunes the split-pane layout engine.
	Layout   LayoutConfig   `mapstructure:"layout" toml:"layout" json:"layout"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	// Session controls layout snapshot persistence.
	Session SessionConfig `mapstructure:"session" toml:"session" json:"session"`
	// Keybindings maps hotkey names (split-right, pane-nav-left, ...) to the
	// key strings that trigger them in the playground.
	Keybindings map[string][]string `mapstructure:"keybindings" toml:"keybindings" json:"keybindings"`
}

// LayoutConfig tunes ratios, resize steps and focus dimming.
type LayoutConfig struct {
	// MinRatio is the smallest share a pane may be resized to (0.1 = 10%).
	MinRatio float64 `mapstructure:"min_ratio" toml:"min_ratio" json:"min_ratio" jsonschema:"minimum=0.01,maximum=0.5,default=0.1"`
	// DimmedOpacity is applied to every pane but the focused one.
	DimmedOpacity float64 `mapstructure:"dimmed_opacity" toml:"dimmed_opacity" json:"dimmed_opacity" jsonschema:"minimum=0,maximum=1,default=0.75"`
	// ResizeStep is the ratio moved by one keyboard resize.
	ResizeStep float64 `mapstructure:"resize_step" toml:"resize_step" json:"resize_step" jsonschema:"minimum=0.01,maximum=0.5,default=0.1"`
	// EqualizeOnInsert gives every sibling the same share after an insert
	// instead of scaling existing shares.
	EqualizeOnInsert bool `mapstructure:"equalize_on_insert" toml:"equalize_on_insert" json:"equalize_on_insert"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// LogDir receives rotated log files for the playground. Empty uses the
	// XDG state directory.
	LogDir string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
}

// DatabaseConfig locates the layout snapshot database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// SessionConfig controls saving and restoring layouts.
type SessionConfig struct {
	// AutoSave snapshots the playground layout on exit.
	AutoSave bool `mapstructure:"auto_save" toml:"auto_save" json:"auto_save"`
	// AutoRestore restores the last snapshot of the tab on start.
	AutoRestore bool `mapstructure:"auto_restore" toml:"auto_restore" json:"auto_restore"`
}
