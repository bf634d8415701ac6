package config

// Config represents the complete configuration for wring.
type Config struct {
	// Workspaces names the workspaces created at startup. Must have at
	// least one element.
	Workspaces []string `mapstructure:"workspaces" yaml:"workspaces" toml:"workspaces"`
	// FloatingClasses lists WM_CLASS values that should always be treated
	// as floating.
	FloatingClasses []string         `mapstructure:"floating_classes" yaml:"floating_classes" toml:"floating_classes"`
	Appearance      AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
	Logging         LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Database        DatabaseConfig   `mapstructure:"database" yaml:"database" toml:"database"`
	// Session controls state persistence and restoration.
	Session SessionConfig `mapstructure:"session" yaml:"session" toml:"session"`
}

// ColorScheme holds the hex color values used when rendering UI elements.
type ColorScheme struct {
	Background  string `mapstructure:"background" yaml:"background" toml:"background"`
	Foreground1 string `mapstructure:"foreground_1" yaml:"foreground_1" toml:"foreground_1"`
	Foreground2 string `mapstructure:"foreground_2" yaml:"foreground_2" toml:"foreground_2"`
	Foreground3 string `mapstructure:"foreground_3" yaml:"foreground_3" toml:"foreground_3"`
	// Highlight marks the focused element.
	Highlight string `mapstructure:"highlight" yaml:"highlight" toml:"highlight"`
	// Urgent marks windows with the urgency hint set.
	Urgent string `mapstructure:"urgent" yaml:"urgent" toml:"urgent"`
}

// AppearanceConfig controls rendering of borders, gaps and the bar.
type AppearanceConfig struct {
	ColorScheme ColorScheme `mapstructure:"color_scheme" yaml:"color_scheme" toml:"color_scheme"`
	// BorderPx is the width of window borders in pixels.
	BorderPx int `mapstructure:"border_px" yaml:"border_px" toml:"border_px"`
	// GapPx is the size of gaps between windows in pixels.
	GapPx int `mapstructure:"gap_px" yaml:"gap_px" toml:"gap_px"`
	// ShowBar reserves space for a status bar.
	ShowBar bool `mapstructure:"show_bar" yaml:"show_bar" toml:"show_bar"`
	// TopBar puts the status bar at the top of the screen instead of the
	// bottom.
	TopBar bool `mapstructure:"top_bar" yaml:"top_bar" toml:"top_bar"`
	// BarHeightPx is the height of the space reserved for the bar.
	BarHeightPx int `mapstructure:"bar_height_px" yaml:"bar_height_px" toml:"bar_height_px"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error, fatal.
	Level string `mapstructure:"level" yaml:"level" toml:"level"`
	// Format is console or json.
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
}

// DatabaseConfig points at the snapshot database.
type DatabaseConfig struct {
	// Path to the SQLite database file. Defaults to the XDG data dir.
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// SessionConfig controls state snapshots.
type SessionConfig struct {
	// AutoRestore reloads the latest snapshot on startup.
	AutoRestore bool `mapstructure:"auto_restore" yaml:"auto_restore" toml:"auto_restore"`
	// AutosaveIntervalMs is the autosave period in milliseconds. Zero
	// disables autosaving.
	AutosaveIntervalMs int `mapstructure:"autosave_interval_ms" yaml:"autosave_interval_ms" toml:"autosave_interval_ms"`
	// MaxSnapshots bounds how many snapshots are kept; older ones are
	// pruned. Zero keeps everything.
	MaxSnapshots int `mapstructure:"max_snapshots" yaml:"max_snapshots" toml:"max_snapshots"`
}
