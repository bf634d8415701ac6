package config

// Default configuration constants
const (
	// Appearance defaults
	defaultBorderPx    = 2
	defaultGapPx       = 5
	defaultBarHeightPx = 18

	// Session defaults
	defaultAutosaveIntervalMs = 5000
	defaultMaxSnapshots       = 50
)

// DefaultConfig returns the default configuration values for wring.
func DefaultConfig() *Config {
	return &Config{
		Workspaces:      []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		FloatingClasses: []string{"dmenu", "dunst"},
		Appearance: AppearanceConfig{
			ColorScheme: ColorScheme{
				Background:  "#282828",
				Foreground1: "#3c3836",
				Foreground2: "#a89984",
				Foreground3: "#f2e5bc",
				Highlight:   "#cc241d",
				Urgent:      "#458588",
			},
			BorderPx:    defaultBorderPx,
			GapPx:       defaultGapPx,
			ShowBar:     true,
			TopBar:      true,
			BarHeightPx: defaultBarHeightPx,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Database: DatabaseConfig{
			// Path is set dynamically in config.Load()
		},
		Session: SessionConfig{
			AutoRestore:        true,
			AutosaveIntervalMs: defaultAutosaveIntervalMs,
			MaxSnapshots:       defaultMaxSnapshots,
		},
	}
}
