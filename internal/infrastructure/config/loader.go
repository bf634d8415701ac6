package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager loads config.toml from the XDG config directory, layers WRING_*
// environment overrides on top, and can watch the file and rebroadcast
// changes to subscribers.
type Manager struct {
	config   *Config
	viper    *viper.Viper
	mu       sync.RWMutex
	onChange []func(*Config)
	watching bool
}

// NewManager builds a Manager rooted at the XDG config directory. Call
// Load before reading values from it.
func NewManager() (*Manager, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("locate config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	v.AddConfigPath(".")

	v.SetEnvPrefix("WRING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv covers the WRING_<SECTION>_<KEY> spellings. These two
	// keep the shorter names working, since the log setup reads them
	// before any config file is parsed.
	for key, env := range map[string]string{
		"logging.level":  "WRING_LOG_LEVEL",
		"logging.format": "WRING_LOG_FORMAT",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	return &Manager{viper: v}, nil
}

// Load reads the configuration, writing a default file first if none
// exists yet.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("prepare app directories: %w", err)
	}

	m.setDefaults()

	if err := m.readOrCreate(); err != nil {
		return err
	}

	cfg, err := m.buildConfig()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// readOrCreate reads the config file, seeding the default one on first
// run. Any other read failure is reported as-is.
func (m *Manager) readOrCreate() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("read %s: %w", m.configPath(), err)
	}

	if err := m.writeDefaultConfig(); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read freshly written %s: %w", m.configPath(), err)
	}
	return nil
}

// configPath is the file viper resolved, or the expected location when
// none exists yet.
func (m *Manager) configPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	dir, _ := GetConfigDir()
	return filepath.Join(dir, "config.toml")
}

// buildConfig turns the current viper state into a validated Config.
// Shared by Load and the watcher's reload path.
func (m *Manager) buildConfig() (*Config, error) {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", m.configPath(), err)
	}

	if cfg.Database.Path == "" {
		path, err := GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		cfg.Database.Path = path
	}

	normalizeConfig(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalizeConfig trims workspace names and folds the logging fields to
// their canonical spellings.
func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	switch config.Logging.Format {
	case "", "text":
		config.Logging.Format = "console"
	}

	for i, name := range config.Workspaces {
		config.Workspaces[i] = strings.TrimSpace(name)
	}
}

// Get returns a copy of the active configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cfg := *m.config
	return &cfg
}

// GetConfigFile reports which file viper is reading. Empty before Load.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// writeDefaultConfig writes the built-in defaults as a starter
// config.toml, plus the JSON schema next to it for editor completion.
func (m *Manager) writeDefaultConfig() error {
	path, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}
	if err := m.viper.SafeWriteConfigAs(path); err != nil {
		return err
	}
	fmt.Printf("Wrote default config to %s\n", path)

	if err := GenerateSchemaFile(); err != nil {
		// The schema only feeds editor completion, not worth failing
		// startup over.
		fmt.Printf("Warning: config schema not generated: %v\n", err)
	}
	return nil
}

// setDefaults seeds viper so partial config files inherit the rest.
// Database.Path is resolved at load time instead, it depends on XDG
// directories.
func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("workspaces", d.Workspaces)
	m.viper.SetDefault("floating_classes", d.FloatingClasses)

	scheme := d.Appearance.ColorScheme
	m.viper.SetDefault("appearance.color_scheme.background", scheme.Background)
	m.viper.SetDefault("appearance.color_scheme.foreground_1", scheme.Foreground1)
	m.viper.SetDefault("appearance.color_scheme.foreground_2", scheme.Foreground2)
	m.viper.SetDefault("appearance.color_scheme.foreground_3", scheme.Foreground3)
	m.viper.SetDefault("appearance.color_scheme.highlight", scheme.Highlight)
	m.viper.SetDefault("appearance.color_scheme.urgent", scheme.Urgent)
	m.viper.SetDefault("appearance.border_px", d.Appearance.BorderPx)
	m.viper.SetDefault("appearance.gap_px", d.Appearance.GapPx)
	m.viper.SetDefault("appearance.show_bar", d.Appearance.ShowBar)
	m.viper.SetDefault("appearance.top_bar", d.Appearance.TopBar)
	m.viper.SetDefault("appearance.bar_height_px", d.Appearance.BarHeightPx)

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)

	m.viper.SetDefault("session.auto_restore", d.Session.AutoRestore)
	m.viper.SetDefault("session.autosave_interval_ms", d.Session.AutosaveIntervalMs)
	m.viper.SetDefault("session.max_snapshots", d.Session.MaxSnapshots)
}
