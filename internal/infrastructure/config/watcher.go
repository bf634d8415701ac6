package config

import (
	"github.com/bnema/wring/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads the configuration whenever the file changes on disk.
// Subscribers registered through OnConfigChange see every successful
// reload. Calling Watch again on a watching Manager is a no-op.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(m.handleFileEvent)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

// OnConfigChange registers fn to run after each successful reload.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onChange = append(m.onChange, fn)
}

// handleFileEvent runs on viper's watch goroutine. A failed reload keeps
// the previous configuration and notifies nobody.
func (m *Manager) handleFileEvent(e fsnotify.Event) {
	log := logging.NewFromEnv()
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

	m.mu.Lock()
	err := m.reload()
	cfg := m.config
	subs := append(([]func(*Config))(nil), m.onChange...)
	m.mu.Unlock()

	if err != nil {
		log.Warn().Err(err).Msg("config reload failed, keeping previous values")
		return
	}
	for _, fn := range subs {
		fn(cfg)
	}
}

// reload re-reads the file into a fresh Config. Callers hold m.mu.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	cfg, err := m.buildConfig()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}
