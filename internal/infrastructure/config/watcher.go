package config

import (
	"github.com/bnema/flashmark/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// Watch starts watching the config file for changes and reloads automatically.
// A change that fails validation keeps the previous configuration.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(m.handleChange)
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

func (m *Manager) handleChange(e fsnotify.Event) {
	log := logging.NewFromEnv()
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

	m.mu.Lock()
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("failed to reload config")
		return
	}
	m.notifyCallbacksLocked()
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		configCopy := *config
		callback(&configCopy)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// Reload rereads the file and notifies callbacks. Used by tests and SIGHUP.
func (m *Manager) Reload() error {
	m.mu.Lock()
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		return err
	}
	m.notifyCallbacksLocked()
	return nil
}

// reload must be called with the write lock held.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}
