package config

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/dumbterm/internal/logging"
)

// reloadDelay coalesces the burst of events an editor save produces.
const reloadDelay = 100 * time.Millisecond

// Watch reloads the config file when it changes on disk and notifies the
// OnConfigChange callbacks. Invalid edits are logged and the previous config
// is kept. Events after ctx is done are ignored.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	if m.config == nil {
		return fmt.Errorf("configuration not loaded")
	}

	log := logging.FromContext(ctx)
	var pending *time.Timer

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if ctx.Err() != nil {
			return
		}
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file event")

		m.mu.Lock()
		if pending != nil {
			pending.Stop()
		}
		pending = time.AfterFunc(reloadDelay, func() {
			if ctx.Err() == nil {
				m.applyChange(ctx)
			}
		})
		m.mu.Unlock()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// applyChange rereads the file and notifies callbacks when the effective
// config differs. It reports whether callbacks ran.
func (m *Manager) applyChange(ctx context.Context) bool {
	log := logging.FromContext(ctx)

	m.mu.Lock()
	prev := m.config
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("config reload rejected, keeping previous values")
		return false
	}
	if reflect.DeepEqual(prev, m.config) {
		m.mu.Unlock()
		log.Debug().Msg("config file changed without effect")
		return false
	}

	cfg := m.config.clone()
	callbacks := append([]func(*Config){}, m.callbacks...)
	m.mu.Unlock()

	log.Info().Int("listeners", len(callbacks)).Msg("config reloaded")
	for _, cb := range callbacks {
		cb(cfg)
	}
	return true
}

// OnConfigChange registers fn to receive each reloaded config.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// reload rereads the file. Must be called with m.mu held for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}
