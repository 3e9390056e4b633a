package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager. An empty configFile
// searches the XDG config directory and the working directory for
// config.toml.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	// DUMBTERM_LAYOUT_MIN_RATIO, DUMBTERM_DATABASE_PATH, ...
	v.SetEnvPrefix("DUMBTERM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "DUMBTERM_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBTERM_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DUMBTERM_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBTERM_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created from the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
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

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configPath(), err)
	}

	path, err := m.createDefaultConfig()
	if err != nil {
		return fmt.Errorf("failed to create default config at %s: %w\nTry creating the directory manually or check permissions", path, err)
	}
	m.viper.SetConfigFile(path)
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func (m *Manager) configPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	path, err := GetConfigFile()
	if err != nil {
		return configFileName
	}
	return path
}

// createDefaultConfig writes the defaults and the JSON schema next to the
// config file.
func (m *Manager) createDefaultConfig() (string, error) {
	path := m.configPath()
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return path, err
	}
	if err := WriteConfig(DefaultConfig(), path); err != nil {
		return path, err
	}
	if err := GenerateSchemaFile(filepath.Join(filepath.Dir(path), schemaFileName)); err != nil {
		return path, err
	}
	return path, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	if len(config.Keybindings) == 0 {
		config.Keybindings = DefaultKeybindings()
	}
	for name, keys := range config.Keybindings {
		trimmed := make([]string, 0, len(keys))
		for _, k := range keys {
			if k = strings.TrimSpace(k); k != "" {
				trimmed = append(trimmed, k)
			}
		}
		config.Keybindings[name] = trimmed
	}
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Database.Path is resolved in Load.
	m.viper.SetDefault("layout.min_ratio", defaults.Layout.MinRatio)
	m.viper.SetDefault("layout.dimmed_opacity", defaults.Layout.DimmedOpacity)
	m.viper.SetDefault("layout.resize_step", defaults.Layout.ResizeStep)
	m.viper.SetDefault("layout.equalize_on_insert", defaults.Layout.EqualizeOnInsert)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("session.auto_save", defaults.Session.AutoSave)
	m.viper.SetDefault("session.auto_restore", defaults.Session.AutoRestore)

	// No keybindings default: a configured table replaces the defaults
	// wholesale (see normalizeConfig).
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config.clone()
}

// clone copies c deep enough that callers may edit keybindings.
func (c *Config) clone() *Config {
	cp := *c
	cp.Keybindings = maps.Clone(c.Keybindings)
	for name, keys := range cp.Keybindings {
		cp.Keybindings[name] = slices.Clone(keys)
	}
	return &cp
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}
