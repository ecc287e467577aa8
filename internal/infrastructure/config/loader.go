// Package config loads config.toml through viper and keeps it fresh on disk changes.
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

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool

	// explicit is set when the caller pinned a config file path.
	explicit string
}

// NewManager creates a manager reading config.toml from the XDG config dir
// (or the working directory during development).
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	return newManager(v, "")
}

// NewManagerForFile creates a manager pinned to path.
func NewManagerForFile(path string) (*Manager, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	return newManager(v, path)
}

func newManager(v *viper.Viper, explicit string) (*Manager, error) {
	// FLASHMARK_DATABASE_PATH, FLASHMARK_BRIDGE_TOKEN, ...
	v.SetEnvPrefix("FLASHMARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "FLASHMARK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind FLASHMARK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "FLASHMARK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind FLASHMARK_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		explicit:  explicit,
	}, nil
}

// Load reads the config file (creating a default one when missing) and
// environment overrides, then normalizes and validates the result.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	if !isNotFound(err) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configPath(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configPath(),
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// isNotFound covers both lookup modes: search paths report
// ConfigFileNotFoundError, a pinned file reports a plain fs error.
func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

func (m *Manager) configPath() string {
	if m.explicit != "" {
		return m.explicit
	}
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	path, err := GetConfigFile()
	if err != nil {
		return configName
	}
	return path
}

// decode unmarshals viper state into a fresh Config.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configPath(),
			err,
		)
	}
	if err := fillPaths(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func fillPaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	config.Search.DefaultEngine = strings.ToLower(strings.TrimSpace(config.Search.DefaultEngine))
	if config.Search.DefaultEngine == "" {
		config.Search.DefaultEngine = DefaultConfig().Search.DefaultEngine
	}

	config.Reset.DefaultURL = strings.TrimSpace(config.Reset.DefaultURL)
	if config.Reset.DefaultURL == "" {
		config.Reset.DefaultURL = DefaultConfig().Reset.DefaultURL
	}

	config.Palette.MergeOrder = strings.ToLower(strings.TrimSpace(config.Palette.MergeOrder))
	config.Favicon.LookupURL = strings.TrimSpace(config.Favicon.LookupURL)
	config.Bridge.ListenAddr = strings.TrimSpace(config.Bridge.ListenAddr)

	origins := config.Bridge.AllowedOrigins[:0]
	for _, o := range config.Bridge.AllowedOrigins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	config.Bridge.AllowedOrigins = origins
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Bridge.AllowedOrigins = append([]string(nil), m.config.Bridge.AllowedOrigins...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) createDefaultConfig() error {
	configFile := m.explicit
	if configFile == "" {
		path, err := GetConfigFile()
		if err != nil {
			return err
		}
		configFile = path
		// Search mode does not know the file yet; pin it so the reread finds it.
		m.viper.SetConfigFile(configFile)
	}

	if err := WriteDefaultConfig(configFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// WriteDefaultConfig writes the defaults to path, creating parent dirs.
// An existing file is left alone.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return WriteConfigOrdered(DefaultConfig(), path)
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// database.path and logging.log_dir are resolved in fillPaths.
	m.viper.SetDefault("database.path", "")

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", "")
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)

	m.viper.SetDefault("search.default_engine", defaults.Search.DefaultEngine)
	m.viper.SetDefault("reset.default_url", defaults.Reset.DefaultURL)

	m.viper.SetDefault("palette.merge_order", defaults.Palette.MergeOrder)
	m.viper.SetDefault("palette.tab_limit", defaults.Palette.TabLimit)
	m.viper.SetDefault("palette.bookmark_limit", defaults.Palette.BookmarkLimit)
	m.viper.SetDefault("palette.action_limit", defaults.Palette.ActionLimit)
	m.viper.SetDefault("palette.debounce_ms", defaults.Palette.DebounceMs)

	m.viper.SetDefault("favicon.lookup_url", defaults.Favicon.LookupURL)

	m.viper.SetDefault("bridge.listen_addr", defaults.Bridge.ListenAddr)
	m.viper.SetDefault("bridge.token", defaults.Bridge.Token)
	m.viper.SetDefault("bridge.allowed_origins", defaults.Bridge.AllowedOrigins)
	m.viper.SetDefault("bridge.rate_limit", defaults.Bridge.RateLimit)
	m.viper.SetDefault("bridge.rate_burst", defaults.Bridge.RateBurst)

	m.viper.SetDefault("snapshot.interval_ms", defaults.Snapshot.IntervalMs)
}
