package config

import (
	"time"

	"github.com/bnema/flashmark/internal/domain/palette"
	"github.com/bnema/flashmark/internal/logging"
)

// Config is the root of config.toml.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging"`
	Search   SearchConfig   `mapstructure:"search" toml:"search"`
	Reset    ResetConfig    `mapstructure:"reset" toml:"reset"`
	Palette  PaletteConfig  `mapstructure:"palette" toml:"palette"`
	Favicon  FaviconConfig  `mapstructure:"favicon" toml:"favicon"`
	Bridge   BridgeConfig   `mapstructure:"bridge" toml:"bridge"`
	Snapshot SnapshotConfig `mapstructure:"snapshot" toml:"snapshot"`
}

// DatabaseConfig locates the SQLite file. An empty path selects the XDG data dir.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// LoggingConfig controls console and rotated file output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days"`
}

// SearchConfig selects the fallback search engine for non-URL queries.
type SearchConfig struct {
	DefaultEngine string `mapstructure:"default_engine" toml:"default_engine"`
}

// ResetConfig holds the page opened by the reset action.
type ResetConfig struct {
	DefaultURL string `mapstructure:"default_url" toml:"default_url"`
}

// PaletteConfig tunes result merging and per-bucket caps.
type PaletteConfig struct {
	MergeOrder    string `mapstructure:"merge_order" toml:"merge_order"`
	TabLimit      int    `mapstructure:"tab_limit" toml:"tab_limit"`
	BookmarkLimit int    `mapstructure:"bookmark_limit" toml:"bookmark_limit"`
	ActionLimit   int    `mapstructure:"action_limit" toml:"action_limit"`
	DebounceMs    int    `mapstructure:"debounce_ms" toml:"debounce_ms"`
}

// FaviconConfig holds the public lookup template (one %s for the host).
type FaviconConfig struct {
	LookupURL string `mapstructure:"lookup_url" toml:"lookup_url"`
}

// BridgeConfig configures the websocket endpoint used by the extension.
type BridgeConfig struct {
	ListenAddr     string   `mapstructure:"listen_addr" toml:"listen_addr"`
	Token          string   `mapstructure:"token" toml:"token"`
	AllowedOrigins []string `mapstructure:"allowed_origins" toml:"allowed_origins"`
	// RateLimit is the sustained inbound messages per second per connection.
	RateLimit float64 `mapstructure:"rate_limit" toml:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst" toml:"rate_burst"`
}

// SnapshotConfig controls how often the tab mirror is flushed to disk.
type SnapshotConfig struct {
	IntervalMs int `mapstructure:"interval_ms" toml:"interval_ms"`
}

// PalettePolicy converts the palette section into an engine policy.
// Call after validation; an unparseable order falls back to the default.
func (c *Config) PalettePolicy() palette.Policy {
	order, err := palette.ParseMergeOrder(c.Palette.MergeOrder)
	if err != nil {
		order = palette.MergeBookmarksFirst
	}
	return palette.Policy{
		Order:         order,
		TabLimit:      c.Palette.TabLimit,
		BookmarkLimit: c.Palette.BookmarkLimit,
		ActionLimit:   c.Palette.ActionLimit,
	}
}

// DebounceDelay returns the palette debounce as a duration.
func (c *Config) DebounceDelay() time.Duration {
	return time.Duration(c.Palette.DebounceMs) * time.Millisecond
}

// SnapshotInterval returns the snapshot flush delay as a duration.
func (c *Config) SnapshotInterval() time.Duration {
	return time.Duration(c.Snapshot.IntervalMs) * time.Millisecond
}

// LoggerConfig returns the console logger settings.
func (c *Config) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.Logging.Level)
	cfg.Format = c.Logging.Format
	return cfg
}

// LogFileConfig returns the rotated file settings for the daemon.
func (c *Config) LogFileConfig() logging.FileConfig {
	return logging.FileConfig{
		Enabled:       c.Logging.EnableFileLog,
		LogDir:        c.Logging.LogDir,
		MaxSizeMB:     c.Logging.MaxSizeMB,
		MaxBackups:    c.Logging.MaxBackups,
		MaxAgeDays:    c.Logging.MaxAgeDays,
		Compress:      true,
		WriteToStderr: true,
	}
}
