package config

import (
	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/domain/palette"
	domainurl "github.com/bnema/flashmark/internal/domain/url"
)

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7 // days

	// Palette defaults
	defaultDebounceMs = 50

	// Bridge defaults
	defaultListenAddr = "127.0.0.1:7797"
	defaultRateLimit  = 50.0 // messages per second
	defaultRateBurst  = 100

	// Snapshot defaults
	defaultSnapshotIntervalMs = 2000
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: true,
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAgeDays:    defaultMaxLogAgeDays,
		},
		Search: SearchConfig{
			DefaultEngine: domainurl.DefaultSearchEngineID,
		},
		Reset: ResetConfig{
			DefaultURL: entity.DefaultResetURL,
		},
		Palette: PaletteConfig{
			MergeOrder:    string(palette.MergeBookmarksFirst),
			TabLimit:      palette.DefaultTabLimit,
			BookmarkLimit: palette.DefaultBookmarkLimit,
			ActionLimit:   palette.DefaultActionLimit,
			DebounceMs:    defaultDebounceMs,
		},
		Favicon: FaviconConfig{
			LookupURL: domainurl.DefaultFaviconLookupURL,
		},
		Bridge: BridgeConfig{
			ListenAddr:     defaultListenAddr,
			AllowedOrigins: []string{},
			RateLimit:      defaultRateLimit,
			RateBurst:      defaultRateBurst,
		},
		Snapshot: SnapshotConfig{
			IntervalMs: defaultSnapshotIntervalMs,
		},
	}
}
