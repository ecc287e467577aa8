package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "unknown engine",
			mutate:  func(c *Config) { c.Search.DefaultEngine = "altavista" },
			wantErr: "search.default_engine",
		},
		{
			name:    "bad merge order",
			mutate:  func(c *Config) { c.Palette.MergeOrder = "shuffled" },
			wantErr: "palette.merge_order",
		},
		{
			name:    "negative cap",
			mutate:  func(c *Config) { c.Palette.TabLimit = -1 },
			wantErr: "palette.tab_limit",
		},
		{
			name:    "debounce too long",
			mutate:  func(c *Config) { c.Palette.DebounceMs = 60000 },
			wantErr: "palette.debounce_ms",
		},
		{
			name:    "lookup without placeholder",
			mutate:  func(c *Config) { c.Favicon.LookupURL = "https://icons.example/" },
			wantErr: "favicon.lookup_url",
		},
		{
			name:   "custom lookup",
			mutate: func(c *Config) { c.Favicon.LookupURL = "https://icons.example/%s.ico" },
		},
		{
			name:    "listen addr without port",
			mutate:  func(c *Config) { c.Bridge.ListenAddr = "localhost" },
			wantErr: "bridge.listen_addr",
		},
		{
			name:    "origin without scheme",
			mutate:  func(c *Config) { c.Bridge.AllowedOrigins = []string{"abcdef"} },
			wantErr: "bridge.allowed_origins",
		},
		{
			name:    "zero rate",
			mutate:  func(c *Config) { c.Bridge.RateLimit = 0 },
			wantErr: "bridge.rate_limit",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "negative snapshot interval",
			mutate:  func(c *Config) { c.Snapshot.IntervalMs = -5 },
			wantErr: "snapshot.interval_ms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_ReportsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette.MergeOrder = "x"
	cfg.Bridge.RateBurst = 0

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palette.merge_order")
	assert.Contains(t, err.Error(), "bridge.rate_burst")
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "YAML"
	cfg.Logging.Level = " DEBUG "
	cfg.Search.DefaultEngine = ""
	cfg.Reset.DefaultURL = "  "
	cfg.Palette.MergeOrder = " Actions-First"
	cfg.Bridge.AllowedOrigins = []string{"chrome-extension://abc/", ""}

	normalizeConfig(cfg)

	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "google", cfg.Search.DefaultEngine)
	assert.Equal(t, "chrome://newtab", cfg.Reset.DefaultURL)
	assert.Equal(t, "actions-first", cfg.Palette.MergeOrder)
	assert.Equal(t, []string{"chrome-extension://abc"}, cfg.Bridge.AllowedOrigins)
}
