package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/bnema/flashmark/internal/domain/palette"
	domainurl "github.com/bnema/flashmark/internal/domain/url"
)

// validateConfig collects every problem so the user can fix them in one pass.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateSearch(config)...)
	validationErrors = append(validationErrors, validatePalette(config)...)
	validationErrors = append(validationErrors, validateFavicon(config)...)
	validationErrors = append(validationErrors, validateBridge(config)...)
	validationErrors = append(validationErrors, validateSnapshot(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateSearch(config *Config) []string {
	if !domainurl.IsKnownEngine(config.Search.DefaultEngine) {
		ids := make([]string, 0, len(domainurl.SearchEngines()))
		for _, e := range domainurl.SearchEngines() {
			ids = append(ids, e.ID)
		}
		return []string{fmt.Sprintf("search.default_engine %q is not one of %s",
			config.Search.DefaultEngine, strings.Join(ids, ", "))}
	}
	return nil
}

func validatePalette(config *Config) []string {
	var validationErrors []string
	if _, err := palette.ParseMergeOrder(config.Palette.MergeOrder); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("palette.merge_order: %v", err))
	}
	if config.Palette.TabLimit < 0 {
		validationErrors = append(validationErrors, "palette.tab_limit must be non-negative")
	}
	if config.Palette.BookmarkLimit < 0 {
		validationErrors = append(validationErrors, "palette.bookmark_limit must be non-negative")
	}
	if config.Palette.ActionLimit < 0 {
		validationErrors = append(validationErrors, "palette.action_limit must be non-negative")
	}
	if config.Palette.DebounceMs < 0 || config.Palette.DebounceMs > 5000 {
		validationErrors = append(validationErrors, "palette.debounce_ms must be between 0 and 5000")
	}
	return validationErrors
}

func validateFavicon(config *Config) []string {
	lookup := config.Favicon.LookupURL
	if lookup == "" {
		return nil
	}
	if strings.Count(lookup, "%s") != 1 {
		return []string{"favicon.lookup_url must contain exactly one %s placeholder for the host"}
	}
	if !strings.HasPrefix(lookup, "https://") && !strings.HasPrefix(lookup, "http://") {
		return []string{"favicon.lookup_url must be an http(s) URL"}
	}
	return nil
}

func validateBridge(config *Config) []string {
	var validationErrors []string
	if _, _, err := net.SplitHostPort(config.Bridge.ListenAddr); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("bridge.listen_addr %q is not host:port", config.Bridge.ListenAddr))
	}
	for _, origin := range config.Bridge.AllowedOrigins {
		if !strings.Contains(origin, "://") {
			validationErrors = append(validationErrors, fmt.Sprintf("bridge.allowed_origins entry %q must include a scheme", origin))
		}
	}
	if config.Bridge.RateLimit <= 0 {
		validationErrors = append(validationErrors, "bridge.rate_limit must be positive")
	}
	if config.Bridge.RateBurst < 1 {
		validationErrors = append(validationErrors, "bridge.rate_burst must be at least 1")
	}
	return validationErrors
}

func validateSnapshot(config *Config) []string {
	if config.Snapshot.IntervalMs < 0 {
		return []string{"snapshot.interval_ms must be non-negative"}
	}
	return nil
}
