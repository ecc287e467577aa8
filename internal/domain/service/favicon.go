// Package service holds domain services that combine entities with policy.
package service

import (
	"strings"

	domainurl "github.com/bnema/flashmark/internal/domain/url"
)

// IconLookup reads from the origin-keyed favicon cache.
type IconLookup interface {
	Lookup(key string) (string, bool)
}

// FaviconService resolves the icon reference for a page.
//
// The chain is: the live favicon reported by the browser (unless it points
// at a browser-internal URL), then the origin-keyed cache, then the public
// lookup service keyed by host.
type FaviconService struct {
	cache          IconLookup
	lookupTemplate string
}

// NewFaviconService creates a resolver. cache may be nil. An empty template
// selects the default public lookup service.
func NewFaviconService(cache IconLookup, lookupTemplate string) *FaviconService {
	if strings.TrimSpace(lookupTemplate) == "" {
		lookupTemplate = domainurl.DefaultFaviconLookupURL
	}
	return &FaviconService{cache: cache, lookupTemplate: lookupTemplate}
}

// Resolve returns an icon reference, or "" when nothing applies.
func (s *FaviconService) Resolve(pageURL, host, liveIcon string) string {
	if live := strings.TrimSpace(liveIcon); live != "" && !domainurl.IsBrowserInternal(live) {
		return live
	}

	if s.cache != nil {
		if key := domainurl.FaviconCacheKey(pageURL); key != "" {
			if icon, ok := s.cache.Lookup(key); ok && icon != "" {
				return icon
			}
		}
	}

	return domainurl.FaviconLookupURL(s.lookupTemplate, host)
}

// Cacheable reports whether a live favicon is worth recording.
func Cacheable(pageURL, liveIcon string) (key string, ok bool) {
	live := strings.TrimSpace(liveIcon)
	if live == "" || domainurl.IsBrowserInternal(live) {
		return "", false
	}
	key = domainurl.FaviconCacheKey(pageURL)
	return key, key != ""
}
