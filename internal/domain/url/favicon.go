package url

import (
	"net/url"
	"strings"
)

// DefaultFaviconLookupURL is the public favicon service, keyed by host.
const DefaultFaviconLookupURL = "https://www.google.com/s2/favicons?domain=%s&sz=32"

// FaviconCacheKey derives the favicon cache key for a page: origin plus path,
// without query or fragment. Google hosts serve many products under one
// origin, so their path is cut to the first segment.
// Returns an empty string when the URL cannot be parsed.
func FaviconCacheKey(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ""
	}

	origin := parsed.Scheme + "://" + parsed.Host
	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}

	if isGoogleHost(parsed.Hostname()) {
		segments := strings.Split(path, "/")
		if len(segments) > 2 {
			segments = segments[:2]
		}
		return origin + strings.Join(segments, "/")
	}

	return origin + path
}

func isGoogleHost(host string) bool {
	host = strings.ToLower(host)
	return host == "google.com" || strings.HasSuffix(host, ".google.com")
}

// FaviconLookupURL builds the public service URL for a host.
// Empty host or template yields an empty string.
func FaviconLookupURL(template, host string) string {
	if host == "" || template == "" {
		return ""
	}
	if strings.Contains(template, "%s") {
		return strings.Replace(template, "%s", url.QueryEscape(host), 1)
	}
	return template + url.QueryEscape(host)
}
