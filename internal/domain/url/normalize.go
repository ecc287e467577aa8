// Package url provides URL classification and host utilities for the palette.
package url

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	schemePattern    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)
	domainPattern    = regexp.MustCompile(`(?i)^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z]{2,})+`)
	localHostPattern = regexp.MustCompile(`(?i)^(localhost|(\d{1,3}\.){3}\d{1,3})(:\d+)?([/?#]|$)`)
)

// internalPrefixes are browser-owned pages that palette actions never touch.
var internalPrefixes = []string{
	"chrome://",
	"chrome-extension://",
	"edge://",
	"brave://",
	"about:",
}

// HasScheme reports whether the input starts with an explicit scheme.
func HasScheme(input string) bool {
	return schemePattern.MatchString(input) || strings.HasPrefix(strings.ToLower(input), "about:")
}

// isLocalAddress matches localhost and IPv4 literals with an optional port.
func isLocalAddress(input string) bool {
	return localHostPattern.MatchString(input)
}

// LooksLikeURL checks if the input appears to be a URL rather than a search term.
//
//	"example.com"        → true
//	"localhost:8080"     → true
//	"https://go.dev/doc" → true
//	"how to cook rice"   → false
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}

	if HasScheme(input) {
		return true
	}

	if strings.ContainsAny(input, " \t\n") {
		return false
	}

	return domainPattern.MatchString(input) || isLocalAddress(input)
}

// Normalize adds a scheme to URL-like input that has none.
// Local addresses get http://, everything else https://.
// Input with a scheme or that does not look like a URL is returned unchanged.
func Normalize(input string) string {
	if input == "" || HasScheme(input) || !LooksLikeURL(input) {
		return input
	}

	if isLocalAddress(input) {
		return "http://" + input
	}
	return "https://" + input
}

// ExtractHost returns the lower-cased hostname of a URL without a leading "www.".
// Any parse failure yields an empty string.
func ExtractHost(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// IsBrowserInternal reports whether the URL belongs to a browser-owned page.
func IsBrowserInternal(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, prefix := range internalPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
