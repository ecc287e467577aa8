package url

import (
	"net/url"
	"strings"

	"github.com/bnema/flashmark/internal/domain/entity"
)

// DefaultSearchEngineID is used when no engine is configured or the configured one is unknown.
const DefaultSearchEngineID = "google"

var searchEngines = []entity.SearchEngine{
	{ID: "google", Name: "Google", Template: "https://www.google.com/search?q="},
	{ID: "duckduckgo", Name: "DuckDuckGo", Template: "https://duckduckgo.com/?q="},
	{ID: "bing", Name: "Bing", Template: "https://www.bing.com/search?q="},
	{ID: "brave", Name: "Brave Search", Template: "https://search.brave.com/search?q="},
	{ID: "ecosia", Name: "Ecosia", Template: "https://www.ecosia.org/search?q="},
	{ID: "perplexity", Name: "Perplexity", Template: "https://www.perplexity.ai/search?q="},
	{ID: "chatgpt", Name: "ChatGPT", Template: "https://chatgpt.com/?q="},
	{ID: "gemini", Name: "Gemini", Template: "https://gemini.google.com/app?q="},
	{ID: "claude", Name: "Claude", Template: "https://claude.ai/new?q="},
}

// SearchEngines returns the known search engines in display order.
func SearchEngines() []entity.SearchEngine {
	out := make([]entity.SearchEngine, len(searchEngines))
	copy(out, searchEngines)
	return out
}

// IsKnownEngine reports whether id names a known search engine.
func IsKnownEngine(id string) bool {
	for _, e := range searchEngines {
		if e.ID == id {
			return true
		}
	}
	return false
}

// EngineTemplate returns the URL template for an engine, falling back to Google.
func EngineTemplate(id string) string {
	for _, e := range searchEngines {
		if e.ID == id {
			return e.Template
		}
	}
	return searchEngines[0].Template
}

// BuildSearchURL appends the percent-encoded term to a search template.
// Spaces are encoded as %20 rather than '+'.
func BuildSearchURL(template, term string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(term), "+", "%20")
	if strings.Contains(template, "%s") {
		return strings.Replace(template, "%s", escaped, 1)
	}
	return template + escaped
}

// Resolve turns free-text palette input into a navigation target.
// URL-like input is normalized; anything else becomes a search URL.
// Returns ("", false) for blank input.
func Resolve(input, searchTemplate string) (target string, isURL bool) {
	q := strings.TrimSpace(input)
	if q == "" {
		return "", false
	}

	if LooksLikeURL(q) {
		return Normalize(q), true
	}

	return BuildSearchURL(searchTemplate, q), false
}
