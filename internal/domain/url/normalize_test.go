package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty", input: "", want: false},
		{name: "bare domain", input: "example.com", want: true},
		{name: "domain with path", input: "github.com/bnema/flashmark", want: true},
		{name: "subdomain", input: "docs.go.dev", want: true},
		{name: "http scheme", input: "http://example.com", want: true},
		{name: "https scheme uppercase", input: "HTTPS://EXAMPLE.COM", want: true},
		{name: "chrome scheme", input: "chrome://settings", want: true},
		{name: "about page", input: "about:blank", want: true},
		{name: "localhost", input: "localhost", want: true},
		{name: "localhost with port", input: "localhost:8080", want: true},
		{name: "localhost with port and path", input: "localhost:5173/app", want: true},
		{name: "ipv4 literal", input: "192.168.1.10", want: true},
		{name: "ipv4 with port", input: "127.0.0.1:3000", want: true},
		{name: "search phrase", input: "how to cook rice", want: false},
		{name: "single word", input: "golang", want: false},
		{name: "domain-like with spaces", input: "example.com is down", want: false},
		{name: "numeric tld", input: "v1.2", want: false},
		{name: "localhost prefix word", input: "localhostfoo", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeURL(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "http scheme unchanged", input: "http://example.com", want: "http://example.com"},
		{name: "https scheme unchanged", input: "https://example.com", want: "https://example.com"},
		{name: "file scheme unchanged", input: "file:///path/to/file.html", want: "file:///path/to/file.html"},
		{name: "about scheme unchanged", input: "about:blank", want: "about:blank"},
		{name: "domain gets https", input: "example.com", want: "https://example.com"},
		{name: "domain with path gets https", input: "example.com/path", want: "https://example.com/path"},
		{name: "search query unchanged", input: "hello world", want: "hello world"},
		{name: "single word unchanged", input: "hello", want: "hello"},
		{name: "localhost", input: "localhost", want: "http://localhost"},
		{name: "localhost with port", input: "localhost:5173", want: "http://localhost:5173"},
		{name: "ip with port", input: "10.0.0.2:8080", want: "http://10.0.0.2:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestExtractHost(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "strips www", input: "https://www.example.com/path", want: "example.com"},
		{name: "lower-cases", input: "https://GitHub.COM/bnema", want: "github.com"},
		{name: "drops port", input: "http://localhost:8080/x", want: "localhost"},
		{name: "keeps other subdomains", input: "https://docs.go.dev", want: "docs.go.dev"},
		{name: "www only stripped as prefix", input: "https://mywww.example.com", want: "mywww.example.com"},
		{name: "unparsable", input: "http://[::1", want: ""},
		{name: "not a url", input: "just some words", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractHost(tt.input))
		})
	}
}

func TestIsBrowserInternal(t *testing.T) {
	assert.True(t, IsBrowserInternal("chrome://settings"))
	assert.True(t, IsBrowserInternal("chrome-extension://abcdef/options.html"))
	assert.True(t, IsBrowserInternal("about:blank"))
	assert.True(t, IsBrowserInternal("edge://flags"))
	assert.False(t, IsBrowserInternal("https://example.com"))
	assert.False(t, IsBrowserInternal(""))
}
