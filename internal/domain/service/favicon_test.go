package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapLookup map[string]string

func (m mapLookup) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func TestFaviconService_Resolve(t *testing.T) {
	cache := mapLookup{"https://cached.example/": "https://cached.example/icon.png"}
	svc := NewFaviconService(cache, "")

	tests := []struct {
		name string
		page string
		host string
		live string
		want string
	}{
		{
			name: "live icon wins",
			page: "https://cached.example/",
			host: "cached.example",
			live: "https://cdn.example/live.ico",
			want: "https://cdn.example/live.ico",
		},
		{
			name: "internal live icon falls through to cache",
			page: "https://cached.example",
			host: "cached.example",
			live: "chrome://favicon/x",
			want: "https://cached.example/icon.png",
		},
		{
			name: "public lookup by host",
			page: "https://other.example/a",
			host: "other.example",
			want: "https://www.google.com/s2/favicons?domain=other.example&sz=32",
		},
		{
			name: "no host",
			page: "about:blank",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Resolve(tt.page, tt.host, tt.live))
		})
	}
}

func TestFaviconService_NilCache(t *testing.T) {
	svc := NewFaviconService(nil, "https://icons.example/%s.ico")
	assert.Equal(t, "https://icons.example/go.dev.ico", svc.Resolve("https://go.dev", "go.dev", ""))
}

func TestCacheable(t *testing.T) {
	key, ok := Cacheable("https://go.dev/doc?x=1", "https://go.dev/favicon.ico")
	assert.True(t, ok)
	assert.Equal(t, "https://go.dev/doc", key)

	_, ok = Cacheable("https://go.dev", "")
	assert.False(t, ok)

	_, ok = Cacheable("https://go.dev", "chrome://favicon/go.dev")
	assert.False(t, ok)

	_, ok = Cacheable("not a url", "https://x.example/i.ico")
	assert.False(t, ok)
}
