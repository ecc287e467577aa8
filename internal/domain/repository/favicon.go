package repository

import "context"

// FaviconRepository persists the origin-keyed favicon reference cache.
type FaviconRepository interface {
	// LoadAll returns every cached entry keyed by cache key.
	LoadAll(ctx context.Context) (map[string]string, error)

	// Upsert records the icon URL for a cache key.
	Upsert(ctx context.Context, key, iconURL string) error

	// Delete removes a cache entry. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
