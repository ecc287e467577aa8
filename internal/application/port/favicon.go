package port

// FaviconStore is the origin-keyed favicon reference cache.
// Implementations must be safe for concurrent use.
type FaviconStore interface {
	// Lookup returns the cached icon URL for key.
	Lookup(key string) (string, bool)

	// Record stores iconURL under key. Empty keys or icons are ignored.
	Record(key, iconURL string)
}
