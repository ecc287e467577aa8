// Package favicon implements the origin-keyed favicon reference cache.
package favicon

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/flashmark/internal/application/port"
	"github.com/bnema/flashmark/internal/domain/repository"
	"github.com/bnema/flashmark/internal/logging"
)

// writeBufferSize defines the capacity of the favicon write channel.
const writeBufferSize = 100

// pendingWrite is a favicon waiting to be persisted.
type pendingWrite struct {
	key     string
	iconURL string
}

// Cache keeps favicon references in memory and persists new entries
// asynchronously. Lookups never touch the database.
type Cache struct {
	ctx  context.Context
	repo repository.FaviconRepository

	mu       sync.RWMutex
	memCache map[string]string

	writeChan chan pendingWrite
	closed    bool
	closeOnce sync.Once
	wg        sync.WaitGroup
}

var _ port.FaviconStore = (*Cache)(nil)

// NewCache creates a favicon cache. If repo is nil, only in-memory caching is used.
// ctx carries the logger used by the background writer.
func NewCache(ctx context.Context, repo repository.FaviconRepository) *Cache {
	c := &Cache{
		ctx:       ctx,
		repo:      repo,
		memCache:  make(map[string]string),
		writeChan: make(chan pendingWrite, writeBufferSize),
	}

	if repo != nil {
		c.wg.Add(1)
		go c.writer()
	}

	return c
}

// Load fills the memory cache from the repository.
func (c *Cache) Load(ctx context.Context) error {
	if c.repo == nil {
		return nil
	}
	entries, err := c.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load favicon cache: %w", err)
	}

	c.mu.Lock()
	for key, icon := range entries {
		c.memCache[key] = icon
	}
	size := len(c.memCache)
	c.mu.Unlock()

	logging.FromContext(ctx).Debug().Int("entries", size).Msg("favicon cache loaded")
	return nil
}

// Lookup returns the cached icon URL for key.
func (c *Cache) Lookup(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	c.mu.RLock()
	icon, ok := c.memCache[key]
	c.mu.RUnlock()
	return icon, ok
}

// Record stores iconURL under key and queues a write when it changed.
func (c *Cache) Record(key, iconURL string) {
	if key == "" || iconURL == "" {
		return
	}

	c.mu.Lock()
	if c.memCache[key] == iconURL {
		c.mu.Unlock()
		return
	}
	c.memCache[key] = iconURL
	c.mu.Unlock()

	c.queueWrite(key, iconURL)
}

// Forget removes an entry from memory and storage.
func (c *Cache) Forget(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.memCache, key)
	c.mu.Unlock()

	if c.repo == nil {
		return nil
	}
	return c.repo.Delete(ctx, key)
}

// Size returns the number of entries in the in-memory cache.
func (c *Cache) Size() int {
	c.mu.RLock()
	size := len(c.memCache)
	c.mu.RUnlock()
	return size
}

// Close stops accepting writes and waits for queued ones to be persisted.
func (c *Cache) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.writeChan)
		c.mu.Unlock()
	})
	c.wg.Wait()
}

// queueWrite sends an entry to the writer without blocking the caller.
func (c *Cache) queueWrite(key, iconURL string) {
	if c.repo == nil {
		return
	}

	// The read lock keeps Close from closing the channel mid-send.
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return
	}

	select {
	case c.writeChan <- pendingWrite{key: key, iconURL: iconURL}:
	default:
		logging.FromContext(c.ctx).Debug().Str("key", key).Msg("favicon write queue full, dropping")
	}
}

// writer persists queued entries until the channel is closed.
func (c *Cache) writer() {
	defer c.wg.Done()
	for w := range c.writeChan {
		if err := c.repo.Upsert(c.ctx, w.key, w.iconURL); err != nil {
			logging.FromContext(c.ctx).Warn().Err(err).Str("key", w.key).Msg("failed to persist favicon")
		}
	}
}
