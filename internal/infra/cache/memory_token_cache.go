package cache

import (
	"context"
	"sync"
	"time"

	"handyhub/internal/domain/service"
)

// memoryTokenCache is an in-process TokenCache used in tests and single-node
// development setups. Entries carry their own deadline and are lazily evicted
// on lookup, so no janitor goroutine is needed.
type memoryTokenCache struct {
	mu      sync.RWMutex
	entries map[string]time.Time

	// now is swappable for tests.
	now func() time.Time
}

// NewMemoryTokenCache is the constructor for memoryTokenCache.
func NewMemoryTokenCache() service.TokenCache {
	return &memoryTokenCache{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Set marks a token revoked until its deadline.
func (c *memoryTokenCache) Set(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[token] = c.now().Add(ttl)

	return nil
}

// Exists reports whether the token is revoked and not yet past its deadline.
func (c *memoryTokenCache) Exists(_ context.Context, token string) (bool, error) {
	c.mu.RLock()
	deadline, ok := c.entries[token]
	c.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if c.now().After(deadline) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have renewed it.
		if d, still := c.entries[token]; still && c.now().After(d) {
			delete(c.entries, token)
		}
		c.mu.Unlock()

		return false, nil
	}

	return true, nil
}
