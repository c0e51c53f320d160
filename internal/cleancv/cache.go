// Package cleancv builds structured resumes from raw text, caching the
// result by content hash and orchestrating AI-vs-deterministic
// structuring.
package cleancv

import (
	"sync"
	"time"

	"github.com/jonathan/resume-adapter/internal/types"
)

// Cache stores structured documents keyed by content hash. The cache is
// an optimization, not a correctness mechanism: implementations may
// evict at any time.
type Cache interface {
	Get(key string) (*types.ResumeDocument, bool)
	Set(key string, doc *types.ResumeDocument)
}

type cacheEntry struct {
	doc      *types.ResumeDocument
	storedAt time.Time
}

// MemoryCache is a bounded in-memory Cache with TTL expiry. When the
// entry count exceeds the bound, the oldest insertions are evicted, so
// memory stays bounded in long-running servers.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]cacheEntry
	order      []string
	maxEntries int
	ttl        time.Duration
}

// NewMemoryCache creates a cache holding at most maxEntries documents
// for at most ttl each. A zero ttl disables expiry.
func NewMemoryCache(maxEntries int, ttl time.Duration) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = 1024
	}
	return &MemoryCache{
		entries:    make(map[string]cacheEntry),
		maxEntries: maxEntries,
		ttl:        ttl,
	}
}

// Get returns the cached document if present and not expired. The
// returned document is a deep copy: callers mutate pipeline documents in
// place and must never reach the cached original.
func (c *MemoryCache) Get(key string) (*types.ResumeDocument, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && time.Since(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.doc.Clone(), true
}

// Set stores a deep copy of the document, evicting the oldest entries
// when the bound is exceeded.
func (c *MemoryCache) Set(key string, doc *types.ResumeDocument) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = cacheEntry{doc: doc.Clone(), storedAt: time.Now()}

	for len(c.entries) > c.maxEntries && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

// Len returns the number of cached entries
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
