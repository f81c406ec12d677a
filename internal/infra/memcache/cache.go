// Package memcache provides the in-process result-page cache used by search
// sessions.
package memcache

import (
	"sync"

	"movie-search-service/internal/domain"
)

// Cache implements domain.ResultCache. It maps (normalized query, page) to a
// fetched result page. Entries are immutable once stored and never evicted:
// the working set is bounded by the distinct queries a user issues in one
// session, and the cache dies with the process.
type Cache struct {
	mu    sync.RWMutex
	pages map[domain.PageKey][]domain.MovieSummary
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		pages: make(map[domain.PageKey][]domain.MovieSummary),
	}
}

// Get returns the cached page for key, or false when absent.
func (c *Cache) Get(key domain.PageKey) ([]domain.MovieSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	movies, ok := c.pages[key]

	return movies, ok
}

// Put stores a page. A later write to an existing key is ignored; stored
// entries are immutable.
func (c *Cache) Put(key domain.PageKey, movies []domain.MovieSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.pages[key]; exists {
		return
	}
	c.pages[key] = movies
}

// Len returns the number of cached pages.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.pages)
}
