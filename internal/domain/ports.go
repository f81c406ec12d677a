package domain

import (
	"context"
	"time"
)

// SearchProvider is the remote movie search endpoint.
// Implementations: internal/infra/omdb.
type SearchProvider interface {
	// Search fetches one page of results for the given query. Zero results is
	// a valid success outcome, not an error.
	Search(ctx context.Context, query string, page int) (*SearchPage, error)

	// HealthCheck verifies the provider is accessible.
	HealthCheck(ctx context.Context) error
}

// DetailProvider fetches the full record for one item by its external
// identifier. Details are always fetched live, never cached.
type DetailProvider interface {
	Detail(ctx context.Context, imdbID string) (*MovieDetail, error)
}

// ResultCache stores fetched result pages for the life of one session.
// Entries are immutable once stored and never evicted; a given key is fetched
// from the remote service at most once per process.
// Implementations: internal/infra/memcache.
type ResultCache interface {
	// Get returns the cached page for key, or false when absent.
	Get(key PageKey) ([]MovieSummary, bool)

	// Put stores a page. Later writes to an existing key are ignored.
	Put(key PageKey, movies []MovieSummary)
}

// ByteCache is the shared TTL response cache used by the stateless search
// service. Implementations: internal/infra/redis.
type ByteCache interface {
	// Get retrieves a value by key. Returns nil if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error
}

// View is the rendering collaborator driven by the session controller. The
// controller only writes to it; it never reads view state back, relying on
// counts it computed itself.
type View interface {
	RenderResults(movies []MovieSummary, mode RenderMode)
	SetStatusMessage(text string)
	SetBusy(busy bool)
	SetPaginationControlVisible(visible bool)
	ShowDetailModal(detail *MovieDetail)
}
