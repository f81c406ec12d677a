// Package service provides application use cases.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"movie-search-service/internal/domain"
)

// SearchService answers movie searches on behalf of the HTTP transport and
// the cache warm job. Results are cached as JSON in a shared byte cache so
// every server instance answers repeat queries without touching the upstream
// provider. Detail lookups always go to the provider.
type SearchService struct {
	provider domain.SearchProvider
	details  domain.DetailProvider
	cache    domain.ByteCache
	ttl      time.Duration
	logger   *zap.Logger

	hits   atomic.Int64
	misses atomic.Int64
	errors atomic.Int64
}

// NewSearchService creates a new SearchService. cache may be nil, in which
// case every search goes straight to the provider.
func NewSearchService(
	provider domain.SearchProvider,
	details domain.DetailProvider,
	cache domain.ByteCache,
	ttl time.Duration,
	logger *zap.Logger,
) *SearchService {
	return &SearchService{
		provider: provider,
		details:  details,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// Stats holds cache counters for the dashboard.
type Stats struct {
	Hits   int64
	Misses int64
	Errors int64
}

// Stats returns a snapshot of the cache counters.
func (s *SearchService) Stats() Stats {
	return Stats{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
		Errors: s.errors.Load(),
	}
}

// Search returns one page of results for the given query.
// Queries shorter than three characters are rejected with
// domain.ErrQueryTooShort before any provider or cache access.
func (s *SearchService) Search(ctx context.Context, query string, page int) (*domain.SearchPage, error) {
	query = domain.NormalizeQuery(query)
	if domain.QueryTooShort(query) {
		return nil, domain.ErrQueryTooShort
	}
	if page < 1 {
		page = 1
	}

	key := searchKey(query, page)

	if cached := s.fromCache(ctx, key); cached != nil {
		s.hits.Add(1)
		return cached, nil
	}
	s.misses.Add(1)

	s.logger.Debug("searching movies",
		zap.String("query", query),
		zap.Int("page", page),
	)

	result, err := s.provider.Search(ctx, query, page)
	if err != nil {
		s.errors.Add(1)
		s.logger.Warn("search failed",
			zap.String("query", query),
			zap.Int("page", page),
			zap.Error(err),
		)
		return nil, err
	}

	s.toCache(ctx, key, result)

	s.logger.Debug("search completed",
		zap.Int("total", result.Total),
		zap.Int("count", len(result.Movies)),
	)

	return result, nil
}

// Detail retrieves full information for a single title by IMDb id.
func (s *SearchService) Detail(ctx context.Context, imdbID string) (*domain.MovieDetail, error) {
	detail, err := s.details.Detail(ctx, imdbID)
	if err != nil {
		s.logger.Warn("detail lookup failed",
			zap.String("imdb_id", imdbID),
			zap.Error(err),
		)
		return nil, err
	}
	return detail, nil
}

// HealthCheck reports whether the upstream provider is reachable.
func (s *SearchService) HealthCheck(ctx context.Context) error {
	return s.provider.HealthCheck(ctx)
}

// fromCache loads a cached page. Any cache failure is treated as a miss.
func (s *SearchService) fromCache(ctx context.Context, key string) *domain.SearchPage {
	if s.cache == nil {
		return nil
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var page domain.SearchPage
	if err := json.Unmarshal(data, &page); err != nil {
		s.logger.Warn("corrupt cache entry",
			zap.String("key", key),
			zap.Error(err),
		)
		_ = s.cache.Delete(ctx, key)
		return nil
	}

	return &page
}

// toCache stores a page. Cache failures are logged and swallowed; the caller
// already has the result.
func (s *SearchService) toCache(ctx context.Context, key string, page *domain.SearchPage) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(page)
	if err != nil {
		s.logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("cache store failed", zap.String("key", key), zap.Error(err))
	}
}

// searchKey builds the cache key for a query page.
func searchKey(query string, page int) string {
	return fmt.Sprintf("search:%s:%d", query, page)
}
