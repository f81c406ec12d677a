// Package job provides background job schedulers.
package job

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"movie-search-service/internal/app/service"
	"movie-search-service/pkg/locker"
)

// WarmScheduler periodically refreshes the shared cache for a configured set
// of popular queries, using distributed locking so only one instance warms
// the cache at a time.
type WarmScheduler struct {
	searchService *service.SearchService
	queries       []string
	interval      time.Duration
	timeout       time.Duration
	logger        *zap.Logger
	locker        locker.DistributedLocker

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// WarmConfig holds warm scheduler configuration.
type WarmConfig struct {
	Queries   []string
	Interval  time.Duration
	Timeout   time.Duration
	OnStartup bool
}

// NewWarmScheduler creates a new WarmScheduler with distributed locking support.
func NewWarmScheduler(
	searchSvc *service.SearchService,
	cfg WarmConfig,
	logger *zap.Logger,
	locker locker.DistributedLocker,
) *WarmScheduler {
	return &WarmScheduler{
		searchService: searchSvc,
		queries:       cfg.Queries,
		interval:      cfg.Interval,
		timeout:       cfg.Timeout,
		logger:        logger,
		locker:        locker,
	}
}

// Start begins the background warm job.
func (s *WarmScheduler) Start(runOnStartup bool) {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("starting warm scheduler",
		zap.Duration("interval", s.interval),
		zap.Int("query_count", len(s.queries)),
		zap.Bool("run_on_startup", runOnStartup),
	)

	s.wg.Add(1)
	go s.run(runOnStartup)
}

// Stop gracefully stops the scheduler.
func (s *WarmScheduler) Stop() {
	s.logger.Info("stopping warm scheduler")
	s.cancel()
	s.wg.Wait()
	s.logger.Info("warm scheduler stopped")
}

// run is the main loop of the scheduler.
func (s *WarmScheduler) run(runOnStartup bool) {
	defer s.wg.Done()

	if runOnStartup {
		s.executeWarm()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.executeWarm()
		}
	}
}

// executeWarm warms the first page of every configured query.
//
// Locking behavior:
//   - Lock TTL = interval duration (cooldown model, not timeout)
//   - Success: lock held for the full interval to prevent duplicate runs
//   - Failure: lock released immediately so another instance can retry
func (s *WarmScheduler) executeWarm() {
	const lockKey = "warm:scheduler:lock"

	acquired, err := s.locker.Acquire(s.ctx, lockKey, s.interval)
	if err != nil {
		s.logger.Error("failed to acquire distributed lock", zap.Error(err))

		return
	}
	if !acquired {
		s.logger.Debug("another instance is warming the cache, skipping execution")

		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	warmed := 0
	failed := 0
	for _, query := range s.queries {
		if ctx.Err() != nil {
			break
		}

		if _, err := s.searchService.Search(ctx, query, 1); err != nil {
			failed++
			s.logger.Warn("warm query failed",
				zap.String("query", query),
				zap.Error(err),
			)
			continue
		}
		warmed++
	}

	if failed > 0 {
		// Release the lock so another instance can retry right away
		if err := s.locker.Release(s.ctx, lockKey); err != nil {
			s.logger.Error("failed to release lock after warm errors", zap.Error(err))
		}
		s.logger.Info("cache warm completed with errors, lock released for retry",
			zap.Int("warmed", warmed),
			zap.Int("failed", failed),
		)
	} else {
		// Lock expires naturally after the interval (cooldown period)
		s.logger.Info("cache warm completed, lock held for cooldown",
			zap.Int("warmed", warmed),
			zap.Duration("cooldown", s.interval),
		)
	}
}
