package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"movie-search-service/internal/app/service"
	"movie-search-service/internal/transport/httpserver/dto"
)

// CacheFlusher removes all cached search responses.
type CacheFlusher interface {
	Clear(ctx context.Context) error
}

// AdminHandler handles admin-related HTTP requests.
type AdminHandler struct {
	searchService *service.SearchService
	cache         CacheFlusher
	logger        *zap.Logger
}

// NewAdminHandler creates a new AdminHandler. cache may be nil when the
// shared cache is disabled.
func NewAdminHandler(searchSvc *service.SearchService, cache CacheFlusher, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		searchService: searchSvc,
		cache:         cache,
		logger:        logger,
	}
}

// FlushCache handles POST /api/v1/admin/cache/flush
func (h *AdminHandler) FlushCache(c *fiber.Ctx) error {
	if h.cache == nil {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: "cache is disabled",
			Code:  "CACHE_DISABLED",
		})
	}

	h.logger.Info("manual cache flush triggered")

	if err := h.cache.Clear(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
			Code:  "FLUSH_FAILED",
		})
	}

	return c.JSON(fiber.Map{
		"status": "flushed",
	})
}

// Stats handles GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats := h.searchService.Stats()

	return c.JSON(dto.StatsResponse{
		CacheHits:   stats.Hits,
		CacheMisses: stats.Misses,
		Errors:      stats.Errors,
	})
}
