package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"movie-search-service/internal/app/service"
)

// DashboardHandler handles dashboard-related HTTP requests.
type DashboardHandler struct {
	searchService *service.SearchService
	logger        *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc *service.SearchService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		searchService: svc,
		logger:        logger,
	}
}

// Render handles GET /dashboard
// Renders the dashboard HTML page using Fiber's template engine.
func (h *DashboardHandler) Render(c *fiber.Ctx) error {
	stats := h.searchService.Stats()

	total := stats.Hits + stats.Misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(stats.Hits) / float64(total) * 100
	}

	return c.Render("pages/dashboard", fiber.Map{
		"Title":       "Movie Search Dashboard",
		"CacheHits":   stats.Hits,
		"CacheMisses": stats.Misses,
		"Errors":      stats.Errors,
		"HitRate":     hitRate,
	}, "layouts/base")
}
