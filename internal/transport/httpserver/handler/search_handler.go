// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"movie-search-service/internal/app/service"
	"movie-search-service/internal/domain"
	"movie-search-service/internal/transport/httpserver/dto"
	"movie-search-service/internal/validator"
)

// SearchHandler handles movie search HTTP requests.
type SearchHandler struct {
	service   *service.SearchService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(svc *service.SearchService, v *validator.Validator, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// Search handles GET /api/v1/search
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid query parameters",
			Code:  "INVALID_PARAMS",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	page := req.PageOrDefault()

	result, err := h.service.Search(c.Context(), req.Query, page)
	if err != nil {
		return h.searchError(c, req.Query, err)
	}

	// Shown count for a stateless API call is everything up to this page.
	shown := (page-1)*domain.PageSize + len(result.Movies)
	if shown > result.Total {
		shown = result.Total
	}

	return c.JSON(dto.FromSearchPage(result, page, shown))
}

// Detail handles GET /api/v1/movies/:id
func (h *SearchHandler) Detail(c *fiber.Ctx) error {
	req := dto.DetailRequest{ID: c.Params("id")}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	detail, err := h.service.Detail(c.Context(), req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "movie not found",
				Code:  "NOT_FOUND",
			})
		}

		h.logger.Error("detail lookup failed", zap.String("imdb_id", req.ID), zap.Error(err))

		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: "failed to fetch movie details",
			Code:  "UPSTREAM_ERROR",
		})
	}

	return c.JSON(dto.FromMovieDetail(detail))
}

// searchError maps a service error to an HTTP response.
func (h *SearchHandler) searchError(c *fiber.Ctx, query string, err error) error {
	if errors.Is(err, domain.ErrQueryTooShort) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "query must be at least 3 characters",
			Code:  "QUERY_TOO_SHORT",
		})
	}

	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) {
		h.logger.Warn("upstream search failed",
			zap.String("query", query),
			zap.Int("status", reqErr.Status),
			zap.Error(err),
		)

		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: "upstream provider error",
			Code:  "UPSTREAM_ERROR",
		})
	}

	h.logger.Error("search failed", zap.String("query", query), zap.Error(err))

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: "search failed",
		Code:  "INTERNAL_ERROR",
	})
}
