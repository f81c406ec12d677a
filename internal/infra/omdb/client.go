// Package omdb implements the remote movie search provider client.
package omdb

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"movie-search-service/internal/domain"
)

// Config holds configuration for the OMDb client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	CB      CBConfig
}

// CBConfig holds circuit breaker settings.
type CBConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
}

// Client implements domain.SearchProvider and domain.DetailProvider against
// the OMDb HTTP API. There is no retry layer: a failed fetch surfaces once and
// requires a new caller-initiated action.
type Client struct {
	client *resty.Client
	cb     *gobreaker.CircuitBreaker[*resty.Response]
	logger *zap.Logger
}

// New creates a new OMDb client.
func New(cfg Config, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetQueryParam("apikey", cfg.APIKey)

	settings := gobreaker.Settings{
		Name:        "omdb",
		MaxRequests: cfg.CB.MaxRequests,
		Interval:    cfg.CB.Interval,
		Timeout:     cfg.CB.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= 3 && failureRatio >= cfg.CB.FailureRatio
		},
		IsSuccessful: func(err error) bool {
			// A superseded request is a deliberate cancellation, not a
			// provider failure; it must not trip the breaker.
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	return &Client{
		client: client,
		cb:     gobreaker.NewCircuitBreaker[*resty.Response](settings),
		logger: logger,
	}
}

// Search fetches one page of search results. A non-"True" Response or missing
// Search array is treated as zero results, not an error.
func (c *Client) Search(ctx context.Context, query string, page int) (*domain.SearchPage, error) {
	query = domain.NormalizeQuery(query)
	if page < 1 {
		page = 1
	}

	resp, err := c.cb.Execute(func() (*resty.Response, error) {
		var result searchEnvelope
		r, err := c.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"s":    query,
				"page": strconv.Itoa(page),
			}).
			SetResult(&result).
			Get("/")
		if err != nil {
			return nil, err
		}
		if r.IsError() {
			return nil, &domain.RequestError{Status: r.StatusCode()}
		}

		return r, nil
	})
	if err != nil {
		return nil, c.wrapError(err, "search",
			zap.String("query", query),
			zap.Int("page", page),
		)
	}

	result := resp.Result().(*searchEnvelope)
	pageResult := result.toDomain()

	c.logger.Debug("omdb search completed",
		zap.String("query", query),
		zap.Int("page", page),
		zap.Int("count", len(pageResult.Movies)),
		zap.Int("total", pageResult.Total),
	)

	return pageResult, nil
}

// Detail fetches the full record for one item. Details are never cached;
// every call hits the remote service.
func (c *Client) Detail(ctx context.Context, imdbID string) (*domain.MovieDetail, error) {
	resp, err := c.cb.Execute(func() (*resty.Response, error) {
		var result detailEnvelope
		r, err := c.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"i":    imdbID,
				"plot": "short",
			}).
			SetResult(&result).
			Get("/")
		if err != nil {
			return nil, err
		}
		if r.IsError() {
			return nil, &domain.RequestError{Status: r.StatusCode()}
		}

		return r, nil
	})
	if err != nil {
		return nil, c.wrapError(err, "detail", zap.String("imdb_id", imdbID))
	}

	result := resp.Result().(*detailEnvelope)
	if result.Response != "True" {
		c.logger.Debug("omdb detail not found",
			zap.String("imdb_id", imdbID),
			zap.String("error", result.Error),
		)

		return nil, domain.ErrNotFound
	}

	return result.toDomain(), nil
}

// HealthCheck verifies the provider is accessible. The endpoint answers
// parameterless requests with a 200 error envelope, which is good enough to
// prove reachability.
func (c *Client) HealthCheck(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return &domain.RequestError{Status: resp.StatusCode()}
	}

	return nil
}

// wrapError maps transport-level failures into domain errors. Context
// cancellation becomes ErrSuperseded and is logged at debug only; everything
// else is a RequestError logged once here.
func (c *Client) wrapError(err error, op string, fields ...zap.Field) error {
	if errors.Is(err, context.Canceled) {
		c.logger.Debug("omdb "+op+" superseded", fields...)

		return domain.ErrSuperseded
	}

	var reqErr *domain.RequestError
	if !errors.As(err, &reqErr) {
		reqErr = &domain.RequestError{Err: err}
	}

	c.logger.Warn("omdb "+op+" failed",
		append(fields, zap.Error(err), zap.String("breaker", c.cb.State().String()))...,
	)

	return reqErr
}
