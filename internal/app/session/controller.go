package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"movie-search-service/internal/domain"
)

// Phase is the controller's position in its lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSearching
	PhaseError
	PhaseLoadedEmpty
	PhaseLoadedPartial
	PhaseLoadedComplete
)

// String implements fmt.Stringer for log output.
func (p Phase) String() string {
	switch p {
	case PhaseSearching:
		return "searching"
	case PhaseError:
		return "error"
	case PhaseLoadedEmpty:
		return "loaded_empty"
	case PhaseLoadedPartial:
		return "loaded_partial"
	case PhaseLoadedComplete:
		return "loaded_complete"
	default:
		return "idle"
	}
}

// Controller reconciles committed queries, in-flight fetches, pagination state
// and the page cache into a single consistent view. It is the only mutator of
// its SessionState and cache; all view writes happen under its lock, so a
// superseded fetch can never interleave a render with a newer one.
//
// Construct one Controller per independent search widget; each carries its own
// state and coordinators.
type Controller struct {
	state    *domain.SessionState
	phase    Phase
	cache    domain.ResultCache
	provider domain.SearchProvider
	details  domain.DetailProvider
	view     domain.View
	logger   *zap.Logger
	searches *Coordinator
	lookups  *Coordinator

	// mu serializes state and view mutation. It is never held across a fetch;
	// supersession checks happen under it so a stale fetch cannot interleave
	// with a newer render.
	mu sync.Mutex
}

// NewController creates a Controller with fresh session state.
func NewController(
	provider domain.SearchProvider,
	details domain.DetailProvider,
	cache domain.ResultCache,
	view domain.View,
	logger *zap.Logger,
) *Controller {
	c := &Controller{
		state:    domain.NewSessionState(),
		cache:    cache,
		provider: provider,
		details:  details,
		view:     view,
		logger:   logger,
		searches: NewCoordinator(),
		lookups:  NewCoordinator(),
	}

	return c
}

// Phase returns the controller's current lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.phase
}

// Session returns a snapshot of the session state.
func (c *Controller) Session() domain.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return *c.state
}

// Search runs a committed query from the start: page 1, replace mode. Queries
// below the length threshold reset the view to the idle prompt and issue no
// fetch.
func (c *Controller) Search(ctx context.Context, rawQuery string) error {
	query := domain.NormalizeQuery(rawQuery)

	if domain.QueryTooShort(query) {
		c.mu.Lock()
		defer c.mu.Unlock()

		// An in-flight fetch must not resolve into the cleared view.
		c.searches.Cancel()
		c.state.Reset()
		c.view.RenderResults(nil, domain.RenderReplace)
		c.view.SetPaginationControlVisible(false)
		c.view.SetStatusMessage(domain.StatusPromptMinQuery)
		c.view.SetBusy(false)
		c.phase = PhaseIdle

		return nil
	}

	return c.run(ctx, query, 1, domain.RenderReplace)
}

// LoadMore fetches the next page for the last committed query in append mode.
// It is driven by committed state, never by live input, so pagination stays
// query-stable even while the user types. Without a committed query it is a
// no-op.
func (c *Controller) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	query := c.state.Query
	page := c.state.Page + 1
	c.mu.Unlock()

	if domain.QueryTooShort(query) {
		return nil
	}

	return c.run(ctx, query, page, domain.RenderAppend)
}

// Clear resets the session to its startup state: empty results, zero total,
// no status line, any in-flight fetches superseded.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.searches.Cancel()
	c.lookups.Cancel()
	c.state.Reset()
	c.view.RenderResults(nil, domain.RenderReplace)
	c.view.SetPaginationControlVisible(false)
	c.view.SetStatusMessage("")
	c.view.SetBusy(false)
	c.phase = PhaseIdle
}

// ShowDetail fetches the full record for one result item and raises the
// detail modal. Details are never cached; a lookup superseded by a newer one
// (navigation away) never resolves into a stale modal.
func (c *Controller) ShowDetail(ctx context.Context, imdbID string) error {
	c.mu.Lock()
	c.view.SetStatusMessage(domain.StatusLoadingDetails)
	runCtx, gen := c.lookups.Begin(ctx)
	c.mu.Unlock()

	detail, err := c.details.Detail(runCtx, imdbID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lookups.Current(gen) {
		return domain.ErrSuperseded
	}
	c.lookups.Finish(gen)

	switch {
	case err == nil:
		c.view.ShowDetailModal(detail)
		c.view.SetStatusMessage("")

		return nil
	case domain.IsSuperseded(err):
		// Caller-side cancellation: the ticket is still current, so no newer
		// lookup will replace the loading status.
		c.view.SetStatusMessage("")

		return err
	case errors.Is(err, domain.ErrNotFound):
		c.view.SetStatusMessage(domain.StatusDetailsMissing)

		return err
	default:
		c.logger.Warn("detail fetch failed",
			zap.String("imdb_id", imdbID),
			zap.Error(err),
		)
		c.view.SetStatusMessage(domain.StatusDetailsFailed)

		return err
	}
}

// run performs one orchestration step: consult the cache, else fetch under
// the search coordinator, then apply the outcome to state and view.
func (c *Controller) run(ctx context.Context, query string, page int, mode domain.RenderMode) error {
	key := domain.NewPageKey(query, page)

	c.mu.Lock()
	c.phase = PhaseSearching
	c.view.SetBusy(true)
	if mode == domain.RenderReplace {
		c.view.SetStatusMessage(domain.StatusSearching)
	} else {
		c.view.SetStatusMessage(domain.StatusLoadingMore)
	}

	if movies, ok := c.cache.Get(key); ok {
		// Hit: no network, but an older in-flight fetch must still lose to
		// this newer step.
		c.searches.Cancel()
		c.apply(query, page, mode, movies, -1)
		c.mu.Unlock()

		return nil
	}

	runCtx, gen := c.searches.Begin(ctx)
	c.mu.Unlock()

	result, err := c.provider.Search(runCtx, query, page)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.searches.Current(gen) {
		// Superseded after the transport returned: drop the outcome, the
		// newer request owns the view now.
		return domain.ErrSuperseded
	}
	c.searches.Finish(gen)

	if err != nil {
		if domain.IsSuperseded(err) {
			// The ticket passed the Current check, so this is the caller's own
			// context cancellation, not a newer request. No newer request will
			// repair the view: settle it here.
			c.settleCancelled()

			return err
		}

		c.logger.Warn("search fetch failed",
			zap.String("query", query),
			zap.Int("page", page),
			zap.Error(err),
		)
		c.phase = PhaseError
		c.view.SetStatusMessage(domain.StatusFetchFailed)
		c.view.SetBusy(false)

		return err
	}

	c.cache.Put(key, result.Movies)
	c.apply(query, page, mode, result.Movies, result.Total)

	return nil
}

// settleCancelled restores a quiet, retryable view after the caller's own
// context cancelled an in-flight fetch. Caller holds the lock. Committed
// results stay on screen; only the transient busy indicator and status line
// are settled.
func (c *Controller) settleCancelled() {
	c.view.SetBusy(false)

	if c.state.Shown > 0 {
		c.view.SetStatusMessage(domain.StatusShowing(c.state.Shown, c.state.Total, c.state.Query))
		if c.state.HasMore() {
			c.phase = PhaseLoadedPartial
		} else {
			c.phase = PhaseLoadedComplete
		}

		return
	}

	c.view.SetStatusMessage("")
	c.phase = PhaseIdle
}

// apply folds a fetched or cached page into state and view. Caller holds the
// lock. reportedTotal is -1 for cache hits: a hit carries no fresh metadata,
// so the session total is only clamped, never re-learned.
func (c *Controller) apply(query string, page int, mode domain.RenderMode, movies []domain.MovieSummary, reportedTotal int) {
	defer c.view.SetBusy(false)

	if len(movies) == 0 {
		if page == 1 {
			c.state.Query = query
			c.state.Page = 1
			c.state.Total = 0
			c.state.Shown = 0
			c.state.Mode = domain.RenderReplace
			c.view.RenderResults(nil, domain.RenderReplace)
			c.view.SetStatusMessage(domain.StatusNoResults)
			c.view.SetPaginationControlVisible(false)
			c.phase = PhaseLoadedEmpty

			return
		}

		// Past the end: existing results stay, the page pointer does not
		// advance, the pagination control goes dark.
		c.state.Total = 0
		c.view.SetStatusMessage(domain.StatusNoMoreResults)
		c.view.SetPaginationControlVisible(false)
		c.phase = PhaseLoadedComplete

		return
	}

	if query != c.state.Query {
		// A total accepted for another query is meaningless here.
		c.state.Total = 0
	}
	c.state.Query = query
	c.state.Page = page
	c.state.Mode = mode
	if mode == domain.RenderReplace {
		c.state.Shown = len(movies)
	} else {
		c.state.Shown += len(movies)
	}
	if reportedTotal >= 0 {
		c.state.AcceptTotal(reportedTotal)
	} else {
		c.state.AcceptTotal(c.state.Shown)
	}

	c.view.RenderResults(movies, mode)
	c.view.SetStatusMessage(domain.StatusShowing(c.state.Shown, c.state.Total, query))

	if c.state.HasMore() {
		c.view.SetPaginationControlVisible(true)
		c.phase = PhaseLoadedPartial
	} else {
		c.view.SetPaginationControlVisible(false)
		c.phase = PhaseLoadedComplete
	}
}
