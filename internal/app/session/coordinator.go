// Package session implements the query/cache/pagination controller for one
// search session: debounced query commits, supersession of in-flight fetches,
// an immutable page cache and the state machine driving the view.
package session

import (
	"context"
	"sync"
)

// Coordinator enforces "last request started wins" for one class of fetches.
// At most one request is live at a time; beginning a new one cancels the
// previous. Delivery of a result must be conditioned on Current: a superseded
// request's outcome, even a successful one, is never delivered.
//
// The controller keeps two instances, one for search-list fetches and one for
// detail fetches, so the two classes never cancel each other.
type Coordinator struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// NewCoordinator creates a Coordinator with no live request.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Begin supersedes any outstanding request and registers a new one. It
// returns a derived context that is cancelled when the request is superseded,
// and a generation ticket for the Current check.
func (c *Coordinator) Begin(ctx context.Context) (context.Context, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.gen++

	return runCtx, c.gen
}

// Current reports whether the ticket still denotes the live request.
func (c *Coordinator) Current(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.gen == gen
}

// Finish releases the request's resources if it is still current. Calling it
// for a superseded ticket is a no-op.
func (c *Coordinator) Finish(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen == gen && c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Cancel supersedes any outstanding request without starting a new one. An
// in-flight request observes this as a cancelled context and a failed Current
// check.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
