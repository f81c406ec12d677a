package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinator_BeginSupersedesPrevious(t *testing.T) {
	c := NewCoordinator()

	ctx1, gen1 := c.Begin(context.Background())
	require.NoError(t, ctx1.Err())
	assert.True(t, c.Current(gen1))

	ctx2, gen2 := c.Begin(context.Background())

	// The older request's context is cancelled and its ticket is stale.
	assert.ErrorIs(t, ctx1.Err(), context.Canceled)
	assert.False(t, c.Current(gen1))

	assert.NoError(t, ctx2.Err())
	assert.True(t, c.Current(gen2))
}

func TestCoordinator_FinishOnlyCurrent(t *testing.T) {
	c := NewCoordinator()

	_, gen1 := c.Begin(context.Background())
	ctx2, gen2 := c.Begin(context.Background())

	// Finishing a superseded ticket must not touch the live request.
	c.Finish(gen1)
	assert.NoError(t, ctx2.Err())
	assert.True(t, c.Current(gen2))

	c.Finish(gen2)
	assert.True(t, c.Current(gen2), "finish does not invalidate the ticket")
}

func TestCoordinator_Cancel(t *testing.T) {
	c := NewCoordinator()

	ctx, gen := c.Begin(context.Background())
	c.Cancel()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.False(t, c.Current(gen))

	// Cancel with nothing outstanding is harmless.
	c.Cancel()
}

func TestCoordinator_ParentCancellationPropagates(t *testing.T) {
	c := NewCoordinator()

	parent, cancel := context.WithCancel(context.Background())
	ctx, gen := c.Begin(parent)
	cancel()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	// The ticket itself is still current: the caller, not a newer request,
	// cancelled it.
	assert.True(t, c.Current(gen))
}
