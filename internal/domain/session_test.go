package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageKey(t *testing.T) {
	assert.Equal(t, PageKey{Query: "stalker", Page: 1}, NewPageKey("  stalker ", 1))
	assert.Equal(t, PageKey{Query: "the", Page: 2}, NewPageKey("the", 2))
	// Pages below 1 are clamped.
	assert.Equal(t, PageKey{Query: "the", Page: 1}, NewPageKey("the", 0))

	// Structural equality: same normalized query and page compare equal.
	assert.Equal(t, NewPageKey("stalker", 3), NewPageKey(" stalker", 3))
	assert.NotEqual(t, NewPageKey("stalker", 1), NewPageKey("stalker", 2))
}

func TestPageKey_String(t *testing.T) {
	assert.Equal(t, "blade runner:2", NewPageKey("blade runner", 2).String())
}

func TestSessionState_AcceptTotal(t *testing.T) {
	s := NewSessionState()
	s.Shown = 10

	// Report trusted when it exceeds the rendered count.
	s.AcceptTotal(50)
	assert.Equal(t, 50, s.Total)
	assert.True(t, s.HasMore())

	// An inconsistent smaller report never reduces an accepted total.
	s.AcceptTotal(30)
	assert.Equal(t, 50, s.Total)

	// A report below the rendered count is clamped to what is on screen.
	fresh := NewSessionState()
	fresh.Shown = 7
	fresh.AcceptTotal(3)
	assert.Equal(t, 7, fresh.Total)
	assert.False(t, fresh.HasMore())
}

func TestSessionState_Reset(t *testing.T) {
	s := NewSessionState()
	s.Query = "the"
	s.Page = 3
	s.Total = 50
	s.Shown = 30
	s.Mode = RenderAppend

	s.Reset()

	assert.Equal(t, "", s.Query)
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.Shown)
	assert.Equal(t, RenderReplace, s.Mode)
	assert.False(t, s.HasMore())
}

func TestRenderMode_String(t *testing.T) {
	assert.Equal(t, "replace", RenderReplace.String())
	assert.Equal(t, "append", RenderAppend.String())
}
