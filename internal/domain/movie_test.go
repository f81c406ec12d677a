package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryTooShort(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		tooShort bool
	}{
		{"empty", "", true},
		{"whitespace only", "   \t ", true},
		{"two chars", "ab", true},
		{"two chars padded", "  ab  ", true},
		{"exactly three", "abc", false},
		{"three chars padded", "  abc ", false},
		{"long query", "stalker", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.tooShort, QueryTooShort(tt.query))
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "the matrix", NormalizeQuery("  the matrix \n"))
	// Case is preserved, delegated verbatim to the remote service.
	assert.Equal(t, "The Matrix", NormalizeQuery("The Matrix"))
}

func TestMovieSummary_DisplayHelpers(t *testing.T) {
	m := MovieSummary{ImdbID: "tt0133093", Title: "The Matrix", Year: "1999", Type: "movie", Poster: "https://img.example/poster.jpg"}
	assert.Equal(t, "The Matrix", m.DisplayTitle())
	assert.Equal(t, "MOVIE", m.DisplayType())
	assert.True(t, m.HasPoster())

	empty := MovieSummary{ImdbID: "tt0000001", Poster: NotAvailable}
	assert.Equal(t, "Untitled", empty.DisplayTitle())
	assert.Equal(t, "", empty.DisplayType())
	assert.False(t, empty.HasPoster())
}

func TestMovieDetail_DisplayMeta(t *testing.T) {
	d := MovieDetail{Title: "Inception", Year: "2010", Rated: "PG-13", Runtime: "148 min", Type: "movie"}
	assert.Equal(t, "2010 · PG-13 · 148 min · MOVIE", d.DisplayMeta())

	// Empty fields are skipped, not rendered as blank segments.
	sparse := MovieDetail{Year: "2010", Type: "movie"}
	assert.Equal(t, "2010 · MOVIE", sparse.DisplayMeta())
}

func TestMovieDetail_DisplayPlot(t *testing.T) {
	assert.Equal(t, "A thief who steals secrets.", (&MovieDetail{Plot: "A thief who steals secrets."}).DisplayPlot())
	assert.Equal(t, "No plot available.", (&MovieDetail{Plot: NotAvailable}).DisplayPlot())
	assert.Equal(t, "No plot available.", (&MovieDetail{}).DisplayPlot())
}

func TestStatusShowing(t *testing.T) {
	assert.Equal(t, `Showing 2 of 2 result(s) for "stal".`, StatusShowing(2, 2, "stal"))
	assert.Equal(t, `Showing 20 of 50 result(s) for "the".`, StatusShowing(20, 50, "the"))
}
