package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-search-service/internal/domain"
)

// TestFromMovieSummary tests domain-to-response conversion.
func TestFromMovieSummary(t *testing.T) {
	tests := []struct {
		name     string
		movie    domain.MovieSummary
		expected MovieResponse
	}{
		{
			name: "full summary",
			movie: domain.MovieSummary{
				ImdbID: "tt0114814",
				Title:  "The Usual Suspects",
				Year:   "1995",
				Type:   "movie",
				Poster: "https://example.com/poster.jpg",
			},
			expected: MovieResponse{
				ImdbID: "tt0114814",
				Title:  "The Usual Suspects",
				Year:   "1995",
				Type:   "movie",
				Poster: "https://example.com/poster.jpg",
			},
		},
		{
			name: "placeholder poster dropped",
			movie: domain.MovieSummary{
				ImdbID: "tt0114814",
				Title:  "The Usual Suspects",
				Poster: "N/A",
			},
			expected: MovieResponse{
				ImdbID: "tt0114814",
				Title:  "The Usual Suspects",
			},
		},
		{
			name:  "empty title replaced",
			movie: domain.MovieSummary{ImdbID: "tt0000001"},
			expected: MovieResponse{
				ImdbID: "tt0000001",
				Title:  "Untitled",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromMovieSummary(tt.movie))
		})
	}
}

// TestFromSearchPage tests pagination metadata.
func TestFromSearchPage(t *testing.T) {
	page := &domain.SearchPage{
		Movies: []domain.MovieSummary{
			{ImdbID: "tt0000001", Title: "One"},
			{ImdbID: "tt0000002", Title: "Two"},
		},
		Total: 25,
	}

	resp := FromSearchPage(page, 2, 12)

	require.Len(t, resp.Movies, 2)
	assert.Equal(t, 25, resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.True(t, resp.Pagination.HasMore)

	last := FromSearchPage(&domain.SearchPage{Movies: page.Movies, Total: 12}, 2, 12)
	assert.False(t, last.Pagination.HasMore)
}

// TestFromMovieDetail tests detail conversion including display fallbacks.
func TestFromMovieDetail(t *testing.T) {
	detail := &domain.MovieDetail{
		ImdbID:  "tt1375666",
		Title:   "Inception",
		Year:    "2010",
		Rated:   "PG-13",
		Runtime: "148 min",
		Type:    "movie",
		Plot:    "A thief who steals corporate secrets.",
	}

	resp := FromMovieDetail(detail)
	assert.Equal(t, "Inception", resp.Title)
	assert.Equal(t, "A thief who steals corporate secrets.", resp.Plot)
	assert.Equal(t, "2010 · PG-13 · 148 min · MOVIE", resp.Meta)

	bare := FromMovieDetail(&domain.MovieDetail{ImdbID: "tt0000001", Plot: "N/A"})
	assert.Equal(t, "Untitled", bare.Title)
	assert.Equal(t, "No plot available.", bare.Plot)
}
