package dto

import (
	"movie-search-service/internal/domain"
)

// MovieResponse represents a single movie summary in search results.
type MovieResponse struct {
	ImdbID string `json:"imdb_id"`
	Title  string `json:"title"`
	Year   string `json:"year,omitempty"`
	Type   string `json:"type,omitempty"`
	Poster string `json:"poster,omitempty"`
}

// FromMovieSummary converts domain.MovieSummary to MovieResponse.
// Placeholder "N/A" values from the upstream provider are dropped.
func FromMovieSummary(m domain.MovieSummary) MovieResponse {
	resp := MovieResponse{
		ImdbID: m.ImdbID,
		Title:  m.DisplayTitle(),
		Year:   m.Year,
		Type:   m.Type,
	}
	if m.HasPoster() {
		resp.Poster = m.Poster
	}
	return resp
}

// SearchResponse represents the search results response.
type SearchResponse struct {
	Movies     []MovieResponse `json:"movies"`
	Pagination PaginationMeta  `json:"pagination"`
}

// PaginationMeta holds pagination metadata.
type PaginationMeta struct {
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	HasMore bool `json:"has_more"`
}

// FromSearchPage converts a domain.SearchPage to SearchResponse.
func FromSearchPage(page *domain.SearchPage, pageNum, shown int) SearchResponse {
	movies := make([]MovieResponse, len(page.Movies))
	for i, m := range page.Movies {
		movies[i] = FromMovieSummary(m)
	}

	return SearchResponse{
		Movies: movies,
		Pagination: PaginationMeta{
			Total:   page.Total,
			Page:    pageNum,
			HasMore: shown < page.Total,
		},
	}
}

// DetailResponse represents a movie detail response.
type DetailResponse struct {
	ImdbID  string `json:"imdb_id"`
	Title   string `json:"title"`
	Year    string `json:"year,omitempty"`
	Rated   string `json:"rated,omitempty"`
	Runtime string `json:"runtime,omitempty"`
	Type    string `json:"type,omitempty"`
	Poster  string `json:"poster,omitempty"`
	Plot    string `json:"plot"`
	Meta    string `json:"meta,omitempty"`
}

// FromMovieDetail converts domain.MovieDetail to DetailResponse.
func FromMovieDetail(d *domain.MovieDetail) DetailResponse {
	return DetailResponse{
		ImdbID:  d.ImdbID,
		Title:   d.DisplayTitle(),
		Year:    d.Year,
		Rated:   d.Rated,
		Runtime: d.Runtime,
		Type:    d.Type,
		Poster:  d.Poster,
		Plot:    d.DisplayPlot(),
		Meta:    d.DisplayMeta(),
	}
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// StatsResponse represents dashboard stats.
type StatsResponse struct {
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	Errors      int64 `json:"errors"`
}
