package omdb

import (
	"strconv"

	"movie-search-service/internal/domain"
)

// searchEnvelope is the JSON response of the search endpoint
// (GET ?apikey=...&s=<query>&page=<n>).
type searchEnvelope struct {
	Response     string       `json:"Response"`
	Search       []searchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Error        string       `json:"Error"`
}

// searchItem is a single item of the Search array.
type searchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// toDomain converts a searchItem to the domain summary.
func (i *searchItem) toDomain() domain.MovieSummary {
	return domain.MovieSummary{
		ImdbID: i.ImdbID,
		Title:  i.Title,
		Year:   i.Year,
		Type:   i.Type,
		Poster: i.Poster,
	}
}

// toDomain converts a full envelope to a domain page. A non-"True" Response or
// a missing Search array is zero results, not an error. The reported total is
// parsed leniently, falling back to the item count on absent or malformed
// metadata.
func (e *searchEnvelope) toDomain() *domain.SearchPage {
	if e.Response != "True" || len(e.Search) == 0 {
		return &domain.SearchPage{Movies: []domain.MovieSummary{}}
	}

	movies := make([]domain.MovieSummary, 0, len(e.Search))
	for _, item := range e.Search {
		movies = append(movies, item.toDomain())
	}

	total, err := strconv.Atoi(e.TotalResults)
	if err != nil || total < len(movies) {
		total = len(movies)
	}

	return &domain.SearchPage{Movies: movies, Total: total}
}

// detailEnvelope is the JSON response of the detail endpoint
// (GET ?apikey=...&i=<id>&plot=short).
type detailEnvelope struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Rated    string `json:"Rated"`
	Runtime  string `json:"Runtime"`
	Type     string `json:"Type"`
	Poster   string `json:"Poster"`
	Plot     string `json:"Plot"`
	ImdbID   string `json:"imdbID"`
}

// toDomain converts a detailEnvelope to the domain record.
func (e *detailEnvelope) toDomain() *domain.MovieDetail {
	return &domain.MovieDetail{
		ImdbID:  e.ImdbID,
		Title:   e.Title,
		Year:    e.Year,
		Rated:   e.Rated,
		Runtime: e.Runtime,
		Type:    e.Type,
		Poster:  e.Poster,
		Plot:    e.Plot,
	}
}
