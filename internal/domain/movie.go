// Package domain contains the core entities and business rules of the
// movie search system. This package has no external dependencies (only stdlib).
package domain

import "strings"

// NotAvailable is the sentinel the remote service uses for missing fields
// (posters, plots, ratings).
const NotAvailable = "N/A"

// MinQueryLength is the minimum trimmed query length that triggers a search.
// Shorter input is a UX gate, not a failure.
const MinQueryLength = 3

// PageSize is the fixed number of results per page served by the remote
// service. It is not negotiable on the wire.
const PageSize = 10

// MovieSummary is a single search result item. ImdbID is the opaque stable
// identifier used to fetch details; all other fields are display metadata.
type MovieSummary struct {
	ImdbID string `json:"imdb_id"`
	Title  string `json:"title"`
	Year   string `json:"year,omitempty"`
	Type   string `json:"type,omitempty"`
	Poster string `json:"poster,omitempty"`
}

// DisplayTitle returns the title, falling back to "Untitled" when the remote
// service sent an empty one.
func (m *MovieSummary) DisplayTitle() string {
	if m.Title == "" {
		return "Untitled"
	}
	return m.Title
}

// DisplayType returns the media type normalized to uppercase for display.
func (m *MovieSummary) DisplayType() string {
	return strings.ToUpper(m.Type)
}

// HasPoster reports whether the item carries a usable poster reference.
func (m *MovieSummary) HasPoster() bool {
	return m.Poster != "" && m.Poster != NotAvailable
}

// MovieDetail is the full record shown in the detail modal. It is always
// fetched live, never cached.
type MovieDetail struct {
	ImdbID  string `json:"imdb_id"`
	Title   string `json:"title"`
	Year    string `json:"year,omitempty"`
	Rated   string `json:"rated,omitempty"`
	Runtime string `json:"runtime,omitempty"`
	Type    string `json:"type,omitempty"`
	Poster  string `json:"poster,omitempty"`
	Plot    string `json:"plot,omitempty"`
}

// DisplayTitle returns the title, falling back to "Untitled".
func (d *MovieDetail) DisplayTitle() string {
	if d.Title == "" {
		return "Untitled"
	}
	return d.Title
}

// DisplayPlot returns the plot summary, or a fallback when the remote service
// reported none.
func (d *MovieDetail) DisplayPlot() string {
	if d.Plot == "" || d.Plot == NotAvailable {
		return "No plot available."
	}
	return d.Plot
}

// DisplayMeta joins the non-empty metadata fields into a single display line,
// e.g. "2010 · PG-13 · 148 min · MOVIE".
func (d *MovieDetail) DisplayMeta() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{d.Year, d.Rated, d.Runtime, strings.ToUpper(d.Type)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " · ")
}

// SearchPage is one page of search results together with the total the remote
// service reported for the whole query. The total is a session-wide
// approximation, not per-page metadata.
type SearchPage struct {
	Movies []MovieSummary `json:"movies"`
	Total  int            `json:"total"`
}

// NormalizeQuery trims surrounding whitespace. Case is preserved and passed
// verbatim to the remote service.
func NormalizeQuery(q string) string {
	return strings.TrimSpace(q)
}

// QueryTooShort reports whether the query falls below the search threshold
// after normalization. Whitespace-only input counts as too short.
func QueryTooShort(q string) bool {
	return len(NormalizeQuery(q)) < MinQueryLength
}
