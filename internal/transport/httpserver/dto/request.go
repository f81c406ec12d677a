// Package dto provides Data Transfer Objects for HTTP requests and responses.
package dto

// SearchRequest represents the query parameters for searching movies.
type SearchRequest struct {
	Query string `query:"q" json:"q" validate:"required,max=200"`
	Page  int    `query:"page" json:"page" validate:"omitempty,min=1,max=100"`
}

// PageOrDefault returns the requested page, defaulting to the first.
func (r *SearchRequest) PageOrDefault() int {
	if r.Page < 1 {
		return 1
	}
	return r.Page
}

// DetailRequest represents the path parameters for a movie detail lookup.
type DetailRequest struct {
	ID string `json:"id" validate:"required,imdbid"`
}
