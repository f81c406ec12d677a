package domain

import "fmt"

// User-visible status lines. Exactly one is shown at a time; a new status
// always replaces the prior one.
const (
	StatusPromptMinQuery = "Type at least 3 characters to search."
	StatusSearching      = "Searching…"
	StatusLoadingMore    = "Loading more…"
	StatusNoResults      = "No results found."
	StatusNoMoreResults  = "No more results."
	StatusFetchFailed    = "Something went wrong fetching results. Please try again."
	StatusLoadingDetails = "Loading details…"
	StatusDetailsMissing = "Could not load details."
	StatusDetailsFailed  = "Error loading details."
)

// StatusShowing formats the result summary line, e.g.
// `Showing 2 of 2 result(s) for "stal".`
func StatusShowing(shown, total int, query string) string {
	return fmt.Sprintf("Showing %d of %d result(s) for %q.", shown, total, query)
}
