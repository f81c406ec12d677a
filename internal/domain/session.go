package domain

import "fmt"

// RenderMode selects whether newly fetched items overwrite or extend the
// currently displayed list.
type RenderMode int

const (
	RenderReplace RenderMode = iota
	RenderAppend
)

// String implements fmt.Stringer for log output.
func (m RenderMode) String() string {
	if m == RenderAppend {
		return "append"
	}
	return "replace"
}

// PageKey identifies one cached page of results. Equality is structural, so it
// can be used directly as a map key. Query must be normalized before building
// the key; use NewPageKey.
type PageKey struct {
	Query string
	Page  int
}

// NewPageKey builds a cache key from a raw query and a 1-indexed page number.
func NewPageKey(query string, page int) PageKey {
	if page < 1 {
		page = 1
	}
	return PageKey{Query: NormalizeQuery(query), Page: page}
}

// String renders the key in "query:page" form, used for byte-cache namespacing
// and logs.
func (k PageKey) String() string {
	return fmt.Sprintf("%s:%d", k.Query, k.Page)
}

// SessionState tracks pagination state for one search session. It is created
// once (empty query, page 1, zero total) and mutated in place by the session
// controller for the life of the session. Mutation is the controller's
// exclusive responsibility.
type SessionState struct {
	// Query is the last committed query. Pagination is always driven by this
	// value, never by uncommitted input.
	Query string

	// Page is the current 1-indexed page. It only advances via an explicit
	// load-more action; the committed-input path always resets it to 1.
	Page int

	// Total is the total result count as last trusted from the remote
	// service. Zero means unknown or no results.
	Total int

	// Shown is the number of items currently rendered, computed by the
	// controller itself (the view is never read back).
	Shown int

	// Mode records whether the last render replaced or appended.
	Mode RenderMode
}

// NewSessionState returns the initial state for a fresh session.
func NewSessionState() *SessionState {
	return &SessionState{Page: 1}
}

// Reset returns the state to its startup values.
func (s *SessionState) Reset() {
	s.Query = ""
	s.Page = 1
	s.Total = 0
	s.Shown = 0
	s.Mode = RenderReplace
}

// AcceptTotal folds a newly reported total into the session. The rendered
// count wins when the reported total is smaller than what is already on
// screen, and a previously accepted larger total is never reduced while the
// query is unchanged (upstream metadata is informational only).
func (s *SessionState) AcceptTotal(reported int) {
	if reported < s.Shown {
		reported = s.Shown
	}
	if reported > s.Total {
		s.Total = reported
	}
}

// HasMore reports whether more results are available beyond those shown.
func (s *SessionState) HasMore() bool {
	return s.Shown < s.Total
}
