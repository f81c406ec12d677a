package domain

import (
	"errors"
	"fmt"
)

// ErrQueryTooShort signals input below the search threshold. It is a UX gate,
// not a failure: callers surface the prompt message and never log it.
var ErrQueryTooShort = errors.New("query too short")

// ErrSuperseded signals that a newer request of the same class replaced this
// one while it was in flight. It is expected and silent: no user-visible
// message, no error log.
var ErrSuperseded = errors.New("request superseded")

// ErrNotFound signals that the remote service has no record for the requested
// identifier.
var ErrNotFound = errors.New("not found")

// RequestError is a remote fetch failure: a non-success HTTP status or a
// transport error. It is logged once and surfaced to the user as a single
// generic message.
type RequestError struct {
	Status int   // HTTP status code, 0 for transport failures
	Err    error // underlying cause, nil for bare status errors
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("remote request failed with status %d", e.Status)
	}
	return fmt.Sprintf("remote request failed: %v", e.Err)
}

// Unwrap exposes the underlying transport error, if any.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsSuperseded reports whether err represents a deliberate supersession rather
// than a failure.
func IsSuperseded(err error) bool {
	return errors.Is(err, ErrSuperseded)
}
