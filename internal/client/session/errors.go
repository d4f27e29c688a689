package session

import "errors"

var (
	// ErrNotAuthenticated is returned by operations that need a session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrMalformedResponse is returned when an auth response lacks the token
	// or the user.
	ErrMalformedResponse = errors.New("malformed auth response")
)
