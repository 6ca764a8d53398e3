package session

import "errors"

var (
	// ErrKeyNotFound indicates the session or the requested key is absent.
	ErrKeyNotFound = errors.New("session.key_not_found")

	// ErrInvalidSessionID indicates an empty session id was supplied.
	ErrInvalidSessionID = errors.New("session.invalid_session_id")
)
