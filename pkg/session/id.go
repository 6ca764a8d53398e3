package session

import "github.com/google/uuid"

// NewSessionID returns a fresh session identifier. The transport layer
// normally mints ids itself; this helper exists for transports that do
// not, and for tests.
func NewSessionID() string {
	return uuid.NewString()
}
