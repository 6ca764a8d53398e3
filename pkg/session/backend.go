package session

import "context"

// Backend is the session-transport boundary: a string key-value store
// scoped by session id. The provider owns absolute expiry; implementations
// are expected to drop whole sessions when their lifetime elapses.
type Backend interface {
	// Get returns the value stored under key for the session.
	// Returns ErrKeyNotFound when the session or key is absent.
	Get(ctx context.Context, sessionID, key string) (string, error)

	// Set stores a value under key for the session, creating the session
	// on first write.
	Set(ctx context.Context, sessionID, key, value string) error

	// Delete removes a single key from the session. Deleting an absent key
	// is not an error.
	Delete(ctx context.Context, sessionID, key string) error

	// Clear removes the session and all of its keys.
	Clear(ctx context.Context, sessionID string) error
}
