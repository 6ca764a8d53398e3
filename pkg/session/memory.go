package session

import (
	"context"
	"sync"
	"time"
)

// memorySession holds one session's keys plus its absolute expiry.
type memorySession struct {
	values    map[string]string
	expiresAt time.Time
}

// MemoryBackend implements Backend with in-process storage. Sessions carry
// an absolute expiry from first write, mirroring a provider-managed
// timeout; a background loop reaps expired sessions.
type MemoryBackend struct {
	mu       sync.RWMutex
	sessions map[string]*memorySession
	ttl      time.Duration
	ticker   *time.Ticker
	done     chan struct{}
}

// NewMemoryBackend creates an in-memory session backend. Sessions expire
// ttl after creation; cleanupInterval of zero disables the reaper.
func NewMemoryBackend(ttl, cleanupInterval time.Duration) *MemoryBackend {
	b := &MemoryBackend{
		sessions: make(map[string]*memorySession),
		ttl:      ttl,
		done:     make(chan struct{}),
	}

	if cleanupInterval > 0 {
		b.ticker = time.NewTicker(cleanupInterval)
		go b.cleanupLoop()
	}

	return b
}

// Get returns the value stored under key for the session.
func (b *MemoryBackend) Get(ctx context.Context, sessionID, key string) (string, error) {
	b.mu.RLock()
	sess, exists := b.sessions[sessionID]
	b.mu.RUnlock()

	if !exists {
		return "", ErrKeyNotFound
	}

	if time.Now().After(sess.expiresAt) {
		b.mu.Lock()
		delete(b.sessions, sessionID)
		b.mu.Unlock()
		return "", ErrKeyNotFound
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := sess.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set stores a value, creating the session with its absolute expiry on
// first write.
func (b *MemoryBackend) Set(ctx context.Context, sessionID, key, value string) error {
	if sessionID == "" {
		return ErrInvalidSessionID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sess, exists := b.sessions[sessionID]
	if !exists || time.Now().After(sess.expiresAt) {
		sess = &memorySession{
			values:    make(map[string]string),
			expiresAt: time.Now().Add(b.ttl),
		}
		b.sessions[sessionID] = sess
	}

	sess.values[key] = value
	return nil
}

// Delete removes a single key from the session.
func (b *MemoryBackend) Delete(ctx context.Context, sessionID, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if sess, exists := b.sessions[sessionID]; exists {
		delete(sess.values, key)
	}
	return nil
}

// Clear removes the session and all of its keys.
func (b *MemoryBackend) Clear(ctx context.Context, sessionID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.sessions, sessionID)
	return nil
}

// DeleteExpired removes all expired sessions.
func (b *MemoryBackend) DeleteExpired(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	for id, sess := range b.sessions {
		if now.After(sess.expiresAt) {
			delete(b.sessions, id)
		}
	}
	return nil
}

// Len returns the number of live sessions.
func (b *MemoryBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.sessions)
}

// Close stops the cleanup goroutine.
func (b *MemoryBackend) Close() error {
	if b.ticker != nil {
		b.ticker.Stop()
		close(b.done)
	}
	return nil
}

func (b *MemoryBackend) cleanupLoop() {
	for {
		select {
		case <-b.ticker.C:
			_ = b.DeleteExpired(context.Background())
		case <-b.done:
			return
		}
	}
}
