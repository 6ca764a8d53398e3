package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend implements Backend on a Redis hash per session. The hash key
// receives its TTL on first write only, so expiry stays absolute from
// session creation regardless of later activity.
type RedisBackend struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// RedisOption configures a RedisBackend.
type RedisOption func(*RedisBackend)

// WithKeyPrefix overrides the Redis key prefix (default: "session:").
func WithKeyPrefix(prefix string) RedisOption {
	return func(b *RedisBackend) {
		b.prefix = prefix
	}
}

// NewRedisBackend creates a Redis-backed session backend. Sessions expire
// ttl after creation.
func NewRedisBackend(client *redis.Client, ttl time.Duration, opts ...RedisOption) *RedisBackend {
	b := &RedisBackend{
		client: client,
		ttl:    ttl,
		prefix: "session:",
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

func (b *RedisBackend) key(sessionID string) string {
	return b.prefix + sessionID
}

// Get returns the value stored under key for the session.
func (b *RedisBackend) Get(ctx context.Context, sessionID, key string) (string, error) {
	value, err := b.client.HGet(ctx, b.key(sessionID), key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

// Set stores a value, arming the absolute expiry on the session's first
// write.
func (b *RedisBackend) Set(ctx context.Context, sessionID, key, value string) error {
	if sessionID == "" {
		return ErrInvalidSessionID
	}

	k := b.key(sessionID)
	if err := b.client.HSet(ctx, k, key, value).Err(); err != nil {
		return err
	}

	// NX: only arm a TTL when the key has none, keeping expiry absolute.
	return b.client.ExpireNX(ctx, k, b.ttl).Err()
}

// Delete removes a single key from the session.
func (b *RedisBackend) Delete(ctx context.Context, sessionID, key string) error {
	return b.client.HDel(ctx, b.key(sessionID), key).Err()
}

// Clear removes the session and all of its keys.
func (b *RedisBackend) Clear(ctx context.Context, sessionID string) error {
	return b.client.Del(ctx, b.key(sessionID)).Err()
}
