package redis

import "errors"

var (
	ErrFailedToParseConnString = errors.New("failed to parse redis connection string")
	ErrNotReady                = errors.New("redis did not become ready within the given time period")
	ErrEmptyConnectionURL      = errors.New("empty redis connection URL, use REDIS_URL env var")
	ErrHealthcheckFailed       = errors.New("redis healthcheck failed")
)
