// Package redis bootstraps the Redis client behind session.RedisBackend:
// connection with startup retries, a bounded connect phase, and a health
// check closure.
//
// # Usage
//
//	import (
//	    "github.com/monamour-platform/authkit/pkg/config"
//	    "github.com/monamour-platform/authkit/pkg/redis"
//	    "github.com/monamour-platform/authkit/pkg/session"
//	)
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	backend := session.NewRedisBackend(client, 30*time.Minute)
//
// All tunables come from REDIS_* environment variables; see the Config
// field tags for names and defaults.
package redis
