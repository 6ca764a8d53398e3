// Package pg bootstraps the PostgreSQL layer behind
// authority.PostgresStorage: a pooled pgx/v5 connection with startup
// retries, goose migrations from an embedded filesystem, a health check
// closure, and error classifiers for the constraint violations the
// authority schema relies on.
//
// # Usage
//
//	import (
//	    "github.com/monamour-platform/authkit/pkg/authority"
//	    "github.com/monamour-platform/authkit/pkg/config"
//	    "github.com/monamour-platform/authkit/pkg/pg"
//	)
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pg.MigrateFS(ctx, pool, authority.Migrations, authority.MigrationsDir, cfg, slog.Default()); err != nil {
//	    log.Fatal(err)
//	}
//
//	storage := authority.NewPostgresStorage(pool)
//
// All tunables come from PG_* environment variables; see the Config field
// tags for names and defaults.
package pg
