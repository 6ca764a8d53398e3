// Package config loads environment-driven configuration structs for the
// authkit packages.
//
// Structs declare their variables with `env` tags (github.com/caarlos0/env)
// and are parsed once per type per process, with results cached so every
// package sharing a config type observes the same values. An optional .env
// file (github.com/joho/godotenv) is loaded before the first parse;
// additional files can be layered explicitly with LoadEnv.
//
// # Usage
//
//	import "github.com/monamour-platform/authkit/pkg/config"
//
//	var sessionCfg session.Config
//	config.MustLoad(&sessionCfg)
//
//	var jwtCfg jwt.Config
//	if err := config.Load(&jwtCfg); err != nil {
//	    // JWT_SIGNING_KEY is required; fail the boot
//	}
package config
