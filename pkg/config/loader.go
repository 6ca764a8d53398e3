package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.RWMutex
	values = make(map[string]any)

	defaultEnvLoaded sync.Once
)

// LoadEnv loads one or more .env files into the process environment before
// config parsing. Later files take precedence over earlier ones.
func LoadEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Overload(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

// Load parses environment variables into the provided configuration struct
// based on its `env` field tags. Each unique struct type is parsed once per
// process; later calls return the cached value, so config stays consistent
// across packages that share a type.
//
// The default .env file, if present, is loaded before the first parse.
//
// Example:
//
//	type SessionConfig struct {
//	    ProviderTimeout time.Duration `env:"SESSION_PROVIDER_TIMEOUT" envDefault:"30m"`
//	}
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	typeName := getTypeName[T]()

	mu.RLock()
	cached, ok := values[typeName]
	mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	mu.Lock()
	defer mu.Unlock()

	// Another goroutine may have raced us here; keep the first parse so all
	// callers observe the same value.
	if cached, ok := values[typeName]; ok {
		*v = cached.(T)
		return nil
	}
	values[typeName] = *v
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Useful for configuration required at startup.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ResetCache clears cached configuration values. Intended for tests.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	values = make(map[string]any)
}

// getTypeName returns a string identifier for the generic type T.
func getTypeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
