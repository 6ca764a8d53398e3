package jwt

import "time"

// Config holds signing configuration sourced from the environment. The
// signing key is required; there is no insecure default.
type Config struct {
	SigningKey string        `env:"JWT_SIGNING_KEY,required"`
	Issuer     string        `env:"JWT_ISSUER" envDefault:"authkit"`
	Audience   string        `env:"JWT_AUDIENCE" envDefault:"authkit"`
	TTL        time.Duration `env:"JWT_TTL" envDefault:"60m"`
}
