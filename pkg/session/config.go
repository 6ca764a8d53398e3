package session

import "time"

// Config holds session policy configuration.
type Config struct {
	// ProviderTimeout mirrors the absolute session timeout enforced by the
	// session transport (default: 30m). The store never enforces it; it is
	// used to derive the expiry warning threshold.
	ProviderTimeout time.Duration `env:"SESSION_PROVIDER_TIMEOUT" envDefault:"30m"`

	// ExpiryWarnWindow is how long before the provider timeout IsExpiring
	// starts reporting true (default: 5m, i.e. after 25m of inactivity).
	ExpiryWarnWindow time.Duration `env:"SESSION_EXPIRY_WARN_WINDOW" envDefault:"5m"`

	// AdminRoute is the landing route for principals holding the admin role.
	AdminRoute string `env:"SESSION_ADMIN_ROUTE" envDefault:"/admin"`

	// UserRoute is the landing route for principals holding the user role.
	UserRoute string `env:"SESSION_USER_ROUTE" envDefault:"/account"`

	// FallbackRoute is the landing route for principals with neither
	// reserved role.
	FallbackRoute string `env:"SESSION_FALLBACK_ROUTE" envDefault:"/"`
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{
		ProviderTimeout:  30 * time.Minute,
		ExpiryWarnWindow: 5 * time.Minute,
		AdminRoute:       "/admin",
		UserRoute:        "/account",
		FallbackRoute:    "/",
	}
}

// warnAfter returns the idle duration after which IsExpiring reports true.
func (c Config) warnAfter() time.Duration {
	return c.ProviderTimeout - c.ExpiryWarnWindow
}
