package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - backend.go: Bookstore backend client configuration
//   - redis.go: Session and preference store configuration
//   - http.go: HTTP server and session cookie configuration
type AppConfig struct {
	// IsDev controls development mode behavior.
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// StrictRoutes makes navigation to an unregistered route name panic.
	// Always on in development mode.
	StrictRoutes bool `env:"ROUTES_STRICT" envDefault:"false"`

	HTTP    HTTPConfig
	Session SessionConfig `envPrefix:"SESSION_"`
	Backend BackendConfig `envPrefix:"BACKEND_"`
	Redis   RedisConfig   `envPrefix:"REDIS_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Session.Sanitize()
	c.Backend.Sanitize()
	c.Redis.Sanitize()

	c.detectDevMode()
}

// Strict reports whether the route guard runs in strict mode.
func (c *AppConfig) Strict() bool {
	return c.StrictRoutes || c.IsDev
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
