package config

import (
	"strings"
	"time"
)

// BackendConfig describes the bookstore backend every API call goes to.
type BackendConfig struct {
	// URL is the API base, e.g. "http://localhost:8081/api".
	URL string `env:"URL" envDefault:"http://localhost:8081"`

	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// TokenHeader carries the reader's token on authenticated calls.
	TokenHeader string `env:"TOKEN_HEADER" envDefault:"authentication"`
	// TokenScheme is prefixed to the token ("Bearer"); empty sends it raw.
	TokenScheme string `env:"TOKEN_SCHEME" envDefault:""`

	// SuccessCode is the envelope code the backend uses for success.
	SuccessCode int `env:"SUCCESS_CODE" envDefault:"1"`

	// RetryLimit is the number of extra attempts for idempotent reads.
	RetryLimit int `env:"RETRY_LIMIT" envDefault:"1"`
}

const maxBackendRetries = 5

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	b.URL = strings.TrimRight(strings.TrimSpace(b.URL), "/")
	if b.Timeout <= 0 {
		b.Timeout = 10 * time.Second
	}
	if strings.TrimSpace(b.TokenHeader) == "" {
		b.TokenHeader = "authentication"
	}
	if b.RetryLimit < 0 {
		b.RetryLimit = 0
	}
	if b.RetryLimit > maxBackendRetries {
		b.RetryLimit = maxBackendRetries
	}
}
