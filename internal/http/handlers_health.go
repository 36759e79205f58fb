package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	healthResponse   = `{"status":"ok"}`
	degradedResponse = `{"status":"degraded"}`
	healthTimeout    = 2 * time.Second
)

// Pinger checks a dependency's reachability.
type Pinger func(ctx context.Context) error

// healthHandler reports readiness. With a Pinger it answers 503 when the
// session store is unreachable.
func healthHandler(ping Pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, body := http.StatusOK, healthResponse
		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := ping(ctx); err != nil {
				if logger != nil {
					logger.WarnContext(ctx, "health check failed", slog.Any("error", err))
				}
				code, body = http.StatusServiceUnavailable, degradedResponse
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		if r.Method == http.MethodHead {
			return
		}
		if _, err := io.WriteString(w, body); err != nil {
			// Nothing more to do if the client connection is gone.
			return
		}
	}
}
