package httpx

import (
	"context"

	domainauth "github.com/target/bookshelf-web/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
type sessionKey struct{}

// clientIDKey carries the browser id used to own anonymous preferences.
type clientIDKey struct{}

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetUserSessionFromContext returns the user session from context and a boolean indicating presence.
func GetUserSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}

// GetSessionFromContext retrieves the session from the request context.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if s, ok := GetUserSessionFromContext(ctx); ok {
		return s
	}
	return nil
}

// SetClientIDInContext stores the browser id.
func SetClientIDInContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientIDKey{}, id)
}

// ClientIDFromContext returns the browser id set by the ClientID middleware.
func ClientIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(clientIDKey{}).(string)
	return id
}

// PreferenceOwner returns the key theme preferences are stored under: the
// signed-in user when there is one, otherwise the browser.
func PreferenceOwner(ctx context.Context) string {
	if s, ok := GetUserSessionFromContext(ctx); ok && s.UserID > 0 {
		return "user:" + formatInt(s.UserID)
	}
	if id := ClientIDFromContext(ctx); id != "" {
		return "client:" + id
	}
	return ""
}
