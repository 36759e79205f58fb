package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/target/bookshelf-web/internal/domain/route"
	apperrors "github.com/target/bookshelf-web/internal/errors"
	"github.com/target/bookshelf-web/internal/service"
)

const (
	// SessionCookieName carries the server-side session id.
	SessionCookieName = "session_id"
	// ClientCookieName carries the browser id that owns anonymous preferences.
	ClientCookieName = "client_id"

	clientCookieMaxAge = 365 * 24 * 60 * 60
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *respWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// ClientID ensures every browser carries a stable id cookie and puts it in the
// request context.
func ClientID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(ClientCookieName); err == nil {
				if parsed, parseErr := uuid.Parse(c.Value); parseErr == nil {
					id = parsed.String()
				}
			}
			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     ClientCookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					Secure:   isSecureRequest(r),
					SameSite: http.SameSiteLaxMode,
					MaxAge:   clientCookieMaxAge,
				})
			}
			next.ServeHTTP(w, r.WithContext(SetClientIDInContext(r.Context(), id)))
		})
	}
}

// SessionLoader resolves the session cookie. A live session is placed in the
// context together with its backend token; a dead one has its cookie cleared.
// Store failures leave the request anonymous and are decided by the guard.
func SessionLoader(auth *service.AuthService, cookieDomain string, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(SessionCookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := service.ContextWithSessionID(r.Context(), c.Value)
			session, err := auth.GetSession(ctx, c.Value)
			switch {
			case err == nil:
				ctx = SetSessionInContext(ctx, session)
				ctx = service.WithSession(ctx, session)
			case apperrors.IsNotFound(err), apperrors.IsUnauthorized(err):
				clearCookie(w, r, cookieDomain, SessionCookieName)
			default:
				logger.WarnContext(ctx, "load session",
					slog.String("cause", apperrors.Classify(err)),
					slog.Any("error", err))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestAuthState answers the guard from the session SessionLoader placed in
// the context, falling back to Fallback when none was loaded.
type RequestAuthState struct {
	Fallback route.AuthState
}

// IsAuthenticated implements route.AuthState.
func (a RequestAuthState) IsAuthenticated(ctx context.Context) (bool, error) {
	if _, ok := GetUserSessionFromContext(ctx); ok {
		return true, nil
	}
	if a.Fallback == nil {
		return false, nil
	}
	return a.Fallback.IsAuthenticated(ctx)
}

// GuardRoutes runs the route guard before every page navigation. Requests for
// paths outside the route table pass through untouched.
func GuardRoutes(g *route.Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			to, _, ok := g.Table().Match(r.URL.Path)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			d := g.Decide(r.Context(), to, refererRoute(g.Table(), r))
			if d.Allowed() {
				next.ServeHTTP(w, r)
				return
			}
			redirectToRoute(w, r, g.Table(), d.Redirect)
		})
	}
}

// RequireSession rejects API requests that carry no live session.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserSessionFromContext(r.Context()); !ok {
			WriteError(w, ErrorParams{
				Code:    http.StatusUnauthorized,
				ErrCode: "authentication_required",
				Err:     errors.New("authentication required"),
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// refererRoute names the route the navigation started from, when known.
func refererRoute(t *route.Table, r *http.Request) route.Name {
	ref := originURL(r)
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != r.Host) {
		return ""
	}
	name, _, _ := t.Match(u.Path)
	return name
}

// redirectToRoute sends the browser to target, remembering where it wanted to go.
func redirectToRoute(w http.ResponseWriter, r *http.Request, t *route.Table, target route.Name) {
	path, err := t.URL(target, nil)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	q := url.Values{}
	q.Set("redirect_uri", safeRedirectPath(r.URL.RequestURI()))
	navigate(w, r, path+"?"+q.Encode())
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	if strings.HasPrefix(candidate, "//") || strings.HasPrefix(candidate, "/\\") {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// clearCookie expires a cookie, mirroring the attributes used to set it.
func clearCookie(w http.ResponseWriter, r *http.Request, domain, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
