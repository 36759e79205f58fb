package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/bookshelf-web/internal/domain/route"
	"github.com/target/bookshelf-web/internal/testutil"
)

func guardedHandler(auth route.AuthState) http.Handler {
	g := route.NewGuard(auth, route.WithLogger(slog.New(slog.DiscardHandler)))
	return GuardRoutes(g)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestGuardRoutes(t *testing.T) {
	signedOut := route.AuthStateFunc(func(context.Context) (bool, error) { return false, nil })
	signedIn := route.AuthStateFunc(func(context.Context) (bool, error) { return true, nil })
	broken := route.AuthStateFunc(func(context.Context) (bool, error) { return false, errors.New("store down") })

	tests := []struct {
		name     string
		auth     route.AuthState
		method   string
		path     string
		htmx     bool
		wantCode int
		wantLoc  string
	}{
		{name: "exempt index", auth: signedOut, path: "/", wantCode: http.StatusOK},
		{name: "exempt login", auth: signedOut, path: "/login", wantCode: http.StatusOK},
		{name: "exempt register", auth: signedOut, path: "/register", wantCode: http.StatusOK},
		{name: "guarded redirects", auth: signedOut, path: "/borrow-cart", wantCode: http.StatusSeeOther,
			wantLoc: "/login?redirect_uri=%2Fborrow-cart"},
		{name: "keeps query", auth: signedOut, path: "/search?name=go", wantCode: http.StatusSeeOther,
			wantLoc: "/login?redirect_uri=%2Fsearch%3Fname%3Dgo"},
		{name: "param route", auth: signedOut, path: "/introduction/12", wantCode: http.StatusSeeOther,
			wantLoc: "/login?redirect_uri=%2Fintroduction%2F12"},
		{name: "signed in", auth: signedIn, path: "/order", wantCode: http.StatusOK},
		{name: "fails closed", auth: broken, path: "/profile", wantCode: http.StatusSeeOther,
			wantLoc: "/login?redirect_uri=%2Fprofile"},
		{name: "nil auth state fails closed", auth: nil, path: "/profile", wantCode: http.StatusSeeOther,
			wantLoc: "/login?redirect_uri=%2Fprofile"},
		{name: "unknown path passes", auth: signedOut, path: "/static/app.css", wantCode: http.StatusOK},
		{name: "api passes", auth: signedOut, path: "/api/home", wantCode: http.StatusOK},
		{name: "non-GET passes", auth: signedOut, method: http.MethodPost, path: "/profile", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req := httptest.NewRequest(method, tt.path, nil)
			w := httptest.NewRecorder()
			guardedHandler(tt.auth).ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantLoc, w.Header().Get("Location"))
		})
	}
}

func TestGuardRoutes_HTMX(t *testing.T) {
	signedOut := route.AuthStateFunc(func(context.Context) (bool, error) { return false, nil })
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Hx-Request", "true")
	w := httptest.NewRecorder()

	guardedHandler(signedOut).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fprofile", w.Header().Get("Hx-Redirect"))
	assert.Empty(t, w.Header().Get("Location"))
}

func TestRefererRoute(t *testing.T) {
	table := route.DefaultTable()

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Referer", "http://example.com/search?name=x")
	assert.Equal(t, route.NameSearch, refererRoute(table, req))

	req.Header.Set("Referer", "http://other.test/search")
	assert.Equal(t, route.Name(""), refererRoute(table, req))

	req.Header.Set("Hx-Request", "true")
	req.Header.Set("Hx-Current-Url", "http://example.com/order")
	assert.Equal(t, route.NameOrder, refererRoute(table, req))
}

func TestSafeRedirectPath(t *testing.T) {
	assert.Equal(t, "/", safeRedirectPath(""))
	assert.Equal(t, "/search?x=1", safeRedirectPath("/search?x=1"))
	assert.Equal(t, "/", safeRedirectPath("https://evil.test/"))
	assert.Equal(t, "/", safeRedirectPath("//evil.test/path"))
	assert.Equal(t, "/", safeRedirectPath("/\\evil.test"))
	assert.Equal(t, "/", safeRedirectPath("relative"))
}

func TestRequestAuthState(t *testing.T) {
	fallbackCalled := false
	state := RequestAuthState{Fallback: route.AuthStateFunc(func(context.Context) (bool, error) {
		fallbackCalled = true
		return false, nil
	})}

	sess := testutil.NewSession().Build()
	ok, err := state.IsAuthenticated(SetSessionInContext(context.Background(), &sess))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, fallbackCalled)

	ok, err = state.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, fallbackCalled)
}

func TestClientID(t *testing.T) {
	var seen string
	h := ClientID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = ClientIDFromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	c := findCookie(w, ClientCookieName)
	require.NotNil(t, c)
	assert.Equal(t, c.Value, seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Nil(t, findCookie(w, ClientCookieName), "existing id is reused")
	assert.Equal(t, c.Value, seen)
}

func TestRecover(t *testing.T) {
	h := Recover(slog.New(slog.DiscardHandler))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPreferenceOwner(t *testing.T) {
	ctx := SetClientIDInContext(context.Background(), "abc")
	assert.Equal(t, "client:abc", PreferenceOwner(ctx))

	sess := testutil.NewSession().Build()
	assert.Equal(t, "user:7", PreferenceOwner(SetSessionInContext(ctx, &sess)))
	assert.Empty(t, PreferenceOwner(context.Background()))
}
