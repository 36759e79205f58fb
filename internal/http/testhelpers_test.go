package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/bookshelf-web/internal/mocks"
	mockauth "github.com/target/bookshelf-web/internal/mocks/auth"
	"github.com/target/bookshelf-web/internal/service"
	"github.com/target/bookshelf-web/internal/testutil"
)

// testApp is the full router over mocked backends and in-memory stores.
type testApp struct {
	handler  http.Handler
	auth     *mocks.MockAuthBackend
	catalog  *mocks.MockCatalogBackend
	borrows  *mocks.MockBorrowBackend
	orders   *mocks.MockOrderBackend
	sessions *mockauth.MemorySessionStore
	prefs    *mockauth.MemoryPreferenceStore
}

type testAppOptions struct {
	Health Pinger
}

func newTestApp(t *testing.T, opts ...testAppOptions) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)
	app := &testApp{
		auth:     mocks.NewMockAuthBackend(ctrl),
		catalog:  mocks.NewMockCatalogBackend(ctrl),
		borrows:  mocks.NewMockBorrowBackend(ctrl),
		orders:   mocks.NewMockOrderBackend(ctrl),
		sessions: mockauth.NewMemorySessionStore(),
		prefs:    mockauth.NewMemoryPreferenceStore(),
	}
	var o testAppOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	h, err := NewRouter(RouterServices{
		Auth:    service.NewAuthService(service.AuthServiceOptions{Backend: app.auth, Sessions: app.sessions}),
		Catalog: service.NewCatalogService(service.CatalogServiceOptions{Backend: app.catalog}),
		Borrows: service.NewBorrowService(service.BorrowServiceOptions{Backend: app.borrows}),
		Orders:  service.NewOrderService(service.OrderServiceOptions{Backend: app.orders}),
		Theme:   service.NewThemeService(service.ThemeServiceOptions{Preferences: app.prefs}),
		Health:  o.Health,
	})
	require.NoError(t, err)
	app.handler = h
	return app
}

// signIn stores a live session and returns its cookie.
func (a *testApp) signIn(t *testing.T) *http.Cookie {
	t.Helper()
	sess := testutil.NewSession().WithID("sid-1").Build()
	require.NoError(t, a.sessions.Save(context.Background(), sess))
	return &http.Cookie{Name: SessionCookieName, Value: sess.ID}
}

type testRequest struct {
	Method  string
	Path    string
	Body    any
	Cookies []*http.Cookie
	Headers map[string]string
}

func (a *testApp) do(t *testing.T, tr testRequest) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if tr.Body != nil {
		b, err := json.Marshal(tr.Body)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	method := tr.Method
	if method == "" {
		method = http.MethodGet
	}
	req := httptest.NewRequest(method, tr.Path, body)
	if tr.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range tr.Headers {
		req.Header.Set(k, v)
	}
	for _, c := range tr.Cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
