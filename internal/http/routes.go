package httpx

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	bookshelf "github.com/target/bookshelf-web"
	"github.com/target/bookshelf-web/internal/domain/route"
	"github.com/target/bookshelf-web/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Borrows *service.BorrowService
	Orders  *service.OrderService
	Theme   *service.ThemeService

	// Optional: defaults to route.DefaultTable().
	Routes *route.Table
	// Optional: defaults to a guard over Routes backed by Auth sessions.
	Guard *route.Guard
	// Optional: defaults to the embedded templates.
	Templates fs.FS
	// Optional: readiness check for /healthz.
	Health Pinger

	CookieDomain string
	Logger       *slog.Logger
}

var errNotFound = errors.New("not found")

// NewRouter creates and configures the HTTP router: JSON API under /api/,
// the guarded page shell for every route in the table, and /healthz.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if services.Auth == nil {
		return nil, errors.New("auth service is required")
	}
	routes := services.Routes
	if routes == nil {
		routes = route.DefaultTable()
	}
	guard := services.Guard
	if guard == nil {
		guard = route.NewGuard(
			RequestAuthState{Fallback: service.SessionAuthState{Auth: services.Auth}},
			route.WithTable(routes),
			route.WithLogger(logger),
		)
	}
	templates := services.Templates
	if templates == nil {
		sub, err := fs.Sub(bookshelf.TemplateFS, "web/templates")
		if err != nil {
			return nil, err
		}
		templates = sub
	}
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: templates, Routes: routes, Logger: logger})
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	health := healthHandler(services.Health, logger)
	mux.Handle("GET /healthz", health)
	mux.Handle("HEAD /healthz", health)

	registerAuthRoutes(mux, &AuthHandlers{Svc: services.Auth, CookieDomain: services.CookieDomain, Logger: logger})
	registerStatusRoutes(mux)
	if services.Theme != nil {
		registerThemeRoutes(mux, &ThemeHandlers{Svc: services.Theme, Logger: logger})
	}
	if services.Catalog != nil {
		registerCatalogRoutes(mux, &CatalogHandlers{Svc: services.Catalog, Logger: logger})
	}
	if services.Borrows != nil {
		registerBorrowRoutes(mux, &BorrowHandlers{Svc: services.Borrows, Logger: logger})
	}
	if services.Orders != nil {
		registerOrderRoutes(mux, &OrderHandlers{Svc: services.Orders, Logger: logger})
	}
	mux.HandleFunc("/api/", func(w http.ResponseWriter, _ *http.Request) {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errNotFound})
	})
	registerPageRoutes(mux, routes, &PageHandlers{Renderer: renderer, Routes: routes, Theme: services.Theme})

	var h http.Handler = mux
	h = GuardRoutes(guard)(h)
	h = SessionLoader(services.Auth, services.CookieDomain, logger)(h)
	h = ClientID()(h)
	h = Logging(logger)(h)
	h = Recover(logger)(h)
	return h, nil
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/login/code", h.LoginCode)
	mux.HandleFunc("POST /api/auth/code", h.SendCode)
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/session", h.Status)
}

func registerStatusRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/status/{domain}", statusEntries)
	mux.HandleFunc("GET /api/status/{domain}/{code}", describeStatus)
}

func registerThemeRoutes(mux *http.ServeMux, h *ThemeHandlers) {
	mux.HandleFunc("GET /api/theme", h.Get)
	mux.HandleFunc("PUT /api/theme", h.Put)
	mux.HandleFunc("GET /api/theme/events", h.Events)
}

func registerCatalogRoutes(mux *http.ServeMux, h *CatalogHandlers) {
	mux.HandleFunc("GET /api/home", h.Home)
	mux.Handle("GET /api/books/search", RequireSession(http.HandlerFunc(h.Search)))
	mux.Handle("GET /api/books/{id}", RequireSession(http.HandlerFunc(h.Book)))
}

func registerBorrowRoutes(mux *http.ServeMux, h *BorrowHandlers) {
	mux.Handle("GET /api/borrows", RequireSession(http.HandlerFunc(h.List)))
	mux.Handle("PUT /api/borrows/{id}/renew", RequireSession(http.HandlerFunc(h.Renew)))
	mux.Handle("PUT /api/borrows/{id}/complete", RequireSession(http.HandlerFunc(h.Complete)))
}

func registerOrderRoutes(mux *http.ServeMux, h *OrderHandlers) {
	mux.Handle("GET /api/orders", RequireSession(http.HandlerFunc(h.List)))
}

// registerPageRoutes serves the shell for every non-layout route and the
// 404 page for any other path outside /api/.
func registerPageRoutes(mux *http.ServeMux, routes *route.Table, h *PageHandlers) {
	seen := make(map[string]bool)
	for _, rt := range routes.Routes() {
		if rt.Layout || seen[rt.Path] {
			continue
		}
		seen[rt.Path] = true
		mux.HandleFunc("GET "+muxPattern(rt.Path), h.Serve)
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h.Serve(w, r)
	})
}

// muxPattern makes "/" match only the root, not every path.
func muxPattern(path string) string {
	if path == "/" {
		return "/{$}"
	}
	return strings.TrimSuffix(path, "/")
}
