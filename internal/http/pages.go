package httpx

import (
	"net/http"

	domainauth "github.com/target/bookshelf-web/internal/domain/auth"
	"github.com/target/bookshelf-web/internal/domain/route"
	"github.com/target/bookshelf-web/internal/domain/theme"
	"github.com/target/bookshelf-web/internal/service"
)

// PageData is what the page shell templates render.
type PageData struct {
	Route       route.Name
	Title       string
	Params      map[string]string
	Theme       theme.Theme
	ThemeClass  string
	User        *domainauth.Public
	RedirectURI string
}

// PageHandlers serves the page shell for every navigable route. The guard has
// already run by the time a page is served.
type PageHandlers struct {
	Renderer *TemplateRenderer
	Routes   *route.Table
	Theme    *service.ThemeService
}

// Serve renders the page matching the request path, or the 404 page.
func (h *PageHandlers) Serve(w http.ResponseWriter, r *http.Request) {
	data := h.baseData(r)
	name, params, ok := h.Routes.Match(r.URL.Path)
	if !ok {
		_ = h.Renderer.RenderNotFound(w, data)
		return
	}

	rt, _ := h.Routes.Lookup(name)
	data.Route = name
	data.Title = rt.Title
	data.Params = params
	if name == route.NameLogin || name == route.NameRegister {
		if raw := r.URL.Query().Get("redirect_uri"); raw != "" {
			data.RedirectURI = safeRedirectPath(raw)
		}
	}

	if WantsPartial(r) {
		_ = h.Renderer.RenderPartial(w, data)
		return
	}
	_ = h.Renderer.RenderFull(w, data)
}

func (h *PageHandlers) baseData(r *http.Request) PageData {
	t := theme.System
	if h.Theme != nil {
		t = h.Theme.Get(r.Context(), PreferenceOwner(r.Context()))
	}
	data := PageData{Theme: t, ThemeClass: theme.ClassName(t, prefersDark(r))}
	if s, ok := GetUserSessionFromContext(r.Context()); ok {
		pub := s.Public()
		data.User = &pub
	}
	return data
}
