package httpx

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/target/bookshelf-web/internal/domain/model"
	"github.com/target/bookshelf-web/internal/service"
)

// CatalogHandlers serves the landing page data and book lookups.
type CatalogHandlers struct {
	Svc    *service.CatalogService
	Logger *slog.Logger
}

// Home returns categories and a random pick of books.
// GET /api/home?count=<n>.
func (h *CatalogHandlers) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.Svc.Home(r.Context(), parseIntQuery(r, "count", 0))
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, home)
}

// Search pages through the catalog.
// GET /api/books/search?name=&categoryId=&status=&page=&pageSize=.
func (h *CatalogHandlers) Search(w http.ResponseWriter, r *http.Request) {
	q := model.SearchQuery{
		PageQuery: model.PageQuery{
			Page:     parseIntQuery(r, "page", model.DefaultPage),
			PageSize: parseIntQuery(r, "pageSize", model.DefaultPageSize),
		},
		Name:   strings.TrimSpace(r.URL.Query().Get("name")),
		Status: parseIntQuery(r, "status", 0),
	}
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_category", Err: err})
			return
		}
		q.CategoryID = id
	}

	res, err := h.Svc.Search(r.Context(), q)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

// Book returns one book.
// GET /api/books/{id}.
func (h *CatalogHandlers) Book(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	b, err := h.Svc.Book(r.Context(), id)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, b)
}
