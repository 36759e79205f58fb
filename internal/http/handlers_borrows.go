package httpx

import (
	"log/slog"
	"net/http"

	"github.com/target/bookshelf-web/internal/domain/model"
	"github.com/target/bookshelf-web/internal/domain/status"
	"github.com/target/bookshelf-web/internal/service"
)

// BorrowHandlers serves the reader's borrow records.
type BorrowHandlers struct {
	Svc    *service.BorrowService
	Logger *slog.Logger
}

// List pages through borrow records, each decorated with its status descriptor.
// GET /api/borrows?status=&page=&pageSize=.
func (h *BorrowHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := model.BorrowQuery{PageQuery: model.PageQuery{
		Page:     parseIntQuery(r, "page", model.DefaultPage),
		PageSize: parseIntQuery(r, "pageSize", model.DefaultPageSize),
	}}
	if r.URL.Query().Has("status") {
		s := status.BorrowStatus(parseIntQuery(r, "status", 0))
		q.Status = &s
	}

	hist, err := h.Svc.History(r.Context(), q)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, hist)
}

// Renew extends a record's due date.
// PUT /api/borrows/{id}/renew.
func (h *BorrowHandlers) Renew(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err == nil {
		err = h.Svc.Renew(r.Context(), id)
	}
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Complete returns a record's books.
// PUT /api/borrows/{id}/complete.
func (h *BorrowHandlers) Complete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Complete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
