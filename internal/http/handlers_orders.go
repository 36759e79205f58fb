package httpx

import (
	"log/slog"
	"net/http"

	"github.com/target/bookshelf-web/internal/domain/model"
	"github.com/target/bookshelf-web/internal/domain/status"
	"github.com/target/bookshelf-web/internal/service"
)

// OrderHandlers serves the reader's purchase orders.
type OrderHandlers struct {
	Svc    *service.OrderService
	Logger *slog.Logger
}

// List pages through orders with their status descriptors.
// GET /api/orders?status=&page=&pageSize=.
func (h *OrderHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := model.OrderQuery{PageQuery: model.PageQuery{
		Page:     parseIntQuery(r, "page", model.DefaultPage),
		PageSize: parseIntQuery(r, "pageSize", model.DefaultPageSize),
	}}
	if r.URL.Query().Has("status") {
		s := status.OrderStatus(parseIntQuery(r, "status", 0))
		q.Status = &s
	}

	hist, err := h.Svc.History(r.Context(), q)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, hist)
}
