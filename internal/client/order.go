package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/target/bookshelf-web/internal/domain/model"
)

// OrderAPI covers purchase order history. The backend serves orders through
// the borrow history endpoints.
type OrderAPI struct{ c *Client }

// History pages through the reader's orders.
func (a *OrderAPI) History(ctx context.Context, q model.OrderQuery) (model.OrderPage, error) {
	v := pageParams(q.PageQuery.Normalize())
	if q.Status != nil {
		v.Set("status", strconv.Itoa(int(*q.Status)))
	}
	return call[model.OrderPage](ctx, a.c, request{method: http.MethodGet, path: "/user/borrow/history", query: v})
}

// Complete confirms receipt of an order.
func (a *OrderAPI) Complete(ctx context.Context, id string) error {
	_, err := call[any](ctx, a.c, request{method: http.MethodPut, path: "/user/borrow/complete/" + url.PathEscape(id)})
	return err
}

// Remind nudges the store about an order.
func (a *OrderAPI) Remind(ctx context.Context, id int64) error {
	_, err := call[any](ctx, a.c, request{method: http.MethodPut, path: "/user/borrow/renew/" + strconv.FormatInt(id, 10)})
	return err
}
