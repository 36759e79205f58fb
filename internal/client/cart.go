package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/target/bookshelf-web/internal/domain/model"
)

// CartAPI covers the shopping cart and order submission.
type CartAPI struct{ c *Client }

// Add puts a quantity of a book into the cart.
func (a *CartAPI) Add(ctx context.Context, item model.BookData) error {
	_, err := call[any](ctx, a.c, request{method: http.MethodPost, path: "/user/shoppingCart/add", body: item})
	return err
}

// List returns the cart lines.
func (a *CartAPI) List(ctx context.Context) ([]model.CartItem, error) {
	return call[[]model.CartItem](ctx, a.c, request{method: http.MethodGet, path: "/user/shoppingCart/list"})
}

// Update changes the quantity of a cart line.
func (a *CartAPI) Update(ctx context.Context, form model.UpdateCartForm) error {
	_, err := call[any](ctx, a.c, request{method: http.MethodPut, path: "/user/shoppingCart/update", body: form})
	return err
}

// Remove deletes one cart line.
func (a *CartAPI) Remove(ctx context.Context, id int64) error {
	_, err := call[any](ctx, a.c, request{method: http.MethodDelete, path: "/user/shoppingCart/" + strconv.FormatInt(id, 10)})
	return err
}

// Clear empties the cart.
func (a *CartAPI) Clear(ctx context.Context) error {
	_, err := call[any](ctx, a.c, request{method: http.MethodDelete, path: "/user/shoppingCart/clean"})
	return err
}

// SubmitOrder places an order for the cart contents.
func (a *CartAPI) SubmitOrder(ctx context.Context, order model.OrderSubmission) (model.OrderResponse, error) {
	return call[model.OrderResponse](ctx, a.c, request{method: http.MethodPost, path: "/user/order/submit", body: order})
}
